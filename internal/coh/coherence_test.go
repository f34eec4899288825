//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package coh

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/fin-corpora/EarningsCallTopics/internal/str"
)

func doc(lemmas ...string) str.Document {
	return str.Document{Lemmas: lemmas}
}

func TestCVScorePerfectCoOccurrence(t *testing.T) {
	// the topic terms appear in every window, always together
	docs := make([]str.Document, 5)
	for i := range docs {
		docs[i] = doc("cloud", "security", "platform", fmt.Sprintf("filler%d", i))
	}
	topics := [][]string{{"cloud", "security", "platform"}}

	r, err := CVScore(topics, docs, 0)
	if err != nil {
		t.Fatalf("CVScore returned error: %v", err)
	}

	if r.Score < 0.99 || r.Score > 1.0+1e-9 {
		t.Errorf("got score %f, want 1 for perfectly co-occurring terms", r.Score)
	}
	if len(r.PerTopic) != 1 {
		t.Fatalf("got %d per-topic scores, want 1", len(r.PerTopic))
	}
	if r.PerTopic[0] < 0.99 {
		t.Errorf("got per-topic score %f, want 1", r.PerTopic[0])
	}
}

func TestCVScoreDisjointTerms(t *testing.T) {
	// the two terms never share a document, never mind a window
	var docs []str.Document
	for i := 0; i < 4; i++ {
		docs = append(docs, doc("cloud", fmt.Sprintf("fillera%d", i)))
	}
	for i := 0; i < 4; i++ {
		docs = append(docs, doc("security", fmt.Sprintf("fillerb%d", i)))
	}
	topics := [][]string{{"cloud", "security"}}

	r, err := CVScore(topics, docs, 110)
	if err != nil {
		t.Fatalf("CVScore returned error: %v", err)
	}

	if r.Score >= 0.5 {
		t.Errorf("got score %f, want well under the co-occurring case", r.Score)
	}
	if r.Score < 0 || r.Score > 1 {
		t.Errorf("score %f fell outside [0, 1]", r.Score)
	}
}

func TestCVScoreWindowReach(t *testing.T) {
	// "a" and "b" sit inside one width-3 window; "a" and "d" are nine tokens apart
	docs := []str.Document{
		doc("a", "b", "c", "x1", "x2", "x3", "x4", "x5", "x6", "d"),
	}
	topics := [][]string{{"a", "b"}, {"a", "d"}}

	r, err := CVScore(topics, docs, 3)
	if err != nil {
		t.Fatalf("CVScore returned error: %v", err)
	}

	if r.PerTopic[0] < 0.9 {
		t.Errorf("the adjacent pair scored %f, want > 0.9", r.PerTopic[0])
	}
	if r.PerTopic[1] > 0.3 {
		t.Errorf("the distant pair scored %f, want < 0.3", r.PerTopic[1])
	}
	if r.PerTopic[0] <= r.PerTopic[1] {
		t.Errorf("adjacent pair (%f) should outscore distant pair (%f)", r.PerTopic[0], r.PerTopic[1])
	}
}

func TestCVScoreIgnoresEmptyDocuments(t *testing.T) {
	base := []str.Document{
		doc("revenue", "margin", "revenue"),
		doc("margin", "revenue"),
		doc("revenue", "cloud", "margin"),
	}
	padded := append(append([]str.Document{doc()}, base...), doc())

	topics := [][]string{{"revenue", "margin"}}

	a, err := CVScore(topics, base, 110)
	if err != nil {
		t.Fatalf("CVScore on base corpus returned error: %v", err)
	}
	b, err := CVScore(topics, padded, 110)
	if err != nil {
		t.Fatalf("CVScore on padded corpus returned error: %v", err)
	}

	if a.Score != b.Score {
		t.Errorf("empty documents changed the score: %f vs %f", a.Score, b.Score)
	}
	if !reflect.DeepEqual(a.PerTopic, b.PerTopic) {
		t.Errorf("empty documents changed the per-topic scores: %v vs %v", a.PerTopic, b.PerTopic)
	}
}

func TestCVScoreGuards(t *testing.T) {
	docs := []str.Document{doc("revenue")}
	topics := [][]string{{"revenue"}}

	if _, err := CVScore(nil, docs, 110); !errors.Is(err, ErrNoTopics) {
		t.Errorf("got %v, want ErrNoTopics", err)
	}
	if _, err := CVScore(topics, nil, 110); !errors.Is(err, ErrNoDocuments) {
		t.Errorf("got %v, want ErrNoDocuments", err)
	}

	hollow := []str.Document{doc(), doc()}
	if _, err := CVScore(topics, hollow, 110); !errors.Is(err, ErrNoWindows) {
		t.Errorf("got %v, want ErrNoWindows", err)
	}
}

func TestTerms(t *testing.T) {
	tt := [][]str.TopicTerm{
		{{Term: "cloud", Weight: 0.4}, {Term: "security", Weight: 0.2}},
		{{Term: "revenue", Weight: 0.5}},
	}

	got := Terms(tt)
	want := [][]string{{"cloud", "security"}, {"revenue"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
