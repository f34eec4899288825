//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/fin-corpora/EarningsCallTopics/internal/corp"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
)

// two cleanly separable themes so even a short run finds them
func clusteredCorpus() ([]corp.BagOfWords, *corp.Dictionary) {
	docs := []str.Document{
		{Lemmas: []string{"revenue", "margin", "profit", "revenue", "margin", "profit", "revenue"}},
		{Lemmas: []string{"margin", "profit", "revenue", "profit", "margin", "revenue", "profit"}},
		{Lemmas: []string{"revenue", "revenue", "profit", "margin", "margin", "profit"}},
		{Lemmas: []string{"cloud", "security", "platform", "cloud", "security", "platform", "cloud"}},
		{Lemmas: []string{"security", "platform", "cloud", "platform", "security", "cloud"}},
		{Lemmas: []string{"platform", "cloud", "security", "security", "platform", "cloud", "platform"}},
	}
	d := corp.BuildDictionary(docs)
	return corp.VectorizeAll(docs, d), d
}

func testSettings() Settings {
	s := DefaultSettings()
	s.Topics = 2
	s.Passes = 30
	s.XformPasses = 15
	s.Workers = 1
	s.Seed = 42
	return s
}

func TestFitShapes(t *testing.T) {
	bows, dict := clusteredCorpus()

	m, err := Fit(bows, dict, testSettings())
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	tt, err := m.TopTerms(3)
	if err != nil {
		t.Fatalf("TopTerms returned error: %v", err)
	}
	if len(tt) != 2 {
		t.Fatalf("got %d topics, want 2", len(tt))
	}
	for k, terms := range tt {
		if len(terms) != 3 {
			t.Fatalf("topic %d: got %d terms, want 3", k, len(terms))
		}
		for i, term := range terms {
			if term.Term == "" {
				t.Errorf("topic %d term %d is empty", k, i)
			}
			if math.IsNaN(term.Weight) || math.IsInf(term.Weight, 0) {
				t.Errorf("topic %d term %q has weight %v", k, term.Term, term.Weight)
			}
			if i > 0 && term.Weight > terms[i-1].Weight {
				t.Errorf("topic %d terms are not sorted by weight", k)
			}
		}
	}

	dom := m.DominantTopics()
	if len(dom) != 6 {
		t.Fatalf("got %d dominant topics, want 6", len(dom))
	}
	for i, k := range dom {
		if k < 0 || k > 1 {
			t.Errorf("document %d has topic %d, want 0 or 1", i, k)
		}
	}

	shares := m.TopicShares()
	sum := 0.0
	for _, s := range shares {
		sum += s
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("topic shares sum to %f, want 1", sum)
	}

	mix := m.DocTopicMixtures()
	r, c := mix.Dims()
	if r != 6 || c != 2 {
		t.Fatalf("mixture dims = %dx%d, want 6x2", r, c)
	}
	for d := 0; d < r; d++ {
		rowsum := mix.At(d, 0) + mix.At(d, 1)
		if math.Abs(rowsum-1.0) > 1e-9 {
			t.Errorf("document %d mixture sums to %f, want 1", d, rowsum)
		}
	}
}

func TestFitDeterministicForFixedSeed(t *testing.T) {
	bows, dict := clusteredCorpus()
	s := testSettings()

	a, err := Fit(bows, dict, s)
	if err != nil {
		t.Fatalf("first Fit returned error: %v", err)
	}
	b, err := Fit(bows, dict, s)
	if err != nil {
		t.Fatalf("second Fit returned error: %v", err)
	}

	if !reflect.DeepEqual(a.DominantTopics(), b.DominantTopics()) {
		t.Errorf("two runs with the same seed assigned %v and %v", a.DominantTopics(), b.DominantTopics())
	}

	att, _ := a.TopTerms(3)
	btt, _ := b.TopTerms(3)
	for k := range att {
		for i := range att[k] {
			if att[k][i].Term != btt[k][i].Term {
				t.Errorf("topic %d term %d: %q vs %q", k, i, att[k][i].Term, btt[k][i].Term)
			}
		}
	}
}

func TestFitGuards(t *testing.T) {
	bows, dict := clusteredCorpus()
	s := testSettings()

	if _, err := Fit(nil, dict, s); !errors.Is(err, ErrNoDocuments) {
		t.Errorf("got %v, want ErrNoDocuments", err)
	}

	empty := corp.BuildDictionary(nil)
	if _, err := Fit(bows, empty, s); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("got %v, want ErrEmptyVocabulary", err)
	}

	s.Topics = 40
	if _, err := Fit(bows, dict, s); !errors.Is(err, ErrTooManyTopics) {
		t.Errorf("got %v, want ErrTooManyTopics", err)
	}
}
