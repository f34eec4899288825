//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fin-corpora/EarningsCallTopics/internal/str"
)

const testlexicon = "fin_core_en"

func createTestStore(t *testing.T) *LiteStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	// in-memory sqlite is per-connection; keep everything on one
	db.SetMaxOpenConns(1)

	if err := CreateLiteSchema(db, testlexicon); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return &LiteStore{DB: db}
}

func insertCall(t *testing.T, s *LiteStore, ticker, event, start, fname, upd string) {
	t.Helper()
	_, err := s.DB.Exec(
		`INSERT INTO calls (ticker, event_type, start_date, file_name, last_upd) VALUES (?, ?, ?, ?, ?)`,
		ticker, event, start, fname, upd)
	if err != nil {
		t.Fatalf("failed to insert call: %v", err)
	}
}

func insertTurn(t *testing.T, s *LiteStore, fname, upd, context string, num int, text string) {
	t.Helper()
	_, err := s.DB.Exec(
		`INSERT INTO speaker_data (file_name, last_upd, context, speaker_number, speaker_text) VALUES (?, ?, ?, ?, ?)`,
		fname, upd, context, num, text)
	if err != nil {
		t.Fatalf("failed to insert turn: %v", err)
	}
}

func insertLex(t *testing.T, s *LiteStore, form, lemma, upos string, freq int) {
	t.Helper()
	_, err := s.DB.Exec(
		`INSERT INTO fin_core_en_lexicon (observed_form, lemma, upos, frequency) VALUES (?, ?, ?, ?)`,
		form, lemma, upos, freq)
	if err != nil {
		t.Fatalf("failed to insert lexicon row: %v", err)
	}
}

func mustParse(t *testing.T, id string) str.CallID {
	t.Helper()
	cid, err := str.ParseCallID(id)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", id, err)
	}
	return cid
}

func TestCallRecordForExactlyOne(t *testing.T) {
	s := createTestStore(t)
	insertCall(t, s, "ADSK", "Earnings Call", "2021-05-27T13:00:00Z", "adsk_q2_2021.json", "2021-05-28T09:00:00Z")
	insertCall(t, s, "ADSK", "Earnings Call", "2021-08-26T13:00:00Z", "adsk_q3_2021.json", "2021-08-27T09:00:00Z")
	insertCall(t, s, "ADSK", "Shareholder Meeting", "2021-06-16T13:00:00Z", "adsk_asm_2021.json", "2021-06-17T09:00:00Z")

	rec, err := s.CallRecordFor(mustParse(t, "ADSK-Q2-2021"), "Earnings Call")
	if err != nil {
		t.Fatalf("CallRecordFor returned error: %v", err)
	}
	if rec.FileName != "adsk_q2_2021.json" {
		t.Errorf("got file %q, want %q", rec.FileName, "adsk_q2_2021.json")
	}
	if rec.Ticker != "ADSK" {
		t.Errorf("got ticker %q, want ADSK", rec.Ticker)
	}
	if rec.StartDate.Month() != time.May {
		t.Errorf("got start month %v, want May", rec.StartDate.Month())
	}
}

func TestCallRecordForNoCall(t *testing.T) {
	s := createTestStore(t)
	insertCall(t, s, "ADSK", "Earnings Call", "2021-05-27T13:00:00Z", "adsk_q2_2021.json", "2021-05-28T09:00:00Z")

	_, err := s.CallRecordFor(mustParse(t, "ADSK-Q4-2021"), "Earnings Call")
	if !errors.Is(err, ErrNoCall) {
		t.Errorf("got %v, want ErrNoCall", err)
	}

	_, err = s.CallRecordFor(mustParse(t, "MSFT-Q2-2021"), "Earnings Call")
	if !errors.Is(err, ErrNoCall) {
		t.Errorf("got %v, want ErrNoCall", err)
	}
}

func TestCallRecordForAmbiguous(t *testing.T) {
	s := createTestStore(t)
	insertCall(t, s, "ADSK", "Earnings Call", "2021-05-27T13:00:00Z", "adsk_q2_2021a.json", "2021-05-28T09:00:00Z")
	insertCall(t, s, "ADSK", "Earnings Call", "2021-06-03T13:00:00Z", "adsk_q2_2021b.json", "2021-06-04T09:00:00Z")

	_, err := s.CallRecordFor(mustParse(t, "ADSK-Q2-2021"), "Earnings Call")
	if !errors.Is(err, ErrAmbiguousCall) {
		t.Errorf("got %v, want ErrAmbiguousCall", err)
	}
}

func TestSpeakerTurnsForOrdering(t *testing.T) {
	s := createTestStore(t)
	insertCall(t, s, "ADSK", "Earnings Call", "2021-05-27T13:00:00Z", "adsk_q2_2021.json", "2021-05-28T09:00:00Z")

	// inserted out of order on purpose
	insertTurn(t, s, "adsk_q2_2021.json", "2021-05-28T09:00:00Z", "qa", 3, "third")
	insertTurn(t, s, "adsk_q2_2021.json", "2021-05-28T09:00:00Z", "pres", 1, "first")
	insertTurn(t, s, "adsk_q2_2021.json", "2021-05-28T09:00:00Z", "pres", 2, "second")
	// a different revision of the same file should not bleed in
	insertTurn(t, s, "adsk_q2_2021.json", "2021-06-01T09:00:00Z", "pres", 1, "stale")

	rec, err := s.CallRecordFor(mustParse(t, "ADSK-Q2-2021"), "Earnings Call")
	if err != nil {
		t.Fatalf("CallRecordFor returned error: %v", err)
	}

	turns, err := s.SpeakerTurnsFor(rec)
	if err != nil {
		t.Fatalf("SpeakerTurnsFor returned error: %v", err)
	}

	if len(turns) != 3 {
		t.Fatalf("got %d turns, want 3", len(turns))
	}
	for i, want := range []string{"first", "second", "third"} {
		if turns[i].Text != want {
			t.Errorf("turn %d: got %q, want %q", i, turns[i].Text, want)
		}
	}

	if got := str.JoinTurns(turns); got != "first second third" {
		t.Errorf("joined text: got %q, want %q", got, "first second third")
	}
}

func TestLexiconEntriesFor(t *testing.T) {
	s := createTestStore(t)
	insertLex(t, s, "revenues", "revenue", "NOUN", 940)
	insertLex(t, s, "growing", "grow", "VERB", 310)
	insertLex(t, s, "growing", "growing", "ADJ", 120)
	insertLex(t, s, "the", "the", "DET", 99999)

	found, err := s.LexiconEntriesFor(testlexicon, []string{"revenues", "growing", "unheardof"})
	if err != nil {
		t.Fatalf("LexiconEntriesFor returned error: %v", err)
	}

	if len(found) != 2 {
		t.Fatalf("got %d forms, want 2", len(found))
	}
	if len(found["growing"]) != 2 {
		t.Errorf("got %d entries for 'growing', want 2", len(found["growing"]))
	}
	if _, ok := found["unheardof"]; ok {
		t.Errorf("'unheardof' should not be in the result")
	}
	if _, ok := found["the"]; ok {
		t.Errorf("'the' was not requested and should not be in the result")
	}
	if found["revenues"][0].Lemma != "revenue" {
		t.Errorf("got lemma %q, want %q", found["revenues"][0].Lemma, "revenue")
	}
}

func TestPullTranscripts(t *testing.T) {
	s := createTestStore(t)
	insertCall(t, s, "ADSK", "Earnings Call", "2021-05-27T13:00:00Z", "adsk_q2_2021.json", "2021-05-28T09:00:00Z")
	insertTurn(t, s, "adsk_q2_2021.json", "2021-05-28T09:00:00Z", "pres", 1, "good afternoon")
	insertTurn(t, s, "adsk_q2_2021.json", "2021-05-28T09:00:00Z", "qa", 2, "strong quarter")

	insertCall(t, s, "AAPL", "Earnings Call", "2019-01-29T16:30:00Z", "aapl_q1_2019.json", "2019-01-30T09:00:00Z")
	insertTurn(t, s, "aapl_q1_2019.json", "2019-01-30T09:00:00Z", "pres", 1, "record services revenue")

	cfg := str.CurrentConfiguration{WorkerCount: 2, EventType: "Earnings Call"}
	ids := []str.CallID{mustParse(t, "AAPL-Q1-2019"), mustParse(t, "ADSK-Q2-2021")}

	tt, err := PullTranscripts(s, cfg, ids)
	if err != nil {
		t.Fatalf("PullTranscripts returned error: %v", err)
	}

	if len(tt) != 2 {
		t.Fatalf("got %d transcripts, want 2", len(tt))
	}
	// roster order, not completion order
	if tt[0].ID.Ticker != "AAPL" || tt[1].ID.Ticker != "ADSK" {
		t.Errorf("roster order not preserved: got %s then %s", tt[0].ID.Ticker, tt[1].ID.Ticker)
	}
	if tt[0].Text != "record services revenue" {
		t.Errorf("got %q, want %q", tt[0].Text, "record services revenue")
	}
	if tt[1].Text != "good afternoon strong quarter" {
		t.Errorf("got %q, want %q", tt[1].Text, "good afternoon strong quarter")
	}
	if tt[1].Turns != 2 {
		t.Errorf("got %d turns, want 2", tt[1].Turns)
	}
}

func TestPullTranscriptsFailsOnMissingCall(t *testing.T) {
	s := createTestStore(t)
	insertCall(t, s, "ADSK", "Earnings Call", "2021-05-27T13:00:00Z", "adsk_q2_2021.json", "2021-05-28T09:00:00Z")
	insertTurn(t, s, "adsk_q2_2021.json", "2021-05-28T09:00:00Z", "pres", 1, "good afternoon")

	cfg := str.CurrentConfiguration{WorkerCount: 2, EventType: "Earnings Call"}
	ids := []str.CallID{mustParse(t, "ADSK-Q2-2021"), mustParse(t, "ZZZZ-Q1-2019")}

	_, err := PullTranscripts(s, cfg, ids)
	if !errors.Is(err, ErrNoCall) {
		t.Fatalf("got %v, want ErrNoCall", err)
	}
	if !strings.Contains(err.Error(), "ZZZZ-Q1-2019") {
		t.Errorf("error %q should name the missing call", err.Error())
	}
}
