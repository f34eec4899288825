//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"path/filepath"
	"testing"

	"github.com/fin-corpora/EarningsCallTopics/internal/coh"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

func testreport() ReportData {
	cfg := str.CurrentConfiguration{
		TopNKeywords: 2,
		LdaPasses:    10,
		LexiconName:  "fin_core_en",
		EventType:    "Earnings Call",
		CohWindow:    110,
		CohTopN:      20,
	}

	return ReportData{
		RunID: "cafe0001",
		Cfg:   cfg,
		Topics: [][]str.TopicTerm{
			{{Term: "revenue", Weight: 0.5}, {Term: "margin", Weight: 0.3}, {Term: "growth", Weight: 0.2}},
			{{Term: "cloud", Weight: 0.6}, {Term: "revenue", Weight: 0.4}},
		},
		Shares:    []float64{0.75, 0.25},
		Dominant:  []int{0, 1},
		Coherence: coh.Result{Score: 0.42, PerTopic: []float64{0.40, 0.44}},
		Docs: []str.Document{
			{ID: str.CallID{Ticker: "AAPL", Quarter: 1, Year: 2019}, Lemmas: []string{"revenue", "margin"}},
			{ID: str.CallID{Ticker: "MSFT", Quarter: 2, Year: 2020}, Lemmas: []string{"cloud", "revenue"}},
		},
		Labels:     []string{"AAPL-Q1-2019", "MSFT-Q2-2020"},
		Mixtures:   mat.NewDense(2, 2, []float64{0.9, 0.1, 0.2, 0.8}),
		TokenTotal: 4,
		VocabSize:  4,
		Neighbors: map[string][]str.Neighbor{
			"revenue": {{Word: "sales", Similarity: 0.91}, {Word: "turnover", Similarity: 0.83}},
		},
	}
}

func TestTopKeywords(t *testing.T) {
	rd := testreport()

	got := TopKeywords(rd)

	// two per topic, duplicates collapsed: revenue, margin, cloud
	want := []string{"revenue", "margin", "cloud"}
	if len(got) != len(want) {
		t.Fatalf("TopKeywords() returned %d keywords; want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopKeywords()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestWorkbookXLSX(t *testing.T) {
	rd := testreport()
	p := filepath.Join(t.TempDir(), "topics_test.xlsx")

	if err := WorkbookXLSX(rd, p); err != nil {
		t.Fatalf("WorkbookXLSX() returned error: %v", err)
	}

	f, err := excelize.OpenFile(p)
	if err != nil {
		t.Fatalf("could not reopen the workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Summary": true, "Topics": true, "Documents": true, "Neighbors": true}
	for _, s := range sheets {
		delete(want, s)
	}
	if len(want) != 0 {
		t.Fatalf("workbook is missing sheets %v; has %v", want, sheets)
	}

	rows, err := f.GetRows("Topics")
	if err != nil {
		t.Fatalf("could not read the Topics sheet: %v", err)
	}

	// a header plus one row per (topic, term)
	if len(rows) != 1+3+2 {
		t.Fatalf("Topics sheet has %d rows; want %d", len(rows), 6)
	}
	if rows[1][3] != "revenue" {
		t.Errorf("first ranked term = %q; want %q", rows[1][3], "revenue")
	}

	docs, err := f.GetRows("Documents")
	if err != nil {
		t.Fatalf("could not read the Documents sheet: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("Documents sheet has %d rows; want 3", len(docs))
	}
	if docs[1][0] != "AAPL-Q1-2019" {
		t.Errorf("first document label = %q; want %q", docs[1][0], "AAPL-Q1-2019")
	}
	if docs[2][1] != "2" {
		t.Errorf("second document dominant topic = %q; want %q", docs[2][1], "2")
	}
}
