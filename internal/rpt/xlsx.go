//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// WorkbookXLSX - the run as a spreadsheet: a summary sheet, the topics, the document mixtures,
// and the neighbor supplement when one was trained
func WorkbookXLSX(rd ReportData, path string) error {
	const (
		FAIL = "could not write the workbook '%s': %w"
	)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf(FAIL, path, err)
	}

	if err := summarysheet(f, rd); err != nil {
		return fmt.Errorf(FAIL, path, err)
	}

	if err := topicsheet(f, rd); err != nil {
		return fmt.Errorf(FAIL, path, err)
	}

	if err := documentsheet(f, rd); err != nil {
		return fmt.Errorf(FAIL, path, err)
	}

	if len(rd.Neighbors) != 0 {
		if err := neighborsheet(f, rd); err != nil {
			return fmt.Errorf(FAIL, path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf(FAIL, path, err)
	}

	return nil
}

// summarysheet - the run's settings and headline numbers, one per row
func summarysheet(f *excelize.File, rd ReportData) error {
	sh := "Summary"

	rows := [][]any{
		{"run id", rd.RunID},
		{"calls modeled", len(rd.Docs)},
		{"retained tokens", rd.TokenTotal},
		{"distinct lemmas", rd.VocabSize},
		{"topics", len(rd.Topics)},
		{"sampling passes", rd.Cfg.LdaPasses},
		{"sampler seed", rd.Cfg.LdaSeed},
		{"sampler workers", rd.Cfg.LdaWorkers},
		{"lexicon", rd.Cfg.LexiconName},
		{"event type", rd.Cfg.EventType},
		{"coherence window", rd.Cfg.CohWindow},
		{"coherence top n", rd.Cfg.CohTopN},
		{"c_v coherence", rd.Coherence.Score},
	}

	for k := range rd.Coherence.PerTopic {
		rows = append(rows, []any{fmt.Sprintf("c_v topic %d", k+1), rd.Coherence.PerTopic[k]})
	}

	for i, r := range rows {
		if err := setrow(f, sh, i+1, r); err != nil {
			return err
		}
	}

	return f.SetColWidth(sh, "A", "B", 22)
}

// topicsheet - every topic's ranked terms with their normalized weights
func topicsheet(f *excelize.File, rd ReportData) error {
	sh := "Topics"

	if _, err := f.NewSheet(sh); err != nil {
		return err
	}

	if err := setrow(f, sh, 1, []any{"topic", "share", "rank", "term", "weight"}); err != nil {
		return err
	}

	row := 2
	for k := range rd.Topics {
		for i, t := range rd.Topics[k] {
			if err := setrow(f, sh, row, []any{k + 1, rd.Shares[k], i + 1, t.Term, t.Weight}); err != nil {
				return err
			}
			row++
		}
	}

	return f.SetColWidth(sh, "D", "D", 24)
}

// documentsheet - one row per call: the dominant topic and the full mixture
func documentsheet(f *excelize.File, rd ReportData) error {
	sh := "Documents"

	if _, err := f.NewSheet(sh); err != nil {
		return err
	}

	_, k := rd.Mixtures.Dims()

	hd := []any{"call", "dominant topic"}
	for t := 0; t < k; t++ {
		hd = append(hd, fmt.Sprintf("topic %d", t+1))
	}
	if err := setrow(f, sh, 1, hd); err != nil {
		return err
	}

	for d := range rd.Labels {
		r := []any{rd.Labels[d], rd.Dominant[d] + 1}
		for t := 0; t < k; t++ {
			r = append(r, rd.Mixtures.At(d, t))
		}
		if err := setrow(f, sh, d+2, r); err != nil {
			return err
		}
	}

	return f.SetColWidth(sh, "A", "A", 18)
}

// neighborsheet - the embedding supplement: ranked nearest neighbors per leading keyword
func neighborsheet(f *excelize.File, rd ReportData) error {
	sh := "Neighbors"

	if _, err := f.NewSheet(sh); err != nil {
		return err
	}

	if err := setrow(f, sh, 1, []any{"keyword", "rank", "neighbor", "similarity"}); err != nil {
		return err
	}

	seeds := make([]string, 0, len(rd.Neighbors))
	for s := range rd.Neighbors {
		seeds = append(seeds, s)
	}
	sort.Strings(seeds)

	row := 2
	for _, s := range seeds {
		for i, n := range rd.Neighbors[s] {
			if err := setrow(f, sh, row, []any{s, i + 1, n.Word, n.Similarity}); err != nil {
				return err
			}
			row++
		}
	}

	return f.SetColWidth(sh, "A", "C", 20)
}

// setrow - fill one row left to right starting at column A
func setrow(f *excelize.File, sheet string, row int, vals []any) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
