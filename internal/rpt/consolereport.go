//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fin-corpora/EarningsCallTopics/internal/coh"
	"github.com/fin-corpora/EarningsCallTopics/internal/mm"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/mat"
)

var msg = mm.New()

// ReportData - everything a finished run hands to the reporters
type ReportData struct {
	RunID      string
	Cfg        str.CurrentConfiguration
	Topics     [][]str.TopicTerm
	Shares     []float64
	Dominant   []int
	Coherence  coh.Result
	Docs       []str.Document
	Labels     []string
	Mixtures   *mat.Dense
	TokenTotal int
	VocabSize  int
	Neighbors  map[string][]str.Neighbor
}

// ConsoleReport - the run's findings, printed the way a notebook's final cell would show them
func ConsoleReport(rd ReportData) {
	const (
		HD  = "C5modeled %s calls: %s retained tokens over %s distinct lemmasC0"
		TP  = "C1topic %dC0  (C6share %.1f%%; coherence %.3fC0)"
		KW  = "    keywords: C3%sC0"
		CL  = "    calls:    %s"
		CV  = "C5c_v coherence over %d topics: C1%.3fC0"
		NBH = "C1nearest neighbors of the leading keywordsC0"
		NBL = "    C3%-18sC0 %s"
	)

	pr := message.NewPrinter(language.English)

	var sb strings.Builder
	sb.WriteString(msg.Color(fmt.Sprintf(HD,
		pr.Sprintf("%d", len(rd.Docs)),
		pr.Sprintf("%d", rd.TokenTotal),
		pr.Sprintf("%d", rd.VocabSize))))
	sb.WriteString("\n\n")

	for k := range rd.Topics {
		kk := make([]string, 0, rd.Cfg.TopNKeywords)
		for i, t := range rd.Topics[k] {
			if i >= rd.Cfg.TopNKeywords {
				break
			}
			kk = append(kk, fmt.Sprintf("%s (%.3f)", t.Term, t.Weight))
		}

		var members []string
		for d, dom := range rd.Dominant {
			if dom == k {
				members = append(members, rd.Labels[d])
			}
		}
		if len(members) == 0 {
			members = append(members, "(none dominant)")
		}

		sb.WriteString(msg.Color(fmt.Sprintf(TP, k+1, rd.Shares[k]*100, rd.Coherence.PerTopic[k])))
		sb.WriteString("\n")
		sb.WriteString(msg.Color(fmt.Sprintf(KW, strings.Join(kk, ", "))))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(CL, strings.Join(members, ", ")))
		sb.WriteString("\n\n")
	}

	sb.WriteString(msg.Color(fmt.Sprintf(CV, len(rd.Topics), rd.Coherence.Score)))
	sb.WriteString("\n")

	if len(rd.Neighbors) != 0 {
		sb.WriteString("\n")
		sb.WriteString(msg.Color(NBH))
		sb.WriteString("\n")

		seeds := make([]string, 0, len(rd.Neighbors))
		for s := range rd.Neighbors {
			seeds = append(seeds, s)
		}
		sort.Strings(seeds)

		for _, s := range seeds {
			nn := make([]string, 0, len(rd.Neighbors[s]))
			for _, n := range rd.Neighbors[s] {
				nn = append(nn, fmt.Sprintf("%s (%.2f)", n.Word, n.Similarity))
			}
			sb.WriteString(msg.Color(fmt.Sprintf(NBL, s, strings.Join(nn, ", "))))
			sb.WriteString("\n")
		}
	}

	fmt.Println(sb.String())
}

// TopKeywords - the distinct leading terms across all topics, for the neighbor search
func TopKeywords(rd ReportData) []string {
	seen := make(map[string]bool)
	var kk []string
	for k := range rd.Topics {
		for i, t := range rd.Topics[k] {
			if i >= rd.Cfg.TopNKeywords {
				break
			}
			if !seen[t.Term] {
				seen[t.Term] = true
				kk = append(kk, t.Term)
			}
		}
	}
	return kk
}
