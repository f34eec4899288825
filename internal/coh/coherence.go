//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package coh

import (
	"errors"
	"math"

	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	"gonum.org/v1/gonum/floats"
)

// the c_v recipe: boolean sliding windows over each document, NPMI association scores,
// context vectors over a topic's own terms, and the mean cosine of each term's vector
// against the summed topic vector

var (
	ErrNoDocuments = errors.New("cannot score coherence without documents")
	ErrNoTopics    = errors.New("cannot score coherence without topics")
	ErrNoWindows   = errors.New("no context windows: every document tokenized to nothing")
)

// Result - the corpus-level score plus the per-topic coherences that produced it
type Result struct {
	Score    float64
	PerTopic []float64
}

// Terms - strip the weights off a model readout; the scorer only wants the words
func Terms(tt [][]str.TopicTerm) [][]string {
	out := make([][]string, len(tt))
	for k := range tt {
		out[k] = make([]string, len(tt[k]))
		for i := range tt[k] {
			out[k][i] = tt[k][i].Term
		}
	}
	return out
}

// CVScore - c_v coherence of the topics against the documents; window <= 0 means the default width
func CVScore(topics [][]string, docs []str.Document, window int) (Result, error) {
	if len(topics) == 0 {
		return Result{}, ErrNoTopics
	}
	if len(docs) == 0 {
		return Result{}, ErrNoDocuments
	}
	if window <= 0 {
		window = vv.COHWINDOW
	}

	// [a] index every term any topic mentions

	idx := make(map[string]int)
	var terms []string
	for _, tp := range topics {
		for _, t := range tp {
			if _, seen := idx[t]; !seen {
				idx[t] = len(terms)
				terms = append(terms, t)
			}
		}
	}
	n := len(terms)

	// [b] slide a boolean window over every document and count (co-)occurrences

	occ := make([]float64, n)
	joint := make([][]float64, n)
	for i := range joint {
		joint[i] = make([]float64, n)
	}

	nwindows := 0
	for _, d := range docs {
		nwindows += countwindows(d.Lemmas, idx, window, occ, joint)
	}
	if nwindows == 0 {
		return Result{}, ErrNoWindows
	}

	// [c] the NPMI association matrix; a term always co-occurs with itself

	w := float64(nwindows)
	assoc := make([][]float64, n)
	for i := 0; i < n; i++ {
		assoc[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			assoc[i][j] = npmi(occ[i]/w, occ[j]/w, joint[i][j]/w)
		}
	}

	// [d] every term against the topic as a whole

	pertopic := make([]float64, len(topics))
	for k, tp := range topics {
		pertopic[k] = topicscore(tp, idx, assoc)
	}

	total := 0.0
	for _, s := range pertopic {
		total += s
	}

	return Result{Score: total / float64(len(pertopic)), PerTopic: pertopic}, nil
}

// countwindows - bump occ and joint for one document; returns how many windows it contributed
func countwindows(lemmas []string, idx map[string]int, window int, occ []float64, joint [][]float64) int {
	if len(lemmas) == 0 {
		return 0
	}

	// map the sequence onto term ids; -1 marks the words no topic cares about
	seq := make([]int, len(lemmas))
	for i, l := range lemmas {
		if id, ok := idx[l]; ok {
			seq[i] = id
		} else {
			seq[i] = -1
		}
	}

	width := window
	if width > len(seq) {
		width = len(seq)
	}
	nw := len(seq) - width + 1

	counts := make([]int, len(occ))
	for i := 0; i < width; i++ {
		if seq[i] >= 0 {
			counts[seq[i]]++
		}
	}

	var present []int
	for pos := 0; pos < nw; pos++ {
		if pos > 0 {
			// slide: drop the leftmost token, admit the next one
			if out := seq[pos-1]; out >= 0 {
				counts[out]--
			}
			if in := seq[pos+width-1]; in >= 0 {
				counts[in]++
			}
		}

		present = present[:0]
		for id, c := range counts {
			if c > 0 {
				present = append(present, id)
			}
		}

		for a := 0; a < len(present); a++ {
			occ[present[a]]++
			for b := a; b < len(present); b++ {
				joint[present[a]][present[b]]++
				if a != b {
					joint[present[b]][present[a]]++
				}
			}
		}
	}

	return nw
}

// npmi - normalized pointwise mutual information of one term pair
func npmi(pi, pj, pij float64) float64 {
	if pi == 0 || pj == 0 {
		return 0
	}
	den := -math.Log(pij + vv.COHEPS)
	if den <= 0 {
		return 1
	}
	return math.Log((pij+vv.COHEPS)/(pi*pj)) / den
}

// topicscore - mean cosine between each term's context vector and the summed topic vector
func topicscore(topic []string, idx map[string]int, assoc [][]float64) float64 {
	if len(topic) == 0 {
		return 0
	}

	// context vectors live in the topic's own term space
	vecs := make([][]float64, len(topic))
	for i, ti := range topic {
		v := make([]float64, len(topic))
		for j, tj := range topic {
			v[j] = assoc[idx[ti]][idx[tj]]
		}
		vecs[i] = v
	}

	sum := make([]float64, len(topic))
	for _, v := range vecs {
		floats.Add(sum, v)
	}

	total := 0.0
	for _, v := range vecs {
		total += cosine(v, sum)
	}
	return total / float64(len(vecs))
}

func cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
