//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"errors"
	"sort"
	"time"

	"github.com/fin-corpora/EarningsCallTopics/internal/corp"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go for the full option surface;
// everything not set below keeps the library default

var (
	ErrNoDocuments      = errors.New("there are no documents to model")
	ErrEmptyVocabulary  = errors.New("the corpus vocabulary is empty: every document tokenized to nothing")
	ErrTooManyTopics    = errors.New("more topics requested than there are documents")
	ErrUntrainedReadout = errors.New("the model has not been fitted yet")
)

// Settings - the sampler knobs; a Seed of 0 means seed from the clock
type Settings struct {
	Topics            int
	Passes            int
	XformPasses       int
	BurnIn            int
	Workers           int
	Seed              uint64
	Alpha             float64
	Eta               float64
	PerplexityTol     float64
	PerplexityEvalFrq int
	ChangeEvalFrq     int
}

func DefaultSettings() Settings {
	return Settings{
		Topics:            vv.LDATOPICS,
		Passes:            vv.LDAPASSES,
		XformPasses:       vv.LDAXFORMPASSES,
		BurnIn:            vv.LDABURNINPASSES,
		Workers:           1,
		Seed:              vv.LDASEED,
		Alpha:             vv.LDAALPHA,
		Eta:               vv.LDAETA,
		PerplexityTol:     vv.LDAPERPTOL,
		PerplexityEvalFrq: vv.LDAPERPEVALFRQ,
		ChangeEvalFrq:     vv.LDACHGEVALFRQ,
	}
}

// FromConfig - the launch configuration's sampler knobs on top of the defaults
func FromConfig(cfg str.CurrentConfiguration) Settings {
	s := DefaultSettings()
	s.Topics = cfg.LdaTopics
	s.Passes = cfg.LdaPasses
	s.XformPasses = cfg.LdaXformPasses
	s.BurnIn = cfg.LdaBurnIn
	s.Workers = cfg.LdaWorkers
	s.Seed = cfg.LdaSeed
	return s
}

// Model - a fitted topic model and the dictionary that decodes it
type Model struct {
	K               int
	dict            *corp.Dictionary
	ndocs           int
	docsovertopics  mat.Matrix // K x docs
	topicsoverwords mat.Matrix // K x vocabulary
}

// Fit - train on the bags of words; identical inputs and a fixed seed replay identically when Workers is 1
func Fit(bows []corp.BagOfWords, dict *corp.Dictionary, s Settings) (*Model, error) {
	if len(bows) == 0 {
		return nil, ErrNoDocuments
	}
	if dict.Len() == 0 {
		return nil, ErrEmptyVocabulary
	}
	if s.Topics > len(bows) {
		return nil, ErrTooManyTopics
	}

	dok := corp.TermDocMatrix(bows, dict.Len())

	lda := nlp.NewLatentDirichletAllocation(s.Topics)
	lda.Processes = s.Workers
	lda.Iterations = s.Passes
	lda.TransformationPasses = s.XformPasses
	lda.BurnInPasses = s.BurnIn
	lda.Alpha = s.Alpha
	lda.Eta = s.Eta
	lda.PerplexityTolerance = s.PerplexityTol
	lda.PerplexityEvaluationFrequency = s.PerplexityEvalFrq
	lda.ChangeEvaluationFrequency = s.ChangeEvalFrq

	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	lda.Rnd = rand.New(rand.NewSource(seed))

	docsovertopics, e := lda.FitTransform(dok.ToCSR())
	if e != nil {
		return nil, e
	}

	m := &Model{
		K:               s.Topics,
		dict:            dict,
		ndocs:           len(bows),
		docsovertopics:  docsovertopics,
		topicsoverwords: lda.Components(),
	}
	return m, nil
}

// TopTerms - the n heaviest terms of every topic; weights are normalized within a topic
func (m *Model) TopTerms(n int) ([][]str.TopicTerm, error) {
	if m.topicsoverwords == nil {
		return nil, ErrUntrainedReadout
	}

	_, vocab := m.topicsoverwords.Dims()
	out := make([][]str.TopicTerm, m.K)

	for k := 0; k < m.K; k++ {
		rowsum := 0.0
		for j := 0; j < vocab; j++ {
			rowsum += m.topicsoverwords.At(k, j)
		}

		tt := make([]str.TopicTerm, 0, vocab)
		for j := 0; j < vocab; j++ {
			w := m.topicsoverwords.At(k, j)
			if rowsum > 0 {
				w = w / rowsum
			}
			tt = append(tt, str.TopicTerm{Term: m.dict.TokenFor(j), Weight: w})
		}

		sort.Slice(tt, func(a, b int) bool {
			if tt[a].Weight != tt[b].Weight {
				return tt[a].Weight > tt[b].Weight
			}
			return tt[a].Term < tt[b].Term
		})

		if n < len(tt) {
			tt = tt[:n]
		}
		out[k] = tt
	}

	return out, nil
}

// DominantTopics - the heaviest topic of every document, in document order
func (m *Model) DominantTopics() []int {
	dom := make([]int, m.ndocs)
	for d := 0; d < m.ndocs; d++ {
		best := 0
		bestw := m.docsovertopics.At(0, d)
		for k := 1; k < m.K; k++ {
			if w := m.docsovertopics.At(k, d); w > bestw {
				best = k
				bestw = w
			}
		}
		dom[d] = best
	}
	return dom
}

// TopicShares - what fraction of the corpus each topic claims; the shares sum to 1
func (m *Model) TopicShares() []float64 {
	shares := make([]float64, m.K)
	for d := 0; d < m.ndocs; d++ {
		colsum := 0.0
		for k := 0; k < m.K; k++ {
			colsum += m.docsovertopics.At(k, d)
		}
		if colsum <= 0 {
			continue
		}
		for k := 0; k < m.K; k++ {
			shares[k] += m.docsovertopics.At(k, d) / colsum / float64(m.ndocs)
		}
	}
	return shares
}

// DocTopicMixtures - documents down the rows, topics across the columns, rows normalized to sum to 1
func (m *Model) DocTopicMixtures() *mat.Dense {
	mix := mat.NewDense(m.ndocs, m.K, nil)
	for d := 0; d < m.ndocs; d++ {
		colsum := 0.0
		for k := 0; k < m.K; k++ {
			colsum += m.docsovertopics.At(k, d)
		}
		for k := 0; k < m.K; k++ {
			w := m.docsovertopics.At(k, d)
			if colsum > 0 {
				w = w / colsum
			}
			mix.Set(d, k, w)
		}
	}
	return mix
}
