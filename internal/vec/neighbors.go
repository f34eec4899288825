//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
	"github.com/fin-corpora/EarningsCallTopics/internal/mm"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
)

var msg = mm.New()

// w2vconfig - scaled for a roster of a few dozen calls, not a whole literary canon
func w2vconfig(workers int) word2vec.Options {
	if workers < 1 {
		workers = 1
	}
	return word2vec.Options{
		BatchSize:          1024,
		Dim:                75,
		DocInMemory:        true,
		Goroutines:         workers,
		Initlr:             0.025,
		Iter:               15,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           2,
		MinLR:              0.0000025,
		ModelType:          "skipgram",
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             8,
	}
}

// NearestNeighbors - train throwaway embeddings on the corpus and pull each seed term's neighborhood
func NearestNeighbors(docs []str.Document, seeds []string, cfg str.CurrentConfiguration) (map[string][]str.Neighbor, error) {
	const (
		FAIL1 = "NearestNeighbors() failed to train the embeddings"
		FAIL2 = "NearestNeighbors() failed to load the trained embeddings"
		MSG1  = "'%s' fell below MinCount and has no vector; skipping it"
	)

	// [a] the corpus as one newline-separated block, a document per line

	var sb strings.Builder
	total := 0
	for i := 0; i < len(docs); i++ {
		sb.WriteString(strings.Join(docs[i].Lemmas, " "))
		sb.WriteString("\n")
		total += len(docs[i].Lemmas)
	}
	if total == 0 {
		return make(map[string][]str.Neighbor), nil
	}

	// [b] train

	vmodel, e := word2vec.NewForOptions(w2vconfig(cfg.WorkerCount))
	if e != nil {
		return nil, fmt.Errorf("%s: %w", FAIL1, e)
	}

	if e = vmodel.Train(bytes.NewReader([]byte(sb.String()))); e != nil {
		return nil, fmt.Errorf("%s: %w", FAIL1, e)
	}

	// [c] use buffers; skip the disk

	var buf bytes.Buffer
	if e = vmodel.Save(io.Writer(&buf), vector.Agg); e != nil {
		return nil, fmt.Errorf("%s: %w", FAIL2, e)
	}

	embs, e := embedding.Load(io.Reader(&buf))
	if e != nil {
		return nil, fmt.Errorf("%s: %w", FAIL2, e)
	}

	searcher, e := search.New(embs...)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", FAIL2, e)
	}

	// [d] each seed's neighborhood; rare seeds just miss

	nn := make(map[string][]str.Neighbor)
	for _, s := range seeds {
		neighbors, err := searcher.SearchInternal(s, cfg.NeighborCount)
		if err != nil {
			msg.TMI(fmt.Sprintf(MSG1, s))
			continue
		}
		hood := make([]str.Neighbor, 0, len(neighbors))
		for _, n := range neighbors {
			hood = append(hood, str.Neighbor{Word: n.Word, Similarity: n.Similarity})
		}
		nn[s] = hood
	}

	return nn, nil
}
