//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// LexiconEntry - one analysis of an observed surface form
// NB: field order mirrors the SELECT column order because of pgx.RowToStructByPos[LexiconEntry]
type LexiconEntry struct {
	Form      string
	Lemma     string
	UPos      string
	Frequency int
}

// WeightedLemma - a lemma and how often it showed up
type WeightedLemma struct {
	Word  string
	Count int
}

// WLList - descending by count; ties break on the word so sorts replay
type WLList []WeightedLemma

func (w WLList) Len() int { return len(w) }

func (w WLList) Less(i, j int) bool {
	if w[i].Count != w[j].Count {
		return w[i].Count > w[j].Count
	}
	return w[i].Word < w[j].Word
}

func (w WLList) Swap(i, j int) { w[i], w[j] = w[j], w[i] }

// TopicTerm - one vocabulary item inside a topic distribution
type TopicTerm struct {
	Term   string
	Weight float64
}

// Neighbor - a nearest-neighbor hit from the embedding supplement
type Neighbor struct {
	Word       string
	Similarity float64
}
