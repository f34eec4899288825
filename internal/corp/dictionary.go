//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corp

import (
	"sort"

	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/james-bowman/sparse"
)

// token ids are dense and handed out in first-seen order, so the same corpus
// read in the same order always yields the same dictionary

// BowEntry - one (token id, count) pair of a bag of words
type BowEntry struct {
	ID    int
	Count int
}

// BagOfWords - the sparse counts of one document, ordered by token id
type BagOfWords []BowEntry

// Dictionary - a bidirectional token <-> id mapping
type Dictionary struct {
	tokentoid map[string]int
	idtotoken []string
}

// BuildDictionary - scan the documents in order and assign ids as tokens first appear
func BuildDictionary(docs []str.Document) *Dictionary {
	d := &Dictionary{tokentoid: make(map[string]int)}
	for i := 0; i < len(docs); i++ {
		for _, l := range docs[i].Lemmas {
			if _, seen := d.tokentoid[l]; !seen {
				d.tokentoid[l] = len(d.idtotoken)
				d.idtotoken = append(d.idtotoken, l)
			}
		}
	}
	return d
}

func (d *Dictionary) Len() int {
	return len(d.idtotoken)
}

// TokenFor - id back to its token; out of range ids yield ""
func (d *Dictionary) TokenFor(id int) string {
	if id < 0 || id >= len(d.idtotoken) {
		return ""
	}
	return d.idtotoken[id]
}

// IDFor - token to id; the bool says whether the dictionary has ever seen it
func (d *Dictionary) IDFor(token string) (int, bool) {
	id, ok := d.tokentoid[token]
	return id, ok
}

// Tokens - the full vocabulary in id order
func (d *Dictionary) Tokens() []string {
	tt := make([]string, len(d.idtotoken))
	copy(tt, d.idtotoken)
	return tt
}

// Vectorize - one document into its bag of words; tokens the dictionary has never seen are omitted
func Vectorize(doc str.Document, d *Dictionary) BagOfWords {
	counts := make(map[int]int)
	for _, l := range doc.Lemmas {
		if id, ok := d.tokentoid[l]; ok {
			counts[id]++
		}
	}

	bow := make(BagOfWords, 0, len(counts))
	for id, c := range counts {
		bow = append(bow, BowEntry{ID: id, Count: c})
	}
	sort.Slice(bow, func(i, j int) bool { return bow[i].ID < bow[j].ID })

	return bow
}

// VectorizeAll - every document against one shared dictionary
func VectorizeAll(docs []str.Document, d *Dictionary) []BagOfWords {
	bows := make([]BagOfWords, len(docs))
	for i := 0; i < len(docs); i++ {
		bows[i] = Vectorize(docs[i], d)
	}
	return bows
}

// TokenTotal - the number of token occurrences a set of bags covers
func TokenTotal(bows []BagOfWords) int {
	n := 0
	for _, b := range bows {
		for _, e := range b {
			n += e.Count
		}
	}
	return n
}

// TermDocMatrix - the bags as a sparse count matrix: terms down the rows, documents across the columns
func TermDocMatrix(bows []BagOfWords, vocab int) *sparse.DOK {
	dok := sparse.NewDOK(vocab, len(bows))
	for d, bow := range bows {
		for _, e := range bow {
			dok.Set(e.ID, d, float64(e.Count))
		}
	}
	return dok
}
