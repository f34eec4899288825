//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tok

import (
	"sort"
	"strings"

	"github.com/fin-corpora/EarningsCallTopics/internal/str"
)

// BuildWinnerParseMap - figure out which is the most common of the possible lexicon rows for any given form
func BuildWinnerParseMap(entries map[string][]str.LexiconEntry) map[string]str.LexiconEntry {
	// a form like "growing" can parse as the verb "grow" or the adjective "growing"; we just
	// pick the dominant reading and use it everywhere

	// [a] score the candidates; the lexicon's corpus frequency is the score
	// [b] kill off the losers; ties go to the alphabetically first lemma so that reruns agree

	winnermap := make(map[string]str.LexiconEntry)
	for form, cands := range entries {
		cc := make([]str.LexiconEntry, len(cands))
		copy(cc, cands)
		sort.Slice(cc, func(i, j int) bool {
			if cc[i].Frequency != cc[j].Frequency {
				return cc[i].Frequency > cc[j].Frequency
			}
			return cc[i].Lemma < cc[j].Lemma
		})
		w := cc[0]
		w.Lemma = strings.ToLower(w.Lemma)
		winnermap[strings.ToLower(form)] = w
	}

	return winnermap
}
