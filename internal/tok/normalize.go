//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tok

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/fin-corpora/EarningsCallTopics/internal/gen"
	"github.com/fin-corpora/EarningsCallTopics/internal/mm"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
)

var msg = mm.New()

// ErrTooLong - a transcript that busts MaxDocChars kills the whole run; the ceiling is a config knob, not a constant
var ErrTooLong = errors.New("transcript is longer than MaxDocChars allows")

// LexiconSource - the one slice of the archive the tokenizer needs
type LexiconSource interface {
	LexiconEntriesFor(lexicon string, forms []string) (map[string][]str.LexiconEntry, error)
}

// Normalizer - turns raw transcripts into ordered bags of lowercase lemmas
type Normalizer struct {
	MaxChars int
	Guess    bool
	winners  map[string]str.LexiconEntry
	stops    map[string]struct{}
}

// NewNormalizer - one bulk lexicon fetch for the whole roster, then every transcript reuses the maps
func NewNormalizer(cfg str.CurrentConfiguration, src LexiconSource, tt []str.Transcript) (*Normalizer, error) {
	const (
		MSG1 = "the roster uses %d distinct forms; the lexicon knows %d of them"
	)

	// [a] every distinct observed form across the roster
	forms := HarvestForms(tt)

	// [b] one round trip to the archive
	entries, e := src.LexiconEntriesFor(cfg.LexiconName, forms)
	if e != nil {
		return nil, e
	}

	msg.FYI(fmt.Sprintf(MSG1, len(forms), len(entries)))

	// [c] settle the homonyms once
	winners := BuildWinnerParseMap(entries)

	// [d] the stop list
	stops := GetStopSet()

	n := &Normalizer{
		MaxChars: cfg.MaxDocChars,
		Guess:    cfg.GuessUnknown,
		winners:  winners,
		stops:    stops,
	}
	return n, nil
}

// HarvestForms - the distinct cleaned forms of every transcript, in first-seen order
func HarvestForms(tt []str.Transcript) []string {
	var all []string
	for i := 0; i < len(tt); i++ {
		all = append(all, cleanandsplit(tt[i].Text)...)
	}
	return gen.UniqueStable(all)
}

// TokenizeTranscript - one transcript into its retained lowercase lemmas
func (n *Normalizer) TokenizeTranscript(t str.Transcript) (str.Document, error) {
	const (
		FAIL = "%w: '%s' is %d chars and the ceiling is %d; raise MaxDocChars to admit it"
	)

	if n.MaxChars > 0 && len(t.Text) > n.MaxChars {
		return str.Document{}, fmt.Errorf(FAIL, ErrTooLong, t.ID.String(), len(t.Text), n.MaxChars)
	}

	words := cleanandsplit(t.Text)
	lemmas := make([]string, 0, len(words))

	for _, w := range words {
		if _, s := n.stops[w]; s {
			continue
		}
		win, known := n.winners[w]
		if !known {
			// the lexicon has never seen this form; "ebitda" and friends land here
			if n.Guess {
				lemmas = append(lemmas, w)
			}
			continue
		}
		if !vv.TaggableParts[win.UPos] {
			continue
		}
		if _, s := n.stops[win.Lemma]; s {
			continue
		}
		lemmas = append(lemmas, win.Lemma)
	}

	return str.Document{ID: t.ID, Lemmas: lemmas}, nil
}

// TokenizeAll - the roster in order; any over-length transcript fails the whole batch
func (n *Normalizer) TokenizeAll(tt []str.Transcript) ([]str.Document, error) {
	const (
		EMPTY = "'%s' tokenized to an empty document"
	)

	docs := make([]str.Document, 0, len(tt))
	for i := 0; i < len(tt); i++ {
		d, e := n.TokenizeTranscript(tt[i])
		if e != nil {
			return nil, e
		}
		if len(d.Lemmas) == 0 {
			msg.WARN(fmt.Sprintf(EMPTY, d.ID.String()))
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// cleanandsplit - lowercase, settle the typography, and split; harvesting and tokenizing have to agree on this
func cleanandsplit(text string) []string {
	swap := strings.NewReplacer(
		"’", "'", "‘", "'",
		"“", " ", "”", " ",
		"—", " ", "–", " ",
		" ", " ",
	)
	text = swap.Replace(strings.ToLower(text))

	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})

	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSuffix(w, "'s")
		w = strings.Trim(w, "'-")
		if w == "" || !hasletter(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func hasletter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
