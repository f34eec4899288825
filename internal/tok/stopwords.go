//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tok

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fin-corpora/EarningsCallTopics/internal/gen"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
)

//
// STOPWORDS
//

// readstopconfig - read the vv.CONFIGSTOPS file and return []stopwords; if it does not exist, generate it
func readstopconfig() []string {
	const (
		ERR1 = "readstopconfig() cannot find UserHomeDir"
		ERR2 = "readstopconfig() failed to parse "
		MSG1 = "readstopconfig() wrote stop list configuration file: "
	)

	stops := gen.StringMapKeysIntoSlice(getenglishstops())

	h, e := os.UserHomeDir()
	if e != nil {
		msg.MAND(ERR1)
		return stops
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPS)

	if yes != nil {
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGSTOPS, content, vv.WRITEPERMS)
		msg.EC(err)
		msg.PEEK(MSG1 + vv.CONFIGSTOPS)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPS)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			msg.CRIT(ERR2 + vv.CONFIGSTOPS)
		} else {
			stops = stp
		}
	}
	return stops
}

var (
	// English175 - the most common english words; the lexicon lemmatizes before these are checked
	English175 = []string{"the", "be", "is", "are", "was", "were", "been", "being", "am", "to", "of", "and", "a", "an",
		"in", "that", "have", "has", "had", "having", "it", "its", "for", "not", "on", "with", "he", "as", "you",
		"do", "does", "did", "doing", "at", "this", "but", "his", "by", "from", "they", "we", "say", "says", "said",
		"her", "she", "or", "will", "my", "one", "all", "would", "there", "their", "what", "so", "up", "out", "if",
		"about", "who", "get", "gets", "got", "which", "go", "goes", "went", "me", "when", "make", "makes", "made",
		"can", "like", "time", "no", "just", "him", "know", "knows", "knew", "take", "takes", "took", "people",
		"into", "year", "years", "your", "good", "some", "could", "them", "see", "sees", "saw", "other", "than",
		"then", "now", "look", "looks", "looked", "only", "come", "comes", "came", "over", "think", "thinks",
		"thought", "also", "back", "after", "use", "uses", "used", "two", "how", "our", "work", "works", "worked",
		"first", "well", "way", "even", "new", "want", "wants", "wanted", "because", "any", "these", "give",
		"gives", "gave", "day", "most", "us", "very", "through", "where", "much", "should", "each", "those",
		"while", "here", "both", "between", "still", "such", "own", "during", "before", "more", "last", "many",
		"may", "might", "per", "quarter", "i"}
	// ContractedForms - the clitics survive the splitter, so they stop here
	ContractedForms = []string{"don't", "doesn't", "didn't", "won't", "wouldn't", "can't", "couldn't", "shouldn't",
		"isn't", "aren't", "wasn't", "weren't", "haven't", "hasn't", "hadn't", "i'm", "i've", "i'll", "i'd",
		"we're", "we've", "we'll", "we'd", "you're", "you've", "you'll", "you'd", "he's", "she's", "it's",
		"that's", "there's", "what's", "let's", "who's", "they're", "they've", "they'll", "they'd", "gonna"}
	// CallExtra - ritual noise every earnings call opens and closes with
	CallExtra = []string{"operator", "afternoon", "morning", "everyone", "welcome", "please", "thank", "thanks",
		"ladies", "gentlemen", "hello", "hi", "okay", "yeah", "question", "questions", "call", "today", "guys",
		"congrats", "congratulations", "appreciate", "instructions", "remarks", "ahead", "line", "sir", "bye"}
	EnglishStop = append(append(English175, ContractedForms...), CallExtra...)
	// EnglishKeep - members of EnglishStop we will not toss
	EnglishKeep = []string{"people", "time", "work", "works", "worked", "good", "new"}
)

func getenglishstops() map[string]struct{} {
	es := gen.SetSubtraction(EnglishStop, EnglishKeep)
	return gen.ToSet(es)
}

// GetStopSet - the stop list as a set, honoring any user override on disk
func GetStopSet() map[string]struct{} {
	return gen.ToSet(readstopconfig())
}
