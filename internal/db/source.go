//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fin-corpora/EarningsCallTopics/internal/mm"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
)

var msg = mm.New()

// a quarter is supposed to contain exactly one call per ticker; the caller has to decide
// what to do when the archive disagrees

var (
	ErrNoCall        = errors.New("no call matched the ticker and quarter")
	ErrAmbiguousCall = errors.New("multiple calls matched the ticker and quarter")
)

// TranscriptSource - the two archive backends: live PostgreSQL and sqlite snapshots
type TranscriptSource interface {
	CallRecordFor(id str.CallID, eventtype string) (str.CallRecord, error)
	SpeakerTurnsFor(rec str.CallRecord) ([]str.SpeakerTurn, error)
	LexiconEntriesFor(lexicon string, forms []string) (map[string][]str.LexiconEntry, error)
	Close()
}

// PullTranscripts - fetch every call on the roster; results arrive in roster order no matter who finished first
func PullTranscripts(src TranscriptSource, cfg str.CurrentConfiguration, ids []str.CallID) ([]str.Transcript, error) {
	const (
		FAIL  = "could not fetch '%s': %w"
		EMPTY = "'%s' has no speaker turns"
	)

	type job struct {
		slot int
		id   str.CallID
	}

	results := make([]str.Transcript, len(ids))
	errs := make([]error, len(ids))

	wk := cfg.WorkerCount
	if wk > len(ids) {
		wk = len(ids)
	}
	if wk < 1 {
		wk = 1
	}

	jobs := make(chan job)
	var wg sync.WaitGroup

	for i := 0; i < wk; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				rec, e := src.CallRecordFor(j.id, cfg.EventType)
				if e != nil {
					errs[j.slot] = fmt.Errorf(FAIL, j.id.String(), e)
					continue
				}
				turns, e := src.SpeakerTurnsFor(rec)
				if e != nil {
					errs[j.slot] = fmt.Errorf(FAIL, j.id.String(), e)
					continue
				}
				if len(turns) == 0 {
					msg.WARN(fmt.Sprintf(EMPTY, j.id.String()))
				}
				results[j.slot] = str.Transcript{
					ID:    j.id,
					Rec:   rec,
					Turns: len(turns),
					Text:  str.JoinTurns(turns),
				}
			}
		}()
	}

	for i, id := range ids {
		jobs <- job{slot: i, id: id}
	}
	close(jobs)
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	return results, nil
}
