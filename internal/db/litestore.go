//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fin-corpora/EarningsCallTopics/internal/gen"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	_ "modernc.org/sqlite"
)

// a sqlite snapshot lets you model on a laptop in a hotel room; all timestamps are
// stored as RFC3339 TEXT, which collates correctly without date functions

// LiteStore - a TranscriptSource backed by a sqlite snapshot of the archive
type LiteStore struct {
	DB    *sql.DB
	Debug bool
}

func OpenLite(path string, cfg str.CurrentConfiguration) (*LiteStore, error) {
	db, e := sql.Open("sqlite", path)
	if e != nil {
		return nil, e
	}
	if e = db.Ping(); e != nil {
		return nil, e
	}
	return &LiteStore{DB: db, Debug: cfg.DbDebug}, nil
}

func (s *LiteStore) Close() {
	e := s.DB.Close()
	if e != nil {
		msg.WARN(e.Error())
	}
}

// CallRecordFor - the one call a ticker held inside a calendar quarter
func (s *LiteStore) CallRecordFor(id str.CallID, eventtype string) (str.CallRecord, error) {
	const (
		QT = `SELECT ticker, event_type, start_date, file_name, last_upd FROM %s
			WHERE ticker = ? AND event_type = ? AND start_date >= ? AND start_date < ?`
	)

	q := fmt.Sprintf(QT, vv.CALLSTABLE)
	from, to := id.Window()

	if s.Debug {
		msg.PEEK(fmt.Sprintf("%s [%s, %s]", q, id.Ticker, eventtype))
	}

	rr, e := s.DB.Query(q, id.Ticker, eventtype, from.Format(time.RFC3339), to.Format(time.RFC3339))
	if e != nil {
		return str.CallRecord{}, e
	}
	defer rr.Close()

	var finds []str.CallRecord
	for rr.Next() {
		var rec str.CallRecord
		var sd, lu string
		if e = rr.Scan(&rec.Ticker, &rec.EventType, &sd, &rec.FileName, &lu); e != nil {
			return str.CallRecord{}, e
		}
		if rec.StartDate, e = time.Parse(time.RFC3339, sd); e != nil {
			return str.CallRecord{}, e
		}
		if rec.LastUpd, e = time.Parse(time.RFC3339, lu); e != nil {
			return str.CallRecord{}, e
		}
		finds = append(finds, rec)
	}
	if e = rr.Err(); e != nil {
		return str.CallRecord{}, e
	}

	switch len(finds) {
	case 0:
		return str.CallRecord{}, ErrNoCall
	case 1:
		return finds[0], nil
	default:
		return str.CallRecord{}, fmt.Errorf("%w: %d rows", ErrAmbiguousCall, len(finds))
	}
}

// SpeakerTurnsFor - every turn of a call in the order in which it was spoken
func (s *LiteStore) SpeakerTurnsFor(rec str.CallRecord) ([]str.SpeakerTurn, error) {
	const (
		QT = `SELECT file_name, last_upd, context, speaker_number, speaker_text FROM %s
			WHERE file_name = ? AND last_upd = ? ORDER BY speaker_number ASC`
	)

	q := fmt.Sprintf(QT, vv.TURNSTABLE)

	if s.Debug {
		msg.PEEK(fmt.Sprintf("%s [%s]", q, rec.FileName))
	}

	rr, e := s.DB.Query(q, rec.FileName, rec.LastUpd.Format(time.RFC3339))
	if e != nil {
		return nil, e
	}
	defer rr.Close()

	var turns []str.SpeakerTurn
	for rr.Next() {
		var t str.SpeakerTurn
		var lu string
		if e = rr.Scan(&t.FileName, &lu, &t.Context, &t.SpeakerNum, &t.Text); e != nil {
			return nil, e
		}
		if t.LastUpd, e = time.Parse(time.RFC3339, lu); e != nil {
			return nil, e
		}
		turns = append(turns, t)
	}
	if e = rr.Err(); e != nil {
		return nil, e
	}

	return turns, nil
}

// LexiconEntriesFor - map a slice of observed forms onto their lexicon rows
func (s *LiteStore) LexiconEntriesFor(lexicon string, forms []string) (map[string][]str.LexiconEntry, error) {
	// sqlite has a bound-parameter ceiling, so the forms go over in modest chunks
	const (
		QT   = `SELECT observed_form, lemma, upos, frequency FROM %s WHERE observed_form IN (%s)`
		MSG1 = "LexiconEntriesFor() will search among %d forms"
	)

	msg.PEEK(fmt.Sprintf(MSG1, len(forms)))

	tbl := fmt.Sprintf(vv.LEXTEMPLATE, lexicon)
	found := make(map[string][]str.LexiconEntry)

	chunkedlist := gen.ChunkSlice(forms, vv.LITECHUNKSIZE)
	for _, cl := range chunkedlist {
		qm := strings.Repeat("?, ", len(cl))
		qm = strings.TrimSuffix(qm, ", ")
		q := fmt.Sprintf(QT, tbl, qm)

		args := make([]any, len(cl))
		for i := 0; i < len(cl); i++ {
			args[i] = cl[i]
		}

		if s.Debug {
			msg.PEEK(q)
		}

		rr, e := s.DB.Query(q, args...)
		if e != nil {
			return nil, e
		}

		for rr.Next() {
			var hit str.LexiconEntry
			if e = rr.Scan(&hit.Form, &hit.Lemma, &hit.UPos, &hit.Frequency); e != nil {
				rr.Close()
				return nil, e
			}
			found[hit.Form] = append(found[hit.Form], hit)
		}
		if e = rr.Err(); e != nil {
			rr.Close()
			return nil, e
		}
		rr.Close()
	}

	return found, nil
}

// CreateLiteSchema - the tables a snapshot carries; exported for the snapshot builders and the tests
func CreateLiteSchema(db *sql.DB, lexicon string) error {
	const (
		CALLS = `CREATE TABLE IF NOT EXISTS %s (
			ticker TEXT NOT NULL,
			event_type TEXT NOT NULL,
			start_date TEXT NOT NULL,
			file_name TEXT NOT NULL,
			last_upd TEXT NOT NULL)`
		TURNS = `CREATE TABLE IF NOT EXISTS %s (
			file_name TEXT NOT NULL,
			last_upd TEXT NOT NULL,
			context TEXT NOT NULL,
			speaker_number INTEGER NOT NULL,
			speaker_text TEXT NOT NULL)`
		LEX = `CREATE TABLE IF NOT EXISTS %s (
			observed_form TEXT NOT NULL,
			lemma TEXT NOT NULL,
			upos TEXT NOT NULL,
			frequency INTEGER NOT NULL)`
		LEXIDX = `CREATE INDEX IF NOT EXISTS %s_idx ON %s (observed_form)`
	)

	tbl := fmt.Sprintf(vv.LEXTEMPLATE, lexicon)

	stmts := []string{
		fmt.Sprintf(CALLS, vv.CALLSTABLE),
		fmt.Sprintf(TURNS, vv.TURNSTABLE),
		fmt.Sprintf(LEX, tbl),
		fmt.Sprintf(LEXIDX, tbl, tbl),
	}

	for _, st := range stmts {
		if _, e := db.Exec(st); e != nil {
			return e
		}
	}
	return nil
}
