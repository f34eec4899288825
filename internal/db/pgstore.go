//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/fin-corpora/EarningsCallTopics/internal/gen"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore - a TranscriptSource backed by the live PostgreSQL archive
type PGStore struct {
	Pool  *pgxpool.Pool
	Debug bool
}

func NewPGStore(pool *pgxpool.Pool, cfg str.CurrentConfiguration) *PGStore {
	return &PGStore{Pool: pool, Debug: cfg.DbDebug}
}

func (s *PGStore) Close() {
	s.Pool.Close()
}

// CallRecordFor - the one call a ticker held inside a calendar quarter
func (s *PGStore) CallRecordFor(id str.CallID, eventtype string) (str.CallRecord, error) {
	const (
		QT = `SELECT ticker, event_type, start_date, file_name, last_upd FROM %s
			WHERE ticker = $1 AND event_type = $2 AND start_date >= $3 AND start_date < $4`
	)

	q := fmt.Sprintf(QT, vv.CALLSTABLE)
	from, to := id.Window()

	if s.Debug {
		msg.PEEK(fmt.Sprintf("%s [%s, %s, %s, %s]", q, id.Ticker, eventtype, from, to))
	}

	rr, e := s.Pool.Query(context.Background(), q, id.Ticker, eventtype, from, to)
	if e != nil {
		return str.CallRecord{}, e
	}

	finds, e := pgx.CollectRows(rr, pgx.RowToStructByPos[str.CallRecord])
	if e != nil {
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
func (s *PGStore) SpeakerTurnsFor(rec str.CallRecord) ([]str.SpeakerTurn, error) {
	const (
		QT = `SELECT file_name, last_upd, context, speaker_number, speaker_text FROM %s
			WHERE file_name = $1 AND last_upd = $2 ORDER BY speaker_number ASC`
	)

	q := fmt.Sprintf(QT, vv.TURNSTABLE)

	if s.Debug {
		msg.PEEK(fmt.Sprintf("%s [%s, %s]", q, rec.FileName, rec.LastUpd))
	}

	rr, e := s.Pool.Query(context.Background(), q, rec.FileName, rec.LastUpd)
	if e != nil {
		return nil, e
	}

	turns, e := pgx.CollectRows(rr, pgx.RowToStructByPos[str.SpeakerTurn])
	if e != nil {
		return nil, e
	}

	return turns, nil
}

// LexiconEntriesFor - map a slice of observed forms onto their lexicon rows
func (s *PGStore) LexiconEntriesFor(lexicon string, forms []string) (map[string][]str.LexiconEntry, error) {
	// calltopicsDB=# \d fin_core_en_lexicon
	//     Column     |          Type          | Collation | Nullable | Default
	//----------------+------------------------+-----------+----------+---------
	// observed_form  | character varying(64)  |           |          |
	// lemma          | character varying(64)  |           |          |
	// upos           | character varying(16)  |           |          |
	// frequency      | integer                |           |          |
	//Indexes:
	//    "fin_core_en_lexicon_idx" btree (observed_form)

	const (
		TT = `CREATE TEMPORARY TABLE ttf_%s AS SELECT forms AS f FROM unnest(ARRAY[%s]) forms`
		QT = `SELECT observed_form, lemma, upos, frequency FROM %s WHERE EXISTS
			(SELECT 1 FROM ttf_%s temptable WHERE temptable.f = %s.observed_form)`
		MSG1 = "LexiconEntriesFor() will search among %d forms"
	)

	// temporary tables are session scoped: everything has to run on one connection
	dbconn, e := s.Pool.Acquire(context.Background())
	if e != nil {
		return nil, e
	}
	defer dbconn.Release()

	// the archive escapes nothing: the single quotes inside contractions are on us
	esc := make([]string, len(forms))
	for i := 0; i < len(forms); i++ {
		esc[i] = strings.Replace(forms[i], "'", "''", -1)
	}

	msg.PEEK(fmt.Sprintf(MSG1, len(esc)))

	tbl := fmt.Sprintf(vv.LEXTEMPLATE, lexicon)
	found := make(map[string][]str.LexiconEntry)
	var thehit str.LexiconEntry

	foreach := []any{&thehit.Form, &thehit.Lemma, &thehit.UPos, &thehit.Frequency}

	rwfnc := func() error {
		found[thehit.Form] = append(found[thehit.Form], thehit)
		return nil
	}

	chunkedlist := gen.ChunkSlice(esc, vv.LEXCHUNKSIZE)
	for _, cl := range chunkedlist {
		u := strings.Replace(uuid.New().String(), "-", "", -1)
		id := fmt.Sprintf("%s_lf", u)
		a := fmt.Sprintf("'%s'", strings.Join(cl, "', '"))
		t := fmt.Sprintf(TT, id, a)

		if s.Debug {
			msg.PEEK(fmt.Sprintf(QT, tbl, id, tbl))
		}

		_, err := dbconn.Exec(context.Background(), t)
		if err != nil {
			return nil, err
		}

		foundrows, err := dbconn.Query(context.Background(), fmt.Sprintf(QT, tbl, id, tbl))
		if err != nil {
			return nil, err
		}

		_, err = pgx.ForEachRow(foundrows, foreach, rwfnc)
		if err != nil {
			return nil, err
		}
	}

	return found, nil
}
