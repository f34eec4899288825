//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"strings"
	"time"
)

// CallRecord - one row of the calls table
// NB: field order mirrors the SELECT column order because of pgx.RowToStructByPos[CallRecord]
type CallRecord struct {
	Ticker    string
	EventType string
	StartDate time.Time
	FileName  string
	LastUpd   time.Time
}

// SpeakerTurn - one row of the speaker turns table
type SpeakerTurn struct {
	FileName   string
	LastUpd    time.Time
	Context    string
	SpeakerNum int
	Text       string
}

// Transcript - every turn of one call joined into a single string
type Transcript struct {
	ID    CallID
	Rec   CallRecord
	Turns int
	Text  string
}

// JoinTurns - concatenate turn texts with single spaces, in the order given
func JoinTurns(tt []SpeakerTurn) string {
	var sb strings.Builder
	for i := 0; i < len(tt); i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(tt[i].Text)
	}
	return sb.String()
}

// Document - the ordered retained lemmas of one call
type Document struct {
	ID     CallID
	Lemmas []string
}
