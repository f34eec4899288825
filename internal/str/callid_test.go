//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"
	"time"
)

func TestParseCallID(t *testing.T) {
	c, err := ParseCallID("ADSK-Q2-2021")
	if err != nil {
		t.Fatalf("ParseCallID returned error: %v", err)
	}
	if c.Ticker != "ADSK" || c.Quarter != 2 || c.Year != 2021 {
		t.Errorf("got %+v, want ADSK/2/2021", c)
	}
	if got := c.String(); got != "ADSK-Q2-2021" {
		t.Errorf("String() = %s, want ADSK-Q2-2021", got)
	}
}

func TestParseCallIDCaseAndSpace(t *testing.T) {
	c, err := ParseCallID("  adsk-q2-2021 ")
	if err != nil {
		t.Fatalf("ParseCallID returned error: %v", err)
	}
	if c.String() != "ADSK-Q2-2021" {
		t.Errorf("got %s, want ADSK-Q2-2021", c.String())
	}
}

func TestParseCallIDRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"ADSK",
		"ADSK-Q2",
		"ADSK-Q5-2021",
		"ADSK-Q0-2021",
		"ADSK-2-2021",
		"ADSK-QX-2021",
		"ADSK-Q2-21",
		"ADSK-Q2-2021-X",
		"-Q2-2021",
	}
	for _, b := range bad {
		if _, err := ParseCallID(b); err == nil {
			t.Errorf("ParseCallID(%q) did not fail", b)
		}
	}
}

func TestCallIDWindow(t *testing.T) {
	c := CallID{Ticker: "MSFT", Quarter: 2, Year: 2021}
	s, e := c.Window()
	if !s.Equal(time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window start = %v, want 2021-04-01", s)
	}
	if !e.Equal(time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window end = %v, want 2021-07-01", e)
	}

	d := CallID{Ticker: "MSFT", Quarter: 4, Year: 2019}
	s, e = d.Window()
	if !s.Equal(time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window start = %v, want 2019-10-01", s)
	}
	if !e.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window end = %v, want 2020-01-01", e)
	}
}

func TestJoinTurns(t *testing.T) {
	tt := []SpeakerTurn{
		{SpeakerNum: 1, Text: "Good afternoon."},
		{SpeakerNum: 2, Text: "Thanks for joining."},
		{SpeakerNum: 3, Text: "Revenue grew."},
	}
	got := JoinTurns(tt)
	want := "Good afternoon. Thanks for joining. Revenue grew."
	if got != want {
		t.Errorf("JoinTurns = %q, want %q", got, want)
	}

	if JoinTurns(nil) != "" {
		t.Errorf("JoinTurns(nil) should be empty")
	}
}
