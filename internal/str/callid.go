//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	CALLIDFORM = "TICKER-Qn-YYYY"
	MINCALLYR  = 1990
	MAXCALLYR  = 2100
)

// CallID - a parsed roster identifier: ticker, quarter, calendar year
type CallID struct {
	Ticker  string
	Quarter int
	Year    int
}

// ParseCallID - "ADSK-Q2-2021" into a CallID; a malformed id is a configuration error
func ParseCallID(id string) (CallID, error) {
	const (
		FAIL = "malformed call id '%s': want %s"
	)

	var c CallID

	parts := strings.Split(strings.TrimSpace(id), "-")
	if len(parts) != 3 {
		return c, fmt.Errorf(FAIL, id, CALLIDFORM)
	}

	tick := strings.ToUpper(parts[0])
	if tick == "" {
		return c, fmt.Errorf(FAIL, id, CALLIDFORM)
	}

	qq := strings.ToUpper(parts[1])
	if len(qq) != 2 || qq[0] != 'Q' {
		return c, fmt.Errorf(FAIL, id, CALLIDFORM)
	}

	qn, err := strconv.Atoi(qq[1:])
	if err != nil || qn < 1 || qn > 4 {
		return c, fmt.Errorf(FAIL, id, CALLIDFORM)
	}

	yr, err := strconv.Atoi(parts[2])
	if err != nil || yr < MINCALLYR || yr > MAXCALLYR {
		return c, fmt.Errorf(FAIL, id, CALLIDFORM)
	}

	c.Ticker = tick
	c.Quarter = qn
	c.Year = yr
	return c, nil
}

func (c CallID) String() string {
	return fmt.Sprintf("%s-Q%d-%d", c.Ticker, c.Quarter, c.Year)
}

// Window - the calendar quarter the call's start date has to land inside
func (c CallID) Window() (time.Time, time.Time) {
	s := time.Date(c.Year, time.Month((c.Quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	return s, s.AddDate(0, 3, 0)
}
