//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
)

const (
	MSGMAND = -1
	MSGCRIT = 0
	MSGWARN = 1
	MSGNOTE = 2
	MSGFYI  = 3
	MSGPEEK = 4
	MSGTMI  = 5

	TIMETRACKERTHRESH = MSGFYI

	WINEXITDELAY = 60 * time.Second
)

// 256-color ANSI escapes; BlackAndWhite turns them all off
const (
	RESET   = "\033[0m"
	BOLD    = "\033[1m"
	ITAL    = "\033[3m"
	UNDER   = "\033[4m"
	BLUE1   = "\033[38;5;38m"
	CYAN1   = "\033[38;5;86m"
	GREEN1  = "\033[38;5;40m"
	GREY1   = "\033[38;5;254m"
	RED1    = "\033[38;5;160m"
	WHITE1  = "\033[38;5;255m"
	YELLOW1 = "\033[38;5;178m"
)

var (
	loglevel = MSGNOTE
	nocolor  = false
	mtx      sync.Mutex
)

// SetLevel - called once at launch, before any workers spin up
func SetLevel(l int) {
	loglevel = l
}

func Level() int {
	return loglevel
}

// SetBW - kill the ANSI colors
func SetBW(bw bool) {
	nocolor = bw
}

type MessageMaker struct {
	SName string
	Win   bool
}

func New() *MessageMaker {
	return &MessageMaker{
		SName: vv.SHORTNAME,
		Win:   runtime.GOOS == "windows",
	}
}

// Emit - print a message to the terminal if the loglevel permits it
func (m *MessageMaker) Emit(message string, threshold int) {
	if loglevel < threshold {
		return
	}

	mtx.Lock()
	defer mtx.Unlock()

	if nocolor {
		fmt.Printf("[%s] %s\n", m.SName, m.Color(message))
		return
	}

	var tint string
	switch threshold {
	case MSGMAND:
		tint = GREEN1
	case MSGCRIT:
		tint = RED1
	case MSGWARN:
		tint = YELLOW1
	case MSGNOTE:
		tint = WHITE1
	case MSGFYI:
		tint = CYAN1
	case MSGPEEK:
		tint = BLUE1
	default:
		tint = GREY1
	}

	fmt.Printf("[%s%s%s] %s%s%s\n", YELLOW1, m.SName, RESET, tint, m.Color(message), RESET)
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, MSGMAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, MSGCRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, MSGWARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, MSGNOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, MSGFYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, MSGPEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, MSGTMI) }

// Color - swap C-tags for color escapes: "C2this stands outC0 and this does not"
func (m *MessageMaker) Color(tagged string) string {
	swap := strings.NewReplacer(
		"C1", YELLOW1, "C2", RED1, "C3", GREEN1, "C4", BLUE1,
		"C5", CYAN1, "C6", GREY1, "C7", WHITE1, "C0", RESET,
	)
	if nocolor {
		swap = strings.NewReplacer(
			"C1", "", "C2", "", "C3", "", "C4", "",
			"C5", "", "C6", "", "C7", "", "C0", "",
		)
	}
	return swap.Replace(tagged)
}

// Styled - swap style tags inside a string: "S1markedS0"
func (m *MessageMaker) Styled(tagged string) string {
	swap := strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S0", RESET)
	if nocolor {
		swap = strings.NewReplacer("S1", "", "S2", "", "S3", "", "S0", "")
	}
	return swap.Replace(tagged)
}

// ColStyle - color and style a string
func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Color(m.Styled(tagged))
}

// Error - an unrecoverable problem; scream and panic
func (m *MessageMaker) Error(err error) {
	const (
		BANNER = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR: PLEASE TAKE NOTE OF THE FOLLOWING PANIC MESSAGE%s"
	)
	if err == nil {
		return
	}
	fmt.Printf(BANNER+"\n", YELLOW1, vv.MYNAME, vv.VERSION, RESET, RED1, RESET)
	panic(err)
}

// EC - the one-line error check
func (m *MessageMaker) EC(err error) {
	m.Error(err)
}

// EF - Error() with formatting
func (m *MessageMaker) EF(format string, a ...any) {
	m.Error(fmt.Errorf(format, a...))
}

// Timer - report stage timing: "[C2: 3.213s][Δ: 0.112s] corpus vectorized"
func (m *MessageMaker) Timer(label string, message string, start time.Time, previous time.Time) {
	tot := fmt.Sprintf("[%s: %.3fs]", label, time.Since(start).Seconds())
	del := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	m.Emit(tot+del+message, TIMETRACKERTHRESH)
}

// ExitOrHang - Windows users who double-clicked need time to read the screen before it vanishes
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = "program will exit in %.0f seconds"
	)
	if m.Win {
		m.Emit(fmt.Sprintf(HANG, WINEXITDELAY.Seconds()), MSGMAND)
		time.Sleep(WINEXITDELAY)
	}
	os.Exit(e)
}
