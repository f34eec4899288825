//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"text/template"

	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
)

// BuildDefaultConfig - a sane starting point that the config file, the environment, and the flags then overlay
func BuildDefaultConfig() *str.CurrentConfiguration {
	cc := str.CurrentConfiguration{
		BlackAndWhite:  false,
		ChtHeight:      vv.DEFAULTCHRTHEIGHT,
		ChtWidth:       vv.DEFAULTCHRTWIDTH,
		CohTopN:        vv.COHTOPN,
		CohWindow:      vv.COHWINDOW,
		DbDebug:        false,
		EventType:      vv.DEFAULTEVENT,
		GuessUnknown:   true,
		HostIP:         vv.SERVEDFROMHOST,
		HostPort:       vv.SERVEDFROMPORT,
		LdaBurnIn:      vv.LDABURNINPASSES,
		LdaPasses:      vv.LDAPASSES,
		LdaSeed:        vv.LDASEED,
		LdaTopics:      vv.LDATOPICS,
		LdaWorkers:     1,
		LdaXformPasses: vv.LDAXFORMPASSES,
		LexiconName:    vv.DEFAULTLEXICON,
		LiteDB:         "",
		LogLevel:       vv.DEFAULTGOLOGLEVEL,
		MaxDocChars:    vv.MAXDOCCHARS,
		NeighborCount:  vv.NEIGHBORCOUNT,
		Neighbors:      true,
		OutDir:         vv.DEFAULTOUTDIR,
		PGLogin: str.PostgresLogin{
			Host:   vv.DEFAULTPSQLHOST,
			Port:   vv.DEFAULTPSQLPORT,
			User:   vv.DEFAULTPSQLUSER,
			Pass:   "",
			DBName: vv.DEFAULTPSQLDB,
		},
		ProfileCPU:   false,
		ProfileMEM:   false,
		QuietStart:   false,
		ReportServer: false,
		Roster:       nil,
		TopNKeywords: vv.TOPNKEYWORDS,
		WorkerCount:  runtime.NumCPU(),
		WriteXLSX:    false,
	}
	return &cc
}

// printhelp - fill out and print HELPTEXTTEMPLATE, then exit
func printhelp() {
	const (
		FAIL = "printhelp() could not execute the help template"
	)

	h, e := os.UserHomeDir()
	if e != nil {
		h = "(unknown)"
	}

	m := map[string]interface{}{
		"conffile":  vv.CONFIGBASIC,
		"cpus":      runtime.NumCPU(),
		"ectll":     Config.LogLevel,
		"event":     Config.EventType,
		"home":      fmt.Sprintf(vv.CONFIGALTAPTH, h),
		"host":      Config.HostIP,
		"lexicon":   Config.LexiconName,
		"maxchars":  Config.MaxDocChars,
		"maxtopics": vv.LDAMAXTOPICS,
		"nbrs":      Config.NeighborCount,
		"outdir":    Config.OutDir,
		"passes":    Config.LdaPasses,
		"port":      Config.HostPort,
		"projurl":   vv.PROJURL,
		"seed":      Config.LdaSeed,
		"topics":    Config.LdaTopics,
		"workers":   Config.WorkerCount,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, m); ee != nil {
		Msg.CRIT(FAIL)
	}
	fmt.Println(Msg.Styled(Msg.Color(b.String())))

	os.Exit(0)
}
