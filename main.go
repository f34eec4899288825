//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fin-corpora/EarningsCallTopics/internal/coh"
	"github.com/fin-corpora/EarningsCallTopics/internal/corp"
	"github.com/fin-corpora/EarningsCallTopics/internal/db"
	"github.com/fin-corpora/EarningsCallTopics/internal/lda"
	"github.com/fin-corpora/EarningsCallTopics/internal/lnch"
	"github.com/fin-corpora/EarningsCallTopics/internal/mm"
	"github.com/fin-corpora/EarningsCallTopics/internal/rpt"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/tok"
	"github.com/fin-corpora/EarningsCallTopics/internal/vec"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	"github.com/fin-corpora/EarningsCallTopics/web"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var msg = mm.New()

// the pipeline: pull transcripts, lemmatize them, bag them, model them, score the model, report;
// every stage is all-or-nothing, so the first error ends the run

func main() {
	lnch.ConfigAtLaunch()
	c := lnch.Config

	// profile.Start() panics if called twice, so cpu wins when both were requested
	if c.ProfileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	} else if c.ProfileMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if !c.QuietStart {
		lnch.PrintVersion(*c)
		fmt.Printf(vv.TERMINALTEXT+"\n", vv.PROJYEAR, vv.PROJAUTH, vv.PROJMAIL)
	}

	runid := strings.Split(uuid.New().String(), "-")[0]

	model(runid, rosterids(c.Roster))

	if c.ReportServer {
		web.ServeReports(*c)
	}

	msg.ExitOrHang(0)
}

// model - run the six stages in order against one roster
func model(runid string, ids []str.CallID) {
	const (
		A1   = "%d transcripts pulled (%s words)"
		A2   = "%d documents tokenized (%s lemmas retained)"
		A3   = "dictionary built (%s distinct lemmas); %d bags of words vectorized"
		A4   = "%d-topic model fitted (%d passes over the corpus)"
		A5   = "c_v coherence scored: %.3f"
		A6   = "nearest neighbors trained for %d keywords"
		DONE = "run %s finished in %.2fs; reports in 'C3%sC0'"
	)

	c := lnch.Config
	start := vv.LaunchTime
	previous := time.Now()

	pr := message.NewPrinter(language.English)

	// [a] retrieval

	src := openstore(*c)
	defer src.Close()

	transcripts, e := db.PullTranscripts(src, *c, ids)
	quitonerror(e)

	wc := 0
	for i := range transcripts {
		wc += len(strings.Fields(transcripts[i].Text))
	}
	msg.Timer("A1", fmt.Sprintf(A1, len(transcripts), pr.Sprintf("%d", wc)), start, previous)
	previous = time.Now()

	// [b] normalization: transcripts into lemma documents

	nrm, e := tok.NewNormalizer(*c, src, transcripts)
	quitonerror(e)

	docs, e := nrm.TokenizeAll(transcripts)
	quitonerror(e)

	kept := 0
	for i := range docs {
		kept += len(docs[i].Lemmas)
	}
	msg.Timer("A2", fmt.Sprintf(A2, len(docs), pr.Sprintf("%d", kept)), start, previous)
	previous = time.Now()

	// [c] dictionary and bags of words

	dict := corp.BuildDictionary(docs)
	bows := corp.VectorizeAll(docs, dict)
	msg.Timer("A3", fmt.Sprintf(A3, pr.Sprintf("%d", dict.Len()), len(bows)), start, previous)
	previous = time.Now()

	// [d] the topic model itself

	m, e := lda.Fit(bows, dict, lda.FromConfig(*c))
	quitonerror(e)
	msg.Timer("A4", fmt.Sprintf(A4, c.LdaTopics, c.LdaPasses), start, previous)
	previous = time.Now()

	// [e] evaluation

	topics, e := m.TopTerms(c.CohTopN)
	quitonerror(e)

	coherence, e := coh.CVScore(coh.Terms(topics), docs, c.CohWindow)
	quitonerror(e)
	msg.Timer("A5", fmt.Sprintf(A5, coherence.Score), start, previous)
	previous = time.Now()

	// [f] reporting

	labels := make([]string, len(docs))
	for i := range docs {
		labels[i] = docs[i].ID.String()
	}

	rd := rpt.ReportData{
		RunID:      runid,
		Cfg:        *c,
		Topics:     topics,
		Shares:     m.TopicShares(),
		Dominant:   m.DominantTopics(),
		Coherence:  coherence,
		Docs:       docs,
		Labels:     labels,
		Mixtures:   m.DocTopicMixtures(),
		TokenTotal: corp.TokenTotal(bows),
		VocabSize:  dict.Len(),
	}

	if c.Neighbors {
		nn, err := vec.NearestNeighbors(docs, rpt.TopKeywords(rd), *c)
		quitonerror(err)
		rd.Neighbors = nn
		msg.Timer("A6", fmt.Sprintf(A6, len(nn)), start, previous)
		previous = time.Now()
	}

	rpt.ConsoleReport(rd)

	outdir := preparedir(c.OutDir)
	quitonerror(rpt.WordCloudHTML(rd, filepath.Join(outdir, fmt.Sprintf("wordcloud_%s.html", runid))))
	quitonerror(rpt.ScatterHTML(rd, filepath.Join(outdir, fmt.Sprintf("scatter_%s.html", runid))))

	if c.WriteXLSX {
		quitonerror(rpt.WorkbookXLSX(rd, filepath.Join(outdir, fmt.Sprintf("topics_%s.xlsx", runid))))
	}

	msg.Emit(msg.Color(fmt.Sprintf(DONE, runid, time.Since(start).Seconds(), outdir)), mm.MSGMAND)
}

// rosterids - the validated roster as CallIDs, with a checklist at the default log level
func rosterids(roster []string) []str.CallID {
	const (
		HD = "modeling %d calls: C3%sC0"
	)

	ids := make([]str.CallID, len(roster))
	for i, r := range roster {
		id, e := str.ParseCallID(r)
		quitonerror(e)
		ids[i] = id
	}

	ss := make([]string, len(ids))
	for i := range ids {
		ss[i] = ids[i].String()
	}
	msg.NOTE(fmt.Sprintf(HD, len(ids), strings.Join(ss, ", ")))

	return ids
}

// openstore - a sqlite snapshot if one was named, the live archive otherwise
func openstore(cfg str.CurrentConfiguration) db.TranscriptSource {
	const (
		LITE = "modeling from the sqlite snapshot 'C3%sC0'"
		LIVE = "modeling from PostgreSQL at C3%s:%dC0"
	)

	if cfg.LiteDB != "" {
		msg.NOTE(fmt.Sprintf(LITE, cfg.LiteDB))
		ls, e := db.OpenLite(cfg.LiteDB, cfg)
		quitonerror(e)
		return ls
	}

	msg.NOTE(fmt.Sprintf(LIVE, cfg.PGLogin.Host, cfg.PGLogin.Port))
	return db.NewPGStore(db.FillDBConnectionPool(cfg), cfg)
}

// preparedir - the output directory has to exist and take writes before the renderers need it
func preparedir(dir string) string {
	const (
		FAIL = "cannot write to the output directory '%s': %s"
	)

	e := os.MkdirAll(dir, os.FileMode(0755))
	if e != nil {
		msg.MAND(fmt.Sprintf(FAIL, dir, e.Error()))
		msg.ExitOrHang(1)
	}

	probe := filepath.Join(dir, ".ect-write-probe")
	if e = os.WriteFile(probe, []byte{}, vv.WRITEPERMS); e != nil {
		msg.MAND(fmt.Sprintf(FAIL, dir, e.Error()))
		msg.ExitOrHang(1)
	}
	_ = os.Remove(probe)

	return dir
}

// quitonerror - mandatory message, nonzero exit; there are no partial results worth saving
func quitonerror(e error) {
	if e == nil {
		return
	}
	msg.MAND(msg.Color("C2" + e.Error() + "C0"))
	msg.ExitOrHang(1)
}
