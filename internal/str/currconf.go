//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite  bool
	ChtHeight      string
	ChtWidth       string
	CohTopN        int
	CohWindow      int
	DbDebug        bool
	EventType      string
	GuessUnknown   bool // lexicon misses become self-lemma NOUNs when true; dropped when false
	HostIP         string
	HostPort       int
	LdaBurnIn      int
	LdaPasses      int
	LdaSeed        uint64
	LdaTopics      int
	LdaWorkers     int
	LdaXformPasses int
	LexiconName    string
	LiteDB         string // path to a sqlite snapshot; empty means postgres
	LogLevel       int
	MaxDocChars    int
	NeighborCount  int
	Neighbors      bool
	OutDir         string
	PGLogin        PostgresLogin
	ProfileCPU     bool
	ProfileMEM     bool
	QuietStart     bool
	ReportServer   bool
	Roster         []string
	TopNKeywords   int
	WorkerCount    int
	WriteXLSX      bool
}
