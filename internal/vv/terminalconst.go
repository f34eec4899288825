//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MINCONFIG = `
{"PostgreSQLPassword": "YOURPASSWORDHERE"}
`

	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2025-26"
	PROJAUTH = "Fin-Corpora"
	PROJMAIL = "ops@fin-corpora.io"
	PROJURL  = "https://github.com/fin-corpora/EarningsCallTopics"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-cfC0 C2{file}C0   read the configuration from C3{file}C0 instead of "C3{{.conffile}}C0"
   C1-csC0 C2{string}C0 comma separated roster of call ids to model: "C4ADSK-Q2-2021,AAPL-Q1-2019C0"
   C1-dbC0          debug database: show the queries sent to the database
   C1-evC0 C2{string}C0 event type to select within a quarter [C6currentC0: C3{{.event}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.ectll}}C0]
   C1-guC0          drop words missing from the lexicon instead of guessing at them
   C1-hC0           print this help information
   C1-ltC0 C2{file}C0   model from a sqlite snapshot instead of PostgreSQL
   C1-lxC0 C2{string}C0 name of the lexicon to consult [C6currentC0: C3{{.lexicon}}C0]
   C1-mxC0 C2{num}C0    maximum transcript length in characters [C6currentC0: C3{{.maxchars}}C0]
   C1-ncC0 C2{num}C0    nearest neighbors to report per topic keyword [C6currentC0: C3{{.nbrs}}C0]
   C1-nnC0          skip the nearest neighbor search for the topic keywords
   C1-odC0 C2{dir}C0    directory for the html and xlsx output [C6currentC0: C3{{.outdir}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pgC0 C2{string}C0 supply full PostgreSQL credentials C4(*)C0
   C1-pmC0          enable MEM profiling run
   C1-psC0 C2{num}C0    sampling passes over the corpus [C6currentC0: C3{{.passes}}C0]
   C1-qC0           quiet startup: suppress copyright notice
   C1-saC0 C2{string}C0 report server IP address [C6currentC0: C3{{.host}}C0]
   C1-sdC0 C2{num}C0    sampler seed; a fixed seed replays bit for bit [C6currentC0: C3{{.seed}}C0]
   C1-spC0 C2{num}C0    report server port [C6currentC0: C3{{.port}}C0]
   C1-srvC0         serve the output directory over http when the run ends
   C1-tpC0 C2{num}C0    number of topics to extract (C11-{{.maxtopics}}C0) [C6currentC0: C3{{.topics}}C0]
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of retrieval workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
   C1-wxC0          also write an xlsx workbook of the topics
   C1-00C0          erase the configuration files and exit
     (*) S3exampleS0:
         C4"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"calltopicsDB\" ,\"User\": \"calltopics\"}"C0

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
         ECT_PSQL_HOST, ECT_PSQL_PORT, ECT_PSQL_USER, ECT_PSQL_PASS and ECT_PSQL_DB are honored
         if a "C3.envC0" file is present. See the sample configuration files at
             C3{{.projurl}}C0
`
)
