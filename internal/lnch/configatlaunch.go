//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/fin-corpora/EarningsCallTopics/internal/mm"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	"github.com/joho/godotenv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.New()
)

// ConfigAtLaunch - defaults, then the JSON config file, then .env/environment, then the command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\", \"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"calltopicsDB\", \"User\": \"calltopics\"}"`
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL4 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL5 = "topic count %d is out of range [1, %d] ---> using %d"
		FAIL6 = "cannot make any sense of the roster id 'C2%sC0'"
		WARN1 = "trainer workers set to %d: runs will no longer replay bit for bit"
	)

	Config = BuildDefaultConfig()

	// [a] the JSON config file: the cwd wins over the home directory
	cf := locateconfigfile()

	args := os.Args[1:]
	for i, a := range args {
		if a == "-cf" && i+1 < len(args) {
			cf = args[i+1]
		}
	}

	loaded, e := os.Open(cf)
	if e == nil {
		decoder := json.NewDecoder(loaded)
		conf := str.CurrentConfiguration{}
		errc := decoder.Decode(&conf)
		_ = loaded.Close()
		if errc == nil {
			Config = &conf
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL3, cf))
		}
		Msg.TMI(fmt.Sprintf("'%s' loaded", cf))
	} else {
		writedefaultconfig()
	}

	// [b] .env and the environment: credentials do not belong in JSON on disk
	envoverlay()

	// [c] the command line outranks everything
	for i, a := range args {
		switch a {
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-bw":
			Config.BlackAndWhite = true
		case "-cf":
			// already handled
		case "-cs":
			Config.Roster = strings.Split(args[i+1], ",")
		case "-db":
			Config.DbDebug = true
		case "-ev":
			Config.EventType = args[i+1]
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-gu":
			Config.GuessUnknown = false
		case "-h":
			printhelp()
		case "-lt":
			Config.LiteDB = args[i+1]
		case "-lx":
			Config.LexiconName = args[i+1]
		case "-mx":
			mx, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MaxDocChars = mx
		case "-nc":
			nc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.NeighborCount = nc
		case "-nn":
			Config.Neighbors = false
		case "-od":
			Config.OutDir = args[i+1]
		case "-pc":
			Config.ProfileCPU = true
		case "-pg":
			js := args[i+1]
			var pl str.PostgresLogin
			err := json.Unmarshal([]byte(js), &pl)
			if err != nil {
				Msg.MAND(FAIL1)
				Msg.CRIT(FAIL2)
			}
			Config.PGLogin = pl
		case "-pm":
			Config.ProfileMEM = true
		case "-ps":
			ps, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LdaPasses = ps
		case "-q":
			Config.QuietStart = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sd":
			sd, err := strconv.ParseUint(args[i+1], 10, 64)
			Msg.EC(err)
			Config.LdaSeed = sd
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.HostPort = p
		case "-srv":
			Config.ReportServer = true
		case "-tp":
			tp, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LdaTopics = tp
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		case "-wx":
			Config.WriteXLSX = true
		case "-00":
			wipeconfig()
			os.Exit(0)
		default:
			// do nothing
		}
	}

	// [d] validation

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL4, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	if Config.WorkerCount < 1 {
		Config.WorkerCount = 1
	}

	if Config.LdaTopics < 1 || Config.LdaTopics > vv.LDAMAXTOPICS {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.LdaTopics, vv.LDAMAXTOPICS, vv.LDATOPICS))
		Config.LdaTopics = vv.LDATOPICS
	}

	if Config.LdaPasses < 1 {
		Config.LdaPasses = vv.LDAPASSES
	}

	if Config.LdaWorkers > runtime.NumCPU() {
		Config.LdaWorkers = runtime.NumCPU()
	}

	if Config.LdaWorkers < 1 {
		Config.LdaWorkers = 1
	}

	if Config.LdaWorkers > 1 {
		Msg.WARN(fmt.Sprintf(WARN1, Config.LdaWorkers))
	}

	if Config.MaxDocChars < 1 {
		Config.MaxDocChars = vv.MAXDOCCHARS
	}

	if Config.CohWindow < 2 {
		Config.CohWindow = vv.COHWINDOW
	}

	if Config.CohTopN < 2 {
		Config.CohTopN = vv.COHTOPN
	}

	if Config.TopNKeywords < 1 {
		Config.TopNKeywords = vv.TOPNKEYWORDS
	}

	if Config.NeighborCount < 1 {
		Config.NeighborCount = vv.NEIGHBORCOUNT
	}

	if len(Config.Roster) == 0 {
		Config.Roster = vv.DefaultRoster
	}

	for _, id := range Config.Roster {
		if _, err := str.ParseCallID(id); err != nil {
			Msg.MAND(fmt.Sprintf(FAIL6, id))
			Msg.CRIT(err.Error())
			Msg.ExitOrHang(0)
		}
	}

	mm.SetLevel(Config.LogLevel)
	mm.SetBW(Config.BlackAndWhite)
}

// locateconfigfile - the cwd copy wins; otherwise look in the home config directory
func locateconfigfile() string {
	local := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	if _, e := os.Stat(local); e == nil {
		return local
	}

	uh, e := os.UserHomeDir()
	if e != nil {
		return local
	}
	return fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGBASIC
}

// envoverlay - ECT_PSQL_* beats the JSON file; a .env in the cwd feeds the environment first
func envoverlay() {
	_ = godotenv.Load()

	if v := os.Getenv("ECT_PSQL_HOST"); v != "" {
		Config.PGLogin.Host = v
	}
	if v := os.Getenv("ECT_PSQL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			Config.PGLogin.Port = p
		}
	}
	if v := os.Getenv("ECT_PSQL_USER"); v != "" {
		Config.PGLogin.User = v
	}
	if v := os.Getenv("ECT_PSQL_PASS"); v != "" {
		Config.PGLogin.Pass = v
	}
	if v := os.Getenv("ECT_PSQL_DB"); v != "" {
		Config.PGLogin.DBName = v
	}
}

// writedefaultconfig - first run: put a template in the home config directory so there is something to edit
func writedefaultconfig() {
	const (
		WROTE = "wrote a default configuration to 'C3%sC0'; postgres credentials belong in '.env' or ECT_PSQL_*"
		FAIL  = "could not write '%s'"
	)

	uh, e := os.UserHomeDir()
	if e != nil {
		return
	}

	_ = os.MkdirAll(fmt.Sprintf(vv.CONFIGALTAPTH, uh), os.FileMode(0700))

	p := fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGBASIC
	content, err := json.MarshalIndent(Config, "", "  ")
	if err != nil {
		return
	}

	if err = os.WriteFile(p, content, vv.WRITEPERMS); err != nil {
		Msg.TMI(fmt.Sprintf(FAIL, p))
		return
	}
	Msg.NOTE(fmt.Sprintf(WROTE, p))
}

// wipeconfig - "-00" on the command line: remove the stored configuration
func wipeconfig() {
	const (
		GONE = "removed '%s'"
	)

	uh, e := os.UserHomeDir()
	if e != nil {
		return
	}

	for _, f := range []string{vv.CONFIGBASIC, vv.CONFIGSTOPS} {
		p := fmt.Sprintf(vv.CONFIGALTAPTH, uh) + f
		if err := os.Remove(p); err == nil {
			Msg.CRIT(fmt.Sprintf(GONE, p))
		}
	}
}
