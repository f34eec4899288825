//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/fin-corpora/EarningsCallTopics/internal/mm"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var msg = mm.New()

// ServeReports - serve the output directory over http; this blocks and does not return while the program remains alive
func ServeReports(cfg str.CurrentConfiguration) {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		UP      = "reports are at C3http://%s:%d/C0; C1control-cC0 ends the program"
	)

	e := echo.New()

	// a local reporting tool, but sockets still should not hang forever
	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	if mm.Level() >= mm.MSGFYI {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	}

	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))

	e.GET("/", rtreportindex(cfg.OutDir))
	e.Static("/reports", cfg.OutDir)

	msg.MAND(fmt.Sprintf(UP, cfg.HostIP, cfg.HostPort))

	e.HideBanner = true
	e.HidePort = true
	e.Debug = false
	e.DisableHTTP2 = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", cfg.HostIP, cfg.HostPort)))
}

// rtreportindex - a bare list of the generated reports, newest run first
func rtreportindex(outdir string) echo.HandlerFunc {
	const (
		PAGE = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{ .Title }}</title></head>
<body>
<h3>{{ .Title }}</h3>
<ul>
{{- range .Files }}
<li><a href="/reports/{{ . }}">{{ . }}</a></li>
{{- end }}
</ul>
</body>
</html>`
	)

	t := template.Must(template.New("reportindex").Parse(PAGE))

	return func(c echo.Context) error {
		ee, e := os.ReadDir(outdir)
		if e != nil {
			return c.String(http.StatusInternalServerError, e.Error())
		}

		type hit struct {
			name string
			mod  int64
		}

		var hh []hit
		for _, ent := range ee {
			if ent.IsDir() || strings.HasPrefix(ent.Name(), ".") {
				continue
			}
			info, err := ent.Info()
			if err != nil {
				continue
			}
			hh = append(hh, hit{name: ent.Name(), mod: info.ModTime().UnixNano()})
		}

		sort.Slice(hh, func(i, j int) bool {
			if hh[i].mod != hh[j].mod {
				return hh[i].mod > hh[j].mod
			}
			return hh[i].name < hh[j].name
		})

		names := make([]string, len(hh))
		for i := range hh {
			names[i] = hh[i].name
		}

		var b bytes.Buffer
		err := t.Execute(&b, map[string]any{"Title": vv.MYNAME + " reports", "Files": names})
		if err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}

		return c.HTML(http.StatusOK, b.String())
	}
}
