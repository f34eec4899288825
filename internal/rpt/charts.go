//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"fmt"
	"os"
	"sort"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/fin-corpora/EarningsCallTopics/internal/gen"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// see https://echarts.apache.org/en/option.html#series-wordCloud for what the options map onto

// WordCloudHTML - the corpus vocabulary as a standalone word cloud page
func WordCloudHTML(rd ReportData, path string) error {
	const (
		TITLE = "EarningsCallTopics: run %s"
		SUBT  = "%d calls; the %d heaviest of %d lemmas"
	)

	// [a] count the whole corpus

	all := make([][]string, len(rd.Docs))
	for i := range rd.Docs {
		all[i] = rd.Docs[i].Lemmas
	}

	counts := make(map[string]int)
	for _, l := range gen.Flatten(all) {
		counts[l]++
	}

	wl := make(str.WLList, 0, len(counts))
	for w, c := range counts {
		wl = append(wl, str.WeightedLemma{Word: w, Count: c})
	}
	sort.Sort(wl)

	shown := len(wl)
	if shown > vv.CLOUDMAXWORDS {
		shown = vv.CLOUDMAXWORDS
	}

	data := make([]opts.WordCloudData, shown)
	for i := 0; i < shown; i++ {
		data[i] = opts.WordCloudData{Name: wl[i].Word, Value: wl[i].Count}
	}

	// [b] acquire and configure a charts.WordCloud

	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     rd.Cfg.ChtWidth,
			Height:    rd.Cfg.ChtHeight,
			PageTitle: fmt.Sprintf(TITLE, rd.RunID),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf(TITLE, rd.RunID),
			Subtitle: fmt.Sprintf(SUBT, len(rd.Docs), shown, len(wl)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	wc.AddSeries("lemmas", data).
		SetSeriesOptions(
			charts.WithWorldCloudChartOpts(opts.WordCloudChart{
				SizeRange: []float32{14, 80},
				Shape:     "circle",
			}),
		)

	// [c] render a single-chart page to disk

	return renderpage(wc, path)
}

// ScatterHTML - every call plotted by its topic mixture, squeezed onto a plane
func ScatterHTML(rd ReportData, path string) error {
	const (
		TITLE = "EarningsCallTopics: run %s"
		SUBT  = "t-SNE over %d document-topic mixtures"
		SKIP  = "only %d calls on the roster; the scatter needs %d or more to mean anything"
	)

	ndocs, _ := rd.Mixtures.Dims()
	if ndocs < vv.TSNEMINDOCS {
		msg.NOTE(fmt.Sprintf(SKIP, ndocs, vv.TSNEMINDOCS))
		return nil
	}

	// [a] squeeze the mixtures onto a plane; tiny rosters need a tamer perplexity

	perplexity := float64(vv.TSNEPERPLEXITY)
	if cap := float64(ndocs-1) / 3.0; cap < perplexity {
		perplexity = cap
	}

	t := tsne.NewTSNE(2, perplexity, vv.TSNELEARNRATE, vv.TSNEMAXITER, false)
	t.EmbedData(rd.Mixtures, nil)

	// [b] one series per dominant topic so the colors mean something

	series := make(map[int][]opts.ScatterData)
	for d := 0; d < ndocs; d++ {
		k := rd.Dominant[d]
		series[k] = append(series[k], opts.ScatterData{
			Name:       rd.Labels[d],
			Value:      []interface{}{t.Y.At(d, 0), t.Y.At(d, 1)},
			Symbol:     "circle",
			SymbolSize: 14,
		})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     rd.Cfg.ChtWidth,
			Height:    rd.Cfg.ChtHeight,
			PageTitle: fmt.Sprintf(TITLE, rd.RunID),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf(TITLE, rd.RunID),
			Subtitle: fmt.Sprintf(SUBT, ndocs),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: "{b}"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	topics := make([]int, 0, len(series))
	for k := range series {
		topics = append(topics, k)
	}
	sort.Ints(topics)

	for _, k := range topics {
		sc.AddSeries(fmt.Sprintf("topic %d", k+1), series[k])
	}

	return renderpage(sc, path)
}

// renderpage - a page with only one chart on it
func renderpage(c components.Charter, path string) error {
	p := components.NewPage()
	p.AddCharts(c)

	f, e := os.Create(path)
	if e != nil {
		return e
	}

	if e = p.Render(f); e != nil {
		_ = f.Close()
		return e
	}
	return f.Close()
}
