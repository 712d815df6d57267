//go:build analysis

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	ntru "github.com/SrihariX911/Secure-Drone-Communication/ntru"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Renders histograms of public-key and ciphertext coefficients over many
// encryptions. A healthy parameter set shows both close to uniform on
// [0, q); visible structure would mean the blinding is leaking.

func toBarItems(counts []int) []opts.BarData {
	out := make([]opts.BarData, len(counts))
	for i, v := range counts {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, counts []int) *charts.Bar {
	labels := make([]string, len(counts))
	for i := range counts {
		labels[i] = strconv.Itoa(i)
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func main() {
	runs := flag.Int("runs", 256, "number of encryptions to sample")
	out := flag.String("out", "coeff_hist.html", "output HTML file")
	flag.Parse()

	par, err := ntru.PresetN107()
	if err != nil {
		log.Fatalf("preset: %v", err)
	}
	prng, err := ntru.NewSystemPRNG()
	if err != nil {
		log.Fatalf("prng: %v", err)
	}
	_, pub, err := ntru.GenerateKeyPair(par, prng, ntru.KeygenOpts{})
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}

	hCounts := make([]int, par.Q)
	for _, c := range pub.H {
		hCounts[c]++
	}

	eCounts := make([]int, par.Q)
	m := ntru.NewPoly(par.N) // zero message isolates the r*h term
	for i := 0; i < *runs; i++ {
		e, err := ntru.Encrypt(pub, m, prng)
		if err != nil {
			log.Fatalf("encrypt: %v", err)
		}
		for _, c := range e {
			eCounts[c]++
		}
	}

	page := components.NewPage()
	page.AddCharts(
		newHistogramChart(fmt.Sprintf("public key coefficients, N=%d q=%d", par.N, par.Q), hCounts),
		newHistogramChart(fmt.Sprintf("ciphertext coefficients, %d encryptions", *runs), eCounts),
	)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}
