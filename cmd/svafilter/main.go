// Command svafilter applies spatially variant apodization to a SAR
// single-look-complex product.
//
// Usage:
//
//	svafilter -in scene/ -out scene_sva/ [flags]
//
// The input is a product directory holding the I and Q bands of an
// already-prepared complex scene. The output product carries the filtered
// bands plus derived amplitude and intensity, and optionally the original
// unfiltered bands for downstream phase substitution.
//
// Examples:
//
//	svafilter -in scene -out scene_sva
//	svafilter -in scene -out scene_sva -mode amplitude -boundary zero
//	svafilter -in scene -out scene_sva -target 512,1024 -quicklook ql.png
//	svafilter -config run.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sar/measure/response"
	"github.com/cwbudde/algo-sar/sar/product"
	"github.com/cwbudde/algo-sar/sar/raster"
	"github.com/cwbudde/algo-sar/sar/sva"
)

type runConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	IBand     string `yaml:"i_band"`
	QBand     string `yaml:"q_band"`
	Mode      string `yaml:"mode"`
	Boundary  string `yaml:"boundary"`
	Precision string `yaml:"precision"`
	Workers   int    `yaml:"workers"`
	Quicklook string `yaml:"quicklook"`
	Target    string `yaml:"target"`
	KeepInput bool   `yaml:"keep_input_bands"`
}

func defaultConfig() runConfig {
	return runConfig{
		IBand:     "i",
		QBand:     "q",
		Mode:      "full-scene",
		Boundary:  "mirror",
		Precision: "float32",
		KeepInput: true,
	}
}

func main() {
	def := defaultConfig()

	cfgPath := flag.String("config", "", "YAML run configuration file (flags override it)")
	in := flag.String("in", def.Input, "input product directory")
	out := flag.String("out", def.Output, "output product directory")
	iBand := flag.String("i", def.IBand, "name of the in-phase band")
	qBand := flag.String("q", def.QBand, "name of the quadrature band")
	mode := flag.String("mode", def.Mode, "filter mode: full-scene or amplitude")
	boundary := flag.String("boundary", def.Boundary, "edge policy: mirror, zero or suppress")
	precision := flag.String("precision", def.Precision, "output sample encoding: float32 or float64")
	workers := flag.Int("workers", def.Workers, "row bands processed concurrently (0 = all CPUs)")
	quicklook := flag.String("quicklook", def.Quicklook, "write an amplitude quicklook PNG to this path")
	target := flag.String("target", def.Target, "point target \"row,col\" for response analysis")
	keep := flag.Bool("keep-input-bands", def.KeepInput, "copy the unfiltered I/Q bands into the output")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := def
	if *cfgPath != "" {
		raw, err := os.ReadFile(*cfgPath)
		if err != nil {
			log.WithError(err).Fatal("reading run configuration")
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.WithError(err).Fatal("parsing run configuration")
		}
	}

	// Explicitly-set flags win over the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *in
		case "out":
			cfg.Output = *out
		case "i":
			cfg.IBand = *iBand
		case "q":
			cfg.QBand = *qBand
		case "mode":
			cfg.Mode = *mode
		case "boundary":
			cfg.Boundary = *boundary
		case "precision":
			cfg.Precision = *precision
		case "workers":
			cfg.Workers = *workers
		case "quicklook":
			cfg.Quicklook = *quicklook
		case "target":
			cfg.Target = *target
		case "keep-input-bands":
			cfg.KeepInput = *keep
		}
	})

	if cfg.Input == "" || cfg.Output == "" {
		fmt.Fprintln(os.Stderr, "error: -in and -out are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("svafilter failed")
	}
}

func run(cfg runConfig) error {
	filterMode, err := parseMode(cfg.Mode)
	if err != nil {
		return err
	}

	boundary, err := parseBoundary(cfg.Boundary)
	if err != nil {
		return err
	}

	sampleType := product.SampleType(cfg.Precision)

	log.WithFields(log.Fields{
		"input":    cfg.Input,
		"mode":     filterMode,
		"boundary": boundary,
	}).Info("reading product")

	src, err := product.Read(cfg.Input)
	if err != nil {
		return err
	}

	scene, err := product.ComplexBands(src, cfg.IBand, cfg.QBand)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"rows": scene.Rows(),
		"cols": scene.Cols(),
	}).Info("filtering scene")

	opts := []sva.Option{sva.WithMode(filterMode), sva.WithBoundary(boundary)}
	if cfg.Workers > 0 {
		opts = append(opts, sva.WithWorkers(cfg.Workers))
	}

	filtered, err := sva.New(opts...).Run(scene)
	if err != nil {
		return err
	}

	ampBefore := raster.Amplitude(scene)
	ampAfter := raster.Amplitude(filtered)

	logStats("before", response.SceneStats(ampBefore))
	logStats("after", response.SceneStats(ampAfter))

	if cfg.Target != "" {
		if err := analyzeTarget(cfg.Target, ampBefore, ampAfter); err != nil {
			return err
		}
	}

	dst, err := product.New(src.Name+"_SVA", scene.Rows(), scene.Cols())
	if err != nil {
		return err
	}
	dst.Description = "SVA-filtered " + src.Description
	dst.SampleType = sampleType

	type outBand struct {
		name  string
		plane *raster.Plane
	}

	bands := []outBand{
		{cfg.IBand, filtered.I()},
		{cfg.QBand, filtered.Q()},
		{"amplitude", ampAfter},
		{"intensity", raster.Intensity(filtered)},
	}
	if cfg.KeepInput {
		bands = append(bands,
			outBand{cfg.IBand + "_orig", scene.I()},
			outBand{cfg.QBand + "_orig", scene.Q()},
		)
	}

	for _, b := range bands {
		if err := dst.AddBand(b.name, b.plane); err != nil {
			return err
		}
	}

	if err := dst.Write(cfg.Output); err != nil {
		return err
	}
	log.WithField("output", cfg.Output).Info("product written")

	if cfg.Quicklook != "" {
		if err := product.WriteQuicklook(cfg.Quicklook, ampAfter, 1024); err != nil {
			return err
		}
		log.WithField("path", cfg.Quicklook).Info("quicklook written")
	}

	return nil
}

func analyzeTarget(target string, before, after *raster.Plane) error {
	var r, c int
	if _, err := fmt.Sscanf(target, "%d,%d", &r, &c); err != nil {
		return fmt.Errorf("invalid -target %q (want \"row,col\"): %w", target, err)
	}

	if r < 0 || r >= before.Rows() || c < 0 || c >= before.Cols() {
		return fmt.Errorf("target (%d,%d) outside %dx%d scene", r, c, before.Rows(), before.Cols())
	}

	const halfWidth = 32
	analyzer := response.NewAnalyzer(16)

	for _, cut := range []struct {
		label string
		data  []float64
	}{
		{"range/before", response.RowCut(before, r, c, halfWidth)},
		{"range/after", response.RowCut(after, r, c, halfWidth)},
		{"azimuth/before", response.ColCut(before, r, c, halfWidth)},
		{"azimuth/after", response.ColCut(after, r, c, halfWidth)},
	} {
		m, err := analyzer.Analyze(cut.data)
		if err != nil {
			log.WithError(err).WithField("cut", cut.label).Warn("response analysis skipped")
			continue
		}

		log.WithFields(log.Fields{
			"cut":        cut.label,
			"pslr_db":    fmt.Sprintf("%.2f", m.PSLR),
			"islr_db":    fmt.Sprintf("%.2f", m.ISLR),
			"res_3db":    fmt.Sprintf("%.2f", m.Resolution3dB),
			"peak_value": fmt.Sprintf("%.4g", m.PeakValue),
		}).Info("point-target response")
	}

	return nil
}

func logStats(stage string, s response.Stats) {
	log.WithFields(log.Fields{
		"stage":  stage,
		"mean":   fmt.Sprintf("%.4g", s.Mean),
		"stddev": fmt.Sprintf("%.4g", s.StdDev),
		"max":    fmt.Sprintf("%.4g", s.Max),
		"p95":    fmt.Sprintf("%.4g", s.P95),
	}).Info("scene amplitude statistics")
}

func parseMode(s string) (sva.Mode, error) {
	switch strings.ToLower(s) {
	case "full-scene", "full", "complex":
		return sva.ModeFullScene, nil
	case "amplitude", "amplitude-based":
		return sva.ModeAmplitudeBased, nil
	default:
		return 0, fmt.Errorf("%w: %q", sva.ErrUnknownMode, s)
	}
}

func parseBoundary(s string) (sva.Boundary, error) {
	switch strings.ToLower(s) {
	case "mirror":
		return sva.BoundaryMirror, nil
	case "zero":
		return sva.BoundaryZero, nil
	case "suppress":
		return sva.BoundarySuppress, nil
	default:
		return 0, fmt.Errorf("%w: %q", sva.ErrUnknownBoundary, s)
	}
}
