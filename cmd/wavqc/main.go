// SPDX-License-Identifier: EPL-2.0

// Command wavqc prints quality-control characteristics of an 8kHz 16-bit
// mono PCM WAVE file.
//
//	wavqc [-config file.yaml] [-json] <file.wav>
//
// WAVQC_CONFIG names a config file when -config is not given. A .env file in
// the working directory is loaded first when present.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/wavqc"
	"github.com/ik5/wavqc/analysis"
)

const configEnv = "WAVQC_CONFIG"

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	asJSON     bool
	path       string
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var opts options

	flags := flag.NewFlagSet("wavqc", flag.ContinueOnError)
	flags.SetOutput(out)
	flags.StringVar(&opts.configPath, "config", "", "YAML file with analysis settings")
	flags.BoolVar(&opts.asJSON, "json", false, "Print the report as JSON")
	flags.Usage = func() {
		fmt.Fprintln(out, "Usage:\n  wavqc [-config file.yaml] [-json] <file.wav>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if flags.NArg() < 1 {
		flags.Usage()
		return opts, flag.ErrHelp
	}

	opts.path = flags.Arg(0)

	return opts, nil
}

func doMain(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, stdout)
	if stderrors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "parse flags")
	}

	if err := loadEnv(".env"); err != nil {
		return errors.Wrapf(err, "load .env")
	}

	cfg, err := loadConfig(ctx, opts.configPath)
	if err != nil {
		return errors.Wrapf(err, "load config")
	}

	doc, err := wavqc.Load(opts.path, cfg)
	if err != nil {
		return errors.Wrapf(err, "load %v", opts.path)
	}

	c := doc.Characteristics()
	logger.Tf(ctx, "analyzed %v, frames=%v, empty=%v, silence=%v, audio=%v",
		opts.path, c.TotalFrames, c.EmptyFrames, c.SilenceFrames, c.NonSilenceFrames)

	if !c.HasSignal {
		logger.Wf(ctx, "no frame of %v is above the noise floor", opts.path)
	}

	if opts.asJSON {
		if err := writeJSON(stdout, newFileReport(opts.path, doc)); err != nil {
			return errors.Wrapf(err, "write json")
		}

		return nil
	}

	if err := writeText(stdout, doc.FormatSummary(), c); err != nil {
		return errors.Wrapf(err, "write report")
	}

	return nil
}

// loadEnv applies KEY=value pairs from file. A missing file is not an error.
func loadEnv(file string) error {
	if err := godotenv.Load(file); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// loadConfig resolves the analysis settings: the -config flag, then
// WAVQC_CONFIG, then the built-in defaults.
func loadConfig(ctx context.Context, path string) (analysis.Config, error) {
	if path == "" {
		path = os.Getenv(configEnv)
	}

	if path == "" {
		return analysis.DefaultConfig(), nil
	}

	cfg, err := analysis.LoadConfig(path)
	if err != nil {
		return analysis.Config{}, errors.Wrapf(err, "config %v", path)
	}

	logger.Tf(ctx, "config %v: frame=%vms, floor=%v, normalization=%v",
		path, cfg.FrameLengthMs, cfg.NoiseFloorPower, cfg.NormalizationFraction)

	return cfg, nil
}
