package main

import (
	"runtime"
	"strconv"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

const version = "0.1.0"

type Config struct {
	Inputs        []string
	Workers       int
	JSON          bool
	FailuresDir   string
	Timeout       time.Duration
	FetchesPerMin int
	MaxFetches    int
	Debug         bool
}

func parseConfig(args []string) (*Config, error) {
	app := kingpin.New("osulegacy", "Decode legacy .osu beatmaps and print a summary of each.")
	app.Version(version)

	cfg := &Config{}
	app.Arg("inputs", ".osu files, directories holding them, or http(s) URLs").Required().StringsVar(&cfg.Inputs)
	app.Flag("workers", "Beatmaps decoded in parallel").Short('w').Default(strconv.Itoa(runtime.NumCPU())).IntVar(&cfg.Workers)
	app.Flag("json", "Print summaries as JSON").Short('j').BoolVar(&cfg.JSON)
	app.Flag("failures", "Write a report per failing input into this directory").Short('f').StringVar(&cfg.FailuresDir)
	app.Flag("timeout", "Timeout for each URL fetch").Default("2m").DurationVar(&cfg.Timeout)
	app.Flag("rate", "URL fetches per minute").Default("30").IntVar(&cfg.FetchesPerMin)
	app.Flag("concurrent-fetches", "URL fetches in flight at once").Default("2").IntVar(&cfg.MaxFetches)
	app.Flag("debug", "Log input the decoder ignores").Short('d').BoolVar(&cfg.Debug)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	cfg.Workers = max(cfg.Workers, 1)
	cfg.FetchesPerMin = max(cfg.FetchesPerMin, 1)
	cfg.MaxFetches = max(cfg.MaxFetches, 1)
	return cfg, nil
}
