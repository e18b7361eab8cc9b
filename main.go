package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/remeh/sizedwaitgroup"

	"osulegacy/dotosu"
)

func main() {
	failed, err := run(context.Background(), os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatalln(err)
	}
	if failed > 0 {
		os.Exit(2)
	}
}

type runner struct {
	cfg     *Config
	fetcher *fetcher
}

// run decodes every input and prints a summary of each beatmap, in input
// order. It returns the number of beatmaps that failed to decode.
func run(ctx context.Context, args []string, out io.Writer) (int, error) {
	cfg, err := parseConfig(args)
	if err != nil {
		return 0, err
	}
	sources, err := collectInputs(cfg.Inputs)
	if err != nil {
		return 0, err
	}
	r := &runner{cfg: cfg, fetcher: newFetcher(cfg)}

	results := make([][]Summary, len(sources))
	wg := sizedwaitgroup.New(cfg.Workers)
	for i, src := range sources {
		i, src := i, src
		wg.Add()
		go func() {
			defer wg.Done()
			results[i] = r.decodeSource(ctx, src)
		}()
	}
	wg.Wait()

	var summaries []Summary
	for _, res := range results {
		summaries = append(summaries, res...)
	}

	failed := 0
	for _, s := range summaries {
		if s.Error == "" {
			continue
		}
		failed++
		log.Printf("decode failed: %s: %s", s.Source, s.Error)
	}

	if cfg.JSON {
		data, err := json.MarshalIndent(summaries, "", "\t")
		if err != nil {
			return failed, err
		}
		_, err = fmt.Fprintln(out, string(data))
		return failed, err
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintln(out, s.String()); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// decodeSource yields one summary per beatmap in src; an archive holds several.
func (r *runner) decodeSource(ctx context.Context, src string) []Summary {
	data, err := r.read(ctx, src)
	if err != nil {
		return []Summary{r.failed(src, 0, err)}
	}
	if !isArchive(src) {
		return []Summary{r.decode(src, data)}
	}
	entries, err := extractBeatmaps(data)
	if err != nil {
		return []Summary{r.failed(src, int64(len(data)), err)}
	}
	out := make([]Summary, 0, len(entries))
	for _, e := range entries {
		out = append(out, r.decode(src+":"+e.Name, e.Data))
	}
	return out
}

func (r *runner) decode(src string, data []byte) Summary {
	var bm *dotosu.Beatmap
	err := guarded(func() error {
		var err error
		bm, err = dotosu.DecodeWithOptions(bytes.NewReader(data), r.options(src))
		return err
	})
	if err != nil {
		return r.failed(src, int64(len(data)), err)
	}
	return summarise(src, int64(len(data)), bm)
}

func (r *runner) failed(src string, size int64, err error) Summary {
	if r.cfg.FailuresDir != "" {
		if ferr := Fail(r.cfg.FailuresDir, src, err); ferr != nil {
			log.Printf("unable to write failure report for %s: %v", src, ferr)
		}
	}
	return Summary{Source: src, Size: size, Error: err.Error()}
}

func (r *runner) read(ctx context.Context, src string) ([]byte, error) {
	if isURL(src) {
		return r.fetcher.fetch(ctx, src)
	}
	return os.ReadFile(src)
}

func (r *runner) options(src string) dotosu.Options {
	if !r.cfg.Debug {
		return dotosu.Options{}
	}
	return dotosu.Options{Logger: log.New(os.Stderr, fmt.Sprintf("[%s] ", src), log.LstdFlags)}
}
