package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"osulegacy/dotosu"
	"osulegacy/dotosu/objects"
)

// Summary is what the CLI reports for one input.
type Summary struct {
	Source        string `json:"source"`
	Size          int64  `json:"size"`
	FormatVersion int    `json:"format_version"`
	Mode          int    `json:"mode"`

	Artist     string `json:"artist"`
	Title      string `json:"title"`
	Creator    string `json:"creator"`
	Difficulty string `json:"difficulty"`
	Background string `json:"background,omitempty"`

	HitObjects int `json:"hit_objects"`
	Circles    int `json:"circles"`
	Sliders    int `json:"sliders"`
	Spinners   int `json:"spinners"`
	Holds      int `json:"holds"`

	Length    float64 `json:"length_ms"`
	BreakTime float64 `json:"break_time_ms"`
	Breaks    int     `json:"breaks"`
	KiaiTime  float64 `json:"kiai_time_ms"`
	BPMMin    float64 `json:"bpm_min"`
	BPMMax    float64 `json:"bpm_max"`

	TimingPoints     int `json:"timing_points"`
	DifficultyPoints int `json:"difficulty_points"`
	SoundPoints      int `json:"sound_points"`
	EffectPoints     int `json:"effect_points"`
	ComboColours     int `json:"combo_colours"`

	CircleRadius float64 `json:"circle_radius"`
	Preempt      float64 `json:"preempt_ms"`
	Window300    float64 `json:"window_300_ms"`
	Window100    float64 `json:"window_100_ms"`
	Window50     float64 `json:"window_50_ms"`

	Error string `json:"error,omitempty"`
}

func summarise(source string, size int64, b *dotosu.Beatmap) Summary {
	meta := b.Info.Metadata
	cp := b.ControlPoints
	s := Summary{
		Source:        source,
		Size:          size,
		FormatVersion: b.Info.FormatVersion,
		Mode:          b.Info.RulesetID,
		Artist:        meta.Artist,
		Title:         meta.Title,
		Creator:       meta.Author,
		Difficulty:    b.Info.DifficultyName,
		Background:    meta.BackgroundFile,

		HitObjects: len(b.HitObjects),
		Length:     b.Length(),
		BreakTime:  b.BreakTime(),
		Breaks:     len(b.Breaks),

		TimingPoints:     len(cp.TimingPoints),
		DifficultyPoints: len(cp.DifficultyPoints),
		SoundPoints:      len(cp.SoundPoints),
		EffectPoints:     len(cp.EffectPoints),
		ComboColours:     len(b.ComboColours),
	}
	s.KiaiTime = cp.KiaiTime(s.Length)
	s.BPMMin, s.BPMMax = cp.BPMRange()

	mc := GetMapConstants(b.Info.Difficulty)
	s.CircleRadius, s.Preempt = mc.CircleRadius, mc.Preempt
	s.Window300, s.Window100, s.Window50 = mc.Window300, mc.Window100, mc.Window50

	for _, h := range b.HitObjects {
		o, ok := h.(objects.Object)
		if !ok {
			continue
		}
		switch o.Kind() {
		case objects.KindCircle:
			s.Circles++
		case objects.KindSlider:
			s.Sliders++
		case objects.KindSpinner:
			s.Spinners++
		case objects.KindHold:
			s.Holds++
		}
	}
	return s
}

func formatMs(ms float64) string {
	if ms <= 0 {
		return "0s"
	}
	return durafmt.Parse(time.Duration(ms * float64(time.Millisecond))).LimitFirstN(2).String()
}

func formatBPM(lo, hi float64) string {
	switch {
	case hi == 0:
		return "-"
	case lo == hi:
		return fmt.Sprintf("%.0f", hi)
	}
	return fmt.Sprintf("%.0f-%.0f", lo, hi)
}

func (s Summary) String() string {
	var sb strings.Builder
	if s.Error != "" {
		fmt.Fprintf(&sb, "%s\n  error   %s\n", s.Source, s.Error)
		return sb.String()
	}
	fmt.Fprintf(&sb, "%s - %s [%s] (%s)\n", s.Artist, s.Title, s.Difficulty, s.Creator)
	fmt.Fprintf(&sb, "  source  %s (%s, v%d, mode %d)\n", s.Source, humanize.Bytes(uint64(s.Size)), s.FormatVersion, s.Mode)
	fmt.Fprintf(&sb, "  objects %s (circles %s, sliders %s, spinners %s, holds %s)\n",
		humanize.Comma(int64(s.HitObjects)), humanize.Comma(int64(s.Circles)), humanize.Comma(int64(s.Sliders)),
		humanize.Comma(int64(s.Spinners)), humanize.Comma(int64(s.Holds)))
	fmt.Fprintf(&sb, "  length  %s, %d breaks totalling %s, kiai %s\n",
		formatMs(s.Length), s.Breaks, formatMs(s.BreakTime), formatMs(s.KiaiTime))
	fmt.Fprintf(&sb, "  bpm     %s\n", formatBPM(s.BPMMin, s.BPMMax))
	fmt.Fprintf(&sb, "  play    radius %.1f, approach %.0fms\n", s.CircleRadius, s.Preempt)
	fmt.Fprintf(&sb, "  windows 300 +-%.1fms, 100 +-%.1fms, 50 +-%.1fms\n", s.Window300, s.Window100, s.Window50)
	fmt.Fprintf(&sb, "  points  %d timing, %d difficulty, %d sound, %d effect\n",
		s.TimingPoints, s.DifficultyPoints, s.SoundPoints, s.EffectPoints)
	if s.Background != "" {
		fmt.Fprintf(&sb, "  bg      %s\n", s.Background)
	}
	return sb.String()
}
