package dotosu

import (
	"errors"
	"testing"
)

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	d, err := NewLegacyDecoder("osu file format v14", Options{Rulesets: map[int]NewParserFunc{}})
	if err != nil {
		t.Fatalf("NewLegacyDecoder: %v", err)
	}
	return d
}

func addLines(t *testing.T, d *Decoder, lines ...string) *ControlPointInfo {
	t.Helper()
	b := NewBeatmap()
	for _, l := range lines {
		if err := d.handleTimingPoints(b, l); err != nil {
			t.Fatalf("handleTimingPoints(%q): %v", l, err)
		}
	}
	return b.ControlPoints
}

func TestParseTimingLineDefaults(t *testing.T) {
	d := newTestDecoder(t)
	d.defaultSampleBank = SampleBankDrum
	d.defaultSampleVolume = 70

	tl, err := d.parseTimingLine("1500,333.33")
	if err != nil {
		t.Fatalf("parseTimingLine: %v", err)
	}
	want := timingLine{
		Time:            1500,
		BeatLength:      333.33,
		TimeSignature:   SimpleQuadruple,
		SampleBank:      "drum",
		SampleVolume:    70,
		TimingChange:    true,
		SpeedMultiplier: 1,
	}
	if tl != want {
		t.Fatalf("parseTimingLine = %+v, want %+v", tl, want)
	}
}

func TestParseTimingLineFields(t *testing.T) {
	d := newTestDecoder(t)
	tl, err := d.parseTimingLine("100,-25,0,0,3,45,0,9")
	if err != nil {
		t.Fatalf("parseTimingLine: %v", err)
	}
	// A meter starting with '0' keeps the default; bank 0 means "normal".
	if tl.TimeSignature != SimpleQuadruple || tl.SampleBank != "normal" || tl.SampleVolume != 45 {
		t.Errorf("unexpected fields %+v", tl)
	}
	if tl.TimingChange || !tl.Kiai || !tl.OmitFirstBar || tl.SpeedMultiplier != 0.25 {
		t.Errorf("unexpected flags %+v", tl)
	}
}

func TestParseTimingLineErrors(t *testing.T) {
	d := newTestDecoder(t)
	cases := []struct {
		line string
		want error
	}{
		{"100", ErrMalformedLine},
		{"100,500,", ErrMalformedLine},
		{"100,500,4,1,0,,", ErrInvalidNumber},
		{"100,500,4,1,0,50,", ErrMalformedLine},
		{"abc,500", ErrInvalidNumber},
		{"100,fast", ErrInvalidNumber},
		{"100,500,4,1,0,50,1,kiai", ErrInvalidNumber},
	}
	for _, c := range cases {
		if _, err := d.parseTimingLine(c.line); !errors.Is(err, c.want) {
			t.Errorf("parseTimingLine(%q) err = %v, want %v", c.line, err, c.want)
		}
	}
}

func TestTimingPointsOnlyForUninherited(t *testing.T) {
	cp := addLines(t, newTestDecoder(t),
		"0,500,4,1,0,100,1,0",
		"500,-50,4,1,0,100,0,0",
		"1000,250,4,1,0,100,1,0",
	)
	if len(cp.TimingPoints) != 2 {
		t.Fatalf("timing points = %d, want 2", len(cp.TimingPoints))
	}
	if got := cp.TimingPointAt(750).BeatLength; got != 500 {
		t.Errorf("beat length at 750 = %v, want 500", got)
	}
	if got := cp.TimingPointAt(-10).BeatLength; got != DEFAULT_BEAT_LENGTH {
		t.Errorf("beat length before first point = %v, want default", got)
	}
}

func TestRedundantPointsDeduplicated(t *testing.T) {
	cp := addLines(t, newTestDecoder(t),
		"0,500,4,1,0,100,1,0",
		"1000,500,4,1,0,100,1,0",
		"2000,500,4,1,0,100,1,0",
	)
	if len(cp.DifficultyPoints) != 1 || len(cp.SoundPoints) != 1 || len(cp.EffectPoints) != 1 {
		t.Fatalf("difficulty=%d sound=%d effect=%d, want 1 each",
			len(cp.DifficultyPoints), len(cp.SoundPoints), len(cp.EffectPoints))
	}
	if len(cp.TimingPoints) != 3 {
		t.Fatalf("timing points are never deduplicated, got %d", len(cp.TimingPoints))
	}
}

func TestRepeatedLineKeepsFirstPoints(t *testing.T) {
	cp := addLines(t, newTestDecoder(t),
		"0,500,4,1,0,50,1,0",
		"1000,500,4,1,0,50,1,0",
	)
	if len(cp.TimingPoints) != 2 {
		t.Fatalf("timing points = %d, want 2", len(cp.TimingPoints))
	}
	if len(cp.DifficultyPoints) != 1 || cp.DifficultyPoints[0].Time != 0 {
		t.Errorf("difficulty points = %+v", cp.DifficultyPoints)
	}
	if len(cp.SoundPoints) != 1 || cp.SoundPoints[0].Time != 0 || cp.SoundPoints[0].SampleVolume != 50 {
		t.Errorf("sound points = %+v", cp.SoundPoints)
	}
	if len(cp.EffectPoints) != 1 || cp.EffectPoints[0].Time != 0 {
		t.Errorf("effect points = %+v", cp.EffectPoints)
	}
}

func TestFirstPointAlwaysStored(t *testing.T) {
	// Same values as the stream defaults.
	cp := addLines(t, newTestDecoder(t), "0,500,4,0,0,100,1,0")
	if len(cp.DifficultyPoints) != 1 || len(cp.SoundPoints) != 1 || len(cp.EffectPoints) != 1 {
		t.Fatalf("difficulty=%d sound=%d effect=%d, want 1 each",
			len(cp.DifficultyPoints), len(cp.SoundPoints), len(cp.EffectPoints))
	}
}

func TestChangesCreatePoints(t *testing.T) {
	cp := addLines(t, newTestDecoder(t),
		"0,500,4,1,0,100,1,0",
		"1000,-200,4,1,0,100,0,0",
		"2000,-200,4,2,0,100,0,0",
		"3000,-200,4,2,0,100,0,1",
		"4000,-200,4,2,0,100,0,1",
	)
	if len(cp.DifficultyPoints) != 2 || cp.DifficultyPointAt(5000).SpeedMultiplier != 2 {
		t.Errorf("difficulty points = %+v", cp.DifficultyPoints)
	}
	if len(cp.SoundPoints) != 2 || cp.SoundPointAt(2500).SampleBank != "soft" {
		t.Errorf("sound points = %+v", cp.SoundPoints)
	}
	if len(cp.EffectPoints) != 2 || !cp.EffectPointAt(4500).KiaiMode {
		t.Errorf("effect points = %+v", cp.EffectPoints)
	}
}
