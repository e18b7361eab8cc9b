package dotosu

import "testing"

func TestDefaultsBeforeFirstPoint(t *testing.T) {
	cp := &ControlPointInfo{}
	if p := cp.DifficultyPointAt(0); p.SpeedMultiplier != 1 {
		t.Errorf("difficulty default = %+v", p)
	}
	if p := cp.SoundPointAt(0); p.SampleBank != DEFAULT_SAMPLE_BANK || p.SampleVolume != DEFAULT_SAMPLE_VOLUME {
		t.Errorf("sound default = %+v", p)
	}
	if p := cp.EffectPointAt(0); p.KiaiMode || p.OmitFirstBarLine {
		t.Errorf("effect default = %+v", p)
	}
	if p := cp.TimingPointAt(0); p.BeatLength != DEFAULT_BEAT_LENGTH || p.TimeSignature != SimpleQuadruple {
		t.Errorf("timing default = %+v", p)
	}
}

func TestPointAtBoundaries(t *testing.T) {
	cp := &ControlPointInfo{
		DifficultyPoints: []DifficultyControlPoint{{Time: 100, SpeedMultiplier: 2}, {Time: 200, SpeedMultiplier: 3}},
	}
	cases := []struct{ t, want float64 }{{99, 1}, {100, 2}, {199.9, 2}, {200, 3}, {1e9, 3}}
	for _, c := range cases {
		if got := cp.DifficultyPointAt(c.t).SpeedMultiplier; got != c.want {
			t.Errorf("speed at %v = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestBPMRange(t *testing.T) {
	cp := &ControlPointInfo{}
	if lo, hi := cp.BPMRange(); lo != 0 || hi != 0 {
		t.Fatalf("empty range = %v-%v", lo, hi)
	}
	cp.TimingPoints = []TimingControlPoint{{BeatLength: 500}, {Time: 10, BeatLength: 250}, {Time: 20, BeatLength: 0}}
	if lo, hi := cp.BPMRange(); lo != 120 || hi != 240 {
		t.Fatalf("range = %v-%v, want 120-240", lo, hi)
	}
}

func TestKiaiTime(t *testing.T) {
	cp := &ControlPointInfo{EffectPoints: []EffectControlPoint{
		{Time: 0},
		{Time: 1000, KiaiMode: true},
		{Time: 3000},
		{Time: 5000, KiaiMode: true},
	}}
	if got := cp.KiaiTime(6000); got != 3000 {
		t.Fatalf("kiai time = %v, want 3000", got)
	}
	if got := cp.KiaiTime(2000); got != 1000 {
		t.Fatalf("kiai time up to 2000 = %v, want 1000", got)
	}
}
