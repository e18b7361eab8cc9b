package objects

import (
	"math"
	"testing"

	"osulegacy/dotosu"
)

func timeline() *dotosu.ControlPointInfo {
	return &dotosu.ControlPointInfo{
		TimingPoints:     []dotosu.TimingControlPoint{{Time: 0, BeatLength: 500, TimeSignature: dotosu.SimpleQuadruple}},
		DifficultyPoints: []dotosu.DifficultyControlPoint{{Time: 0, SpeedMultiplier: 1}, {Time: 2000, SpeedMultiplier: 2}},
		SoundPoints:      []dotosu.SoundControlPoint{{Time: 0, SampleBank: "soft", SampleVolume: 60}},
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestSliderDefaults(t *testing.T) {
	diff := dotosu.DefaultDifficulty()
	diff.SliderMultiplier = 2
	diff.SliderTickRate = 4

	o, err := parseLine("0,0,2500,2,0,L|300:0,3,200", positionXY, false)
	if err != nil {
		t.Fatalf("parseLine: %v", err)
	}
	s := o.(*Slider)
	s.ApplyDefaults(timeline(), diff)

	// 100 * 2 * 2 / 500
	if !near(s.Velocity, 0.8) || !near(s.TickDistance, 100) {
		t.Errorf("velocity = %v tick distance = %v", s.Velocity, s.TickDistance)
	}
	if !near(s.Duration, 750) || !near(s.EndTime(), 3250) {
		t.Errorf("duration = %v end = %v", s.Duration, s.EndTime())
	}
	// Odd slide count ends at the far end, at the declared length.
	if p := s.EndPosition(); !near(p.X, 200) || !near(p.Y, 0) {
		t.Errorf("end position = %+v", p)
	}
}

func TestSliderLengthFromPath(t *testing.T) {
	o, err := parseLine("0,0,0,2,0,L|30:40,2", positionXY, false)
	if err != nil {
		t.Fatalf("parseLine: %v", err)
	}
	s := o.(*Slider)
	s.ApplyDefaults(timeline(), dotosu.DefaultDifficulty())
	if !near(s.Length, 50) {
		t.Errorf("length = %v, want 50", s.Length)
	}
	if p := s.EndPosition(); p != (Vector{0, 0}) {
		t.Errorf("even slide count should end at the head, got %+v", p)
	}
}

func TestSliderWithoutTiming(t *testing.T) {
	o, _ := parseLine("0,0,0,2,0,L|100:0,1,100", positionXY, false)
	s := o.(*Slider)
	cp := &dotosu.ControlPointInfo{TimingPoints: []dotosu.TimingControlPoint{{BeatLength: -100}}}
	s.ApplyDefaults(cp, dotosu.DefaultDifficulty())
	if s.Velocity != 0 || s.Duration != 0 {
		t.Errorf("velocity = %v duration = %v, want 0", s.Velocity, s.Duration)
	}
}

func TestSampleResolution(t *testing.T) {
	o, _ := parseLine("0,0,100,1,0,3:0:0:90:", positionXY, false)
	c := o.(*Circle)
	c.ApplyDefaults(timeline(), dotosu.DefaultDifficulty())
	if c.Bank != "drum" || c.Volume != 90 {
		t.Errorf("bank = %s volume = %d, want drum/90", c.Bank, c.Volume)
	}

	o, _ = parseLine("0,0,100,1,0", positionXY, false)
	c = o.(*Circle)
	c.ApplyDefaults(timeline(), dotosu.DefaultDifficulty())
	if c.Bank != "soft" || c.Volume != 60 {
		t.Errorf("bank = %s volume = %d, want soft/60", c.Bank, c.Volume)
	}
}

func TestManiaColumnsAssigned(t *testing.T) {
	diff := dotosu.DefaultDifficulty()
	diff.CircleSize = 7
	n, _ := ManiaParser{}.Parse("475,192,100,1,0")
	n.ApplyDefaults(timeline(), diff)
	if got := n.(*ManiaNote).Column; got != 6 {
		t.Errorf("note column = %d, want 6", got)
	}
	h, _ := ManiaParser{}.Parse("36,192,100,128,0,900:0:0:0:0:")
	h.ApplyDefaults(timeline(), diff)
	if hold := h.(*Hold); hold.Column != 0 || hold.EndTime() != 900 {
		t.Errorf("hold = %+v", hold)
	}
}
