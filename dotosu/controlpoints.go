package dotosu

import "math"

type TimeSignature int

const (
	SimpleTriple    TimeSignature = 3
	SimpleQuadruple TimeSignature = 4
)

const (
	DEFAULT_BEAT_LENGTH = 1000.0
	DEFAULT_SAMPLE_BANK = "normal"
)

type TimingControlPoint struct {
	Time          float64
	BeatLength    float64
	TimeSignature TimeSignature
}

// BPM is only meaningful for non-inherited points.
func (p TimingControlPoint) BPM() float64 { return 60000 / p.BeatLength }

type DifficultyControlPoint struct {
	Time            float64
	SpeedMultiplier float64
}

type SoundControlPoint struct {
	Time         float64
	SampleBank   string
	SampleVolume int
}

type EffectControlPoint struct {
	Time             float64
	KiaiMode         bool
	OmitFirstBarLine bool
}

// ControlPointInfo is the decoded timeline. Each stream is kept in the order
// the points were added; a query returns the last point at or before t.
type ControlPointInfo struct {
	TimingPoints     []TimingControlPoint
	DifficultyPoints []DifficultyControlPoint
	SoundPoints      []SoundControlPoint
	EffectPoints     []EffectControlPoint
}

// lastAt returns the index of the last point in the stream at or before t,
// or -1 when no such point exists.
func lastAt[P any](points []P, t float64, timeOf func(P) float64) int {
	for i := len(points) - 1; i >= 0; i-- {
		if timeOf(points[i]) <= t {
			return i
		}
	}
	return -1
}

func (c *ControlPointInfo) TimingPointAt(t float64) TimingControlPoint {
	if i := lastAt(c.TimingPoints, t, func(p TimingControlPoint) float64 { return p.Time }); i >= 0 {
		return c.TimingPoints[i]
	}
	return TimingControlPoint{BeatLength: DEFAULT_BEAT_LENGTH, TimeSignature: SimpleQuadruple}
}

func (c *ControlPointInfo) DifficultyPointAt(t float64) DifficultyControlPoint {
	p, _ := c.activeDifficulty(t)
	return p
}

func (c *ControlPointInfo) SoundPointAt(t float64) SoundControlPoint {
	p, _ := c.activeSound(t)
	return p
}

func (c *ControlPointInfo) EffectPointAt(t float64) EffectControlPoint {
	p, _ := c.activeEffect(t)
	return p
}

// The active* variants also report whether a stored point is in effect, as
// opposed to the stream default.

func (c *ControlPointInfo) activeDifficulty(t float64) (DifficultyControlPoint, bool) {
	if i := lastAt(c.DifficultyPoints, t, func(p DifficultyControlPoint) float64 { return p.Time }); i >= 0 {
		return c.DifficultyPoints[i], true
	}
	return DifficultyControlPoint{SpeedMultiplier: 1}, false
}

func (c *ControlPointInfo) activeSound(t float64) (SoundControlPoint, bool) {
	if i := lastAt(c.SoundPoints, t, func(p SoundControlPoint) float64 { return p.Time }); i >= 0 {
		return c.SoundPoints[i], true
	}
	return SoundControlPoint{SampleBank: DEFAULT_SAMPLE_BANK, SampleVolume: DEFAULT_SAMPLE_VOLUME}, false
}

func (c *ControlPointInfo) activeEffect(t float64) (EffectControlPoint, bool) {
	if i := lastAt(c.EffectPoints, t, func(p EffectControlPoint) float64 { return p.Time }); i >= 0 {
		return c.EffectPoints[i], true
	}
	return EffectControlPoint{}, false
}

// BPMRange returns the slowest and fastest tempo among the timing points with a
// positive beat length. Both are zero when there are none.
func (c *ControlPointInfo) BPMRange() (lo, hi float64) {
	lo, hi = math.Inf(1), 0
	for _, p := range c.TimingPoints {
		if p.BeatLength <= 0 || math.IsNaN(p.BeatLength) {
			continue
		}
		bpm := p.BPM()
		lo = min(lo, bpm)
		hi = max(hi, bpm)
	}
	if hi == 0 {
		return 0, 0
	}
	return lo, hi
}

// KiaiTime is the total time spent in kiai mode up to end.
func (c *ControlPointInfo) KiaiTime(end float64) float64 {
	total := 0.0
	for i, p := range c.EffectPoints {
		if !p.KiaiMode || p.Time >= end {
			continue
		}
		until := end
		if i+1 < len(c.EffectPoints) {
			until = min(until, c.EffectPoints[i+1].Time)
		}
		if until > p.Time {
			total += until - p.Time
		}
	}
	return total
}
