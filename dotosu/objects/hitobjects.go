package objects

import (
	"math"

	"osulegacy/dotosu"
)

// BASE_SCORING_DISTANCE is the slider distance covered in one beat at 1x.
const BASE_SCORING_DISTANCE = 100.0

// ---------- HitObject enums ----------

type Kind uint8

const (
	KindCircle Kind = iota
	KindSlider
	KindSpinner
	KindHold
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSlider:
		return "slider"
	case KindSpinner:
		return "spinner"
	case KindHold:
		return "hold"
	}
	return "unknown"
}

type HitSoundFlags uint8

const (
	HitSoundNormal  HitSoundFlags = 1 << iota // 1
	HitSoundWhistle                           // 2
	HitSoundFinish                            // 4
	HitSoundClap                              // 8
)

type SampleSet uint8

const (
	SampleNone SampleSet = iota
	SampleNormal
	SampleSoft
	SampleDrum
)

type TypeFlags int

const (
	TypeCircle     TypeFlags = 1 << iota // 1
	TypeSlider                           // 2
	TypeNewCombo                         // 4
	TypeSpinner                          // 8
	TypeComboSkip1                       // 16
	TypeComboSkip2                       // 32
	TypeComboSkip3                       // 64
	TypeHold       TypeFlags = 1 << 7    // 128

	typeComboOffset = TypeComboSkip1 | TypeComboSkip2 | TypeComboSkip3
)

type Vec2 struct{ X, Y int }

type HitSample struct {
	NormalSet   SampleSet
	AdditionSet SampleSet
	Index       int // custom sample index
	Volume      int
	Filename    string
}

type EdgeSet struct {
	NormalSet   SampleSet
	AdditionSet SampleSet
}

// ---------- typed objects ----------

// Base is shared by every kind. Bank and Volume are empty until ApplyDefaults
// has resolved them against the sound timeline.
type Base struct {
	Pos    Vec2
	Time   float64
	Type   TypeFlags
	Sound  HitSoundFlags
	Sample HitSample

	Bank   string
	Volume int
}

func (b *Base) StartTime() float64 { return b.Time }
func (b *Base) NewCombo() bool     { return b.Type&TypeNewCombo != 0 }

// ComboOffset is the number of combo colours skipped by a new combo.
func (b *Base) ComboOffset() int { return int(b.Type&typeComboOffset) >> 4 }

func (b *Base) applySample(cp *dotosu.ControlPointInfo) {
	sound := cp.SoundPointAt(b.Time)
	b.Bank = sound.SampleBank
	if b.Sample.NormalSet != SampleNone {
		b.Bank = dotosu.SampleBankName(int(b.Sample.NormalSet))
	}
	b.Volume = sound.SampleVolume
	if b.Sample.Volume > 0 {
		b.Volume = b.Sample.Volume
	}
}

type Circle struct{ Base }

func (*Circle) Kind() Kind { return KindCircle }

func (c *Circle) ApplyDefaults(cp *dotosu.ControlPointInfo, _ dotosu.Difficulty) {
	c.applySample(cp)
}

type Slider struct {
	Base
	Path       SliderPath
	Slides     int
	Length     float64
	EdgeSounds []HitSoundFlags // head, repeats..., tail
	EdgeSets   []EdgeSet

	// Filled in by ApplyDefaults.
	Velocity     float64 // osu!pixels per millisecond
	TickDistance float64
	Duration     float64
	Polyline     []Vector
}

func (*Slider) Kind() Kind { return KindSlider }

func (s *Slider) EndTime() float64 { return s.Time + s.Duration }

func (s *Slider) ApplyDefaults(cp *dotosu.ControlPointInfo, difficulty dotosu.Difficulty) {
	s.applySample(cp)

	timing := cp.TimingPointAt(s.Time)
	speed := cp.DifficultyPointAt(s.Time).SpeedMultiplier
	scoringDistance := BASE_SCORING_DISTANCE * difficulty.SliderMultiplier * speed

	s.Velocity, s.TickDistance = 0, 0
	if timing.BeatLength > 0 {
		s.Velocity = scoringDistance / timing.BeatLength
	}
	if difficulty.SliderTickRate > 0 {
		s.TickDistance = scoringDistance / difficulty.SliderTickRate
	}

	s.Polyline = ApproximatePath(s.Path)
	if s.Length <= 0 {
		s.Length = PolylineLength(s.Polyline)
	}

	s.Duration = 0
	if s.Velocity > 0 {
		s.Duration = float64(s.Slides) * s.Length / s.Velocity
	}
}

// EndPosition is where the slider ball finishes, accounting for repeats.
func (s *Slider) EndPosition() Vector {
	if len(s.Polyline) == 0 {
		return Vector{float64(s.Pos.X), float64(s.Pos.Y)}
	}
	if s.Slides%2 == 0 {
		return s.Polyline[0]
	}
	return PositionAt(s.Polyline, s.Length)
}

type Spinner struct {
	Base
	End float64
}

func (*Spinner) Kind() Kind { return KindSpinner }

func (s *Spinner) EndTime() float64 { return s.End }

func (s *Spinner) ApplyDefaults(cp *dotosu.ControlPointInfo, _ dotosu.Difficulty) {
	s.applySample(cp)
}

// Hold is a mania long note.
type Hold struct {
	Base
	End    float64
	Column int
}

func (*Hold) Kind() Kind { return KindHold }

func (h *Hold) EndTime() float64 { return h.End }

func (h *Hold) ApplyDefaults(cp *dotosu.ControlPointInfo, difficulty dotosu.Difficulty) {
	h.applySample(cp)
	h.Column = ManiaColumn(h.Pos.X, difficulty.CircleSize)
}

// ManiaNote is a mania single note; it only differs from a circle by its column.
type ManiaNote struct {
	Base
	Column int
}

func (*ManiaNote) Kind() Kind { return KindCircle }

func (n *ManiaNote) ApplyDefaults(cp *dotosu.ControlPointInfo, difficulty dotosu.Difficulty) {
	n.applySample(cp)
	n.Column = ManiaColumn(n.Pos.X, difficulty.CircleSize)
}

// ManiaColumn maps a playfield x (0..512) onto one of CircleSize columns.
func ManiaColumn(x int, circleSize float64) int {
	keys := max(1, int(math.Round(circleSize)))
	col := int(math.Floor(float64(x) * float64(keys) / 512))
	return min(max(col, 0), keys-1)
}

// Object is what every ruleset parser returns.
type Object interface {
	dotosu.HitObject
	Kind() Kind
	NewCombo() bool
}

var (
	_ Object = (*Circle)(nil)
	_ Object = (*Slider)(nil)
	_ Object = (*Spinner)(nil)
	_ Object = (*Hold)(nil)
	_ Object = (*ManiaNote)(nil)
)
