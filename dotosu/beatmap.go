package dotosu

const (
	DEFAULT_DIFFICULTY        = 5.0
	DEFAULT_SLIDER_MULTIPLIER = 1.4
	DEFAULT_SLIDER_TICK_RATE  = 1.0
	DEFAULT_STACK_LENIENCY    = 0.7
	DEFAULT_SAMPLE_VOLUME     = 100

	// Breaks shorter than this are not shown to the player and are never stored.
	MIN_BREAK_DURATION = 650.0
)

// ---------- Beatmap model ----------

type Beatmap struct {
	Info          BeatmapInfo
	ControlPoints *ControlPointInfo

	Breaks       []BreakPeriod
	ComboColours []Colour
	HitObjects   []HitObject

	// Optional skin overrides from [Colours]; nil when the file has none.
	SliderTrackOverride *Colour
	SliderBorder        *Colour
}

type BeatmapInfo struct {
	FormatVersion int

	AudioLeadIn          int
	Countdown            bool
	StackLeniency        float64
	RulesetID            int
	LetterboxInBreaks    bool
	SpecialStyle         bool
	WidescreenStoryboard bool

	Bookmarks       []int
	DistanceSpacing float64
	BeatDivisor     int
	GridSize        int
	TimelineZoom    float64

	DifficultyName     string
	OnlineBeatmapID    int
	OnlineBeatmapSetID int

	Metadata   Metadata
	Difficulty Difficulty
}

type Metadata struct {
	Title, TitleUnicode   string
	Artist, ArtistUnicode string
	Author                string
	Source, Tags          string

	AudioFile      string
	PreviewTime    int
	BackgroundFile string

	OnlineBeatmapSetID int
}

type Difficulty struct {
	DrainRate         float64
	CircleSize        float64
	OverallDifficulty float64
	ApproachRate      float64
	SliderMultiplier  float64
	SliderTickRate    float64
}

func DefaultDifficulty() Difficulty {
	return Difficulty{
		DrainRate:         DEFAULT_DIFFICULTY,
		CircleSize:        DEFAULT_DIFFICULTY,
		OverallDifficulty: DEFAULT_DIFFICULTY,
		ApproachRate:      DEFAULT_DIFFICULTY,
		SliderMultiplier:  DEFAULT_SLIDER_MULTIPLIER,
		SliderTickRate:    DEFAULT_SLIDER_TICK_RATE,
	}
}

type BreakPeriod struct{ StartTime, EndTime float64 }

func (b BreakPeriod) Duration() float64 { return b.EndTime - b.StartTime }

func (b BreakPeriod) HasEffect() bool { return b.Duration() > MIN_BREAK_DURATION }

// Colour is a normalised RGBA colour, each channel in [0,1].
type Colour struct{ R, G, B, A float64 }

func ColourFromRGB(r, g, b uint8) Colour {
	return Colour{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// RGB converts the colour back to 8-bit channels.
func (c Colour) RGB() (r, g, b uint8) {
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5)
}

var defaultComboColours = []Colour{
	ColourFromRGB(255, 192, 0),
	ColourFromRGB(0, 202, 0),
	ColourFromRGB(18, 124, 255),
	ColourFromRGB(242, 24, 57),
}

// HitObject is produced by a ruleset parser. The decoder only needs its start
// time and a way to bake the finished timeline into it.
type HitObject interface {
	StartTime() float64
	ApplyDefaults(cp *ControlPointInfo, difficulty Difficulty)
}

// NewBeatmap returns an empty beatmap with the default palette and difficulty.
func NewBeatmap() *Beatmap {
	return &Beatmap{
		Info: BeatmapInfo{
			StackLeniency: DEFAULT_STACK_LENIENCY,
			BeatDivisor:   4,
			GridSize:      4,
			TimelineZoom:  1,
			Metadata:      Metadata{PreviewTime: -1},
			Difficulty:    DefaultDifficulty(),
		},
		ControlPoints: &ControlPointInfo{},
		ComboColours:  append([]Colour(nil), defaultComboColours...),
	}
}

// Length is the start time of the last hit object, in milliseconds.
func (b *Beatmap) Length() float64 {
	if len(b.HitObjects) == 0 {
		return 0
	}
	last := b.HitObjects[len(b.HitObjects)-1]
	if e, ok := last.(interface{ EndTime() float64 }); ok {
		return e.EndTime()
	}
	return last.StartTime()
}

// BreakTime sums the duration of all stored breaks.
func (b *Beatmap) BreakTime() float64 {
	total := 0.0
	for _, br := range b.Breaks {
		total += br.Duration()
	}
	return total
}
