package dotosu

import (
	"fmt"
)

const (
	EFFECT_KIAI           = 1 << 0
	EFFECT_OMIT_FIRST_BAR = 1 << 3
)

// timingLine is one [TimingPoints] line with every optional field resolved.
type timingLine struct {
	Time            float64
	BeatLength      float64
	TimeSignature   TimeSignature
	SampleBank      string
	SampleVolume    int
	TimingChange    bool
	Kiai            bool
	OmitFirstBar    bool
	SpeedMultiplier float64
}

// Fields: time, beatLength, meter, sampleSet, sampleIndex, volume, uninherited, effects.
func (d *Decoder) parseTimingLine(line string) (timingLine, error) {
	parts := splitFields(line)
	if len(parts) < 2 {
		return timingLine{}, fmt.Errorf("%w: timing point needs time and beat length", ErrMalformedLine)
	}

	tl := timingLine{
		TimeSignature: SimpleQuadruple,
		SampleVolume:  d.defaultSampleVolume,
		TimingChange:  true,
	}
	var err error
	if tl.Time, err = ParseFloat(parts[0]); err != nil {
		return tl, err
	}
	if tl.BeatLength, err = ParseFloat(parts[1]); err != nil {
		return tl, err
	}
	tl.SpeedMultiplier = 1
	if tl.BeatLength < 0 {
		tl.SpeedMultiplier = -tl.BeatLength / 100
	}

	if len(parts) >= 3 {
		if parts[2] == "" {
			return tl, fmt.Errorf("%w: empty time signature", ErrMalformedLine)
		}
		if parts[2][0] != '0' {
			meter, err := ParseInt(parts[2])
			if err != nil {
				return tl, err
			}
			tl.TimeSignature = TimeSignature(meter)
		}
	}

	bank := d.defaultSampleBank
	if len(parts) >= 4 {
		if bank, err = ParseInt(parts[3]); err != nil {
			return tl, err
		}
	}
	tl.SampleBank = SampleBankName(bank)
	if tl.SampleBank == "none" {
		tl.SampleBank = DEFAULT_SAMPLE_BANK
	}

	// parts[4] is the custom sample index, which has no control point.

	if len(parts) >= 6 {
		if tl.SampleVolume, err = ParseInt(parts[5]); err != nil {
			return tl, err
		}
	}

	if len(parts) >= 7 {
		if parts[6] == "" {
			return tl, fmt.Errorf("%w: empty timing change flag", ErrMalformedLine)
		}
		tl.TimingChange = parts[6][0] == '1'
	}

	if len(parts) >= 8 {
		effects, err := ParseInt(parts[7])
		if err != nil {
			return tl, err
		}
		tl.Kiai = effects&EFFECT_KIAI != 0
		tl.OmitFirstBar = effects&EFFECT_OMIT_FIRST_BAR != 0
	}
	return tl, nil
}

func (d *Decoder) handleTimingPoints(b *Beatmap, line string) error {
	tl, err := d.parseTimingLine(line)
	if err != nil {
		return err
	}
	addTimingLine(b.ControlPoints, tl)
	return nil
}

// addTimingLine appends the points a line produces. Difficulty, sound and
// effect points are only added when they differ from the point already active
// at that time; a stream with nothing active yet always takes the first one.
func addTimingLine(cp *ControlPointInfo, tl timingLine) {
	difficulty, hasDifficulty := cp.activeDifficulty(tl.Time)
	sound, hasSound := cp.activeSound(tl.Time)
	effect, hasEffect := cp.activeEffect(tl.Time)

	if tl.TimingChange {
		cp.TimingPoints = append(cp.TimingPoints, TimingControlPoint{
			Time:          tl.Time,
			BeatLength:    tl.BeatLength,
			TimeSignature: tl.TimeSignature,
		})
	}

	if !hasDifficulty || tl.SpeedMultiplier != difficulty.SpeedMultiplier {
		cp.DifficultyPoints = append(cp.DifficultyPoints, DifficultyControlPoint{
			Time:            tl.Time,
			SpeedMultiplier: tl.SpeedMultiplier,
		})
	}

	if !hasSound || tl.SampleBank != sound.SampleBank || tl.SampleVolume != sound.SampleVolume {
		cp.SoundPoints = append(cp.SoundPoints, SoundControlPoint{
			Time:         tl.Time,
			SampleBank:   tl.SampleBank,
			SampleVolume: tl.SampleVolume,
		})
	}

	if !hasEffect || tl.Kiai != effect.KiaiMode || tl.OmitFirstBar != effect.OmitFirstBarLine {
		cp.EffectPoints = append(cp.EffectPoints, EffectControlPoint{
			Time:             tl.Time,
			KiaiMode:         tl.Kiai,
			OmitFirstBarLine: tl.OmitFirstBar,
		})
	}
}
