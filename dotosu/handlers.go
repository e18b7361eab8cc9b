package dotosu

import (
	"fmt"
	"strconv"
)

// Legacy sample banks as numbered in the file.
const (
	SampleBankNone = iota
	SampleBankNormal
	SampleBankSoft
	SampleBankDrum
)

var sampleBankNames = map[string]int{
	"None":   SampleBankNone,
	"Normal": SampleBankNormal,
	"Soft":   SampleBankSoft,
	"Drum":   SampleBankDrum,
}

// SampleBankName is the lower-case name stored on sound points.
func SampleBankName(bank int) string {
	switch bank {
	case SampleBankNone:
		return "none"
	case SampleBankNormal:
		return "normal"
	case SampleBankSoft:
		return "soft"
	case SampleBankDrum:
		return "drum"
	}
	return strconv.Itoa(bank)
}

func parseSampleBank(s string) (int, error) {
	if bank, ok := sampleBankNames[s]; ok {
		return bank, nil
	}
	return ParseInt(s)
}

func (d *Decoder) handleGeneral(b *Beatmap, key, value string) error {
	info := &b.Info
	var err error
	switch key {
	case "AudioFilename":
		info.Metadata.AudioFile = value
	case "AudioLeadIn":
		info.AudioLeadIn, err = ParseInt(value)
	case "PreviewTime":
		info.Metadata.PreviewTime, err = ParseInt(value)
	case "Countdown":
		info.Countdown, err = ParseBoolInt(value)
	case "SampleSet":
		d.defaultSampleBank, err = parseSampleBank(value)
	case "SampleVolume":
		d.defaultSampleVolume, err = ParseInt(value)
	case "StackLeniency":
		info.StackLeniency, err = ParseFloat(value)
	case "Mode":
		if info.RulesetID, err = ParseInt(value); err == nil {
			d.selectRuleset(info.RulesetID)
		}
	case "LetterboxInBreaks":
		info.LetterboxInBreaks, err = ParseBoolInt(value)
	case "SpecialStyle":
		info.SpecialStyle, err = ParseBoolInt(value)
	case "WidescreenStoryboard":
		info.WidescreenStoryboard, err = ParseBoolInt(value)
	default:
		d.ignored(SectionGeneral, key)
	}
	if err != nil {
		return fieldError(key, value, err)
	}
	return nil
}

func (d *Decoder) selectRuleset(mode int) {
	fn, ok := d.rulesets[mode]
	if !ok {
		d.parser = nil
		d.log.Printf("no hit object parser for mode %d", mode)
		return
	}
	d.parser = fn()
}

func (d *Decoder) handleEditor(b *Beatmap, key, value string) error {
	info := &b.Info
	var err error
	switch key {
	case "Bookmarks":
		info.Bookmarks, err = parseIntList(value)
	case "DistanceSpacing":
		info.DistanceSpacing, err = ParseFloat(value)
	case "BeatDivisor":
		info.BeatDivisor, err = ParseInt(value)
	case "GridSize":
		info.GridSize, err = ParseInt(value)
	case "TimelineZoom":
		info.TimelineZoom, err = ParseFloat(value)
	default:
		d.ignored(SectionEditor, key)
	}
	if err != nil {
		return fieldError(key, value, err)
	}
	return nil
}

func (d *Decoder) handleMetadata(b *Beatmap, key, value string) error {
	m := &b.Info.Metadata
	var err error
	switch key {
	case "Title":
		m.Title = value
	case "TitleUnicode":
		m.TitleUnicode = value
	case "Artist":
		m.Artist = value
	case "ArtistUnicode":
		m.ArtistUnicode = value
	case "Creator":
		m.Author = value
	case "Version":
		b.Info.DifficultyName = value
	case "Source":
		m.Source = value
	case "Tags":
		m.Tags = value
	case "BeatmapID":
		b.Info.OnlineBeatmapID, err = ParseInt(value)
	case "BeatmapSetID":
		var id int
		if id, err = ParseInt(value); err == nil {
			b.Info.OnlineBeatmapSetID = id
			m.OnlineBeatmapSetID = id
		}
	default:
		d.ignored(SectionMetadata, key)
	}
	if err != nil {
		return fieldError(key, value, err)
	}
	return nil
}

func (d *Decoder) handleDifficulty(b *Beatmap, key, value string) error {
	diff := &b.Info.Difficulty
	var target *float64
	switch key {
	case "HPDrainRate":
		target = &diff.DrainRate
	case "CircleSize":
		target = &diff.CircleSize
	case "OverallDifficulty":
		target = &diff.OverallDifficulty
	case "ApproachRate":
		target = &diff.ApproachRate
	case "SliderMultiplier":
		target = &diff.SliderMultiplier
	case "SliderTickRate":
		target = &diff.SliderTickRate
	default:
		d.ignored(SectionDifficulty, key)
		return nil
	}
	v, err := ParseFloat(value)
	if err != nil {
		return fieldError(key, value, err)
	}
	*target = v
	return nil
}

func (d *Decoder) handleColours(b *Beatmap, key, value string) error {
	c, err := parseColour(value)
	if err != nil {
		return fieldError(key, value, err)
	}

	if !d.hasCustomColours {
		b.ComboColours = b.ComboColours[:0]
		d.hasCustomColours = true
	}

	switch {
	// The slot number in the key is discarded; colours keep file order.
	case len(key) >= 5 && key[:5] == "Combo":
		b.ComboColours = append(b.ComboColours, c)
	case key == "SliderTrackOverride":
		b.SliderTrackOverride = &c
	case key == "SliderBorder":
		b.SliderBorder = &c
	default:
		d.ignored(SectionColours, key)
	}
	return nil
}

func parseColour(value string) (Colour, error) {
	var rgb [3]uint8
	parts := splitFields(value)
	if len(parts) != len(rgb) {
		return Colour{}, fmt.Errorf("%w: got %d components", ErrInvalidColour, len(parts))
	}
	for i, p := range parts {
		v, err := parseByte(p)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: component %q", ErrInvalidColour, p)
		}
		rgb[i] = v
	}
	return ColourFromRGB(rgb[0], rgb[1], rgb[2]), nil
}

func (d *Decoder) ignored(sec Section, key string) {
	d.log.Printf("[%s] ignoring unknown key %q", sec, key)
}
