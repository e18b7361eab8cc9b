package dotosu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

const MAX_LINE = 1024 * 1024

// HitObjectParser turns one [HitObjects] line into an object for its ruleset.
// It may return (nil, nil) for lines that hold no object.
type HitObjectParser interface {
	Parse(line string) (HitObject, error)
}

type NewParserFunc func() HitObjectParser

type Options struct {
	// Rulesets overrides the registered parsers, keyed by the Mode value.
	Rulesets map[int]NewParserFunc
	// Logger receives debug output about ignored input. Nil discards it.
	Logger *log.Logger
}

// Decoder holds the state of a single decode. It must not be reused.
type Decoder struct {
	version  int
	rulesets map[int]NewParserFunc
	log      *log.Logger

	parser              HitObjectParser
	variables           Variables
	defaultSampleBank   int
	defaultSampleVolume int
	hasCustomColours    bool
}

// NewLegacyDecoder builds a decoder for an "osu file format vN" header.
func NewLegacyDecoder(header string, opts Options) (*Decoder, error) {
	version, err := ParseInt(strings.TrimPrefix(header, VERSION_MARKER))
	if err != nil {
		return nil, fmt.Errorf("invalid version in header %q: %w", header, err)
	}
	d := &Decoder{
		version:             version,
		rulesets:            opts.Rulesets,
		log:                 opts.Logger,
		variables:           Variables{},
		defaultSampleVolume: DEFAULT_SAMPLE_VOLUME,
	}
	if d.rulesets == nil {
		d.rulesets = registeredRulesets()
	}
	if d.log == nil {
		d.log = log.New(io.Discard, "", 0)
	}
	return d, nil
}

func (d *Decoder) Version() int { return d.version }

// decodeLines consumes the scanner to the end. Lines already read by the
// caller (the header) are accounted for by firstLine.
func (d *Decoder) decodeLines(sc *bufio.Scanner, firstLine int) (*Beatmap, error) {
	b := NewBeatmap()
	b.Info.FormatVersion = d.version

	sec := SectionNone
	n := firstLine
	for sc.Scan() {
		n++
		line := sc.Text()
		next, err := d.handleLine(b, sec, line)
		if err != nil {
			var de *DecodeError
			if !errors.As(err, &de) {
				de = &DecodeError{Err: err}
				err = de
			}
			de.Line, de.Section = n, sec
			return nil, err
		}
		sec = next
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for _, h := range b.HitObjects {
		h.ApplyDefaults(b.ControlPoints, b.Info.Difficulty)
	}
	return b, nil
}

func (d *Decoder) handleLine(b *Beatmap, sec Section, line string) (Section, error) {
	switch classify(line) {
	case lineSkip:
		return sec, nil
	case lineVersion:
		v, err := ParseInt(line[len(VERSION_MARKER):])
		if err != nil {
			return sec, err
		}
		b.Info.FormatVersion = v
		return sec, nil
	case lineHeader:
		return transition(sec, line)
	}

	var key, value string
	if s, ok := sec.keyValueSeparator(); ok {
		var err error
		if key, value, err = splitKeyValue(line, s); err != nil {
			return sec, err
		}
	}

	var err error
	switch sec {
	case SectionNone:
	case SectionGeneral:
		err = d.handleGeneral(b, key, value)
	case SectionEditor:
		err = d.handleEditor(b, key, value)
	case SectionMetadata:
		err = d.handleMetadata(b, key, value)
	case SectionDifficulty:
		err = d.handleDifficulty(b, key, value)
	case SectionEvents:
		err = d.handleEvents(b, line)
	case SectionTimingPoints:
		err = d.handleTimingPoints(b, line)
	case SectionColours:
		err = d.handleColours(b, key, value)
	case SectionHitObjects:
		err = d.handleHitObject(b, line)
	case SectionVariables:
		d.variables.Set(key, value)
	}
	return sec, err
}

func (d *Decoder) handleHitObject(b *Beatmap, line string) error {
	if d.parser == nil {
		return fmt.Errorf("%w (Mode %d)", ErrNoRuleset, b.Info.RulesetID)
	}
	obj, err := d.parser.Parse(line)
	if err != nil {
		return err
	}
	if obj != nil {
		b.HitObjects = append(b.HitObjects, obj)
	}
	return nil
}
