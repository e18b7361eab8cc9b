package objects

import (
	"fmt"
	"strings"

	"osulegacy/dotosu"
)

// positionMode says which coordinates a ruleset keeps from the line.
type positionMode uint8

const (
	positionXY positionMode = iota
	positionX
	positionNone
)

// parseLine reads x,y,time,type,hitSound,params...,hitSample.
func parseLine(line string, pm positionMode, mania bool) (Object, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return nil, fmt.Errorf("%w: hit object needs at least 5 fields, got %d", dotosu.ErrMalformedLine, len(parts))
	}

	var base Base
	// Slider paths are absolute, so the head keeps both coordinates whatever
	// the ruleset stores.
	head, err := parsePos(parts[0], parts[1])
	if err != nil {
		return nil, err
	}
	base.Pos = head
	switch pm {
	case positionX:
		base.Pos.Y = 0
	case positionNone:
		base.Pos = Vec2{}
	}
	if base.Time, err = dotosu.ParseFloat(parts[2]); err != nil {
		return nil, err
	}
	flags, err := dotosu.ParseInt(parts[3])
	if err != nil {
		return nil, err
	}
	base.Type = TypeFlags(flags)
	sound, err := dotosu.ParseInt(parts[4])
	if err != nil {
		return nil, err
	}
	base.Sound = HitSoundFlags(sound)

	switch {
	case base.Type&TypeCircle != 0:
		if len(parts) > 5 {
			if base.Sample, err = parseHitSample(parts[5]); err != nil {
				return nil, err
			}
		}
		if mania {
			return &ManiaNote{Base: base}, nil
		}
		return &Circle{Base: base}, nil

	case base.Type&TypeSlider != 0:
		return parseSlider(base, head, parts[5:])

	case base.Type&TypeSpinner != 0:
		if len(parts) < 6 {
			return nil, fmt.Errorf("%w: spinner without end time", dotosu.ErrMalformedLine)
		}
		s := &Spinner{Base: base}
		if s.End, err = dotosu.ParseFloat(parts[5]); err != nil {
			return nil, err
		}
		if len(parts) > 6 {
			if s.Sample, err = parseHitSample(parts[6]); err != nil {
				return nil, err
			}
		}
		return s, nil

	case base.Type&TypeHold != 0:
		h := &Hold{Base: base, End: base.Time}
		if len(parts) > 5 {
			if h.End, h.Sample, err = parseEndTimeAndSample(parts[5]); err != nil {
				return nil, err
			}
		}
		return h, nil
	}
	// No known type bit: not an object.
	return nil, nil
}

// params: curve, slides, length, edgeSounds, edgeSets, hitSample
func parseSlider(base Base, head Vec2, params []string) (*Slider, error) {
	if len(params) < 2 {
		return nil, fmt.Errorf("%w: slider needs a curve and a slide count", dotosu.ErrMalformedLine)
	}
	s := &Slider{Base: base}
	var err error
	if s.Path, err = parseSliderPath(head, params[0]); err != nil {
		return nil, err
	}
	if s.Slides, err = dotosu.ParseInt(params[1]); err != nil {
		return nil, err
	}
	s.Slides = max(s.Slides, 1)
	if len(params) > 2 && strings.TrimSpace(params[2]) != "" {
		if s.Length, err = dotosu.ParseFloat(params[2]); err != nil {
			return nil, err
		}
	}
	if len(params) > 3 && strings.TrimSpace(params[3]) != "" {
		for _, n := range strings.Split(params[3], "|") {
			v, err := dotosu.ParseInt(n)
			if err != nil {
				return nil, err
			}
			s.EdgeSounds = append(s.EdgeSounds, HitSoundFlags(v))
		}
	}
	if len(params) > 4 && strings.TrimSpace(params[4]) != "" {
		for _, p := range strings.Split(params[4], "|") {
			e, err := parseEdgeSet(p)
			if err != nil {
				return nil, err
			}
			s.EdgeSets = append(s.EdgeSets, e)
		}
	}
	if len(params) > 5 {
		if s.Sample, err = parseHitSample(params[5]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Coordinates may be written with a fraction; the game truncates them.
func parsePos(xs, ys string) (Vec2, error) {
	x, err := dotosu.ParseFloat(xs)
	if err != nil {
		return Vec2{}, err
	}
	y, err := dotosu.ParseFloat(ys)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{X: int(x), Y: int(y)}, nil
}

// normalSet:additionSet:index:volume:filename, every part optional.
func parseHitSample(s string) (HitSample, error) {
	var hs HitSample
	if strings.TrimSpace(s) == "" {
		return hs, nil
	}
	parts := strings.SplitN(s, ":", 5)
	ints := make([]int, 4)
	for i := 0; i < len(ints) && i < len(parts); i++ {
		if strings.TrimSpace(parts[i]) == "" {
			continue
		}
		v, err := dotosu.ParseInt(parts[i])
		if err != nil {
			return hs, err
		}
		ints[i] = v
	}
	hs.NormalSet = toSampleSet(ints[0])
	hs.AdditionSet = toSampleSet(ints[1])
	hs.Index = ints[2]
	hs.Volume = ints[3]
	if len(parts) == 5 {
		hs.Filename = strings.Trim(strings.TrimSpace(parts[4]), "\"")
	}
	return hs, nil
}

func toSampleSet(id int) SampleSet {
	switch id {
	case 1:
		return SampleNormal
	case 2:
		return SampleSoft
	case 3:
		return SampleDrum
	default:
		return SampleNone
	}
}

// "normal:addition"
func parseEdgeSet(s string) (EdgeSet, error) {
	p := strings.Split(s, ":")
	var ids [2]int
	for i := 0; i < len(ids) && i < len(p); i++ {
		v, err := dotosu.ParseInt(p[i])
		if err != nil {
			return EdgeSet{}, err
		}
		ids[i] = v
	}
	return EdgeSet{NormalSet: toSampleSet(ids[0]), AdditionSet: toSampleSet(ids[1])}, nil
}

// "endTime:hitSample"
func parseEndTimeAndSample(s string) (float64, HitSample, error) {
	end, rest, found := strings.Cut(s, ":")
	t, err := dotosu.ParseFloat(end)
	if err != nil {
		return 0, HitSample{}, err
	}
	if !found {
		return t, HitSample{}, nil
	}
	hs, err := parseHitSample(rest)
	return t, hs, err
}
