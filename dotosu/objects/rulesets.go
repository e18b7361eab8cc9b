// Package objects holds the hit object parsers for the four legacy rulesets.
// Importing it registers them with dotosu under their Mode values.
package objects

import "osulegacy/dotosu"

const (
	ModeOsu   = 0
	ModeTaiko = 1
	ModeCatch = 2
	ModeMania = 3
)

func init() {
	dotosu.RegisterRuleset(ModeOsu, func() dotosu.HitObjectParser { return OsuParser{} })
	dotosu.RegisterRuleset(ModeTaiko, func() dotosu.HitObjectParser { return TaikoParser{} })
	dotosu.RegisterRuleset(ModeCatch, func() dotosu.HitObjectParser { return CatchParser{} })
	dotosu.RegisterRuleset(ModeMania, func() dotosu.HitObjectParser { return ManiaParser{} })
}

// Rulesets returns the parser table without touching the global registry.
func Rulesets() map[int]dotosu.NewParserFunc {
	return map[int]dotosu.NewParserFunc{
		ModeOsu:   func() dotosu.HitObjectParser { return OsuParser{} },
		ModeTaiko: func() dotosu.HitObjectParser { return TaikoParser{} },
		ModeCatch: func() dotosu.HitObjectParser { return CatchParser{} },
		ModeMania: func() dotosu.HitObjectParser { return ManiaParser{} },
	}
}

type OsuParser struct{}

func (OsuParser) Parse(line string) (dotosu.HitObject, error) {
	return asHitObject(parseLine(line, positionXY, false))
}

// TaikoParser drops positions; drums have no playfield coordinates.
type TaikoParser struct{}

func (TaikoParser) Parse(line string) (dotosu.HitObject, error) {
	return asHitObject(parseLine(line, positionNone, false))
}

// CatchParser keeps the horizontal position only.
type CatchParser struct{}

func (CatchParser) Parse(line string) (dotosu.HitObject, error) {
	return asHitObject(parseLine(line, positionX, false))
}

// ManiaParser keeps x, which becomes a column once the key count is known.
type ManiaParser struct{}

func (ManiaParser) Parse(line string) (dotosu.HitObject, error) {
	return asHitObject(parseLine(line, positionXY, true))
}

// asHitObject keeps a nil Object from turning into a non-nil interface.
func asHitObject(o Object, err error) (dotosu.HitObject, error) {
	if err != nil || o == nil {
		return nil, err
	}
	return o, nil
}
