package dotosu

import (
	"fmt"
	"strings"
)

const VERSION_MARKER = "osu file format v"

type Section int

const (
	SectionNone Section = iota
	SectionGeneral
	SectionEditor
	SectionMetadata
	SectionDifficulty
	SectionEvents
	SectionTimingPoints
	SectionColours
	SectionHitObjects
	SectionVariables
)

var sectionNames = [...]string{
	SectionNone:         "None",
	SectionGeneral:      "General",
	SectionEditor:       "Editor",
	SectionMetadata:     "Metadata",
	SectionDifficulty:   "Difficulty",
	SectionEvents:       "Events",
	SectionTimingPoints: "TimingPoints",
	SectionColours:      "Colours",
	SectionHitObjects:   "HitObjects",
	SectionVariables:    "Variables",
}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

// ParseSection matches a header name exactly, as written inside the brackets.
func ParseSection(name string) (Section, bool) {
	for i, n := range sectionNames {
		if n == name {
			return Section(i), true
		}
	}
	return SectionNone, false
}

// keyValueSeparator reports how content lines of s split into key and value.
func (s Section) keyValueSeparator() (byte, bool) {
	switch s {
	case SectionGeneral, SectionEditor, SectionMetadata, SectionDifficulty, SectionColours:
		return ':', true
	case SectionVariables:
		return '=', true
	}
	return 0, false
}

type lineKind int

const (
	lineSkip lineKind = iota
	lineVersion
	lineHeader
	lineContent
)

// classify is checked before any section logic, so comments and indented
// storyboard lines are dropped everywhere.
func classify(line string) lineKind {
	switch {
	case line == "",
		strings.HasPrefix(line, " "),
		strings.HasPrefix(line, "_"),
		strings.HasPrefix(line, "//"):
		return lineSkip
	case strings.HasPrefix(line, VERSION_MARKER):
		return lineVersion
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return lineHeader
	}
	return lineContent
}

// transition is the state machine step: the section after line, or an error
// for an unknown header. It only moves on header lines.
func transition(cur Section, line string) (Section, error) {
	if classify(line) != lineHeader {
		return cur, nil
	}
	next, ok := ParseSection(line[1 : len(line)-1])
	if !ok {
		return cur, fmt.Errorf("%w %s", ErrUnknownSection, line)
	}
	return next, nil
}

func splitKeyValue(line string, sep byte) (key, value string, err error) {
	i := strings.IndexByte(line, sep)
	if i < 0 {
		return "", "", fmt.Errorf("%w: missing %q separator", ErrMalformedLine, sep)
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), nil
}
