package dotosu

import (
	"fmt"
	"strconv"
	"strings"
)

type EventType int

const (
	EventBackground EventType = iota
	EventVideo
	EventBreak
	EventColour
	EventSprite
	EventSample
	EventAnimation
)

var eventTypeNames = [...]string{
	EventBackground: "Background",
	EventVideo:      "Video",
	EventBreak:      "Break",
	EventColour:     "Colour",
	EventSprite:     "Sprite",
	EventSample:     "Sample",
	EventAnimation:  "Animation",
}

func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventTypeNames) {
		return strconv.Itoa(int(e))
	}
	return eventTypeNames[e]
}

// ParseEventType accepts the type name or its numeric id.
func ParseEventType(s string) (EventType, bool) {
	s = strings.TrimSpace(s)
	for i, n := range eventTypeNames {
		if n == s {
			return EventType(i), true
		}
	}
	if id, err := strconv.Atoi(s); err == nil && id >= 0 && id < len(eventTypeNames) {
		return EventType(id), true
	}
	return 0, false
}

func (d *Decoder) handleEvents(b *Beatmap, line string) error {
	line, err := d.variables.Expand(line)
	if err != nil {
		return err
	}

	parts := splitFields(line)
	typ, ok := ParseEventType(parts[0])
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownEvent, parts[0])
	}

	switch typ {
	case EventBackground, EventVideo:
		if len(parts) < 3 {
			return fmt.Errorf("%w: %s event without filename", ErrMalformedLine, typ)
		}
		if typ == EventBackground {
			b.Info.Metadata.BackgroundFile = cleanFilename(parts[2])
		}

	case EventBreak:
		if len(parts) < 3 {
			return fmt.Errorf("%w: break without start and end", ErrMalformedLine)
		}
		var br BreakPeriod
		if br.StartTime, err = ParseFloat(parts[1]); err != nil {
			return err
		}
		if br.EndTime, err = ParseFloat(parts[2]); err != nil {
			return err
		}
		if !br.HasEffect() {
			d.log.Printf("dropping %.0fms break at %.0f", br.Duration(), br.StartTime)
			return nil
		}
		b.Breaks = append(b.Breaks, br)
	}
	// Storyboard events are validated but not modelled.
	return nil
}
