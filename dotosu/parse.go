package dotosu

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- parsing helpers ----------

// ParseInt parses a whole number the way the format writes them: optional
// sign, surrounding whitespace allowed.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// ParseFloat always uses '.' as the decimal separator.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// ParseBoolInt reads the 0/1 flags of [General]; only 1 is true.
func ParseBoolInt(s string) (bool, error) {
	v, err := ParseInt(s)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		v, err := ParseInt(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func cleanFilename(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"")
}

// splitFields splits comma-separated values without trimming them; the first
// character of a field is significant in some sections.
func splitFields(s string) []string {
	return strings.Split(s, ",")
}
