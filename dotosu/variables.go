package dotosu

import (
	"fmt"
	"strings"
)

// Variables maps "$name" tokens from the [Variables] section to their text.
type Variables map[string]string

func (v Variables) Set(key, value string) { v[key] = value }

// Expand substitutes every comma-separated field that is a known variable.
// It repeats while the line still holds a '$' and the previous pass changed
// something. Self-referencing variables would loop forever, so passes are
// capped at len(v)+1.
func (v Variables) Expand(line string) (string, error) {
	limit := len(v) + 1
	for pass := 0; strings.IndexByte(line, '$') >= 0; pass++ {
		if pass >= limit {
			return line, fmt.Errorf("%w after %d passes: %q", ErrVariableLoop, limit, line)
		}
		fields := strings.Split(line, ",")
		replaced := false
		for i, f := range fields {
			if !strings.HasPrefix(f, "$") {
				continue
			}
			if val, ok := v[f]; ok {
				fields[i] = val
				replaced = true
			}
		}
		if !replaced {
			break
		}
		line = strings.Join(fields, ",")
	}
	return line, nil
}
