package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Fail writes the reason an input could not be decoded into dir, one file per
// input, named after it.
func Fail(dir, source string, reason error) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	path := filepath.Join(dir, failureName(source)+".txt")
	body := fmt.Sprintf("%s\n\n%s\n", source, reason.Error())
	return os.WriteFile(path, []byte(body), 0666)
}

func failureName(source string) string {
	name := strings.TrimSuffix(source, filepath.Ext(source))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, name)
}
