package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"
)

func isArchive(src string) bool {
	return strings.EqualFold(filepath.Ext(src), ".osz")
}

type archiveEntry struct {
	Name string
	Data []byte
}

// extractBeatmaps returns the .osu files at the top level of an .osz archive,
// sorted by name. Entries in subdirectories are not beatmaps the game would
// load and are skipped.
func extractBeatmaps(data []byte) ([]archiveEntry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("error opening osz (zip): %w", err)
	}

	var entries []archiveEntry
	for _, file := range zr.File {
		if !strings.EqualFold(filepath.Ext(file.Name), ".osu") {
			continue
		}
		if file.FileInfo().IsDir() || strings.ContainsAny(file.Name, "/\\") {
			log.Printf("skipping nested archive entry %s", file.Name)
			continue
		}
		body, err := readEntry(file)
		if err != nil {
			return nil, err
		}
		entries = append(entries, archiveEntry{Name: file.Name, Data: body})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no .osu files found in the archive")
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func readEntry(file *zip.File) ([]byte, error) {
	r, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening .osu file %s: %w", file.Name, err)
	}
	defer r.Close()
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading .osu file %s: %w", file.Name, err)
	}
	return body, nil
}
