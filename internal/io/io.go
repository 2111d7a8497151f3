// Package io loads documents as lines and watches them for external changes.
package io

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/acarl005/stripansi"
)

type ScrubOptions struct {
	Trim      bool // trim surrounding whitespace of every line
	StripANSI bool // drop terminal escape sequences
}

var DefaultScrub = ScrubOptions{Trim: true, StripANSI: true}

// ReadLines reads the file at path into lines without their line endings.
func ReadLines(path string, opts ScrubOptions) ([]string, error) {
	file, err := os.Open(path)
	if err != nil { return nil, fmt.Errorf("read document %s: %w", path, err) }
	defer file.Close()
	return scan(file, path, opts)
}

// ReadResource reads a named file from fsys, typically an embed.FS.
func ReadResource(fsys fs.FS, name string, opts ScrubOptions) ([]string, error) {
	file, err := fsys.Open(name)
	if err != nil { return nil, fmt.Errorf("read resource %s: %w", name, err) }
	defer file.Close()
	return scan(file, name, opts)
}

func scan(file fs.File, name string, opts ScrubOptions) ([]string, error) {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", name, err)
	}
	Scrub(lines, opts)
	return lines, nil
}

// Scrub cleans lines in place.
func Scrub(lines []string, opts ScrubOptions) {
	for i, line := range lines {
		if opts.StripANSI { line = stripansi.Strip(line) }
		if opts.Trim { line = strings.TrimSpace(line) }
		lines[i] = line
	}
}

// WriteLines writes every line followed by '\n'.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil { return fmt.Errorf("write document %s: %w", path, err) }

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil { f.Close(); return err }
		if err := w.WriteByte('\n'); err != nil { f.Close(); return err }
	}

	if err := w.Flush(); err != nil { f.Close(); return err }
	return f.Close()
}
