package search

import (
	. "seqedit/internal/logger"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type SearchResult struct {
	Line     int
	Position int
}

// SearchDown finds the first occurrence of pattern at or after
// (startLine, startCol). It returns -1, -1 when there is none.
func SearchDown(lines []string, pattern string, startLine int, startCol int) (int, int) {
	start := time.Now()
	defer func() { Log.Info("search down end, elapsed:", time.Since(start).String()) }()

	if len(pattern) == 0 { return -1, -1 }
	if startLine < 0 || startLine >= len(lines) { return -1, -1 }

	for i := startLine; i < len(lines); i++ {
		line := lines[i]
		if startCol < 0 || startCol > len(line) { startCol = 0; continue }
		pos := strings.Index(line[startCol:], pattern)
		if pos != -1 { return i, pos + startCol }
		startCol = 0
	}
	return -1, -1
}

// Search returns every occurrence of pattern, overlapping ones included.
func Search(lines []string, pattern string) []SearchResult {
	results := []SearchResult{}
	if len(pattern) == 0 || len(lines) == 0 { return results }

	for i, line := range lines {
		from := 0
		for {
			pos := strings.Index(line[from:], pattern)
			if pos == -1 { break }
			pos = from + pos
			results = append(results, SearchResult{i, pos})
			from = pos + 1
		}
	}
	return results
}

// MatchedLines is the set of line numbers containing at least one match.
func MatchedLines(results []SearchResult) mapset.Set[int] {
	set := mapset.NewThreadUnsafeSet[int]()
	for _, r := range results {
		set.Add(r.Line)
	}
	return set
}
