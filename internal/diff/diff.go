package diff

import (
	"fmt"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	gogit "github.com/go-git/go-git/v5"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var dmp = diffmatchpatch.New()

// Changes compares two documents line by line. added holds 1-based line
// numbers in newText, removed holds 1-based line numbers in oldText.
func Changes(oldText, newText string) (added, removed mapset.Set[int]) {
	added = mapset.NewThreadUnsafeSet[int]()
	removed = mapset.NewThreadUnsafeSet[int]()

	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	newLineNum, oldLineNum := 1, 1
	for _, diff := range diffs {
		count := lineCount(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			for i := 0; i < count; i++ { added.Add(newLineNum + i) }
			newLineNum += count
		case diffmatchpatch.DiffDelete:
			for i := 0; i < count; i++ { removed.Add(oldLineNum + i) }
			oldLineNum += count
		default:
			newLineNum += count
			oldLineNum += count
		}
	}
	return added, removed
}

func lineCount(text string) int {
	count := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") { count++ }
	return count
}

// Unified renders a unified diff with three lines of context. It returns an
// empty string when the documents are equal.
func Unified(fromName, toName, oldText, newText string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldText),
		B:        difflib.SplitLines(newText),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// LastCommitContent returns the content of filePath as of HEAD in the git
// repository containing it.
func LastCommitContent(filePath string) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil { return "", fmt.Errorf("error resolving path: %w", err) }

	r, err := gogit.PlainOpenWithOptions(filepath.Dir(abs), &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil { return "", fmt.Errorf("error opening git repository: %w", err) }

	wt, err := r.Worktree()
	if err != nil { return "", fmt.Errorf("error getting worktree: %w", err) }

	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil { return "", fmt.Errorf("error locating file in worktree: %w", err) }

	ref, err := r.Head()
	if err != nil { return "", fmt.Errorf("error getting repository HEAD: %w", err) }

	commit, err := r.CommitObject(ref.Hash())
	if err != nil { return "", fmt.Errorf("error getting commit object: %w", err) }

	tree, err := commit.Tree()
	if err != nil { return "", fmt.Errorf("error getting commit tree: %w", err) }

	file, err := tree.File(filepath.ToSlash(rel))
	if err != nil { return "", fmt.Errorf("error getting file from tree: %w", err) }

	return file.Contents()
}
