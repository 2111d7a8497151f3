package io

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	. "seqedit/internal/logger"

	"github.com/rjeczalik/notify"
)

// FileWatcher calls back whenever the watched document is written,
// created or renamed by someone else.
type FileWatcher struct {
	filePath  string
	lastStats os.FileInfo
	events    chan notify.EventInfo
	mu        sync.Mutex
}

func NewFileWatcher(filePath string) *FileWatcher {
	abs, err := filepath.Abs(filePath)
	if err != nil { abs = filePath }
	return &FileWatcher{filePath: abs}
}

// StartWatch watches the document's directory, since editors often replace
// files by rename, and filters events down to the document itself.
func (fw *FileWatcher) StartWatch(onUpdate func()) error {
	fw.UpdateStats()
	fw.events = make(chan notify.EventInfo, 8)

	dir := filepath.Dir(fw.filePath)
	if err := notify.Watch(dir, fw.events, notify.Write, notify.Create, notify.Rename); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		for e := range fw.events {
			if !fw.sameFile(e.Path()) { continue }
			if !fw.changed() { continue }
			Log.Info("document changed:", e.Event().String(), e.Path())
			onUpdate()
		}
	}()
	return nil
}

func (fw *FileWatcher) Stop() {
	if fw.events == nil { return }
	notify.Stop(fw.events)
	close(fw.events)
	fw.events = nil
}

// UpdateStats records the current size and mtime; invoke it after writing
// the document ourselves so our own save is not reported.
func (fw *FileWatcher) UpdateStats() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	newStats, _ := os.Stat(fw.filePath)
	fw.lastStats = newStats
}

func (fw *FileWatcher) changed() bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	stats, err := os.Stat(fw.filePath)
	if err != nil { return false }
	if fw.lastStats != nil &&
		stats.Size() == fw.lastStats.Size() &&
		stats.ModTime().Equal(fw.lastStats.ModTime()) {
		return false
	}
	fw.lastStats = stats
	return true
}

func (fw *FileWatcher) sameFile(path string) bool {
	if path == fw.filePath { return true }
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil { return false }
	want, err := filepath.EvalSymlinks(fw.filePath)
	return err == nil && resolved == want
}
