package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Log is the process wide logger, started by cmd/seqedit.
var Log = Logger{}

// Logger writes timestamped lines to the file named by SEQEDIT_LOG.
// When the variable is unset every call is a no-op.
type Logger struct {
	isEnabled bool
	file      *os.File
	stream    chan string
	done      chan struct{}
	logger    *log.Logger
	layout    string
	mu        sync.Mutex
}

func (this *Logger) Start() error {
	logfilename, exists := os.LookupEnv("SEQEDIT_LOG")
	if !exists || logfilename == "" { this.isEnabled = false; return nil }

	file, err := os.OpenFile(logfilename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil { return fmt.Errorf("open log file: %w", err) }
	this.file = file

	this.logger = log.New(file, "", 0)
	this.layout = "2006-01-02 15:04:05.000"
	this.stream = make(chan string, 64)
	this.done = make(chan struct{})
	this.isEnabled = true

	go func() {
		defer close(this.done)
		for message := range this.stream {
			this.log(message)
		}
	}()

	return nil
}

func (this *Logger) log(message string) {
	now := time.Now().Format(this.layout)
	this.logger.Printf("%s %s", now, message)
}

func (this *Logger) Info(args ...string) {
	this.send(strings.Join(args, " "))
}

func (this *Logger) Error(args ...string) {
	this.send("[error] " + strings.Join(args, " "))
}

func (this *Logger) send(message string) {
	this.mu.Lock()
	defer this.mu.Unlock()
	if !this.isEnabled { return }
	this.stream <- message
}

// Stop flushes pending messages and closes the file.
func (this *Logger) Stop() {
	this.mu.Lock()
	defer this.mu.Unlock()
	if !this.isEnabled { return }
	this.isEnabled = false
	close(this.stream)
	<-this.done
	this.file.Close()
}
