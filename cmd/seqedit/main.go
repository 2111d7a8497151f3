// Package main is the entry point for the seqedit line editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	. "seqedit/internal/config"
	"seqedit/internal/diff"
	"seqedit/internal/editor"
	seqio "seqedit/internal/io"
	. "seqedit/internal/logger"
	"seqedit/internal/ui"

	"github.com/gdamore/tcell"
	"github.com/goccy/go-json"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	configPath string
	scriptPath string
	dump       bool
	json       bool
	diff       bool
	head       bool
	debug      bool
	write      bool
	version    bool
	filename   string
}

// batch reports whether the run prints something instead of opening the screen.
func (o options) batch() bool {
	return o.scriptPath != "" || o.write || o.dump || o.json || o.diff || o.head || o.debug
}

func main() {
	if err := Log.Start(); err != nil { fmt.Fprintf(os.Stderr, "Error: %v\n", err) }
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	Log.Stop()
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) { return 0 }
	if err != nil { return 2 }

	if opts.version {
		fmt.Fprintf(stdout, "seqedit %s\n", version)
		return 0
	}

	conf := GetConfig()
	if opts.configPath != "" { conf = ReadConfig(opts.configPath) }

	doc := editor.NewWithCapacity(conf.Capacity)
	scrub := seqio.ScrubOptions{Trim: conf.TrimLines(), StripANSI: conf.StripEscapes()}
	if opts.filename != "" {
		err := doc.Open(opts.filename, scrub)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if !opts.batch() {
		if err := runScreen(doc, conf, opts.filename); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runBatch(opts, doc, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("seqedit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.scriptPath, "script", "", "Apply editor commands from file")
	fs.BoolVar(&opts.dump, "dump", false, "Print the document as (rank,line) pairs")
	fs.BoolVar(&opts.json, "json", false, "Print the document as JSON")
	fs.BoolVar(&opts.diff, "diff", false, "Print a unified diff of the edits")
	fs.BoolVar(&opts.head, "head", false, "Print a unified diff against the last git commit")
	fs.BoolVar(&opts.debug, "debug", false, "Print the editor state")
	fs.BoolVar(&opts.write, "write", false, "Save the file after applying -script")
	fs.BoolVar(&opts.version, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "seqedit - line editor over an array backed sequence\n\n")
		fmt.Fprintf(stderr, "Usage: seqedit [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  seqedit notes.txt                      Edit a file\n")
		fmt.Fprintf(stderr, "  seqedit -script edit.script -diff a.txt  Show what a script changes\n")
	}

	if err := fs.Parse(args); err != nil { return opts, err }
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "Error: expected at most one file, got %d\n", fs.NArg())
		fs.Usage()
		return opts, errors.New("too many arguments")
	}
	opts.filename = fs.Arg(0)
	if opts.write && opts.filename == "" {
		fmt.Fprintln(stderr, "Error: -write needs a file")
		return opts, errors.New("missing file")
	}
	return opts, nil
}

func runScreen(doc *editor.TextEditor, conf Config, filename string) error {
	screen, err := tcell.NewScreen()
	if err != nil { return fmt.Errorf("create screen: %w", err) }
	return ui.NewEditor(screen, doc, conf, filename).Start()
}

func runBatch(opts options, doc *editor.TextEditor, stdout io.Writer) error {
	loaded := doc.String()

	if opts.scriptPath != "" {
		script, err := os.Open(opts.scriptPath)
		if err != nil { return err }
		defer script.Close()
		if err := doc.ApplyScript(script); err != nil { return err }
		Log.Info("applied script", opts.scriptPath)
	}

	if opts.write {
		if err := doc.Save(opts.filename); err != nil { return err }
	}

	if opts.dump { fmt.Fprintln(stdout, doc.Render()) }

	if opts.json {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil { return fmt.Errorf("encode json: %w", err) }
		fmt.Fprintln(stdout, string(data))
	}

	name := opts.filename
	if name == "" { name = "scratch" }

	if opts.diff {
		text, err := diff.Unified(name, name+" (edited)", withNewline(loaded), withNewline(doc.String()))
		if err != nil { return err }
		fmt.Fprint(stdout, text)
	}

	if opts.head {
		if opts.filename == "" { return errors.New("-head needs a file") }
		committed, err := diff.LastCommitContent(opts.filename)
		if err != nil { return err }
		text, err := diff.Unified("HEAD:"+name, name, committed, withNewline(doc.String()))
		if err != nil { return err }
		fmt.Fprint(stdout, text)
	}

	if opts.debug { fmt.Fprintln(stdout, doc.Dump()) }
	return nil
}

func withNewline(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") { return text }
	return text + "\n"
}
