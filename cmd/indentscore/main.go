package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jsnanigans/indentscore/pkg/indentscore"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

type options struct {
	format  string
	color   string
	show    bool
	verbose bool
	oldPath string
	newPath string
}

type report struct {
	Old   string                   `json:"old" yaml:"old"`
	New   string                   `json:"new" yaml:"new"`
	Hunks []indentscore.HunkReport `json:"hunks" yaml:"hunks"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "indentscore: %v\n", err)
		return exitUsage
	}

	log.SetFlags(0)
	if opts.verbose {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	oldText, err := os.ReadFile(opts.oldPath)
	if err != nil {
		fmt.Fprintf(stderr, "indentscore: read old: %v\n", err)
		return exitIO
	}
	newText, err := os.ReadFile(opts.newPath)
	if err != nil {
		fmt.Fprintf(stderr, "indentscore: read new: %v\n", err)
		return exitIO
	}

	rep := report{
		Old:   opts.oldPath,
		New:   opts.newPath,
		Hunks: indentscore.AnalyzeHunks(string(oldText), string(newText)),
	}

	if err := writeReport(stdout, opts.format, rep); err != nil {
		fmt.Fprintf(stderr, "indentscore: %v\n", err)
		return exitIO
	}

	if opts.show {
		color := useColor(opts.color, stdout)
		for _, side := range []struct {
			name  string
			op    indentscore.Op
			lines []string
		}{
			{opts.oldPath, indentscore.OpDelete, indentscore.SplitLines(string(oldText))},
			{opts.newPath, indentscore.OpInsert, indentscore.SplitLines(string(newText))},
		} {
			var hunks []indentscore.HunkReport
			for _, h := range rep.Hunks {
				if h.Op == side.op {
					hunks = append(hunks, h)
				}
			}
			fmt.Fprintf(stdout, "--- %s ---\n", side.name)
			fmt.Fprint(stdout, indentscore.VisualizeHunks(side.lines, hunks, color))
		}
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("indentscore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.format, "format", "text", "output format: text, yaml or json")
	fs.StringVar(&opts.color, "color", "auto", "colorize -show output: auto, always or never")
	fs.BoolVar(&opts.show, "show", false, "print both files with hunks marked")
	fs.BoolVar(&opts.verbose, "v", false, "log debug output to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: indentscore [flags] OLD NEW")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 2 {
		return opts, fmt.Errorf("%w: want 2 files, got %d", errUsage, fs.NArg())
	}
	switch opts.format {
	case "text", "yaml", "json":
	default:
		return opts, fmt.Errorf("%w: unknown format %q", errUsage, opts.format)
	}
	switch opts.color {
	case "auto", "always", "never":
	default:
		return opts, fmt.Errorf("%w: unknown color mode %q", errUsage, opts.color)
	}
	opts.oldPath, opts.newPath = fs.Arg(0), fs.Arg(1)
	return opts, nil
}

func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		for _, h := range rep.Hunks {
			_, err := fmt.Fprintf(w, "%s %d-%d effective_indent=%d penalty=%d\n",
				h.Op, h.Start, h.End, h.Score.EffectiveIndent, h.Score.Penalty)
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// useColor resolves the -color flag. In auto mode color is only used when w
// is a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
