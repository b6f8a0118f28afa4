// Command avis applies one code space operation to a file of code.
//
//	avis -op rotate-cw -x 0 -y 0 -w 3 -h 3 prog.aheui
//	avis -op paste -mode smart -text '아희' -x 2 -y 1 prog.aheui
//	avis -op show -grid prog.aheui
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	avis "github.com/aheui/avis-sub000"
	"github.com/atotto/clipboard"
)

// Version information (set via ldflags during build).
var version = "dev"

var errUsage = errors.New("usage")

type options struct {
	configPath string
	op         string
	x, y, w, h int
	text       string
	mode       string
	fill       string
	output     string
	grid       bool
	input      string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if opts.fill != "" {
		cfg.Fill = opts.fill
	}
	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	source, err := readSource(opts.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	editor := avis.New(avis.Options{Source: source, Fill: cfg.Fill, Logger: log})
	editor.Select(opts.x, opts.y, opts.x+opts.w-1, opts.y+opts.h-1)

	out, err := apply(editor, opts, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if out == "" {
		return 0
	}
	if err := writeOutput(opts.output, stdout, out); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Debug("done", "op", opts.op, "dirty", editor.IsDirty())
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("avis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	fs.StringVar(&opts.op, "op", "show", "Operation: show, copy, cut, erase, paste, invert-h, invert-v, rotate-cw, rotate-ccw, join, divide, delete-rows, break")
	fs.IntVar(&opts.x, "x", 0, "Left column of the selection")
	fs.IntVar(&opts.y, "y", 0, "Top row of the selection")
	fs.IntVar(&opts.w, "w", 1, "Width of the selection")
	fs.IntVar(&opts.h, "h", 1, "Height of the selection")
	fs.StringVar(&opts.text, "text", "", "Text to paste")
	fs.StringVar(&opts.mode, "mode", "smart", "Paste mode: smart, down, right, overwrite")
	fs.StringVar(&opts.fill, "fill", "", "Fill character (overrides the config file)")
	fs.StringVar(&opts.output, "o", "", "Write the result to this file instead of stdout")
	fs.BoolVar(&opts.grid, "grid", false, "With -op show, align cells on a grid")
	showVersion := fs.Bool("version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if *showVersion {
		fmt.Fprintf(stderr, "avis %s\n", version)
		return opts, flag.ErrHelp
	}
	if fs.NArg() > 1 {
		return opts, fmt.Errorf("%w: at most one input file", errUsage)
	}
	opts.input = fs.Arg(0)
	if opts.w < 1 || opts.h < 1 {
		return opts, fmt.Errorf("%w: -w and -h must be positive", errUsage)
	}
	return opts, nil
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(path string, stdout io.Writer, out string) error {
	if path == "" {
		_, err := io.WriteString(stdout, out+"\n")
		return err
	}
	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// apply runs the operation and returns the text to write out, if any.
func apply(e *avis.Editor, opts options, stdout io.Writer) (string, error) {
	switch opts.op {
	case "show":
		if opts.grid {
			return "", writeGrid(stdout, e.Space)
		}
	case "copy":
		if err := clipboard.WriteAll(e.Copy()); err != nil {
			return "", fmt.Errorf("copying to clipboard: %w", err)
		}
		return "", nil
	case "cut":
		if err := clipboard.WriteAll(e.Cut()); err != nil {
			return "", fmt.Errorf("copying to clipboard: %w", err)
		}
	case "erase":
		e.Erase()
	case "paste":
		mode, err := avis.ParsePasteMode(opts.mode)
		if err != nil {
			return "", err
		}
		if err := e.Paste(opts.text, mode); err != nil {
			return "", err
		}
	case "invert-h":
		e.InvertH()
	case "invert-v":
		e.InvertV()
	case "rotate-cw":
		if !e.RotateCW() {
			return "", fmt.Errorf("%w: rotation needs -w equal to -h", errUsage)
		}
	case "rotate-ccw":
		if !e.RotateCCW() {
			return "", fmt.Errorf("%w: rotation needs -w equal to -h", errUsage)
		}
	case "join":
		e.JoinRows()
	case "divide":
		e.DivideRows()
	case "delete-rows":
		e.DeleteRows()
	case "break":
		e.ToggleBreakPoint()
		return "", writeGrid(stdout, e.Space)
	default:
		return "", fmt.Errorf("%w: unknown operation %q", errUsage, opts.op)
	}
	return e.Export(), nil
}
