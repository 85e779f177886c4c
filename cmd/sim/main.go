package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/sim/internal/config"
	"github.com/funvibe/sim/internal/evaluator"
	"github.com/funvibe/sim/internal/lexer"
	"github.com/funvibe/sim/internal/parser"
	"github.com/funvibe/sim/internal/pipeline"
	"github.com/funvibe/sim/internal/prettyprinter"
)

const usage = `Usage: sim [-hv] [-a | -t] [-c config] [-e code | file]

Runs a sim program. Without a file, starts an interactive session when
stdin is a terminal and runs stdin as one program otherwise.

  -a         print the parsed program before running it
  -t         print the syntax tree as an outline before running it
  -c config  load dialect settings from a YAML file (default: ./sim.yaml if present)
  -e code    run code given on the command line
  -h         show this help
  -v         print the version
`

var errColor = color.New(color.FgRed, color.Bold)

type options struct {
	dumpAST    bool
	dumpTree   bool
	configPath string
	code       string
	hasCode    bool
	file       string
}

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	color.NoColor = !isTerminal(os.Stderr)
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stdout)
	if err != nil {
		reportError(stderr, err)
		fmt.Fprint(stderr, usage)
		return 2
	}
	if opts == nil {
		return 0
	}

	dialect, err := loadDialect(opts.configPath)
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	interp := evaluator.NewInterpreter(dialect)

	switch {
	case opts.hasCode:
		return runSource(interp, opts.code, opts, stdout, stderr)
	case opts.file != "":
		source, err := os.ReadFile(opts.file)
		if err != nil {
			reportError(stderr, fmt.Errorf("reading input: %w", err))
			return 1
		}
		if abs, err := filepath.Abs(opts.file); err == nil {
			interp.FilePath = abs
		} else {
			interp.FilePath = opts.file
		}
		return runSource(interp, string(source), opts, stdout, stderr)
	}

	if f, ok := stdin.(*os.File); ok && isTerminal(f) {
		return runREPL(interp, stdin, stdout, stderr, true)
	}
	source, err := io.ReadAll(stdin)
	if err != nil {
		reportError(stderr, fmt.Errorf("reading input: %w", err))
		return 1
	}
	return runSource(interp, string(source), opts, stdout, stderr)
}

// parseArgs returns nil options when the invocation was fully handled
// (help, version).
func parseArgs(args []string, stdout io.Writer) (*options, error) {
	parsed, optind, err := getopt.Getopts(args, "hvatc:e:")
	if err != nil {
		return nil, err
	}

	opts := &options{}
	for _, opt := range parsed {
		switch opt.Option {
		case 'h':
			fmt.Fprint(stdout, usage)
			return nil, nil
		case 'v':
			fmt.Fprintf(stdout, "sim %s\n", config.Version)
			return nil, nil
		case 'a':
			opts.dumpAST = true
		case 't':
			opts.dumpTree = true
		case 'c':
			opts.configPath = opt.Value
		case 'e':
			opts.code = opt.Value
			opts.hasCode = true
		}
	}

	rest := args[optind:]
	switch {
	case len(rest) > 1:
		return nil, fmt.Errorf("too many arguments: %v", rest)
	case opts.dumpAST && opts.dumpTree:
		return nil, errors.New("-a and -t cannot be combined")
	case len(rest) == 1 && opts.hasCode:
		return nil, errors.New("-e and a file cannot be combined")
	case len(rest) == 1:
		opts.file = rest[0]
	}
	return opts, nil
}

func loadDialect(path string) (*config.Dialect, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.DefaultConfigFile); err == nil {
		return config.Load(config.DefaultConfigFile)
	}
	return config.Default(), nil
}

func runSource(interp *evaluator.Interpreter, source string, opts *options, stdout, stderr io.Writer) int {
	if opts.dumpAST || opts.dumpTree {
		parsed := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(newPipelineContext(interp, source))
		if err := parsed.Err(); err != nil {
			reportError(stderr, err)
			return 1
		}
		if opts.dumpTree {
			fmt.Fprint(stdout, prettyprinter.Tree(parsed.AstRoot))
		} else {
			fmt.Fprint(stdout, prettyprinter.Print(parsed.AstRoot))
		}
	}

	result, err := interp.Run(source)
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	printResult(stdout, result)
	return 0
}

func newPipelineContext(interp *evaluator.Interpreter, source string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = interp.FilePath
	ctx.Dialect = interp.Dialect
	return ctx
}

func printResult(w io.Writer, result evaluator.Object) {
	if result == nil || result.Type() == evaluator.UNIT_OBJ {
		return
	}
	fmt.Fprintln(w, result.Inspect())
}

func reportError(w io.Writer, err error) {
	errColor.Fprint(w, "error: ")
	fmt.Fprintln(w, err.Error())
}

// reportRun names the session a runtime failure happened in, matching the
// REPL banner.
func reportRun(w io.Writer, err error) {
	var rerr *evaluator.RuntimeError
	if errors.As(err, &rerr) && rerr.RunID != "" {
		fmt.Fprintf(w, "  in session %s\n", rerr.RunID)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
