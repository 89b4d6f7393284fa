package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/zephyrtronium/postfix"
)

// errUsage reports that usage has already been printed.
var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)
	gtrace.CoreTracer = gologadapter.New()
	if err := cli(os.Args[1:], os.Stdout); err != nil && !errors.Is(err, errUsage) {
		log.Print(err)
	}
	// Failures are reported on stdout only; the exit status is always 0.
	os.Exit(0)
}

// cli runs the program with the given arguments, not including the program
// name. Usage and flag errors go to stdout.
func cli(args []string, stdout io.Writer) error {
	var (
		workers int
		strict  bool
		level   string
	)
	fs := flag.NewFlagSet("postfix", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(stdout, "usage: postfix [flags] <input file> <output file>")
		fs.PrintDefaults()
	}
	fs.IntVar(&workers, "j", 1, "number of expressions to evaluate concurrently")
	fs.BoolVar(&strict, "strict-div", false, "make division by zero an error instead of inf or NaN")
	fs.StringVar(&level, "trace", "error", "trace level: error, info, or debug")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}
	if err := setTraceLevel(level); err != nil {
		return err
	}
	inname, outname := fs.Arg(0), fs.Arg(1)
	gtrace.CoreTracer.Infof("input file is %s, output file is %s", inname, outname)

	opts := []postfix.EvalOption{postfix.Workers(workers)}
	if strict {
		opts = append(opts, postfix.StrictDivision())
	}
	exprs, err := readFile(inname, opts)
	if err != nil {
		return err
	}
	postfix.Sort(exprs)
	return writeFile(outname, exprs)
}

func setTraceLevel(level string) error {
	switch level {
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	return nil
}

func readFile(name string, opts []postfix.EvalOption) ([]*postfix.Expr, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &postfix.IOError{Op: "open", Path: name, Err: err}
	}
	defer f.Close()
	exprs, err := postfix.ReadAll(context.Background(), f, opts...)
	if err != nil {
		return nil, withPath(err, name)
	}
	return exprs, nil
}

// writeFile creates the output file and writes the expressions to it. It is
// called only once the whole batch has been evaluated, so failed runs never
// leave an output file behind.
func writeFile(name string, exprs []*postfix.Expr) error {
	f, err := os.Create(name)
	if err != nil {
		return &postfix.IOError{Op: "create", Path: name, Err: err}
	}
	if err := postfix.WriteAll(f, exprs); err != nil {
		f.Close()
		return withPath(err, name)
	}
	if err := f.Close(); err != nil {
		return &postfix.IOError{Op: "close", Path: name, Err: err}
	}
	return nil
}

// withPath fills in the file name of an *IOError, or of a *LineError with the
// input file's name.
func withPath(err error, name string) error {
	var ioerr *postfix.IOError
	if errors.As(err, &ioerr) && ioerr.Path == "" {
		ioerr.Path = name
		return err
	}
	var lerr *postfix.LineError
	if errors.As(err, &lerr) {
		return fmt.Errorf("%s: %w", name, err)
	}
	return err
}
