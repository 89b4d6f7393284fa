package postfix

import (
	"bufio"
	"context"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// pending is a tokenized line waiting to be evaluated.
type pending struct {
	src  string
	line int
}

// ReadAll reads postfix expressions from r, one per line, and evaluates them.
// The result is in input order; blank lines contribute nothing.
//
// Every line is tokenized before any is evaluated, so an invalid character
// anywhere in the input fails the whole batch without evaluating anything.
// Any error fails the whole batch. Errors for a particular line are wrapped
// in a *LineError, and if several lines fail, the error for the first of them
// is returned. Read errors are wrapped in an *IOError.
//
// With Workers(n) for n > 1, up to n lines are evaluated concurrently. ReadAll
// returns only after every started evaluation has finished.
func ReadAll(ctx context.Context, r io.Reader, opts ...EvalOption) ([]*Expr, error) {
	p := newEvalctx(opts)
	var lines []pending
	rd := bufio.NewReader(r)
	n := 0
	for {
		text, err := rd.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &IOError{Op: "read", Err: err}
		}
		if text == "" && err == io.EOF {
			break
		}
		n++
		src, terr := Tokenize(strings.TrimRight(text, "\r\n"))
		if terr != nil {
			return nil, &LineError{Line: n, Err: terr}
		}
		if src != "" {
			lines = append(lines, pending{src: src, line: n})
		}
		if err == io.EOF {
			break
		}
	}
	tracer().Infof("read %d expressions from %d lines", len(lines), n)

	exprs := make([]*Expr, len(lines))
	errs := make([]error, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range lines {
		// Stop starting evaluations once one has failed. Lines already
		// started, which include every line before the failure, still finish.
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			e, err := eval(lines[i].src, &p)
			if err != nil {
				errs[i] = &LineError{Line: lines[i].line, Err: err}
				return errs[i]
			}
			e.line = lines[i].line
			exprs[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer().Infof("evaluated %d expressions with %d workers", len(exprs), p.workers)
	return exprs, nil
}

// WriteAll writes one line per expression to w, in the given order, with the
// format "infix = value". Write errors are wrapped in an *IOError.
func WriteAll(w io.Writer, exprs []*Expr) error {
	b := bufio.NewWriter(w)
	for _, e := range exprs {
		// bufio.Writer keeps the first error, so checking Flush is enough.
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	if err := b.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	tracer().Infof("wrote %d expressions", len(exprs))
	return nil
}
