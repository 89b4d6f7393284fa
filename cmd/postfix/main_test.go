package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/zephyrtronium/postfix"
)

// setup routes tracing into the test log and returns a temporary directory
// holding an input file with the given contents.
func setup(t *testing.T, input string) (dir, in, out string) {
	gtrace.CoreTracer = gotestingadapter.New()
	t.Cleanup(gotestingadapter.RedirectTracing(t))
	dir = t.TempDir()
	in = filepath.Join(dir, "in.txt")
	out = filepath.Join(dir, "out.txt")
	assert.NoError(t, os.WriteFile(in, []byte(input), 0o644))
	return dir, in, out
}

func TestCLI(t *testing.T) {
	_, in, out := setup(t, "5 1 2 + 4 * + 3 -\n4 5+\n\n1 2 -\n6 3 /\n")
	var stdout bytes.Buffer
	assert.NoError(t, cli([]string{in, out}, &stdout))
	got, err := os.ReadFile(out)
	assert.NoError(t, err)
	want := "1 - 2 = -1\n6 / 3 = 2\n4 + 5 = 9\n( 5 + ( ( 1 + 2 ) * 4 ) ) - 3 = 14\n"
	assert.Equal(t, want, string(got))
	assert.Equal(t, "", stdout.String())
}

func TestCLITruncates(t *testing.T) {
	_, in, out := setup(t, "3 4 +\n")
	assert.NoError(t, os.WriteFile(out, []byte("old contents that are longer\n"), 0o644))
	assert.NoError(t, cli([]string{"-j", "4", "-trace", "debug", in, out}, new(bytes.Buffer)))
	got, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Equal(t, "3 + 4 = 7\n", string(got))
}

func TestCLIUsage(t *testing.T) {
	setup(t, "")
	for _, args := range [][]string{nil, {"one"}, {"one", "two", "three"}, {"-nope", "a", "b"}} {
		var stdout bytes.Buffer
		err := cli(args, &stdout)
		assert.True(t, errors.Is(err, errUsage))
		assert.Contains(t, stdout.String(), "usage: postfix")
	}
}

func TestCLIInvalidCharacter(t *testing.T) {
	_, in, out := setup(t, "3 4 +\n3 $ 4 +\n")
	err := cli([]string{in, out}, new(bytes.Buffer))
	var ic *postfix.InvalidCharacterError
	assert.True(t, errors.As(err, &ic))
	assert.Contains(t, err.Error(), in)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLIStructuralError(t *testing.T) {
	_, in, out := setup(t, "3 4 +\n3 4\n")
	err := cli([]string{in, out}, new(bytes.Buffer))
	var se *postfix.StructuralError
	assert.True(t, errors.As(err, &se))
	assert.Contains(t, err.Error(), "line 2")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLIStrictDivision(t *testing.T) {
	_, in, out := setup(t, "1 0 /\n")
	var de *postfix.DivisionError
	err := cli([]string{"-strict-div", in, out}, new(bytes.Buffer))
	assert.True(t, errors.As(err, &de))

	assert.NoError(t, cli([]string{in, out}, new(bytes.Buffer)))
	got, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Equal(t, "1 / 0 = inf\n", string(got))
}

func TestCLIMissingInput(t *testing.T) {
	dir, _, out := setup(t, "")
	missing := filepath.Join(dir, "missing.txt")
	err := cli([]string{missing, out}, new(bytes.Buffer))
	var ioerr *postfix.IOError
	assert.True(t, errors.As(err, &ioerr))
	assert.Equal(t, "open", ioerr.Op)
	assert.Equal(t, missing, ioerr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCLIUncreatableOutput(t *testing.T) {
	dir, in, _ := setup(t, "3 4 +\n")
	out := filepath.Join(dir, "no", "such", "dir", "out.txt")
	err := cli([]string{in, out}, new(bytes.Buffer))
	var ioerr *postfix.IOError
	assert.True(t, errors.As(err, &ioerr))
	assert.Equal(t, "create", ioerr.Op)
}

func TestCLITraceLevel(t *testing.T) {
	_, in, out := setup(t, "3 4 +\n")
	err := cli([]string{"-trace", "loud", in, out}, new(bytes.Buffer))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
