package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeEquations(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "equations.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestSolveCommandReportsSAT(t *testing.T) {
	path := writeEquations(t, "x + y\nx + z\n")

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"solve", path})

	require.NoError(t, cmd.Execute())
	require.True(t, strings.HasPrefix(out.String(), "SAT\n"))
	require.Contains(t, errOut.String(), "Steps:")
}

func TestSolveCommandReportsUNSATWithExitCode(t *testing.T) {
	path := writeEquations(t, "x\nx + 1\n")

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"solve", path})

	err := cmd.Execute()
	require.Error(t, err)
	var ec *exitCodeError
	require.True(t, errors.As(err, &ec))
	require.Equal(t, 3, ec.code)
	require.True(t, strings.HasPrefix(out.String(), "UNSAT\n"))
}

func TestSolveCommandRejectsMissingFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"solve", filepath.Join(t.TempDir(), "does-not-exist.txt")})

	require.Error(t, cmd.Execute())
}

func TestSolveCommandRejectsEmptyFile(t *testing.T) {
	path := writeEquations(t, "# nothing but comments\n\n")

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"solve", path})

	require.Error(t, cmd.Execute())
}

func TestVersionCommandPrintsVersion(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "grobner")
}
