package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/daygrid/internal/cli"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_PrintsAnswer(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n")

	for part, want := range map[string]string{"1": "11\n", "2": "31\n"} {
		out := &bytes.Buffer{}
		require.NoError(t, run(context.Background(), out, []string{part, path}))
		require.Equal(t, want, out.String())
	}
}

func TestRun_InvalidPart(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{"3", "input.txt"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, cli.UsageCode, exitErr.Code)
	require.Equal(t, "'3' is not a valid part number", exitErr.Message)
}

func TestRun_MalformedLine(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "1 2\n3\n")

	err := run(context.Background(), &bytes.Buffer{}, []string{"1", path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}
