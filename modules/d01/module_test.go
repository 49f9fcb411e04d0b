package d01

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/daygrid/internal/input"
	"github.com/specialistvlad/daygrid/internal/registry"
	"github.com/specialistvlad/daygrid/internal/settings"
	"github.com/stretchr/testify/require"
)

const sampleInput = `3   4
4   3
2   5
1   3
3   9
3   3
`

func request(t *testing.T, content string) registry.Request {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return registry.Request{InputPath: path, Settings: settings.Default()}
}

func TestModule_RegistersBothParts(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)
	require.Equal(t, []int{1, 2}, r.Parts(Day))
}

func TestSolve_Sample(t *testing.T) {
	t.Parallel()

	req := request(t, sampleInput)

	distance, err := SolveDistance(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 11, distance)

	similarity, err := SolveSimilarity(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 31, similarity)
}

func TestSolve_MalformedLine(t *testing.T) {
	t.Parallel()

	req := request(t, "1 2\n3\n")

	_, err := SolveDistance(context.Background(), req)
	require.ErrorIs(t, err, input.ErrMissingToken)
	require.Contains(t, err.Error(), "failed to read input lists")
	require.Contains(t, err.Error(), "line 2")
}
