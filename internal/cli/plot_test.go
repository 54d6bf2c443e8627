package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotCommand(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "acetic.png")

	out, _, err := execute(t, "plot", writeDefs(t), "acetic", "--step", "1", "--out", imgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "rendered to")

	info, err := os.Stat(imgPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestPlotCommandRequiresOut(t *testing.T) {
	_, _, err := execute(t, "plot", writeDefs(t), "acetic")
	require.Error(t, err)
}

func TestPlotCommandBadExtension(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "acetic.tiff")

	_, _, err := execute(t, "plot", writeDefs(t), "acetic", "--out", imgPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
