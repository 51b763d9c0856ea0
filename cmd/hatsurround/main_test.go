package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hat-surround/internal/config"
	"hat-surround/internal/patchio"
)

// newTestCmd resets the globals and returns a command whose output is
// captured in out.
func newTestCmd(t *testing.T, out *bytes.Buffer) *cobra.Command {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Default()
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd
}

func readTestdata(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/surroundable.txt")
	require.NoError(t, err)
	return data
}

func TestClassifyFile(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	require.NoError(t, runClassify(cmd, []string{"testdata/surroundable.txt"}))
	assert.Equal(t, "20/20 patches passed checks\n", out.String())
}

func TestClassifyStdin(t *testing.T) {
	data := readTestdata(t)
	// Keep the first record and drop its P2 tile.
	lines := strings.Split(string(data), "\n")[:22]
	require.Equal(t, "1 ; <-1,-1,8,1,0,-4>", lines[6])
	lines[0] = "20"
	lines = append(lines[:6], lines[7:]...)

	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	cmd.SetIn(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, runClassify(cmd, nil))
	assert.Equal(t, "0/1 patches passed checks\n", out.String())
}

func TestClassifyMalformed(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	cmd.SetIn(strings.NewReader("2\n0 ; <1,0,0,0,1,0>\nnonsense\n"))
	err := runClassify(cmd, nil)
	assert.ErrorIs(t, err, patchio.ErrMalformed)
}

func TestNeighboursList(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	neighboursList = true
	t.Cleanup(func() { neighboursList = false })

	require.NoError(t, runNeighbours(cmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 54)
	assert.Equal(t, "<1,0,2,0,1,-4>", lines[0])
}

func TestNeighboursPages(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	dir := t.TempDir()
	neighboursOut = filepath.Join(dir, "n")
	t.Cleanup(func() { neighboursOut = "neighbours" })

	require.NoError(t, runNeighbours(cmd, nil))
	assert.Equal(t, "54 neighbours on 5 pages\n", out.String())

	files, err := filepath.Glob(filepath.Join(dir, "n-*.svg"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "n-01.svg"),
		filepath.Join(dir, "n-02.svg"),
		filepath.Join(dir, "n-03.svg"),
		filepath.Join(dir, "n-04.svg"),
		filepath.Join(dir, "n-05.svg"),
	}, files)

	last, err := os.ReadFile(files[4])
	require.NoError(t, err)
	assert.Equal(t, 2*6, strings.Count(string(last), "<path "))
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	renderOut = filepath.Join(dir, "p")
	t.Cleanup(func() {
		renderOut = "patch"
		renderPNG = false
	})

	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	require.NoError(t, runRender(cmd, []string{"testdata/surroundable.txt"}))
	assert.Equal(t, "20 patches rendered\n", out.String())

	svg, err := os.ReadFile(filepath.Join(dir, "p-001.svg"))
	require.NoError(t, err)
	assert.Equal(t, 21, strings.Count(string(svg), "<path "))

	renderPNG = true
	out.Reset()
	require.NoError(t, runRender(cmd, []string{"testdata/surroundable.txt"}))
	f, err := os.Open(filepath.Join(dir, "p-020.png"))
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestRenderMissingFile(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	assert.Error(t, runRender(cmd, []string{filepath.Join(t.TempDir(), "absent.txt")}))
}

func TestSurroundLimit(t *testing.T) {
	dir := t.TempDir()
	surroundOut = filepath.Join(dir, "patches.txt")
	surroundMetrics = filepath.Join(dir, "hatsurround.prom")
	surroundLimit = 2
	t.Cleanup(func() {
		surroundOut, surroundMetrics, surroundLimit = "", "", 0
	})

	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	require.NoError(t, runSurround(cmd, nil))
	assert.Contains(t, out.String(), "2-patches examined, 2 surroundable")

	got, err := os.ReadFile(surroundOut)
	require.NoError(t, err)
	want, err := patchio.ReadPatches(bytes.NewReader(readTestdata(t)))
	require.NoError(t, err)
	gotPatches, err := patchio.ReadPatches(bytes.NewReader(got))
	require.NoError(t, err)
	if diff := cmp.Diff(want[:2], gotPatches); diff != "" {
		t.Errorf("patches mismatch (-want +got):\n%s", diff)
	}

	prom, err := os.ReadFile(surroundMetrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "hatsurround_survey_patches_surroundable 2")
}

func TestRootCommandConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hatsurround.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  allow_holes: true\nlogging:\n  level: error\n"), 0o644))
	t.Cleanup(func() {
		neighboursList = false
		cfgPath = ""
		cfg = config.Default()
		logger = zap.NewNop()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "neighbours", "--list"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 58)
}

func TestRootCommandBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hatsurround.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  columns: 0\n"), 0o644))
	t.Cleanup(func() {
		cfgPath = ""
		cfg = config.Default()
		logger = zap.NewNop()
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", path, "neighbours", "--list"})
	assert.ErrorIs(t, rootCmd.Execute(), config.ErrInvalid)
}

func TestSurroundRejectsSmallUniverse(t *testing.T) {
	dir := t.TempDir()
	surroundOut = filepath.Join(dir, "patches.txt")
	t.Cleanup(func() { surroundOut, surroundLevels = "", 0 })

	for _, levels := range []int{1, 2} {
		surroundLevels = levels
		var out bytes.Buffer
		cmd := newTestCmd(t, &out)
		err := runSurround(cmd, nil)
		assert.ErrorIs(t, err, config.ErrInvalid, "levels %d", levels)
		assert.Empty(t, out.String())
	}
	_, err := os.Stat(surroundOut)
	assert.True(t, os.IsNotExist(err), "no output is created for a rejected universe")
}

func TestSurroundReportsWriteError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	surroundOut = "/dev/full"
	surroundLimit = 1
	t.Cleanup(func() { surroundOut, surroundLimit = "", 0 })

	var out bytes.Buffer
	cmd := newTestCmd(t, &out)
	err := runSurround(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write patches")
}
