package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segaug/imageio"
	"github.com/katalvlaran/segaug/internal/logging"
	"github.com/katalvlaran/segaug/tensor"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// writePair saves a 16×20 RGB image and a rectangular mask under dir.
func writePair(t *testing.T, dir string) (img, lbl string) {
	t.Helper()
	im, err := tensor.New[uint8](16, 20, 3)
	require.NoError(t, err)
	for i := range im.Data() {
		im.Data()[i] = uint8(i)
	}
	m, err := tensor.New[uint8](16, 20, 1)
	require.NoError(t, err)
	for r := 4; r <= 12; r++ {
		for c := 5; c <= 15; c++ {
			require.NoError(t, m.Set(r, c, 0, 255))
		}
	}
	img, lbl = filepath.Join(dir, "s.png"), filepath.Join(dir, "s_mask.png")
	require.NoError(t, imageio.Save(img, im))
	require.NoError(t, imageio.Save(lbl, m))

	return img, lbl
}

func TestAffineCommand_IdentityByDefault(t *testing.T) {
	dir := t.TempDir()
	img, lbl := writePair(t, dir)
	outImg, outLbl := filepath.Join(dir, "o.png"), filepath.Join(dir, "o_mask.png")

	_, err := run(t, "affine", "--image", img, "--label", lbl, "--out-image", outImg, "--out-label", outLbl)
	require.NoError(t, err)

	want, err := imageio.Load(lbl)
	require.NoError(t, err)
	got, err := imageio.Load(outLbl)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

func TestAffineCommand_SixteenBitLabel(t *testing.T) {
	dir := t.TempDir()
	img, _ := writePair(t, dir)
	m, err := tensor.New[uint16](16, 20, 1)
	require.NoError(t, err)
	for i := range m.Data() {
		m.Data()[i] = uint16(i % 5) // class IDs 0..4
	}
	lbl := filepath.Join(dir, "s_classes.png")
	require.NoError(t, imageio.Save(lbl, m))
	outImg, outLbl := filepath.Join(dir, "o.png"), filepath.Join(dir, "o_classes.png")

	_, err = run(t, "affine", "--image", img, "--label", lbl, "--out-image", outImg, "--out-label", outLbl)
	require.NoError(t, err)

	got, err := imageio.Load16(outLbl)
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

func TestAffineCommand_Seeded(t *testing.T) {
	dir := t.TempDir()
	img, lbl := writePair(t, dir)
	args := func(out string) []string {
		return []string{"affine", "--seed", "3", "--rotation", "0.4", "--flip-lr", "0.5",
			"--image", img, "--label", lbl,
			"--out-image", filepath.Join(dir, out+".png"), "--out-label", filepath.Join(dir, out+"_mask.png")}
	}
	_, err := run(t, args("a")...)
	require.NoError(t, err)
	_, err = run(t, args("b")...)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(dir, "a_mask.png"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "b_mask.png"))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestAffineCommand_InvalidRange(t *testing.T) {
	dir := t.TempDir()
	img, lbl := writePair(t, dir)
	_, err := run(t, "affine", "--zoom-min", "2", "--zoom-max", "1",
		"--image", img, "--label", lbl, "--out-image", filepath.Join(dir, "o.png"), "--out-label", filepath.Join(dir, "l.png"))
	require.Error(t, err)
}

func TestElasticCommand(t *testing.T) {
	dir := t.TempDir()
	img, lbl := writePair(t, dir)
	outLbl := filepath.Join(dir, "o_mask.tiff")

	_, err := run(t, "elastic", "--sigma", "2", "--intensity", "3",
		"--image", img, "--label", lbl, "--out-image", filepath.Join(dir, "o.bmp"), "--out-label", outLbl)
	require.NoError(t, err)
	got, err := imageio.Load(outLbl)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{16, 20, 1}, got.Shape())
}

func TestBoxCommand(t *testing.T) {
	_, lbl := writePair(t, t.TempDir())

	out, err := run(t, "box", "--label", lbl)
	require.NoError(t, err)
	var ymin, xmin, ymax, xmax float64
	_, err = fmt.Sscanf(strings.TrimSpace(out), "[%g %g %g %g]", &ymin, &xmin, &ymax, &xmax)
	require.NoError(t, err)
	require.InDelta(t, 4.0/15, ymin, 1e-12)
	require.InDelta(t, 5.0/19, xmin, 1e-12)
	require.InDelta(t, 12.0/15, ymax, 1e-12)
	require.InDelta(t, 15.0/19, xmax, 1e-12)

	out, err = run(t, "box", "--label", lbl, "--margin", "0.5")
	require.NoError(t, err)
	require.Equal(t, "[0 0 1 1]", strings.TrimSpace(out))

	out, err = run(t, "box", "--label", lbl, "--components")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)
}

func TestBatchCommand(t *testing.T) {
	root := t.TempDir()
	imgDir, lblDir, out := filepath.Join(root, "img"), filepath.Join(root, "lbl"), filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(imgDir, 0o755))
	require.NoError(t, os.MkdirAll(lblDir, 0o755))
	img, lbl := writePair(t, root)
	require.NoError(t, os.Rename(img, filepath.Join(imgDir, "s.png")))
	require.NoError(t, os.Rename(lbl, filepath.Join(lblDir, "s.png")))

	stdout, err := run(t, "batch", "--images", imgDir, "--labels", lblDir, "--out", out, "--copies", "3", "--mode", "elastic")
	require.NoError(t, err)
	require.Equal(t, "1 samples, 3 written, 0 redraws", strings.TrimSpace(stdout))
	for _, name := range []string{"s_0.png", "s_1.png", "s_2.png"} {
		require.FileExists(t, filepath.Join(out, "labels", name))
	}

	_, err = run(t, "batch", "--images", imgDir, "--labels", lblDir, "--out", out, "--mode", "perspective")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "segaug.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("schema_version: v9\n"), 0o600))
	_, lbl := writePair(t, dir)

	_, err := run(t, "--config", cfgPath, "box", "--label", lbl)
	require.Error(t, err)
}

func TestLogLevelFlag(t *testing.T) {
	dir := t.TempDir()
	_, lbl := writePair(t, dir)

	_, err := run(t, "--log-level", "loud", "box", "--label", lbl)
	require.ErrorIs(t, err, logging.ErrUnknownLevel)

	stdout, err := run(t, "--log-level", "debug", "--log-json", "box", "--label", lbl)
	require.NoError(t, err)
	require.NotEmpty(t, stdout)
}
