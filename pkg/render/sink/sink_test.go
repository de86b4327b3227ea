package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/layout"
	"github.com/matzehuels/paperbox/pkg/render/styles"
)

func testLayout(t *testing.T) layout.Layout {
	t.Helper()
	l, err := layout.Generate(layout.Dimensions{Width: 100, Height: 50, Depth: 30}, layout.DefaultConfig())
	require.NoError(t, err)
	return l
}

func TestRenderSVG(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l))

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 510.236 368.504"`), svg[:120])
	assert.Equal(t, l.Count(layout.Cut), strings.Count(svg, `<line class="cut"`))
	assert.Equal(t, l.Count(layout.Fold), strings.Count(svg, `<line class="fold"`))
	assert.Equal(t, l.Count(layout.Fold), strings.Count(svg, `stroke-dasharray="4 3"`))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestRenderSVGCustomStyles(t *testing.T) {
	l := testLayout(t)
	set := styles.Default()
	set.Cut = styles.Stroke{Width: 2, Gray: 1, Dash: []float64{1, 1}}

	svg := string(RenderSVG(l, WithStyles(set)))
	assert.Equal(t, l.Count(layout.Cut), strings.Count(svg, `stroke="#ffffff" stroke-width="2" stroke-linecap="round" stroke-dasharray="1 1"`))
}

func TestRenderSVGDeterministic(t *testing.T) {
	l := testLayout(t)
	assert.Equal(t, RenderSVG(l), RenderSVG(l))
}

func TestRenderPNG(t *testing.T) {
	l := testLayout(t)
	data, err := RenderPNG(l, WithScale(1))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 511, img.Bounds().Dx())
	assert.Equal(t, 369, img.Bounds().Dy())

	again, err := RenderPNG(l, WithScale(1))
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestRenderPNGRejectsBadScale(t *testing.T) {
	l := testLayout(t)

	_, err := RenderPNG(l, WithScale(0))
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig), "got %v", err)

	_, err = RenderPNG(l, WithScale(1000))
	assert.True(t, errs.Is(err, errs.ErrCodeLayoutTooLarge), "got %v", err)
}

func TestRenderJSON(t *testing.T) {
	l := testLayout(t)
	data, err := RenderJSON(l)
	require.NoError(t, err)

	var out jsonOutput
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "pt", out.Unit)
	assert.Equal(t, l.PageWidth, out.Width)
	assert.Equal(t, l.PageHeight, out.Height)
	assert.Equal(t, 100.0, out.Dimensions.Width)
	assert.Equal(t, 30.0, out.Dimensions.Depth)
	assert.Equal(t, map[string]int{"cut": 20, "fold": 4}, out.Counts)
	require.Len(t, out.Segments, len(l.Segments))
	for i, s := range l.Segments {
		assert.Equal(t, s.Kind.String(), out.Segments[i].Kind)
		assert.Equal(t, s.From.X, out.Segments[i].X1)
		assert.Equal(t, s.To.Y, out.Segments[i].Y2)
	}
	assert.Equal(t, []float64{4, 3}, out.Styles.Fold.Dash)
}

func TestRender(t *testing.T) {
	l := testLayout(t)

	for _, f := range []Format{FormatSVG, FormatPNG, FormatJSON} {
		data, err := Render(f, l)
		require.NoError(t, err, "format %s", f)
		assert.NotEmpty(t, data, "format %s", f)
	}

	_, err := Render(FormatPDF, l)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))

	_, err = Render("gif", l)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))

	_, err = Render(FormatSVG, layout.Layout{})
	assert.True(t, errs.Is(err, errs.ErrCodeInternal))

	bad := styles.Default()
	bad.Cut.Width = 0
	_, err = Render(FormatSVG, l, WithStyles(bad))
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig))
}

func TestWritePDF(t *testing.T) {
	l := testLayout(t)
	path := filepath.Join(t.TempDir(), "box.pdf")

	require.NoError(t, Write(path, FormatPDF, l))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "missing PDF header")
	assert.Contains(t, string(data), "%%EOF")
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestWriteAllFormats(t *testing.T) {
	l := testLayout(t)
	dir := t.TempDir()

	for f := range ValidFormats {
		path := filepath.Join(dir, "box."+string(f))
		require.NoError(t, Write(path, f, l), "format %s", f)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "format %s", f)
	}
	assertNoTempFiles(t, dir)
}

func TestWriteSameLayoutTwice(t *testing.T) {
	l := testLayout(t)
	dir := t.TempDir()

	for _, f := range []Format{FormatPDF, FormatSVG, FormatPNG, FormatJSON} {
		a := filepath.Join(dir, "a."+string(f))
		b := filepath.Join(dir, "b."+string(f))
		require.NoError(t, Write(a, f, l))
		require.NoError(t, Write(b, f, l))

		da, err := os.ReadFile(a)
		require.NoError(t, err)
		db, err := os.ReadFile(b)
		require.NoError(t, err)
		assert.Equal(t, da, db, "format %s", f)
	}
}

func TestWriteOverwrites(t *testing.T) {
	l := testLayout(t)
	path := filepath.Join(t.TempDir(), "box.svg")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, Write(path, FormatSVG, l))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, RenderSVG(l), data)
}

func TestWriteMissingDirectory(t *testing.T) {
	l := testLayout(t)
	path := filepath.Join(t.TempDir(), "missing", "box.pdf")

	err := Write(path, FormatPDF, l)
	assert.True(t, errs.Is(err, errs.ErrCodeOutputWrite), "got %v", err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFailureKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.svg")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	err := Write(path, FormatSVG, layout.Layout{})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{"SVG", FormatSVG, false},
		{" png ", FormatPNG, false},
		{"json", FormatJSON, false},
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat), "ParseFormat(%q)", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"box.pdf", FormatPDF, true},
		{"out/box.SVG", FormatSVG, true},
		{"box.png", FormatPNG, true},
		{"box.json", FormatJSON, true},
		{"box", "", false},
		{"box.txt", "", false},
	}

	for _, tt := range tests {
		got, ok := FormatFromPath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.path)
		}
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".paperbox-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
