package sink

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"github.com/matzehuels/paperbox/pkg/layout"
	"github.com/matzehuels/paperbox/pkg/render/styles"
)

// readPage returns the media box and decoded content stream of the first
// page of the PDF at path.
func readPage(t *testing.T, path string) (*pdf.Rectangle, string) {
	t.Helper()
	r, err := pdf.Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	dict, err := pagetree.GetPage(r, 0)
	require.NoError(t, err)

	box, err := pdf.GetRectangle(r, dict["MediaBox"])
	require.NoError(t, err)
	require.NotNil(t, box)

	stm, err := pdf.GetStream(r, dict["Contents"])
	require.NoError(t, err)
	require.NotNil(t, stm)
	body, err := pdf.DecodeStream(r, stm, 0)
	require.NoError(t, err)
	content, err := io.ReadAll(body)
	require.NoError(t, err)

	return box, string(content)
}

// strokeCounts walks a content stream and counts stroke operators drawn
// with and without a dash pattern in effect.
func strokeCounts(content string) (solid, dashed int) {
	inDash := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasSuffix(line, " d"):
			inDash = !strings.HasPrefix(line, "[]")
		case line == "S" && inDash:
			dashed++
		case line == "S":
			solid++
		}
	}
	return solid, dashed
}

func TestPDFPageContent(t *testing.T) {
	tests := []struct {
		name       string
		tabCreases bool
		wantFolds  int
	}{
		{"basic net", false, 4},
		{"with tab creases", true, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := layout.DefaultConfig()
			cfg.TabCreases = tt.tabCreases
			l, err := layout.Generate(layout.Dimensions{Width: 100, Height: 50, Depth: 30}, cfg)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "box.pdf")
			require.NoError(t, Write(path, FormatPDF, l))

			box, content := readPage(t, path)
			assert.InDelta(t, 0, box.LLx, 1e-6)
			assert.InDelta(t, 0, box.LLy, 1e-6)
			assert.InDelta(t, l.PageWidth, box.URx, 0.01)
			assert.InDelta(t, l.PageHeight, box.URy, 0.01)

			solid, dashed := strokeCounts(content)
			assert.Equal(t, 20, solid, "cuts are stroked solid")
			assert.Equal(t, tt.wantFolds, dashed, "folds are stroked dashed")
			assert.Equal(t, len(l.Segments), solid+dashed)
			assert.Contains(t, content, "[4 3] 0 d")
		})
	}
}

func TestPDFCustomDash(t *testing.T) {
	l := testLayout(t)
	set := styles.Default()
	set.Fold.Dash = []float64{2, 1}

	path := filepath.Join(t.TempDir(), "box.pdf")
	require.NoError(t, Write(path, FormatPDF, l, WithStyles(set)))

	_, content := readPage(t, path)
	assert.Contains(t, content, "[2 1] 0 d")
	assert.NotContains(t, content, "[4 3] 0 d")

	solid, dashed := strokeCounts(content)
	assert.Equal(t, l.Count(layout.Cut), solid)
	assert.Equal(t, l.Count(layout.Fold), dashed)
}
