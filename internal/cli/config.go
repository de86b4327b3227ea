package cli

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/pipeline"
	"github.com/matzehuels/paperbox/pkg/render/styles"
)

// fileConfig mirrors the keys accepted in a --config file. Keys absent from
// the file keep the value they had before decoding.
type fileConfig struct {
	Margin      float64    `toml:"margin"`
	TabFraction float64    `toml:"tab_fraction"`
	TabCreases  bool       `toml:"tab_creases"`
	Paper       string     `toml:"paper"`
	Format      string     `toml:"format"`
	Output      string     `toml:"output"`
	PNGScale    float64    `toml:"png_scale"`
	Stroke      styles.Set `toml:"stroke"`
}

// loadConfig overlays the TOML file at path onto opts.
//
// Example file:
//
//	margin = 15
//	paper = "a4"
//
//	[stroke.fold]
//	dash = [2, 2]
func loadConfig(path string, opts *pipeline.Options) error {
	fc := fileConfig{
		Margin:      opts.Margin,
		TabFraction: opts.TabFraction,
		TabCreases:  opts.TabCreases,
		Paper:       opts.Paper,
		Format:      opts.Format,
		Output:      opts.Output,
		PNGScale:    opts.PNGScale,
		Stroke:      opts.Styles,
	}

	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return errs.New(errs.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	opts.Margin = fc.Margin
	opts.TabFraction = fc.TabFraction
	opts.TabCreases = fc.TabCreases
	opts.Paper = fc.Paper
	opts.Format = fc.Format
	opts.Output = fc.Output
	opts.PNGScale = fc.PNGScale
	opts.Styles = fc.Stroke
	return nil
}
