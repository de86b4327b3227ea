package sink

import (
	"os"
	"path/filepath"

	errs "github.com/matzehuels/paperbox/pkg/errors"
	"github.com/matzehuels/paperbox/pkg/layout"
)

// Render returns the bytes of l in a byte-oriented format (svg, png, json).
// PDF is written straight to disk by [Write]; Render rejects it.
func Render(format Format, l layout.Layout, opts ...Option) ([]byte, error) {
	if err := checkLayout(l); err != nil {
		return nil, err
	}
	r := newRenderer(opts...)
	if err := r.styles.Validate(); err != nil {
		return nil, err
	}

	switch format {
	case FormatSVG:
		return RenderSVG(l, opts...), nil
	case FormatPNG:
		return RenderPNG(l, opts...)
	case FormatJSON:
		return RenderJSON(l, opts...)
	case FormatPDF:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "pdf cannot be rendered to memory, use Write")
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

// Write renders l in format and stores it at path, replacing any existing
// file. The destination is only touched once rendering has succeeded.
func Write(path string, format Format, l layout.Layout, opts ...Option) error {
	if err := errs.ValidateOutputPath(path); err != nil {
		return err
	}
	if format == FormatPDF {
		if err := checkLayout(l); err != nil {
			return err
		}
		r := newRenderer(opts...)
		if err := r.styles.Validate(); err != nil {
			return err
		}
		return atomicWrite(path, func(tmp string) error {
			return writePDF(tmp, l, r)
		})
	}

	data, err := Render(format, l, opts...)
	if err != nil {
		return err
	}
	return atomicWrite(path, func(tmp string) error {
		return os.WriteFile(tmp, data, 0o644)
	})
}

func checkLayout(l layout.Layout) error {
	if len(l.Segments) == 0 {
		return errs.New(errs.ErrCodeInternal, "layout has no segments")
	}
	if !(l.PageWidth > 0 && l.PageHeight > 0) {
		return errs.New(errs.ErrCodeInternal, "layout has empty page %gx%g", l.PageWidth, l.PageHeight)
	}
	return nil
}

// atomicWrite calls fill with a temporary path in the destination directory
// and renames the result over path on success.
func atomicWrite(path string, fill func(tmp string) error) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".paperbox-*"+filepath.Ext(path))
	if err != nil {
		return errs.Wrap(errs.ErrCodeOutputWrite, err, "create %s", path)
	}
	tmp := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errs.Wrap(errs.ErrCodeOutputWrite, err, "create %s", path)
	}

	if err := fill(tmp); err != nil {
		os.Remove(tmp)
		return errs.Wrap(errs.ErrCodeOutputWrite, err, "write %s", path)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return errs.Wrap(errs.ErrCodeOutputWrite, err, "write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errs.Wrap(errs.ErrCodeOutputWrite, err, "write %s", path)
	}
	return nil
}
