// Package charts builds the explorer's visualizations on go-chart and
// manages the "current chart" handle: rendered on demand, written to
// disk in the format implied by the target file's extension.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Chart is a deferred rendering: a title plus a function that draws the
// figure against a renderer provider. A session holds at most one.
type Chart struct {
	Title  string
	render func(chart.RendererProvider, io.Writer) error
}

// New wraps a render function into a Chart handle.
func New(title string, render func(chart.RendererProvider, io.Writer) error) *Chart {
	return &Chart{Title: title, render: render}
}

// WritePNG renders the chart as PNG into w.
func (c *Chart) WritePNG(w io.Writer) error {
	return c.render(chart.PNG, w)
}

// Save writes the chart to path, creating parent directories as needed.
// The format comes from the extension (.png or .svg). On failure no
// partial file is left behind.
func (c *Chart) Save(path string) error {
	provider, err := providerFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.render(provider, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func providerFor(path string) (chart.RendererProvider, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return chart.PNG, nil
	case ".svg":
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("unsupported chart format %q (use .png or .svg)", filepath.Ext(path))
	}
}
