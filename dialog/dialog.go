// Package dialog shows the platform's native file pickers.
package dialog

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

var ErrCancelled = errors.New("dialog cancelled")

type selectFunc func(options ...zenity.Option) (string, error)

type Dialog struct {
	title          string
	filters        zenity.FileFilters
	selectFile     selectFunc
	selectFileSave selectFunc
}

// New creates a dialog pair titled title. Each pattern (e.g. "*.sfx")
// becomes a file filter.
func New(title string, patterns ...string) *Dialog {
	d := &Dialog{
		title:          title,
		selectFile:     zenity.SelectFile,
		selectFileSave: zenity.SelectFileSave,
	}
	if len(patterns) > 0 {
		d.filters = zenity.FileFilters{
			{Name: title + " files", Patterns: patterns, CaseFold: true},
			{Name: "All files", Patterns: []string{"*"}},
		}
	}
	return d
}

func (d *Dialog) options(extra ...zenity.Option) []zenity.Option {
	opts := []zenity.Option{zenity.Title(d.title)}
	if len(d.filters) > 0 {
		opts = append(opts, d.filters)
	}
	return append(opts, extra...)
}

func (d *Dialog) OpenFile() (string, error) {
	path, err := d.selectFile(d.options()...)
	return result("open", path, err)
}

func (d *Dialog) SaveFile() (string, error) {
	path, err := d.selectFileSave(d.options(zenity.ConfirmOverwrite())...)
	return result("save", path, err)
}

func result(kind, path string, err error) (string, error) {
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("%s dialog: %w", kind, err)
	}
	if path == "" {
		return "", ErrCancelled
	}
	return path, nil
}
