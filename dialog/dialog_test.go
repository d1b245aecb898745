package dialog

import (
	"errors"
	"testing"

	"github.com/ncruces/zenity"
)

func stub(path string, err error, calls *int) selectFunc {
	return func(options ...zenity.Option) (string, error) {
		*calls++
		return path, err
	}
}

func TestDialogResults(t *testing.T) {
	failure := errors.New("no display")
	table := []struct {
		name     string
		path     string
		err      error
		expected string
		want     error
	}{
		{"selected", "/tmp/a.sfx", nil, "/tmp/a.sfx", nil},
		{"cancelled", "", zenity.ErrCanceled, "", ErrCancelled},
		{"empty", "", nil, "", ErrCancelled},
		{"failure", "", failure, "", failure},
	}

	for _, entry := range table {
		var calls int
		d := New("sfxr", "*.sfx")
		d.selectFile = stub(entry.path, entry.err, &calls)
		d.selectFileSave = stub(entry.path, entry.err, &calls)

		for _, show := range []func() (string, error){d.OpenFile, d.SaveFile} {
			path, err := show()
			if path != entry.expected {
				t.Fatalf("%s: got path %q, expected %q", entry.name, path, entry.expected)
			}
			if !errors.Is(err, entry.want) {
				t.Fatalf("%s: got error %v, expected %v", entry.name, err, entry.want)
			}
		}
		if calls != 2 {
			t.Fatalf("%s: dialog shown %d times, expected 2", entry.name, calls)
		}
	}
}

func TestDialogOptions(t *testing.T) {
	d := New("sfxr", "*.sfx", "*.yaml")
	if n := len(d.options()); n != 2 {
		t.Fatalf("options with filters: got %d, expected 2", n)
	}
	if n := len(d.options(zenity.ConfirmOverwrite())); n != 3 {
		t.Fatalf("options with extra: got %d, expected 3", n)
	}
	if n := len(New("plain").options()); n != 1 {
		t.Fatalf("options without filters: got %d, expected 1", n)
	}
}
