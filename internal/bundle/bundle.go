// Package bundle writes diagnostic archives: an ordered plan of
// on-disk files and generated payloads flattened into one zip.
package bundle

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Plan describes one archive: where it goes and what it holds.
type Plan struct {
	OutputPath string
	Items      []Item
}

// Item is a single archive entry.
type Item interface {
	addTo(zw *zip.Writer) error
}

// FileItem streams an on-disk file into the archive under Name. A
// missing source is skipped rather than failing the bundle; archives
// collect whatever diagnostics exist.
type FileItem struct {
	Source string
	Name   string
}

func (it FileItem) addTo(zw *zip.Writer) error {
	f, err := os.Open(it.Source)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(entryName(it.Name))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}

// ByteItem writes a generated payload under Name.
type ByteItem struct {
	Name string
	Data []byte
}

func (it ByteItem) addTo(zw *zip.Writer) error {
	w, err := zw.Create(entryName(it.Name))
	if err != nil {
		return err
	}
	_, err = w.Write(it.Data)
	return err
}

// Archive entries always use forward slashes.
func entryName(name string) string {
	return strings.ReplaceAll(name, string(os.PathSeparator), "/")
}

// Write creates the archive, adding items in plan order. The parent
// directory is created if needed. Any write error aborts the bundle.
func Write(plan Plan) error {
	if err := os.MkdirAll(filepath.Dir(plan.OutputPath), 0755); err != nil {
		return err
	}

	f, err := os.Create(plan.OutputPath)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(f)
	for _, item := range plan.Items {
		if err := item.addTo(zw); err != nil {
			zw.Close()
			f.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SanitizeComponent maps a free-form identifier to a path-safe archive
// component. Anything outside [A-Za-z0-9_-] becomes an underscore; an
// empty input becomes "_".
func SanitizeComponent(s string) string {
	if s == "" {
		return "_"
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
