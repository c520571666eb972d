// Package testdata locates the field definition file for tests and for the
// catalogue generator.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// FieldsReader returns a reader for the field definition file.
func FieldsReader() (io.Reader, error) {
	data, err := os.ReadFile(FieldsPath())
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// FieldsPath returns the path of the field definition file, which lives
// next to the catalogue it is compiled into.
func FieldsPath() string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "..", "..", "field", "fields.txt")
}
