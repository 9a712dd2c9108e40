// Package state persists the materialized interface map between passes.
//
// Two backends are available: a YAML file, readable by templating tools that
// need to know which interface serves which network, and an SQLite database.
package state

import (
	"fmt"

	"golang-netreconcile/internal/port"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// New opens the store for backend at path.
func New(backend, path string, fm port.FileManager) (port.StateStore, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path, fm), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	}
	return nil, fmt.Errorf("unknown state backend %q", backend)
}
