/*
Copyright © 2018 the GWpath authors.
This file is part of GWpath.

GWpath is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GWpath is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GWpath.  If not, see <http://www.gnu.org/licenses/>.
*/

package gwpath

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Package is an input-deck component registered with a Model.
type Package interface {
	// Kind is the tag the package registers under, e.g. "MPBAS" or "LPF".
	Kind() string
	// Unit is the file unit number MODPATH associates with the package.
	Unit() int
}

// FileWriter is implemented by packages that serialize themselves to their
// own input file during a whole-model write pass.
type FileWriter interface {
	Package
	FileName() string
	WriteFile() error
}

// firstAutoUnit is the lowest unit number handed out by NextUnit; units
// below it are reserved for packages with conventional fixed assignments.
const firstAutoUnit = 101

// nameFileExt is the extension of the MODPATH name file.
const nameFileExt = "mpnam"

// Model is the host context for a MODPATH input deck: a base name, a working
// directory, the grid discretization, and a registry of packages keyed by
// kind tag.
type Model struct {
	Name string
	Dir  string
	Dis  Dis

	packages []Package // registration order is preserved for the write pass
	nextUnit int
}

// NewModel returns a model named name whose input files are written under
// dir, on the grid described by dis.
func NewModel(name, dir string, dis Dis) *Model {
	return &Model{Name: name, Dir: dir, Dis: dis, nextUnit: firstAutoUnit}
}

// AddPackage registers p with the model, replacing any previously registered
// package of the same kind.
func (m *Model) AddPackage(p Package) {
	for i, q := range m.packages {
		if q.Kind() == p.Kind() {
			m.packages[i] = p
			return
		}
	}
	m.packages = append(m.packages, p)
}

// GetPackage returns the registered package with the given kind tag, or nil
// if there is none.
func (m *Model) GetPackage(kind string) Package {
	for _, p := range m.packages {
		if p.Kind() == kind {
			return p
		}
	}
	return nil
}

// NextUnit allocates a file unit number for a package that doesn't pin one.
func (m *Model) NextUnit() int {
	u := m.nextUnit
	m.nextUnit++
	return u
}

// FilePath returns the path of the model input file with the given
// extension: <dir>/<name>.<ext>.
func (m *Model) FilePath(ext string) string {
	return filepath.Join(m.Dir, m.Name+"."+ext)
}

// WriteInput performs a whole-model write pass: every registered package
// that writes its own file does so, and then the name file is written
// listing them. The first failing package aborts the pass.
func (m *Model) WriteInput() error {
	for _, p := range m.packages {
		fw, ok := p.(FileWriter)
		if !ok {
			continue
		}
		if err := fw.WriteFile(); err != nil {
			return err
		}
	}
	return m.writeNameFile()
}

// writeNameFile writes <name>.mpnam with one entry per file-backed package.
func (m *Model) writeNameFile() error {
	var buf bytes.Buffer
	for _, p := range m.packages {
		fw, ok := p.(FileWriter)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%-6s %4d  %s\n", fw.Kind(), fw.Unit(), filepath.Base(fw.FileName()))
	}
	path := m.FilePath(nameFileExt)
	if err := renameio.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("gwpath: writing name file %s: %v", path, err)
	}
	return nil
}
