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
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDis(t *testing.T) {
	if _, err := NewDis(3, 4, 5, 1); err != nil {
		t.Fatal(err)
	}
	bad := [][4]int{{0, 4, 5, 1}, {3, 0, 5, 1}, {3, 4, -1, 1}, {3, 4, 5, 0}}
	for _, dims := range bad {
		if _, err := NewDis(dims[0], dims[1], dims[2], dims[3]); err == nil {
			t.Errorf("dims %v: expected an error", dims)
		}
	}
}

func TestPackageRegistry(t *testing.T) {
	m, cleanup := newTestModel(t, 2, 2, 2)
	defer cleanup()
	if m.GetPackage(KindLPF) != nil {
		t.Fatal("empty registry returned a package")
	}
	p1, err := NewLPF(m, []int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.GetPackage(KindLPF); got != Package(p1) {
		t.Error("registered package not returned")
	}
	// Adding a package of the same kind replaces the first.
	p2, err := NewLPF(m, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.GetPackage(KindLPF); got != Package(p2) {
		t.Error("replacement package not returned")
	}
}

func TestNextUnit(t *testing.T) {
	m, cleanup := newTestModel(t, 2, 2, 2)
	defer cleanup()
	u1 := m.NextUnit()
	u2 := m.NextUnit()
	if u1 < firstAutoUnit || u2 != u1+1 {
		t.Errorf("got units %d, %d", u1, u2)
	}
}

func TestFilePath(t *testing.T) {
	m := NewModel("ex1", "work", Dis{Nlay: 1, Nrow: 1, Ncol: 1, Nper: 1})
	if got, want := m.FilePath("mpbas"), filepath.Join("work", "ex1.mpbas"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWriteInput(t *testing.T) {
	m, cleanup := newTestModel(t, 2, 3, 3)
	defer cleanup()
	if _, err := NewLPF(m, []int{0}); err != nil {
		t.Fatal(err)
	}
	b, err := NewBas(m, BasConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.WriteInput(); err != nil {
		t.Fatal(err)
	}

	if _, err := ioutil.ReadFile(b.FileName()); err != nil {
		t.Errorf("basic package file was not written: %v", err)
	}
	name, err := ioutil.ReadFile(m.FilePath("mpnam"))
	if err != nil {
		t.Fatalf("name file was not written: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(name), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d name file entries, want 1: %q", len(lines), name)
	}
	if got, want := lines[0], "MPBAS    86  test.mpbas"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteInputMissingFlowPackage(t *testing.T) {
	m, cleanup := newTestModel(t, 2, 2, 2)
	defer cleanup()
	if _, err := NewBas(m, BasConfig{}); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteInput(); err == nil {
		t.Fatal("expected the write pass to fail")
	}
	// The aborted pass must not leave a name file behind.
	if _, err := ioutil.ReadFile(m.FilePath("mpnam")); err == nil {
		t.Error("name file written despite a failed package")
	}
}
