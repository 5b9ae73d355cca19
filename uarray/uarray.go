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

// Package uarray builds and serializes the layered utility arrays that make
// up MODFLOW- and MODPATH-style model input files. A grid-shaped array is
// tagged with a human-readable name and a file unit number and renders itself
// as one layer section per model layer: a control record (CONSTANT for a
// uniform layer, INTERNAL otherwise) followed by fixed-format data records.
package uarray

import (
	"fmt"
	"strings"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Default output descriptors for full grid arrays.
var (
	DefaultIntFormat   = Format{PerLine: 20, Conv: 'I', Width: 4}
	DefaultFloatFormat = Format{PerLine: 10, Conv: 'F', Width: 12, Prec: 6}
)

// defaultIprn is the print flag written on INTERNAL control records.
const defaultIprn = -1

// FloatSpec is a constructor argument that is either a uniform value to be
// broadcast over the grid or an explicit dense array. The zero value is
// "unset" and resolves the same as Uniform of the caller's default.
type FloatSpec struct {
	set     bool
	uniform float64
	arr     *sparse.DenseArray
}

// UniformFloat returns a spec that broadcasts v over the full grid shape.
func UniformFloat(v float64) FloatSpec {
	return FloatSpec{set: true, uniform: v}
}

// FloatValues returns a spec holding an explicit array, which must have
// shape (nlay, nrow, ncol) when resolved.
func FloatValues(a *sparse.DenseArray) FloatSpec {
	return FloatSpec{set: true, arr: a}
}

// IsSet reports whether the spec was built by a constructor rather than
// being the zero value.
func (s FloatSpec) IsSet() bool { return s.set }

func (s FloatSpec) resolve(nlay, nrow, ncol int) (*sparse.DenseArray, error) {
	if s.arr == nil {
		a := sparse.ZerosDense(nlay, nrow, ncol)
		for i := range a.Elements {
			a.Elements[i] = s.uniform
		}
		return a, nil
	}
	if len(s.arr.Shape) != 3 || s.arr.Shape[0] != nlay ||
		s.arr.Shape[1] != nrow || s.arr.Shape[2] != ncol {
		return nil, fmt.Errorf("uarray: array shape %v does not match grid shape [%d %d %d]",
			s.arr.Shape, nlay, nrow, ncol)
	}
	return s.arr.Copy(), nil
}

// IntSpec is the integer counterpart of FloatSpec.
type IntSpec struct {
	set     bool
	uniform int
	arr     *sparse.DenseArrayInt
}

// UniformInt returns a spec that broadcasts v over the full grid shape.
func UniformInt(v int) IntSpec {
	return IntSpec{set: true, uniform: v}
}

// IntValues returns a spec holding an explicit array, which must have
// shape (nlay, nrow, ncol) when resolved.
func IntValues(a *sparse.DenseArrayInt) IntSpec {
	return IntSpec{set: true, arr: a}
}

// IsSet reports whether the spec was built by a constructor rather than
// being the zero value.
func (s IntSpec) IsSet() bool { return s.set }

func (s IntSpec) resolve(nlay, nrow, ncol int) (*sparse.DenseArrayInt, error) {
	if s.arr == nil {
		a := sparse.ZerosDenseInt(nlay, nrow, ncol)
		for i := range a.Elements {
			a.Elements[i] = s.uniform
		}
		return a, nil
	}
	if len(s.arr.Shape) != 3 || s.arr.Shape[0] != nlay ||
		s.arr.Shape[1] != nrow || s.arr.Shape[2] != ncol {
		return nil, fmt.Errorf("uarray: array shape %v does not match grid shape [%d %d %d]",
			s.arr.Shape, nlay, nrow, ncol)
	}
	out := sparse.ZerosDenseInt(nlay, nrow, ncol)
	copy(out.Elements, s.arr.Elements)
	return out, nil
}

// Float3 is a (nlay, nrow, ncol) floating-point grid array tagged with a
// name and a file unit number.
type Float3 struct {
	Name string
	Unit int
	Fmt  Format
	Data *sparse.DenseArray
}

// NewFloat3 resolves spec onto the given grid shape. An unset spec
// broadcasts fallback.
func NewFloat3(spec FloatSpec, fallback float64, nlay, nrow, ncol int, name string, unit int) (*Float3, error) {
	if !spec.set {
		spec = UniformFloat(fallback)
	}
	data, err := spec.resolve(nlay, nrow, ncol)
	if err != nil {
		return nil, fmt.Errorf("%v (array %q)", err, name)
	}
	return &Float3{Name: name, Unit: unit, Fmt: DefaultFloatFormat, Data: data}, nil
}

// FileEntry renders one layer section per layer: a CONSTANT control record
// when every element of the layer is identical, otherwise an INTERNAL
// control record followed by data records in a.Fmt.
func (a *Float3) FileEntry() string {
	nrc := a.Data.Shape[1] * a.Data.Shape[2]
	var b strings.Builder
	for k := 0; k < a.Data.Shape[0]; k++ {
		layer := a.Data.Elements[k*nrc : (k+1)*nrc]
		if floats.Max(layer) == floats.Min(layer) {
			fmt.Fprintf(&b, "CONSTANT %15.6G\n", layer[0])
			continue
		}
		fmt.Fprintf(&b, "INTERNAL %14.6G %s %9d\n", 1.0, a.Fmt, defaultIprn)
		b.WriteString(a.Fmt.floatRecords(layer))
	}
	return b.String()
}

// Int3 is a (nlay, nrow, ncol) integer grid array tagged with a name and a
// file unit number.
type Int3 struct {
	Name string
	Unit int
	Fmt  Format
	Data *sparse.DenseArrayInt
}

// NewInt3 resolves spec onto the given grid shape. An unset spec broadcasts
// fallback.
func NewInt3(spec IntSpec, fallback int, nlay, nrow, ncol int, name string, unit int) (*Int3, error) {
	if !spec.set {
		spec = UniformInt(fallback)
	}
	data, err := spec.resolve(nlay, nrow, ncol)
	if err != nil {
		return nil, fmt.Errorf("%v (array %q)", err, name)
	}
	return &Int3{Name: name, Unit: unit, Fmt: DefaultIntFormat, Data: data}, nil
}

// FileEntry renders one layer section per layer, following the same
// convention as Float3.FileEntry.
func (a *Int3) FileEntry() string {
	nrc := a.Data.Shape[1] * a.Data.Shape[2]
	var b strings.Builder
	for k := 0; k < a.Data.Shape[0]; k++ {
		layer := a.Data.Elements[k*nrc : (k+1)*nrc]
		uniform := true
		for _, v := range layer[1:] {
			if v != layer[0] {
				uniform = false
				break
			}
		}
		if uniform {
			fmt.Fprintf(&b, "CONSTANT %9d\n", layer[0])
			continue
		}
		fmt.Fprintf(&b, "INTERNAL %9d %s %9d\n", 1, a.Fmt, defaultIprn)
		b.WriteString(a.Fmt.intRecords(layer))
	}
	return b.String()
}

// Int1 is a 1-D per-layer integer array. Unlike the grid arrays it renders
// bare data records with no control line, and its output descriptor can be
// overridden to match the record layout the consuming program expects.
type Int1 struct {
	Name string
	Unit int
	Fmt  Format
	Data *sparse.DenseArrayInt
}

// NewInt1 wraps an existing in-memory sequence.
func NewInt1(vals []int, name string, unit int) *Int1 {
	a := sparse.ZerosDenseInt(len(vals))
	copy(a.Elements, vals)
	return &Int1{Name: name, Unit: unit, Fmt: DefaultIntFormat, Data: a}
}

// SetFormat overrides the output descriptor.
func (a *Int1) SetFormat(f Format) { a.Fmt = f }

// String renders the data records only.
func (a *Int1) String() string {
	return a.Fmt.intRecords(a.Data.Elements)
}
