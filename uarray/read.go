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

package uarray

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ctessum/sparse"
)

// A Reader parses layer-section arrays back out of a model input file.
// Sections are consumed sequentially from the underlying stream, so several
// arrays can be read from the same file one after another.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader returns a Reader parsing from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// ReadFloat3 parses nlay layer sections, as written by Float3.FileEntry,
// into a dense array of shape (nlay, nrow, ncol).
func (r *Reader) ReadFloat3(nlay, nrow, ncol int) (*sparse.DenseArray, error) {
	out := sparse.ZerosDense(nlay, nrow, ncol)
	nrc := nrow * ncol
	for k := 0; k < nlay; k++ {
		ctl, cnstnt, f, err := r.readControl(k)
		if err != nil {
			return nil, err
		}
		layer := out.Elements[k*nrc : (k+1)*nrc]
		if ctl == "CONSTANT" {
			for i := range layer {
				layer[i] = cnstnt
			}
			continue
		}
		vals, err := r.readFields(f, nrc, k)
		if err != nil {
			return nil, err
		}
		for i, s := range vals {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("uarray: layer %d: bad value %q: %v", k, s, err)
			}
			layer[i] = v * cnstnt
		}
	}
	return out, nil
}

// ReadInt3 parses nlay layer sections, as written by Int3.FileEntry, into a
// dense integer array of shape (nlay, nrow, ncol).
func (r *Reader) ReadInt3(nlay, nrow, ncol int) (*sparse.DenseArrayInt, error) {
	out := sparse.ZerosDenseInt(nlay, nrow, ncol)
	nrc := nrow * ncol
	for k := 0; k < nlay; k++ {
		ctl, cnstnt, f, err := r.readControl(k)
		if err != nil {
			return nil, err
		}
		layer := out.Elements[k*nrc : (k+1)*nrc]
		if ctl == "CONSTANT" {
			for i := range layer {
				layer[i] = int(cnstnt)
			}
			continue
		}
		vals, err := r.readFields(f, nrc, k)
		if err != nil {
			return nil, err
		}
		for i, s := range vals {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("uarray: layer %d: bad value %q: %v", k, s, err)
			}
			layer[i] = v * int(cnstnt)
		}
	}
	return out, nil
}

// ReadFloat3 parses nlay layer sections from r into a dense array of shape
// (nlay, nrow, ncol).
func ReadFloat3(r io.Reader, nlay, nrow, ncol int) (*sparse.DenseArray, error) {
	return NewReader(r).ReadFloat3(nlay, nrow, ncol)
}

// ReadInt3 parses nlay layer sections from r into a dense integer array of
// shape (nlay, nrow, ncol).
func ReadInt3(r io.Reader, nlay, nrow, ncol int) (*sparse.DenseArrayInt, error) {
	return NewReader(r).ReadInt3(nlay, nrow, ncol)
}

// readControl consumes one control record and returns its keyword, the
// constant (fill value for CONSTANT, multiplier for INTERNAL) and, for
// INTERNAL, the parsed data-record descriptor.
func (r *Reader) readControl(layer int) (string, float64, Format, error) {
	if !r.sc.Scan() {
		return "", 0, Format{}, fmt.Errorf("uarray: layer %d: missing control record", layer)
	}
	fields := strings.Fields(r.sc.Text())
	if len(fields) < 2 {
		return "", 0, Format{}, fmt.Errorf("uarray: layer %d: malformed control record %q", layer, r.sc.Text())
	}
	keyword := strings.ToUpper(fields[0])
	cnstnt, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", 0, Format{}, fmt.Errorf("uarray: layer %d: bad constant %q: %v", layer, fields[1], err)
	}
	switch keyword {
	case "CONSTANT":
		return keyword, cnstnt, Format{}, nil
	case "INTERNAL":
		if len(fields) < 3 {
			return "", 0, Format{}, fmt.Errorf("uarray: layer %d: INTERNAL record %q has no format", layer, r.sc.Text())
		}
		f, err := ParseFormat(fields[2])
		if err != nil {
			return "", 0, Format{}, fmt.Errorf("uarray: layer %d: %v", layer, err)
		}
		return keyword, cnstnt, f, nil
	}
	return "", 0, Format{}, fmt.Errorf("uarray: layer %d: unknown control keyword %q", layer, keyword)
}

// readFields consumes data records, slicing each into f.Width-character
// columns, until n fields have been collected.
func (r *Reader) readFields(f Format, n, layer int) ([]string, error) {
	out := make([]string, 0, n)
	for len(out) < n {
		if !r.sc.Scan() {
			return nil, fmt.Errorf("uarray: layer %d: unexpected end of data after %d of %d values",
				layer, len(out), n)
		}
		line := r.sc.Text()
		for i := 0; i < len(line) && len(out) < n; i += f.Width {
			end := i + f.Width
			if end > len(line) {
				end = len(line)
			}
			field := strings.TrimSpace(line[i:end])
			if field == "" {
				continue
			}
			out = append(out, field)
		}
	}
	return out, nil
}
