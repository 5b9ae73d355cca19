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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format is a parsed Fortran-style output descriptor such as (40I2),
// (10F12.6) or (8E15.6). It controls how many values are placed on each
// data record and how each value is rendered.
type Format struct {
	PerLine int  // values per record
	Conv    byte // conversion letter: 'I', 'F', 'E' or 'G'
	Width   int  // field width in characters
	Prec    int  // digits after the decimal point; unused for 'I'
}

var formatRe = regexp.MustCompile(`^\(\s*(\d+)\s*([A-Za-z])\s*(\d+)(?:\.(\d+))?\s*\)$`)

// ParseFormat parses a descriptor string like "(40I2)" or "(10F12.6)".
func ParseFormat(s string) (Format, error) {
	m := formatRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Format{}, fmt.Errorf("uarray: invalid format descriptor %q", s)
	}
	var f Format
	var err error
	if f.PerLine, err = strconv.Atoi(m[1]); err != nil || f.PerLine < 1 {
		return Format{}, fmt.Errorf("uarray: invalid repeat count in format %q", s)
	}
	f.Conv = strings.ToUpper(m[2])[0]
	switch f.Conv {
	case 'I', 'F', 'E', 'G':
	case 'D': // Fortran double-precision exponent form
		f.Conv = 'E'
	default:
		return Format{}, fmt.Errorf("uarray: unsupported conversion %q in format %q", m[2], s)
	}
	if f.Width, err = strconv.Atoi(m[3]); err != nil || f.Width < 1 {
		return Format{}, fmt.Errorf("uarray: invalid field width in format %q", s)
	}
	if m[4] != "" {
		if f.Conv == 'I' {
			return Format{}, fmt.Errorf("uarray: integer format %q cannot have a precision", s)
		}
		if f.Prec, err = strconv.Atoi(m[4]); err != nil {
			return Format{}, fmt.Errorf("uarray: invalid precision in format %q", s)
		}
	}
	return f, nil
}

// String renders f back into descriptor form, e.g. "(40I2)".
func (f Format) String() string {
	if f.Conv == 'I' {
		return fmt.Sprintf("(%d%c%d)", f.PerLine, f.Conv, f.Width)
	}
	return fmt.Sprintf("(%d%c%d.%d)", f.PerLine, f.Conv, f.Width, f.Prec)
}

func (f Format) formatInt(v int) string {
	return fmt.Sprintf("%*d", f.Width, v)
}

func (f Format) formatFloat(v float64) string {
	switch f.Conv {
	case 'E':
		return fmt.Sprintf("%*.*E", f.Width, f.Prec, v)
	case 'G':
		return fmt.Sprintf("%*.*G", f.Width, f.Prec, v)
	default:
		return fmt.Sprintf("%*.*f", f.Width, f.Prec, v)
	}
}

// intRecords renders vals as fixed-width data records, f.PerLine values
// per record, each record terminated by a newline.
func (f Format) intRecords(vals []int) string {
	var b strings.Builder
	for i, v := range vals {
		b.WriteString(f.formatInt(v))
		if (i+1)%f.PerLine == 0 || i == len(vals)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (f Format) floatRecords(vals []float64) string {
	var b strings.Builder
	for i, v := range vals {
		b.WriteString(f.formatFloat(v))
		if (i+1)%f.PerLine == 0 || i == len(vals)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
