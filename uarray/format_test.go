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

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"(40I2)", Format{PerLine: 40, Conv: 'I', Width: 2}},
		{"(20I4)", Format{PerLine: 20, Conv: 'I', Width: 4}},
		{"(10F12.6)", Format{PerLine: 10, Conv: 'F', Width: 12, Prec: 6}},
		{"(8E15.6)", Format{PerLine: 8, Conv: 'E', Width: 15, Prec: 6}},
		{"(5G14.6)", Format{PerLine: 5, Conv: 'G', Width: 14, Prec: 6}},
		{"(5D14.6)", Format{PerLine: 5, Conv: 'E', Width: 14, Prec: 6}},
		{"( 40I2 )", Format{PerLine: 40, Conv: 'I', Width: 2}},
		{"(10f12.4)", Format{PerLine: 10, Conv: 'F', Width: 12, Prec: 4}},
	}
	for _, test := range tests {
		got, err := ParseFormat(test.in)
		if err != nil {
			t.Errorf("%s: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %+v, want %+v", test.in, got, test.want)
		}
	}
}

func TestParseFormatErrors(t *testing.T) {
	bad := []string{
		"",
		"40I2",
		"(I2)",
		"(10X4)",
		"(10I2.3)",
		"(10F)",
	}
	for _, in := range bad {
		if _, err := ParseFormat(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestFormatString(t *testing.T) {
	for _, s := range []string{"(40I2)", "(10F12.6)", "(8E15.6)"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Fatal(err)
		}
		if f.String() != s {
			t.Errorf("got %s, want %s", f.String(), s)
		}
	}
}

func TestIntRecords(t *testing.T) {
	f := Format{PerLine: 40, Conv: 'I', Width: 2}
	if got, want := f.intRecords([]int{1, 0, 2}), " 1 0 2\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	vals := make([]int, 85)
	for i := range vals {
		vals[i] = 1
	}
	got := f.intRecords(vals)
	lines := 0
	for _, c := range got {
		if c == '\n' {
			lines++
		}
	}
	if lines != 3 { // 40 + 40 + 5
		t.Errorf("got %d records, want 3", lines)
	}
	if len(got) != 85*2+3 {
		t.Errorf("got %d characters, want %d", len(got), 85*2+3)
	}
}

func TestFloatRecords(t *testing.T) {
	f := Format{PerLine: 2, Conv: 'F', Width: 12, Prec: 6}
	got := f.floatRecords([]float64{0.3, -1.5, 2})
	want := "    0.300000   -1.500000\n    2.000000\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
