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

// Dis is the grid discretization of a model: the number of layers, rows and
// columns of the finite-difference grid, and the number of stress periods.
// It is a value object; packages copy it at construction and the shape of
// every grid array is fixed for the lifetime of the model.
type Dis struct {
	Nlay, Nrow, Ncol, Nper int
}

// NewDis returns the discretization for a grid of nlay layers, nrow rows and
// ncol columns over nper stress periods.
func NewDis(nlay, nrow, ncol, nper int) (Dis, error) {
	if nlay < 1 || nrow < 1 || ncol < 1 {
		return Dis{}, configErrorf("DIS", "grid dimensions must be positive; got (%d, %d, %d)",
			nlay, nrow, ncol)
	}
	if nper < 1 {
		return Dis{}, configErrorf("DIS", "number of stress periods must be positive; got %d", nper)
	}
	return Dis{Nlay: nlay, Nrow: nrow, Ncol: ncol, Nper: nper}, nil
}
