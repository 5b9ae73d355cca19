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

// Package gwpath builds the input deck for the MODPATH groundwater
// particle-tracking program. A Model holds the grid discretization and a
// registry of input-file packages; packages serialize themselves to the
// fixed-format text files MODPATH reads.
package gwpath

// Version gives the version number of this version of GWpath.
const Version = "1.1.0"
