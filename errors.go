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
	"fmt"
	"strings"
)

// ConfigError indicates malformed package-construction input, such as
// mismatched default-face lists or an array whose shape doesn't match the
// grid. It is returned at construction time, never deferred to write time.
type ConfigError struct {
	Package string // package kind the bad input was destined for
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gwpath: %s configuration: %s", e.Package, e.Reason)
}

func configErrorf(kind, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Package: kind, Reason: fmt.Sprintf(format, args...)}
}

// MissingPackageError indicates that none of the expected collaborator
// packages was registered with the model when one was required.
type MissingPackageError struct {
	Checked []string // kind tags probed, in priority order
}

func (e *MissingPackageError) Error() string {
	return fmt.Sprintf("gwpath: no flow package is registered with the model (checked %s)",
		strings.Join(e.Checked, ", "))
}
