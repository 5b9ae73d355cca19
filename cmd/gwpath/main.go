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

// Command gwpath is a command-line interface for the GWpath input-deck
// builder.
package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/gwpath/gwpathutil"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
}

func main() {
	if err := gwpathutil.Root.Execute(); err != nil {
		logger.WithError(err).Fatal("gwpath failed")
	}
}
