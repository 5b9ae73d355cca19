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

package gwpathutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lnashier/viper"
)

func TestModelConfigFromViper(t *testing.T) {
	v := viper.New()
	v.Set("ModelName", "vip")
	v.Set("Grid.Nlay", 2)
	v.Set("Grid.Nrow", 3)
	v.Set("Grid.Ncol", 4)
	// List-valued variables may arrive as JSON strings when set from
	// command-line arguments.
	v.Set("Flow.LayerType", "[1,0]")
	v.Set("Bas.BudgetLabels", []string{"RECHARGE"})
	v.Set("Bas.DefaultIfaces", []int{6})
	v.Set("Bas.Porosity", "[0.25]")

	c, err := modelConfigFromViper(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.ModelName != "vip" {
		t.Errorf("got model name %q", c.ModelName)
	}
	if c.Grid.Nlay != 2 || c.Grid.Nrow != 3 || c.Grid.Ncol != 4 {
		t.Errorf("got grid %+v", c.Grid)
	}
	if !reflect.DeepEqual(c.Flow.LayerType, []int{1, 0}) {
		t.Errorf("got layer types %v", c.Flow.LayerType)
	}
	if !reflect.DeepEqual(c.Bas.DefaultIfaces, []int{6}) {
		t.Errorf("got ifaces %v", c.Bas.DefaultIfaces)
	}
	if !reflect.DeepEqual(c.Bas.Porosity, []float64{0.25}) {
		t.Errorf("got porosity %v", c.Bas.Porosity)
	}
}

func TestWriteCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "gwpathcmd")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	Cfg.Set("config", "testdata/example.toml")
	if err := setConfig(); err != nil {
		t.Fatal(err)
	}
	Cfg.Set("OutputDir", dir)

	if err := Write(Cfg); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"ex1.mpbas", "ex1.mpnam"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s was not written: %v", name, err)
		}
	}
}
