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
	"strings"
	"testing"

	"github.com/spatialmodel/gwpath"
)

func TestReadModelConfig(t *testing.T) {
	c, err := ReadModelConfig("testdata/example.toml")
	if err != nil {
		t.Fatal(err)
	}
	if c.ModelName != "ex1" {
		t.Errorf("got model name %q", c.ModelName)
	}
	if want := (GridConfig{Nlay: 3, Nrow: 21, Ncol: 20, Nper: 1}); c.Grid != want {
		t.Errorf("got grid %+v, want %+v", c.Grid, want)
	}
	if c.Flow.Type != "LPF" || !reflect.DeepEqual(c.Flow.LayerType, []int{1, 0, 0}) {
		t.Errorf("got flow %+v", c.Flow)
	}
	if !reflect.DeepEqual(c.Bas.BudgetLabels, []string{"RECHARGE", "WELLS"}) ||
		!reflect.DeepEqual(c.Bas.DefaultIfaces, []int{6, 1}) {
		t.Errorf("got bas %+v", c.Bas)
	}
}

func TestModelWrite(t *testing.T) {
	dir, err := ioutil.TempDir("", "gwpathutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	c, err := ReadModelConfig("testdata/example.toml")
	if err != nil {
		t.Fatal(err)
	}
	c.OutputDir = dir
	m, err := c.Model()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.WriteInput(); err != nil {
		t.Fatal(err)
	}

	data, err := ioutil.ReadFile(filepath.Join(dir, "ex1.mpbas"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(data), "\n")
	if got, want := lines[2], "    -9999.000000     -8888.000000"; got != want {
		t.Errorf("head line: got %q, want %q", got, want)
	}
	if got, want := lines[8], " 1 0 0"; got != want {
		t.Errorf("layer-type line: got %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(dir, "ex1.mpnam")); err != nil {
		t.Errorf("name file was not written: %v", err)
	}
}

func TestModelConfigValidation(t *testing.T) {
	base := func() *ModelConfig {
		return &ModelConfig{
			ModelName: "ex1",
			OutputDir: ".",
			Grid:      GridConfig{Nlay: 2, Nrow: 2, Ncol: 2, Nper: 1},
			Flow:      FlowConfig{Type: "LPF"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*ModelConfig)
		errMsg string
	}{
		{
			"missing name",
			func(c *ModelConfig) { c.ModelName = "" },
			"ModelName",
		},
		{
			"bad grid",
			func(c *ModelConfig) { c.Grid.Nrow = 0 },
			"grid dimensions",
		},
		{
			"bad flow type",
			func(c *ModelConfig) { c.Flow.Type = "SFR" },
			"Flow.Type",
		},
		{
			"mismatched face lists",
			func(c *ModelConfig) {
				c.Bas.BudgetLabels = []string{"RECHARGE", "WELLS"}
				c.Bas.DefaultIfaces = []int{6}
			},
			"same length",
		},
		{
			"bad porosity length",
			func(c *ModelConfig) { c.Bas.Porosity = []float64{0.3, 0.3, 0.3} },
			"Bas.Porosity",
		},
		{
			"missing output dir",
			func(c *ModelConfig) { c.OutputDir = "no/such/directory" },
			"OutputDir",
		},
	}
	for _, test := range tests {
		c := base()
		test.mutate(c)
		_, err := c.Model()
		if err == nil {
			t.Errorf("%s: expected an error", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.errMsg) {
			t.Errorf("%s: error %q does not mention %q", test.name, err, test.errMsg)
		}
	}
}

func TestPerLayerArrays(t *testing.T) {
	dir, err := ioutil.TempDir("", "gwpathutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	c := &ModelConfig{
		ModelName: "layered",
		OutputDir: dir,
		Grid:      GridConfig{Nlay: 2, Nrow: 3, Ncol: 3, Nper: 1},
		Flow:      FlowConfig{Type: "UPW", LayerType: []int{1, 0}},
		Bas: BasConfig{
			IBound:   []int{1, 0},
			Porosity: []float64{0.25, 0.35},
		},
	}
	m, err := c.Model()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.WriteInput(); err != nil {
		t.Fatal(err)
	}
	data, err := ioutil.ReadFile(filepath.Join(dir, "layered.mpbas"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	// Per-layer constants become one CONSTANT section per layer.
	for _, want := range []string{"CONSTANT         1", "CONSTANT         0",
		"CONSTANT            0.25", "CONSTANT            0.35"} {
		if !strings.Contains(content, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestDefaultIfacesUnset(t *testing.T) {
	dir, err := ioutil.TempDir("", "gwpathutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	c := &ModelConfig{
		ModelName: "bare",
		OutputDir: dir,
		Grid:      GridConfig{Nlay: 1, Nrow: 2, Ncol: 2, Nper: 1},
	}
	m, err := c.Model() // empty Flow.Type defaults to LPF
	if err != nil {
		t.Fatal(err)
	}
	if m.GetPackage(gwpath.KindLPF) == nil {
		t.Error("default flow package not registered")
	}
	if err := m.WriteInput(); err != nil {
		t.Fatal(err)
	}
	data, err := ioutil.ReadFile(filepath.Join(dir, "bare.mpbas"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(data), "\n")
	if got, want := lines[3], "   0"; got != want {
		t.Errorf("face count line: got %q, want %q", got, want)
	}
}
