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

// Package gwpathutil wires configuration files and command-line flags to
// the gwpath library.
package gwpathutil

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/sparse"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/spatialmodel/gwpath"
	"github.com/spatialmodel/gwpath/uarray"
)

// ModelConfig is the TOML model definition the gwpath command consumes.
type ModelConfig struct {
	// ModelName is the base name of all input files written for the model.
	ModelName string
	// OutputDir is the directory the input deck is written to. Environment
	// variables within it are expanded.
	OutputDir string

	Grid GridConfig
	Flow FlowConfig
	Bas  BasConfig
}

// GridConfig mirrors gwpath.Dis.
type GridConfig struct {
	Nlay, Nrow, Ncol, Nper int
}

// FlowConfig selects the flow package the deck is built against.
type FlowConfig struct {
	// Type is one of BCF6, LPF or UPW.
	Type string
	// LayerType holds the per-layer convertibility codes; a single value
	// broadcasts to all layers.
	LayerType []int
}

// BasConfig holds the basic-package section of the model definition. The
// array-valued fields accept either one value (broadcast over the grid) or
// one value per layer.
type BasConfig struct {
	Hnoflo float64
	Hdry   float64

	// BudgetLabels and DefaultIfaces are parallel lists assigning default
	// iface codes to MODFLOW budget items. They must have the same length.
	BudgetLabels  []string
	DefaultIfaces []int

	IBound     []int
	Porosity   []float64
	PorosityCB []float64
}

// ReadModelConfig reads a TOML model definition from path.
func ReadModelConfig(path string) (*ModelConfig, error) {
	var c ModelConfig
	if _, err := toml.DecodeFile(os.ExpandEnv(path), &c); err != nil {
		return nil, fmt.Errorf("gwpathutil: reading model definition %s: %v", path, err)
	}
	return &c, nil
}

// Model validates c and assembles the model it describes, with the flow and
// basic packages attached.
func (c *ModelConfig) Model() (*gwpath.Model, error) {
	if c.ModelName == "" {
		return nil, fmt.Errorf("gwpathutil: the ModelName configuration variable must be set")
	}
	dis, err := gwpath.NewDis(c.Grid.Nlay, c.Grid.Nrow, c.Grid.Ncol, max1(c.Grid.Nper))
	if err != nil {
		return nil, err
	}
	dir := os.ExpandEnv(c.OutputDir)
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("gwpathutil: the OutputDir directory doesn't exist: %v", err)
	}
	m := gwpath.NewModel(c.ModelName, dir, dis)

	switch strings.ToUpper(c.Flow.Type) {
	case gwpath.KindBCF6:
		_, err = gwpath.NewBCF6(m, c.Flow.LayerType)
	case gwpath.KindLPF, "":
		_, err = gwpath.NewLPF(m, c.Flow.LayerType)
	case gwpath.KindUPW:
		_, err = gwpath.NewUPW(m, c.Flow.LayerType)
	default:
		return nil, fmt.Errorf("gwpathutil: the Flow.Type configuration variable must be "+
			"BCF6, LPF or UPW, but is %q", c.Flow.Type)
	}
	if err != nil {
		return nil, err
	}

	bc, err := c.Bas.basConfig(dis)
	if err != nil {
		return nil, err
	}
	if _, err := gwpath.NewBas(m, bc); err != nil {
		return nil, err
	}
	return m, nil
}

// basConfig translates the file-level section into library constructor
// arguments, resolving the parallel default-face lists and the
// scalar-or-per-layer array shorthands.
func (c *BasConfig) basConfig(dis gwpath.Dis) (gwpath.BasConfig, error) {
	var bc gwpath.BasConfig
	if len(c.BudgetLabels) != len(c.DefaultIfaces) {
		return bc, fmt.Errorf("gwpathutil: Bas.BudgetLabels and Bas.DefaultIfaces must be "+
			"the same length; %d != %d", len(c.BudgetLabels), len(c.DefaultIfaces))
	}
	bc.Hnoflo = c.Hnoflo
	bc.Hdry = c.Hdry
	for i, label := range c.BudgetLabels {
		bc.DefaultFaces = append(bc.DefaultFaces, gwpath.DefaultFace{
			Label: label, IFace: c.DefaultIfaces[i]})
	}

	var err error
	if bc.IBound, err = intLayerSpec("Bas.IBound", c.IBound, dis); err != nil {
		return bc, err
	}
	if bc.Prsity, err = floatLayerSpec("Bas.Porosity", c.Porosity, dis); err != nil {
		return bc, err
	}
	if bc.PrsityCB, err = floatLayerSpec("Bas.PorosityCB", c.PorosityCB, dis); err != nil {
		return bc, err
	}
	return bc, nil
}

// intLayerSpec turns a scalar-or-per-layer list into an array spec. An
// empty list leaves the spec unset so the library default applies.
func intLayerSpec(name string, vals []int, dis gwpath.Dis) (uarray.IntSpec, error) {
	switch len(vals) {
	case 0:
		return uarray.IntSpec{}, nil
	case 1:
		return uarray.UniformInt(vals[0]), nil
	case dis.Nlay:
		a := sparse.ZerosDenseInt(dis.Nlay, dis.Nrow, dis.Ncol)
		nrc := dis.Nrow * dis.Ncol
		for k, v := range vals {
			layer := a.Elements[k*nrc : (k+1)*nrc]
			for i := range layer {
				layer[i] = v
			}
		}
		return uarray.IntValues(a), nil
	}
	return uarray.IntSpec{}, fmt.Errorf("gwpathutil: %s must hold 1 value or one value "+
		"per layer (%d); got %d", name, dis.Nlay, len(vals))
}

func floatLayerSpec(name string, vals []float64, dis gwpath.Dis) (uarray.FloatSpec, error) {
	switch len(vals) {
	case 0:
		return uarray.FloatSpec{}, nil
	case 1:
		return uarray.UniformFloat(vals[0]), nil
	case dis.Nlay:
		a := sparse.ZerosDense(dis.Nlay, dis.Nrow, dis.Ncol)
		nrc := dis.Nrow * dis.Ncol
		for k, v := range vals {
			layer := a.Elements[k*nrc : (k+1)*nrc]
			for i := range layer {
				layer[i] = v
			}
		}
		return uarray.FloatValues(a), nil
	}
	return uarray.FloatSpec{}, fmt.Errorf("gwpathutil: %s must hold 1 value or one value "+
		"per layer (%d); got %d", name, dis.Nlay, len(vals))
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// modelConfigFromViper assembles a ModelConfig from a viper configuration,
// accounting for list-valued variables arriving as JSON strings when set
// from command-line arguments.
func modelConfigFromViper(cfg *viper.Viper) (*ModelConfig, error) {
	layerType, err := toIntSliceE(cfg.Get("Flow.LayerType"))
	if err != nil {
		return nil, fmt.Errorf("gwpathutil: Flow.LayerType: %v", err)
	}
	ifaces, err := toIntSliceE(cfg.Get("Bas.DefaultIfaces"))
	if err != nil {
		return nil, fmt.Errorf("gwpathutil: Bas.DefaultIfaces: %v", err)
	}
	ibound, err := toIntSliceE(cfg.Get("Bas.IBound"))
	if err != nil {
		return nil, fmt.Errorf("gwpathutil: Bas.IBound: %v", err)
	}
	porosity, err := toFloat64SliceE(cfg.Get("Bas.Porosity"))
	if err != nil {
		return nil, fmt.Errorf("gwpathutil: Bas.Porosity: %v", err)
	}
	porosityCB, err := toFloat64SliceE(cfg.Get("Bas.PorosityCB"))
	if err != nil {
		return nil, fmt.Errorf("gwpathutil: Bas.PorosityCB: %v", err)
	}
	c := &ModelConfig{
		ModelName: os.ExpandEnv(cfg.GetString("ModelName")),
		OutputDir: os.ExpandEnv(cfg.GetString("OutputDir")),
		Grid: GridConfig{
			Nlay: cfg.GetInt("Grid.Nlay"),
			Nrow: cfg.GetInt("Grid.Nrow"),
			Ncol: cfg.GetInt("Grid.Ncol"),
			Nper: cfg.GetInt("Grid.Nper"),
		},
		Flow: FlowConfig{
			Type:      cfg.GetString("Flow.Type"),
			LayerType: layerType,
		},
		Bas: BasConfig{
			Hnoflo:        cfg.GetFloat64("Bas.Hnoflo"),
			Hdry:          cfg.GetFloat64("Bas.Hdry"),
			BudgetLabels:  cfg.GetStringSlice("Bas.BudgetLabels"),
			DefaultIfaces: ifaces,
			IBound:        ibound,
			Porosity:      porosity,
			PorosityCB:    porosityCB,
		},
	}
	return c, nil
}

func toIntSliceE(s interface{}) ([]int, error) {
	if s == nil {
		return nil, nil
	}
	if str, ok := s.(string); ok {
		if str == "" {
			return nil, nil
		}
		var o []int
		if err := json.Unmarshal([]byte(str), &o); err != nil {
			return nil, err
		}
		return o, nil
	}
	return cast.ToIntSliceE(s)
}

func toFloat64SliceE(s interface{}) ([]float64, error) {
	if s == nil {
		return nil, nil
	}
	if str, ok := s.(string); ok {
		if str == "" {
			return nil, nil
		}
		var o []float64
		if err := json.Unmarshal([]byte(str), &o); err != nil {
			return nil, err
		}
		return o, nil
	}
	v, err := cast.ToSliceE(s)
	if err != nil {
		return nil, err
	}
	o := make([]float64, len(v))
	for i, val := range v {
		if o[i], err = cast.ToFloat64E(val); err != nil {
			return nil, err
		}
	}
	return o, nil
}
