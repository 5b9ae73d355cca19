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
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/gwpath"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage string
	defaultVal  interface{}
	flagsets    []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to GWpath.
	options = []struct {
		name, usage string
		defaultVal  interface{}
		flagsets    []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the model definition file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ModelName",
			usage: `
              ModelName is the base name of all input files written for
              the model.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "OutputDir",
			usage: `
              OutputDir is the directory the input deck is written to.`,
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Grid.Nlay",
			usage: `
              Grid.Nlay is the number of layers in the model grid.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Grid.Nrow",
			usage: `
              Grid.Nrow is the number of rows in the model grid.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Grid.Ncol",
			usage: `
              Grid.Ncol is the number of columns in the model grid.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Grid.Nper",
			usage: `
              Grid.Nper is the number of stress periods.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Flow.Type",
			usage: `
              Flow.Type selects the flow package the deck is built against:
              BCF6, LPF or UPW.`,
			defaultVal: "LPF",
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Flow.LayerType",
			usage: `
              Flow.LayerType holds the per-layer convertibility codes
              (0 convertible, 1 confined). A single value broadcasts to
              all layers.`,
			defaultVal: []int{0},
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Bas.Hnoflo",
			usage: `
              Bas.Hnoflo is the head value assigned to inactive cells.`,
			defaultVal: gwpath.DefaultHnoflo,
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Bas.Hdry",
			usage: `
              Bas.Hdry is the head value assigned to dry cells.`,
			defaultVal: gwpath.DefaultHdry,
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Bas.BudgetLabels",
			usage: `
              Bas.BudgetLabels lists the MODFLOW budget items that get a
              default iface code. It must be parallel to Bas.DefaultIfaces.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Bas.DefaultIfaces",
			usage: `
              Bas.DefaultIfaces lists the cell face codes assigned to the
              budget items in Bas.BudgetLabels.`,
			defaultVal: []int{},
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Bas.IBound",
			usage: `
              Bas.IBound holds the active-cell flags, one value or one value
              per layer.`,
			defaultVal: []int{},
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Bas.Porosity",
			usage: `
              Bas.Porosity holds the porosity, one value or one value
              per layer.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
		{
			name: "Bas.PorosityCB",
			usage: `
              Bas.PorosityCB holds the porosity of confining beds, one value
              or one value per layer.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{writeCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GWPATH")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.String(option.name, v, option.usage)
			case []string:
				set.StringSlice(option.name, v, option.usage)
			case int:
				set.Int(option.name, v, option.usage)
			case []int:
				set.IntSlice(option.name, v, option.usage)
			case float64:
				set.Float64(option.name, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(writeCmd)
}

// setConfig finds and reads in the model definition file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gwpath: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gwpath",
	Short: "A MODPATH input-deck builder.",
	Long: `GWpath builds the text input files consumed by the MODPATH groundwater
particle-tracking program. Use the subcommands specified below to access
the functionality.

Configuration can be changed by using a model definition file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'GWPATH_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of GWpath.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("GWpath v%s\n", gwpath.Version)
	},
	DisableAutoGenTag: true,
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the model input deck.",
	Long: `write assembles the model described by the configuration and writes
its MODPATH input files and name file to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Write(Cfg)
	},
	DisableAutoGenTag: true,
}

// Write assembles the model described by cfg and performs the whole-model
// write pass.
func Write(cfg *viper.Viper) error {
	c, err := modelConfigFromViper(cfg)
	if err != nil {
		return err
	}
	m, err := c.Model()
	if err != nil {
		return err
	}
	return m.WriteInput()
}
