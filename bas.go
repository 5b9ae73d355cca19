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
	"bytes"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/spatialmodel/gwpath/uarray"
)

// KindBas is the registry tag of the MODPATH basic package.
const KindBas = "MPBAS"

// Conventional defaults for the basic package.
const (
	DefaultHnoflo       = -9999.0
	DefaultHdry         = -8888.0
	DefaultPorosity     = 0.30
	defaultBasExt       = "mpbas"
	defaultBasUnit      = 86
	maxBudgetLabelWidth = 20
)

var basHeadings = [2]string{"# MPBAS for MODPATH, generated by GWpath.", "#"}

// DefaultFace assigns flows from one MODFLOW budget item to a cell face.
type DefaultFace struct {
	Label string // budget item label, at most 20 characters
	IFace int    // cell face code the budget flows are assigned to
}

// BasConfig holds the constructor arguments for the basic package. Zero
// values take the conventional defaults noted on each field.
type BasConfig struct {
	Hnoflo float64 // head assigned to inactive cells; default -9999
	Hdry   float64 // head assigned to dry cells; default -8888

	// DefaultFaces lists the budget items that get a default iface code.
	DefaultFaces []DefaultFace

	IBound   uarray.IntSpec   // active-cell flags; default uniform 1
	Prsity   uarray.FloatSpec // porosity; default uniform 0.30
	PrsityCB uarray.FloatSpec // confining-bed porosity; default uniform 0.30

	Extension string // input file extension; default "mpbas"
	Unit      int    // file unit number; default 86
}

// Bas is the MODPATH basic package. It holds the head sentinels, default
// iface assignments, the active-cell flag array and the two porosity arrays,
// and serializes them in the fixed order the program expects.
type Bas struct {
	Hnoflo       float64
	Hdry         float64
	DefaultFaces []DefaultFace
	IBound       *uarray.Int3
	Prsity       *uarray.Float3
	PrsityCB     *uarray.Float3

	path string
	unit int
	flow layerTypeSource
}

// NewBas builds the basic package from c, resolves its arrays onto the grid
// shape of m, and registers it with m. Malformed input is reported as a
// *ConfigError.
func NewBas(m *Model, c BasConfig) (*Bas, error) {
	if c.Hnoflo == 0 {
		c.Hnoflo = DefaultHnoflo
	}
	if c.Hdry == 0 {
		c.Hdry = DefaultHdry
	}
	if c.Extension == "" {
		c.Extension = defaultBasExt
	}
	if c.Unit == 0 {
		c.Unit = defaultBasUnit
	}
	for i, f := range c.DefaultFaces {
		if f.Label == "" {
			return nil, configErrorf(KindBas, "default face %d has an empty budget label", i)
		}
		if len(f.Label) > maxBudgetLabelWidth {
			return nil, configErrorf(KindBas, "budget label %q exceeds %d characters",
				f.Label, maxBudgetLabelWidth)
		}
		if f.IFace < 0 {
			return nil, configErrorf(KindBas, "default face %d has negative iface code %d", i, f.IFace)
		}
	}

	d := m.Dis
	ibound, err := uarray.NewInt3(c.IBound, 1, d.Nlay, d.Nrow, d.Ncol, "ibound", c.Unit)
	if err != nil {
		return nil, configErrorf(KindBas, "%v", err)
	}
	prsity, err := uarray.NewFloat3(c.Prsity, DefaultPorosity, d.Nlay, d.Nrow, d.Ncol, "prsity", c.Unit)
	if err != nil {
		return nil, configErrorf(KindBas, "%v", err)
	}
	prsityCB, err := uarray.NewFloat3(c.PrsityCB, DefaultPorosity, d.Nlay, d.Nrow, d.Ncol, "prsityCB", c.Unit)
	if err != nil {
		return nil, configErrorf(KindBas, "%v", err)
	}

	b := &Bas{
		Hnoflo:       c.Hnoflo,
		Hdry:         c.Hdry,
		DefaultFaces: c.DefaultFaces,
		IBound:       ibound,
		Prsity:       prsity,
		PrsityCB:     prsityCB,
		path:         m.FilePath(c.Extension),
		unit:         c.Unit,
		flow:         m,
	}
	m.AddPackage(b)
	return b, nil
}

func (b *Bas) Kind() string { return KindBas }
func (b *Bas) Unit() int    { return b.unit }

// FileName returns the path the package file is written to.
func (b *Bas) FileName() string { return b.path }

// WriteFile serializes the package to FileName. The whole file is rendered
// in memory and committed with an atomic rename, so a failed attempt never
// leaves a partial file behind. If no flow package is registered with the
// model the write fails with a *MissingPackageError before touching the
// filesystem.
func (b *Bas) WriteFile() error {
	codes, err := b.flow.flowLayerTypes()
	if err != nil {
		return err
	}
	lc := uarray.NewInt1(codes, "bas - laytype", b.unit)
	lc.SetFormat(uarray.Format{PerLine: 40, Conv: 'I', Width: 2})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n", basHeadings[0], basHeadings[1])
	fmt.Fprintf(&buf, "%16.6f %16.6f\n", b.Hnoflo, b.Hdry)
	fmt.Fprintf(&buf, "%4d\n", len(b.DefaultFaces))
	for _, f := range b.DefaultFaces {
		fmt.Fprintf(&buf, "%-20s\n", f.Label)
		fmt.Fprintf(&buf, "%2d\n", f.IFace)
	}
	buf.WriteString(lc.String())
	buf.WriteString(b.IBound.FileEntry())
	buf.WriteString(b.Prsity.FileEntry())
	buf.WriteString(b.PrsityCB.FileEntry())

	if err := renameio.WriteFile(b.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("gwpath: writing basic package file %s: %v", b.path, err)
	}
	return nil
}
