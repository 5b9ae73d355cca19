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

// Kind tags of the flow packages a MODFLOW model may carry. MODPATH needs
// exactly one of them for the per-layer convertibility codes; they are
// probed in this order and the first match wins.
const (
	KindBCF6 = "BCF6"
	KindLPF  = "LPF"
	KindUPW  = "UPW"
)

var flowKinds = []string{KindBCF6, KindLPF, KindUPW}

// A layerTyper exposes per-layer convertibility codes (0 convertible,
// 1 confined).
type layerTyper interface {
	LayerTypes() []int
}

// layerTypeSource yields the layer-type codes of whichever flow package is
// registered. Model implements it; Bas depends on it instead of holding a
// full model back-reference.
type layerTypeSource interface {
	flowLayerTypes() ([]int, error)
}

// flowLayerTypes probes the registry for the flow packages in priority
// order and returns the layer-type codes of the first one found.
func (m *Model) flowLayerTypes() ([]int, error) {
	for _, kind := range flowKinds {
		p := m.GetPackage(kind)
		if p == nil {
			continue
		}
		if lt, ok := p.(layerTyper); ok {
			return lt.LayerTypes(), nil
		}
	}
	return nil, &MissingPackageError{Checked: flowKinds}
}

// layerCodes validates a per-layer code sequence against the model's layer
// count. A single code broadcasts to all layers.
func layerCodes(kind string, codes []int, nlay int) ([]int, error) {
	switch len(codes) {
	case 0:
		return make([]int, nlay), nil
	case 1:
		out := make([]int, nlay)
		for i := range out {
			out[i] = codes[0]
		}
		return out, nil
	case nlay:
		out := make([]int, nlay)
		copy(out, codes)
		return out, nil
	}
	return nil, configErrorf(kind, "need %d layer-type codes (one per layer), got %d", nlay, len(codes))
}

// BCF6 is the block-centered flow package. Only the per-layer laycon codes
// are represented here; the package's own input file belongs to the flow
// model, not to the MODPATH deck.
type BCF6 struct {
	unit   int
	laycon []int
}

// NewBCF6 registers a BCF6 package holding the given laycon codes with m.
func NewBCF6(m *Model, laycon []int) (*BCF6, error) {
	codes, err := layerCodes(KindBCF6, laycon, m.Dis.Nlay)
	if err != nil {
		return nil, err
	}
	p := &BCF6{unit: m.NextUnit(), laycon: codes}
	m.AddPackage(p)
	return p, nil
}

func (p *BCF6) Kind() string { return KindBCF6 }
func (p *BCF6) Unit() int    { return p.unit }

// LayerTypes returns the per-layer laycon codes.
func (p *BCF6) LayerTypes() []int {
	out := make([]int, len(p.laycon))
	copy(out, p.laycon)
	return out
}

// LPF is the layer-property flow package.
type LPF struct {
	unit   int
	laytyp []int
}

// NewLPF registers an LPF package holding the given laytyp codes with m.
func NewLPF(m *Model, laytyp []int) (*LPF, error) {
	codes, err := layerCodes(KindLPF, laytyp, m.Dis.Nlay)
	if err != nil {
		return nil, err
	}
	p := &LPF{unit: m.NextUnit(), laytyp: codes}
	m.AddPackage(p)
	return p, nil
}

func (p *LPF) Kind() string { return KindLPF }
func (p *LPF) Unit() int    { return p.unit }

// LayerTypes returns the per-layer laytyp codes.
func (p *LPF) LayerTypes() []int {
	out := make([]int, len(p.laytyp))
	copy(out, p.laytyp)
	return out
}

// UPW is the upstream-weighting flow package used by MODFLOW-NWT.
type UPW struct {
	unit   int
	laytyp []int
}

// NewUPW registers a UPW package holding the given laytyp codes with m.
func NewUPW(m *Model, laytyp []int) (*UPW, error) {
	codes, err := layerCodes(KindUPW, laytyp, m.Dis.Nlay)
	if err != nil {
		return nil, err
	}
	p := &UPW{unit: m.NextUnit(), laytyp: codes}
	m.AddPackage(p)
	return p, nil
}

func (p *UPW) Kind() string { return KindUPW }
func (p *UPW) Unit() int    { return p.unit }

// LayerTypes returns the per-layer laytyp codes.
func (p *UPW) LayerTypes() []int {
	out := make([]int, len(p.laytyp))
	copy(out, p.laytyp)
	return out
}
