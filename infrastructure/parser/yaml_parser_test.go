package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portalFrame = `
project_type: FRAME_2D
materials:
  - name: S235
    type: STEEL
    e: 210000000000
    nu: 0.3
    re: 235000000
sections:
  - name: IPE200
    material: S235
    iy: 0.00001943
supports:
  - name: PIN
    dof: "111000"
nodes:
  - {number: 1, x: 0, y: 0, support: PIN}
  - {number: 2, x: 0, y: 4}
  - {number: 3, x: 6, y: 4}
  - {number: 4, x: 6, y: 0, support: PIN}
bars:
  - {number: 1, start: 1, end: 2, section: IPE200, material: S235}
  - {number: 2, start: 2, end: 3, section: IPE200}
  - {number: 3, start: 3, end: 4, section: IPE200}
cases:
  - {number: 1, name: Dead, nature: PERM, analysis: LINEAR}
  - {number: 2, name: Snow, nature: SNOW, analysis: LINEAR}
  - number: 3
    name: ULS
    nature: PERM
    analysis: COMB_LINEAR
    combination_type: ULS
    factors:
      - {case: 1, factor: 1.35}
      - {case: 2, factor: 1.5}
`

func TestYamlModelLoader_Load(t *testing.T) {
	m, err := NewYamlModelLoader().Load([]byte(portalFrame))
	require.NoError(t, err)

	assert.Equal(t, "FRAME_2D", m.ProjectType)
	assert.Len(t, m.Nodes, 4)
	assert.Equal(t, "PIN", m.Nodes[3].Support)
	assert.Len(t, m.Bars, 3)
	assert.Equal(t, 3, m.Bars[2].Start)
	require.Len(t, m.Cases, 3)
	assert.Equal(t, "ULS", m.Cases[2].CombinationType)
	assert.InDelta(t, 1.5, m.Cases[2].Factors[1].Factor, 1e-12)
	assert.InDelta(t, 235e6, m.Materials[0].RE, 1)
}

func TestYamlModelLoader_Empty(t *testing.T) {
	m, err := NewYamlModelLoader().Load(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Nodes)
}

func TestYamlModelLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "nodes: [", "failed to parse model"},
		{"unknown key", "colour: red", "field colour not found"},
		{"non-positive number", "nodes: [{number: 0}]", "validation failed"},
		{"bar on one node", "nodes: [{number: 1}]\nbars: [{number: 1, start: 1, end: 1}]", "validation failed"},
		{"bad dof", "supports: [{name: P, dof: '11'}]", "validation failed"},
		{"duplicate node", "nodes: [{number: 1}, {number: 1}]", "node 1 defined twice"},
		{"unknown node", "nodes: [{number: 1}]\nbars: [{number: 1, start: 1, end: 2}]", "unknown node"},
		{"unknown support", "nodes: [{number: 1, support: FIX}]", `unknown support "FIX"`},
		{"unknown section", "nodes: [{number: 1}, {number: 2}]\nbars: [{number: 1, start: 1, end: 2, section: X}]", `unknown section "X"`},
		{"unknown factor case", "cases: [{number: 1, name: C, nature: PERM, analysis: COMB_LINEAR, factors: [{case: 7, factor: 1}]}]", "invalid factor case 7"},
		{"missing nature", "cases: [{number: 1, name: C, analysis: LINEAR}]", "validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYamlModelLoader().Load([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestYamlModelLoader_LenientFields(t *testing.T) {
	m, err := NewYamlModelLoader(WithStrictFields(false)).Load([]byte("colour: red\nproject_type: SHELL"))
	require.NoError(t, err)
	assert.Equal(t, "SHELL", m.ProjectType)
}
