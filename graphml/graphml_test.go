package graphml_test

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/roundtour/roundtour/core"
	"github.com/roundtour/roundtour/graphml"
)

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <key id="d0" for="node" attr.name="lat" attr.type="double"/>
  <key id="d1" for="node" attr.name="lng" attr.type="double"/>
  <key id="d2" for="edge" attr.name="weight" attr.type="double"/>
  <graph edgedefault="undirected">
    <node id="007">
      <data key="d0">-36.85</data>
      <data key="d1">174.76</data>
    </node>
    <node id="12">
      <data key="d0">-36.90</data>
      <data key="d1">174.80</data>
    </node>
    <node id="Airport">
      <data key="d0">-37.00</data>
      <data key="d1">174.79</data>
    </node>
    <edge source="007" target="12">
      <data key="d2">120.5</data>
    </edge>
    <edge source="12" target="Airport">
      <data key="d2">300</data>
    </edge>
  </graph>
</graphml>`

func TestParse(t *testing.T) {
	g, err := graphml.Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	// Numeric-looking IDs are normalised; names stay as-is.
	require.Equal(t, []string{"12", "7", "Airport"}, g.Nodes())

	n, err := g.Node("7")
	require.NoError(t, err)
	require.Equal(t, orb.Point{174.76, -36.85}, n.Loc)

	w, err := g.Weight("7", "12")
	require.NoError(t, err)
	require.Equal(t, 120.5, w)

	w, err = g.Weight("Airport", "12")
	require.NoError(t, err)
	require.Equal(t, 300.0, w)
}

func TestParse_DirectedRejected(t *testing.T) {
	doc := strings.Replace(fixture, `edgedefault="undirected"`, `edgedefault="directed"`, 1)
	_, err := graphml.Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, graphml.ErrMalformed)
}

func TestParse_MissingWeight(t *testing.T) {
	doc := strings.Replace(fixture, `<data key="d2">120.5</data>`, ``, 1)
	_, err := graphml.Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, graphml.ErrMissingAttr)
	require.ErrorContains(t, err, "weight")
}

func TestParse_MissingCoordinate(t *testing.T) {
	doc := strings.Replace(fixture, `<data key="d1">174.76</data>`, ``, 1)
	_, err := graphml.Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, graphml.ErrMissingAttr)
	require.ErrorContains(t, err, `"007"`)
}

func TestParse_NegativeWeight(t *testing.T) {
	doc := strings.Replace(fixture, `<data key="d2">120.5</data>`, `<data key="d2">-1</data>`, 1)
	_, err := graphml.Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestParse_NotXML(t *testing.T) {
	_, err := graphml.Parse(strings.NewReader("not xml at all"))
	require.ErrorIs(t, err, graphml.ErrMalformed)
}

func TestParse_NoGraphElement(t *testing.T) {
	_, err := graphml.Parse(strings.NewReader(`<graphml></graphml>`))
	require.ErrorIs(t, err, graphml.ErrMalformed)
}

func TestNormalizeID(t *testing.T) {
	cases := map[string]string{
		"007":      "7",
		" 42 ":     "42",
		"-3":       "-3",
		"Airport":  "Airport",
		"12b":      "12b",
		"3.5":      "3.5",
		"Mt Eden ": "Mt Eden",
	}
	for in, want := range cases {
		require.Equal(t, want, graphml.NormalizeID(in), "NormalizeID(%q)", in)
	}
}
