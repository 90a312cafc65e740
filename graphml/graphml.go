// Package graphml parses GraphML road networks into a core.Graph.
//
// Only the subset the planner needs is read: an undirected <graph> whose
// nodes carry "lat" and "lng" double attributes and whose edges carry a
// non-negative "weight" attribute, all declared through the usual <key>
// elements. Numeric-looking node IDs are normalised to their canonical
// decimal form so identifiers referenced from the stop table compare
// consistently.
package graphml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/roundtour/roundtour/core"
)

// Sentinel errors for GraphML parsing.
var (
	// ErrMalformed indicates the document is not parseable GraphML of the
	// supported shape (undirected, well-formed values).
	ErrMalformed = errors.New("graphml: malformed document")

	// ErrMissingAttr indicates a node or edge lacks a required attribute
	// (lat/lng on nodes, weight on edges).
	ErrMissingAttr = errors.New("graphml: missing attribute")
)

// Attribute names resolved through <key> declarations.
const (
	attrLat    = "lat"
	attrLng    = "lng"
	attrWeight = "weight"
)

type xmlDocument struct {
	XMLName xml.Name   `xml:"graphml"`
	Keys    []xmlKey   `xml:"key"`
	Graphs  []xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
}

type xmlGraph struct {
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// Parse reads a GraphML document from r and builds the road graph.
//
// Errors: ErrMalformed for XML/shape problems (including a directed
// edgedefault), ErrMissingAttr naming the node or edge and the attribute,
// core.ErrNegativeWeight for negative edge weights.
func Parse(r io.Reader) (*core.Graph, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(doc.Graphs) == 0 {
		return nil, fmt.Errorf("%w: no <graph> element", ErrMalformed)
	}

	// The planner works on the first graph; GraphML allows several but the
	// road-network exports carry exactly one.
	gx := doc.Graphs[0]
	if strings.EqualFold(gx.EdgeDefault, "directed") {
		return nil, fmt.Errorf("%w: directed graphs are not supported", ErrMalformed)
	}

	keys := resolveKeys(doc.Keys)
	g := core.NewGraph()

	for _, n := range gx.Nodes {
		id := NormalizeID(n.ID)
		lat, ok := keys.lookup(n.Data, "node", attrLat)
		if !ok {
			return nil, fmt.Errorf("%w: node %q has no %s", ErrMissingAttr, n.ID, attrLat)
		}
		lng, ok := keys.lookup(n.Data, "node", attrLng)
		if !ok {
			return nil, fmt.Errorf("%w: node %q has no %s", ErrMissingAttr, n.ID, attrLng)
		}
		latV, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q %s=%q", ErrMalformed, n.ID, attrLat, lat)
		}
		lngV, err := strconv.ParseFloat(lng, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q %s=%q", ErrMalformed, n.ID, attrLng, lng)
		}
		if err = g.AddNode(id, orb.Point{lngV, latV}); err != nil {
			return nil, fmt.Errorf("graphml: node %q: %w", n.ID, err)
		}
	}

	for _, e := range gx.Edges {
		w, ok := keys.lookup(e.Data, "edge", attrWeight)
		if !ok {
			return nil, fmt.Errorf("%w: edge %q–%q has no %s", ErrMissingAttr, e.Source, e.Target, attrWeight)
		}
		wV, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %q–%q %s=%q", ErrMalformed, e.Source, e.Target, attrWeight, w)
		}
		if err = g.AddEdge(NormalizeID(e.Source), NormalizeID(e.Target), wV); err != nil {
			return nil, fmt.Errorf("graphml: edge %q–%q: %w", e.Source, e.Target, err)
		}
	}

	return g, nil
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphml: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// NormalizeID canonicalises a node identifier: IDs that parse as base-10
// integers are reformatted ("007" → "7", " 42" → "42"), everything else is
// returned trimmed but otherwise as-is. This mirrors the integer
// relabelling the upstream network export assumes.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if v, err := strconv.ParseInt(id, 10, 64); err == nil {
		return strconv.FormatInt(v, 10)
	}

	return id
}

// keyTable maps (element kind, attribute name) → key ID.
type keyTable map[string]string

func resolveKeys(keys []xmlKey) keyTable {
	kt := make(keyTable, len(keys))
	for _, k := range keys {
		// "all" keys apply to nodes and edges alike.
		if k.For == "all" || k.For == "" {
			kt["node/"+k.Name] = k.ID
			kt["edge/"+k.Name] = k.ID
			continue
		}
		kt[k.For+"/"+k.Name] = k.ID
	}

	return kt
}

// lookup finds the value of the named attribute among an element's <data>
// children. Unresolvable keys fall back to matching the attribute name
// directly, which tolerates exports that skip <key> declarations.
func (kt keyTable) lookup(data []xmlData, kind, name string) (string, bool) {
	keyID, declared := kt[kind+"/"+name]
	for _, d := range data {
		if (declared && d.Key == keyID) || (!declared && d.Key == name) {
			return strings.TrimSpace(d.Value), true
		}
	}

	return "", false
}
