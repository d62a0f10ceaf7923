// Package geom builds geometries from the raw GML sub-trees the
// reader snips out of each feature, and carries the geometry type
// lattice used for per-class aggregation.
package geom

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/osgeolabs/gmlreader/srs"
)

// Queries are compiled once; fragments are parsed per feature.
var (
	srsNameQuery = xpath.MustCompile("descendant-or-self::*[@srsName]")
	coordQuery   = xpath.MustCompile(
		"descendant-or-self::*[self::pos or self::posList or self::lowerCorner or self::upperCorner or self::coordinates or self::coord]")
)

// Geometry is the result of folding one feature's geometry fragments.
// It exposes just what schema aggregation needs: the flat type, the
// envelope and emptiness.
type Geometry struct {
	typ     Type
	srsName string
	env     Extent
	nPoints int
}

func (g *Geometry) Type() Type { return g.typ }

func (g *Geometry) IsEmpty() bool { return g.nPoints == 0 }

// Envelope returns the bounding extent. ok is false for an empty
// geometry.
func (g *Geometry) Envelope() (Extent, bool) {
	if g.nPoints == 0 {
		return Extent{}, false
	}
	return g.env, true
}

func (g *Geometry) SRSName() string { return g.srsName }

// BuildFromFragments folds an ordered list of raw GML geometry
// sub-trees into a single Geometry. A nil Geometry with a nil error is
// returned when there is nothing to build. When invertAxisIfLatLong is
// set and a fragment names a latitude/longitude ordered system, the
// coordinate axes are exchanged while folding.
func BuildFromFragments(frags [][]byte, invertAxisIfLatLong, epsgAsURN bool) (*Geometry, error) {
	if len(frags) == 0 {
		return nil, nil
	}

	g := &Geometry{}
	nRoots := 0
	for _, frag := range frags {
		doc, err := xmlquery.Parse(bytes.NewReader(frag))
		if err != nil {
			return nil, errors.Wrap(err, "parsing geometry fragment")
		}
		root := firstElement(doc)
		if root == nil {
			continue
		}

		nRoots++
		if nRoots == 1 {
			g.typ = TypeForElement(root.Data)
		} else {
			// more than one fragment makes a collection
			g.typ = GeometryCollection
		}

		name := fragmentSRSName(root, epsgAsURN)
		if g.srsName == "" {
			g.srsName = name
		}
		invert := invertAxisIfLatLong && srs.IsLatLongOrder(name)

		for _, pt := range collectPoints(root) {
			x, y := pt[0], pt[1]
			if invert {
				x, y = y, x
			}
			if g.nPoints == 0 {
				g.env = Extent{MinX: x, MaxX: x, MinY: y, MaxY: y}
			} else {
				g.env.MergePoint(x, y)
			}
			g.nPoints++
		}
	}
	return g, nil
}

// ExtractSRSName returns the first srsName attribute found in the
// fragments, normalized per the EPSG URN policy, or "".
func ExtractSRSName(frags [][]byte, epsgAsURN bool) string {
	for _, frag := range frags {
		doc, err := xmlquery.Parse(bytes.NewReader(frag))
		if err != nil {
			continue
		}
		if name := fragmentSRSName(firstElement(doc), epsgAsURN); name != "" {
			return name
		}
	}
	return ""
}

func fragmentSRSName(root *xmlquery.Node, epsgAsURN bool) string {
	if root == nil {
		return ""
	}
	n := xmlquery.QuerySelector(root, srsNameQuery)
	if n == nil {
		return ""
	}
	return srs.NormalizeEPSG(n.SelectAttr("srsName"), epsgAsURN)
}

func firstElement(doc *xmlquery.Node) *xmlquery.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

// collectPoints gathers the coordinate tuples below a geometry root in
// document order, covering the GML 2 and GML 3 encodings.
func collectPoints(root *xmlquery.Node) [][2]float64 {
	var pts [][2]float64
	for _, n := range xmlquery.QuerySelectorAll(root, coordQuery) {
		switch n.Data {
		case "pos", "posList", "lowerCorner", "upperCorner":
			pts = append(pts, parsePosList(n)...)
		case "coordinates":
			pts = append(pts, parseCoordinates(n.InnerText())...)
		case "coord":
			if pt, ok := parseCoord(n); ok {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}

func parsePosList(n *xmlquery.Node) [][2]float64 {
	dim := 2
	if v := n.SelectAttr("srsDimension"); v != "" {
		if d, err := strconv.Atoi(v); err == nil && d >= 2 {
			dim = d
		}
	}
	fields := strings.Fields(n.InnerText())
	var pts [][2]float64
	for i := 0; i+1 < len(fields); i += dim {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, [2]float64{x, y})
	}
	return pts
}

// parseCoordinates handles the GML 2 coordinates encoding: tuples
// separated by whitespace, components separated by commas.
func parseCoordinates(text string) [][2]float64 {
	var pts [][2]float64
	for _, tuple := range strings.Fields(text) {
		parts := strings.Split(tuple, ",")
		if len(parts) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(parts[0], 64)
		y, errY := strconv.ParseFloat(parts[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, [2]float64{x, y})
	}
	return pts
}

func parseCoord(n *xmlquery.Node) ([2]float64, bool) {
	xn := n.SelectElement("X")
	yn := n.SelectElement("Y")
	if xn == nil || yn == nil {
		return [2]float64{}, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xn.InnerText()), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(yn.InnerText()), 64)
	if errX != nil || errY != nil {
		return [2]float64{}, false
	}
	return [2]float64{x, y}, true
}
