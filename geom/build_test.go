package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFromFragments(t *testing.T) {
	ck := assert.New(t)

	g, err := BuildFromFragments(nil, false, false)
	ck.NoError(err)
	ck.Nil(g)

	g, err = BuildFromFragments([][]byte{
		[]byte(`<LineString><posList>0 0 10 5 -2 3</posList></LineString>`),
	}, false, false)
	ck.NoError(err)
	ck.Equal(LineString, g.Type())
	ck.False(g.IsEmpty())
	env, ok := g.Envelope()
	ck.True(ok)
	ck.Equal(Extent{MinX: -2, MaxX: 10, MinY: 0, MaxY: 5}, env)
}

func TestBuildCoordinateForms(t *testing.T) {
	for _, tc := range []struct {
		name string
		frag string
		typ  Type
		env  Extent
	}{
		{
			name: "pos",
			frag: `<Point><pos>5 7</pos></Point>`,
			typ:  Point,
			env:  Extent{MinX: 5, MaxX: 5, MinY: 7, MaxY: 7},
		},
		{
			name: "coordinates",
			frag: `<Polygon><outerBoundaryIs><LinearRing><coordinates>0,0 4,0 4,3 0,3</coordinates></LinearRing></outerBoundaryIs></Polygon>`,
			typ:  Polygon,
			env:  Extent{MinX: 0, MaxX: 4, MinY: 0, MaxY: 3},
		},
		{
			name: "coord",
			frag: `<Box><coord><X>1</X><Y>2</Y></coord><coord><X>3</X><Y>4</Y></coord></Box>`,
			typ:  Polygon,
			env:  Extent{MinX: 1, MaxX: 3, MinY: 2, MaxY: 4},
		},
		{
			name: "posList with srsDimension",
			frag: `<LineString><posList srsDimension="3">0 0 100 1 2 200</posList></LineString>`,
			typ:  LineString,
			env:  Extent{MinX: 0, MaxX: 1, MinY: 0, MaxY: 2},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ck := assert.New(t)
			g, err := BuildFromFragments([][]byte{[]byte(tc.frag)}, false, false)
			ck.NoError(err)
			ck.Equal(tc.typ, g.Type())
			env, ok := g.Envelope()
			ck.True(ok)
			ck.Equal(tc.env, env)
		})
	}
}

func TestBuildMultipleFragmentsMakeCollection(t *testing.T) {
	ck := assert.New(t)
	g, err := BuildFromFragments([][]byte{
		[]byte(`<Point><pos>1 1</pos></Point>`),
		[]byte(`<Point><pos>2 2</pos></Point>`),
	}, false, false)
	ck.NoError(err)
	ck.Equal(GeometryCollection, g.Type())
	env, ok := g.Envelope()
	ck.True(ok)
	ck.Equal(Extent{MinX: 1, MaxX: 2, MinY: 1, MaxY: 2}, env)
}

func TestBuildAxisInversion(t *testing.T) {
	ck := assert.New(t)
	frag := []byte(`<Point srsName="urn:ogc:def:crs:EPSG::4326"><pos>51.5 -0.1</pos></Point>`)

	g, err := BuildFromFragments([][]byte{frag}, true, false)
	ck.NoError(err)
	env, ok := g.Envelope()
	ck.True(ok)
	ck.Equal(Extent{MinX: -0.1, MaxX: -0.1, MinY: 51.5, MaxY: 51.5}, env)

	// without the policy the document order stands
	g, err = BuildFromFragments([][]byte{frag}, false, false)
	ck.NoError(err)
	env, _ = g.Envelope()
	ck.Equal(Extent{MinX: 51.5, MaxX: 51.5, MinY: -0.1, MaxY: -0.1}, env)
}

func TestExtractSRSName(t *testing.T) {
	ck := assert.New(t)
	frags := [][]byte{
		[]byte(`<Point><pos>1 1</pos></Point>`),
		[]byte(`<LineString srsName="EPSG:4326"><posList>0 0 1 1</posList></LineString>`),
	}
	ck.Equal("EPSG:4326", ExtractSRSName(frags, false))
	ck.Equal("urn:ogc:def:crs:EPSG::4326", ExtractSRSName(frags, true))
	ck.Equal("", ExtractSRSName(nil, false))
}

func TestBuildEmptyGeometry(t *testing.T) {
	ck := assert.New(t)
	g, err := BuildFromFragments([][]byte{[]byte(`<Point/>`)}, false, false)
	ck.NoError(err)
	ck.Equal(Point, g.Type())
	ck.True(g.IsEmpty())
	_, ok := g.Envelope()
	ck.False(ok)
}
