package geom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTypes(t *testing.T) {
	for _, tc := range []struct {
		a, b, want Type
	}{
		{Point, Point, Point},
		{Unknown, Point, Unknown},
		{Point, Unknown, Unknown},
		{None, Polygon, Polygon},
		{Polygon, None, Polygon},
		{None, None, None},
		{Point, MultiPoint, MultiPoint},
		{MultiLineString, LineString, MultiLineString},
		{Polygon, MultiPolygon, MultiPolygon},
		{Point, LineString, Unknown},
		{MultiPoint, MultiPolygon, Unknown},
	} {
		t.Run(fmt.Sprintf("%s+%s", tc.a, tc.b), func(t *testing.T) {
			assert.New(t).Equal(tc.want, MergeTypes(tc.a, tc.b))
		})
	}
}

func TestTypeForElement(t *testing.T) {
	ck := assert.New(t)
	ck.True(IsGeometryElement("Point"))
	ck.True(IsGeometryElement("MultiSurface"))
	ck.True(IsGeometryElement("Envelope"))
	ck.False(IsGeometryElement("name"))
	ck.False(IsGeometryElement("point"))

	ck.Equal(Point, TypeForElement("Point"))
	ck.Equal(Polygon, TypeForElement("Surface"))
	ck.Equal(MultiPolygon, TypeForElement("MultiSurface"))
	ck.Equal(Unknown, TypeForElement("name"))
}

func TestExtentMerge(t *testing.T) {
	ck := assert.New(t)
	e := Extent{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	e.Merge(Extent{MinX: -1, MaxX: 0.5, MinY: 0.5, MaxY: 2})
	ck.Equal(Extent{MinX: -1, MaxX: 1, MinY: 0, MaxY: 2}, e)

	e.MergePoint(5, -3)
	ck.Equal(Extent{MinX: -1, MaxX: 5, MinY: -3, MaxY: 2}, e)

	ck.Equal(Extent{MinX: -3, MaxX: 2, MinY: -1, MaxY: 5}, e.Swapped())
}
