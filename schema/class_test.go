package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osgeolabs/gmlreader/geom"
)

func TestAddProperty(t *testing.T) {
	ck := assert.New(t)
	c := NewFeatureClass("City")
	ck.Equal(int64(-1), c.FeatureCount())

	i, err := c.AddProperty(NewPropertyDefn("name", "name"))
	ck.NoError(err)
	ck.Equal(0, i)

	// field names collide case-insensitively
	_, err = c.AddProperty(NewPropertyDefn("NAME", "other|name"))
	ck.Error(err)

	i, err = c.AddProperty(NewPropertyDefn("surface|name", "surface|name"))
	ck.NoError(err)
	ck.Equal(1, i)

	ck.Equal(0, c.PropertyIndex("Name"))
	ck.Equal(-1, c.PropertyIndex("missing"))
	ck.Equal(1, c.PropertyIndexBySrc("surface|name"))
	// src element comparison is exact
	ck.Equal(-1, c.PropertyIndexBySrc("Surface|name"))
	ck.Nil(c.Property(5))
}

func TestMergeSRSName(t *testing.T) {
	ck := assert.New(t)
	c := NewFeatureClass("Road")
	c.MergeSRSName("EPSG:27700")
	ck.Equal("EPSG:27700", c.SRSName())

	c.MergeSRSName("EPSG:27700")
	ck.Equal("EPSG:27700", c.SRSName())

	// disagreement clears the name for good
	c.MergeSRSName("EPSG:2154")
	ck.Equal("", c.SRSName())
	c.MergeSRSName("EPSG:2154")
	ck.Equal("", c.SRSName())
}

func TestMergeExtent(t *testing.T) {
	ck := assert.New(t)
	c := NewFeatureClass("Lake")
	_, ok := c.Extents()
	ck.False(ok)

	c.MergeExtent(geom.Extent{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1})
	c.MergeExtent(geom.Extent{MinX: -2, MaxX: 0.5, MinY: 0.5, MaxY: 3})
	ext, ok := c.Extents()
	ck.True(ok)
	ck.Equal(geom.Extent{MinX: -2, MaxX: 1, MinY: 0, MaxY: 3}, ext)
}
