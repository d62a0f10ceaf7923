package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEPSG(t *testing.T) {
	for _, tc := range []struct {
		name  string
		asURN bool
		want  string
	}{
		{"EPSG:4326", true, "urn:ogc:def:crs:EPSG::4326"},
		{"EPSG:4326", false, "EPSG:4326"},
		{"urn:ogc:def:crs:EPSG::4326", true, "urn:ogc:def:crs:EPSG::4326"},
		{"CRS:84", true, "CRS:84"},
		{"", true, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.New(t).Equal(tc.want, NormalizeEPSG(tc.name, tc.asURN))
		})
	}
}

func TestIsLatLongOrder(t *testing.T) {
	ck := assert.New(t)
	ck.True(IsLatLongOrder("urn:ogc:def:crs:EPSG::4326"))
	ck.True(IsLatLongOrder("urn:ogc:def:crs:EPSG::4258"))
	// the legacy identifier form implies long/lat
	ck.False(IsLatLongOrder("EPSG:4326"))
	// projected system
	ck.False(IsLatLongOrder("urn:ogc:def:crs:EPSG::27700"))
	ck.False(IsLatLongOrder("urn:ogc:def:crs:EPSG::x"))
	ck.False(IsLatLongOrder(""))
}

func TestStripAxisWKT(t *testing.T) {
	ck := assert.New(t)

	wkt, ok := StripAxisWKT("urn:ogc:def:crs:EPSG::4326")
	ck.True(ok)
	ck.Contains(wkt, `GEOGCS["WGS 84"`)
	ck.Contains(wkt, `DATUM["WGS_1984"`)
	ck.Contains(wkt, `AUTHORITY["EPSG","4326"]`)
	ck.NotContains(wkt, "AXIS")

	_, ok = StripAxisWKT("urn:ogc:def:crs:EPSG::27700")
	ck.False(ok)
	_, ok = StripAxisWKT("EPSG:4326")
	ck.False(ok)
}
