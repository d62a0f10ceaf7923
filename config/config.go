// Package config carries the reader configuration record.
//
// The reader itself never consults the process environment; FromEnv is
// the convenience layer that maps the GML_* configuration options onto
// an explicit Options value.
package config

import (
	"os"
	"strings"
)

// Options configures a GML reader instance.
type Options struct {
	// FetchAllGeometries accumulates every geometry fragment found
	// inside a feature rather than only the first.
	FetchAllGeometries bool

	// AlwaysStringFields suppresses property type inference; all
	// newly added properties get type String.
	AlwaysStringFields bool

	// InvertAxisOrderIfLatLong swaps X/Y for coordinate systems
	// classified as latitude/longitude ordered when extents are
	// finalized after a prescan.
	InvertAxisOrderIfLatLong bool

	// ConsiderEPSGAsURN rewrites "EPSG:n" spatial reference
	// identifiers as "urn:ogc:def:crs:EPSG::n".
	ConsiderEPSGAsURN bool

	// PreferChunkedTokenizer selects the chunked low-allocation
	// tokenizer backend instead of the encoding/xml decoder.
	PreferChunkedTokenizer bool
}

// FromEnv returns Options populated from the GML_* environment
// variables:
//
//	GML_FETCH_ALL_GEOMETRIES
//	GML_FIELDTYPES (ALWAYS_STRING)
//	GML_INVERT_AXIS_ORDER_IF_LAT_LONG
//	GML_CONSIDER_EPSG_AS_URN
//	GML_USE_CHUNKED_TOKENIZER
func FromEnv() Options {
	return Options{
		FetchAllGeometries:       envBool("GML_FETCH_ALL_GEOMETRIES"),
		AlwaysStringFields:       strings.EqualFold(os.Getenv("GML_FIELDTYPES"), "ALWAYS_STRING"),
		InvertAxisOrderIfLatLong: envBool("GML_INVERT_AXIS_ORDER_IF_LAT_LONG"),
		ConsiderEPSGAsURN:        envBool("GML_CONSIDER_EPSG_AS_URN"),
		PreferChunkedTokenizer:   envBool("GML_USE_CHUNKED_TOKENIZER"),
	}
}

func envBool(name string) bool {
	switch strings.ToUpper(os.Getenv(name)) {
	case "YES", "TRUE", "ON", "1":
		return true
	}
	return false
}
