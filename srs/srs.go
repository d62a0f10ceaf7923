// Package srs carries the spatial reference system helpers used by the
// GML reader: EPSG identifier normalization, axis-order classification
// and WKT rendering for the extent finalization pass.
//
// Only the geographic coordinate systems the reader can classify are
// covered; everything else passes through untouched. Full CRS parsing
// belongs to the surrounding toolkit, not to the reader core.
package srs

import (
	"fmt"
	"strconv"
	"strings"
)

const urnEPSGPrefix = "urn:ogc:def:crs:EPSG::"

// NormalizeEPSG rewrites a plain "EPSG:n" identifier into its OGC URN
// form when asURN is set. Any other identifier is returned unchanged.
func NormalizeEPSG(name string, asURN bool) string {
	if asURN && strings.HasPrefix(name, "EPSG:") {
		return urnEPSGPrefix + name[len("EPSG:"):]
	}
	return name
}

// geographicCRS maps the EPSG geographic coordinate systems the reader
// classifies as latitude/longitude ordered to their datum description.
var geographicCRS = map[int]struct {
	name     string
	datum    string
	spheroid string
	semiMaj  float64
	invFlat  float64
}{
	4326: {"WGS 84", "WGS_1984", "WGS 84", 6378137, 298.257223563},
	4258: {"ETRS89", "European_Terrestrial_Reference_System_1989", "GRS 1980", 6378137, 298.257222101},
	4269: {"NAD83", "North_American_Datum_1983", "GRS 1980", 6378137, 298.257222101},
	4267: {"NAD27", "North_American_Datum_1927", "Clarke 1866", 6378206.4, 294.978698213898},
	4171: {"RGF93", "Reseau_Geodesique_Francais_1993", "GRS 1980", 6378137, 298.257222101},
	4283: {"GDA94", "Geocentric_Datum_of_Australia_1994", "GRS 1980", 6378137, 298.257222101},
}

// IsLatLongOrder reports whether the named coordinate reference system
// presents its axes in latitude/longitude order. Only the OGC URN form
// of the known EPSG geographic systems is classified; a plain "EPSG:n"
// identifier implies the legacy long/lat interpretation and returns
// false, as do unrecognized names.
func IsLatLongOrder(name string) bool {
	code, ok := epsgURNCode(name)
	if !ok {
		return false
	}
	_, ok = geographicCRS[code]
	return ok
}

// StripAxisWKT renders the named coordinate reference system as a
// GEOGCS WKT string without AXIS nodes, so that consumers interpret
// coordinates in long/lat order. ok is false when the system is not
// one the reader classifies.
func StripAxisWKT(name string) (string, bool) {
	code, ok := epsgURNCode(name)
	if !ok {
		return "", false
	}
	g, ok := geographicCRS[code]
	if !ok {
		return "", false
	}
	wkt := fmt.Sprintf(
		`GEOGCS["%s",DATUM["%s",SPHEROID["%s",%g,%g]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433],AUTHORITY["EPSG","%d"]]`,
		g.name, g.datum, g.spheroid, g.semiMaj, g.invFlat, code)
	return wkt, true
}

func epsgURNCode(name string) (int, bool) {
	if !strings.HasPrefix(name, urnEPSGPrefix) {
		return 0, false
	}
	code, err := strconv.Atoi(name[len(urnEPSGPrefix):])
	if err != nil {
		return 0, false
	}
	return code, true
}
