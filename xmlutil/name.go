package xmlutil

import (
	"encoding/xml"
	"strings"
)

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// Local returns the local part of a possibly prefix-qualified name,
// i.e. "Point" for both "gml:Point" and "Point".
func Local(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// FindAttr returns the value of the first attribute whose local name
// matches any of locals, in attribute order. The namespace is ignored;
// GML producers are inconsistent about qualifying fid/gml:id and the
// reader matches on local names throughout.
func FindAttr(attrs []xml.Attr, locals ...string) (string, bool) {
	for _, a := range attrs {
		for _, l := range locals {
			if a.Name.Local == l {
				return a.Value, true
			}
		}
	}
	return "", false
}
