package xmlutil

import (
	"encoding/xml"
	"strings"
)

// EscapeText returns s with XML character data escaping applied.
func EscapeText(s string) string {
	var b strings.Builder
	// xml.EscapeText on a strings.Builder cannot fail
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// StartTag renders a start tag for the given local name and attributes.
// Attribute values are escaped; attribute names are emitted with their
// original prefix when the parser preserved one.
func StartTag(local string, attrs []xml.Attr) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(local)
	for _, a := range attrs {
		b.WriteByte(' ')
		if a.Name.Space != "" && !strings.Contains(a.Name.Space, "/") {
			// a literal prefix rather than a resolved namespace URI
			b.WriteString(a.Name.Space)
			b.WriteByte(':')
		}
		b.WriteString(a.Name.Local)
		b.WriteString(`="`)
		_ = xml.EscapeText(&b, []byte(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// EndTag renders an end tag for the given local name.
func EndTag(local string) string {
	return "</" + local + ">"
}
