package reader

import (
	"encoding/xml"
	"strings"

	"github.com/osgeolabs/gmlreader/feature"
	"github.com/osgeolabs/gmlreader/geom"
	"github.com/osgeolabs/gmlreader/xmlutil"
)

// handler is the per-parse push state fed by a tokenDriver. It routes
// each XML event through a small hierarchy of modes: geometry capture,
// CityGML generic-attribute capture, then the ordinary frame/path
// machinery.
type handler struct {
	r  *Reader
	st *stateStack

	// geometry capture. geomDepth counts open elements inside the
	// geometry sub-tree; the raw markup is re-serialized into geomBuf.
	geomDepth int
	geomBuf   strings.Builder

	// attribute capture. curField is the "|"-joined path of the
	// element whose character data charBuf is collecting.
	curField string
	charBuf  strings.Builder

	// CityGML generic attribute capture. cityGMLSrc holds the value
	// of the name attribute while inside the subtree.
	cityGMLDepth int
	cityGMLSrc   string
}

func newHandler(r *Reader) *handler {
	h := &handler{r: r, st: newStateStack()}
	h.st.push(nil)
	return h
}

func (h *handler) startElement(name xml.Name, attrs []xml.Attr) {
	local := name.Local

	if h.geomDepth > 0 {
		h.geomBuf.WriteString(xmlutil.StartTag(local, attrs))
		h.geomDepth++
		return
	}

	if h.cityGMLDepth > 0 {
		if local == "value" {
			h.curField = h.cityGMLSrc
			h.charBuf.Reset()
		}
		h.cityGMLDepth++
		return
	}

	cur := h.st.current()

	if h.r.isFeatureElement(local, cur.lastComponent()) {
		if class := h.r.classForElement(local); class != nil {
			f := feature.New(class)
			if fid, ok := xmlutil.FindAttr(attrs, "fid", "id"); ok {
				f.SetFID(fid)
			}
			h.st.push(f)
			h.curField = ""
			return
		}
	}

	if cur.feat != nil && geom.IsGeometryElement(local) {
		h.geomDepth = 1
		h.geomBuf.Reset()
		h.geomBuf.WriteString(xmlutil.StartTag(local, attrs))
		h.curField = ""
		return
	}

	if cur.feat != nil && isCityGMLAttribute(local) {
		if src, ok := xmlutil.FindAttr(attrs, "name"); ok && src != "" {
			h.cityGMLDepth = 1
			h.cityGMLSrc = src
			h.curField = ""
			return
		}
	}

	cur.pushSegment(local)
	if cur.feat != nil {
		// candidate attribute element; a nested start overwrites
		// this so only the innermost text-bearing element wins
		h.curField = cur.path()
		h.charBuf.Reset()
	}
}

func (h *handler) endElement(name xml.Name) {
	local := name.Local

	if h.geomDepth > 0 {
		h.geomBuf.WriteString(xmlutil.EndTag(local))
		h.geomDepth--
		if h.geomDepth == 0 {
			h.finishGeometry()
		}
		return
	}

	if h.cityGMLDepth > 0 {
		h.cityGMLDepth--
		if local == "value" && h.curField != "" {
			if cur := h.st.current(); cur != nil && cur.feat != nil {
				h.r.setFeatureProperty(cur.feat, h.curField, strings.TrimSpace(h.charBuf.String()))
			}
			h.curField = ""
		}
		if h.cityGMLDepth == 0 {
			h.cityGMLSrc = ""
		}
		return
	}

	cur := h.st.current()
	if cur == nil {
		return
	}
	if cur.pathLength() == 0 {
		h.r.featureDone(h.st.pop())
		h.curField = ""
		return
	}
	if h.curField != "" && cur.feat != nil && h.curField == cur.path() {
		h.r.setFeatureProperty(cur.feat, h.curField, strings.TrimSpace(h.charBuf.String()))
		h.curField = ""
	}
	cur.popSegment()
}

func (h *handler) characters(data []byte) {
	if h.geomDepth > 0 {
		h.geomBuf.WriteString(xmlutil.EscapeText(string(data)))
		return
	}
	if h.curField != "" {
		h.charBuf.Write(data)
	}
}

func (h *handler) finishGeometry() {
	cur := h.st.current()
	if cur != nil && cur.feat != nil {
		if h.r.opts.FetchAllGeometries || len(cur.feat.GeometryList()) == 0 {
			cur.feat.AddGeometry([]byte(h.geomBuf.String()))
		}
	}
	h.geomBuf.Reset()
}

func isCityGMLAttribute(local string) bool {
	switch local {
	case "stringAttribute", "intAttribute", "doubleAttribute":
		return true
	}
	return false
}
