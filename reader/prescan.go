package reader

import (
	"github.com/golang/glog"

	"github.com/osgeolabs/gmlreader/geom"
	"github.com/osgeolabs/gmlreader/srs"
)

// PrescanForSchema runs a full pass over the document to infer the
// feature classes, counting features per class and, when getExtents is
// set, aggregating geometry types, spatial references and envelopes.
// The registry is rebuilt from scratch; the parser is torn down
// afterwards. It reports whether any class was discovered.
func (r *Reader) PrescanForSchema(getExtents bool) (bool, error) {
	r.SetClassListLocked(false)
	r.ClearClasses()
	if err := r.SetupParser(); err != nil {
		return false, err
	}
	r.canUseGlobalSRSName = true

	for {
		f, err := r.NextFeature()
		if err != nil {
			r.CleanupParser()
			return false, err
		}
		if f == nil {
			break
		}

		class := f.Class()
		if n := class.FeatureCount(); n < 0 {
			class.SetFeatureCount(1)
		} else {
			class.SetFeatureCount(n + 1)
		}

		if !getExtents {
			continue
		}

		frags := f.GeometryList()
		g, err := geom.BuildFromFragments(frags, r.opts.InvertAxisOrderIfLatLong, r.opts.ConsiderEPSGAsURN)
		if err != nil {
			glog.V(1).Infof("prescan: ignoring geometry of a %s feature: %v", class.Name(), err)
			g = nil
		}

		if name := geom.ExtractSRSName(frags, r.opts.ConsiderEPSGAsURN); name != "" {
			// a per-feature SRS overrides the document one
			r.canUseGlobalSRSName = false
			class.MergeSRSName(name)
		}

		incoming := geom.None
		if g != nil {
			incoming = g.Type()
		}
		if class.FeatureCount() == 1 && class.GeometryType() == geom.Unknown {
			class.SetGeometryType(incoming)
		} else {
			class.SetGeometryType(geom.MergeTypes(class.GeometryType(), incoming))
		}
		if g != nil {
			if env, ok := g.Envelope(); ok {
				class.MergeExtent(env)
			}
		}
	}

	if getExtents {
		r.finalizeAxisOrder()
	}
	r.CleanupParser()
	return r.ClassCount() > 0, nil
}

// finalizeAxisOrder rewrites class spatial references and swaps stored
// extents for latitude/longitude ordered systems when the axis
// inversion policy is on and every feature shared the document SRS.
func (r *Reader) finalizeAxisOrder() {
	if !r.opts.InvertAxisOrderIfLatLong || !r.canUseGlobalSRSName {
		return
	}
	for _, c := range r.classes {
		name := c.SRSName()
		if name == "" {
			name = r.globalSRSName
		}
		if !srs.IsLatLongOrder(name) {
			continue
		}
		wkt, ok := srs.StripAxisWKT(name)
		if !ok {
			continue
		}
		c.SetSRSName(wkt)
		if ext, hasExt := c.Extents(); hasExt {
			c.SetExtents(ext.Swapped())
		}
	}
}
