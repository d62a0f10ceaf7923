package schema

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/osgeolabs/gmlreader/geom"
)

// FeatureClass is the schema entry for one feature type.
type FeatureClass struct {
	name        string
	elementName string
	properties  []*PropertyDefn

	schemaLocked bool
	featureCount int64

	geometryType geom.Type
	extents      *geom.Extent

	srsName           string
	srsNameConsistent bool
}

// NewFeatureClass returns a class for features matching the given
// element name. The feature count starts unknown (-1).
func NewFeatureClass(elementName string) *FeatureClass {
	return &FeatureClass{
		name:              elementName,
		elementName:       elementName,
		featureCount:      -1,
		srsNameConsistent: true,
	}
}

func (c *FeatureClass) Name() string { return c.name }

func (c *FeatureClass) ElementName() string { return c.elementName }

func (c *FeatureClass) PropertyCount() int { return len(c.properties) }

// Property returns the i'th property definition, or nil when out of
// range.
func (c *FeatureClass) Property(i int) *PropertyDefn {
	if i < 0 || i >= len(c.properties) {
		return nil
	}
	return c.properties[i]
}

// PropertyIndex returns the index of the property with the given field
// name, comparing case-insensitively, or -1.
func (c *FeatureClass) PropertyIndex(fieldName string) int {
	for i, p := range c.properties {
		if strings.EqualFold(p.Name(), fieldName) {
			return i
		}
	}
	return -1
}

// PropertyIndexBySrc returns the index of the property with the given
// source element path, compared exactly, or -1.
func (c *FeatureClass) PropertyIndexBySrc(srcElement string) int {
	for i, p := range c.properties {
		if p.SrcElement() == srcElement {
			return i
		}
	}
	return -1
}

// AddProperty appends a property definition, returning its index. The
// field name must not collide case-insensitively with an existing one.
func (c *FeatureClass) AddProperty(p *PropertyDefn) (int, error) {
	if c.PropertyIndex(p.Name()) >= 0 {
		return -1, errors.Errorf("class %s: duplicate property %q", c.name, p.Name())
	}
	c.properties = append(c.properties, p)
	return len(c.properties) - 1, nil
}

func (c *FeatureClass) IsSchemaLocked() bool { return c.schemaLocked }

func (c *FeatureClass) SetSchemaLocked(locked bool) { c.schemaLocked = locked }

// FeatureCount is -1 until established by a prescan.
func (c *FeatureClass) FeatureCount() int64 { return c.featureCount }

func (c *FeatureClass) SetFeatureCount(n int64) { c.featureCount = n }

func (c *FeatureClass) GeometryType() geom.Type { return c.geometryType }

func (c *FeatureClass) SetGeometryType(t geom.Type) { c.geometryType = t }

// Extents returns the aggregated envelope. ok is false until at least
// one non-empty geometry has been merged.
func (c *FeatureClass) Extents() (geom.Extent, bool) {
	if c.extents == nil {
		return geom.Extent{}, false
	}
	return *c.extents, true
}

func (c *FeatureClass) SetExtents(e geom.Extent) {
	ec := e
	c.extents = &ec
}

// MergeExtent folds an envelope into the class extents.
func (c *FeatureClass) MergeExtent(e geom.Extent) {
	if c.extents == nil {
		c.SetExtents(e)
		return
	}
	c.extents.Merge(e)
}

func (c *FeatureClass) SRSName() string { return c.srsName }

func (c *FeatureClass) SetSRSName(name string) {
	c.srsName = name
	c.srsNameConsistent = true
}

// MergeSRSName folds a per-feature spatial reference name into the
// class. Once two features disagree the class SRS becomes empty and
// stays empty.
func (c *FeatureClass) MergeSRSName(name string) {
	if !c.srsNameConsistent {
		return
	}
	if c.srsName == "" {
		c.srsName = name
		return
	}
	if name != c.srsName {
		c.srsNameConsistent = false
		c.srsName = ""
	}
}
