// Package feature holds the in-memory feature record produced by the
// GML reader: a class reference, an optional feature id, the ordered
// property values and the raw geometry fragments snipped out of the
// document.
package feature

import "github.com/osgeolabs/gmlreader/schema"

// Value is the ordered occurrence list of one property within a
// feature. Most properties hold a single occurrence; repeated source
// elements append, which is what promotes the property to a list type
// during inference.
type Value []string

// Feature is a single GML feature under construction or completed.
type Feature struct {
	class  *schema.FeatureClass
	fid    string
	values []Value
	geoms  [][]byte
}

// New returns a feature of the given class.
func New(class *schema.FeatureClass) *Feature {
	return &Feature{class: class}
}

func (f *Feature) Class() *schema.FeatureClass { return f.class }

func (f *Feature) FID() string { return f.fid }

func (f *Feature) SetFID(fid string) { f.fid = fid }

// Property returns the value slot for property index i. A nil Value
// represents null.
func (f *Feature) Property(i int) Value {
	if i < 0 || i >= len(f.values) {
		return nil
	}
	return f.values[i]
}

// SetProperty appends an occurrence of the property at slot i, growing
// the slot vector as needed.
func (f *Feature) SetProperty(i int, value string) {
	if i < 0 {
		return
	}
	for len(f.values) <= i {
		f.values = append(f.values, nil)
	}
	f.values[i] = append(f.values[i], value)
}

// AddGeometry appends a raw geometry sub-tree. Order is preserved.
func (f *Feature) AddGeometry(fragment []byte) {
	f.geoms = append(f.geoms, fragment)
}

// GeometryList returns the accumulated raw geometry fragments in
// document order.
func (f *Feature) GeometryList() [][]byte { return f.geoms }
