package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osgeolabs/gmlreader/schema"
)

func TestFeatureProperties(t *testing.T) {
	ck := assert.New(t)
	class := schema.NewFeatureClass("City")
	f := New(class)
	ck.Same(class, f.Class())
	ck.Equal("", f.FID())

	f.SetFID("c.1")
	ck.Equal("c.1", f.FID())

	ck.Nil(f.Property(0))
	f.SetProperty(2, "x")
	ck.Nil(f.Property(0))
	ck.Nil(f.Property(1))
	ck.Equal(Value{"x"}, f.Property(2))

	// repeated occurrences append in order
	f.SetProperty(2, "y")
	ck.Equal(Value{"x", "y"}, f.Property(2))

	f.SetProperty(0, "first")
	ck.Equal(Value{"first"}, f.Property(0))

	f.SetProperty(-1, "ignored")
	ck.Nil(f.Property(-1))
}

func TestFeatureGeometries(t *testing.T) {
	ck := assert.New(t)
	f := New(schema.NewFeatureClass("Road"))
	ck.Empty(f.GeometryList())

	f.AddGeometry([]byte("<Point/>"))
	f.AddGeometry([]byte("<LineString/>"))
	frags := f.GeometryList()
	ck.Len(frags, 2)
	ck.Equal("<Point/>", string(frags[0]))
	ck.Equal("<LineString/>", string(frags[1]))
}
