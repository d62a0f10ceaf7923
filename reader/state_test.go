package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osgeolabs/gmlreader/feature"
	"github.com/osgeolabs/gmlreader/schema"
)

func TestStateStack(t *testing.T) {
	ck := assert.New(t)
	st := newStateStack()
	ck.Nil(st.current())
	ck.Nil(st.pop())

	st.push(nil)
	ck.NotNil(st.current())
	ck.Nil(st.current().feat)

	f := feature.New(schema.NewFeatureClass("City"))
	st.push(f)
	ck.Equal(2, st.depth())
	ck.Same(f, st.current().feat)

	ck.Same(f, st.pop())
	ck.Equal(1, st.depth())
	ck.Nil(st.current().feat)
	ck.Nil(st.pop())
	ck.Equal(0, st.depth())
}

func TestFramePath(t *testing.T) {
	ck := assert.New(t)
	var f frame
	ck.Equal("", f.path())
	ck.Equal("", f.lastComponent())

	f.pushSegment("surface")
	f.pushSegment("type")
	ck.Equal("surface|type", f.path())
	ck.Equal(2, f.pathLength())
	ck.Equal("type", f.lastComponent())

	f.popSegment()
	ck.Equal("surface", f.path())
	f.popSegment()
	f.popSegment()
	ck.Equal(0, f.pathLength())
}
