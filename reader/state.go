package reader

import (
	"strings"

	"github.com/osgeolabs/gmlreader/feature"
)

// frame is one read state: the feature being built (nil for the
// initial document level state) and the element path from the frame's
// root to the current element.
type frame struct {
	feat     *feature.Feature
	parent   int
	segments []string
}

func (f *frame) pushSegment(name string) { f.segments = append(f.segments, name) }

func (f *frame) popSegment() {
	if n := len(f.segments); n > 0 {
		f.segments = f.segments[:n-1]
	}
}

// path returns the "|"-joined element path of the frame.
func (f *frame) path() string { return strings.Join(f.segments, "|") }

func (f *frame) pathLength() int { return len(f.segments) }

func (f *frame) lastComponent() string {
	if n := len(f.segments); n > 0 {
		return f.segments[n-1]
	}
	return ""
}

// stateStack is an arena of frames; the top is an index and parents
// are referenced by index rather than pointer.
type stateStack struct {
	frames []frame
	top    int
}

func newStateStack() *stateStack { return &stateStack{top: -1} }

func (s *stateStack) push(feat *feature.Feature) {
	s.frames = append(s.frames, frame{feat: feat, parent: s.top})
	s.top = len(s.frames) - 1
}

// pop removes the top frame and returns its feature, which may be nil.
func (s *stateStack) pop() *feature.Feature {
	if s.top < 0 {
		return nil
	}
	f := s.frames[s.top].feat
	s.frames[s.top].feat = nil
	parent := s.frames[s.top].parent
	s.frames = s.frames[:s.top]
	s.top = parent
	return f
}

func (s *stateStack) current() *frame {
	if s.top < 0 {
		return nil
	}
	return &s.frames[s.top]
}

func (s *stateStack) depth() int { return len(s.frames) }
