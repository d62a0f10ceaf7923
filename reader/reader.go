package reader

import (
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/osgeolabs/gmlreader/config"
	"github.com/osgeolabs/gmlreader/feature"
	"github.com/osgeolabs/gmlreader/gmlerr"
	"github.com/osgeolabs/gmlreader/schema"
	"github.com/osgeolabs/gmlreader/srs"
)

// Reader pulls GML features out of a document in document order. It is
// not safe for concurrent use; one Reader corresponds to one parse
// cursor.
type Reader struct {
	opts config.Options

	sourcePath   string
	sourceReader io.Reader
	file         *os.File

	driver tokenDriver
	h      *handler

	classes         []*schema.FeatureClass
	classListLocked bool

	filterClass   string
	globalSRSName string

	pending []*feature.Feature
	atEOF   bool
	stopErr error

	readStarted         bool
	canUseGlobalSRSName bool
}

// New returns a reader with the given options. Attach an input with
// SetSource or SetSourceReader before reading.
func New(opts config.Options) *Reader {
	return &Reader{opts: opts}
}

// SetSource stores the path of the document to read. The file is not
// opened until parsing begins.
func (r *Reader) SetSource(path string) {
	r.sourcePath = path
	r.sourceReader = nil
}

// SetSourceReader attaches a stream as the document source. Restarting
// the parse requires the stream to implement io.Seeker.
func (r *Reader) SetSourceReader(src io.Reader) {
	r.sourceReader = src
	r.sourcePath = ""
}

// SetupParser opens the source, rewinds it and attaches a fresh
// tokenizer and handler. Any previous parse state is discarded.
func (r *Reader) SetupParser() error {
	r.CleanupParser()

	src, err := r.openSource()
	if err != nil {
		return err
	}
	r.h = newHandler(r)
	if r.opts.PreferChunkedTokenizer {
		r.driver = &chunkDriver{}
	} else {
		r.driver = &decoderDriver{}
	}
	r.driver.Setup(newChunkedSource(src), r.h)
	r.readStarted = true
	return nil
}

func (r *Reader) openSource() (io.Reader, error) {
	if r.sourcePath != "" {
		f, err := os.Open(r.sourcePath)
		if err != nil {
			return nil, errors.WithStack(gmlerr.OpenFailed(r.sourcePath,
				gmlerr.WithMessage(err.Error())))
		}
		r.file = f
		return f, nil
	}
	if r.sourceReader == nil {
		return nil, errors.WithStack(gmlerr.OpenFailed("",
			gmlerr.WithMessage("no source attached")))
	}
	if s, ok := r.sourceReader.(io.Seeker); ok && r.readStarted {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return nil, errors.Wrap(err, "rewinding source")
		}
	}
	return r.sourceReader, nil
}

// NextFeature returns the next feature in document order, or (nil,
// nil) at end of input. The first tokenizer error is returned once and
// then latched: later calls return no feature without consuming more
// input, until CleanupParser or ResetReading.
func (r *Reader) NextFeature() (*feature.Feature, error) {
	if r.stopErr != nil {
		return nil, nil
	}
	if r.h == nil {
		if err := r.SetupParser(); err != nil {
			return nil, err
		}
	}
	for {
		if len(r.pending) > 0 {
			f := r.pending[0]
			r.pending[0] = nil
			r.pending = r.pending[1:]
			return f, nil
		}
		if r.atEOF {
			return nil, nil
		}
		if err := r.driver.ParseNext(); err != nil {
			if err == io.EOF {
				r.atEOF = true
				continue
			}
			r.stopErr = err
			return nil, err
		}
	}
}

// CleanupParser releases the tokenizer, the read-state stack and any
// queued features. It is idempotent.
func (r *Reader) CleanupParser() {
	if r.driver != nil {
		_ = r.driver.Close()
		r.driver = nil
	}
	r.h = nil
	r.pending = nil
	r.atEOF = false
	r.stopErr = nil
	if r.file != nil {
		_ = r.file.Close()
		r.file = nil
	}
}

// ResetReading tears down the parser and clears the class filter; the
// next NextFeature call restarts from the beginning of the source.
func (r *Reader) ResetReading() {
	r.CleanupParser()
	r.filterClass = ""
}

func (r *Reader) ClassCount() int { return len(r.classes) }

// Class returns the i'th registered class, or nil when out of range.
func (r *Reader) Class(i int) *schema.FeatureClass {
	if i < 0 || i >= len(r.classes) {
		return nil
	}
	return r.classes[i]
}

// ClassByName returns the class with the given name, compared
// case-insensitively, or nil.
func (r *Reader) ClassByName(name string) *schema.FeatureClass {
	for _, c := range r.classes {
		if strings.EqualFold(c.Name(), name) {
			return c
		}
	}
	return nil
}

// AddClass registers a class and returns its index. Registering a
// duplicate name is a programming error and panics.
func (r *Reader) AddClass(c *schema.FeatureClass) int {
	if r.ClassByName(c.Name()) != nil {
		panic("reader: duplicate feature class " + c.Name())
	}
	r.classes = append(r.classes, c)
	return len(r.classes) - 1
}

func (r *Reader) ClearClasses() { r.classes = nil }

func (r *Reader) IsClassListLocked() bool { return r.classListLocked }

func (r *Reader) SetClassListLocked(locked bool) { r.classListLocked = locked }

func (r *Reader) FilteredClassName() string { return r.filterClass }

// SetFilteredClassName restricts NextFeature to features of the named
// class. An empty name removes the filter.
func (r *Reader) SetFilteredClassName(name string) { r.filterClass = name }

func (r *Reader) GlobalSRSName() string { return r.globalSRSName }

// SetGlobalSRSName records the document-level spatial reference. Only
// the first non-empty assignment takes effect; EPSG:n identifiers are
// rewritten to URN form per the configured policy.
func (r *Reader) SetGlobalSRSName(name string) {
	if r.globalSRSName != "" || name == "" {
		return
	}
	r.globalSRSName = srs.NormalizeEPSG(name, r.opts.ConsiderEPSGAsURN)
}

// LoadClasses replaces the registry with the classes of a sidecar
// document and locks the class list.
func (r *Reader) LoadClasses(path string) error {
	classes, err := schema.LoadClassList(path)
	if err != nil {
		return err
	}
	r.classes = classes
	r.classListLocked = true
	return nil
}

// SaveClasses writes the registry as a sidecar document.
func (r *Reader) SaveClasses(path string) error {
	return schema.SaveClassList(path, r.classes)
}

// isFeatureElement reports whether an element opening under the given
// parent starts a feature. The contextual patterns cover standard
// featureMember containment, OpenLS geocoding and routing responses,
// Polish TBD documents and MapServer WMS GetFeatureInfo output.
func (r *Reader) isFeatureElement(local, parent string) bool {
	switch {
	case parent == "dane":
	case parent == "GeocodeResponseList" && local == "GeocodedAddress":
	case parent == "DetermineRouteResponse":
		// each RouteInstruction becomes a feature, not the list
		if local == "RouteInstructionsList" {
			return false
		}
	case parent == "RouteInstructionsList" && local == "RouteInstruction":
	case strings.HasSuffix(parent, "_layer") && strings.HasSuffix(local, "_feature"):
	default:
		l := strings.ToLower(parent)
		if !strings.HasSuffix(l, "member") && !strings.HasSuffix(l, "members") {
			return false
		}
	}
	if !r.classListLocked {
		return true
	}
	for _, c := range r.classes {
		if classElementMatches(c, local) {
			return true
		}
	}
	return false
}

// classForElement resolves the class for a recognized feature element,
// creating one when the list is unlocked.
func (r *Reader) classForElement(local string) *schema.FeatureClass {
	for _, c := range r.classes {
		if classElementMatches(c, local) {
			return c
		}
	}
	if r.classListLocked {
		return nil
	}
	c := schema.NewFeatureClass(local)
	r.classes = append(r.classes, c)
	return c
}

// classElementMatches compares an element name against a class's
// element path, which may carry "|"-joined leading segments when it
// came from a sidecar document.
func classElementMatches(c *schema.FeatureClass, local string) bool {
	elem := c.ElementName()
	if i := strings.LastIndexByte(elem, '|'); i >= 0 {
		elem = elem[i+1:]
	}
	return strings.EqualFold(elem, local)
}

// featureDone queues a completed feature, applying the class filter.
func (r *Reader) featureDone(f *feature.Feature) {
	if f == nil {
		return
	}
	if r.filterClass != "" && !strings.EqualFold(f.Class().Name(), r.filterClass) {
		return
	}
	r.pending = append(r.pending, f)
}

// setFeatureProperty installs an occurrence of the property named by
// its source element path, appending a new property definition when the
// schema is unlocked.
func (r *Reader) setFeatureProperty(f *feature.Feature, srcElement, value string) {
	class := f.Class()
	idx := class.PropertyIndexBySrc(srcElement)
	if idx < 0 {
		if class.IsSchemaLocked() {
			glog.V(1).Infof("dropping %q: not in locked schema of class %s", srcElement, class.Name())
			return
		}
		name := srcElement
		if i := strings.LastIndexByte(name, '|'); i >= 0 {
			name = name[i+1:]
		}
		if class.PropertyIndex(name) >= 0 {
			name = srcElement
		}
		for class.PropertyIndex(name) >= 0 {
			name += "_"
		}
		p := schema.NewPropertyDefn(name, srcElement)
		if r.opts.AlwaysStringFields {
			p.SetType(schema.TypeString)
		}
		var err error
		if idx, err = class.AddProperty(p); err != nil {
			glog.V(1).Infof("dropping %q: %v", srcElement, err)
			return
		}
	}
	f.SetProperty(idx, value)
	if !class.IsSchemaLocked() && !r.opts.AlwaysStringFields {
		class.Property(idx).AnalyseValues(f.Property(idx))
	}
}
