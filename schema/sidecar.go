package schema

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/osgeolabs/gmlreader/geom"
	"github.com/osgeolabs/gmlreader/gmlerr"
)

// LoadClassList reads a GMLFeatureClassList sidecar document and
// returns its feature classes, each with a locked schema. The load is
// all-or-nothing: a structural error returns no classes.
func LoadClassList(path string) ([]*FeatureClass, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(gmlerr.OpenFailed(path, gmlerr.WithMessage(err.Error())), "loading classes")
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, errors.Wrap(gmlerr.NotClassList(path, gmlerr.WithMessage(err.Error())), "loading classes")
	}

	root := firstElementNode(doc)
	if root == nil || root.Data != "GMLFeatureClassList" {
		return nil, errors.WithStack(gmlerr.NotClassList(path))
	}

	var classes []*FeatureClass
	for _, n := range xmlquery.Find(root, "GMLFeatureClass") {
		c, err := classFromXML(n)
		if err != nil {
			return nil, err
		}
		for _, prev := range classes {
			if strings.EqualFold(prev.Name(), c.Name()) {
				return nil, errors.WithStack(gmlerr.BadClassDefn(c.Name(),
					gmlerr.WithMessage("duplicate feature class")))
			}
		}
		c.SetSchemaLocked(true)
		classes = append(classes, c)
	}
	return classes, nil
}

// SaveClassList writes the classes as a GMLFeatureClassList sidecar
// document. The write is atomic: the document is staged in a temporary
// file and renamed into place.
func SaveClassList(path string, classes []*FeatureClass) error {
	list := classListXML{}
	for _, c := range classes {
		list.Classes = append(list.Classes, classToXML(c))
	}

	body, err := xml.MarshalIndent(&list, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing class list")
	}
	body = append([]byte(xml.Header), body...)
	body = append(body, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".gfs-*")
	if err != nil {
		return errors.Wrap(err, "saving class list")
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "saving class list")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "saving class list")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "saving class list")
	}
	return nil
}

type classListXML struct {
	XMLName xml.Name   `xml:"GMLFeatureClassList"`
	Classes []classXML `xml:"GMLFeatureClass"`
}

type classXML struct {
	Name         string    `xml:"Name"`
	ElementPath  string    `xml:"ElementPath"`
	GeometryType *int      `xml:"GeometryType,omitempty"`
	SRSName      string    `xml:"SRSName,omitempty"`
	Dataset      *dsiXML   `xml:"DatasetSpecificInfo,omitempty"`
	Properties   []propXML `xml:"PropertyDefn"`
}

type dsiXML struct {
	FeatureCount *int64   `xml:"FeatureCount,omitempty"`
	ExtentXMin   *float64 `xml:"ExtentXMin,omitempty"`
	ExtentXMax   *float64 `xml:"ExtentXMax,omitempty"`
	ExtentYMin   *float64 `xml:"ExtentYMin,omitempty"`
	ExtentYMax   *float64 `xml:"ExtentYMax,omitempty"`
}

type propXML struct {
	Name        string `xml:"Name"`
	ElementPath string `xml:"ElementPath"`
	Type        string `xml:"Type"`
}

func classToXML(c *FeatureClass) classXML {
	out := classXML{
		Name:        c.Name(),
		ElementPath: c.ElementName(),
		SRSName:     c.SRSName(),
	}
	if t := c.GeometryType(); t != geom.Unknown {
		ti := int(t)
		out.GeometryType = &ti
	}
	var dsi dsiXML
	hasDSI := false
	if n := c.FeatureCount(); n >= 0 {
		dsi.FeatureCount = &n
		hasDSI = true
	}
	if ext, ok := c.Extents(); ok {
		dsi.ExtentXMin, dsi.ExtentXMax = &ext.MinX, &ext.MaxX
		dsi.ExtentYMin, dsi.ExtentYMax = &ext.MinY, &ext.MaxY
		hasDSI = true
	}
	if hasDSI {
		out.Dataset = &dsi
	}
	for i := 0; i < c.PropertyCount(); i++ {
		p := c.Property(i)
		out.Properties = append(out.Properties, propXML{
			Name:        p.Name(),
			ElementPath: p.SrcElement(),
			Type:        p.Type().String(),
		})
	}
	return out
}

func classFromXML(n *xmlquery.Node) (*FeatureClass, error) {
	name := childText(n, "Name")
	if name == "" {
		return nil, errors.WithStack(gmlerr.BadClassDefn("GMLFeatureClass",
			gmlerr.WithMessage("missing Name")))
	}
	elementPath := childText(n, "ElementPath")
	if elementPath == "" {
		elementPath = name
	}

	c := NewFeatureClass(elementPath)
	c.name = name

	if v := childText(n, "GeometryType"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.WithStack(gmlerr.BadClassDefn(name,
				gmlerr.WithMessage("invalid GeometryType "+v)))
		}
		c.SetGeometryType(geom.Type(t))
	}
	if v := childText(n, "SRSName"); v != "" {
		c.SetSRSName(v)
	}

	if dsi := n.SelectElement("DatasetSpecificInfo"); dsi != nil {
		if v := childText(dsi, "FeatureCount"); v != "" {
			count, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, errors.WithStack(gmlerr.BadClassDefn(name,
					gmlerr.WithMessage("invalid FeatureCount "+v)))
			}
			c.SetFeatureCount(count)
		}
		ext, ok, err := extentFromXML(dsi)
		if err != nil {
			return nil, errors.WithStack(gmlerr.BadClassDefn(name, gmlerr.WithMessage(err.Error())))
		}
		if ok {
			c.SetExtents(ext)
		}
	}

	for _, pn := range xmlquery.Find(n, "PropertyDefn") {
		pname := childText(pn, "Name")
		if pname == "" {
			return nil, errors.WithStack(gmlerr.BadClassDefn(name,
				gmlerr.WithMessage("PropertyDefn missing Name")))
		}
		src := childText(pn, "ElementPath")
		if src == "" {
			src = pname
		}
		p := NewPropertyDefn(pname, src)
		var t PropertyType
		if v := childText(pn, "Type"); v != "" {
			if err := t.UnmarshalText([]byte(v)); err != nil {
				return nil, errors.WithStack(gmlerr.BadClassDefn(name,
					gmlerr.WithMessage("invalid property type "+v)))
			}
		}
		p.SetType(t)
		if _, err := c.AddProperty(p); err != nil {
			return nil, errors.WithStack(gmlerr.BadClassDefn(name, gmlerr.WithMessage(err.Error())))
		}
	}
	return c, nil
}

func extentFromXML(dsi *xmlquery.Node) (geom.Extent, bool, error) {
	texts := [4]string{
		childText(dsi, "ExtentXMin"), childText(dsi, "ExtentXMax"),
		childText(dsi, "ExtentYMin"), childText(dsi, "ExtentYMax"),
	}
	present := 0
	var vals [4]float64
	for i, s := range texts {
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return geom.Extent{}, false, errors.Errorf("invalid extent value %q", s)
		}
		vals[i] = v
		present++
	}
	switch present {
	case 0:
		return geom.Extent{}, false, nil
	case 4:
		return geom.Extent{MinX: vals[0], MaxX: vals[1], MinY: vals[2], MaxY: vals[3]}, true, nil
	default:
		return geom.Extent{}, false, errors.New("partial extent definition")
	}
}

func childText(n *xmlquery.Node, name string) string {
	c := n.SelectElement(name)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.InnerText())
}

func firstElementNode(doc *xmlquery.Node) *xmlquery.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}
