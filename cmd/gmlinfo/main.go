// gmlinfo inspects a GML document. It prescans the feature classes,
// prints a per-class summary and can write the inferred schema to a
// .gfs sidecar or list the features themselves.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/joho/godotenv"

	"github.com/osgeolabs/gmlreader/config"
	"github.com/osgeolabs/gmlreader/feature"
	"github.com/osgeolabs/gmlreader/geom"
	"github.com/osgeolabs/gmlreader/reader"
	"github.com/osgeolabs/gmlreader/schema"
)

const usage = `usage: gmlinfo [flags] <document.gml>

Prescans a GML document and prints one block per feature class: the
feature count, the inferred properties and, with -extents, the
aggregated geometry type, envelope and spatial reference.

The GML_* environment variables configure the reader; a .env file in
the working directory is honored.
`

var (
	extentsFlag  = flag.Bool("extents", false, "aggregate geometry types, extents and spatial references")
	gfsFlag      = flag.String("gfs", "", "write the inferred classes to this sidecar path")
	loadFlag     = flag.String("load", "", "read classes from this sidecar instead of inferring")
	srsFlag      = flag.String("srs", "", "document-level spatial reference, e.g. EPSG:4326")
	featuresFlag = flag.Bool("features", false, "list features after the class summary")
	filterFlag   = flag.String("filter", "", "restrict -features output to this class")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	_ = godotenv.Load()

	if err := run(flag.Arg(0), os.Stdout); err != nil {
		glog.Exitf("gmlinfo: %v", err)
	}
}

func run(path string, w io.Writer) error {
	r := reader.New(config.FromEnv())
	r.SetSource(path)
	if *srsFlag != "" {
		r.SetGlobalSRSName(*srsFlag)
	}

	if *loadFlag != "" {
		if err := r.LoadClasses(*loadFlag); err != nil {
			return err
		}
	} else {
		ok, err := r.PrescanForSchema(*extentsFlag)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: no feature classes found", path)
		}
	}

	for i := 0; i < r.ClassCount(); i++ {
		printClass(w, r.Class(i))
	}

	if *gfsFlag != "" {
		if err := r.SaveClasses(*gfsFlag); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %d classes to %s\n", r.ClassCount(), *gfsFlag)
	}

	if !*featuresFlag {
		return nil
	}
	r.ResetReading()
	if *filterFlag != "" {
		r.SetFilteredClassName(*filterFlag)
	}
	for {
		f, err := r.NextFeature()
		if err != nil {
			return err
		}
		if f == nil {
			return nil
		}
		printFeature(w, f)
	}
}

func printClass(w io.Writer, c *schema.FeatureClass) {
	fmt.Fprintf(w, "%s (%s)\n", c.Name(), c.ElementName())
	if n := c.FeatureCount(); n >= 0 {
		fmt.Fprintf(w, "  features: %d\n", n)
	}
	if t := c.GeometryType(); t != geom.Unknown {
		fmt.Fprintf(w, "  geometry: %s\n", t)
	}
	if s := c.SRSName(); s != "" {
		fmt.Fprintf(w, "  srs: %s\n", s)
	}
	if ext, ok := c.Extents(); ok {
		fmt.Fprintf(w, "  extent: (%g, %g) - (%g, %g)\n", ext.MinX, ext.MinY, ext.MaxX, ext.MaxY)
	}
	for i := 0; i < c.PropertyCount(); i++ {
		p := c.Property(i)
		fmt.Fprintf(w, "  %s: %s [%s]\n", p.Name(), p.Type(), p.SrcElement())
	}
}

func printFeature(w io.Writer, f *feature.Feature) {
	class := f.Class()
	fmt.Fprintf(w, "%s", class.Name())
	if fid := f.FID(); fid != "" {
		fmt.Fprintf(w, " fid=%s", fid)
	}
	fmt.Fprintln(w)
	for i := 0; i < class.PropertyCount(); i++ {
		v := f.Property(i)
		if v == nil {
			continue
		}
		fmt.Fprintf(w, "  %s = %s\n", class.Property(i).Name(), strings.Join(v, ", "))
	}
	if n := len(f.GeometryList()); n > 0 {
		fmt.Fprintf(w, "  geometries: %d\n", n)
	}
}
