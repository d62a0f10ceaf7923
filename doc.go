/*
Package gmlreader is a streaming reader for Geography Markup Language
(GML) documents.

The reader turns a GML document into a sequence of typed feature
records together with a relational schema that is either inferred on
the fly or loaded from a .gfs sidecar file. Parsing is incremental:
features are surfaced one at a time in document order, so arbitrarily
large documents can be read in bounded memory.

The reader sub-directory holds the pull-style engine (NextFeature,
PrescanForSchema), schema holds the feature class and property model
plus sidecar persistence, geom builds geometries from the raw GML
fragments snipped out of each feature, and srs carries the coordinate
reference system helpers (EPSG URN rewriting, axis-order policy).

Two tokenizer backends are supported behind a common driver interface:
the encoding/xml token decoder and a chunked low-allocation tokenizer.
Backend choice is a configuration option; behavior is identical.
*/
package gmlreader
