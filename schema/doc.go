// Package schema models GML feature classes and their property
// definitions.
//
// A FeatureClass describes one feature type: its element name, the
// ordered property definitions, the aggregated geometry type, spatial
// reference and extents. Classes are either inferred while reading a
// document or loaded from a GMLFeatureClassList sidecar file, in which
// case the schema is locked and unknown properties are dropped.
package schema
