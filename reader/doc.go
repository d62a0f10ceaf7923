// Package reader implements the streaming GML feature reader.
//
// The Reader owns a tokenizer driver, the feature class registry and a
// stack of read states, and bridges the push-style XML events into a
// pull-style NextFeature iterator. PrescanForSchema wraps the same
// loop to infer the schema and aggregate per-class feature counts,
// geometry types, spatial references and extents.
package reader
