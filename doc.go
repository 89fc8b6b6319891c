// Package tagtree is the module root for a dual-format structured-data
// library: a tagged CBOR-faithful value tree (package value), a CBOR
// codec (package cbor), a tolerant JSON codec (package json), a JSON
// Pointer walk/mutate engine (package pointer), and a JSON Merge Patch
// plus RFC 6902 operation-list patch executor built on top of it
// (package patch). See cmd/tagtree for a CLI front end.
package tagtree
