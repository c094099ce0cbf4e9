// Package jvx holds a jq-style tagged JSON value and a configurable dumper
// that renders it as JSON text.
//
// A Value is one of null, false, true, number, string, array, object, or an
// invalid marker. Objects remember insertion order. Dump, DumpString,
// DumpTrunc and Show serialize a Value with independently combinable options:
// pretty or compact, sorted or insertion-ordered keys, raw UTF-8 or
// ASCII-only escapes, optional ANSI colouring, and a share-count diagnostic.
// The emitted text is valid JSON with two documented deviations: NaN becomes
// null and infinities clamp to the largest finite double.
//
// Basic usage:
//
//	v := jvx.Object().
//		Set("name", jvx.String("jvx")).
//		Set("tags", jvx.Array(jvx.String("json"), jvx.String("dump")))
//	fmt.Println(jvx.DumpString(v, &jvx.Options{Pretty: true, SortKeys: true}))
//
// Streaming to a terminal with jq's colours:
//
//	jvx.Dump(os.Stdout, v, &jvx.Options{Pretty: true, Color: true, Indent: 2})
//
// The package is output-only; build Values programmatically or convert
// decoded JSON with FromGo. See cmd/jvx for a CLI that decodes documents
// while preserving object key order.
package jvx
