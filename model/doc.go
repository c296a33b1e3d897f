// Package model contains the core rendering model used to lay out HTML
// content as plain text: style elements, text blocks, line prefixes, the
// canvas that assembles the output, and the table grid renderer.
//
// The model is purely synchronous and holds no global state; every
// conversion owns its own Canvas, so independent conversions may run
// concurrently without coordination.
package model
