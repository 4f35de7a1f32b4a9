// Package value provides the tagged value model for confkit configuration.
//
// A Value mirrors the JSON data model: null, boolean, integer, float,
// string, list, and mapping. Every value carries an explicit Kind tag so
// validation code can match exhaustively instead of relying on runtime
// type assertions. Mapping members preserve insertion order, which keeps
// the on-disk rendering of a configuration stable across load/save cycles.
package value
