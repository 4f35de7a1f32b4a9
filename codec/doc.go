// Package codec reads and writes the confkit configuration file format.
//
// The format is line-oriented: comment lines start with # or ;, a
// [section] line opens a section, and option = <JSON value> lines assign
// values. A value may continue over several lines until the next comment
// or section line. Parsing is tolerant of unknown sections and options,
// which are dropped; values of declared options are validated against
// their blueprints and any failure aborts the whole parse.
package codec
