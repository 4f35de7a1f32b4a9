// Package blueprint defines the schema for confkit configuration options.
//
// A Blueprint declares the rules for one (section, option) pair: the
// accepted value kinds, the kinds allowed inside list and mapping values,
// numeric bounds, string patterns, a default value, and the documentation
// emitted into the configuration file. Validation runs type, format, and
// range checks in that order and stops at the first failure.
//
// A Schema collects blueprints and preserves declaration order, which is
// the order sections and options appear in the written file.
package blueprint
