// Package store provides the file-backed configuration store.
//
// A Store owns a set of blueprints and the current value table. Its
// lifecycle is fixed: blueprints are added first, then Initialize binds
// the store to a file, loads or creates it, fills missing options with
// defaults, and writes it back. After that, Get and Set operate on the
// in-memory table and Set persists eagerly. Writes go through a
// temporary file that is atomically renamed into place, so the live
// file is never left half-written.
//
// A Registry hands out named Store instances so independent subsystems
// sharing a profile name also share the store.
package store
