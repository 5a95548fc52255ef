// Package types defines the refrigerator storage hierarchy (Refrigerator,
// Floor, Container, Slot, Item), the Store interface used to persist it, and
// the standard error values for both.
//
// The hierarchy is plain in-memory state owned by a single caller. All
// mutations go through the Refrigerator, which resolves the floor and the
// container before touching a slot.
package types
