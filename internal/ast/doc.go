// Package ast holds the arena-backed syntax tree of one wrought source unit.
//
// A Component owns every node of a unit in append-only tables. Nodes refer
// to each other through small integer handles (NameID, TypeID, ...) that are
// issued from zero in allocation order and never reused. Each handle type
// has a NoXxxID sentinel for "absent".
//
// Handles are only meaningful for the Component that issued them; mixing
// components is not detected. Get-style accessors panic on handles past the
// end of their table.
package ast
