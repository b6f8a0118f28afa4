// Package codespace implements the two-dimensional code space edited by
// avis: a ragged grid in which every row has its own length and every cell
// knows the jamo indices of its character.
//
// Space is the entry point. Its mutating methods run inside a transaction
// (see package state), so observers of its ChangeBus see one notification
// per call no matter how many primitive edits the call performs.
//
// Rectangle operations treat degenerate input as a no-op rather than an
// error: a non-positive width or height, or an origin outside the space,
// leaves the space untouched.
package codespace
