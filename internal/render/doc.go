// Package render turns pendulum state into drawing commands.
//
// A [Bridge] projects the two arm angles into screen coordinates around a
// fixed origin and, once per frame, repositions the arms, moves the orbs by
// their screen-space delta and appends one permanent trace segment for the
// outer mass. It then advances the simulation exactly once.
//
// Drawing goes through the [Surface] capability. [Scene] is the retained
// in-memory surface every host in this module renders from; it owns the
// append-only trace.
package render
