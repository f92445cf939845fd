/*
Package capability maps remote component kinds to the operations they
support.

The external driver reports a concrete kind for every resolved object, but
leaf operations only care about what they can do with it: read or write its
text, press it, drive its grid, screenshot its window. This package keeps
that (kinds x operations) surface linear: each kind declares its capability
set exactly once in a table, and every operation performs one capability
resolution instead of matching over sixty kinds.

Capability membership is a pure function of kind. It never depends on runtime
state, and a Component's kind never changes after resolution.
*/
package capability
