// Package surround grows patches of hats corona by corona.
//
// Starting from a patch already placed in a patchmap.Map, Surrounds walks the
// ordered boundary of the covered cells and, cell by cell, tries every
// candidate placement that covers the next uncovered cell without overlapping
// anything placed so far. A placement is kept only while the covered cells
// stay simply connected. Each way of covering the entire boundary is a
// surround, and the patch extended by it is yielded to the caller.
//
// The search mutates the Map in place while it runs: during a yield, the
// Map holds exactly the placements of the yielded patch, so a caller may
// start a nested search for the next corona on the same Map. Every
// tentative placement is undone before its frame returns, including when
// the caller stops iterating early, so the Map is back in its original state
// once the sequence ends.
package surround
