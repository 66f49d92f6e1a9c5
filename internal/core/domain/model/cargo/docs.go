// Package cargo contains the Cargo aggregate and everything it owns: the
// route specification describing where the cargo must go, the itinerary
// describing how it will get there, and the derived delivery snapshot
// describing where it currently is.
//
// The delivery snapshot is never mutated incrementally. It is the output of
// a pure derivation over the assigned itinerary, the route specification
// and the full handling history, recomputed wholesale every time the
// history or the route changes. Any snapshot is therefore reproducible
// from those inputs alone, which is the central invariant of the package.
package cargo
