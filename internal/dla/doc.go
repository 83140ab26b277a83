// Package dla simulates diffusion-limited aggregation on a 2D lattice.
//
// An aggregate is a growing, append-only list of seed positions. Each
// simulated particle random-walks from a launch point until it comes within
// [StickDistance] of an existing seed; it then sticks with probability equal
// to the engine's stickiness and becomes a seed itself.
//
// Three growth modes share one [Engine]:
//
//   - [Engine]: launch uniformly inside a width x height box, periodic wrap.
//   - [Point]: radial growth from a single seed at the origin, launching on a
//     circle just outside the known structure.
//   - [Line]: front growth from a seeded line y = 0, launching a fixed depth
//     below the lowest seed.
//
// All three implement [Aggregator], which is what callers drive in a loop.
//
// # Termination
//
// A simulate call has no step cap. It halts with probability 1 for any
// stickiness > 0 but may run for a long time; the only way to stop it early
// is to cancel its context.
//
// # Thread Safety
//
// Engines are NOT thread-safe and share their rng.Source with the walk that
// drives them. Use one goroutine per engine.
package dla
