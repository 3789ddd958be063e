// Package simulate holds the pieces of the fake backend behind the greeting
// endpoint: a RandomSource for every sampled value, a Worker that stands in
// for request processing time and a Database whose queries only report a
// duration.
//
// Handlers depend on the interfaces so tests can swap in Fixed or
// NewSeededSource and NopWorker to make results exact.
package simulate
