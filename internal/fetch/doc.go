// Package fetch implements the request lifecycle every data-driven view
// follows: Idle, Loading, then Ready or Failed.
//
// A Lifecycle hands out a new Token for every request it begins, and only a
// result carrying the current token may change its state. Results from
// superseded requests are dropped, whatever order they arrive in.
//
// The package also carries the pure helpers views build on top of a
// snapshot: Filter, Pager, Window, Sentinel and Batch.
package fetch
