// Package recommend implements the stateless command handlers over the
// catalog: pick-by-genre, distinct genres, top-N by rating, and a uniform
// random draw.
//
// Every method is a pure read of the immutable catalog plus an optional
// argument; nothing is carried between invocations, so the service is safe
// for arbitrarily many concurrent callers.
package recommend
