// Package core contains the tagged union shared by the result and optresult
// containers. Union holds exactly one of a value, a declared failure, or
// nothing, and implements the state transitions of map, flatMap, peek and
// the terminal unwraps once. The public containers are thin specialisations
// of it; they differ only in which factories and terminal operations they
// expose.
package core
