// Package rop holds the pieces shared by the result containers: the state
// tag, the sentinel faults, the absence predicate and Capture, the single
// place where a returned error is classified as a declared failure or as an
// unexpected fault.
package rop
