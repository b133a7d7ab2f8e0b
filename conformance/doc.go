// Package conformance carries the canonical acceptance suite for the NIC
// recognizer and decoder.
//
// The suite is a plain data table plus a pure evaluation function, so the
// same cases back the package tests and the nicctl suite command without any
// *testing.T coupling. Cases cover both accepted layouts, every rejection
// class (era digit, length, alphabet, trailing bytes), the semantic day
// windows, normalization, and the retired two-digit-year readings of inputs
// such as "891234567V": those are expected rejections whose Note records
// what the legacy scheme would have decoded.
//
// Basic usage:
//
//	import "github.com/lankaid/nic/conformance"
//
//	for _, c := range conformance.Cases() {
//		out := conformance.Verify(c)
//		if !out.Passed {
//			fmt.Println(c.Name, out.Problems)
//		}
//	}
package conformance
