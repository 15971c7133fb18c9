// Package checksum provides sidecar content hashing with line-terminator
// normalization.
//
// The normalized checksum hashes content after converting CRLF and lone CR
// line terminators to LF, so a rewrite that only swaps terminators does not
// count as a change.
//
// # Example Usage
//
//	calculator := checksum.New()
//	if calculator.CalculateNormalized(before) != calculator.CalculateNormalized(after) {
//	    // content changed
//	}
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
