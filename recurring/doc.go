// Package recurring detects and expands repeating suffixes in fractional
// digit runs.
//
// Find scans the reversed digit run for the candidate period with the
// maximal rank (period length times number of extra contiguous repeats) and
// canonicalizes the marker boundary by rotating the pattern across matching
// prefix tail digits.
//
// The scan is O(n²) in the digit count n: every candidate period is checked
// against the remainder of the run. For the depth-bounded runs produced by
// conversion this is the dominant cost on long fractional outputs.
package recurring
