// Package model defines the data structures shared by the analyzer, the
// report writers and the CLI.
//
// This package contains the following main types:
//   - Severity: The weight of a single feedback line
//   - Rating: The qualitative strength derived from a final score
//   - PatternFinding: A weak sequence or repetition found in a password
//   - Result: The outcome of analyzing one password
//   - Report: One or more results prepared for output
//
// None of these types carry the analyzed password itself. Results are
// produced once by the analyzer and are treated as read-only values by
// every consumer.
package model
