// Package analyzer scores a password and explains the score.
//
// Analysis runs a fixed sequence of checks against a running score that
// starts at 100:
//
//	length -> variety -> patterns -> breach -> entropy
//
// Each check deducts points and appends exactly the feedback lines it owns,
// so the feedback order always matches the check order. The final score is
// clamped to [0, 100] and mapped to a rating.
//
// The breach check is the only one that leaves the process. It depends on
// the BreachCounter interface so that tests and --offline runs can replace
// the network client.
package analyzer
