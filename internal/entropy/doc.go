// Package entropy estimates the information-theoretic strength of a password.
//
// Bits computes length × log2(pool size), where the pool is built from the
// character classes actually present. It assumes uniform random selection
// from that pool and is therefore an upper bound; dictionary and structural
// weaknesses are covered by the pattern and breach checks.
//
// Crack adds a zxcvbn estimate (github.com/nbutton23/zxcvbn-go) that models
// dictionary words, keyboard walks and dates. It is reported alongside the
// score but never changes it.
package entropy
