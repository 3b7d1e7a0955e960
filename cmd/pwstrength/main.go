// Package main provides the entry point for the pwstrength CLI.
//
// pwstrength scores a password from 0 to 100 and explains the score:
// length, character variety, trivial patterns, breach exposure and entropy.
// The breach check uses a k-anonymity range lookup, so only the first five
// characters of the password's SHA-1 hash leave the machine.
//
// Usage:
//
//	pwstrength check                 # prompt without echo
//	pwstrength check 'Tr0ub4dor&3'   # password as argument
//	pwstrength check --list file.txt # one password per line
//
// See --help for all available options.
package main

// main is the entry point for pwstrength.
func main() {
	Execute()
}
