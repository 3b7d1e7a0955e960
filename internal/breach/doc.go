// Package breach looks passwords up in a breach corpus using the
// k-anonymity range protocol popularized by Have I Been Pwned.
//
// The password is hashed with SHA-1 and only the first five hexadecimal
// characters of the digest are sent to the service. The service answers
// with every known suffix sharing that prefix, and the match is completed
// locally. Neither the password nor the remaining 35 characters of the
// digest ever leave the process.
//
// # Failure policy
//
// Client.Count fails open: a missing suffix, a transport error, a timeout,
// an unexpected status or a malformed body all yield a count of zero.
// Callers cannot tell "not breached" from "lookup failed". The reason is
// logged at warn level with the hash prefix only.
//
// # Usage
//
//	client, err := breach.NewClient(
//	    breach.WithTimeout(5*time.Second),
//	    breach.WithProxy("127.0.0.1:9050"), // optional, e.g. Tor
//	)
//	if err != nil {
//	    return err
//	}
//	count := client.Count(ctx, password)
package breach
