// Package log provides slog-based logging that never writes secrets.
//
// The SecureHandler wraps any slog.Handler and masks attribute values
// before they reach it:
//   - Keys that name secret material (password, passphrase, hash, suffix, ...)
//   - String values shaped like a full SHA-1 digest or a 35-character
//     range suffix, whatever their key
//
// The five-character hash prefix is not masked: it is the only part of
// a digest that is sent over the network and is safe to log.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("breach lookup completed", "prefix", "5BAA6")   // logged as-is
//	logger.Debug("candidate", "password", pw)                    // password=***REDACTED***
package log
