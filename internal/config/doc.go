// Package config holds the runtime configuration of pwstrength.
//
// A Config starts from NewConfig defaults, is overlaid with an optional
// YAML file (see FindConfigFile for the search order) and finally with the
// command-line flags the user set explicitly. Validate is called once,
// before any password is analyzed.
package config
