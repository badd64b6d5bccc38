// Package config manages cmsgen settings. User-level values live in
// ~/.cmsgen/config.yaml, can be overridden by CMSGEN_* environment variables
// and by command-line flags, and are resolved into a typed Settings value
// for each run.
package config
