// Package cli defines the Cobra command tree for the cmsgen CLI. Each file
// registers one top-level command with the root command. Commands only parse
// arguments, assemble collaborators from the resolved settings and format
// output; the work itself lives in the scaffold and registry packages.
package cli
