// Package registry holds the set of shop plugins cmsgen can scaffold into.
// A Registry is an ordered, read-only list of entries mapping a plugin name
// to the source directory of its base class. The host supplies it either as a
// YAML registry file or by letting Discover scan the plugin directory for
// composer.json manifests.
package registry
