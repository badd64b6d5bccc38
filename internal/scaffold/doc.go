// Package scaffold generates CMS element boilerplate inside a shop plugin.
// It powers the "cmsgen element" command: the plugin root is resolved from
// the registry, every stub under element/ is filled in with the element's
// name, block identifier and label, and the results are written into the
// administration and storefront trees of the plugin.
package scaffold
