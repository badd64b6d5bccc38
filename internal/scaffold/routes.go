package scaffold

import "strings"

// Stubs are routed by substring tests on their file name. The tests are
// not exclusive: a stub that matches several of them is written once per
// match.

// variantTypes are checked in order; the first one found names the
// sub-directory a variant stub is written to.
var variantTypes = []string{"component", "preview", "config"}

// variantTarget maps a file-name token to the file written for it.
type variantTarget struct {
	token string
	file  func(variant, element string) string
}

var variantTargets = []variantTarget{
	{"twig", func(variant, element string) string {
		return "sw-cms-el-" + variant + "-" + element + ".html.twig"
	}},
	{"scss", func(variant, element string) string {
		return "sw-cms-el-" + variant + "-" + element + ".scss"
	}},
	{"index", func(string, string) string {
		return "index.js"
	}},
}

// isBaseStub reports whether a stub becomes the element's index.js.
func isBaseStub(filename string) bool {
	return strings.Contains(filename, "base")
}

// variantOf returns the variant type for a stub, or "" when it has none.
func variantOf(filename string) string {
	for _, v := range variantTypes {
		if strings.Contains(filename, v) {
			return v
		}
	}
	return ""
}

// variantFiles returns the file names a variant stub is written to, in
// target order.
func variantFiles(filename, variant, element string) []string {
	var files []string
	for _, t := range variantTargets {
		if strings.Contains(filename, t.token) {
			files = append(files, t.file(variant, element))
		}
	}
	return files
}
