package scaffold

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/stoewer/go-strcase"
)

// Placeholders recognised in stub files.
const (
	PlaceholderName  = "{{ name }}"
	PlaceholderBlock = "{{ block }}"
	PlaceholderLabel = "{{ label }}"
)

// Names holds the element name and the identifiers derived from it.
type Names struct {
	Name  string // as given, e.g. "my-cool-element"
	Block string // snake_case, e.g. "my_cool_element"
	Label string // camelCase, e.g. "myCoolElement"
}

var (
	separatorRun = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	lowerUpper   = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	digitUpper   = regexp.MustCompile(`(\p{N})(\p{Lu})`)
)

// NewNames derives the block and label identifiers from an element name.
// The name itself is not validated.
func NewNames(elementName string) Names {
	w := words(elementName)
	return Names{
		Name:  elementName,
		Block: strings.Join(w, "_"),
		Label: lowerCamel(w),
	}
}

// words splits a name into lowercase words. Runs of anything but letters
// and digits separate words, as do lower-to-upper and digit-to-upper
// transitions and acronym ends ("XMLHttp" is "xml", "http").
func words(name string) []string {
	s := separatorRun.ReplaceAllString(name, " ")
	s = lowerUpper.ReplaceAllString(s, "$1 $2")
	s = digitUpper.ReplaceAllString(s, "$1 $2")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(strings.ToLower(strcase.SnakeCase(s)), "_")
}

func lowerCamel(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

// Apply replaces every {{ name }}, {{ block }} and {{ label }} in template.
// Other text, including unknown placeholders, is left as is.
func Apply(template string, n Names) string {
	return strings.NewReplacer(
		PlaceholderName, n.Name,
		PlaceholderBlock, n.Block,
		PlaceholderLabel, n.Label,
	).Replace(template)
}

// applyStorefront is Apply without the label token, which storefront
// templates do not use.
func applyStorefront(template string, n Names) string {
	return strings.NewReplacer(
		PlaceholderName, n.Name,
		PlaceholderBlock, n.Block,
	).Replace(template)
}
