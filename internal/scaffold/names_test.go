package scaffold

import (
	"strings"
	"testing"
	"unicode"

	"pgregory.net/rapid"
)

func TestNewNames(t *testing.T) {
	tests := []struct {
		name      string
		wantBlock string
		wantLabel string
	}{
		{"my-cool-element", "my_cool_element", "myCoolElement"},
		{"fancy-box", "fancy_box", "fancyBox"},
		{"FancyBox", "fancy_box", "fancyBox"},
		{"fancy box", "fancy_box", "fancyBox"},
		{"text_image", "text_image", "textImage"},
		{"teaser", "teaser", "teaser"},
		{"my.element", "my_element", "myElement"},
		{"hero2Banner", "hero2_banner", "hero2Banner"},
		{"hero2banner", "hero2banner", "hero2banner"},
		{"Ünïcode-élément", "ünïcode_élément", "ünïcodeÉlément"},
		{"ÜberBox", "über_box", "überBox"},
		{"éBox", "é_box", "éBox"},
		{"-lead", "lead", "lead"},
		{"trailing--", "trailing", "trailing"},
		{"a..b__c  d", "a_b_c_d", "aBCD"},
		{"XMLHttp", "xml_http", "xmlHttp"},
		{"---", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		n := NewNames(tt.name)
		if n.Name != tt.name {
			t.Errorf("NewNames(%q).Name = %q, want input unchanged", tt.name, n.Name)
		}
		if n.Block != tt.wantBlock {
			t.Errorf("NewNames(%q).Block = %q, want %q", tt.name, n.Block, tt.wantBlock)
		}
		if n.Label != tt.wantLabel {
			t.Errorf("NewNames(%q).Label = %q, want %q", tt.name, n.Label, tt.wantLabel)
		}
	}
}

func TestApply(t *testing.T) {
	n := NewNames("fancy-box")

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"all tokens", "{{ name }}|{{ block }}|{{ label }}", "fancy-box|fancy_box|fancyBox"},
		{"repeated", "{{ name }} {{ name }}", "fancy-box fancy-box"},
		{"unknown placeholder kept", "{{ name }} {{ other }}", "fancy-box {{ other }}"},
		{"no spaces is not a token", "{{name}}", "{{name}}"},
		{"twig expressions untouched", "{{ element.config }}", "{{ element.config }}"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.template, n); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestApplyStorefrontSkipsLabel(t *testing.T) {
	got := applyStorefront("{{ name }} {{ block }} {{ label }}", NewNames("fancy-box"))
	want := "fancy-box fancy_box {{ label }}"
	if got != want {
		t.Errorf("applyStorefront() = %q, want %q", got, want)
	}
}

// kebabName draws hyphen-separated lowercase element names.
var kebabName = rapid.StringMatching(`[a-z]{1,8}(-[a-z]{1,8}){0,3}`)

func TestNamesProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := kebabName.Draw(t, "name")
		n := NewNames(name)

		if want := strings.ReplaceAll(name, "-", "_"); n.Block != want {
			t.Fatalf("Block(%q) = %q, want %q", name, n.Block, want)
		}

		parts := strings.Split(name, "-")
		for i := 1; i < len(parts); i++ {
			parts[i] = string(unicode.ToUpper(rune(parts[i][0]))) + parts[i][1:]
		}
		if want := strings.Join(parts, ""); n.Label != want {
			t.Fatalf("Label(%q) = %q, want %q", name, n.Label, want)
		}
	})
}

func TestApplyIsTotal(t *testing.T) {
	tokens := []string{PlaceholderName, PlaceholderBlock, PlaceholderLabel}

	rapid.Check(t, func(t *rapid.T) {
		n := NewNames(kebabName.Draw(t, "name"))

		// Interleave plain text with tokens.
		var b strings.Builder
		pieces := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 12).Draw(t, "pieces")
		for _, p := range pieces {
			if p < len(tokens) {
				b.WriteString(tokens[p])
			} else {
				b.WriteString(rapid.StringMatching(`[^{}]{0,6}`).Draw(t, "text"))
			}
		}
		template := b.String()

		out := Apply(template, n)
		for _, tok := range tokens {
			if strings.Contains(out, tok) {
				t.Fatalf("Apply(%q) left %q in %q", template, tok, out)
			}
		}
		if again := Apply(template, n); again != out {
			t.Fatalf("Apply is not deterministic: %q != %q", again, out)
		}
	})
}

func TestApplyWithoutTokensIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		template := rapid.StringMatching(`[^{}]*`).Draw(t, "template")
		if got := Apply(template, NewNames("fancy-box")); got != template {
			t.Fatalf("Apply(%q) = %q, want unchanged", template, got)
		}
	})
}
