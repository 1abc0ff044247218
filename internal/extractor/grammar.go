package extractor

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// grammar holds the composed patterns applied to pre-normalized text. It is
// built once per engine and never mutated afterwards.
//
// regexp2 is used instead of the standard library because the at-marker and
// separator sub-grammars need lookahead and lookbehind.
type grammar struct {
	// email captures (group 1) the raw username fragment and (group 2) the
	// raw domain fragment.
	email *regexp2.Regexp
	// domain is the standalone domain pattern, capturing the raw domain
	// fragment as group 1.
	domain *regexp2.Regexp
}

// alt joins pattern fragments into a single non-capturing alternation.
func alt(parts ...string) string {
	return "(?:" + strings.Join(parts, "|") + ")"
}

func newGrammar() *grammar {
	providers := alt(commonProviders...)
	coms := alt(comSynonyms...)

	// "yahoo com", "yahoo dot com", "yahoo.com" spelled out in prose. The
	// mandatory TLD part keeps text like "met her at yahoo yesterday" from
	// being read as a domain.
	spelledDomain := "(?:" + providers + `(?:(?:dot\s+|\.+|,+|\s+)` + coms + "))"

	// The literal word "at" right in front of a provider name is strong
	// enough evidence on its own, so here the TLD may be missing entirely
	// ("SweetAbby90 at gmail"). The domain normalizer appends ".com" for
	// bare providers afterwards.
	spelledProvider := "(?:" + providers + `\b(?:(?:dot\s+|\.+|,+|\s+)` + coms + ")?)"

	atMarkers := []string{
		`@`,
		`\(+@\)+`,
		`\[+@\]+`,
		`\(+(?:at|arroba)\)+`,
		`\[+(?:at|arroba)\]+`,
		`\{+(?:at|arroba)\}+`,
		`\s+(?:at|arroba)@`,
		`@at\s+`,
		`at\s+(?=` + spelledProvider + `)`,
		`(?<=\w\w\w|\wat)\s+(?=` + spelledDomain + `)`,
		`(?<=\w\w\w|\wat)\[\](?=` + spelledDomain + `?)`,
	}
	// People put junk between the at marker and the start of the domain.
	atPostfix := alt(`,+\s*`, `\.+\s*`) + "?"
	fullAt := alt(atMarkers...) + atPostfix + `\s*`

	// One dot-separated component of a domain name, optionally wrapped:
	// "maria (at) (yahoo) (dot) (com)".
	basicLabel := `[a-z0-9][a-z0-9\-]*[a-z0-9]`
	label := alt(basicLabel, `\(+`+basicLabel+`\)+`, `\[+`+basicLabel+`\]+`)

	// All kinds of junk shows up between the parts of a domain name.
	dotWord := `[(\[]*dot[)\]]*`
	separators := []string{
		`\s*\.+\s*`,
		`[\.\s]+` + dotWord + `[\.\s]+`,
		`\(+(?:\.|` + dotWord + `)+\)+`,
		`\[+\.+\]+`,
		`\{+\.+\}+`,
		`\s+(?=` + coms + `)`,
	}
	separator := "(?:,*" + strings.Join(separators, "|") + ",*)"

	domain := fullAt + "(" + label + "(?:" + separator + label + ")*)"

	// Loose usernames tolerate the decoration found around heavily
	// obfuscated addresses but forbid consecutive punctuation, so runs like
	// "me.......somebody" are not absorbed.
	loose := `(?:[a-z0-9]+(?:(?:[-+_.]|[(]?dot[)]?)[a-z0-9]+)*\s*)`
	// Strict usernames admit the wider punctuation set but only when an at
	// sign immediately follows. The hyphen is deliberately absent here;
	// hyphenated locals only pass through the loose form.
	strict := "(?:[a-z0-9]+(?:[.!#$%&'*+/?^_" + "`" + "{|}~][a-z0-9]+)*(?=@))"
	username := "(" + loose + "|" + strict + ")"

	return &grammar{
		email:  regexp2.MustCompile(username+domain, regexp2.None),
		domain: regexp2.MustCompile(domain, regexp2.None),
	}
}
