package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minUsernameLength rejects suspiciously short local parts.
const minUsernameLength = 4

// stripAccents folds accented letters to their ASCII base so spellings like
// "gmaíl" still hit the provider tables.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC) //nolint: gochecknoglobals

// The cleanup rules below need no lookaround, so they stay on the standard
// library regexp engine.
//
//nolint: gochecknoglobals
var (
	reWildcards      = regexp.MustCompile(`[*?]+`)
	reLiteralNewline = regexp.MustCompile(`\\n`)
	reSplitGmail     = regexp.MustCompile(`\s+g\s+mail\s+`)

	reGmailSynonyms = regexp.MustCompile(alt(gmailSynonyms...))
	reWhitespace    = regexp.MustCompile(`\s+`)
	reDotWord       = regexp.MustCompile(`[(\[]*dot[)\]]*`)
	reNonDNS        = regexp.MustCompile(`[^a-zA-Z0-9\-.]`)
	reDotRun        = regexp.MustCompile(`\.+`)
	reBareProvider  = regexp.MustCompile("^" + alt(commonProviders...) + "$")
	reUsernameDot   = regexp.MustCompile(`[(]?dot[)]?`)
)

// prenormalize prepares raw input for the matcher: one lowercased,
// accent-folded line with newlines collapsed to spaces, wildcard glyphs and
// escaped-newline literals blanked, and split "g mail" tokens rejoined.
func prenormalize(text string) string {
	line := strings.ToLower(text)
	if folded, _, err := transform.String(stripAccents, line); err == nil {
		line = folded
	}
	line = strings.ReplaceAll(line, "\n", " ")
	line = strings.ReplaceAll(line, "\r", "")
	line = reWildcards.ReplaceAllString(line, " ")
	line = reLiteralNewline.ReplaceAllString(line, " ")
	line = reSplitGmail.ReplaceAllString(line, " gmail ")

	return line
}

// cleanDomain maps a raw domain fragment to a canonical domain, or returns
// the empty string to reject it. The rules are intentionally conservative:
// an ambiguous domain is dropped, never guessed.
//
// In order:
//   - fold gmail synonyms to "gmail"
//   - whitespace runs become single dots
//   - spelled-out "dot" markers become literal dots
//   - strip everything outside letters, digits, hyphen and dot
//   - collapse dot runs, trim
//   - a bare provider name gets ".com" appended
//   - reject when no dot remains
//   - reject any gmail domain that is not exactly "gmail.com"
func cleanDomain(fragment string) string {
	result := reGmailSynonyms.ReplaceAllString(fragment, "gmail")
	result = reWhitespace.ReplaceAllString(result, ".")
	result = reDotWord.ReplaceAllString(result, ".")
	result = reNonDNS.ReplaceAllString(result, "")
	result = reDotRun.ReplaceAllString(result, ".")
	result = strings.TrimSpace(result)

	if reBareProvider.MatchString(result) {
		result += ".com"
	}
	if !strings.Contains(result, ".") {
		return ""
	}
	// Captures like "faithlynn1959@gmail. in call" leave residue around
	// "gmail"; anything but the exact canonical form is untrustworthy.
	if strings.Contains(result, "gmail") && result != "gmail.com" {
		return ""
	}

	return result
}

// cleanUsername maps a raw username fragment to a canonical local part, or
// returns the empty string to reject it.
func cleanUsername(fragment string) string {
	username := strings.TrimSpace(fragment)
	username = reUsernameDot.ReplaceAllString(username, ".")
	if len(username) < minUsernameLength {
		return ""
	}

	return username
}
