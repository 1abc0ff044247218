// Package extractor finds email addresses that authors deliberately
// obfuscated to defeat naive scrapers ("user AT domain DOT com",
// bracket-wrapped markers, spaced-out provider names) and maps them back to
// canonical addresses. Ambiguous captures are rejected rather than guessed.
package extractor

import (
	"strings"

	"emailsieve/pkg/serrors"
)

// OutputFormat selects the shape of extraction results.
type OutputFormat string

const (
	// OutputFormatList yields deduplicated canonical addresses.
	OutputFormatList OutputFormat = "list"
	// OutputFormatObfuscation additionally reports whether each address was
	// obfuscated in the source text.
	OutputFormatObfuscation OutputFormat = "obfuscation"
)

// Email is one extracted address. Obfuscated is only populated when the
// engine was created with OutputFormatObfuscation.
type Email struct {
	Address    string
	Obfuscated bool
}

// rawMatch is a (username fragment, domain fragment) pair as captured by the
// grammar, before any cleanup. Fragments may contain embedded noise.
type rawMatch struct {
	username string
	domain   string
}

// Engine matches and normalizes obfuscated email addresses. After New the
// engine holds only immutable grammar and vocabulary state, so a single
// instance may serve concurrent calls without synchronization.
type Engine struct {
	format  OutputFormat
	grammar *grammar
}

var _ Extractor = (*Engine)(nil)

// New composes the pattern grammar once and returns an engine producing
// results in the given format. Formats outside {list, obfuscation} fail with
// a serrors.ErrBadRequest configuration error.
func New(format OutputFormat) (*Engine, error) {
	if format != OutputFormatList && format != OutputFormatObfuscation {
		return nil, serrors.With(serrors.ErrBadRequest,
			"output format must be %q or %q, got %q", OutputFormatList, OutputFormatObfuscation, format)
	}

	return &Engine{format: format, grammar: newGrammar()}, nil
}

// Format returns the output format the engine was created with.
func (e *Engine) Format() OutputFormat {
	return e.format
}

// ExtractEmails returns every canonical address found in text, first-seen
// ordered and duplicate free. Text with nothing extractable yields an empty
// result, never an error.
func (e *Engine) ExtractEmails(text string) []Email {
	raws := e.match(prenormalize(text))

	var canonical []string
	seen := make(map[string]struct{}, len(raws))
	for _, raw := range raws {
		domain := cleanDomain(raw.domain)
		username := cleanUsername(raw.username)
		if domain == "" || username == "" {
			continue
		}

		address := username + "@" + domain
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		canonical = append(canonical, address)
	}

	if e.format == OutputFormatObfuscation {
		return annotate(canonical, raws)
	}

	results := make([]Email, 0, len(canonical))
	for _, address := range canonical {
		results = append(results, Email{Address: address})
	}

	return results
}

// ExtractEmailsJoined returns the extracted addresses as a single
// comma-joined string.
func (e *Engine) ExtractEmailsJoined(text string) string {
	emails := e.ExtractEmails(text)
	addresses := make([]string, 0, len(emails))
	for _, email := range emails {
		addresses = append(addresses, email.Address)
	}

	return strings.Join(addresses, ",")
}

// ExtractDomains runs domain-only matching against text and returns the
// cleanup result for every capture, keeping empty strings for rejected
// fragments. Diagnostic entry point.
func (e *Engine) ExtractDomains(text string) []string {
	line := prenormalize(text)

	var domains []string
	m, err := e.grammar.domain.FindStringMatch(line)
	for err == nil && m != nil {
		domains = append(domains, cleanDomain(m.GroupByNumber(1).String()))
		m, err = e.grammar.domain.FindNextMatch(m)
	}

	return domains
}

// match scans pre-normalized text left to right for non-overlapping email
// captures.
func (e *Engine) match(line string) []rawMatch {
	var raws []rawMatch
	m, err := e.grammar.email.FindStringMatch(line)
	for err == nil && m != nil {
		raws = append(raws, rawMatch{
			username: m.GroupByNumber(1).String(),
			domain:   m.GroupByNumber(2).String(),
		})
		m, err = e.grammar.email.FindNextMatch(m)
	}

	return raws
}

// annotate classifies each canonical address as literal or obfuscated: an
// address that some raw capture spells out verbatim was not obfuscated.
// Every raw capture backs at most one canonical address.
func annotate(canonical []string, raws []rawMatch) []Email {
	used := make([]bool, len(raws))
	results := make([]Email, 0, len(canonical))
	for _, address := range canonical {
		obfuscated := true
		for i, raw := range raws {
			if used[i] {
				continue
			}
			if strings.TrimSpace(raw.username)+"@"+strings.TrimSpace(raw.domain) == address {
				used[i] = true
				obfuscated = false

				break
			}
		}
		results = append(results, Email{Address: address, Obfuscated: obfuscated})
	}

	return results
}
