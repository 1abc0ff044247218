package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPrenormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "lowercase and newline collapse",
			in:   "Hey,\r\nWrite ME",
			out:  "hey, write me",
		},
		{
			name: "wildcard glyphs become spaces",
			in:   "mail **me** now?",
			out:  "mail  me  now ",
		},
		{
			name: "escaped newline literal",
			in:   `details\nfollow`,
			out:  "details follow",
		},
		{
			name: "split g mail tokens rejoined",
			in:   "my g mail address",
			out:  "my gmail address",
		},
		{
			name: "accents folded",
			in:   "gmaíl",
			out:  "gmail",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, prenormalize(tc.in))
		})
	}
}

func TestCleanDomain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "already canonical", in: "hotmail.com", out: "hotmail.com"},
		{name: "bare provider", in: "gmail", out: "gmail.com"},
		{name: "bare yahoo", in: "yahoo", out: "yahoo.com"},
		{name: "gml synonym", in: "gml", out: "gmail.com"},
		{name: "gee mail synonym", in: "gee mail", out: "gmail.com"},
		{name: "wrapped dot marker", in: "gmail (dot) com", out: "gmail.com"},
		{name: "spelled-out dot", in: "yahoo dot com", out: "yahoo.com"},
		{name: "fully wrapped labels", in: "(yahoo) (dot) (com)", out: "yahoo.com"},
		{name: "unknown bare word", in: "noprovider", out: ""},
		{name: "gmail with residue", in: "gmail. in", out: ""},
		{name: "gmail prefix", in: "gmailspam.com", out: ""},
		{name: "ordinary domain untouched", in: "my-site.org", out: "my-site.org"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, cleanDomain(tc.in))
		})
	}
}

func TestCleanUsername(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trimmed", in: "  marycomeaux62 ", out: "marycomeaux62"},
		{name: "wrapped dot marker", in: "luisa(dot)maria", out: "luisa.maria"},
		{name: "too short", in: "abc", out: ""},
		{name: "too short after dot replacement", in: "j(dot)d", out: ""},
		{name: "exactly four characters", in: "lisa", out: "lisa"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, cleanUsername(tc.in))
		})
	}
}

func TestCleanDomainIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		domain := rapid.StringMatching(`[a-z0-9]{2,10}(\.[a-z]{2,4}){1,2}`).
			Filter(func(s string) bool {
				// "dot" and the gmail synonyms are rewritten by design, so
				// they cannot be fixed points.
				return !strings.Contains(s, "dot") &&
					!strings.Contains(s, "gmail") &&
					!strings.Contains(s, "gml")
			}).
			Draw(t, "domain")

		require.Equal(t, domain, cleanDomain(domain))
	})
}

func TestCleanDomainGmailPolicy(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fragment := rapid.String().Draw(t, "fragment")

		result := cleanDomain(fragment)
		if strings.Contains(result, "gmail") {
			require.Equal(t, "gmail.com", result)
		}
	})
}

func TestCleanDomainAlwaysHasDot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fragment := rapid.String().Draw(t, "fragment")

		result := cleanDomain(fragment)
		if result != "" {
			require.Contains(t, result, ".")
		}
	})
}

func TestCleanUsernameMinLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fragment := rapid.String().Draw(t, "fragment")

		result := cleanUsername(fragment)
		if result != "" {
			require.GreaterOrEqual(t, len(result), minUsernameLength)
		}
	})
}
