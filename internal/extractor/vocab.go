package extractor

// Vocabulary tables consumed by the grammar builder and the domain
// normalizer. All entries are lowercase; text is lowercased before matching.

// commonProviders are the domain providers recognized when spelled out in
// prose, including deliberate misspellings.
var commonProviders = []string{
	"gmail",
	"gee mail",
	"g mail",
	"gml",
	"yahoo",
	"hotmail",
}

// gmailSynonyms are spellings the domain normalizer folds back to "gmail".
var gmailSynonyms = []string{
	"gee mail",
	"g mail",
	"gml",
}

// comSynonyms are accepted spellings of the com TLD marker. These are
// pattern fragments rather than literals: people write "co . uk",
// "co dot za" and similar.
var comSynonyms = []string{
	`com\b`,
	`co\s*\.\s*\w\w\w?`,
	`co\s+dot\s+\w\w\w?`,
}
