package extractor

// Extractor is the consumer-facing surface of the engine.
type Extractor interface {
	Format() OutputFormat
	ExtractEmails(text string) []Email
	ExtractEmailsJoined(text string) string
	ExtractDomains(text string) []string
}
