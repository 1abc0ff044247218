package extractor_test

import (
	"os"
	"path/filepath"
	"testing"

	"emailsieve/internal/extractor"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

// corpusRecord is one ground-truth sample: a raw text and the canonical
// addresses extraction must produce from it, in order.
type corpusRecord struct {
	Text   string
	Emails []string
}

func loadCorpus(t *testing.T) []corpusRecord {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "emails_ground_truth.json"))
	require.NoError(t, err)

	var records []corpusRecord
	d := jx.DecodeBytes(data)
	err = d.Arr(func(d *jx.Decoder) error {
		var rec corpusRecord
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "text":
				v, err := d.Str()
				rec.Text = v

				return err
			case "emails":
				return d.Arr(func(d *jx.Decoder) error {
					v, err := d.Str()
					rec.Emails = append(rec.Emails, v)

					return err
				})
			default:
				return d.Skip()
			}
		}); err != nil {
			return err
		}
		records = append(records, rec)

		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, records)

	return records
}

func TestExtractEmailsCorpus(t *testing.T) {
	engine := newEngine(t, extractor.OutputFormatList)

	for _, rec := range loadCorpus(t) {
		got := addresses(engine.ExtractEmails(rec.Text))
		if len(rec.Emails) == 0 {
			require.Empty(t, got, "text: %q", rec.Text)

			continue
		}
		require.Equal(t, rec.Emails, got, "text: %q", rec.Text)
	}
}
