package v1handler

import (
	"io"
	"net/http"
	"time"

	"emailsieve/internal/extractor"
	"emailsieve/pkg/metrics"

	"github.com/go-faster/jx"
)

// maxBodyBytes caps how much request body is read. Extraction input is prose,
// not documents; a megabyte is plenty.
const maxBodyBytes = 1 << 20

// extractRequest is the decoded body of both v1 extraction endpoints.
type extractRequest struct {
	// Text is the input to extract from.
	Text string
	// Joined requests the comma-joined string form instead of an array.
	Joined bool
}

func decodeExtractRequest(body []byte) (extractRequest, error) {
	var req extractRequest
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "text":
			v, err := d.Str()
			req.Text = v

			return err
		case "joined":
			v, err := d.Bool()
			req.Joined = v

			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		return extractRequest{}, err
	}

	return req, nil
}

// readRequest reads and decodes the request body, responding with 400 on
// failure.
func readRequest(w http.ResponseWriter, r *http.Request) (extractRequest, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "could not read request body")

		return extractRequest{}, false
	}

	req, err := decodeExtractRequest(body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")

		return extractRequest{}, false
	}

	return req, true
}

// ExtractEmails handles POST /v1/extract. The response shape follows the
// engine's output format: a plain address array in list format, records with
// an obfuscation verdict otherwise, or a single comma-joined string when the
// request sets "joined".
func (h *Handler) ExtractEmails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	metrics.ExtractRequests.WithLabelValues("extract").Inc()

	req, ok := readRequest(w, r)
	if !ok {
		return
	}

	var e jx.Encoder
	e.ObjStart()
	if req.Joined {
		e.FieldStart("joined")
		e.Str(h.deps.Extractor.ExtractEmailsJoined(req.Text))
	} else {
		emails := h.deps.Extractor.ExtractEmails(req.Text)
		metrics.ExtractedEmails.Add(float64(len(emails)))

		e.FieldStart("emails")
		e.ArrStart()
		annotated := h.deps.Extractor.Format() == extractor.OutputFormatObfuscation
		for _, email := range emails {
			if annotated {
				e.ObjStart()
				e.FieldStart("email")
				e.Str(email.Address)
				e.FieldStart("obfuscation")
				e.Bool(email.Obfuscated)
				e.ObjEnd()
			} else {
				e.Str(email.Address)
			}
		}
		e.ArrEnd()
	}
	e.ObjEnd()

	metrics.ExtractSeconds.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, e.Bytes())
}

// ExtractDomains handles POST /v1/domains, the domain-only diagnostic
// endpoint. Rejected captures stay in the response as empty strings.
func (h *Handler) ExtractDomains(w http.ResponseWriter, r *http.Request) {
	metrics.ExtractRequests.WithLabelValues("domains").Inc()

	req, ok := readRequest(w, r)
	if !ok {
		return
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("domains")
	e.ArrStart()
	for _, domain := range h.deps.Extractor.ExtractDomains(req.Text) {
		if domain == "" {
			metrics.RejectedMatches.Inc()
		}
		e.Str(domain)
	}
	e.ArrEnd()
	e.ObjEnd()

	writeJSON(w, http.StatusOK, e.Bytes())
}
