package main

import (
	"fmt"
	"io"
	"os"

	"emailsieve/internal/config"
	"emailsieve/internal/extractor"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

// readInput returns the contents of the named file, or stdin when no file is
// given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}

		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "read input file")
	}

	return data, nil
}

// encodeEmails renders extraction results as JSON, matching the shape of the
// /v1/extract endpoint.
func encodeEmails(emails []extractor.Email, annotated bool) []byte {
	var e jx.Encoder
	e.ArrStart()
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

	return e.Bytes()
}

func extractCommand(cfg *config.Config) *cobra.Command {
	var (
		asJSON bool
		joined bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extracts obfuscated email addresses from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			engine, err := extractor.New(extractor.OutputFormat(cfg.Extractor.OutputFormat))
			if err != nil {
				return errors.Wrap(err, "create extraction engine")
			}

			switch {
			case joined:
				fmt.Fprintln(cmd.OutOrStdout(), engine.ExtractEmailsJoined(string(input)))
			case asJSON:
				annotated := engine.Format() == extractor.OutputFormatObfuscation
				fmt.Fprintln(cmd.OutOrStdout(), string(encodeEmails(engine.ExtractEmails(string(input)), annotated)))
			default:
				for _, email := range engine.ExtractEmails(string(input)) {
					if engine.Format() == extractor.OutputFormatObfuscation {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", email.Address, email.Obfuscated)
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), email.Address)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&joined, "joined", false, "Emit results as one comma-joined string")

	return cmd
}
