package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabflash-backend/internal/config"
	"github.com/heartmarshall/vocabflash-backend/internal/domain"
	"github.com/heartmarshall/vocabflash-backend/internal/parser"
)

func newAddCommand(cc *commandContext) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Parse a .txt or .pdf file and save its words",
		Long: `Parse a .txt or .pdf file and save its words.

Each line holds a word and its meaning separated by a tab, ":", "," or
the first space. Use "-" to read text from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = cc.today()
			}

			settings, err := cc.loadSettings()
			if err != nil {
				return err
			}
			parsed, err := readVocabulary(cmd.InOrStdin(), args[0], settings.Upload)
			if err != nil {
				return err
			}

			store, err := cc.openStore(cmd)
			if err != nil {
				return err
			}
			added, err := store.Add(parsed, date)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %d items for %s\n", len(added), date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to save the words under (default today)")
	return cmd
}

// readVocabulary parses path as text or PDF depending on its extension,
// enforcing the same size limits as the server's upload endpoints.
func readVocabulary(stdin io.Reader, path string, limits config.UploadConfig) ([]domain.ParsedVocabulary, error) {
	if path == "-" {
		return parseText(stdin, limits.MaxTextBytes)
	}

	kind := parser.DetectFileType(path)
	if kind == parser.TypeUnknown {
		return nil, fmt.Errorf("%s: unsupported file type, use .txt or .pdf", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if kind == parser.TypeText {
		return parseText(f, limits.MaxTextBytes)
	}

	data, err := io.ReadAll(io.LimitReader(f, int64(limits.MaxPDFBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > limits.MaxPDFBytes {
		return nil, fmt.Errorf("%s: larger than %d bytes", path, limits.MaxPDFBytes)
	}
	text, err := parser.ExtractPDFText(data)
	if err != nil {
		return nil, err
	}
	parsed := parser.ParseStrict(text)
	if len(parsed) == 0 {
		return nil, domain.NewParseError("no vocabulary items found in PDF")
	}
	return parsed, nil
}

func parseText(r io.Reader, maxBytes int) ([]domain.ParsedVocabulary, error) {
	content, err := parser.Decode(r, int64(maxBytes))
	if err != nil {
		return nil, err
	}
	parsed := parser.Parse(content)
	if len(parsed) == 0 {
		return nil, domain.NewParseError("no vocabulary items found in text")
	}
	return parsed, nil
}
