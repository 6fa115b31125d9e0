// Package parser turns uploaded vocabulary files into word/meaning pairs.
//
// Each non-blank line is split by the first matching separator strategy in
// fixed priority: tab, colon, comma, then a single split at the first space.
// Separators are never mixed within one line.
package parser

import (
	"strings"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
)

// splitStrategy splits a raw line into fields. ok is false when the
// strategy does not apply to the line.
type splitStrategy func(line string) (parts []string, ok bool)

// strategies are tried in order; the first one that applies wins.
var strategies = []splitStrategy{
	splitOnEvery("\t"),
	splitOnEvery(":"),
	splitOnEvery(","),
	splitAtFirstSpace,
}

func splitOnEvery(sep string) splitStrategy {
	return func(line string) ([]string, bool) {
		if !strings.Contains(line, sep) {
			return nil, false
		}
		return strings.Split(line, sep), true
	}
}

// splitAtFirstSpace always applies: a line without spaces is a single field.
func splitAtFirstSpace(line string) ([]string, bool) {
	word, rest, found := strings.Cut(line, " ")
	if !found {
		return []string{line}, true
	}
	return []string{word, rest}, true
}

// Parse extracts vocabulary from plain text. A line with a word but no
// meaning is kept with domain.PlaceholderMeaning. The result preserves input
// order; an empty result means the content had no usable lines and callers
// must reject it.
func Parse(raw string) []domain.ParsedVocabulary {
	var result []domain.ParsedVocabulary
	for _, parts := range splitLines(raw) {
		word := strings.TrimSpace(parts[0])
		if word == "" {
			continue
		}
		result = append(result, domain.ParsedVocabulary{
			Word:    word,
			Meaning: domain.MeaningOrPlaceholder(joinMeaning(parts)),
		})
	}
	return result
}

// ParseStrict is the PDF variant of Parse: a line must produce at least two
// fields and both word and meaning must be non-empty, otherwise it is dropped.
func ParseStrict(raw string) []domain.ParsedVocabulary {
	var result []domain.ParsedVocabulary
	for _, parts := range splitLines(raw) {
		if len(parts) < 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		meaning := strings.TrimSpace(joinMeaning(parts))
		if word == "" || meaning == "" {
			continue
		}
		result = append(result, domain.ParsedVocabulary{Word: word, Meaning: meaning})
	}
	return result
}

// splitLines drops blank lines and applies the separator strategies to the
// rest. Lines are split untrimmed so leading and trailing tabs still select
// the tab strategy; fields are trimmed by the callers.
func splitLines(raw string) [][]string {
	var out [][]string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, split := range strategies {
			parts, ok := split(line)
			if !ok {
				continue
			}
			if len(parts) > 0 {
				out = append(out, parts)
			}
			break
		}
	}
	return out
}

// joinMeaning reassembles every field after the word with single spaces.
func joinMeaning(parts []string) string {
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}
