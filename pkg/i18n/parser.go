package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translations maps a language code to its (possibly nested) key tree.
type Translations = map[string]map[string]any

// Parser decodes translation content of one file format.
type Parser interface {
	// Parse decodes content whose top level is keyed by language code.
	Parse(ctx context.Context, content []byte) (Translations, error)

	// SupportsFileExtension reports whether the parser handles ext, with or
	// without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil
// for unknown extensions.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// JSONParser implements Parser for JSON files
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements Parser. Top-level entries that are not objects are skipped.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result := make(Translations, len(data))
	for lang, translations := range data {
		if transMap, ok := translations.(map[string]any); ok {
			result[lang] = transMap
		}
	}
	return result, nil
}

// SupportsFileExtension implements Parser.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser implements Parser for YAML files
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse implements Parser. Every top-level entry must be a mapping.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages in YAML content", ErrInvalidStructure)
	}

	result := make(Translations, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected mapping, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = transMap
	}
	return result, nil
}

// SupportsFileExtension implements Parser.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
