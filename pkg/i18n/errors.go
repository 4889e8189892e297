package i18n

import "errors"

var (
	// Translator setup
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrNilParser         = errors.New("translation parser is nil")
	ErrEmptyPath         = errors.New("translation path is empty")
	ErrEmptyLanguageCode = errors.New("empty language code found")
	ErrNilTranslations   = errors.New("nil translations map for language")

	// Parsing
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	// Loading
	ErrLoadingCancelled        = errors.New("loading translations cancelled")
	ErrFailedToReadFile        = errors.New("failed to read translation file")
	ErrFailedToParseFile       = errors.New("failed to parse translation file")
	ErrFailedToReadDirectory   = errors.New("failed to read translation directory")
	ErrNoTranslationFilesFound = errors.New("no valid translation files found")
)
