package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// TranslationAdapter defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (Translations, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data Translations
}

// Load implements TranslationAdapter.
func (a *MapAdapter) Load(_ context.Context) (Translations, error) {
	if a.Data == nil {
		return make(Translations), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. The parser is picked from the file
// extension when parser is nil.
func NewFileAdapter(parser Parser, path string) (*FileAdapter, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: no parser for %q", ErrNilParser, path)
	}
	return &FileAdapter{parser: parser, path: path}, nil
}

// Load implements TranslationAdapter.
func (a *FileAdapter) Load(ctx context.Context) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrFailedToReadFile, a.path)
	}

	translations, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// FSAdapter loads every supported file from a directory of an fs.FS, such as
// an embed.FS or os.DirFS. Files are merged in directory order.
type FSAdapter struct {
	parsers []Parser
	fsys    fs.FS
	dir     string
}

// NewFSAdapter creates an adapter over dir in fsys. With no parsers, both
// JSON and YAML files are read.
func NewFSAdapter(fsys fs.FS, dir string, parsers ...Parser) (*FSAdapter, error) {
	if fsys == nil {
		return nil, ErrNilAdapter
	}
	if dir == "" {
		dir = "."
	}
	if len(parsers) == 0 {
		parsers = []Parser{NewJSONParser(), NewYAMLParser()}
	}
	return &FSAdapter{parsers: parsers, fsys: fsys, dir: dir}, nil
}

// NewDirectoryAdapter creates an FSAdapter over a directory on disk.
func NewDirectoryAdapter(dir string, parsers ...Parser) (*FSAdapter, error) {
	if dir == "" {
		return nil, ErrEmptyPath
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFailedToReadDirectory, dir)
	}
	return NewFSAdapter(os.DirFS(dir), ".", parsers...)
}

// Load implements TranslationAdapter.
func (a *FSAdapter) Load(ctx context.Context) (Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	result := make(Translations)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := a.parserFor(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}
		Merge(result, translations)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFilesFound, a.dir)
	}
	return result, nil
}

func (a *FSAdapter) parserFor(name string) Parser {
	ext := path.Ext(name)
	if ext == "" {
		return nil
	}
	for _, p := range a.parsers {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// MultiAdapter loads from several adapters and merges the results; later
// adapters override keys of earlier ones.
type MultiAdapter []TranslationAdapter

// Load implements TranslationAdapter.
func (m MultiAdapter) Load(ctx context.Context) (Translations, error) {
	result := make(Translations)
	for _, a := range m {
		if a == nil {
			continue
		}
		translations, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		Merge(result, translations)
	}
	return result, nil
}

// Merge deep-merges src into dst. Nested maps are merged key by key, other
// values in src replace those in dst.
func Merge(dst, src Translations) {
	for lang, tree := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(tree))
		}
		mergeTree(dst[lang], tree)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := asStringMap(v)
		dstMap, dstIsMap := asStringMap(dst[k])
		if srcIsMap && dstIsMap {
			merged := make(map[string]any, len(dstMap)+len(srcMap))
			mergeTree(merged, dstMap)
			mergeTree(merged, srcMap)
			dst[k] = merged
			continue
		}
		if srcIsMap {
			copied := make(map[string]any, len(srcMap))
			mergeTree(copied, srcMap)
			dst[k] = copied
			continue
		}
		dst[k] = v
	}
}
