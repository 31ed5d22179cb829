package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads documents from disk.
type Loader struct {
	// supports reports whether a MIME type can be decoded.
	// A nil func accepts every type.
	supports func(mimeType string) bool
}

// NewLoader creates a loader that rejects MIME types the registry cannot
// decode. A nil registry accepts every file.
func NewLoader(registry driven.NormaliserRegistry) *Loader {
	l := &Loader{}
	if registry != nil {
		l.supports = registry.Supports
	}
	return l
}

// Load reads the file at path.
func (l *Loader) Load(ctx context.Context, path string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}

	mimeType := detectMIMEType(path)
	if !l.accepts(mimeType) {
		return nil, fmt.Errorf("%s (%s): %w", path, mimeType, domain.ErrUnsupportedFormat)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &domain.RawDocument{
		URI:      path,
		MIMEType: mimeType,
		Content:  content,
		Metadata: map[string]any{
			"size":     info.Size(),
			"modified": info.ModTime(),
		},
	}, nil
}

// Expand resolves command-line arguments to a sorted list of files.
// Arguments may be files, directories (walked recursively) or doublestar
// patterns such as "chapters/**/*.md". Hidden entries and unsupported
// types found by walking or globbing are skipped; files named
// explicitly are returned as given.
func (l *Loader) Expand(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		if isPattern(arg) {
			if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
				return nil, fmt.Errorf("bad pattern %q: %w", arg, domain.ErrInvalidInput)
			}
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("glob %q: %w", arg, err)
			}
			for _, m := range matches {
				if l.candidate(m) {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%s: %w", arg, domain.ErrNotFound)
			}
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if path != arg && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && l.accepts(detectMIMEType(path)) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (l *Loader) candidate(path string) bool {
	return !isHidden(path) && l.accepts(detectMIMEType(path))
}

func (l *Loader) accepts(mimeType string) bool {
	return l.supports == nil || l.supports(mimeType)
}

func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
