package content

import (
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-slug"
)

// NormalizeSlug applies the default slug normalization rules to a single
// path segment.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

var markdownExtensions = map[string]struct{}{
	".md":       {},
	".mdx":      {},
	".markdown": {},
}

// IsMarkdownPath reports whether the path carries a markdown extension the
// loader recognizes.
func IsMarkdownPath(p string) bool {
	_, ok := markdownExtensions[strings.ToLower(path.Ext(p))]
	return ok
}

// SlugFromPath derives the canonical slug for a file path relative to its
// collection root: the extension is stripped, a trailing "index" segment is
// dropped so directory-named entries slug to the directory, and every
// remaining segment is normalized and re-joined with "/".
//
// The mapping is deterministic; uniqueness across distinct source paths is
// enforced by the store, not here.
func SlugFromPath(relPath string) (string, error) {
	clean := path.Clean(strings.ToLower(strings.ReplaceAll(relPath, "\\", "/")))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || clean == "." {
		return "", fmt.Errorf("%w: path %q", ErrSlugEmpty, relPath)
	}

	if ext := path.Ext(clean); ext != "" {
		if _, ok := markdownExtensions[ext]; ok {
			clean = strings.TrimSuffix(clean, ext)
		}
	}

	segments := strings.Split(clean, "/")
	if last := segments[len(segments)-1]; last == "index" {
		segments = segments[:len(segments)-1]
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: path %q", ErrSlugEmpty, relPath)
	}

	normalized := make([]string, 0, len(segments))
	for _, segment := range segments {
		value := segment
		if !IsValidSlug(value) {
			var err error
			value, err = NormalizeSlug(segment)
			if err != nil {
				return "", fmt.Errorf("content: normalize segment %q of %q: %w", segment, relPath, err)
			}
		}
		if value == "" {
			return "", fmt.Errorf("%w: segment %q of %q", ErrSlugEmpty, segment, relPath)
		}
		normalized = append(normalized, value)
	}

	return strings.Join(normalized, "/"), nil
}
