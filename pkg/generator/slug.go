package generator

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	fallbackSlug = "list"
	maxBaseLen   = 80
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a list title into a slug candidate: lowercase, every run of
// characters outside [a-z0-9] collapsed into one hyphen, no leading or
// trailing hyphens, at most 80 characters.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxBaseLen {
		slug = strings.TrimRight(slug[:maxBaseLen], "-")
	}

	if slug == "" {
		return fallbackSlug
	}

	return slug
}

// WithSuffix returns base-n, the n-th alternative for a taken slug.
func WithSuffix(base string, n int) string {
	return base + "-" + strconv.Itoa(n)
}
