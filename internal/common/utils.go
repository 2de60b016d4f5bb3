package common

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/quintype/quintype-seo-go/pkg/attrs"
)

// Exit codes returned by actions.
const (
	ExitUsage   = 1
	ExitRuntime = 2
)

// DefaultConfigFile is read when no --config flag is given and it exists.
const DefaultConfigFile = "seo.yaml"

// ErrBadOverride is returned for --set values that are not key=value.
var ErrBadOverride = errors.New("override must be key=value")

// ParseOverrides turns --set key=value flags into flat entries. Values that
// read as integers, floats or booleans keep that type; anything else is a
// string. An empty value is kept as an empty string.
func ParseOverrides(values []string) ([]attrs.Entry, error) {
	out := make([]attrs.Entry, 0, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadOverride, v)
		}
		out = append(out, attrs.Entry{Key: key, Value: scalar(value)})
	}
	return out, nil
}

func scalar(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strings.ContainsAny(s, ".eE") {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return b
	}
	return s
}

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation and markdown artifacts.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}
