// Package util bundles small internal helpers shared across upcheck. It lives
// in internal to avoid committing to public API stability prematurely.
package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{(\d+)\}`)

// Format substitutes bracketed positional parameters into the input, where
// "{0}" refers to the first parameter, "{1}" to the second and so on.
// Placeholders without a matching parameter are left untouched.
//
//	Format("repos/{0}/releases", "owner/name") // "repos/owner/name/releases"
func Format(input string, params ...any) string {
	if !strings.Contains(input, "{") { // fast path: no placeholders
		return input
	}
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		idx, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || idx < 0 || idx >= len(params) {
			return match
		}
		return fmt.Sprintf("%v", params[idx])
	})
}

var schemePattern = regexp.MustCompile(`(?i)^(http|https)://`)

// EnsureScheme prefixes the url with "https://" when no http(s) scheme is
// present, so adapters can be constructed from bare hosts.
func EnsureScheme(url string) string {
	if schemePattern.MatchString(url) {
		return url
	}
	return "https://" + url
}
