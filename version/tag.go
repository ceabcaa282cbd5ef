package version

import "strings"

// Tag classifies the maturity of a release. The zero value is TagAlpha; use
// ParseTag to obtain a Tag from free-form input.
type Tag int

const (
	// TagAlpha marks an early development build expected to contain major bugs.
	TagAlpha Tag = iota
	// TagBeta marks a build that follows alpha and is closer to final quality.
	TagBeta
	// TagPreRelease marks the last stage before a full release.
	TagPreRelease
	// TagRelease marks a final, stable release. It is also the permissive
	// default for unrecognized input so an unknown provider's tagging scheme
	// does not block notification.
	TagRelease
)

// tagAliases maps lowercase alias fragments to their canonical tag. Matching
// is case-insensitive; lookup order is irrelevant because aliases are
// disjoint.
var tagAliases = map[string]Tag{
	"alpha":       TagAlpha,
	"a":           TagAlpha,
	"beta":        TagBeta,
	"b":           TagBeta,
	"pre-release": TagPreRelease,
	"pre":         TagPreRelease,
	"pr":          TagPreRelease,
	"p":           TagPreRelease,
	"release":     TagRelease,
	"rc":          TagRelease,
	"r":           TagRelease,
}

// ParseTag converts a free-form tag fragment (e.g. "beta", "RC", "b") into a
// Tag. Unmatched input defaults to TagRelease.
func ParseTag(fragment string) Tag {
	if tag, ok := tagAliases[strings.ToLower(fragment)]; ok {
		return tag
	}
	return TagRelease
}

// TagEquals reports whether the given fragment classifies to the expected tag.
func TagEquals(expected Tag, fragment string) bool {
	return ParseTag(fragment) == expected
}

// String returns the canonical name of the tag.
func (t Tag) String() string {
	switch t {
	case TagAlpha:
		return "ALPHA"
	case TagBeta:
		return "BETA"
	case TagPreRelease:
		return "PRE_RELEASE"
	case TagRelease:
		return "RELEASE"
	default:
		return "UNKNOWN"
	}
}
