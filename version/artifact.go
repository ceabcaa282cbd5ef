package version

import "regexp"

var (
	versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?(\.\d+)?`)
	tagPattern     = regexp.MustCompile(`(?i)(BETA|ALPHA|PRE|SNAPSHOT|RELEASE|B|A|R)`)
)

// Artifact is the normalized form of a version-like string: the extracted
// numeric version plus its classified stability tag. Artifacts are immutable
// once constructed; both the locally installed version and every remote
// version pass through ParseArtifact so comparisons always happen in the same
// normalized space.
type Artifact struct {
	raw     string
	version string
	tag     Tag
}

// ParseArtifact extracts the first numeric version pattern and the first
// stability tag fragment from raw. If no numeric version is present it
// returns an *InvalidVersionError; there is no fallback version, an
// unparsable input must fail hard rather than masquerade as a release.
// Without a tag fragment the artifact defaults to TagRelease.
func ParseArtifact(raw string) (Artifact, error) {
	v := versionPattern.FindString(raw)
	if v == "" {
		return Artifact{}, &InvalidVersionError{Input: raw}
	}

	tag := TagRelease
	if fragment := tagPattern.FindString(raw); fragment != "" {
		tag = ParseTag(fragment)
	}

	return Artifact{raw: raw, version: v, tag: tag}, nil
}

// Raw returns the original input the artifact was parsed from.
func (a Artifact) Raw() string { return a.raw }

// Version returns the normalized numeric version, e.g. "1.2.3".
func (a Artifact) Version() string { return a.version }

// Tag returns the classified stability tag.
func (a Artifact) Tag() Tag { return a.tag }
