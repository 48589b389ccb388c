package n8n

import "github.com/Masterminds/semver/v3"

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.1.0"

// APIVersion is the n8n public API version this SDK targets. It is the
// version segment callers include in Config.BaseURL ("/api/v1").
const APIVersion = "v1"

// MinServerVersion is the oldest n8n server release this SDK is tested
// against. The API covered here does not report the server version, so the
// check is offered as a helper for callers that learn it out of band.
const MinServerVersion = "1.0.0"

// CompatibleServerVersion reports whether an n8n server version meets
// [MinServerVersion]. It returns false for versions that do not parse as
// semantic versions.
func CompatibleServerVersion(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	floor := semver.MustParse(MinServerVersion)
	return !v.LessThan(floor)
}
