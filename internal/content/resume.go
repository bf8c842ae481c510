package content

import (
	"regexp"
	"strings"
)

var resumeSegment = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]*$`)

// ResumeFile returns the site-relative file of a resume served by the site
// itself. It reports false for an empty path, an external URL, or a path with
// anything other than plain file-name segments.
func ResumeFile(resumePath string) (string, bool) {
	if !strings.HasPrefix(resumePath, "/") {
		return "", false
	}
	rel := strings.TrimPrefix(resumePath, "/")
	if rel == "" {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if !resumeSegment.MatchString(seg) {
			return "", false
		}
	}
	return rel, true
}

// isExternalURL reports whether the resume lives on another host
func isExternalURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
