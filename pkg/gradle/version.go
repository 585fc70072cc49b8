package gradle

import (
	"strconv"
	"strings"
)

// MinVersion is the lowest Gradle release the extractor supports. Earlier
// releases lack the resolution result API shapes the snapshot relies on.
const MinVersion = "4.4"

// CompareVersions compares two dotted Gradle version strings on their major
// and minor components. It returns a negative value when a < b, zero when
// equal, positive when a > b.
//
// Segments that are missing or not plain integers (release candidates,
// milestone suffixes) count as zero, so "5" == "5.0" and "5.0-rc-1" compares
// as "5.0".
func CompareVersions(a, b string) int {
	aMaj, aMin := splitVersion(a)
	bMaj, bMin := splitVersion(b)
	if aMaj != bMaj {
		return aMaj - bMaj
	}
	return aMin - bMin
}

// SupportedVersion reports whether v is at least MinVersion.
func SupportedVersion(v string) bool {
	return CompareVersions(v, MinVersion) >= 0
}

func splitVersion(v string) (major, minor int) {
	parts := strings.Split(v, ".")
	major = versionSegment(parts[0])
	if len(parts) > 1 {
		minor = versionSegment(parts[1])
	}
	return major, minor
}

// versionSegment parses the leading integer of a version segment, so
// "0-rc-1" yields 0 and "7-milestone-2" yields 7. Fully non-numeric
// segments yield 0.
func versionSegment(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
