package extract

import "strings"

// Sentinel group IDs for identifiers that carry no real Maven group.
const (
	// GroupProject marks coordinates parsed from a "project :path" display name.
	GroupProject = "<project>"
	// GroupUnknown marks coordinates parsed from a display name with no
	// recognizable structure.
	GroupUnknown = "<unknown>"
)

// Coordinates is the result of parsing a free-form dependency display name.
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// ParseIdentifier derives structured coordinates from a display name when no
// richer identifier is available.
//
//	"project :sub"      -> {"<project>", "sub", ""}
//	"com.foo:bar:1.0"   -> {"com.foo", "bar", "1.0"}
//	"weird-name"        -> {"<unknown>", "weird-name", ""}
func ParseIdentifier(displayName string) Coordinates {
	if strings.HasPrefix(displayName, "project :") {
		_, path, _ := strings.Cut(displayName, ":")
		return Coordinates{GroupID: GroupProject, ArtifactID: path}
	}

	if parts := strings.Split(displayName, ":"); len(parts) == 3 {
		return Coordinates{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}
	}

	return Coordinates{
		GroupID:    GroupUnknown,
		ArtifactID: strings.ReplaceAll(displayName, ":", "_"),
	}
}
