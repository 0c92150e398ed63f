package fontparts

import "github.com/google/uuid"

// newIdentifier generates a unique identifier suitable for tagging
// points, contours, components, anchors and guidelines.
func newIdentifier() string {
	return uuid.NewString()
}
