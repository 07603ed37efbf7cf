package customresource

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const PhysicalIDPrefix = "BedrockKnowledgeBase"

// NewPhysicalID returns a fresh physical resource id. The suffix is a UUIDv7, so ids are unique and sort by
// creation time.
func NewPhysicalID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "could not generate physical resource id")
	}
	return PhysicalIDPrefix + "-" + id.String(), nil
}
