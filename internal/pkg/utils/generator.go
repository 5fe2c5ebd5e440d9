package utils

import (
	"arogya-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// NewResourceID mints the random identifier assigned to every record and every
// bundle. Identifiers are never reused within one build.
func NewResourceID() string {
	return uuid.New().String()
}

// LocalReference turns a generated identifier into the bundle-scoped temporary
// URL used as an entry fullUrl and as the target of every cross-reference.
func LocalReference(id string) string {
	return constvars.LocalReferencePrefix + id
}

func GenerateRequestID() string {
	return uuid.New().String()
}
