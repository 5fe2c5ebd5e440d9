package contracts

import (
	"context"

	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/responses"
)

// PractitionerProvider abstracts where practitioners come from: a static
// in-memory roster or a single externally-injected object with a fallback
// default. The implementation is selected by configuration, never by probing
// ambient globals.
type PractitionerProvider interface {
	ListPractitioners(ctx context.Context) ([]models.PractitionerRecord, error)
	ResolvePractitioner(ctx context.Context, practitionerID string) (models.PractitionerRecord, error)
}

type PractitionerUsecase interface {
	ListPractitioners(ctx context.Context) ([]responses.PractitionerSummary, error)
}
