package contracts

import (
	"context"

	"arogya-service/internal/pkg/fhir_dto"
)

// ExchangeGateway transmits an assembled bundle to the health-information
// exchange. Submission failure never alters the in-memory bundle.
type ExchangeGateway interface {
	SubmitBundle(ctx context.Context, bundle *fhir_dto.Bundle, patientReference string) error
}
