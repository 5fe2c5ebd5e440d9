package contracts

import (
	"context"

	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/responses"
)

// PatientSource is one prioritized data source of loosely-typed patient
// documents. Sources are tried in order until one yields a non-empty result.
type PatientSource interface {
	Name() string
	FetchPatients(ctx context.Context) ([]map[string]interface{}, error)
}

// PatientProvider hands out canonical patient records, already normalized at
// the boundary.
type PatientProvider interface {
	ListPatients(ctx context.Context) ([]models.PatientRecord, error)
	FindPatient(ctx context.Context, patientID string) (models.PatientRecord, error)
}

type PatientUsecase interface {
	ListPatients(ctx context.Context) ([]responses.PatientSummary, error)
	ListAbhaAddresses(ctx context.Context, patientID string) ([]responses.AbhaAddress, error)
}
