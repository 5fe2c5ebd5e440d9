package patients

import (
	"context"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/responses"
)

type patientUsecase struct {
	provider contracts.PatientProvider
}

func NewPatientUsecase(provider contracts.PatientProvider) contracts.PatientUsecase {
	return &patientUsecase{provider: provider}
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]responses.PatientSummary, error) {
	records, err := uc.provider.ListPatients(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.PatientSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, buildPatientSummary(record))
	}
	return summaries, nil
}

func (uc *patientUsecase) ListAbhaAddresses(ctx context.Context, patientID string) ([]responses.AbhaAddress, error) {
	record, err := uc.provider.FindPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return buildAbhaAddresses(record.AbhaAddresses), nil
}

func buildPatientSummary(record models.PatientRecord) responses.PatientSummary {
	return responses.PatientSummary{
		ID:            record.ID,
		Name:          record.Name,
		Gender:        record.Gender,
		BirthDate:     record.BirthDate,
		Mobile:        record.Mobile,
		Email:         record.Email,
		MRN:           record.MRN,
		AbhaReference: record.AbhaReference,
		AbhaAddresses: buildAbhaAddresses(record.AbhaAddresses),
	}
}

func buildAbhaAddresses(addresses []models.AbhaAddress) []responses.AbhaAddress {
	result := make([]responses.AbhaAddress, 0, len(addresses))
	for _, address := range addresses {
		result = append(result, responses.AbhaAddress{
			Value:   address.Value,
			Label:   address.Label,
			Primary: address.Primary,
		})
	}
	return result
}
