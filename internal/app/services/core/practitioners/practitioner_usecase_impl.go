package practitioners

import (
	"context"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/dto/responses"
)

type practitionerUsecase struct {
	provider contracts.PractitionerProvider
}

func NewPractitionerUsecase(provider contracts.PractitionerProvider) contracts.PractitionerUsecase {
	return &practitionerUsecase{provider: provider}
}

func (uc *practitionerUsecase) ListPractitioners(ctx context.Context) ([]responses.PractitionerSummary, error) {
	records, err := uc.provider.ListPractitioners(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.PractitionerSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, responses.PractitionerSummary{
			ID:      record.ID,
			Name:    record.Name,
			License: record.License,
			Phone:   record.Phone,
			Email:   record.Email,
		})
	}
	return summaries, nil
}
