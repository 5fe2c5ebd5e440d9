package practitioners

import (
	"context"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/exceptions"
)

// defaultRoster is the fixed in-memory roster the clinician picks from when
// no external practitioner object is injected.
var defaultRoster = []models.PractitionerRecord{
	{
		ID:      "hpr-0001",
		Name:    "Dr. Meera Sharma",
		License: "MH-2019-44821",
		Phone:   "+919810000001",
		Email:   "meera.sharma@example.in",
	},
	{
		ID:      "hpr-0002",
		Name:    "Dr. Arjun Nair",
		License: "KA-2016-30977",
		Phone:   "+919810000002",
		Email:   "arjun.nair@example.in",
	},
	{
		ID:      "hpr-0003",
		Name:    "Dr. Kavita Rao",
		License: "DL-2021-51234",
		Phone:   "+919810000003",
		Email:   "kavita.rao@example.in",
	},
}

type rosterProvider struct {
	roster []models.PractitionerRecord
}

func NewRosterProvider() contracts.PractitionerProvider {
	return &rosterProvider{roster: defaultRoster}
}

func (p *rosterProvider) ListPractitioners(ctx context.Context) ([]models.PractitionerRecord, error) {
	return p.roster, nil
}

func (p *rosterProvider) ResolvePractitioner(ctx context.Context, practitionerID string) (models.PractitionerRecord, error) {
	for _, record := range p.roster {
		if record.ID == practitionerID {
			return record, nil
		}
	}
	return models.PractitionerRecord{}, exceptions.ErrNoPractitionerResolved(nil)
}
