package requests

import "mime/multipart"

// BuildDocument carries the clinician-entered form state for one build.
// Required fields are validated before any record is constructed.
type BuildDocument struct {
	PatientID        string `json:"patient_id" validate:"required"`
	PractitionerID   string `json:"practitioner_id"`
	Status           string `json:"status" validate:"required,oneof=preliminary final amended entered-in-error"`
	Title            string `json:"title" validate:"required,not_blank"`
	DocumentDate     string `json:"document_date"`
	EncounterText    string `json:"encounter_text"`
	OrganizationName string `json:"organization_name"`
	AbhaAddress      string `json:"abha_address"`
	AttesterParty    string `json:"attester_party" validate:"omitempty,oneof=organization practitioner"`

	Files []*multipart.FileHeader `json:"-"`
}

// BuildInvoice is the invoice-variant build form.
type BuildInvoice struct {
	BuildDocument

	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
	Note     string  `json:"note"`
}

// SubmitDocument wraps a build with the numeric patient reference the exchange
// expects alongside the bundle payload.
type SubmitDocument struct {
	BuildDocument

	PatientReference string `json:"patient_reference" validate:"required,numeric"`
}
