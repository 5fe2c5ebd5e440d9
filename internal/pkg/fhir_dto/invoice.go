package fhir_dto

type Invoice struct {
	ResourceType string               `json:"resourceType"`
	ID           string               `json:"id,omitempty"`
	Text         *Narrative           `json:"text,omitempty"`
	Status       string               `json:"status,omitempty"`
	Subject      *Reference           `json:"subject,omitempty"`
	Date         string               `json:"date,omitempty"`
	Participant  []InvoiceParticipant `json:"participant,omitempty"`
	Issuer       *Reference           `json:"issuer,omitempty"`
	TotalGross   *Money               `json:"totalGross,omitempty"`
	Note         []Annotation         `json:"note,omitempty"`
}

type InvoiceParticipant struct {
	Role  *CodeableConcept `json:"role,omitempty"`
	Actor Reference        `json:"actor"`
}
