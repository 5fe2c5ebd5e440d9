package fhir_dto

type Encounter struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id,omitempty"`
	Text         *Narrative `json:"text,omitempty"`
	Status       string     `json:"status,omitempty"`
	Class        *Coding    `json:"class,omitempty"`
	Subject      *Reference `json:"subject,omitempty"`
	Period       *Period    `json:"period,omitempty"`
}
