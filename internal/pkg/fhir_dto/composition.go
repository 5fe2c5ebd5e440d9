package fhir_dto

// Composition is the document root. Its single section lists every
// DocumentReference (or the Invoice) carried by the bundle.
type Composition struct {
	ResourceType string                `json:"resourceType"`
	ID           string                `json:"id,omitempty"`
	Text         *Narrative            `json:"text,omitempty"`
	Status       string                `json:"status,omitempty"`
	Type         *CodeableConcept      `json:"type,omitempty"`
	Subject      *Reference            `json:"subject,omitempty"`
	Encounter    *Reference            `json:"encounter,omitempty"`
	Date         string                `json:"date,omitempty"`
	Author       []Reference           `json:"author,omitempty"`
	Title        string                `json:"title,omitempty"`
	Attester     []CompositionAttester `json:"attester,omitempty"`
	Custodian    *Reference            `json:"custodian,omitempty"`
	Section      []CompositionSection  `json:"section,omitempty"`
}

type CompositionAttester struct {
	Mode  string     `json:"mode,omitempty"`
	Time  string     `json:"time,omitempty"`
	Party *Reference `json:"party,omitempty"`
}

type CompositionSection struct {
	Title string           `json:"title,omitempty"`
	Code  *CodeableConcept `json:"code,omitempty"`
	Entry []Reference      `json:"entry,omitempty"`
}
