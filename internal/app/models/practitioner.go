package models

// PractitionerRecord is the canonical practitioner shape, whichever provider
// (static roster or external injection) produced it.
type PractitionerRecord struct {
	ID      string
	Name    string
	License string
	Phone   string
	Email   string
}
