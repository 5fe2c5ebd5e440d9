package models

// PatientRecord is the canonical internal shape every loose patient source is
// normalized into at the boundary. Builders never re-sniff input shapes.
type PatientRecord struct {
	ID            string
	Name          string
	Gender        string
	BirthDate     string // as entered; canonicalized at build time
	Mobile        string
	Email         string
	Address       string
	MRN           string
	ReferenceID   string
	AbhaReference string
	AbhaAddresses []AbhaAddress
}

// AbhaAddress is one health-exchange routing address. Primary addresses sort
// first so the UI's default selection is reproducible.
type AbhaAddress struct {
	Value   string
	Label   string
	Primary bool
}

// LocalIdentifierValue picks the value used for the medical-record-style
// identifier, in priority order.
func (p PatientRecord) LocalIdentifierValue() string {
	switch {
	case p.MRN != "":
		return p.MRN
	case p.ReferenceID != "":
		return p.ReferenceID
	case p.AbhaReference != "":
		return p.AbhaReference
	default:
		return p.ID
	}
}
