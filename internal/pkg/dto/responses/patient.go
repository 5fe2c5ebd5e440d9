package responses

type PatientSummary struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Gender        string        `json:"gender,omitempty"`
	BirthDate     string        `json:"birth_date,omitempty"`
	Mobile        string        `json:"mobile,omitempty"`
	Email         string        `json:"email,omitempty"`
	MRN           string        `json:"mrn,omitempty"`
	AbhaReference string        `json:"abha_reference,omitempty"`
	AbhaAddresses []AbhaAddress `json:"abha_addresses,omitempty"`
}

type AbhaAddress struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Primary bool   `json:"primary"`
}

type PractitionerSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	License string `json:"license,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}
