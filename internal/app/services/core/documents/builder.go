package documents

import (
	"fmt"
	"strings"

	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/fhir_dto"
	"arogya-service/internal/pkg/utils"
)

// Record builders. Each one is a pure function of normalized form state and
// already-generated identifiers; nothing here touches the clock or the
// network.

func buildPatientResource(id string, record models.PatientRecord, abhaAddress string) fhir_dto.Patient {
	patient := fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           id,
		Text: utils.BuildNarrative(constvars.ResourcePatient,
			fmt.Sprintf("<p>%s</p>", utils.EscapeNarrativeText(record.Name))),
		Gender:    strings.ToLower(record.Gender),
		BirthDate: utils.ToCanonicalDate(record.BirthDate),
	}

	if record.Name != "" {
		patient.Name = []fhir_dto.HumanName{{Text: record.Name}}
	}

	// Local medical-record identifier first, then the health-exchange
	// identifier when present.
	patient.Identifier = []fhir_dto.Identifier{{
		System: constvars.SystemMRN,
		Value:  record.LocalIdentifierValue(),
		Type:   utils.IdentifierTypeConcept(constvars.IdentifierTypeMRN),
	}}
	if record.AbhaReference != "" {
		patient.Identifier = append(patient.Identifier, fhir_dto.Identifier{
			System: constvars.SystemABHANumber,
			Value:  record.AbhaReference,
		})
	}

	// Telecom order: phone, email, then the synthesized health-exchange
	// contact line when an address was chosen.
	if record.Mobile != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: constvars.ContactPointSystemPhone,
			Value:  record.Mobile,
			Use:    "mobile",
		})
	}
	if record.Email != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: constvars.ContactPointSystemEmail,
			Value:  record.Email,
		})
	}
	if abhaAddress != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: constvars.ContactPointSystemOther,
			Value:  abhaAddress,
		})
	}

	if record.Address != "" {
		patient.Address = []fhir_dto.Address{{Use: "home", Text: record.Address}}
	}

	return patient
}

func buildPractitionerResource(id string, record models.PractitionerRecord) fhir_dto.Practitioner {
	practitioner := fhir_dto.Practitioner{
		ResourceType: constvars.ResourcePractitioner,
		ID:           id,
		Text: utils.BuildNarrative(constvars.ResourcePractitioner,
			fmt.Sprintf("<p>%s</p>", utils.EscapeNarrativeText(record.Name))),
		Name: []fhir_dto.HumanName{{Text: record.Name}},
		Identifier: []fhir_dto.Identifier{{
			System: constvars.SystemHPRLicense,
			Value:  record.License,
			Type:   utils.IdentifierTypeConcept(constvars.IdentifierTypeLicense),
		}},
	}

	if record.Phone != "" {
		practitioner.Telecom = append(practitioner.Telecom, fhir_dto.ContactPoint{
			System: constvars.ContactPointSystemPhone,
			Value:  record.Phone,
			Use:    "work",
		})
	}
	if record.Email != "" {
		practitioner.Telecom = append(practitioner.Telecom, fhir_dto.ContactPoint{
			System: constvars.ContactPointSystemEmail,
			Value:  record.Email,
		})
	}

	return practitioner
}

// buildOrganizationResource always stamps the fixed placeholder facility
// identifier; the form does not capture a registered facility id.
func buildOrganizationResource(id, name string) fhir_dto.Organization {
	return fhir_dto.Organization{
		ResourceType: constvars.ResourceOrganization,
		ID:           id,
		Text: utils.BuildNarrative(constvars.ResourceOrganization,
			fmt.Sprintf("<p>%s</p>", utils.EscapeNarrativeText(name))),
		Identifier: []fhir_dto.Identifier{{
			System: constvars.SystemFacilityID,
			Value:  constvars.PlaceholderFacilityID,
		}},
		Name: name,
	}
}

// buildEncounterResource stamps the build time as both period start and end,
// not the clinician-entered document time.
func buildEncounterResource(id, freeText, patientRef, builtAt string) fhir_dto.Encounter {
	return fhir_dto.Encounter{
		ResourceType: constvars.ResourceEncounter,
		ID:           id,
		Text: utils.BuildNarrative(constvars.ResourceEncounter,
			fmt.Sprintf("<p>%s</p>", utils.EscapeNarrativeText(freeText))),
		Status: constvars.EncounterStatusFinished,
		Class: &fhir_dto.Coding{
			System:  constvars.SystemActCode,
			Code:    constvars.EncounterClassCode,
			Display: constvars.EncounterClassDisplay,
		},
		Subject: &fhir_dto.Reference{Reference: patientRef},
		Period:  &fhir_dto.Period{Start: builtAt, End: builtAt},
	}
}

func buildAttachmentPair(docRefID, binaryID string, input AttachmentInput, patientRef, builtAt string) (fhir_dto.DocumentReference, fhir_dto.Binary) {
	binary := fhir_dto.Binary{
		ResourceType: constvars.ResourceBinary,
		ID:           binaryID,
		ContentType:  input.ContentType,
		Data:         EncodeAttachment(input.Payload),
	}

	documentReference := fhir_dto.DocumentReference{
		ResourceType: constvars.ResourceDocumentReference,
		ID:           docRefID,
		Text: utils.BuildNarrative(constvars.ResourceDocumentReference,
			fmt.Sprintf("<p>%s</p>", utils.EscapeNarrativeText(input.FileName))),
		Status:  constvars.DocRefStatusCurrent,
		Type:    utils.SnomedConcept(constvars.DocumentTypeCode, constvars.DocumentTypeDisplay),
		Subject: &fhir_dto.Reference{Reference: patientRef},
		Date:    builtAt,
		Content: []fhir_dto.DocumentReferenceContent{{
			Attachment: fhir_dto.Attachment{
				ContentType: input.ContentType,
				URL:         utils.LocalReference(binaryID),
				Title:       input.FileName,
				Creation:    builtAt,
			},
		}},
	}

	return documentReference, binary
}

func buildInvoiceResource(id string, request invoiceDetails, patientRef, practitionerRef, issuerRef, date string) fhir_dto.Invoice {
	currency := request.Currency
	if currency == "" {
		currency = "INR"
	}

	invoice := fhir_dto.Invoice{
		ResourceType: constvars.ResourceInvoice,
		ID:           id,
		Text: utils.BuildNarrative(constvars.ResourceInvoice,
			fmt.Sprintf("<p>%s</p>", utils.EscapeNarrativeText(request.Title))),
		Status:  request.Status,
		Subject: &fhir_dto.Reference{Reference: patientRef},
		Date:    date,
		Participant: []fhir_dto.InvoiceParticipant{{
			Actor: fhir_dto.Reference{Reference: practitionerRef},
		}},
		TotalGross: &fhir_dto.Money{Value: request.Amount, Currency: currency},
	}

	if issuerRef != "" {
		invoice.Issuer = &fhir_dto.Reference{Reference: issuerRef}
	}
	if request.Note != "" {
		invoice.Note = []fhir_dto.Annotation{{Text: request.Note}}
	}

	return invoice
}

// invoiceDetails is the slice of the invoice form the invoice builder needs.
type invoiceDetails struct {
	Status   string
	Title    string
	Amount   float64
	Currency string
	Note     string
}

// rootSpec collects everything the document-root builder needs, with every
// cross-reference already resolved to a bundle-local temporary URL.
type rootSpec struct {
	Status          string
	Title           string
	Date            string
	PatientRef      string
	PractitionerRef string
	EncounterRef    string
	CustodianRef    string
	AttesterRef     string
	SectionEntries  []fhir_dto.Reference
	BuiltAt         string
}

// buildCompositionResource builds the document root. Attester policy: the
// explicitly chosen party wins; otherwise a default "official" attester
// referencing the practitioner is synthesized.
func buildCompositionResource(id string, spec rootSpec) fhir_dto.Composition {
	composition := fhir_dto.Composition{
		ResourceType: constvars.ResourceComposition,
		ID:           id,
		Text: utils.BuildNarrative(spec.Title,
			fmt.Sprintf("<p>status: %s</p>", utils.EscapeNarrativeText(spec.Status))),
		Status:  spec.Status,
		Type:    utils.SnomedConcept(constvars.DocumentTypeCode, constvars.DocumentTypeDisplay),
		Subject: &fhir_dto.Reference{Reference: spec.PatientRef},
		Date:    spec.Date,
		Author:  []fhir_dto.Reference{{Reference: spec.PractitionerRef}},
		Title:   spec.Title,
	}

	attesterRef := spec.AttesterRef
	if attesterRef == "" {
		attesterRef = spec.PractitionerRef
	}
	composition.Attester = []fhir_dto.CompositionAttester{{
		Mode:  constvars.AttesterModeOfficial,
		Time:  spec.BuiltAt,
		Party: &fhir_dto.Reference{Reference: attesterRef},
	}}

	if spec.EncounterRef != "" {
		composition.Encounter = &fhir_dto.Reference{Reference: spec.EncounterRef}
	}
	if spec.CustodianRef != "" {
		composition.Custodian = &fhir_dto.Reference{Reference: spec.CustodianRef}
	}

	composition.Section = []fhir_dto.CompositionSection{{
		Title: constvars.SectionTitleHealthDocuments,
		Code:  utils.SnomedConcept(constvars.DocumentTypeCode, constvars.DocumentTypeDisplay),
		Entry: spec.SectionEntries,
	}}

	return composition
}
