package constvars

const (
	ResourceBundle            = "Bundle"
	ResourceComposition       = "Composition"
	ResourcePatient           = "Patient"
	ResourcePractitioner      = "Practitioner"
	ResourceOrganization      = "Organization"
	ResourceEncounter         = "Encounter"
	ResourceDocumentReference = "DocumentReference"
	ResourceBinary            = "Binary"
	ResourceInvoice           = "Invoice"
)

const (
	BundleTypeDocument = "document"

	NarrativeStatusGenerated = "generated"
	NarrativeLanguage        = "en-IN"

	AttesterModeOfficial = "official"

	AttesterPartyOrganization = "organization"
	AttesterPartyPractitioner = "practitioner"

	EncounterStatusFinished = "finished"
	DocRefStatusCurrent     = "current"
)

// Coding systems used across the bundle.
const (
	SystemSnomedCT         = "http://snomed.info/sct"
	SystemIdentifierType   = "http://terminology.hl7.org/CodeSystem/v2-0203"
	SystemActCode          = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	SystemABHANumber       = "https://healthid.abdm.gov.in"
	SystemABHAAddress      = "https://phr.abdm.gov.in"
	SystemHPRLicense       = "https://doctor.abdm.gov.in"
	SystemFacilityID       = "https://facility.abdm.gov.in"
	SystemMRN              = "https://healthfacility.example.in/identifier/mrn"
	SystemBundleIdentifier = "urn:arogya:bundle"
	LocalReferencePrefix   = "urn:uuid:"
	IdentifierTypeMRN      = "MR"
	IdentifierTypeLicense  = "MD"

	ContactPointSystemPhone = "phone"
	ContactPointSystemEmail = "email"
	ContactPointSystemOther = "other"

	SectionTitleHealthDocuments = "Health documents"
)

// Fixed classification of the document root and its section (record artifact).
const (
	DocumentTypeCode    = "419891008"
	DocumentTypeDisplay = "Record artifact"

	EncounterClassCode    = "AMB"
	EncounterClassDisplay = "ambulatory"
)

// Placeholder attachment substituted when no file was uploaded, so the
// Binary/DocumentReference pairing always holds.
const (
	PlaceholderAttachmentTitle       = "placeholder.txt"
	PlaceholderAttachmentContentType = MIMETextPlain
	PlaceholderAttachmentPayload     = "No health document was attached."
)
