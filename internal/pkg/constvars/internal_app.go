package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

// Practitioner provider modes, selected by configuration.
const (
	PractitionerProviderRoster   = "roster"
	PractitionerProviderInjected = "injected"
)

// Fallback practitioner identity used when the injected practitioner object is
// absent or malformed.
const (
	PractitionerFallbackID      = "practitioner-default"
	PractitionerFallbackName    = "Dr. Unknown"
	PractitionerFallbackLicense = "NA"
)

// Placeholder facility identifier stamped on custodian/attester organizations.
// The form does not capture a registered facility id yet.
const PlaceholderFacilityID = "FACILITY-0001"

const (
	URLParamPatientID = "patient_id"

	FormFieldFiles = "files"

	PatientListCacheKey = "arogya:patients"
)
