package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient / practitioner listing
	PatientListSuccess      = "patients fetched successfully"
	AbhaAddressListSuccess  = "abha addresses fetched successfully"
	PractitionerListSuccess = "practitioners fetched successfully"

	// Document bundle
	DocumentBuildSuccess  = "document bundle built successfully"
	InvoiceBuildSuccess   = "invoice bundle built successfully"
	DocumentSubmitSuccess = "document bundle submitted successfully"
)
