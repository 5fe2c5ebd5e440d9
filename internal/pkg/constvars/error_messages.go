package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"not_blank": "must not be blank",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"len":       "must be %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"url":       "must be a valid URL",
	"uuid":      "must be a valid UUID",
	"iso4217":   "must be a valid currency code",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check your input"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"

	ErrClientNoPatientSelected       = "Please select a patient before building the document"
	ErrClientNoPractitionerResolved  = "No practitioner could be resolved, please select one"
	ErrClientPatientNotFound         = "The selected patient could not be found"
	ErrClientAttachmentUnreadable    = "One of the attached files could not be read, please re-attach it and try again"
	ErrClientAttesterNeedsOrg        = "An organization attester requires an organization name"
	ErrClientSubmissionFailed        = "The document bundle could not be delivered to the health exchange"
	ErrClientBundleIntegrityViolated = "The assembled document failed an internal consistency check"
)

// Developer-facing messages
const (
	ErrDevCannotParseJSON          = "Failed to parse JSON body"
	ErrDevCannotParseMultipartForm = "Failed to parse multipart form"
	ErrDevCannotMarshalJSON        = "Failed to marshal JSON"
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevServerDeadlineExceeded   = "Server deadline exceeded"
	ErrDevBuildRequest             = "Failed to build request"
	ErrDevInvalidInput             = "Invalid input"
	ErrDevCreateHTTPRequest        = "Failed to create HTTP request"
	ErrDevSendHTTPRequest          = "Failed to send HTTP request"
	ErrDevDecodeResponse           = "Failed to decode response for resource: %s"

	ErrDevNoPatientSelected      = "No patient selected for the build"
	ErrDevPatientNotFound        = "Patient id not present in any configured source"
	ErrDevNoPractitionerResolved = "Practitioner provider yielded no practitioner"
	ErrDevPatientSourceExhausted = "Every configured patient source failed or returned no records"
	ErrDevAttachmentRead         = "Failed to read uploaded attachment: %s"
	ErrDevAttesterNeedsOrg       = "Attester party set to organization without an organization name"
	ErrDevGatewayRejected        = "Exchange gateway rejected the bundle: %s"
	ErrDevDanglingReference      = "Bundle contains a reference that resolves to no entry: %s"
	ErrDevDuplicateEntryID       = "Bundle contains a duplicated entry identifier: %s"
	ErrDevRootNotFirst           = "Document root is not the first bundle entry"

	ErrDevRedisSetFailed      = "Failed to set value in Redis"
	ErrDevRedisGetFailed      = "Failed to get value from Redis"
	ErrDevMinioCreateObject   = "Failed to store object in bucket: %s"
	ErrDevQueuePublishFailed  = "Failed to publish message to queue"
	ErrDevQueueDeclareFailed  = "Failed to declare queue"
	ErrDevQueueConfirmTimeout = "Timed out waiting for publisher confirm"
)
