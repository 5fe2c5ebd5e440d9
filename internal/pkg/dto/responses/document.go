package responses

import "arogya-service/internal/pkg/fhir_dto"

type DocumentBundle struct {
	BundleID string           `json:"bundle_id"`
	Bundle   *fhir_dto.Bundle `json:"bundle"`
}

// Submission reports the gateway outcome. The bundle is returned either way so
// a failed submission can be inspected and retried without rebuilding.
type Submission struct {
	BundleID      string           `json:"bundle_id"`
	Submitted     bool             `json:"submitted"`
	GatewayDetail string           `json:"gateway_detail,omitempty"`
	Bundle        *fhir_dto.Bundle `json:"bundle"`
}
