package contracts

import "context"

// SubmissionAudit records every gateway submission attempt on a durable queue.
type SubmissionAudit struct {
	BundleID         string `json:"bundle_id"`
	PatientReference string `json:"patient_reference"`
	Submitted        bool   `json:"submitted"`
	Detail           string `json:"detail,omitempty"`
	OccurredAt       string `json:"occurred_at"`
}

type AuditQueue interface {
	PublishSubmission(ctx context.Context, audit SubmissionAudit) error
}
