package contracts

import (
	"context"
)

// Storage archives build artifacts (uploaded attachments and assembled
// bundles) into object storage. Archiving is best-effort and never fails a
// build.
type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, payload []byte) (string, error)
}
