package documents

import (
	"encoding/base64"
	"io"
	"mime/multipart"

	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
)

// AttachmentInput is one uploaded file, fully read into memory. Every
// attachment must be read before the document root is sealed, because the
// root's section references the attachment identifiers.
type AttachmentInput struct {
	FileName    string
	ContentType string
	Payload     []byte
}

// ReadAttachments drains every uploaded file in input order. A read failure
// surfaces as a distinct attachment error naming the file; it is never
// silently replaced by the placeholder.
func ReadAttachments(files []*multipart.FileHeader) ([]AttachmentInput, error) {
	attachments := make([]AttachmentInput, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, exceptions.ErrAttachmentRead(err, fileHeader.Filename)
		}
		payload, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, exceptions.ErrAttachmentRead(err, fileHeader.Filename)
		}

		contentType := fileHeader.Header.Get(constvars.HeaderContentType)
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		attachments = append(attachments, AttachmentInput{
			FileName:    fileHeader.Filename,
			ContentType: contentType,
			Payload:     payload,
		})
	}
	return attachments, nil
}

// PlaceholderAttachment is substituted when no file was uploaded, so the
// Binary/DocumentReference pairing invariant always holds.
func PlaceholderAttachment() AttachmentInput {
	return AttachmentInput{
		FileName:    constvars.PlaceholderAttachmentTitle,
		ContentType: constvars.PlaceholderAttachmentContentType,
		Payload:     []byte(constvars.PlaceholderAttachmentPayload),
	}
}

// EncodeAttachment renders the payload as plain base64, no data-URL prefix.
func EncodeAttachment(payload []byte) string {
	return base64.StdEncoding.EncodeToString(payload)
}
