package contracts

import (
	"context"

	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
)

type DocumentUsecase interface {
	BuildDocument(ctx context.Context, request *requests.BuildDocument) (*responses.DocumentBundle, error)
	BuildInvoice(ctx context.Context, request *requests.BuildInvoice) (*responses.DocumentBundle, error)
	SubmitDocument(ctx context.Context, request *requests.SubmitDocument) (*responses.Submission, error)
}
