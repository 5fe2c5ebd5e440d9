package routers

import (
	"arogya-service/internal/app/services/core/documents"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, documentController *documents.DocumentController) {
	router.Post("/", documentController.BuildDocument)
	router.Post("/invoice", documentController.BuildInvoice)
	router.Post("/submit", documentController.SubmitDocument)
}
