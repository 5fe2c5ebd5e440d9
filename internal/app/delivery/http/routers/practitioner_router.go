package routers

import (
	"arogya-service/internal/app/services/core/practitioners"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, practitionerController *practitioners.PractitionerController) {
	router.Get("/", practitionerController.ListPractitioners)
}
