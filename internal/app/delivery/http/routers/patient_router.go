package routers

import (
	"arogya-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Get("/", patientController.ListPatients)
	router.Get("/{patient_id}/abha-addresses", patientController.ListAbhaAddresses)
}
