package routers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/documents"
	"arogya-service/internal/app/services/core/patients"
	"arogya-service/internal/app/services/core/practitioners"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/fhir_dto"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPatientUsecase struct{}

func (s *stubPatientUsecase) ListPatients(ctx context.Context) ([]responses.PatientSummary, error) {
	return []responses.PatientSummary{{ID: "pat-1", Name: "Asha Rao"}}, nil
}

func (s *stubPatientUsecase) ListAbhaAddresses(ctx context.Context, patientID string) ([]responses.AbhaAddress, error) {
	if patientID != "pat-1" {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return []responses.AbhaAddress{{Value: "asha@abdm", Primary: true}}, nil
}

type stubPractitionerUsecase struct{}

func (s *stubPractitionerUsecase) ListPractitioners(ctx context.Context) ([]responses.PractitionerSummary, error) {
	return []responses.PractitionerSummary{{ID: "hpr-0001", Name: "Dr. Meera Sharma"}}, nil
}

type stubDocumentUsecase struct {
	lastBuild *requests.BuildDocument
}

func (s *stubDocumentUsecase) BuildDocument(ctx context.Context, request *requests.BuildDocument) (*responses.DocumentBundle, error) {
	s.lastBuild = request
	return &responses.DocumentBundle{
		BundleID: "b-1",
		Bundle:   &fhir_dto.Bundle{ResourceType: constvars.ResourceBundle, ID: "b-1"},
	}, nil
}

func (s *stubDocumentUsecase) BuildInvoice(ctx context.Context, request *requests.BuildInvoice) (*responses.DocumentBundle, error) {
	return &responses.DocumentBundle{BundleID: "b-2"}, nil
}

func (s *stubDocumentUsecase) SubmitDocument(ctx context.Context, request *requests.SubmitDocument) (*responses.Submission, error) {
	return &responses.Submission{BundleID: "b-3", Submitted: true}, nil
}

func newTestRouter(documentUsecase *stubDocumentUsecase) *chi.Mux {
	log := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			MaxRequests:    100,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(log, internalConfig),
		patients.NewPatientController(log, &stubPatientUsecase{}),
		practitioners.NewPractitionerController(log, &stubPractitionerUsecase{}),
		documents.NewDocumentController(log, documentUsecase),
	)
	return router
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) responses.ResponseDTO {
	t.Helper()
	var response responses.ResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(&stubDocumentUsecase{})

	t.Run("list patients", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/patients/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		response := decodeResponse(t, rec)
		assert.True(t, response.Success)
		assert.Equal(t, constvars.PatientListSuccess, response.Message)
	})

	t.Run("list abha addresses", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/patients/pat-1/abha-addresses", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown patient returns 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/patients/pat-404/abha-addresses", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list practitioners", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/practitioners/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("request id header is set", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/practitioners/", nil))

		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("client request id is honored", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/practitioners/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "client-supplied-id", rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestBuildDocumentEndpoint(t *testing.T) {
	usecase := &stubDocumentUsecase{}
	router := newTestRouter(usecase)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("patient_id", "pat-1"))
	require.NoError(t, writer.WriteField("status", "final"))
	require.NoError(t, writer.WriteField("title", "Discharge summary"))
	part, err := writer.CreateFormFile(constvars.FormFieldFiles, "report.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/documents/", &body)
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, usecase.lastBuild)
	assert.Equal(t, "pat-1", usecase.lastBuild.PatientID)
	assert.Len(t, usecase.lastBuild.Files, 1)

	t.Run("non multipart body rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/documents/", bytes.NewBufferString(`{"patient_id":"pat-1"}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
