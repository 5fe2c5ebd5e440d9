package documents

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientProvider struct {
	records []models.PatientRecord
}

func (f *fakePatientProvider) ListPatients(ctx context.Context) ([]models.PatientRecord, error) {
	return f.records, nil
}

func (f *fakePatientProvider) FindPatient(ctx context.Context, patientID string) (models.PatientRecord, error) {
	for _, record := range f.records {
		if record.ID == patientID {
			return record, nil
		}
	}
	return models.PatientRecord{}, exceptions.ErrPatientNotFound(nil)
}

type fakePractitionerProvider struct {
	record models.PractitionerRecord
}

func (f *fakePractitionerProvider) ListPractitioners(ctx context.Context) ([]models.PractitionerRecord, error) {
	return []models.PractitionerRecord{f.record}, nil
}

func (f *fakePractitionerProvider) ResolvePractitioner(ctx context.Context, practitionerID string) (models.PractitionerRecord, error) {
	return f.record, nil
}

type fakeGateway struct {
	err       error
	submitted []*fhir_dto.Bundle
}

func (f *fakeGateway) SubmitBundle(ctx context.Context, bundle *fhir_dto.Bundle, patientReference string) error {
	f.submitted = append(f.submitted, bundle)
	return f.err
}

type fakeStorage struct {
	objects []string
}

func (f *fakeStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, payload []byte) (string, error) {
	f.objects = append(f.objects, objectName)
	return objectName, nil
}

type fakeAuditQueue struct {
	events []contracts.SubmissionAudit
}

func (f *fakeAuditQueue) PublishSubmission(ctx context.Context, audit contracts.SubmissionAudit) error {
	f.events = append(f.events, audit)
	return nil
}

type usecaseFixture struct {
	usecase contracts.DocumentUsecase
	gateway *fakeGateway
	storage *fakeStorage
	audit   *fakeAuditQueue
}

func newUsecaseFixture(gatewayErr error) *usecaseFixture {
	patientProvider := &fakePatientProvider{records: []models.PatientRecord{{
		ID:        "pat-1",
		Name:      "Asha Rao",
		Gender:    "female",
		BirthDate: "07-03-1992",
		MRN:       "MRN-100",
	}}}
	practitionerProvider := &fakePractitionerProvider{record: models.PractitionerRecord{
		ID:      "hpr-0001",
		Name:    "Dr. Meera Sharma",
		License: "MH-2019-44821",
	}}
	gateway := &fakeGateway{err: gatewayErr}
	storage := &fakeStorage{}
	audit := &fakeAuditQueue{}

	return &usecaseFixture{
		usecase: NewDocumentUsecase(patientProvider, practitionerProvider, gateway, storage, audit, zap.NewNop(), "test-bucket"),
		gateway: gateway,
		storage: storage,
		audit:   audit,
	}
}

func baseRequest() *requests.BuildDocument {
	return &requests.BuildDocument{
		PatientID:      "pat-1",
		PractitionerID: "hpr-0001",
		Status:         "final",
		Title:          "Discharge summary",
	}
}

// multipartFiles builds real file headers by round-tripping an in-memory
// multipart form through request parsing.
func multipartFiles(t *testing.T, names []string, contents []string) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for i, name := range names {
		part, err := writer.CreateFormFile(constvars.FormFieldFiles, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(contents[i]))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File[constvars.FormFieldFiles]
}

func resourceTypes(bundle *fhir_dto.Bundle) []string {
	types := make([]string, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		types = append(types, resourceTypeOf(entry.Resource))
	}
	return types
}

func TestBuildDocument(t *testing.T) {
	t.Run("full form yields ordered entries", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.EncounterText = "Follow-up visit"
		request.OrganizationName = "Sunrise Clinic"
		request.Files = multipartFiles(t, []string{"report.pdf"}, []string{"%PDF-1.4"})

		result, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, result.Bundle)
		assert.Equal(t, result.Bundle.ID, result.BundleID)

		assert.Equal(t, []string{
			constvars.ResourceComposition,
			constvars.ResourcePatient,
			constvars.ResourcePractitioner,
			constvars.ResourceEncounter,
			constvars.ResourceOrganization,
			constvars.ResourceDocumentReference,
			constvars.ResourceBinary,
		}, resourceTypes(result.Bundle))
	})

	t.Run("zero files substitutes placeholder pair", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)

		result, err := fixture.usecase.BuildDocument(context.Background(), baseRequest())
		require.NoError(t, err)

		types := resourceTypes(result.Bundle)
		assert.Contains(t, types, constvars.ResourceDocumentReference)
		assert.Contains(t, types, constvars.ResourceBinary)

		var docRef fhir_dto.DocumentReference
		for _, entry := range result.Bundle.Entry {
			if dr, ok := entry.Resource.(fhir_dto.DocumentReference); ok {
				docRef = dr
			}
		}
		require.Len(t, docRef.Content, 1)
		assert.Equal(t, constvars.PlaceholderAttachmentTitle, docRef.Content[0].Attachment.Title)
	})

	t.Run("multiple files preserve upload order", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.Files = multipartFiles(t,
			[]string{"first.txt", "second.txt", "third.txt"},
			[]string{"one", "two", "three"})

		result, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.NoError(t, err)

		var titles []string
		for _, entry := range result.Bundle.Entry {
			if dr, ok := entry.Resource.(fhir_dto.DocumentReference); ok {
				titles = append(titles, dr.Content[0].Attachment.Title)
			}
		}
		assert.Equal(t, []string{"first.txt", "second.txt", "third.txt"}, titles)
	})

	t.Run("every reference resolves inside the bundle", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.EncounterText = "Visit"
		request.OrganizationName = "Clinic"

		result, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.NoError(t, err)
		assert.NoError(t, verifyBundle(*result.Bundle))
	})

	t.Run("blank patient is a distinct error", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.PatientID = "  "

		_, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientNoPatientSelected, customErr.ClientMessage)
	})

	t.Run("missing status is a validation error", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.Status = ""

		_, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.NotEqual(t, constvars.ErrClientNoPatientSelected, customErr.ClientMessage)
	})

	t.Run("unknown patient propagates not found", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.PatientID = "pat-404"

		_, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("unreadable upload aborts the build", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.Files = []*multipart.FileHeader{{Filename: "scan.pdf", Size: 12}}

		result, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.Error(t, err)
		assert.Nil(t, result)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientAttachmentUnreadable, customErr.ClientMessage)
		assert.Contains(t, customErr.DevMessage, "scan.pdf")
		assert.Empty(t, fixture.storage.objects, "nothing is archived for an aborted build")
	})

	t.Run("organization attester without a name is rejected", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.AttesterParty = constvars.AttesterPartyOrganization

		_, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientAttesterNeedsOrg, customErr.ClientMessage)
	})

	t.Run("organization attester points at the custodian", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.OrganizationName = "Sunrise Clinic"
		request.AttesterParty = constvars.AttesterPartyOrganization

		result, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.NoError(t, err)

		composition, ok := result.Bundle.Entry[0].Resource.(fhir_dto.Composition)
		require.True(t, ok)
		var organizationURL string
		for _, entry := range result.Bundle.Entry {
			if _, isOrg := entry.Resource.(fhir_dto.Organization); isOrg {
				organizationURL = entry.FullURL
			}
		}
		require.NotEmpty(t, organizationURL)
		require.Len(t, composition.Attester, 1)
		assert.Equal(t, organizationURL, composition.Attester[0].Party.Reference)
	})

	t.Run("bundle and attachments archived", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := baseRequest()
		request.Files = multipartFiles(t, []string{"report.pdf"}, []string{"%PDF-1.4"})

		_, err := fixture.usecase.BuildDocument(context.Background(), request)
		require.NoError(t, err)

		require.Len(t, fixture.storage.objects, 2)
		assert.Contains(t, fixture.storage.objects[0], "bundle.json")
		assert.Contains(t, fixture.storage.objects[1], "report.pdf")
	})
}

func TestBuildDocumentMinimalScenario(t *testing.T) {
	patientProvider := &fakePatientProvider{records: []models.PatientRecord{{
		ID:        "pat-asha",
		Name:      "Asha",
		Gender:    "Female",
		BirthDate: "01-02-1990",
		Mobile:    "9999999999",
	}}}
	practitionerProvider := &fakePractitionerProvider{record: models.PractitionerRecord{
		ID:      "hpr-x",
		Name:    "Dr. X",
		License: "LIC-1",
	}}
	usecase := NewDocumentUsecase(patientProvider, practitionerProvider,
		&fakeGateway{}, &fakeStorage{}, &fakeAuditQueue{}, zap.NewNop(), "test-bucket")

	result, err := usecase.BuildDocument(context.Background(), &requests.BuildDocument{
		PatientID: "pat-asha",
		Status:    "final",
		Title:     "Record",
	})
	require.NoError(t, err)

	require.Len(t, result.Bundle.Entry, 5)
	assert.Equal(t, []string{
		constvars.ResourceComposition,
		constvars.ResourcePatient,
		constvars.ResourcePractitioner,
		constvars.ResourceDocumentReference,
		constvars.ResourceBinary,
	}, resourceTypes(result.Bundle))

	patient, ok := result.Bundle.Entry[1].Resource.(fhir_dto.Patient)
	require.True(t, ok)
	assert.Equal(t, "1990-02-01", patient.BirthDate)
	assert.Equal(t, "female", patient.Gender)

	composition, ok := result.Bundle.Entry[0].Resource.(fhir_dto.Composition)
	require.True(t, ok)
	assert.Equal(t, "Record", composition.Title)
	assert.Equal(t, "final", composition.Status)
	require.Len(t, composition.Attester, 1)
	assert.Equal(t, result.Bundle.Entry[2].FullURL, composition.Attester[0].Party.Reference)
}

func TestBuildInvoice(t *testing.T) {
	fixture := newUsecaseFixture(nil)
	request := &requests.BuildInvoice{
		BuildDocument: *baseRequest(),
		Amount:        750,
		Note:          "Paid in cash",
	}

	result, err := fixture.usecase.BuildInvoice(context.Background(), request)
	require.NoError(t, err)

	types := resourceTypes(result.Bundle)
	assert.Contains(t, types, constvars.ResourceInvoice)
	assert.NotContains(t, types, constvars.ResourceDocumentReference,
		"invoice builds carry no placeholder attachment")
	assert.NoError(t, verifyBundle(*result.Bundle))
}

func TestSubmitDocument(t *testing.T) {
	submitRequest := func() *requests.SubmitDocument {
		return &requests.SubmitDocument{
			BuildDocument:    *baseRequest(),
			PatientReference: "12345",
		}
	}

	t.Run("accepted submission", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)

		result, err := fixture.usecase.SubmitDocument(context.Background(), submitRequest())
		require.NoError(t, err)
		assert.True(t, result.Submitted)
		assert.Empty(t, result.GatewayDetail)
		require.Len(t, fixture.gateway.submitted, 1)
		assert.Equal(t, result.BundleID, fixture.gateway.submitted[0].ID)

		require.Len(t, fixture.audit.events, 1)
		assert.True(t, fixture.audit.events[0].Submitted)
		assert.Equal(t, "12345", fixture.audit.events[0].PatientReference)
	})

	t.Run("gateway rejection keeps the bundle", func(t *testing.T) {
		fixture := newUsecaseFixture(exceptions.ErrGatewayRejected(errors.New("boom"), "invalid bundle"))

		result, err := fixture.usecase.SubmitDocument(context.Background(), submitRequest())
		require.NoError(t, err)
		assert.False(t, result.Submitted)
		assert.Contains(t, result.GatewayDetail, "invalid bundle")
		require.NotNil(t, result.Bundle)

		require.Len(t, fixture.audit.events, 1)
		assert.False(t, fixture.audit.events[0].Submitted)
	})

	t.Run("missing patient reference fails validation", func(t *testing.T) {
		fixture := newUsecaseFixture(nil)
		request := submitRequest()
		request.PatientReference = ""

		_, err := fixture.usecase.SubmitDocument(context.Background(), request)
		require.Error(t, err)
		assert.Empty(t, fixture.gateway.submitted)
	})
}
