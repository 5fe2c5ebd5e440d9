package documents

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/fhir_dto"
	"arogya-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type documentUsecase struct {
	patientProvider      contracts.PatientProvider
	practitionerProvider contracts.PractitionerProvider
	gateway              contracts.ExchangeGateway
	storage              contracts.Storage
	auditQueue           contracts.AuditQueue
	log                  *zap.Logger
	bucketName           string

	// buildMu serializes bundle assembly so concurrent requests against a
	// shared form session never interleave half-built state.
	buildMu sync.Mutex
}

func NewDocumentUsecase(
	patientProvider contracts.PatientProvider,
	practitionerProvider contracts.PractitionerProvider,
	gateway contracts.ExchangeGateway,
	storage contracts.Storage,
	auditQueue contracts.AuditQueue,
	logger *zap.Logger,
	bucketName string,
) contracts.DocumentUsecase {
	return &documentUsecase{
		patientProvider:      patientProvider,
		practitionerProvider: practitionerProvider,
		gateway:              gateway,
		storage:              storage,
		auditQueue:           auditQueue,
		log:                  logger,
		bucketName:           bucketName,
	}
}

func (uc *documentUsecase) BuildDocument(ctx context.Context, request *requests.BuildDocument) (*responses.DocumentBundle, error) {
	bundle, err := uc.buildBundle(ctx, request, nil)
	if err != nil {
		return nil, err
	}
	return &responses.DocumentBundle{BundleID: bundle.ID, Bundle: bundle}, nil
}

func (uc *documentUsecase) BuildInvoice(ctx context.Context, request *requests.BuildInvoice) (*responses.DocumentBundle, error) {
	invoice := &invoiceDetails{
		Status:   request.Status,
		Title:    request.Title,
		Amount:   request.Amount,
		Currency: request.Currency,
		Note:     request.Note,
	}
	bundle, err := uc.buildBundle(ctx, &request.BuildDocument, invoice)
	if err != nil {
		return nil, err
	}
	return &responses.DocumentBundle{BundleID: bundle.ID, Bundle: bundle}, nil
}

// SubmitDocument builds, then forwards the sealed bundle to the exchange.
// Gateway rejection is reported in-band: the bundle survives so the caller
// can inspect or retry without rebuilding. Every attempt lands on the audit
// queue.
func (uc *documentUsecase) SubmitDocument(ctx context.Context, request *requests.SubmitDocument) (*responses.Submission, error) {
	if strings.TrimSpace(request.PatientID) == "" {
		return nil, exceptions.ErrNoPatientSelected()
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	bundle, err := uc.buildBundle(ctx, &request.BuildDocument, nil)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	submission := &responses.Submission{BundleID: bundle.ID, Bundle: bundle}

	if err := uc.gateway.SubmitBundle(ctx, bundle, request.PatientReference); err != nil {
		customErr, ok := err.(*exceptions.CustomError)
		if !ok {
			return nil, err
		}
		submission.GatewayDetail = customErr.DevMessage
		uc.log.Warn("documentUsecase.SubmitDocument gateway rejected bundle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBundleIDKey, bundle.ID),
			zap.Error(err),
		)
	} else {
		submission.Submitted = true
	}

	uc.publishAudit(ctx, submission, request.PatientReference)
	return submission, nil
}

// buildBundle runs the full pipeline: resolve inputs, build records, seal and
// verify the bundle, then archive best-effort. An optional invoice replaces
// the attachment pairs as the section payload's sibling.
func (uc *documentUsecase) buildBundle(ctx context.Context, request *requests.BuildDocument, invoice *invoiceDetails) (*fhir_dto.Bundle, error) {
	uc.buildMu.Lock()
	defer uc.buildMu.Unlock()

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.log.Info("documentUsecase.buildBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if strings.TrimSpace(request.PatientID) == "" {
		return nil, exceptions.ErrNoPatientSelected()
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if invoice != nil {
		if err := utils.ValidateStruct(invoice.toRequestShape(request)); err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
	}
	if request.AttesterParty == constvars.AttesterPartyOrganization && strings.TrimSpace(request.OrganizationName) == "" {
		return nil, exceptions.ErrAttesterNeedsOrganization()
	}

	patient, err := uc.patientProvider.FindPatient(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	practitioner, err := uc.practitionerProvider.ResolvePractitioner(ctx, request.PractitionerID)
	if err != nil {
		return nil, err
	}

	// Read every upload before any resource id is generated, so a failed
	// read aborts the build with nothing half-sealed.
	attachments, err := ReadAttachments(request.Files)
	if err != nil {
		return nil, err
	}
	if invoice == nil && len(attachments) == 0 {
		attachments = []AttachmentInput{PlaceholderAttachment()}
	}

	builtAt := utils.ToOffsetTimestamp(time.Now())
	documentDate := utils.LocalFormInputToOffsetTimestamp(request.DocumentDate)

	ids := struct {
		composition  string
		patient      string
		practitioner string
		encounter    string
		organization string
		invoice      string
	}{
		composition:  utils.NewResourceID(),
		patient:      utils.NewResourceID(),
		practitioner: utils.NewResourceID(),
	}

	patientRef := utils.LocalReference(ids.patient)
	practitionerRef := utils.LocalReference(ids.practitioner)

	spec := rootSpec{
		Status:          request.Status,
		Title:           request.Title,
		Date:            documentDate,
		PatientRef:      patientRef,
		PractitionerRef: practitionerRef,
		BuiltAt:         builtAt,
	}

	var entries []fhir_dto.BundleEntry
	appendEntry := func(id string, resource interface{}) {
		entries = append(entries, fhir_dto.BundleEntry{
			FullURL:  utils.LocalReference(id),
			Resource: resource,
		})
	}

	// Root placeholder first; the composition is built last, once every
	// cross-reference is known, then swapped in.
	entries = append(entries, fhir_dto.BundleEntry{})
	appendEntry(ids.patient, buildPatientResource(ids.patient, patient, request.AbhaAddress))
	appendEntry(ids.practitioner, buildPractitionerResource(ids.practitioner, practitioner))

	if strings.TrimSpace(request.EncounterText) != "" {
		ids.encounter = utils.NewResourceID()
		spec.EncounterRef = utils.LocalReference(ids.encounter)
		appendEntry(ids.encounter, buildEncounterResource(ids.encounter, request.EncounterText, patientRef, builtAt))
	}
	if strings.TrimSpace(request.OrganizationName) != "" {
		ids.organization = utils.NewResourceID()
		spec.CustodianRef = utils.LocalReference(ids.organization)
		appendEntry(ids.organization, buildOrganizationResource(ids.organization, request.OrganizationName))
	}

	switch request.AttesterParty {
	case constvars.AttesterPartyOrganization:
		spec.AttesterRef = spec.CustodianRef
	case constvars.AttesterPartyPractitioner:
		spec.AttesterRef = practitionerRef
	}

	if invoice != nil {
		ids.invoice = utils.NewResourceID()
		invoiceRef := utils.LocalReference(ids.invoice)
		spec.SectionEntries = append(spec.SectionEntries, fhir_dto.Reference{Reference: invoiceRef})
		appendEntry(ids.invoice, buildInvoiceResource(ids.invoice, *invoice, patientRef, practitionerRef, spec.CustodianRef, documentDate))
	}

	// Attachment pairs preserve upload order: all DocumentReferences first,
	// then their Binaries.
	binaries := make([]fhir_dto.BundleEntry, 0, len(attachments))
	for _, attachment := range attachments {
		docRefID := utils.NewResourceID()
		binaryID := utils.NewResourceID()
		documentReference, binary := buildAttachmentPair(docRefID, binaryID, attachment, patientRef, builtAt)
		spec.SectionEntries = append(spec.SectionEntries, fhir_dto.Reference{Reference: utils.LocalReference(docRefID)})
		appendEntry(docRefID, documentReference)
		binaries = append(binaries, fhir_dto.BundleEntry{
			FullURL:  utils.LocalReference(binaryID),
			Resource: binary,
		})
	}
	entries = append(entries, binaries...)

	entries[0] = fhir_dto.BundleEntry{
		FullURL:  utils.LocalReference(ids.composition),
		Resource: buildCompositionResource(ids.composition, spec),
	}

	bundle := assembleBundle(builtAt, entries)
	if err := verifyBundle(bundle); err != nil {
		return nil, err
	}

	uc.archiveBundle(ctx, &bundle, attachments)

	uc.log.Info("documentUsecase.buildBundle assembled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBundleIDKey, bundle.ID),
	)
	return &bundle, nil
}

// archiveBundle writes the sealed bundle and its raw attachments to object
// storage. Failures are logged and swallowed; archiving never fails a build.
func (uc *documentUsecase) archiveBundle(ctx context.Context, bundle *fhir_dto.Bundle, attachments []AttachmentInput) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bundleJSON, err := json.Marshal(bundle)
	if err != nil {
		uc.log.Warn("documentUsecase.archiveBundle marshal failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	objectName := fmt.Sprintf("bundles/%s/bundle.json", bundle.ID)
	if _, err := uc.storage.UploadObject(ctx, uc.bucketName, objectName, constvars.MIMEApplicationJSON, bundleJSON); err != nil {
		uc.log.Warn("documentUsecase.archiveBundle bundle upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBundleIDKey, bundle.ID),
			zap.Error(err),
		)
	}

	for index, attachment := range attachments {
		objectName := fmt.Sprintf("bundles/%s/attachments/%03d-%s", bundle.ID, index, attachment.FileName)
		if _, err := uc.storage.UploadObject(ctx, uc.bucketName, objectName, attachment.ContentType, attachment.Payload); err != nil {
			uc.log.Warn("documentUsecase.archiveBundle attachment upload failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFileNameKey, attachment.FileName),
				zap.Error(err),
			)
		}
	}
}

func (uc *documentUsecase) publishAudit(ctx context.Context, submission *responses.Submission, patientReference string) {
	audit := contracts.SubmissionAudit{
		BundleID:         submission.BundleID,
		PatientReference: patientReference,
		Submitted:        submission.Submitted,
		Detail:           submission.GatewayDetail,
		OccurredAt:       utils.ToOffsetTimestamp(time.Now()),
	}
	if err := uc.auditQueue.PublishSubmission(ctx, audit); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.log.Warn("documentUsecase.publishAudit failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBundleIDKey, submission.BundleID),
			zap.Error(err),
		)
	}
}

// toRequestShape rebuilds the invoice request so struct validation covers the
// invoice-only fields alongside the shared ones.
func (d *invoiceDetails) toRequestShape(base *requests.BuildDocument) *requests.BuildInvoice {
	return &requests.BuildInvoice{
		BuildDocument: *base,
		Amount:        d.Amount,
		Currency:      d.Currency,
		Note:          d.Note,
	}
}
