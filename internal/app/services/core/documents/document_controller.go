package documents

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const maxMultipartMemory = 32 << 20

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
}

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
	}
}

func (ctrl *DocumentController) BuildDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	request, err := parseBuildDocumentForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.DocumentUsecase.BuildDocument(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DocumentBuildSuccess, result)
}

func (ctrl *DocumentController) BuildInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	base, err := parseBuildDocumentForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.BuildInvoice{
		BuildDocument: *base,
		Currency:      r.FormValue("currency"),
		Note:          r.FormValue("note"),
	}
	if rawAmount := r.FormValue("amount"); rawAmount != "" {
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBuildRequest(err))
			return
		}
		request.Amount = amount
	}

	result, err := ctrl.DocumentUsecase.BuildInvoice(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.InvoiceBuildSuccess, result)
}

func (ctrl *DocumentController) SubmitDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	base, err := parseBuildDocumentForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.SubmitDocument{
		BuildDocument:    *base,
		PatientReference: r.FormValue("patient_reference"),
	}

	result, err := ctrl.DocumentUsecase.SubmitDocument(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DocumentSubmitSuccess, result)
}

// parseBuildDocumentForm reads the multipart form shared by every build
// endpoint. File headers are carried through untouched; content is read only
// inside the build pipeline.
func parseBuildDocumentForm(r *http.Request) (*requests.BuildDocument, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.BuildDocument{
		PatientID:        r.FormValue("patient_id"),
		PractitionerID:   r.FormValue("practitioner_id"),
		Status:           r.FormValue("status"),
		Title:            r.FormValue("title"),
		DocumentDate:     r.FormValue("document_date"),
		EncounterText:    r.FormValue("encounter_text"),
		OrganizationName: r.FormValue("organization_name"),
		AbhaAddress:      r.FormValue("abha_address"),
		AttesterParty:    r.FormValue("attester_party"),
	}
	if r.MultipartForm != nil {
		request.Files = r.MultipartForm.File[constvars.FormFieldFiles]
	}
	return request, nil
}
