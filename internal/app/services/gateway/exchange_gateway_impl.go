package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type exchangeGateway struct {
	baseUrl     string
	bearerToken string
	httpClient  *http.Client
	log         *zap.Logger
}

func NewExchangeGateway(exchangeConfig config.Exchange, logger *zap.Logger) contracts.ExchangeGateway {
	return &exchangeGateway{
		baseUrl:     exchangeConfig.BaseUrl,
		bearerToken: exchangeConfig.BearerToken,
		httpClient: &http.Client{
			Timeout: time.Duration(exchangeConfig.TimeoutSec) * time.Second,
		},
		log: logger,
	}
}

type submitPayload struct {
	PatientReference string           `json:"patient_reference"`
	Bundle           *fhir_dto.Bundle `json:"bundle"`
}

func (g *exchangeGateway) SubmitBundle(ctx context.Context, bundle *fhir_dto.Bundle, patientReference string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.log.Info("exchangeGateway.SubmitBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBundleIDKey, bundle.ID),
	)

	requestJSON, err := json.Marshal(submitPayload{
		PatientReference: patientReference,
		Bundle:           bundle,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, g.baseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	if g.bearerToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+g.bearerToken)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Error("exchangeGateway.SubmitBundle error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusAccepted {
		detail := g.rejectionDetail(resp)
		g.log.Error("exchangeGateway.SubmitBundle rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("detail", detail),
		)
		return exceptions.ErrGatewayRejected(fmt.Errorf("status %d", resp.StatusCode), detail)
	}

	g.log.Info("exchangeGateway.SubmitBundle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBundleIDKey, bundle.ID),
	)
	return nil
}

// rejectionDetail extracts the server's diagnostics when the gateway answers
// with an OperationOutcome, falling back to the raw body.
func (g *exchangeGateway) rejectionDetail(resp *http.Response) string {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.Status
	}

	var outcome fhir_dto.OperationOutcome
	if uerr := json.Unmarshal(bodyBytes, &outcome); uerr == nil && len(outcome.Issue) > 0 {
		return outcome.Issue[0].Diagnostics
	}
	if len(bodyBytes) > 0 {
		return string(bodyBytes)
	}
	return resp.Status
}
