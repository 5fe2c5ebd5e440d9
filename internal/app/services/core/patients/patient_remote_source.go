package patients

import (
	"context"
	"net/http"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// remotePatientSource fetches the patient list from a network endpoint with an
// optional bearer credential. It is the highest-priority source in the chain.
type remotePatientSource struct {
	url         string
	bearerToken string
	httpClient  *http.Client
	log         *zap.Logger
}

func NewRemotePatientSource(sourceConfig config.PatientSource, logger *zap.Logger) contracts.PatientSource {
	return &remotePatientSource{
		url:         sourceConfig.RemoteUrl,
		bearerToken: sourceConfig.BearerToken,
		httpClient: &http.Client{
			Timeout: time.Duration(sourceConfig.RemoteTmoSec) * time.Second,
		},
		log: logger,
	}
}

func (s *remotePatientSource) Name() string {
	return "remote"
}

func (s *remotePatientSource) FetchPatients(ctx context.Context) ([]map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, s.url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if s.bearerToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.bearerToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		s.log.Warn("remotePatientSource.FetchPatients unexpected status",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrDecodeResponse(nil, constvars.ResourcePatient)
	}

	var documents []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&documents); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}
	return documents, nil
}
