package patients

import (
	"context"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// patientProvider tries an explicit prioritized list of sources until one
// yields a non-empty result, caches the raw list in redis for the session,
// and normalizes every document at the boundary.
type patientProvider struct {
	sources  []contracts.PatientSource
	redis    contracts.RedisRepository
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewPatientProvider(
	sources []contracts.PatientSource,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.PatientProvider {
	return &patientProvider{
		sources:  sources,
		redis:    redisRepository,
		cacheTTL: cacheTTL,
		log:      logger,
	}
}

func (p *patientProvider) ListPatients(ctx context.Context) ([]models.PatientRecord, error) {
	documents, err := p.fetchDocuments(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]models.PatientRecord, 0, len(documents))
	for _, document := range documents {
		records = append(records, utils.PatientRecordFromMap(document))
	}
	return records, nil
}

func (p *patientProvider) FindPatient(ctx context.Context, patientID string) (models.PatientRecord, error) {
	records, err := p.ListPatients(ctx)
	if err != nil {
		return models.PatientRecord{}, err
	}

	for _, record := range records {
		if record.ID == patientID || (record.ReferenceID != "" && record.ReferenceID == patientID) {
			return record, nil
		}
	}
	return models.PatientRecord{}, exceptions.ErrPatientNotFound(nil)
}

func (p *patientProvider) fetchDocuments(ctx context.Context) ([]map[string]interface{}, error) {
	if cached, err := p.redis.Get(ctx, constvars.PatientListCacheKey); err == nil && cached != "" {
		var documents []map[string]interface{}
		if uerr := json.Unmarshal([]byte(cached), &documents); uerr == nil && len(documents) > 0 {
			return documents, nil
		}
	}

	var lastErr error
	for _, source := range p.sources {
		documents, err := source.FetchPatients(ctx)
		if err != nil {
			p.log.Warn("patientProvider source failed, trying next",
				zap.String(constvars.LoggingSourceKey, source.Name()),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		if len(documents) == 0 {
			p.log.Warn("patientProvider source returned no patients, trying next",
				zap.String(constvars.LoggingSourceKey, source.Name()),
			)
			continue
		}

		if err := p.redis.Set(ctx, constvars.PatientListCacheKey, documents, p.cacheTTL); err != nil {
			p.log.Warn("patientProvider cache write failed", zap.Error(err))
		}
		return documents, nil
	}

	return nil, exceptions.ErrPatientSourceExhausted(lastErr)
}
