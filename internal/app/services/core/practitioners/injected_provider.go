package practitioners

import (
	"context"
	"os"
	"strings"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// injectedProvider carries the single externally-injected practitioner
// object. Missing or malformed injections degrade gracefully to a fixed
// default identity instead of failing the session.
type injectedProvider struct {
	record models.PractitionerRecord
}

func NewInjectedProvider(injectedFile string, logger *zap.Logger) contracts.PractitionerProvider {
	record := fallbackPractitioner()

	if injectedFile != "" {
		payload, err := os.ReadFile(injectedFile)
		if err != nil {
			logger.Warn("injected practitioner file unreadable, using fallback", zap.Error(err))
		} else if parsed, ok := parseInjectedPractitioner(payload); ok {
			record = parsed
		} else {
			logger.Warn("injected practitioner object malformed, using fallback",
				zap.String(constvars.LoggingFileNameKey, injectedFile),
			)
		}
	}

	return &injectedProvider{record: record}
}

func (p *injectedProvider) ListPractitioners(ctx context.Context) ([]models.PractitionerRecord, error) {
	return []models.PractitionerRecord{p.record}, nil
}

// ResolvePractitioner ignores the id: the injection carries exactly one
// practitioner for the whole session.
func (p *injectedProvider) ResolvePractitioner(ctx context.Context, practitionerID string) (models.PractitionerRecord, error) {
	return p.record, nil
}

func fallbackPractitioner() models.PractitionerRecord {
	return models.PractitionerRecord{
		ID:      constvars.PractitionerFallbackID,
		Name:    constvars.PractitionerFallbackName,
		License: constvars.PractitionerFallbackLicense,
	}
}

// parseInjectedPractitioner tolerates the two observed injection shapes: name
// as a plain string or as a list of name entries, and the license either flat
// or nested inside an identifier object.
func parseInjectedPractitioner(payload []byte) (models.PractitionerRecord, bool) {
	var raw map[string]interface{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return models.PractitionerRecord{}, false
	}

	record := fallbackPractitioner()

	if id, ok := raw["id"].(string); ok && id != "" {
		record.ID = id
	}
	if name := extractName(raw["name"]); name != "" {
		record.Name = name
	}
	if license := extractLicense(raw); license != "" {
		record.License = license
	}
	if phone, ok := raw["phone"].(string); ok {
		record.Phone = phone
	}
	if email, ok := raw["email"].(string); ok {
		record.Email = email
	}

	return record, record.Name != ""
}

func extractName(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case []interface{}:
		for _, entry := range v {
			nameEntry, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			if text, ok := nameEntry["text"].(string); ok && text != "" {
				return strings.TrimSpace(text)
			}
		}
	}
	return ""
}

func extractLicense(raw map[string]interface{}) string {
	if license, ok := raw["license"].(string); ok && license != "" {
		return license
	}
	if identifier, ok := raw["identifier"].(map[string]interface{}); ok {
		if value, ok := identifier["value"].(string); ok {
			return value
		}
	}
	if registration, ok := raw["registration"].(map[string]interface{}); ok {
		if value, ok := registration["value"].(string); ok {
			return value
		}
	}
	return ""
}
