package patients

import (
	"context"
	"os"

	"arogya-service/internal/app/contracts"

	"github.com/goccy/go-json"
)

// staticPatientSource reads the patient list from a JSON document on disk.
// It backs the remote source so a session can start offline.
type staticPatientSource struct {
	filePath string
}

func NewStaticPatientSource(filePath string) contracts.PatientSource {
	return &staticPatientSource{filePath: filePath}
}

func (s *staticPatientSource) Name() string {
	return "static"
}

func (s *staticPatientSource) FetchPatients(ctx context.Context) ([]map[string]interface{}, error) {
	payload, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, err
	}

	var documents []map[string]interface{}
	if err := json.Unmarshal(payload, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}
