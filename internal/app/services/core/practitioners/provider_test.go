package practitioners

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"arogya-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRosterProvider(t *testing.T) {
	provider := NewRosterProvider()

	t.Run("lists the fixed roster", func(t *testing.T) {
		records, err := provider.ListPractitioners(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("resolves by id", func(t *testing.T) {
		record, err := provider.ResolvePractitioner(context.Background(), "hpr-0002")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Arjun Nair", record.Name)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		_, err := provider.ResolvePractitioner(context.Background(), "hpr-9999")
		require.Error(t, err)
	})

	t.Run("blank id fails", func(t *testing.T) {
		_, err := provider.ResolvePractitioner(context.Background(), "")
		require.Error(t, err)
	})
}

func writeInjectedFile(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "practitioner.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	return path
}

func TestInjectedProvider(t *testing.T) {
	log := zap.NewNop()

	t.Run("flat shape", func(t *testing.T) {
		path := writeInjectedFile(t, `{"id":"ext-1","name":"Dr. Priya Menon","license":"TN-2020-11223"}`)
		provider := NewInjectedProvider(path, log)

		record, err := provider.ResolvePractitioner(context.Background(), "anything")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Priya Menon", record.Name)
		assert.Equal(t, "TN-2020-11223", record.License)
	})

	t.Run("name list and nested license", func(t *testing.T) {
		path := writeInjectedFile(t, `{
			"name": [{"text": "Dr. Priya Menon"}],
			"identifier": {"value": "TN-2020-11223"}
		}`)
		provider := NewInjectedProvider(path, log)

		record, err := provider.ResolvePractitioner(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Priya Menon", record.Name)
		assert.Equal(t, "TN-2020-11223", record.License)
	})

	t.Run("missing file degrades to fallback", func(t *testing.T) {
		provider := NewInjectedProvider(filepath.Join(t.TempDir(), "nope.json"), log)

		record, err := provider.ResolvePractitioner(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, constvars.PractitionerFallbackName, record.Name)
		assert.Equal(t, constvars.PractitionerFallbackLicense, record.License)
	})

	t.Run("malformed payload degrades to fallback", func(t *testing.T) {
		path := writeInjectedFile(t, `{"name": 42`)
		provider := NewInjectedProvider(path, log)

		record, err := provider.ResolvePractitioner(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, constvars.PractitionerFallbackName, record.Name)
	})

	t.Run("lists exactly one practitioner", func(t *testing.T) {
		path := writeInjectedFile(t, `{"name":"Dr. Priya Menon"}`)
		provider := NewInjectedProvider(path, log)

		records, err := provider.ListPractitioners(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
