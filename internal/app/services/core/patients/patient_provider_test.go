package patients

import (
	"context"
	"errors"
	"testing"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	name      string
	documents []map[string]interface{}
	err       error
	calls     int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) FetchPatients(ctx context.Context) ([]map[string]interface{}, error) {
	f.calls++
	return f.documents, f.err
}

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(payload)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func sampleDocuments() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": "pat-1", "name": "Asha Rao", "userRefId": "ref-1"},
		{"id": "pat-2", "name": "Ravi Kumar"},
	}
}

func TestPatientProviderSourceChain(t *testing.T) {
	t.Run("first source wins", func(t *testing.T) {
		primary := &fakeSource{name: "remote", documents: sampleDocuments()}
		secondary := &fakeSource{name: "static"}
		provider := NewPatientProvider([]contracts.PatientSource{primary, secondary}, newFakeRedis(), time.Minute, zap.NewNop())

		records, err := provider.ListPatients(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Zero(t, secondary.calls)
	})

	t.Run("failing source falls through", func(t *testing.T) {
		primary := &fakeSource{name: "remote", err: errors.New("connection refused")}
		secondary := &fakeSource{name: "static", documents: sampleDocuments()}
		provider := NewPatientProvider([]contracts.PatientSource{primary, secondary}, newFakeRedis(), time.Minute, zap.NewNop())

		records, err := provider.ListPatients(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, 1, primary.calls)
	})

	t.Run("empty source falls through", func(t *testing.T) {
		primary := &fakeSource{name: "remote"}
		secondary := &fakeSource{name: "static", documents: sampleDocuments()}
		provider := NewPatientProvider([]contracts.PatientSource{primary, secondary}, newFakeRedis(), time.Minute, zap.NewNop())

		records, err := provider.ListPatients(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("all sources exhausted", func(t *testing.T) {
		primary := &fakeSource{name: "remote", err: errors.New("connection refused")}
		secondary := &fakeSource{name: "static"}
		provider := NewPatientProvider([]contracts.PatientSource{primary, secondary}, newFakeRedis(), time.Minute, zap.NewNop())

		_, err := provider.ListPatients(context.Background())
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})

	t.Run("second fetch served from cache", func(t *testing.T) {
		source := &fakeSource{name: "remote", documents: sampleDocuments()}
		redis := newFakeRedis()
		provider := NewPatientProvider([]contracts.PatientSource{source}, redis, time.Minute, zap.NewNop())

		_, err := provider.ListPatients(context.Background())
		require.NoError(t, err)
		_, err = provider.ListPatients(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, source.calls)
	})
}

func TestFindPatient(t *testing.T) {
	source := &fakeSource{name: "static", documents: sampleDocuments()}
	provider := NewPatientProvider([]contracts.PatientSource{source}, newFakeRedis(), time.Minute, zap.NewNop())

	t.Run("by id", func(t *testing.T) {
		record, err := provider.FindPatient(context.Background(), "pat-2")
		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", record.Name)
	})

	t.Run("by reference id", func(t *testing.T) {
		record, err := provider.FindPatient(context.Background(), "ref-1")
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", record.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := provider.FindPatient(context.Background(), "pat-404")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
