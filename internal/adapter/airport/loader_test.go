package airport

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rest-planner/layover-daylight/internal/infrastructure/logger"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/retry"
)

const sampleYAML = `airports:
  - code: IST
    name: Istanbul Airport
    municipality: Istanbul
    country: TR
    coordinates: {latitude: 41.2753, longitude: 28.7519}
`

func fastRetry() retry.Config {
	return retry.FetchConfig.WithInitialDelay(time.Millisecond).WithMaxAttempts(3)
}

func TestLoader_Embedded(t *testing.T) {
	loader := NewLoader(nil)

	for _, source := range []string{"", "embedded", "EMBEDDED"} {
		dir, err := loader.Load(context.Background(), source)
		require.NoError(t, err, source)
		assert.Greater(t, dir.Len(), 10)
	}
}

func TestLoader_Files(t *testing.T) {
	tmp := t.TempDir()
	yamlPath := filepath.Join(tmp, "airports.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o600))

	tests := []struct {
		name    string
		path    string
		wantLen int
		wantErr bool
	}{
		{name: "csv", path: "testdata/airports.csv", wantLen: 5},
		{name: "yaml", path: yamlPath, wantLen: 1},
		{name: "missing file", path: filepath.Join(tmp, "nope.csv"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := NewLoader(nil).Load(context.Background(), tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, dir.Len())
		})
	}
}

func TestLoader_URL(t *testing.T) {
	csvBody, err := os.ReadFile("testdata/airports.csv")
	require.NoError(t, err)

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		switch r.URL.Path {
		case "/airports.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write(csvBody)
		case "/dataset":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte(sampleYAML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := NewLoader(&LoaderConfig{Retry: fastRetry()})

	dir, err := loader.Load(context.Background(), srv.URL+"/airports.csv")
	require.NoError(t, err)
	assert.Equal(t, 5, dir.Len())

	dir, err = loader.Load(context.Background(), srv.URL+"/dataset")
	require.NoError(t, err)
	assert.Equal(t, 1, dir.Len())

	atomic.StoreInt32(&hits, 0)
	_, err = loader.Load(context.Background(), srv.URL+"/missing.csv")
	require.Error(t, err)
	assert.True(t, retry.IsPermanent(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "4xx must not be retried")
}

func TestLoader_URL_RetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleYAML))
	}))
	defer srv.Close()

	var logs bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "warn", Format: "json", ServiceName: "test"}, &logs)

	dir, err := NewLoader(&LoaderConfig{Retry: fastRetry(), Logger: log}).Load(context.Background(), srv.URL+"/airports.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, dir.Len())
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Contains(t, logs.String(), "retrying")
}

func TestLoader_URL_MalformedBodyIsNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte("iata_code,name\nIST,Istanbul\n"))
	}))
	defer srv.Close()

	_, err := NewLoader(&LoaderConfig{Retry: fastRetry()}).Load(context.Background(), srv.URL+"/airports.csv")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestLoader_URL_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(nil).Load(ctx, "https://example.invalid/airports.csv")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path        string
		contentType string
		want        Format
	}{
		{path: "airports.csv", want: FormatCSV},
		{path: "/etc/planner/AIRPORTS.YAML", want: FormatYAML},
		{path: "airports.yml", want: FormatYAML},
		{path: "https://host/data.yaml?token=abc", want: FormatYAML},
		{path: "https://host/export", contentType: "application/x-yaml", want: FormatYAML},
		{path: "https://host/export", contentType: "text/plain", want: FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.path+tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, formatOf(tt.path, tt.contentType))
		})
	}
}
