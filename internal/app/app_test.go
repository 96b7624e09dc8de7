package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/config"
	"github.com/riskibarqy/cantera/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "cantera-test",
		HTTPAddr:           ":0",
		Timezone:           time.UTC,
		StorageDriver:      config.StorageMemory,
		SeedDemoData:       true,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		SessionTTL:         time.Hour,
		AuthRequired:       true,
		DashboardWorkers:   2,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestNewHTTPServer_MemoryStorage(t *testing.T) {
	srv, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, srv.CloseStorage()) })

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"username":"marta"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "token")
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	_, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestLoadFormations(t *testing.T) {
	builtin, err := loadFormations("")
	require.NoError(t, err)
	require.True(t, builtin.Has("4-3-3"))

	path := filepath.Join(t.TempDir(), "formations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`default: "2-3-1"
formations:
  - key: "2-3-1"
    positions: [GK, LCB, RCB, LM, CM, RM, ST]
`), 0o600))
	custom, err := loadFormations(path)
	require.NoError(t, err)
	require.Equal(t, []string{"2-3-1"}, custom.Keys())

	require.NoError(t, os.WriteFile(path, []byte("default: x\nformations: []\n"), 0o600))
	_, err = loadFormations(path)
	require.Error(t, err)

	_, err = loadFormations(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
