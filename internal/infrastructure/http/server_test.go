package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrops-br/produto-api/internal/app/service"
	"github.com/mrops-br/produto-api/internal/infrastructure/config"
	apphttp "github.com/mrops-br/produto-api/internal/infrastructure/http"
	"github.com/mrops-br/produto-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/produto-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/produto-api/internal/infrastructure/telemetry"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	telem := telemetry.NewNoOpTelemetry(&config.OTLPConfig{ServiceName: "test"}, slog.LevelError)
	t.Cleanup(func() { _ = telem.Shutdown(context.Background()) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := telem.TracerProvider.Tracer("test")
	repo := memory.NewProdutoRepository(tracer, logger)
	svc := service.NewProdutoService(repo, tracer, telem.MeterProvider.Meter("test"), logger)

	srv := apphttp.NewServer(&config.ServerConfig{Host: "127.0.0.1", Port: "0"}, handler.NewProdutoHandler(svc, logger), logger, telem)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestServer_ProdutoLifecycleAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/produtos", "application/json", strings.NewReader(`{"nome":"Café Pelé","preco":19.5}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/produtos/1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "produtos_operations")
	assert.Contains(t, string(body), "produtos_created")
}
