package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hongminglow/all-in-forms/internal/auth"
	"github.com/hongminglow/all-in-forms/internal/config"
	"github.com/hongminglow/all-in-forms/internal/forms"
	"github.com/hongminglow/all-in-forms/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{Port: "0", CORSOrigins: []string{"*"}}
	h := NewHandler(cfg, Deps{
		Validator: forms.New(memory.New()),
		Tokens:    auth.NewTokenManager("secret", "test", time.Hour, time.Hour),
		Registry:  prometheus.NewRegistry(),
		Logger:    zap.NewNop(),
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestEndToEndRegisterLoginAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/register", "application/json", strings.NewReader(
		`{"username":"validuser","email":"user@domain.com","password":"MyPaSsWoRd12!","passwordCheck":"MyPaSsWoRd12!","terms":true}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), `cannot contain the word \"password\"`)

	resp, err = http.Post(ts.URL+"/register", "application/json", strings.NewReader(
		`{"username":"validuser","email":"user@domain.com","password":"Secur3Pass!word","passwordCheck":"Secur3Pass!word","terms":true}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = http.Post(ts.URL+"/login", "application/json", strings.NewReader(
		`{"username":"ValidUser","password":"Secur3Pass!word"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), `form_submissions_total{field="password",form="registration",outcome="failure"} 1`)
	assert.Contains(t, string(body), `form_submissions_total{field="",form="login",outcome="success"} 1`)
}

func TestPreflightIsAnsweredBeforeRouting(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/register", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://forms.test")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
