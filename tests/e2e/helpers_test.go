//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabflash-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/vocabflash-backend/internal/app"
	"github.com/heartmarshall/vocabflash-backend/internal/auth"
	"github.com/heartmarshall/vocabflash-backend/internal/config"
	"github.com/heartmarshall/vocabflash-backend/internal/transport/middleware"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application handler on top of a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testJWTSecret,
			JWTIssuer:      testJWTIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		Upload: config.UploadConfig{
			MaxTextBytes:     1 << 20,
			MaxPDFBytes:      1 << 20,
			MaxItemsPerBatch: 100,
			PerMinute:        1000,
		},
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, pool, limiter, logger))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    auth.NewJWTManager(testJWTSecret, testJWTIssuer, 15*time.Minute),
	}
}

// newUser returns a fresh identity and a bearer token for it. Users exist
// only as token subjects; nothing is stored.
func (ts *testServer) newUser(t *testing.T) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	tok, err := ts.jwt.IssueToken(userID)
	require.NoError(t, err)
	return tok, userID
}

// call sends a JSON request and decodes the JSON response into out (when
// out is non-nil and the response has a body).
func (ts *testServer) call(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type listJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type itemJSON struct {
	ID      string `json:"id"`
	ListID  string `json:"listId"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

type recordJSON struct {
	ID         string  `json:"id"`
	ItemID     string  `json:"itemId"`
	ListID     string  `json:"listId"`
	IsCorrect  bool    `json:"isCorrect"`
	UserAnswer *string `json:"userAnswer"`
}

type statsJSON struct {
	TotalAttempts int     `json:"totalAttempts"`
	CorrectCount  int     `json:"correctCount"`
	Accuracy      float64 `json:"accuracy"`
}

type errorJSON struct {
	Error   string `json:"error"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

// createList creates a list via the API and returns it.
func (ts *testServer) createList(t *testing.T, token, name string) listJSON {
	t.Helper()
	var list listJSON
	status := ts.call(t, http.MethodPost, "/api/lists", token, map[string]any{"name": name}, &list)
	require.Equal(t, http.StatusCreated, status)
	return list
}

// uploadText uploads content to a list and returns the created items.
func (ts *testServer) uploadText(t *testing.T, token, listID, content string) []itemJSON {
	t.Helper()
	var resp struct {
		Added int        `json:"added"`
		Items []itemJSON `json:"items"`
	}
	status := ts.call(t, http.MethodPost, "/api/lists/"+listID+"/upload/text", token, map[string]string{"content": content}, &resp)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, resp.Added, len(resp.Items))
	return resp.Items
}
