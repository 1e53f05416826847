package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pumpshop/seed/internal/config"
	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/models"
	"github.com/pumpshop/seed/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testApp(t *testing.T) (*fiber.App, *models.Dataset) {
	t.Helper()
	hash, err := seed.HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	g, err := seed.NewGenerator(seed.DefaultProfile(), hash, seed.NewRand(3))
	require.NoError(t, err)
	ds, err := g.Generate()
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour, CORSOrigins: "*"}
	return NewApp(cfg, nil, ds), ds
}

func do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App, username string) dto.LoginResponse {
	t.Helper()
	status, body := do(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Username: username, Password: "password123"})
	require.Equal(t, http.StatusOK, status, string(body))
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestLogin(t *testing.T) {
	app, _ := testApp(t)

	resp := login(t, app, "admin")
	assert.Equal(t, "Admin", resp.Role)
	assert.NotEmpty(t, resp.Token)

	status, body := do(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Username: "admin", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, string(body))

	status, _ = do(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthIsPublic(t *testing.T) {
	app, _ := testApp(t)

	status, body := do(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "not configured", health.DB)
	assert.Equal(t, 50, health.Jobs)
}

func TestJobsRequireToken(t *testing.T) {
	app, _ := testApp(t)

	status, body := do(t, app, http.MethodGet, "/api/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Access token required"}`, string(body))

	status, body = do(t, app, http.MethodGet, "/api/jobs", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, string(body))

	claims := jwt.MapClaims{"UserId": 1, "Role": "Admin", "exp": time.Now().Add(time.Hour).Unix()}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	status, _ = do(t, app, http.MethodGet, "/api/jobs", hs512, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestJobsList(t *testing.T) {
	app, _ := testApp(t)
	admin := login(t, app, "admin")

	status, body := do(t, app, http.MethodGet, "/api/jobs?page=1&limit=10", admin.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw, "data")
	assert.Contains(t, raw, "pagination")

	var list dto.JobListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list.Data, 10)
	assert.Equal(t, 50, list.Pagination.TotalItems)
	assert.Equal(t, 5, list.Pagination.TotalPages)
	assert.Equal(t, 10, list.Pagination.ItemsPerPage)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["data"], &rows))
	assert.Contains(t, rows[0], "CustomerName")
	assert.Contains(t, rows[0], "EstimatedAmount")
}

func TestJobsListHidesFieldsFromWorkers(t *testing.T) {
	app, _ := testApp(t)
	worker := login(t, app, "worker1")
	assert.Equal(t, "Worker", worker.Role)

	status, body := do(t, app, http.MethodGet, "/api/jobs?limit=100", worker.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	for _, row := range resp.Data {
		assert.NotContains(t, row, "CustomerName")
		assert.NotContains(t, row, "EstimatedAmount")
	}
}

func TestJobDetail(t *testing.T) {
	app, ds := testApp(t)
	owner := login(t, app, "owner")
	job := ds.Jobs[4]

	status, body := do(t, app, http.MethodGet, "/api/jobs/"+job.JobNumber, owner.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, job.JobNumber, detail["JobNumber"])
	assert.Equal(t, job.Status, detail["Status"])
	assert.Contains(t, detail, "Parts")
	assert.Contains(t, detail, "Documents")

	status, body = do(t, app, http.MethodGet, "/api/jobs/JOB-0000-000", owner.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Service request not found"}`, string(body))
}

func TestListsAndRoles(t *testing.T) {
	app, _ := testApp(t)
	admin := login(t, app, "admin")
	worker := login(t, app, "worker2")

	for path, want := range map[string]int{
		"/api/inventory":             7,
		"/api/customers":             20,
		"/api/customers?search=corp": 6,
	} {
		status, body := do(t, app, http.MethodGet, path, admin.Token, nil)
		require.Equal(t, http.StatusOK, status, path)
		var resp struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Len(t, resp.Data, want, path)
	}

	status, body := do(t, app, http.MethodGet, "/api/workers", admin.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var workers []map[string]any
	require.NoError(t, json.Unmarshal(body, &workers), string(body))
	assert.Len(t, workers, 5)
	assert.Contains(t, workers[0], "WorkerId")

	status, body = do(t, app, http.MethodGet, "/api/users", admin.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(body, &users), string(body))
	assert.NotEmpty(t, users)
	assert.Equal(t, "admin", users[0]["Username"])
	assert.NotContains(t, string(body), "PasswordHash")
	assert.NotContains(t, string(body), "$2a$")

	status, _ = do(t, app, http.MethodGet, "/api/users", worker.Token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = do(t, app, http.MethodGet, "/api/dashboard/stats", admin.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var stats dto.DashboardStats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 50, stats.TotalJobs)
}

func TestSecurityHeaders(t *testing.T) {
	app, _ := testApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestCORSPreflight(t *testing.T) {
	app, _ := testApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/jobs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "GET")
	assert.Equal(t, "600", resp.Header.Get("Access-Control-Max-Age"))
}
