package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

// Postgres-backed smoke test. Opt-in: set DB_DSN_TEST=1 and DB_DSN to run it.
func TestPostgresSmoke(t *testing.T) {
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	jwtSecret = []byte("test-secret")
	t.Setenv("UPLOAD_BASE", t.TempDir())
	initDB()
	r := gin.New()
	setupRoutes(r)

	regBody, _ := json.Marshal(map[string]string{"username": "itest_user", "email": "itest@example.com", "password": "secret1"})
	resp := performRequest(r, http.MethodPost, "/register", bytes.NewBuffer(regBody), "", "application/json")
	if resp.Code != http.StatusOK && resp.Code != http.StatusConflict {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	loginBody, _ := json.Marshal(map[string]string{"username": "itest_user", "password": "secret1"})
	resp = performRequest(r, http.MethodPost, "/login", bytes.NewBuffer(loginBody), "", "application/json")
	if resp.Code != http.StatusOK {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}

	resp = performRequest(r, http.MethodGet, "/profile", nil, token, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("profile fetch failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	resp = performRequest(r, http.MethodGet, "/destinations", nil, token, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("list destinations failed status=%d body=%s", resp.Code, resp.Body.String())
	}
}
