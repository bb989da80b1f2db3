// Package apptest spins up a fully wired router backed by an in-memory
// database for handler tests
package apptest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Maycoooz/DD-bot/app"
	"github.com/Maycoooz/DD-bot/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin-test-password"
)

// dbSeq keeps database names unique when one test builds several
// routers
var dbSeq atomic.Int64

// NewRouter builds the full application router on top of a fresh
// in-memory SQLite database. Each test gets its own database, named
// after the test so parallel packages never collide
func NewRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"), dbSeq.Add(1))

	viper.Set("app.log_level", "error")
	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", dsn)
	viper.Set("host.cors", "http://localhost:5173")
	viper.Set("jwt.session_secret", "session-secret-for-tests")
	viper.Set("jwt.verification_secret", "verification-secret-for-tests")
	viper.Set("jwt.access_ttl_minutes", 30)
	viper.Set("jwt.verification_ttl_minutes", 15)
	viper.Set("mail.host", "")
	viper.Set("mail.workers", 1)
	viper.Set("mail.max_queued", 16)
	viper.Set("security.rate_limit", 1000)
	viper.Set("seed.admin_username", AdminUsername)
	viper.Set("seed.admin_password", AdminPassword)
	viper.Set("seed-landing", true)

	router, err := app.NewRouter()
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	return router, db
}

// Do runs a request against the router. A non-nil body is JSON
// encoded, a non-empty token is sent as a bearer token
func Do(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}

		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// Decode unmarshals a recorded JSON response body
func Decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any

	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}

	return out
}

// RegisterParent registers a parent account through the API and marks
// it verified directly in the database
func RegisterParent(t *testing.T, router *gin.Engine, db *gorm.DB, username string) {
	t.Helper()

	w := Do(t, router, http.MethodPost, "/auth/register", map[string]any{
		"username":   username,
		"email":      username + "@example.com",
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "Parent",
		"country":    "SG",
		"gender":     "OTHER",
		"birthday":   "1990-01-01",
		"race":       "OTHER",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register parent %q: %d %s", username, w.Code, w.Body.String())
	}

	MarkVerified(t, db, username)
}

// RegisterLibrarian registers a librarian account and marks it
// verified
func RegisterLibrarian(t *testing.T, router *gin.Engine, db *gorm.DB, username string) {
	t.Helper()

	w := Do(t, router, http.MethodPost, "/auth/register-librarian", map[string]any{
		"username":   username,
		"email":      username + "@example.com",
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "Librarian",
		"country":    "SG",
		"gender":     "OTHER",
		"birthday":   "1985-01-01",
		"race":       "OTHER",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register librarian %q: %d %s", username, w.Code, w.Body.String())
	}

	MarkVerified(t, db, username)
}

// MarkVerified flips is_verified without going through the mail flow
func MarkVerified(t *testing.T, db *gorm.DB, username string) {
	t.Helper()

	err := db.Model(&model.User{}).
		Where("username = ?", username).
		Update("is_verified", true).
		Error
	if err != nil {
		t.Fatalf("failed to verify user %q: %v", username, err)
	}
}

// Login logs a user in and returns the access token
func Login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := Do(t, router, http.MethodPost, "/auth/token", map[string]any{
		"username": username,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("failed to log in %q: %d %s", username, w.Code, w.Body.String())
	}

	token, _ := Decode(t, w)["access_token"].(string)
	if token == "" {
		t.Fatalf("login response for %q carried no access token", username)
	}

	return token
}
