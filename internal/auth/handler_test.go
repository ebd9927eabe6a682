package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahiganga/marketplace-backend/internal/models"
	"github.com/mahiganga/marketplace-backend/internal/store"
)

func seededHandler(t *testing.T) *Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	doc := map[string]interface{}{
		"users": []models.User{
			{Username: "admin", Password: "secret"},
			{Username: "sales", Password: "hunter2"},
		},
		"vehicles": []models.Vehicle{},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return NewHandler(store.NewFileStore(path))
}

func postLogin(h *Handler, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(models.LoginRequest{Username: username, Password: password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.Login(w, req)
	return w
}

func TestLoginSucceedsForSeededCredentials(t *testing.T) {
	h := seededHandler(t)

	for _, pair := range [][2]string{{"admin", "secret"}, {"sales", "hunter2"}} {
		w := postLogin(h, pair[0], pair[1])
		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := seededHandler(t)

	w := postLogin(h, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	h := seededHandler(t)

	w := postLogin(h, "nobody", "secret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	h := seededHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte("{")))
	h.Login(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
