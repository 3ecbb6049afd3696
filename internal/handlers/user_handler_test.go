package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"qrserve/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRegister_OK(t *testing.T) {
	ur := &hMockUserRepo{}
	ur.On("GetUserByLogin", mock.Anything, "john").Return((*model.User)(nil), nil).Once()
	ur.On("CreateUser", mock.Anything, mock.Anything).Return(&model.User{ID: 1, Login: "john"}, nil).Once()
	env := newTestEnv(t, ur, nil)

	rr := postJSON(t, env.router, "/api/user/register", map[string]string{"login": "john", "password": "p@ss"})

	assert.Equal(t, http.StatusCreated, rr.Code)

	// auth cookie выписана сразу
	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "auth cookie must be set on register")
	ur.AssertExpectations(t)
}

func TestRegister_Conflict(t *testing.T) {
	ur := &hMockUserRepo{}
	ur.On("GetUserByLogin", mock.Anything, "john").Return(&model.User{ID: 1, Login: "john"}, nil).Once()
	env := newTestEnv(t, ur, nil)

	rr := postJSON(t, env.router, "/api/user/register", map[string]string{"login": "john", "password": "p@ss"})

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_InvalidBody(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rr := postJSON(t, env.router, "/api/user/register", map[string]string{"login": ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader([]byte("not-json")))
	raw := httptest.NewRecorder()
	env.router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestLogin_OK(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("p@ss"), bcrypt.MinCost)
	assert.NoError(t, err)
	ur := &hMockUserRepo{}
	ur.On("GetUserByLogin", mock.Anything, "john").Return(&model.User{ID: 7, Login: "john", Password: string(hash)}, nil).Once()
	env := newTestEnv(t, ur, nil)

	rr := postJSON(t, env.router, "/api/user/login", map[string]string{"login": "john", "password": "p@ss"})

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "john", resp.Login)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("p@ss"), bcrypt.MinCost)
	assert.NoError(t, err)
	ur := &hMockUserRepo{}
	ur.On("GetUserByLogin", mock.Anything, "john").Return(&model.User{ID: 7, Login: "john", Password: string(hash)}, nil).Once()
	env := newTestEnv(t, ur, nil)

	rr := postJSON(t, env.router, "/api/user/login", map[string]string{"login": "john", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	ur := &hMockUserRepo{}
	ur.On("GetUserByLogin", mock.Anything, "ghost").Return((*model.User)(nil), nil).Once()
	env := newTestEnv(t, ur, nil)

	rr := postJSON(t, env.router, "/api/user/login", map[string]string{"login": "ghost", "password": "p@ss"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
