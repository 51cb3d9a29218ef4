package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/moodgarden/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(data))
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Signup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful signup",
			request: map[string]string{
				"username": "newuser",
				"email":    "NewUser@Example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.SignupResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.True(t, result.Created)
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, "newuser", result.User.Username)
				assert.Equal(t, "newuser@example.com", result.User.Email)
				assert.NotEmpty(t, result.User.CreatedAt)
			},
		},
		{
			name: "username too short",
			request: map[string]string{
				"username": "ab",
				"email":    "ab@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			request: map[string]string{
				"username": "newuser",
				"email":    "not-an-email",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			request: map[string]string{
				"username": "newuser",
				"email":    "new@example.com",
				"password": "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			request: map[string]string{
				"username": "existinguser",
				"email":    "fresh@example.com",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					WithEmail("existing@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, resp *http.Response) {
				// The conflict message must not reveal which field collided
				testutil.AssertErrorResponse(t, resp, http.StatusConflict, "username or email already exists")
			},
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"username": "freshuser",
				"email":    "existing@example.com",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					WithEmail("existing@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusConflict, "username or email already exists")
			},
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.URL("/auth/signup"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	signupReq := map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret1",
	}
	signupResp := postJSON(t, ts.URL("/auth/signup"), signupReq)
	defer signupResp.Body.Close()
	require.Equal(t, http.StatusCreated, signupResp.StatusCode)

	var signup testutil.SignupResponse
	testutil.AssertJSONResponse(t, signupResp, &signup)
	require.True(t, signup.Created)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "login by email returns the same account",
			request: map[string]string{
				"identifier": "a@x.com",
				"password":   "secret1",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.SignupResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.False(t, result.Created)
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, signup.User.ID, result.User.ID)
			},
		},
		{
			name: "login by username",
			request: map[string]string{
				"identifier": "alice",
				"password":   "secret1",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"identifier": "alice",
				"password":   "wrong1",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unregistered identifier",
			request: map[string]string{
				"identifier": "nobody",
				"password":   "secret1",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing fields",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL("/auth/login"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().
		WithUsername("me_user").
		BuildAndAuthenticate(t, ts)

	doMe := func(t *testing.T, authHeader string) *http.Response {
		t.Helper()

		req, err := http.NewRequest(http.MethodGet, ts.URL("/auth/me"), nil)
		require.NoError(t, err)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("valid token", func(t *testing.T) {
		resp := doMe(t, "Bearer "+token)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			User struct {
				ID       string `json:"id"`
				Username string `json:"username"`
			} `json:"user"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, user.ID.String(), result.User.ID)
		assert.Equal(t, "me_user", result.User.Username)
	})

	t.Run("missing header", func(t *testing.T) {
		resp := doMe(t, "")
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := doMe(t, "Bearer garbage")
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("account deleted after issuance", func(t *testing.T) {
		require.NoError(t, ts.DB.DB.Exec("DELETE FROM users WHERE id = ?", user.ID).Error)

		resp := doMe(t, "Bearer "+token)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})
}
