package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestRegisterAndLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registered := registerTestUser(ctx, t, "login-test@fittrack.app", "testpass123")
	require.NotZero(t, registered.UserID)

	// the registration token works right away
	resp := doRequest(ctx, t, "GET", "/profile", registered.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// same email cannot register twice
	reqJson, err := json.Marshal(credentialsRequest{
		Email:    "login-test@fittrack.app",
		Password: "anotherpass123",
	})
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/auth/register", serverEndpoint), bytes.NewBuffer(reqJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	cases := map[string]struct {
		creds              credentialsRequest
		expectedStatusCode int
		expectToken        bool
	}{
		"good creds": {
			creds: credentialsRequest{
				Email:    "login-test@fittrack.app",
				Password: "testpass123",
			},
			expectedStatusCode: http.StatusOK,
			expectToken:        true,
		},
		"bad password": {
			creds: credentialsRequest{
				Email:    "login-test@fittrack.app",
				Password: "bad-password",
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"unknown email": {
			creds: credentialsRequest{
				Email:    "nobody@fittrack.app",
				Password: "testpass123",
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"invalid email": {
			creds: credentialsRequest{
				Email:    "not-an-email",
				Password: "testpass123",
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			resp := doRequest(ctx, t, "POST", "/auth/login", "", tc.creds)
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)
			if tc.expectToken {
				var loginResp authResponse
				readJSON(t, resp, &loginResp)
				assert.NotEmpty(t, loginResp.Token)
				assert.Equal(t, registered.UserID, loginResp.UserID)
			} else {
				resp.Body.Close()
			}
		})
	}
}

func (s *IntegrationTestSuite) TestLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registerTestUser(ctx, t, "logout-test@fittrack.app", "testpass123")

	resp := doRequest(ctx, t, "POST", "/auth/login", "", credentialsRequest{
		Email:    "logout-test@fittrack.app",
		Password: "testpass123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp authResponse
	readJSON(t, resp, &loginResp)
	require.NotEmpty(t, loginResp.Token)

	// token works before logout
	resp = doRequest(ctx, t, "GET", "/profile", loginResp.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(ctx, t, "GET", "/auth/logout", loginResp.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// and is dead afterwards
	resp = doRequest(ctx, t, "GET", "/profile", loginResp.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
