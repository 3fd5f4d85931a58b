package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epicevents/internal/models"
	"epicevents/test/helpers"
)

func TestSignIn_Success(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, &models.User{
		Username:     "seller1",
		PasswordHash: "correct-password",
		Role:         models.UserRoleSeller,
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/signin", "", map[string]interface{}{
		"username": "seller1",
		"password": "correct-password",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "access")
	assert.Contains(t, bodyStr, "refresh")
}

func TestSignIn_BadPassword(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, &models.User{
		Username:     "seller1",
		PasswordHash: "correct-password",
		Role:         models.UserRoleSeller,
	})

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/signin", "", map[string]interface{}{
		"username": "seller1",
		"password": "WRONG-password",
	})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestSignIn_UnknownUser(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/signin", "", map[string]interface{}{
		"username": "nobody",
		"password": "whatever1",
	})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestTokenRefresh_Flow(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, &models.User{
		Username:     "support1",
		PasswordHash: "password123",
		Role:         models.UserRoleSupport,
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/signin", "", map[string]interface{}{
		"username": "support1",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &pair))
	require.NotEmpty(t, pair.Refresh)

	// Exchange the refresh token for a new pair.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/token/refresh", "", map[string]interface{}{
		"refresh": pair.Refresh,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var newPair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &newPair))
	assert.NotEmpty(t, newPair.Access)
	assert.NotEqual(t, pair.Refresh, newPair.Refresh)

	// The old refresh token was rotated out and cannot be replayed.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/token/refresh", "", map[string]interface{}{
		"refresh": pair.Refresh,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestSignUp_ManagerOnly(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, _ := helpers.CreateAndLoginSeller(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/signup", sellerToken, map[string]interface{}{
		"username": "newbie",
		"password": "password123",
		"role":     "support",
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Access denied, you're not a 'manager' user.")
}

func TestSignUp_Success(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	managerToken, _ := helpers.CreateAndLoginManager(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/signup", managerToken, map[string]interface{}{
		"username": "new_seller",
		"password": "password123",
		"role":     "seller",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "new_seller")

	// The fresh account can sign in right away.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/signin", "", map[string]interface{}{
		"username": "new_seller",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	managerToken, _ := helpers.CreateAndLoginManager(t, ts)

	body := map[string]interface{}{
		"username": "twice",
		"password": "password123",
		"role":     "support",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/signup", managerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/signup", managerToken, body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestSignUp_InvalidRole(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	managerToken, _ := helpers.CreateAndLoginManager(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/signup", managerToken, map[string]interface{}{
		"username": "weirdo",
		"password": "password123",
		"role":     "admin",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestProtectedRoute_NoToken(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProtectedRoute_GarbageToken(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/clients", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
