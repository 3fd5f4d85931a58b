package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"epicevents/internal/models"
)

var userCounter atomic.Int64

// CreateUser inserts a user, hashing the raw password stored in
// PasswordHash when it is not already a bcrypt hash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash test password")
		user.PasswordHash = string(hashed)
	}

	require.NoError(t, db.Create(user).Error, "failed to create test user")
}

// CreateAndLoginUser creates a user and signs it in through the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: password,
		Role:         role,
		IsAdmin:      role == models.UserRoleManager,
	}
	CreateUser(t, ts.DB, user)

	signinBody := map[string]interface{}{
		"username": username,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/signin", "", signinBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "sign-in should succeed, got: "+bodyStr)

	var pair struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &pair))
	require.NotEmpty(t, pair.Access)

	return pair.Access, user
}

func uniqueUsername(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), userCounter.Add(1))
}

func CreateAndLoginSeller(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, uniqueUsername("seller"), "password123", models.UserRoleSeller)
}

func CreateAndLoginSupport(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, uniqueUsername("support"), "password123", models.UserRoleSupport)
}

func CreateAndLoginManager(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, uniqueUsername("manager"), "password123", models.UserRoleManager)
}

// CreateClient inserts a client owned by the given seller.
func CreateClient(t *testing.T, db *gorm.DB, sellerID uint, email string) *models.Client {
	t.Helper()

	client := &models.Client{
		Firstname:     "Jean",
		Lastname:      "Dupont",
		Email:         email,
		Phone:         "0102030405",
		Mobile:        fmt.Sprintf("06%09d", userCounter.Add(1)),
		CompanyName:   "Acme",
		Role:          models.ClientRoleClient,
		SaleContactID: &sellerID,
	}
	require.NoError(t, db.Create(client).Error, "failed to create test client")
	return client
}

// CreateContract inserts a signed contract for the client and seller.
func CreateContract(t *testing.T, db *gorm.DB, clientID, sellerID uint, amount float64) *models.Contract {
	t.Helper()

	contract := &models.Contract{
		Status:         models.ContractStatusSigned,
		Amount:         amount,
		ClientID:       clientID,
		SalesContactID: &sellerID,
	}
	require.NoError(t, db.Create(contract).Error, "failed to create test contract")
	return contract
}

// CreateEvent inserts an event for the contract, optionally assigned to a
// support user.
func CreateEvent(t *testing.T, db *gorm.DB, clientID, contractID uint, supportID *uint, eventDate time.Time) *models.Event {
	t.Helper()

	event := &models.Event{
		Attendees:        50,
		EventDate:        eventDate,
		Notes:            "Test event",
		ClientID:         clientID,
		ContractID:       contractID,
		SupportContactID: supportID,
	}
	require.NoError(t, db.Create(event).Error, "failed to create test event")
	return event
}
