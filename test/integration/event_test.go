package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epicevents/internal/models"
	"epicevents/test/helpers"
)

func TestEventCreate_Success(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "party@client.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 5000)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/events", sellerToken, map[string]interface{}{
		"client_mail": client.Email,
		"contract_id": contract.ID,
		"attendees":   120,
		"event_date":  "2026-10-01",
		"notes":       "Annual gala",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Annual gala")
	assert.Contains(t, bodyStr, `"event_date":"2026-10-01"`)
}

func TestEventCreate_ContractIDAsString(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "stringid@client.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 5000)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/events", sellerToken, map[string]interface{}{
		"client_mail": client.Email,
		"contract_id": fmt.Sprintf("%d", contract.ID),
		"attendees":   10,
		"event_date":  "2026-10-01",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestEventCreate_BadContractID(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "badid@client.fr")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/events", sellerToken, map[string]interface{}{
		"client_mail": client.Email,
		"contract_id": "twelve",
		"attendees":   10,
		"event_date":  "2026-10-01",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Enter a correct contract ID.")
}

func TestEventCreate_UnknownContract(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "nocontract@client.fr")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/events", sellerToken, map[string]interface{}{
		"client_mail": client.Email,
		"contract_id": 9999,
		"attendees":   10,
		"event_date":  "2026-10-01",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "This contract doesn't exist.")
}

func TestEventCreate_OneEventPerContract(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "once@client.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 5000)

	body := map[string]interface{}{
		"client_mail": client.Email,
		"contract_id": contract.ID,
		"attendees":   10,
		"event_date":  "2026-10-01",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/events", sellerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/events", sellerToken, body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, fmt.Sprintf("Contract '%d' already has an event.", contract.ID))

	var count int64
	ts.DB.Model(&models.Event{}).Where("contract_id = ?", contract.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEventCreate_ContractClientMismatch(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)
	clientA := helpers.CreateClient(t, ts.DB, seller.ID, "a@client.fr")
	clientB := helpers.CreateClient(t, ts.DB, seller.ID, "b@client.fr")
	contractB := helpers.CreateContract(t, ts.DB, clientB.ID, seller.ID, 5000)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/events", sellerToken, map[string]interface{}{
		"client_mail": clientA.Email,
		"contract_id": contractB.ID,
		"attendees":   10,
		"event_date":  "2026-10-01",
	})

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr,
		fmt.Sprintf("Client '%s' doesn't have the contract ID %d.", clientA.Email, contractB.ID))
}

func TestEventCreate_NotOwnerForbidden(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	_, owner := helpers.CreateAndLoginSeller(t, ts)
	otherToken, _ := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, owner.ID, "guarded@client.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, owner.ID, 5000)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/events", otherToken, map[string]interface{}{
		"client_mail": client.Email,
		"contract_id": contract.ID,
		"attendees":   10,
		"event_date":  "2026-10-01",
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Access denied, you're not responsible of this client.")
}

func TestEventUpdate_AssignedSupport(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	supportToken, support := helpers.CreateAndLoginSupport(t, ts)
	_, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "assigned@event.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 5000)
	event := helpers.CreateEvent(t, ts.DB, client.ID, contract.ID, &support.ID, time.Now().AddDate(0, 1, 0))

	res, bodyStr := ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/v1/events/%d", event.ID), supportToken,
		map[string]interface{}{"attendees": 75, "notes": "Updated plan"})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"attendees":75`)
	assert.Contains(t, bodyStr, "Updated plan")
}

func TestEventUpdate_UnassignedSupportForbidden(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	outsiderToken, _ := helpers.CreateAndLoginSupport(t, ts)
	_, assigned := helpers.CreateAndLoginSupport(t, ts)
	_, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "protected@event.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 5000)
	event := helpers.CreateEvent(t, ts.DB, client.ID, contract.ID, &assigned.ID, time.Now().AddDate(0, 1, 0))

	res, bodyStr := ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/v1/events/%d", event.ID), outsiderToken,
		map[string]interface{}{"attendees": 75})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Access denied, you're not responsible of this event.")
}

func TestEventUpdate_SellerForbidden(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "sellerhandsoff@event.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 5000)
	event := helpers.CreateEvent(t, ts.DB, client.ID, contract.ID, nil, time.Now().AddDate(0, 1, 0))

	res, bodyStr := ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/v1/events/%d", event.ID), sellerToken,
		map[string]interface{}{"attendees": 75})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Access denied, you're not a 'support' user.")
}

func TestEventUpdate_ManagerAssignsSupport(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	managerToken, _ := helpers.CreateAndLoginManager(t, ts)
	supportToken, support := helpers.CreateAndLoginSupport(t, ts)
	_, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "staffing@event.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 5000)
	event := helpers.CreateEvent(t, ts.DB, client.ID, contract.ID, nil, time.Now().AddDate(0, 1, 0))
	path := fmt.Sprintf("/api/v1/events/%d", event.ID)

	// A support user cannot self-assign.
	res, _ := ts.SendRequest(t, http.MethodPut, path, supportToken,
		map[string]interface{}{"support_contact": support.Username})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, path, managerToken,
		map[string]interface{}{"support_contact": support.Username})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, support.Username)

	// Once assigned, the support user may edit.
	res, _ = ts.SendRequest(t, http.MethodPut, path, supportToken,
		map[string]interface{}{"attendees": 30})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestEventUpdate_SupportContactMustBeSupport(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	managerToken, _ := helpers.CreateAndLoginManager(t, ts)
	_, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "wrongrole@event.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 5000)
	event := helpers.CreateEvent(t, ts.DB, client.ID, contract.ID, nil, time.Now().AddDate(0, 1, 0))
	path := fmt.Sprintf("/api/v1/events/%d", event.ID)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, path, managerToken,
		map[string]interface{}{"support_contact": seller.Username})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Support contact must be a 'support' user.")

	res, bodyStr = ts.SendRequest(t, http.MethodPut, path, managerToken,
		map[string]interface{}{"support_contact": "ghost_user"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "This user doesn't exist.")
}

func TestEventGet_UnknownID(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	sellerToken, _ := helpers.CreateAndLoginSeller(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/events/9999", sellerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "This ID event doesn't exist.")
}

func TestEventList_DateFilter(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	supportToken, support := helpers.CreateAndLoginSupport(t, ts)
	_, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "dated@event.fr")
	contractA := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 100)
	contractB := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 200)

	target := time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC)
	other := time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC)
	eventA := helpers.CreateEvent(t, ts.DB, client.ID, contractA.ID, &support.ID, target)
	helpers.CreateEvent(t, ts.DB, client.ID, contractB.ID, &support.ID, other)

	// The filter matches the calendar day regardless of the stored time.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/events?event_date=2026-06-15", supportToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, fmt.Sprintf(`"id":%d`, eventA.ID))
	assert.Contains(t, bodyStr, `"event_date":"2026-06-15"`)
	assert.NotContains(t, bodyStr, `"event_date":"2026-07-01"`)

	// Dotted separators parse the same way.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/events?event_date=2026.06.15", supportToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"event_date":"2026-06-15"`)
}

func TestEventList_ResponsibleFilterForSupport(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	supportToken, support := helpers.CreateAndLoginSupport(t, ts)
	_, otherSupport := helpers.CreateAndLoginSupport(t, ts)
	_, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "split@event.fr")
	contractA := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 100)
	contractB := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 200)

	mine := helpers.CreateEvent(t, ts.DB, client.ID, contractA.ID, &support.ID, time.Now().AddDate(0, 1, 0))
	theirs := helpers.CreateEvent(t, ts.DB, client.ID, contractB.ID, &otherSupport.ID, time.Now().AddDate(0, 1, 0))

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/events?responsible=1", supportToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, fmt.Sprintf(`"id":%d`, mine.ID))
	assert.NotContains(t, bodyStr, fmt.Sprintf(`"id":%d`, theirs.ID))
}

func TestEventDelete_AssignedSupport(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	supportToken, support := helpers.CreateAndLoginSupport(t, ts)
	_, seller := helpers.CreateAndLoginSeller(t, ts)
	client := helpers.CreateClient(t, ts.DB, seller.ID, "gone@event.fr")
	contract := helpers.CreateContract(t, ts.DB, client.ID, seller.ID, 100)
	event := helpers.CreateEvent(t, ts.DB, client.ID, contract.ID, &support.ID, time.Now().AddDate(0, 1, 0))

	res, _ := ts.SendRequest(t, http.MethodDelete,
		fmt.Sprintf("/api/v1/events/%d", event.ID), supportToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Event{}).Where("id = ?", event.ID).Count(&count)
	assert.Zero(t, count)
}
