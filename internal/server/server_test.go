package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellecroissant/backoffice/internal/config"
	"github.com/bellecroissant/backoffice/internal/database"
	"github.com/bellecroissant/backoffice/internal/models"
)

// newTestServer spins up the API over a live MySQL instance with a
// migrated, empty schema. Skipped when no database is reachable.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := os.Getenv("BAKERY_TEST_DSN")
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/bakery_test?parseTime=true"
	}

	db, err := database.NewConnection(&config.DBConfig{DSN: dsn, MaxOpenConns: 5, MaxIdleConns: 2})
	if err != nil {
		t.Skipf("mysql not reachable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	require.NoError(t, db.TruncateAll())

	return NewServer(db, &config.ServerConfig{Addr: ":0", PageSize: 20})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func createCustomerFixture(t *testing.T, s *Server, email string) models.Customer {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/customers", gin.H{
		"first_name": "Marie",
		"last_name":  "Dubois",
		"email":      email,
		"phone":      "+33612345678",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Customer](t, w)
}

func TestCreateCustomerEndpoint(t *testing.T) {
	s := newTestServer(t)

	created := createCustomerFixture(t, s, "api@example.com")
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.CustomerTypeRegular, created.CustomerType)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.Loyalty)

	w := doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/customers/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Customer](t, w)
	assert.Equal(t, created.ID, got.ID)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	createCustomerFixture(t, s, "dup@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/customers", gin.H{
		"first_name": "Jean",
		"last_name":  "Martin",
		"email":      "dup@example.com",
		"phone":      "+33698765432",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[map[string]map[string]string](t, w)
	assert.Equal(t, "a customer with this email already exists", body["errors"]["email"])
}

func TestCreateCustomerValidation(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/customers", gin.H{
		"first_name": "Marie",
		"last_name":  "Dubois",
		"email":      "not-an-email",
		"phone":      "abc",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[map[string]map[string]string](t, w)
	assert.Contains(t, body["errors"], "email")
	assert.Contains(t, body["errors"], "phone")
}

func TestCustomerOrderSummaryEndpoint(t *testing.T) {
	s := newTestServer(t)
	customer := createCustomerFixture(t, s, "summary@example.com")

	w := doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/customers/%d/orders", customer.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.CustomerOrderSummary](t, w)
	assert.EqualValues(t, 0, summary.OrdersCount)
	assert.True(t, summary.TotalSpent.IsZero())

	for _, amount := range []string{"12.50", "7.25", "0.00"} {
		w := doJSON(t, s, http.MethodPost, "/api/orders", gin.H{
			"customer_id":  customer.ID,
			"total_amount": amount,
			"final_amount": amount,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/customers/%d/orders", customer.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary = decode[models.CustomerOrderSummary](t, w)
	assert.EqualValues(t, 3, summary.OrdersCount)
	assert.True(t, summary.TotalSpent.Equal(decimal.RequireFromString("19.75")))

	w = doJSON(t, s, http.MethodGet, "/api/customers/999999/orders", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoyaltyMembersEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/customers", gin.H{
		"first_name":    "Marie",
		"last_name":     "Dubois",
		"email":         "member@example.com",
		"phone":         "+33612345678",
		"customer_type": "loyalty",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	createCustomerFixture(t, s, "regular@example.com")

	w = doJSON(t, s, http.MethodGet, "/api/customers/loyalty_members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	members := decode[[]models.Customer](t, w)
	require.Len(t, members, 1)
	assert.Equal(t, "member@example.com", members[0].Email)
}

func TestCustomerDeleteGuardEndpoint(t *testing.T) {
	s := newTestServer(t)
	customer := createCustomerFixture(t, s, "guard@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/orders", gin.H{
		"customer_id":  customer.ID,
		"total_amount": "5.00",
		"final_amount": "5.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// still readable after the rejection
	w = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIngredientRestockEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/ingredients", gin.H{
		"name":          "Yeast",
		"unit":          "g",
		"current_stock": "5.00",
		"min_stock":     "5.00",
		"max_stock":     "100.00",
		"cost_per_unit": "0.05",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[ingredientResponse](t, w)
	assert.True(t, created.NeedsRestock)

	w = doJSON(t, s, http.MethodPost, "/api/ingredients", gin.H{
		"name":          "Salt",
		"unit":          "g",
		"current_stock": "5.01",
		"min_stock":     "5.00",
		"max_stock":     "100.00",
		"cost_per_unit": "0.01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	stocked := decode[ingredientResponse](t, w)
	assert.False(t, stocked.NeedsRestock)

	w = doJSON(t, s, http.MethodGet, "/api/ingredients/restock_needed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	need := decode[[]ingredientResponse](t, w)
	require.Len(t, need, 1)
	assert.Equal(t, "Yeast", need[0].Name)
}

func TestUpdateCustomerPartial(t *testing.T) {
	s := newTestServer(t)
	customer := createCustomerFixture(t, s, "patch@example.com")

	w := doJSON(t, s, http.MethodPatch, fmt.Sprintf("/api/customers/%d", customer.ID), gin.H{
		"first_name": "Claire",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Customer](t, w)
	assert.Equal(t, "Claire", updated.FirstName)
	assert.Equal(t, "patch@example.com", updated.Email)
	assert.Equal(t, customer.RegistrationDate.Unix(), updated.RegistrationDate.Unix())
}

func TestDeleteCustomerNoContent(t *testing.T) {
	s := newTestServer(t)
	customer := createCustomerFixture(t, s, "gone@example.com")

	w := doJSON(t, s, http.MethodDelete, fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
