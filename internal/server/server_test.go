package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/config"
	"github.com/shashiranjanraj/vanijya/internal/server"
	"github.com/shashiranjanraj/vanijya/pkg/database"
	"github.com/shashiranjanraj/vanijya/pkg/storage"
)

type apiEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestAPI(t *testing.T) (*gorm.DB, http.Handler) {
	t.Helper()

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.CustomerAccount{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	return db, server.BuildHandler(db)
}

func call(t *testing.T, h http.Handler, method, path string, body any) (int, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env apiEnvelope
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
			"body: %s", rec.Body.String())
	}
	return rec.Code, env
}

func createCustomer(t *testing.T, h http.Handler, name, email string) uint {
	t.Helper()
	code, env := call(t, h, http.MethodPost, "/customers", map[string]any{
		"name": name, "email": email, "phone": "+1-555-0100",
	})
	require.Equal(t, http.StatusCreated, code)

	var customer struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &customer))
	return customer.ID
}

func createProduct(t *testing.T, h http.Handler, name string, price float64, stock int) uint {
	t.Helper()
	code, env := call(t, h, http.MethodPost, "/products", map[string]any{
		"name": name, "price": price, "stock": stock,
	})
	require.Equal(t, http.StatusCreated, code)

	var product struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &product))
	return product.ID
}

func TestCustomerLifecycle(t *testing.T) {
	_, h := newTestAPI(t)

	code, env := call(t, h, http.MethodPost, "/customers", map[string]any{
		"name": "Asha Verma", "email": "asha@example.com", "phone": "+91-98100-11111",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Customer created successfully", env.Message)

	code, env = call(t, h, http.MethodGet, "/customers/1", nil)
	require.Equal(t, http.StatusOK, code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Asha Verma", got["name"])
	assert.Equal(t, "asha@example.com", got["email"])
	assert.Equal(t, "+91-98100-11111", got["phone"])
	assert.NotContains(t, got, "created_at")

	code, env = call(t, h, http.MethodPut, "/customers/1", map[string]any{
		"name": "Asha V", "email": "asha@example.com", "phone": "+91-98100-99999",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Customer updated successfully", env.Message)

	code, env = call(t, h, http.MethodGet, "/customers/1", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Asha V", got["name"])

	code, env = call(t, h, http.MethodDelete, "/customers/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Customer deleted successfully", env.Message)

	code, _ = call(t, h, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCustomerDuplicateEmail(t *testing.T) {
	_, h := newTestAPI(t)

	createCustomer(t, h, "First", "same@example.com")
	code, env := call(t, h, http.MethodPost, "/customers", map[string]any{
		"name": "Second", "email": "same@example.com", "phone": "+1-555-0101",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, env.Message, "same@example.com")
}

func TestCustomerValidation(t *testing.T) {
	_, h := newTestAPI(t)

	code, env := call(t, h, http.MethodPost, "/customers", map[string]any{
		"name": "No Email", "phone": "+1-555-0102",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "email")
}

func TestCustomerBadID(t *testing.T) {
	_, h := newTestAPI(t)

	code, _ := call(t, h, http.MethodGet, "/customers/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAccountRequiresCustomer(t *testing.T) {
	_, h := newTestAPI(t)

	code, _ := call(t, h, http.MethodPost, "/customeraccounts", map[string]any{
		"username": "ghost", "password": "password123", "customer_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAccountLifecycle(t *testing.T) {
	db, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Ravi Iyer", "ravi@example.com")

	code, env := call(t, h, http.MethodPost, "/customeraccounts", map[string]any{
		"username": "ravi_i", "password": "password123", "customer_id": customerID,
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Customer account created successfully", env.Message)

	code, env = call(t, h, http.MethodGet, "/customeraccounts/1", nil)
	require.Equal(t, http.StatusOK, code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "ravi_i", got["username"])
	assert.EqualValues(t, customerID, got["customer_id"])
	assert.NotContains(t, got, "password")

	// Stored password must be a bcrypt hash, never the plaintext.
	var account models.CustomerAccount
	require.NoError(t, db.First(&account, 1).Error)
	assert.NotEqual(t, "password123", account.Password)
	assert.NotEmpty(t, account.Password)

	code, env = call(t, h, http.MethodPut, "/customeraccounts/1", map[string]any{
		"username": "ravi_iyer", "password": "newpassword1",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Customer account updated successfully", env.Message)

	code, env = call(t, h, http.MethodDelete, "/customeraccounts/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Customer account deleted successfully", env.Message)
}

func TestAccountDuplicateUsername(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Dup User", "dup@example.com")
	code, _ := call(t, h, http.MethodPost, "/customeraccounts", map[string]any{
		"username": "taken", "password": "password123", "customer_id": customerID,
	})
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, h, http.MethodPost, "/customeraccounts", map[string]any{
		"username": "taken", "password": "password456", "customer_id": customerID,
	})
	assert.Equal(t, http.StatusConflict, code)
}

func TestProductLifecycle(t *testing.T) {
	_, h := newTestAPI(t)

	id := createProduct(t, h, "Brass Diya", 10.0, 5)

	code, env := call(t, h, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	require.Equal(t, http.StatusOK, code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Brass Diya", got["name"])
	assert.EqualValues(t, 10.0, got["price"])
	assert.EqualValues(t, 5, got["stock"])

	// Omitting stock on update keeps the current value.
	code, _ = call(t, h, http.MethodPut, fmt.Sprintf("/products/%d", id), map[string]any{
		"name": "Brass Diya", "price": 12.5,
	})
	require.Equal(t, http.StatusOK, code)

	code, env = call(t, h, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.EqualValues(t, 12.5, got["price"])
	assert.EqualValues(t, 5, got["stock"])

	code, _ = call(t, h, http.MethodPut, fmt.Sprintf("/products/%d", id), map[string]any{
		"name": "Brass Diya", "price": 12.5, "stock": 7,
	})
	require.Equal(t, http.StatusOK, code)

	code, env = call(t, h, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.EqualValues(t, 7, got["stock"])

	code, env = call(t, h, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Product deleted successfully", env.Message)
}

func TestProductListing(t *testing.T) {
	_, h := newTestAPI(t)

	createProduct(t, h, "Cotton Stole", 5.0, 100)
	createProduct(t, h, "Sandalwood Box", 42.5, 8)

	code, env := call(t, h, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Cotton Stole", products[0]["name"])
	assert.Equal(t, "Sandalwood Box", products[1]["name"])
}

func TestOrderTotal(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "buyer@example.com")
	p1 := createProduct(t, h, "Item A", 10.0, 10)
	p2 := createProduct(t, h, "Item B", 5.0, 10)

	code, env := call(t, h, http.MethodPost, "/orders", map[string]any{
		"customer_id": customerID,
		"order_items": []map[string]any{
			{"product_id": p1, "quantity": 2},
			{"product_id": p2, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Order placed successfully", env.Message)

	code, env = call(t, h, http.MethodGet, "/orders/1/total", nil)
	require.Equal(t, http.StatusOK, code)

	var total struct {
		OrderID    uint    `json:"order_id"`
		TotalPrice float64 `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &total))
	assert.EqualValues(t, 1, total.OrderID)
	assert.Equal(t, 25.0, total.TotalPrice)
}

// A price change after placement must not move already-placed totals,
// the unit price is snapshotted on the line.
func TestOrderTotalImmuneToPriceChange(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "buyer2@example.com")
	p1 := createProduct(t, h, "Item A", 10.0, 10)

	code, _ := call(t, h, http.MethodPost, "/orders", map[string]any{
		"customer_id": customerID,
		"order_items": []map[string]any{{"product_id": p1, "quantity": 3}},
	})
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, h, http.MethodPut, fmt.Sprintf("/products/%d", p1), map[string]any{
		"name": "Item A", "price": 99.0,
	})
	require.Equal(t, http.StatusOK, code)

	code, env := call(t, h, http.MethodGet, "/orders/1/total", nil)
	require.Equal(t, http.StatusOK, code)

	var total struct {
		TotalPrice float64 `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &total))
	assert.Equal(t, 30.0, total.TotalPrice)
}

func TestOrderPlacementAtomic(t *testing.T) {
	db, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "atomic@example.com")
	p1 := createProduct(t, h, "Real Product", 10.0, 10)

	code, _ := call(t, h, http.MethodPost, "/orders", map[string]any{
		"customer_id": customerID,
		"order_items": []map[string]any{
			{"product_id": p1, "quantity": 1},
			{"product_id": 9999, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusNotFound, code)

	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestOrderRejectsUnknownCustomer(t *testing.T) {
	_, h := newTestAPI(t)

	p1 := createProduct(t, h, "Item", 10.0, 10)
	code, _ := call(t, h, http.MethodPost, "/orders", map[string]any{
		"customer_id": 42,
		"order_items": []map[string]any{{"product_id": p1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOrderRejectsBadQuantity(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "qty@example.com")
	p1 := createProduct(t, h, "Item", 10.0, 10)

	code, _ := call(t, h, http.MethodPost, "/orders", map[string]any{
		"customer_id": customerID,
		"order_items": []map[string]any{{"product_id": p1, "quantity": 0}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = call(t, h, http.MethodPost, "/orders", map[string]any{
		"customer_id": customerID,
		"order_items": []map[string]any{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestOrderShowIncludesItems(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "items@example.com")
	p1 := createProduct(t, h, "Item A", 10.0, 10)

	code, _ := call(t, h, http.MethodPost, "/orders", map[string]any{
		"customer_id": customerID,
		"order_items": []map[string]any{{"product_id": p1, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := call(t, h, http.MethodGet, "/orders/1", nil)
	require.Equal(t, http.StatusOK, code)

	var order struct {
		ID         uint   `json:"id"`
		OrderDate  string `json:"order_date"`
		CustomerID uint   `json:"customer_id"`
		Status     string `json:"status"`
		OrderItems []struct {
			ProductID uint    `json:"product_id"`
			Quantity  int     `json:"quantity"`
			UnitPrice float64 `json:"unit_price"`
		} `json:"order_items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.EqualValues(t, 1, order.ID)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, "pending", order.Status)
	assert.NotEmpty(t, order.OrderDate)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, p1, order.OrderItems[0].ProductID)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)
	assert.Equal(t, 10.0, order.OrderItems[0].UnitPrice)
}

func placeOrder(t *testing.T, h http.Handler, customerID, productID uint) {
	t.Helper()
	code, _ := call(t, h, http.MethodPost, "/orders", map[string]any{
		"customer_id": customerID,
		"order_items": []map[string]any{{"product_id": productID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, code)
}

func trackStatus(t *testing.T, h http.Handler, orderID uint) string {
	t.Helper()
	code, env := call(t, h, http.MethodGet, fmt.Sprintf("/orders/%d/track", orderID), nil)
	require.Equal(t, http.StatusOK, code)

	var tracked struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tracked))
	return tracked.Status
}

func TestOrderStatusLifecycle(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "lifecycle@example.com")
	p1 := createProduct(t, h, "Item", 10.0, 10)
	placeOrder(t, h, customerID, p1)

	assert.Equal(t, "pending", trackStatus(t, h, 1))

	// pending -> delivered skips states and must be refused.
	code, _ := call(t, h, http.MethodPut, "/orders/1/status", map[string]any{"status": "delivered"})
	assert.Equal(t, http.StatusConflict, code)

	for _, status := range []string{"confirmed", "shipped", "delivered"} {
		code, _ := call(t, h, http.MethodPut, "/orders/1/status", map[string]any{"status": status})
		require.Equal(t, http.StatusOK, code, "transition to %s", status)
		assert.Equal(t, status, trackStatus(t, h, 1))
	}

	// delivered is terminal.
	code, _ = call(t, h, http.MethodPut, "/orders/1/status", map[string]any{"status": "cancelled"})
	assert.Equal(t, http.StatusConflict, code)
}

func TestOrderStatusRejectsUnknownValue(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "badstatus@example.com")
	p1 := createProduct(t, h, "Item", 10.0, 10)
	placeOrder(t, h, customerID, p1)

	code, _ := call(t, h, http.MethodPut, "/orders/1/status", map[string]any{"status": "teleported"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestOrderCancel(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "cancel@example.com")
	p1 := createProduct(t, h, "Item", 10.0, 10)
	placeOrder(t, h, customerID, p1)

	code, env := call(t, h, http.MethodPost, "/orders/1/cancel", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Order canceled successfully", env.Message)
	assert.Equal(t, "cancelled", trackStatus(t, h, 1))

	// Cancelling twice is a conflict, not idempotent success.
	code, _ = call(t, h, http.MethodPost, "/orders/1/cancel", nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestOrderCancelRefusedAfterShipping(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "shipped@example.com")
	p1 := createProduct(t, h, "Item", 10.0, 10)
	placeOrder(t, h, customerID, p1)

	for _, status := range []string{"confirmed", "shipped"} {
		code, _ := call(t, h, http.MethodPut, "/orders/1/status", map[string]any{"status": status})
		require.Equal(t, http.StatusOK, code)
	}

	code, _ := call(t, h, http.MethodPost, "/orders/1/cancel", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "shipped", trackStatus(t, h, 1))
}

func TestProductDeleteRefusedWhenOrdered(t *testing.T) {
	_, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "refprod@example.com")
	p1 := createProduct(t, h, "Popular Item", 10.0, 10)
	placeOrder(t, h, customerID, p1)

	code, _ := call(t, h, http.MethodDelete, fmt.Sprintf("/products/%d", p1), nil)
	assert.Equal(t, http.StatusConflict, code)

	// Cancelling the order keeps its lines, so the product stays pinned.
	code, _ = call(t, h, http.MethodPost, "/orders/1/cancel", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, h, http.MethodDelete, fmt.Sprintf("/products/%d", p1), nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestCustomerDeleteRefusedWithOrders(t *testing.T) {
	db, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Buyer", "delcust@example.com")
	p1 := createProduct(t, h, "Item", 10.0, 10)
	placeOrder(t, h, customerID, p1)

	code, _ := call(t, h, http.MethodDelete, fmt.Sprintf("/customers/%d", customerID), nil)
	assert.Equal(t, http.StatusConflict, code)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCustomerDeleteCascadesAccounts(t *testing.T) {
	db, h := newTestAPI(t)

	customerID := createCustomer(t, h, "Leaver", "leaver@example.com")
	code, _ := call(t, h, http.MethodPost, "/customeraccounts", map[string]any{
		"username": "leaver", "password": "password123", "customer_id": customerID,
	})
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, h, http.MethodDelete, fmt.Sprintf("/customers/%d", customerID), nil)
	require.Equal(t, http.StatusOK, code)

	var accounts int64
	require.NoError(t, db.Model(&models.CustomerAccount{}).Count(&accounts).Error)
	assert.Zero(t, accounts)
}

func TestMalformedJSONBody(t *testing.T) {
	_, h := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	_, h := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	_, h := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vanijya_")
}

func newImageForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", "diya.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("\x89PNG\r\n\x1a\nfake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestProductImageUpload(t *testing.T) {
	require.NoError(t, config.Load())
	config.Set("STORAGE_DISK", "local")
	config.Set("STORAGE_LOCAL_ROOT", t.TempDir())
	config.Set("STORAGE_URL", "http://localhost:8080/storage")
	storage.Connect()

	_, h := newTestAPI(t)
	id := createProduct(t, h, "Photogenic Item", 10.0, 1)

	body, contentType := newImageForm(t)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/products/%d/image", id), body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var product struct {
		ImageURL string `json:"image_url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Contains(t, product.ImageURL, fmt.Sprintf("products/%d.png", id))
	assert.True(t, storage.Exists(fmt.Sprintf("products/%d.png", id)))

	// Upload to a missing product is a 404.
	body, contentType = newImageForm(t)
	req = httptest.NewRequest(http.MethodPost, "/products/9999/image", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
