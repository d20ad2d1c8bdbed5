package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitter struct {
	result *services.SubmitResult
	err    error

	gotPayload *services.OrderPayload
}

func (s *stubSubmitter) Submit(_ context.Context, payload *services.OrderPayload) (*services.SubmitResult, error) {
	s.gotPayload = payload
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func checkoutRequest(t *testing.T, submitter *stubSubmitter, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/checkout", NewOrderController(submitter).CreateOrder)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

const validCheckoutBody = `{
	"customer": {"firstName": "Nour", "lastName": "Hassan", "email": "a@b.com", "phone": "01012345678"},
	"address": {"street": "12 Tahrir St", "building": "4", "city": "Cairo"},
	"items": [{"id": 7, "name": "Linen Dress", "price": "1,200.50", "quantity": "2"}],
	"pricing": {"subtotal": 0, "discount": 0, "shippingFee": 70, "total": 0},
	"paymentMethod": "cod",
	"shippingRegion": "cairo-giza"
}`

func TestCreateOrderSuccess(t *testing.T) {
	submitter := &stubSubmitter{result: &services.SubmitResult{OrderID: "order-uuid", OrderNumber: "483921"}}

	recorder := checkoutRequest(t, submitter, validCheckoutBody)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "order-uuid", body["orderId"])
	assert.Equal(t, "483921", body["orderNumber"])

	// The untyped price/quantity fields survive binding.
	require.NotNil(t, submitter.gotPayload)
	assert.Equal(t, "1,200.50", submitter.gotPayload.Items[0].Price)
}

func TestCreateOrderMalformedBody(t *testing.T) {
	submitter := &stubSubmitter{}

	recorder := checkoutRequest(t, submitter, `{"customer": `)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, submitter.gotPayload)
}

func TestCreateOrderValidationError(t *testing.T) {
	submitter := &stubSubmitter{err: &services.ValidationError{Msg: "Missing required order information: no items"}}

	recorder := checkoutRequest(t, submitter, validCheckoutBody)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
}

func TestCreateOrderPartialPersistence(t *testing.T) {
	submitter := &stubSubmitter{err: &services.PartialPersistenceError{
		OrderID:     "order-uuid",
		OrderNumber: "483921",
		Err:         errors.New("items insert failed"),
	}}

	recorder := checkoutRequest(t, submitter, validCheckoutBody)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Order created but items failed", body["message"])
	// Partial identifiers surface for manual reconciliation.
	assert.Equal(t, "order-uuid", body["orderId"])
	assert.Equal(t, "483921", body["orderNumber"])
}

func TestCreateOrderPersistenceError(t *testing.T) {
	submitter := &stubSubmitter{err: errors.New("db unreachable")}

	recorder := checkoutRequest(t, submitter, validCheckoutBody)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to create order", body["message"])
	assert.NotContains(t, body, "orderId")
}
