package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latin-ecom/backoffice-manager/internal/apisrv/auth"
	"github.com/latin-ecom/backoffice-manager/internal/auth/pwhash"
	"github.com/latin-ecom/backoffice-manager/internal/store"
)

const (
	adminEmail       = "ana@latinecom.com"
	adminPassword    = "admin123"
	dropshipEmail    = "sofia@latinecom.com"
	dropshipPassword = "dropship123"
)

func newTestServer(t *testing.T) (*httptest.Server, *Server) {
	t.Helper()

	ph, err := pwhash.New(16, 1000)
	require.NoError(t, err)

	memStore, err := store.New(store.Config{}, ph.HashPassword)
	require.NoError(t, err)

	authSrv, err := auth.New(&auth.Config{
		JWTSecret: "test-secret",
		JWTTTL:    "1h",
	}, memStore.Users(), ph)
	require.NoError(t, err)

	srv := New(&Config{
		Port:           "0",
		AllowedOrigins: []string{"*"},
	}, memStore, authSrv)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return ts, srv
}

func testRequest(t *testing.T, ts *httptest.Server, method, path string, body io.Reader, token string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	envelope := map[string]json.RawMessage{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return resp, envelope
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func login(t *testing.T, ts *httptest.Server, email, password string) string {
	t.Helper()

	body := jsonBody(t, map[string]string{"email": email, "password": password})
	resp, envelope := testRequest(t, ts, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &payload))
	require.NotEmpty(t, payload.Token)
	return payload.Token
}

func TestLoginAndMe(t *testing.T) {
	ts, _ := newTestServer(t)

	// wrong password
	body := jsonBody(t, map[string]string{"email": adminEmail, "password": "nope"})
	resp, envelope := testRequest(t, ts, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.JSONEq(t, `"Credenciales inválidas"`, string(envelope["error"]))

	// malformed email
	body = jsonBody(t, map[string]string{"email": "not-an-email", "password": "x"})
	resp, _ = testRequest(t, ts, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	token := login(t, ts, adminEmail, adminPassword)

	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &me))
	require.Equal(t, adminEmail, me.Email)
	require.Equal(t, "admin", me.Role)

	// no password hash on the wire
	require.NotContains(t, string(envelope["data"]), "password")

	resp, _ = testRequest(t, ts, http.MethodGet, "/api/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = testRequest(t, ts, http.MethodGet, "/api/auth/me", nil, "bogus-token")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductsEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := testRequest(t, ts, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	dropToken := login(t, ts, dropshipEmail, dropshipPassword)
	adminToken := login(t, ts, adminEmail, adminPassword)

	resp, envelope := testRequest(t, ts, http.MethodGet, "/api/products", nil, dropToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &products))
	require.Len(t, products, 4)

	// category filter
	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/products?category=Calzado", nil, dropToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &products))
	require.Len(t, products, 1)
	require.Equal(t, "PRD-314", products[0].ID)

	// search folds diacritics and matches the provider too
	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/products?search=bogota", nil, dropToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &products))
	require.Len(t, products, 1)
	require.Equal(t, "PRD-101", products[0].ID)

	// create is admin only
	newProduct := map[string]interface{}{
		"name":           "Reloj Minimalista Nórdico",
		"category":       "Accesorios",
		"provider":       "NordTime Quito",
		"cost":           12.5,
		"suggestedPrice": 34.99,
		"stock":          80,
		"shippingTime":   "48h",
	}
	resp, _ = testRequest(t, ts, http.MethodPost, "/api/products", jsonBody(t, newProduct), dropToken)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, envelope = testRequest(t, ts, http.MethodPost, "/api/products", jsonBody(t, newProduct), adminToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID     string          `json:"id"`
		Rating json.RawMessage `json:"rating"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &created))
	require.Regexp(t, `^PRD-[0-9A-F]{6}$`, created.ID)
	require.JSONEq(t, "0", string(created.Rating))

	// invalid payload reports field errors
	resp, envelope = testRequest(t, ts, http.MethodPost, "/api/products",
		jsonBody(t, map[string]interface{}{"name": "x", "cost": -1}), adminToken)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(envelope["error"]), "fieldErrors")
	require.Contains(t, string(envelope["error"]), "cost")

	// partial update
	resp, envelope = testRequest(t, ts, http.MethodPatch, "/api/products/"+created.ID,
		jsonBody(t, map[string]interface{}{"stock": 75}), adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Stock int    `json:"stock"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &updated))
	require.Equal(t, 75, updated.Stock)
	require.Equal(t, "Reloj Minimalista Nórdico", updated.Name)

	resp, envelope = testRequest(t, ts, http.MethodPatch, "/api/products/PRD-NOPE",
		jsonBody(t, map[string]interface{}{"stock": 1}), adminToken)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `"Producto no encontrado"`, string(envelope["error"]))
}

func TestOrdersEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)
	token := login(t, ts, dropshipEmail, dropshipPassword)

	resp, envelope := testRequest(t, ts, http.MethodGet, "/api/orders", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		CreatedAt string `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &orders))
	require.Len(t, orders, 5)
	for i := 1; i < len(orders); i++ {
		require.LessOrEqual(t, orders[i].CreatedAt, orders[i-1].CreatedAt)
	}

	// status filter
	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/orders?status=Entregado", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &orders))
	for _, o := range orders {
		require.Equal(t, "Entregado", o.Status)
	}

	// diacritic-insensitive customer search
	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/orders?search=perez", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &orders))
	require.NotEmpty(t, orders)

	// create defaults status to Pendiente
	newOrder := map[string]interface{}{
		"store":         "Tienda Demo",
		"product":       "Producto Demo",
		"customer":      "Cliente Demo",
		"paymentMethod": "TC",
		"cost":          10,
		"shippingCost":  2,
		"salePrice":     25,
	}
	resp, envelope = testRequest(t, ts, http.MethodPost, "/api/orders", jsonBody(t, newOrder), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &created))
	require.Regexp(t, `^ORD-[0-9A-F]{6}$`, created.ID)
	require.Equal(t, "Pendiente", created.Status)

	// unknown status is rejected
	bad := map[string]interface{}{}
	for k, v := range newOrder {
		bad[k] = v
	}
	bad["status"] = "Perdido"
	resp, _ = testRequest(t, ts, http.MethodPost, "/api/orders", jsonBody(t, bad), token)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// status and tracking update
	resp, envelope = testRequest(t, ts, http.MethodPatch, "/api/orders/"+created.ID+"/status",
		jsonBody(t, map[string]string{"status": "Despachado", "trackingCode": "TRK-TEST-001"}), token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var patched struct {
		Status       string `json:"status"`
		TrackingCode string `json:"trackingCode"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &patched))
	require.Equal(t, "Despachado", patched.Status)
	require.Equal(t, "TRK-TEST-001", patched.TrackingCode)

	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/orders/ORD-NOPE", nil, token)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `"Pedido no encontrado"`, string(envelope["error"]))
}

func TestMovementsEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)
	token := login(t, ts, dropshipEmail, dropshipPassword)

	resp, envelope := testRequest(t, ts, http.MethodGet, "/api/movements?type=Egreso", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var movements []struct {
		Type     string `json:"type"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &movements))
	require.NotEmpty(t, movements)
	for _, m := range movements {
		require.Equal(t, "Egreso", m.Type)
	}

	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/movements?category=Recarga", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &movements))
	for _, m := range movements {
		require.Equal(t, "Recarga", m.Category)
	}
}

func TestWalletRequestEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)
	dropToken := login(t, ts, dropshipEmail, dropshipPassword)
	adminToken := login(t, ts, adminEmail, adminPassword)

	resp, envelope := testRequest(t, ts, http.MethodGet, "/api/wallet-requests?status=Pendiente", nil, dropToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var requests []struct {
		ID          string  `json:"id"`
		Status      string  `json:"status"`
		ProcessedAt *string `json:"processedAt"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &requests))
	require.NotEmpty(t, requests)
	pendingID := requests[0].ID

	body := jsonBody(t, map[string]string{"status": "Aprobada"})
	resp, _ = testRequest(t, ts, http.MethodPatch, "/api/wallet-requests/"+pendingID+"/status", body, dropToken)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	body = jsonBody(t, map[string]string{"status": "Aprobada"})
	resp, envelope = testRequest(t, ts, http.MethodPatch, "/api/wallet-requests/"+pendingID+"/status", body, adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var processed struct {
		Status      string  `json:"status"`
		ProcessedAt *string `json:"processedAt"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &processed))
	require.Equal(t, "Aprobada", processed.Status)
	require.NotNil(t, processed.ProcessedAt)

	// terminal states are final
	body = jsonBody(t, map[string]string{"status": "Rechazada"})
	resp, envelope = testRequest(t, ts, http.MethodPatch, "/api/wallet-requests/"+pendingID+"/status", body, adminToken)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `"La solicitud ya fue procesada"`, string(envelope["error"]))

	// Pendiente is not an accepted target
	body = jsonBody(t, map[string]string{"status": "Pendiente"})
	resp, _ = testRequest(t, ts, http.MethodPatch, "/api/wallet-requests/"+pendingID+"/status", body, adminToken)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConnectionsEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)
	dropToken := login(t, ts, dropshipEmail, dropshipPassword)
	adminToken := login(t, ts, adminEmail, adminPassword)

	resp, envelope := testRequest(t, ts, http.MethodGet, "/api/connections?status=Activa", nil, dropToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var connections []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &connections))
	require.NotEmpty(t, connections)
	for _, c := range connections {
		require.Equal(t, "Activa", c.Status)
	}

	body := jsonBody(t, map[string]string{"status": "Sincronizando", "lastSync": "2024-05-01T10:00:00Z"})
	resp, _ = testRequest(t, ts, http.MethodPatch, "/api/connections/"+connections[0].ID, body, dropToken)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	body = jsonBody(t, map[string]string{"status": "Sincronizando", "lastSync": "2024-05-01T10:00:00Z"})
	resp, envelope = testRequest(t, ts, http.MethodPatch, "/api/connections/"+connections[0].ID, body, adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var patched struct {
		Status   string `json:"status"`
		LastSync string `json:"lastSync"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &patched))
	require.Equal(t, "Sincronizando", patched.Status)
	require.Equal(t, "2024-05-01T10:00:00Z", patched.LastSync)

	body = jsonBody(t, map[string]string{"lastSync": "yesterday"})
	resp, _ = testRequest(t, ts, http.MethodPatch, "/api/connections/"+connections[0].ID, body, adminToken)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body = jsonBody(t, map[string]string{"status": "Activa"})
	resp, envelope = testRequest(t, ts, http.MethodPatch, "/api/connections/CON-NOPE", body, adminToken)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `"Conexión no encontrada"`, string(envelope["error"]))
}

func TestDashboardAndBilling(t *testing.T) {
	ts, _ := newTestServer(t)
	token := login(t, ts, dropshipEmail, dropshipPassword)

	resp, envelope := testRequest(t, ts, http.MethodGet, "/api/dashboard", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard struct {
		StatusSummary []struct {
			Status string `json:"status"`
			Value  int    `json:"value"`
		} `json:"orderStatusSummary"`
		TopProducts []struct {
			Product string `json:"product"`
			Units   int    `json:"units"`
		} `json:"topProducts"`
		Billing []struct {
			Name string `json:"name"`
		} `json:"billingBreakdown"`
		Movements []json.RawMessage `json:"movements"`
		Products  []struct {
			UpdatedAt string `json:"updatedAt"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &dashboard))
	require.NotEmpty(t, dashboard.StatusSummary)
	require.NotEmpty(t, dashboard.TopProducts)
	require.Len(t, dashboard.Billing, 6)
	require.NotEmpty(t, dashboard.Movements)

	// products come back most recently updated first
	for i := 1; i < len(dashboard.Products); i++ {
		require.LessOrEqual(t, dashboard.Products[i].UpdatedAt, dashboard.Products[i-1].UpdatedAt)
	}

	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/billing", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var billing []struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &billing))
	require.Len(t, billing, 6)
	require.Equal(t, "Facturación total", billing[0].Name)
	require.Equal(t, "Ganancia neta", billing[5].Name)

	// a range with no orders yields all-zero lines
	resp, envelope = testRequest(t, ts, http.MethodGet, "/api/billing?from=1990-01-01&to=1990-01-02", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(envelope["data"], &billing))
	require.Len(t, billing, 6)
	for _, line := range billing {
		require.JSONEq(t, "0", string(line.Value))
	}
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"ok"}`, string(raw))
}
