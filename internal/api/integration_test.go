package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"videostore/internal/api/handlers"
	"videostore/internal/api/middleware"
	"videostore/internal/config"
	"videostore/internal/repository/memory"
	"videostore/internal/services"
)

var totalChargesPattern = regexp.MustCompile(`Total [Cc]harges\s+(\d+\.\d\d)`)

func setupTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.NewDefaultConfig()
	logger := zap.NewNop()

	movieRepo := memory.NewMovieRepository()
	customerRepo := memory.NewCustomerRepository()

	notificationService := services.NewNotificationService(logger)
	catalogService := services.NewCatalogService(movieRepo, logger)
	billingService := services.NewBillingService(customerRepo, movieRepo, notificationService, cfg, logger)

	movieHandler := handlers.NewMovieHandler(catalogService)
	customerHandler := handlers.NewCustomerHandler(billingService)

	router := NewRouter(movieHandler, customerHandler, logger)
	engine := gin.New()
	router.Setup(engine)

	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON response %q: %v", w.Body.String(), err)
	}
	return response
}

func addMovie(t *testing.T, engine *gin.Engine, title, code string) string {
	t.Helper()
	w := doRequest(engine, "POST", "/movies", `{"title":"`+title+`","price_code":"`+code+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201 adding %s, got %d. Body: %s", title, w.Code, w.Body.String())
	}
	return decode(t, w)["id"].(string)
}

func createCustomer(t *testing.T, engine *gin.Engine, name string) string {
	t.Helper()
	w := doRequest(engine, "POST", "/customers", `{"name":"`+name+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", w.Code, w.Body.String())
	}
	return decode(t, w)["id"].(string)
}

func rent(engine *gin.Engine, customerID, movieID, days string) *httptest.ResponseRecorder {
	return doRequest(engine, "POST", "/customers/"+customerID+"/rentals",
		`{"movie_id":"`+movieID+`","days_rented":`+days+`}`)
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupTestServer()

	w := doRequest(engine, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected a request ID header on the response")
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	engine := setupTestServer()

	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "req-42" {
		t.Errorf("Expected request ID req-42, got %q", got)
	}
}

func TestMovieEndpoints(t *testing.T) {
	engine := setupTestServer()
	id := addMovie(t, engine, "Mulan", "new_release")

	w := doRequest(engine, "GET", "/movies/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	response := decode(t, w)
	if response["title"] != "Mulan" || response["price_code"] != "new_release" {
		t.Errorf("Unexpected movie %v", response)
	}

	w = doRequest(engine, "GET", "/movies", "")
	var list []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Errorf("Expected 1 movie, got %d", len(list))
	}

	w = doRequest(engine, "DELETE", "/movies/"+id, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	w = doRequest(engine, "GET", "/movies/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestAddMovie_Validation(t *testing.T) {
	engine := setupTestServer()

	tests := []struct {
		name string
		body string
	}{
		{name: "Unknown price code", body: `{"title":"Nanook","price_code":"documentary"}`},
		{name: "Missing title", body: `{"price_code":"regular"}`},
		{name: "Malformed JSON", body: `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(engine, "POST", "/movies", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d. Body: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestQuoteEndpoint(t *testing.T) {
	engine := setupTestServer()

	w := doRequest(engine, "GET", "/price-codes/regular/quote?days=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	response := decode(t, w)
	if response["charge"] != "6.50" {
		t.Errorf("Expected charge 6.50, got %v", response["charge"])
	}
	if response["points"] != float64(1) {
		t.Errorf("Expected 1 point, got %v", response["points"])
	}

	w = doRequest(engine, "GET", "/price-codes/documentary/quote?days=5", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown code, got %d", w.Code)
	}

	w = doRequest(engine, "GET", "/price-codes/regular/quote?days=-1", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for negative days, got %d", w.Code)
	}

	w = doRequest(engine, "GET", "/price-codes/regular/quote", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 when days is missing, got %d", w.Code)
	}

	w = doRequest(engine, "GET", "/price-codes/regular/quote?days=0", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for a zero-day quote, got %d", w.Code)
	}
	if response := decode(t, w); response["charge"] != "2.00" {
		t.Errorf("Expected zero-day charge 2.00, got %v", response["charge"])
	}
}

func TestPriceCodesEndpoint(t *testing.T) {
	engine := setupTestServer()

	w := doRequest(engine, "GET", "/price-codes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var codes []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &codes); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(codes) != 3 {
		t.Fatalf("Expected 3 price codes, got %d", len(codes))
	}
	if codes[0]["price_code"] != "new_release" || codes[0]["one_day_charge"] != "3.00" {
		t.Errorf("Unexpected first price code %v", codes[0])
	}
}

func TestRemoveCustomerEndpoint(t *testing.T) {
	engine := setupTestServer()
	customerID := createCustomer(t, engine, "Movie Mogul")

	w := doRequest(engine, "DELETE", "/customers/"+customerID, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	w = doRequest(engine, "GET", "/customers/"+customerID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after removal, got %d", w.Code)
	}
	w = doRequest(engine, "DELETE", "/customers/"+customerID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 removing twice, got %d", w.Code)
	}
}

func TestRentalAndStatementEndpoints(t *testing.T) {
	engine := setupTestServer()

	mulan := addMovie(t, engine, "Mulan", "new_release")
	citizenFour := addMovie(t, engine, "CitizenFour", "regular")
	frozen := addMovie(t, engine, "Frozen", "childrens")
	customerID := createCustomer(t, engine, "Movie Mogul")

	rentals := []struct {
		movieID        string
		days           string
		expectedCharge string
	}{
		{mulan, "3", "9.00"},
		{citizenFour, "5", "6.50"},
		{frozen, "7", "7.50"},
	}
	for _, r := range rentals {
		w := rent(engine, customerID, r.movieID, r.days)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d. Body: %s", w.Code, w.Body.String())
		}
		if charge := decode(t, w)["charge"]; charge != r.expectedCharge {
			t.Errorf("Expected charge %s, got %v", r.expectedCharge, charge)
		}
	}

	w := doRequest(engine, "GET", "/customers/"+customerID+"/statement", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Expected text/plain, got %s", w.Header().Get("Content-Type"))
	}
	matches := totalChargesPattern.FindStringSubmatch(w.Body.String())
	if matches == nil || matches[1] != "23.00" {
		t.Errorf("Expected Total Charges 23.00 in statement:\n%s", w.Body.String())
	}

	w = doRequest(engine, "GET", "/customers/"+customerID+"/statement.json", "")
	response := decode(t, w)
	if response["total_charge"] != "23.00" {
		t.Errorf("Expected total_charge 23.00, got %v", response["total_charge"])
	}
	if response["total_points"] != float64(5) {
		t.Errorf("Expected total_points 5, got %v", response["total_points"])
	}
	if lines, ok := response["lines"].([]interface{}); !ok || len(lines) != 3 {
		t.Errorf("Expected 3 statement lines, got %v", response["lines"])
	}

	w = doRequest(engine, "GET", "/customers/"+customerID, "")
	if decode(t, w)["total_charge"] != "23.00" {
		t.Errorf("Expected customer total 23.00, got %s", w.Body.String())
	}
}

func TestEmptyStatement(t *testing.T) {
	engine := setupTestServer()
	customerID := createCustomer(t, engine, "Movie Mogul")

	w := doRequest(engine, "GET", "/customers/"+customerID+"/statement", "")
	matches := totalChargesPattern.FindStringSubmatch(w.Body.String())
	if matches == nil || matches[1] != "0.00" {
		t.Errorf("Expected Total Charges 0.00 in statement:\n%s", w.Body.String())
	}
}

func TestRentMovie_Errors(t *testing.T) {
	engine := setupTestServer()
	mulan := addMovie(t, engine, "Mulan", "new_release")
	customerID := createCustomer(t, engine, "Movie Mogul")

	tests := []struct {
		name         string
		customerID   string
		body         string
		expectedCode int
	}{
		{name: "Negative days", customerID: customerID, body: `{"movie_id":"` + mulan + `","days_rented":-1}`, expectedCode: http.StatusBadRequest},
		{name: "Missing days", customerID: customerID, body: `{"movie_id":"` + mulan + `"}`, expectedCode: http.StatusBadRequest},
		{name: "Longer than a year", customerID: customerID, body: `{"movie_id":"` + mulan + `","days_rented":366}`, expectedCode: http.StatusBadRequest},
		{name: "Days near MaxInt", customerID: customerID, body: `{"movie_id":"` + mulan + `","days_rented":9223372036854775807}`, expectedCode: http.StatusBadRequest},
		{name: "Unknown movie", customerID: customerID, body: `{"movie_id":"nope","days_rented":1}`, expectedCode: http.StatusNotFound},
		{name: "Unknown customer", customerID: "nope", body: `{"movie_id":"` + mulan + `","days_rented":1}`, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(engine, "POST", "/customers/"+tt.customerID+"/rentals", tt.body)
			if w.Code != tt.expectedCode {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedCode, w.Code, w.Body.String())
			}
		})
	}

	w := rent(engine, customerID, mulan, "0")
	if w.Code != http.StatusCreated {
		t.Errorf("Expected a zero-day rental to be accepted, got %d", w.Code)
	}
}

func TestAllStatementsEndpoint(t *testing.T) {
	engine := setupTestServer()
	mulan := addMovie(t, engine, "Mulan", "new_release")
	for _, name := range []string{"Bob", "Alice"} {
		id := createCustomer(t, engine, name)
		rent(engine, id, mulan, "4")
	}

	w := doRequest(engine, "GET", "/statements", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var statements []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &statements)
	if len(statements) != 2 {
		t.Fatalf("Expected 2 statements, got %d", len(statements))
	}
	if statements[0]["customer_name"] != "Alice" || statements[0]["total_charge"] != "12.00" {
		t.Errorf("Unexpected first statement %v", statements[0])
	}
}

func TestCustomerNotFound(t *testing.T) {
	engine := setupTestServer()

	for _, path := range []string{"/customers/nope", "/customers/nope/statement", "/customers/nope/statement.json"} {
		w := doRequest(engine, "GET", path, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected status 404, got %d", path, w.Code)
		}
	}
}
