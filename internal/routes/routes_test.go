package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/cache"
	"github.com/findmychef/chef-marketplace/internal/config"
	dbpkg "github.com/findmychef/chef-marketplace/internal/db"
)

// ======================================================
// TEST RIG
// ======================================================

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
		CacheTTLSeconds: 1,
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg, cache.NewNoop(), nil)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode object: %v (body: %s)", err, w.Body.String())
	}
	return out
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode array: %v (body: %s)", err, w.Body.String())
	}
	return out
}

func register(t *testing.T, r *gin.Engine, name, email, role string) (token string, profileID uint) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "SecurePass123!",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s failed: %d %s", email, w.Code, w.Body.String())
	}

	data := decodeObject(t, w)
	token = data["token"].(string)

	profileKey := "client_profile"
	if role == "chef" {
		profileKey = "chef_profile"
	}
	profile, ok := data[profileKey].(map[string]any)
	if !ok {
		t.Fatalf("register response missing %s: %s", profileKey, w.Body.String())
	}
	return token, uint(profile["id"].(float64))
}

func bookingPayload(chefID uint) gin.H {
	return gin.H{
		"chef_id":          chefID,
		"booking_date":     "2025-12-15",
		"booking_time":     "18:00",
		"duration_hours":   3.0,
		"location":         "123 Main St, Nairobi",
		"special_requests": "Please prepare vegetarian dishes",
	}
}

// setRate patches the chef's hourly rate with the chef's own token.
func setRate(t *testing.T, r *gin.Engine, token string, chefID uint, rate float64) {
	t.Helper()
	w := do(t, r, http.MethodPatch, fmt.Sprintf("/api/chefs/%d", chefID), token, gin.H{"hourly_rate": rate})
	if w.Code != http.StatusOK {
		t.Fatalf("set rate failed: %d %s", w.Code, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r := newTestServer(t)
	w := do(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if decodeObject(t, w)["status"] != "healthy" {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}

// ======================================================
// AUTH
// ======================================================

func TestRegister(t *testing.T) {
	r := newTestServer(t)

	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    "testuser@example.com",
		"password": "SecurePass123!",
		"role":     "client",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	data := decodeObject(t, w)
	if data["email"] != "testuser@example.com" || data["role"] != "client" {
		t.Errorf("unexpected identity fields: %v", data)
	}
	if _, ok := data["token"].(string); !ok {
		t.Errorf("register response missing token")
	}
	if _, ok := data["client_profile"]; !ok {
		t.Errorf("client registration did not create a client profile")
	}

	// Same email again.
	w = do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    "testuser@example.com",
		"password": "SecurePass123!",
		"role":     "client",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate email: status = %d, want 400", w.Code)
	}
}

func TestRegisterChefCreatesChefProfile(t *testing.T) {
	r := newTestServer(t)
	_, chefID := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")

	w := do(t, r, http.MethodGet, fmt.Sprintf("/api/chefs/%d", chefID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("chef profile not visible after registration: %d", w.Code)
	}
	data := decodeObject(t, w)
	if data["name"] != "Chef Wanjiku" {
		t.Errorf("chef name = %v", data["name"])
	}
	if data["hourly_rate"].(float64) != 0 {
		t.Errorf("fresh chef rate = %v, want 0", data["hourly_rate"])
	}
}

func TestRegisterValidation(t *testing.T) {
	r := newTestServer(t)

	bad := []gin.H{
		{"email": "test@example.com"}, // missing fields
		{"name": "X", "email": "not-an-email", "password": "SecurePass123!", "role": "client"},
		{"name": "X", "email": "x@example.com", "password": "short", "role": "client"},
		{"name": "X", "email": "x@example.com", "password": "SecurePass123!", "role": "admin"},
	}
	for i, body := range bad {
		w := do(t, r, http.MethodPost, "/api/auth/register", "", body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("case %d: status = %d, want 422 (%s)", i, w.Code, w.Body.String())
		}
	}
}

func TestLogin(t *testing.T) {
	r := newTestServer(t)
	register(t, r, "Test User", "testuser@example.com", "client")

	w := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "testuser@example.com",
		"password": "SecurePass123!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeObject(t, w)
	if _, ok := data["token"].(string); !ok {
		t.Errorf("login response missing token")
	}
	user := data["user"].(map[string]any)
	if user["email"] != "testuser@example.com" {
		t.Errorf("user email = %v", user["email"])
	}

	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "testuser@example.com",
		"password": "WrongPassword!",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d, want 401", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "SecurePass123!",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: status = %d, want 401", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "testuser@example.com"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing password: status = %d, want 422", w.Code)
	}
}

func TestMe(t *testing.T) {
	r := newTestServer(t)
	token, _ := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")

	w := do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeObject(t, w)
	if data["role"] != "chef" {
		t.Errorf("role = %v", data["role"])
	}
	if _, ok := data["chef_profile"]; !ok {
		t.Errorf("me response missing chef_profile")
	}

	w = do(t, r, http.MethodGet, "/api/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/auth/me", "garbage.token.here", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", w.Code)
	}
}

// ======================================================
// CHEF SEARCH & PROFILE
// ======================================================

func TestChefSearchFilters(t *testing.T) {
	r := newTestServer(t)

	italianToken, italianID := register(t, r, "Gordon Ramsay", "italian@example.com", "chef")
	w := do(t, r, http.MethodPatch, fmt.Sprintf("/api/chefs/%d", italianID), italianToken, gin.H{
		"cuisines":    "Italian,French",
		"hourly_rate": 60.0,
		"location":    "Nairobi",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch italian chef: %d %s", w.Code, w.Body.String())
	}

	japaneseToken, japaneseID := register(t, r, "Niki Nakayama", "japanese@example.com", "chef")
	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/chefs/%d", japaneseID), japaneseToken, gin.H{
		"cuisines":    "Japanese,Asian",
		"hourly_rate": 100.0,
		"location":    "Mombasa",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch japanese chef: %d %s", w.Code, w.Body.String())
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"?cuisine=Italian", 1},
		{"?cuisine=italian", 1}, // case-insensitive
		{"?cuisine=Asian", 1},   // membership, not substring of "Japanese"
		{"?max_price=80", 1},
		{"?location=Nairobi", 1},
		{"?search=Gordon", 1},
		{"?cuisine=Italian&max_price=80&location=Nairobi", 1},
		{"?cuisine=Ethiopian&max_price=5", 0},
	}

	for _, tt := range tests {
		w := do(t, r, http.MethodGet, "/api/chefs"+tt.query, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("%q: status = %d", tt.query, w.Code)
			continue
		}
		got := decodeArray(t, w)
		if len(got) != tt.want {
			t.Errorf("%q: %d results, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestChefProfileOwnership(t *testing.T) {
	r := newTestServer(t)
	token, chefID := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")
	otherToken, _ := register(t, r, "Chef Otieno", "chef2@example.com", "chef")

	path := fmt.Sprintf("/api/chefs/%d", chefID)

	w := do(t, r, http.MethodPatch, path, token, gin.H{
		"bio":         "Updated bio text",
		"hourly_rate": 75.0,
		"location":    "Mombasa",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("own update failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeObject(t, w)
	if data["bio"] != "Updated bio text" || data["hourly_rate"].(float64) != 75.0 {
		t.Errorf("patch not applied: %v", data)
	}

	w = do(t, r, http.MethodPatch, path, "", gin.H{"bio": "Should fail"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no auth: status = %d, want 401", w.Code)
	}

	w = do(t, r, http.MethodPatch, path, otherToken, gin.H{"bio": "Hacking attempt"})
	if w.Code != http.StatusForbidden {
		t.Errorf("other chef: status = %d, want 403", w.Code)
	}

	w = do(t, r, http.MethodPatch, path, token, gin.H{"hourly_rate": -50.0})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("negative rate: status = %d, want 422", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/chefs/99999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing chef: status = %d, want 404", w.Code)
	}
}

func TestClientProfile(t *testing.T) {
	r := newTestServer(t)
	token, clientID := register(t, r, "Test User", "testuser@example.com", "client")
	otherToken, _ := register(t, r, "Other User", "client2@example.com", "client")

	path := fmt.Sprintf("/api/clients/%d", clientID)

	w := do(t, r, http.MethodGet, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get client: %d", w.Code)
	}
	data := decodeObject(t, w)
	if data["email"] != "testuser@example.com" {
		t.Errorf("email = %v", data["email"])
	}

	w = do(t, r, http.MethodPatch, path, token, gin.H{
		"name":    "Updated Name",
		"phone":   "+254700000000",
		"address": "123 Updated St, Nairobi",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update client: %d %s", w.Code, w.Body.String())
	}
	data = decodeObject(t, w)
	if data["name"] != "Updated Name" || data["phone"] != "+254700000000" {
		t.Errorf("patch not applied: %v", data)
	}

	// Email stays read-only even when supplied.
	w = do(t, r, http.MethodPatch, path, token, gin.H{"email": "newemail@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("patch with email: %d", w.Code)
	}
	w = do(t, r, http.MethodGet, path, token, nil)
	if decodeObject(t, w)["email"] != "testuser@example.com" {
		t.Errorf("email was mutated")
	}

	w = do(t, r, http.MethodPatch, path, otherToken, gin.H{"name": "Hacking attempt"})
	if w.Code != http.StatusForbidden {
		t.Errorf("other client: status = %d, want 403", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/clients/99999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing client: status = %d, want 404", w.Code)
	}
}

// ======================================================
// BOOKINGS
// ======================================================

func TestCreateBookingComputesPrice(t *testing.T) {
	r := newTestServer(t)

	chefToken, chefID := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")
	setRate(t, r, chefToken, chefID, 50.0)
	clientToken, _ := register(t, r, "Amina Odhiambo", "client@example.com", "client")

	w := do(t, r, http.MethodPost, "/api/bookings", clientToken, bookingPayload(chefID))
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}
	data := decodeObject(t, w)
	if data["status"] != "pending" {
		t.Errorf("status = %v, want pending", data["status"])
	}
	if data["total_price"].(float64) != 150.0 {
		t.Errorf("total_price = %v, want 150", data["total_price"])
	}
	if data["chef_name"] != "Chef Wanjiku" || data["client_name"] != "Amina Odhiambo" {
		t.Errorf("joined names missing: %v", data)
	}
	if data["booking_date"] != "2025-12-15" || data["booking_time"] != "18:00" {
		t.Errorf("date/time = %v / %v", data["booking_date"], data["booking_time"])
	}
}

func TestBookingPriceImmuneToRateChange(t *testing.T) {
	r := newTestServer(t)

	chefToken, chefID := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")
	setRate(t, r, chefToken, chefID, 50.0)
	clientToken, _ := register(t, r, "Amina Odhiambo", "client@example.com", "client")

	w := do(t, r, http.MethodPost, "/api/bookings", clientToken, bookingPayload(chefID))
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}

	// Chef raises the rate afterwards.
	setRate(t, r, chefToken, chefID, 75.0)

	w = do(t, r, http.MethodGet, "/api/bookings", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list bookings: %d", w.Code)
	}
	bookings := decodeArray(t, w)
	if len(bookings) != 1 {
		t.Fatalf("%d bookings, want 1", len(bookings))
	}
	if bookings[0]["hourly_rate"].(float64) != 50.0 || bookings[0]["total_price"].(float64) != 150.0 {
		t.Fatalf("snapshot drifted: rate=%v price=%v", bookings[0]["hourly_rate"], bookings[0]["total_price"])
	}
}

func TestCreateBookingRequiresClient(t *testing.T) {
	r := newTestServer(t)

	chefToken, chefID := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")

	// Unauthenticated.
	w := do(t, r, http.MethodPost, "/api/bookings", "", bookingPayload(chefID))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	// A chef cannot book.
	w = do(t, r, http.MethodPost, "/api/bookings", chefToken, bookingPayload(chefID))
	if w.Code != http.StatusForbidden {
		t.Errorf("chef caller: status = %d, want 403", w.Code)
	}

	// None of the rejected calls created a row.
	w = do(t, r, http.MethodGet, "/api/bookings", chefToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("chef list: %d", w.Code)
	}
	if got := decodeArray(t, w); len(got) != 0 {
		t.Fatalf("rejected creates left %d bookings", len(got))
	}
}

func TestCreateBookingValidationAndMissingChef(t *testing.T) {
	r := newTestServer(t)

	chefToken, chefID := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")
	setRate(t, r, chefToken, chefID, 50.0)
	clientToken, _ := register(t, r, "Amina Odhiambo", "client@example.com", "client")

	w := do(t, r, http.MethodPost, "/api/bookings", clientToken, gin.H{"chef_id": chefID})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing fields: status = %d, want 422", w.Code)
	}

	payload := bookingPayload(chefID)
	payload["duration_hours"] = -1.0
	w = do(t, r, http.MethodPost, "/api/bookings", clientToken, payload)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("negative duration: status = %d, want 422", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/bookings", clientToken, bookingPayload(9999))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing chef: status = %d, want 404", w.Code)
	}
}

func TestBookingListingIsScopedToCaller(t *testing.T) {
	r := newTestServer(t)

	chef1Token, chef1ID := register(t, r, "Chef One", "chef1@example.com", "chef")
	setRate(t, r, chef1Token, chef1ID, 40.0)
	chef2Token, chef2ID := register(t, r, "Chef Two", "chef2@example.com", "chef")
	setRate(t, r, chef2Token, chef2ID, 60.0)

	client1Token, _ := register(t, r, "Client One", "client1@example.com", "client")
	client2Token, _ := register(t, r, "Client Two", "client2@example.com", "client")

	for _, tc := range []struct {
		token  string
		chefID uint
	}{
		{client1Token, chef1ID},
		{client1Token, chef2ID},
		{client2Token, chef1ID},
	} {
		w := do(t, r, http.MethodPost, "/api/bookings", tc.token, bookingPayload(tc.chefID))
		if w.Code != http.StatusCreated {
			t.Fatalf("seed booking: %d %s", w.Code, w.Body.String())
		}
	}

	checks := []struct {
		token string
		want  int
		side  string
		id    uint
	}{
		{client1Token, 2, "client_id", 0},
		{client2Token, 1, "client_id", 0},
		{chef1Token, 2, "chef_id", chef1ID},
		{chef2Token, 1, "chef_id", chef2ID},
	}
	for _, chk := range checks {
		w := do(t, r, http.MethodGet, "/api/bookings", chk.token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("list: %d", w.Code)
		}
		got := decodeArray(t, w)
		if len(got) != chk.want {
			t.Errorf("listing returned %d, want %d", len(got), chk.want)
		}
		if chk.side == "chef_id" {
			for _, b := range got {
				if uint(b["chef_id"].(float64)) != chk.id {
					t.Errorf("chef listing leaked booking for chef %v", b["chef_id"])
				}
			}
		}
	}
}

func TestBookingStatusLifecycleOverHTTP(t *testing.T) {
	r := newTestServer(t)

	chefToken, chefID := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")
	setRate(t, r, chefToken, chefID, 50.0)
	clientToken, clientID := register(t, r, "Amina Odhiambo", "client@example.com", "client")

	w := do(t, r, http.MethodPost, "/api/bookings", clientToken, bookingPayload(chefID))
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d", w.Code)
	}
	bookingID := uint(decodeObject(t, w)["id"].(float64))
	path := fmt.Sprintf("/api/bookings/%d", bookingID)

	// Client cannot transition, not even their own booking.
	w = do(t, r, http.MethodPatch, path, clientToken, gin.H{"status": "accepted"})
	if w.Code != http.StatusForbidden {
		t.Errorf("client transition: status = %d, want 403", w.Code)
	}

	// Skipping ahead is rejected.
	w = do(t, r, http.MethodPatch, path, chefToken, gin.H{"status": "completed"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("pending -> completed: status = %d, want 422", w.Code)
	}

	// Unknown value is rejected.
	w = do(t, r, http.MethodPatch, path, chefToken, gin.H{"status": "approved"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("unknown status: status = %d, want 422", w.Code)
	}

	for _, status := range []string{"accepted", "confirmed", "completed"} {
		w = do(t, r, http.MethodPatch, path, chefToken, gin.H{"status": status, "notes": "on it"})
		if w.Code != http.StatusOK {
			t.Fatalf("transition to %s: %d %s", status, w.Code, w.Body.String())
		}
		if got := decodeObject(t, w)["status"]; got != status {
			t.Fatalf("status = %v, want %s", got, status)
		}
	}

	// Completion bumped both counters.
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/chefs/%d", chefID), "", nil)
	if got := decodeObject(t, w)["total_bookings"].(float64); got != 1 {
		t.Errorf("chef total_bookings = %v, want 1", got)
	}
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/clients/%d", clientID), clientToken, nil)
	if got := decodeObject(t, w)["total_bookings"].(float64); got != 1 {
		t.Errorf("client total_bookings = %v, want 1", got)
	}

	// Terminal: nothing moves out of completed.
	w = do(t, r, http.MethodPatch, path, chefToken, gin.H{"status": "cancelled"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("completed -> cancelled: status = %d, want 422", w.Code)
	}
}

func TestOnlyAssignedChefTransitions(t *testing.T) {
	r := newTestServer(t)

	chef1Token, chef1ID := register(t, r, "Chef One", "chef1@example.com", "chef")
	setRate(t, r, chef1Token, chef1ID, 50.0)
	chef2Token, _ := register(t, r, "Chef Two", "chef2@example.com", "chef")
	clientToken, _ := register(t, r, "Client", "client@example.com", "client")

	w := do(t, r, http.MethodPost, "/api/bookings", clientToken, bookingPayload(chef1ID))
	if w.Code != http.StatusCreated {
		t.Fatalf("create booking: %d", w.Code)
	}
	bookingID := uint(decodeObject(t, w)["id"].(float64))
	path := fmt.Sprintf("/api/bookings/%d", bookingID)

	w = do(t, r, http.MethodPatch, path, chef2Token, gin.H{"status": "accepted"})
	if w.Code != http.StatusForbidden {
		t.Errorf("other chef: status = %d, want 403", w.Code)
	}

	w = do(t, r, http.MethodPatch, "/api/bookings/9999", chef1Token, gin.H{"status": "accepted"})
	if w.Code != http.StatusNotFound {
		t.Errorf("missing booking: status = %d, want 404", w.Code)
	}

	// The assigned chef still can.
	w = do(t, r, http.MethodPatch, path, chef1Token, gin.H{"status": "declined"})
	if w.Code != http.StatusOK {
		t.Errorf("assigned chef: status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
}

func TestBookingStatusFilter(t *testing.T) {
	r := newTestServer(t)

	chefToken, chefID := register(t, r, "Chef Wanjiku", "chef@example.com", "chef")
	setRate(t, r, chefToken, chefID, 50.0)
	clientToken, _ := register(t, r, "Amina", "client@example.com", "client")

	var ids []uint
	for i := 0; i < 2; i++ {
		w := do(t, r, http.MethodPost, "/api/bookings", clientToken, bookingPayload(chefID))
		if w.Code != http.StatusCreated {
			t.Fatalf("seed booking: %d", w.Code)
		}
		ids = append(ids, uint(decodeObject(t, w)["id"].(float64)))
	}

	w := do(t, r, http.MethodPatch, fmt.Sprintf("/api/bookings/%d", ids[0]), chefToken, gin.H{"status": "accepted"})
	if w.Code != http.StatusOK {
		t.Fatalf("accept: %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/bookings?status=accepted", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("filtered list: %d", w.Code)
	}
	got := decodeArray(t, w)
	if len(got) != 1 || uint(got[0]["id"].(float64)) != ids[0] {
		t.Fatalf("accepted filter returned %d rows", len(got))
	}

	w = do(t, r, http.MethodGet, "/api/bookings?status=bogus", clientToken, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("bogus filter: status = %d, want 422", w.Code)
	}
}
