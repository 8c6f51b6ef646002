package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/itsnikhil24/SurplusX/config"
	"github.com/itsnikhil24/SurplusX/controllers"
	"github.com/itsnikhil24/SurplusX/models"
	"github.com/itsnikhil24/SurplusX/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *services.RealtimeHub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	// Per-test in-memory database to avoid cross-test interference
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.SurplusItem{},
		&models.NgoRequest{},
		&models.Alert{},
		&models.UserDevice{},
	))
	config.DB = db

	hub := services.NewRealtimeHub()
	deps := Deps{
		Allocation: controllers.NewAllocationController(
			services.NewAllocationService(db, services.DefaultScoringConfig())),
		Stats:    controllers.NewStatsController(services.NewStatsService(db)),
		Realtime: controllers.NewRealtimeController(hub),
	}
	return SetupRouter(deps), hub
}

func httpDo(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, name, email, role string) string {
	t.Helper()
	w := httpDo(r, "POST", "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "pass1234",
		"role":     role,
		"location": gin.H{"latitude": 28.61, "longitude": 77.21},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupRouter(t)

	register(t, r, "Tandoor Tales", "owner@tandoor.in", models.RoleRestaurant)

	// Duplicate email rejected
	w := httpDo(r, "POST", "/api/auth/register", "", gin.H{
		"name": "Copycat", "email": "owner@tandoor.in", "password": "x1234567", "role": models.RoleRestaurant,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Bad role rejected
	w = httpDo(r, "POST", "/api/auth/register", "", gin.H{
		"name": "Nobody", "email": "nobody@x.in", "password": "x1234567", "role": "courier",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/auth/login", "", gin.H{
		"email": "owner@tandoor.in", "password": "pass1234",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, models.RoleRestaurant, resp.User.Role)

	w = httpDo(r, "POST", "/api/auth/login", "", gin.H{
		"email": "owner@tandoor.in", "password": "wrong-pass",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid Credentials")
}

func TestAuthAndRoleGating(t *testing.T) {
	r, _ := setupRouter(t)

	restToken := register(t, r, "Tandoor Tales", "owner@tandoor.in", models.RoleRestaurant)
	ngoToken := register(t, r, "Asha Foundation", "asha@ngo.org", models.RoleNgo)

	// No token
	w := httpDo(r, "GET", "/api/surplus/my-items", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = httpDo(r, "GET", "/api/surplus/my-items", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// NGO cannot upload surplus
	w = httpDo(r, "POST", "/api/surplus/upload", ngoToken, gin.H{
		"itemName": "Rice", "quantity": 5, "expiryDate": "2099-01-01", "pricePerUnit": 10,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Restaurant cannot file NGO requests
	w = httpDo(r, "POST", "/api/ngo/request", restToken, gin.H{})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func uploadDonation(t *testing.T, r *gin.Engine, token string) uint {
	t.Helper()
	w := httpDo(r, "POST", "/api/surplus/upload", token, gin.H{
		"itemName":     "Veg Biryani",
		"quantity":     10,
		"expiryDate":   time.Now().Add(5 * time.Hour).Format(time.RFC3339),
		"pricePerUnit": 8,
		"coordinates":  gin.H{"latitude": 28.61, "longitude": 77.21},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Decision string `json:"decision"`
		Surplus  struct {
			ID uint `json:"ID"`
		} `json:"surplus"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, models.DecisionDonate, resp.Decision)
	require.NotZero(t, resp.Surplus.ID)
	return resp.Surplus.ID
}

func createRequest(t *testing.T, r *gin.Engine, token string, capacity float64) {
	t.Helper()
	w := httpDo(r, "POST", "/api/ngo/request", token, gin.H{
		"foodType":      "Veg",
		"foodCategory":  "Cooked",
		"quantity":      40,
		"location":      "Delhi",
		"coordinates":   gin.H{"latitude": 28.70, "longitude": 77.10},
		"requiredDate":  time.Now().Add(10 * time.Hour).Format(time.RFC3339),
		"totalCapacity": capacity,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestSmartAllocateFlow(t *testing.T) {
	r, _ := setupRouter(t)

	restToken := register(t, r, "Tandoor Tales", "owner@tandoor.in", models.RoleRestaurant)
	ngoToken := register(t, r, "Asha Foundation", "asha@ngo.org", models.RoleNgo)

	surplusID := uploadDonation(t, r, restToken)
	createRequest(t, r, ngoToken, 100)

	// Restaurant sees the pending request
	w := httpDo(r, "GET", "/api/ngo/requests", restToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Asha Foundation")

	// Missing surplusId
	w = httpDo(r, "POST", "/api/allocation/smart-allocate", restToken, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "surplusId is required")

	// Unknown surplusId
	w = httpDo(r, "POST", "/api/allocation/smart-allocate", restToken, gin.H{"surplusId": 9999})
	require.Equal(t, http.StatusNotFound, w.Code)

	// The real thing
	w = httpDo(r, "POST", "/api/allocation/smart-allocate", restToken, gin.H{"surplusId": surplusID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Message string `json:"message"`
		NgoName string `json:"ngoName"`
		Score   int    `json:"score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Smart Allocation Completed", resp.Message)
	require.Equal(t, "Asha Foundation", resp.NgoName)
	require.Greater(t, resp.Score, 0)
	require.LessOrEqual(t, resp.Score, 100)

	// Load moved onto the request
	var req models.NgoRequest
	require.NoError(t, config.DB.First(&req).Error)
	require.Equal(t, 10.0, req.CurrentLoad)

	// Second attempt on the same item
	w = httpDo(r, "POST", "/api/allocation/smart-allocate", restToken, gin.H{"surplusId": surplusID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Item already allocated")

	// NGO role is not allowed to allocate
	w = httpDo(r, "POST", "/api/allocation/smart-allocate", ngoToken, gin.H{"surplusId": surplusID})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestSmartAllocateNoCandidates(t *testing.T) {
	r, _ := setupRouter(t)

	restToken := register(t, r, "Tandoor Tales", "owner@tandoor.in", models.RoleRestaurant)
	surplusID := uploadDonation(t, r, restToken)

	w := httpDo(r, "POST", "/api/allocation/smart-allocate", restToken, gin.H{"surplusId": surplusID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "No NGO requests available")

	// A request without coordinates is silently excluded
	ngoToken := register(t, r, "Asha Foundation", "asha@ngo.org", models.RoleNgo)
	w = httpDo(r, "POST", "/api/ngo/request", ngoToken, gin.H{
		"foodType":      "Both",
		"foodCategory":  "Cooked",
		"quantity":      40,
		"location":      "Delhi",
		"requiredDate":  time.Now().Add(10 * time.Hour).Format(time.RFC3339),
		"totalCapacity": 100,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = httpDo(r, "POST", "/api/allocation/smart-allocate", restToken, gin.H{"surplusId": surplusID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "No suitable NGO found")
}

func TestRouterSkipsRoutesForNilDeps(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := SetupRouter(Deps{})

	w := httpDo(r, "GET", "/api/surplus/dashboard/stats", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httpDo(r, "POST", "/api/allocation/smart-allocate", "", gin.H{"surplusId": 1})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/api/surplus/marketplace", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httpDo(r, "GET", "/api/surplus/recent", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httpDo(r, "GET", "/api/surplus/dashboard/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "total_items")
}

func TestProfileRoundTrip(t *testing.T) {
	r, _ := setupRouter(t)

	token := register(t, r, "Asha Foundation", "asha@ngo.org", models.RoleNgo)

	w := httpDo(r, "GET", "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "asha@ngo.org")

	w = httpDo(r, "PUT", "/api/user/profile", token, gin.H{
		"organizationName": "Asha Trust",
		"phone":            "9999999999",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = httpDo(r, "GET", "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Asha Trust")
}

func TestRealtimeAlertsWS(t *testing.T) {
	r, hub := setupRouter(t)

	token := register(t, r, "Asha Foundation", "asha@ngo.org", models.RoleNgo)

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "asha@ngo.org").First(&user).Error)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/realtime/alerts"
	header := http.Header{"Authorization": []string{"Bearer " + token}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	defer conn.Close()

	// The hub registers the client just after the upgrade
	require.Eventually(t, func() bool {
		return hub.HasClients(user.ID)
	}, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(user.ID, gin.H{"kind": "alert.created", "message": "Donation assigned"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(msg), "Donation assigned")
}
