package userControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Vru01/SanchiWellnessWebsite/models"
	"github.com/Vru01/SanchiWellnessWebsite/routes"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupCreatesUser(t *testing.T) {
	r, db := setupRouter(t)

	w := postJSON(t, r, "/api/signup", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp["message"])
	assert.NotEmpty(t, resp["userId"])

	var user models.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, db := setupRouter(t)

	first := postJSON(t, r, "/api/signup", gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, r, "/api/signup", gin.H{"name": "Other", "email": "asha@example.com", "password": "different"})
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "Email already exists")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "asha@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count, "duplicate signup must not create a second row")
}

func TestLoginSuccess(t *testing.T) {
	r, _ := setupRouter(t)

	postJSON(t, r, "/api/signup", gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret123"})

	w := postJSON(t, r, "/api/login", gin.H{"email": "asha@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "Asha", resp.User["name"])
	assert.Equal(t, "asha@example.com", resp.User["email"])
	assert.NotEmpty(t, resp.User["id"])

	_, leaked := resp.User["password"]
	assert.False(t, leaked, "login response must not carry the password hash")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupRouter(t)

	postJSON(t, r, "/api/signup", gin.H{"name": "Asha", "email": "asha@example.com", "password": "secret123"})

	w := postJSON(t, r, "/api/login", gin.H{"email": "asha@example.com", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password")
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := postJSON(t, r, "/api/login", gin.H{"email": "ghost@example.com", "password": "whatever"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}
