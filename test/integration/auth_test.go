package integration_test

import (
	"net/http"
	"testing"

	"blogmarket_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow - регистрация и логин по номеру телефона
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	phone := helpers.UniquePhone()

	registerBody := map[string]interface{}{
		"phone_number": phone,
		"password":     "super_password123",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register/", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "token")
	assert.Contains(t, regBodyStr, phone)

	loginBody := map[string]interface{}{
		"phone_number": phone,
		"password":     "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login/", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "token")
}

// TestRegister_DuplicatePhone - повторная регистрация того же номера
func TestRegister_DuplicatePhone(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	phone := helpers.UniquePhone()
	helpers.RegisterAndLogin(t, ts, phone, "super_password123")

	duplicateBody := map[string]interface{}{
		"phone_number": phone,
		"password":     "another_password123",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register/", "", duplicateBody)
	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "already in use")
}

// TestLogin_WrongPassword - неверный пароль дает 400, а не 401
func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	phone := helpers.UniquePhone()
	helpers.RegisterAndLogin(t, ts, phone, "super_password123")

	loginBody := map[string]interface{}{
		"phone_number": phone,
		"password":     "wrong_password",
	}
	logRes, _ := ts.SendRequest(t, "POST", "/api/auth/login/", "", loginBody)
	assert.Equal(t, http.StatusBadRequest, logRes.StatusCode)
}

// TestProtectedRoute_NoToken - доступ без токена закрыт
func TestProtectedRoute_NoToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/profile/me/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
