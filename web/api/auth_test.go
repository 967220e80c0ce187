package api_test

import (
	"net/http"
	"testing"
)

// TestAuthAPI tests the authentication endpoints: register and login.
func TestAuthAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ts := newTestServer(t)
	defer ts.cleanup()

	t.Run("RegisterSuccess", func(t *testing.T) {
		input := map[string]string{
			"username": "authuser",
			"password": "securepass123",
		}

		status, resp := ts.request("POST", "/api/auth/register", input)

		if status != http.StatusCreated {
			t.Fatalf("expected status %d, got %d – %v", http.StatusCreated, status, resp)
		}
		if resp["success"] != true {
			t.Errorf("expected success=true, got %v", resp["success"])
		}

		data, ok := resp["data"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected data map, got %v", resp["data"])
		}
		if data["token"] == nil || data["token"] == "" {
			t.Error("expected non-empty token in registration response")
		}

		user, ok := data["user"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected user map, got %v", data["user"])
		}
		if user["username"] != "authuser" {
			t.Errorf("user.username = %v, want authuser", user["username"])
		}
	})

	t.Run("RegisterDuplicateUsername", func(t *testing.T) {
		input := map[string]string{
			"username": "authuser",
			"password": "anotherpass123",
		}

		status, resp := ts.request("POST", "/api/auth/register", input)

		if status != http.StatusConflict {
			t.Errorf("expected status %d, got %d – %v", http.StatusConflict, status, resp)
		}
	})

	t.Run("RegisterMissingUsername", func(t *testing.T) {
		status, _ := ts.request("POST", "/api/auth/register", map[string]string{
			"password": "securepass123",
		})
		if status != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, status)
		}
	})

	t.Run("RegisterMissingPassword", func(t *testing.T) {
		status, _ := ts.request("POST", "/api/auth/register", map[string]string{
			"username": "nopassuser",
		})
		if status != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, status)
		}
	})

	t.Run("RegisterWeakPassword", func(t *testing.T) {
		status, _ := ts.request("POST", "/api/auth/register", map[string]string{
			"username": "weakuser",
			"password": "short",
		})
		if status != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, status)
		}
	})

	t.Run("LoginSuccess", func(t *testing.T) {
		status, resp := ts.request("POST", "/api/auth/login", map[string]string{
			"username": "authuser",
			"password": "securepass123",
		})
		if status != http.StatusOK {
			t.Fatalf("expected status %d, got %d – %v", http.StatusOK, status, resp)
		}
		data := resp["data"].(map[string]interface{})
		if data["token"] == nil || data["token"] == "" {
			t.Error("expected non-empty token in login response")
		}
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		status, resp := ts.request("POST", "/api/auth/login", map[string]string{
			"username": "authuser",
			"password": "wrongpassword",
		})
		if status != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d – %v", http.StatusUnauthorized, status, resp)
		}
	})

	t.Run("LoginUnknownUser", func(t *testing.T) {
		status, resp := ts.request("POST", "/api/auth/login", map[string]string{
			"username": "ghostuser",
			"password": "doesnotmatter1",
		})
		if status != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d – %v", http.StatusUnauthorized, status, resp)
		}
	})
}
