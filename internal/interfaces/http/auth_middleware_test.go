package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/hutecki/bankiety-api/internal/interfaces/http"
	pkgjwt "github.com/hutecki/bankiety-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "anna"
	testIssuer    = "bankiety-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with:
//   - AuthMiddleware to parse the JWT and load locals
//   - RequireRole to authorize access
//   - a dummy handler returning 200 when both middlewares pass
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"role":     apphttp.GetRole(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// tokenForRole issues a JWT with the given role.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doRequest fires GET /protected and returns the response.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_MissingHeaderIsUnauthorized(t *testing.T) {
	app := buildTestApp("user")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeaderIsUnauthorized(t *testing.T) {
	app := buildTestApp("user")
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		resp := doRequest(t, app, header)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_BadSignatureIsUnauthorized(t *testing.T) {
	app := buildTestApp("user")
	tok, err := pkgjwt.Generate("some-other-secret", testUserID, testUsername, "user", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidTokenLoadsLocals(t *testing.T) {
	app := buildTestApp("user")
	resp := doRequest(t, app, tokenForRole(t, "user"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user", body["role"])
	assert.Equal(t, testUsername, body["username"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminReachesAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_UserBlockedFromAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"a regular user must not reach an admin-only route")
}

func TestRequireRole_MultipleRolesAccepted(t *testing.T) {
	app := buildTestApp("admin", "user")
	for _, role := range []string{"admin", "user"} {
		resp := doRequest(t, app, tokenForRole(t, role))
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "role %q", role)
	}
}
