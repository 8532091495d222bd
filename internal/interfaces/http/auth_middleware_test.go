package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/asset-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
	pkgjwt "github.com/jhoicas/asset-ledger-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(42)
	testIssuer    = "asset-ledger-test"
	testExpMin    = 60
)

// buildTestApp wires a minimal Fiber app with AuthMiddleware, RequireRole and
// a dummy handler that echoes the actor loaded from the token.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			actor := apphttp.GetActor(c)
			return c.JSON(fiber.Map{
				"user_id": actor.UserID,
				"role":    actor.Role,
				"base_id": actor.BaseID,
			})
		},
	)
	return app
}

func tokenFor(t *testing.T, role string, baseID *int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, baseID, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

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

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildTestApp(scope.RoleAdmin)
	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := buildTestApp(scope.RoleAdmin)
	resp := doRequest(t, app, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	app := buildTestApp(scope.RoleAdmin)
	resp := doRequest(t, app, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := buildTestApp(scope.RoleAdmin)
	tok, err := pkgjwt.Generate("other-secret", testUserID, scope.RoleAdmin, nil, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_LoadsActorFromClaims(t *testing.T) {
	app := buildTestApp(scope.RoleBaseCommander)
	baseID := int64(3)
	resp := doRequest(t, app, tokenFor(t, scope.RoleBaseCommander, &baseID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
		BaseID *int64 `json:"base_id"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, testUserID, got.UserID)
	assert.Equal(t, scope.RoleBaseCommander, got.Role)
	require.NotNil(t, got.BaseID)
	assert.Equal(t, baseID, *got.BaseID)
}

func TestAuthMiddleware_AdminHasNoBase(t *testing.T) {
	app := buildTestApp(scope.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, scope.RoleAdmin, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got struct {
		BaseID *int64 `json:"base_id"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Nil(t, got.BaseID)
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	app := buildTestApp(scope.RoleAdmin, scope.RoleLogisticsOfficer)
	resp := doRequest(t, app, tokenFor(t, scope.RoleLogisticsOfficer, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RejectsOtherRole(t *testing.T) {
	app := buildTestApp(scope.RoleAdmin)
	baseID := int64(1)
	resp := doRequest(t, app, tokenFor(t, scope.RoleBaseCommander, &baseID))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
