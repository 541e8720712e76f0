package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/projetprice/formation-svc/internal/domain"
	"github.com/projetprice/formation-svc/internal/helper"
	"github.com/projetprice/formation-svc/internal/helper/utils"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, helper.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID.Hex() == id {
			return user, nil
		}
	}
	return nil, helper.ErrUserNotFound
}

func (r *fakeUserRepo) FindAllByStatus(_ context.Context, _ string) ([]domain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) SaveUser(_ context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func newGateApp(auth helper.Auth, repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	app.Get("/api/users", func(c *fiber.Ctx) error {
		return c.SendString("public")
	})

	protected := app.Group("/api/protected", AuthMiddleware(auth, repo))
	protected.Get("/verifyUser", func(c *fiber.Ctx) error {
		email, err := CurrentUserEmail(c)
		if err != nil {
			return utils.ResponseFromError(c, err)
		}
		return c.SendString(email)
	})
	return app
}

func seededRepo(email string) *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{
		email: {ID: primitive.NewObjectID(), Email: email, UserStatus: domain.StatusOffline},
	}}
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, utils.ApiResponse) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body utils.ApiResponse
	// non-envelope bodies (the success handlers above) just fail to decode
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp, body
}

func TestGate_NoCredential(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(auth, seededRepo("a@b.fr"))

	req := httptest.NewRequest(http.MethodGet, "/api/protected/verifyUser", nil)
	resp, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, utils.StatusFailure, body.Status)
	require.Equal(t, "No Authorization token or invalid format", body.Message)
}

func TestGate_ExpiredToken(t *testing.T) {
	issuer := helper.SetupAuth("secret", -time.Minute)
	gate := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(gate, seededRepo("a@b.fr"))

	token, err := issuer.GenerateToken("a@b.fr", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/protected/verifyUser", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Expired token", body.Message)
}

func TestGate_GarbageToken(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(auth, seededRepo("a@b.fr"))

	req := httptest.NewRequest(http.MethodGet, "/api/protected/verifyUser", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	resp, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid token", body.Message)
}

func TestGate_WrongSignature(t *testing.T) {
	otherIssuer := helper.SetupAuth("other-secret", time.Hour)
	gate := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(gate, seededRepo("a@b.fr"))

	token, err := otherIssuer.GenerateToken("a@b.fr", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/protected/verifyUser", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid token", body.Message)
}

func TestGate_UnknownSubject(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(auth, seededRepo("someone-else@b.fr"))

	token, err := auth.GenerateToken("a@b.fr", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/protected/verifyUser", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid token", body.Message)
}

func TestGate_ValidToken(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(auth, seededRepo("a@b.fr"))

	token, err := auth.GenerateToken("a@b.fr", nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		apply func(req *http.Request)
	}{
		{"bearer header", func(req *http.Request) {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		}},
		{"raw header", func(req *http.Request) {
			req.Header.Set(fiber.HeaderAuthorization, token)
		}},
		{"cookie fallback", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "jwtToken", Value: token})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/protected/verifyUser", nil)
			tt.apply(req)

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}

func TestGate_HeaderTakesPrecedenceOverCookie(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(auth, seededRepo("a@b.fr"))

	goodToken, err := auth.GenerateToken("a@b.fr", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/protected/verifyUser", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: "jwtToken", Value: goodToken})

	resp, body := doRequest(t, app, req)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid token", body.Message)
}

func TestGate_PublicRoutesBypass(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(auth, seededRepo("a@b.fr"))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGate_Idempotent(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newGateApp(auth, seededRepo("a@b.fr"))

	token, err := auth.GenerateToken("a@b.fr", nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/protected/verifyUser", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
