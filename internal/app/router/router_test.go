package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "identity_backend/internal/feature/auth/adapters"
	"identity_backend/internal/feature/auth/domain/entity"
	authhandler "identity_backend/internal/feature/auth/transport/handler"
	authusecase "identity_backend/internal/feature/auth/usecase"
	settingshandler "identity_backend/internal/feature/settings/transport/handler"
	settingsusecase "identity_backend/internal/feature/settings/usecase"
	"identity_backend/internal/platform/password"
	"identity_backend/internal/platform/token"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestServer wires the full stack against an in-memory database, with
// real hashing (at minimum cost) and real token signing.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, conn.AutoMigrate(&entity.User{}))

	tokens := token.NewService("test-secret", time.Hour)
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	repo := authadapters.NewUserGorm(conn)

	authUC := authusecase.NewAuthUsecase(repo, hasher, tokens)
	settingsUC := settingsusecase.NewSettingsUsecase(repo)

	cookies := authhandler.CookieConfig{MaxAge: 3600, Secure: false}
	authH := authhandler.NewAuthHandler(authUC, tokens, nil, cookies)
	settingsH := settingshandler.NewSettingsHandler(settingsUC)

	return New(authH, settingsH, tokens, nil)
}

func doJSON(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == token.CookieName {
			return c
		}
	}
	t.Fatal("expected session cookie in response")
	return nil
}

func TestSignupFlow(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/signup", gin.H{"email": "a@b.com", "password": "longenough1"})

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string `json:"message"`
		User    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Equal(t, "a@b.com", body.User.Email)
	assert.NotEmpty(t, body.User.ID)
	assert.NotContains(t, w.Body.String(), "password", "no password material in responses")

	cookie := authCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)

	// Repeat signup with the same email conflicts.
	w = doJSON(r, http.MethodPost, "/signup", gin.H{"email": "a@b.com", "password": "longenough1"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"errors":["Email already exists"]}`, w.Body.String())
}

func TestLoginFlow(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/signup", gin.H{"email": "a@b.com", "password": "longenough1"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong password fails with the generic message.
	w = doJSON(r, http.MethodPost, "/login", gin.H{"email": "a@b.com", "password": "wrongpassword1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"errors":["Invalid credentials"]}`, w.Body.String())

	// Unknown email is indistinguishable from a wrong password.
	w2 := doJSON(r, http.MethodPost, "/login", gin.H{"email": "nobody@b.com", "password": "longenough1"})
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.JSONEq(t, w.Body.String(), w2.Body.String())

	// Correct password logs in with a fresh cookie.
	w = doJSON(r, http.MethodPost, "/login", gin.H{"email": "a@b.com", "password": "longenough1"})
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := authCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
}

func TestMeFlow(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/signup", gin.H{"email": "a@b.com", "password": "longenough1"})
	require.Equal(t, http.StatusCreated, w.Code)
	cookie := authCookie(t, w)

	// Without a cookie the protected route rejects.
	resp := doJSON(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// With the signup cookie the identity comes back.
	resp = doJSON(r, http.MethodGet, "/me", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.Code)

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &me))
	assert.Equal(t, "a@b.com", me.Email)
	assert.NotEmpty(t, me.ID)

	// A token signed with a different secret is rejected.
	forged, err := token.NewService("other-secret", time.Hour).Issue(me.ID)
	require.NoError(t, err)
	resp = doJSON(r, http.MethodGet, "/me", nil, &http.Cookie{Name: token.CookieName, Value: forged})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogoutFlow(t *testing.T) {
	r := newTestServer(t)

	// Logout always succeeds, session or not.
	w := doJSON(r, http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logout successful"}`, w.Body.String())

	cleared := authCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	// A client that dropped its cookie is unauthenticated again.
	resp := doJSON(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUpdatePasswordFlow(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/signup", gin.H{"email": "a@b.com", "password": "longenough1"})
	require.Equal(t, http.StatusCreated, w.Code)
	cookie := authCookie(t, w)

	// Wrong current password is rejected without rotating anything.
	resp := doJSON(r, http.MethodPatch, "/update-password",
		gin.H{"currentPassword": "wrongcurrent1", "newPassword": "newpassword1"}, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"errors":["Invalid current password"]}`, resp.Body.String())

	// Correct current password rotates the hash.
	resp = doJSON(r, http.MethodPatch, "/update-password",
		gin.H{"currentPassword": "longenough1", "newPassword": "newpassword1"}, cookie)
	assert.Equal(t, http.StatusOK, resp.Code)

	// The old password no longer verifies, the new one does.
	resp = doJSON(r, http.MethodPost, "/login", gin.H{"email": "a@b.com", "password": "longenough1"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	resp = doJSON(r, http.MethodPost, "/login", gin.H{"email": "a@b.com", "password": "newpassword1"})
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestUserSettingsFlow(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/signup", gin.H{"email": "a@b.com", "password": "longenough1"})
	require.Equal(t, http.StatusCreated, w.Code)
	cookie := authCookie(t, w)

	var me struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))

	// Fresh accounts have no favorites.
	resp := doJSON(r, http.MethodGet, "/user-settings", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":"`+me.User.ID+`","favorite_color":null,"favorite_animal":null}`, resp.Body.String())

	// Set both fields.
	resp = doJSON(r, http.MethodPut, "/user-settings",
		gin.H{"favorite_color": "blue", "favorite_animal": "otter"}, cookie)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":"`+me.User.ID+`","favorite_color":"blue","favorite_animal":"otter"}`, resp.Body.String())

	// Overwrite semantics: omitting a field clears it.
	resp = doJSON(r, http.MethodPut, "/user-settings", gin.H{"favorite_color": "green"}, cookie)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":"`+me.User.ID+`","favorite_color":"green","favorite_animal":null}`, resp.Body.String())

	// Settings routes are gated on the session.
	resp = doJSON(r, http.MethodGet, "/user-settings", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestValidationErrors(t *testing.T) {
	r := newTestServer(t)

	// One message per violated rule.
	w := doJSON(r, http.MethodPost, "/signup", gin.H{"email": "", "password": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.ElementsMatch(t, []string{
		"Invalid email",
		"Password must be at least 10 characters long",
	}, body.Errors)
}
