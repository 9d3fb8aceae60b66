package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auth_backend/internal/app/di"
	authadapters "auth_backend/internal/feature/auth/adapters"
	"auth_backend/internal/feature/auth/domain/entity"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/password"
)

// setupServer wires the full stack against in-memory stores: SQLite for
// users and, when withRedis is set, miniredis for tokens (otherwise the
// SQLite token store is exercised through the same DI path as production).
func setupServer(t *testing.T, withRedis bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&entity.User{}, &authadapters.TokenModel{}))

	var rdb *redisv9.Client
	if withRedis {
		mr, err := miniredis.Run()
		require.NoError(t, err, "failed to start miniredis")
		rdb = redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
		t.Cleanup(func() {
			_ = rdb.Close()
			mr.Close()
		})
	}

	userRepo := authadapters.NewUserMySQL(db)
	tokenRepo := di.NewTokenRepository(rdb, db)
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo, hasher)

	return NewRouter(authhandler.NewAuthHandler(authUC))
}

func doJSON(router *gin.Engine, method, path string, body gin.H, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// The full token lifecycle, once against each token store.
func TestAuthFlow_EndToEnd(t *testing.T) {
	for _, backend := range []struct {
		name      string
		withRedis bool
	}{
		{"redis token store", true},
		{"mysql token store", false},
	} {
		t.Run(backend.name, func(t *testing.T) {
			router := setupServer(t, backend.withRedis)

			// register → 201
			w := doJSON(router, http.MethodPost, "/register", gin.H{"email": "a@x.com", "password": "secret"}, "")
			require.Equal(t, http.StatusCreated, w.Code)
			env := decode(t, w)
			assert.True(t, env.Success)
			assert.Equal(t, "User has been registered successfully!", env.Message)
			assert.NotContains(t, w.Body.String(), "password", "registration payload must not echo credentials")

			// duplicate register → 400
			w = doJSON(router, http.MethodPost, "/register", gin.H{"email": "a@x.com", "password": "another"}, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Email is already taken. Please try again with another email address", decode(t, w).Message)

			// login → 200 with token
			w = doJSON(router, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "secret"}, "")
			require.Equal(t, http.StatusOK, w.Code)
			var loginData struct {
				User struct {
					Email string `json:"email"`
				} `json:"user"`
				Token string `json:"token"`
			}
			require.NoError(t, json.Unmarshal(decode(t, w).Data, &loginData))
			require.Len(t, loginData.Token, 64, "expected a 64-character hex token")
			token := loginData.Token

			// profile with bearer token → 200
			w = doJSON(router, http.MethodGet, "/profile", nil, token)
			require.Equal(t, http.StatusOK, w.Code)
			var profileData struct {
				Email string `json:"email"`
			}
			require.NoError(t, json.Unmarshal(decode(t, w).Data, &profileData))
			assert.Equal(t, "a@x.com", profileData.Email)

			// logout → 200
			w = doJSON(router, http.MethodPost, "/logout", nil, token)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "User logged out successfully!", decode(t, w).Message)

			// profile with the revoked token → 401
			w = doJSON(router, http.MethodGet, "/profile", nil, token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Invalid token credentials!", decode(t, w).Message)

			// logging out again with the revoked token → 401, not 500
			w = doJSON(router, http.MethodPost, "/logout", nil, token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthFlow_ConcurrentTokens(t *testing.T) {
	router := setupServer(t, true)

	w := doJSON(router, http.MethodPost, "/register", gin.H{"email": "a@x.com", "password": "secret"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Two logins issue two independent tokens
	var tokens [2]string
	for i := range tokens {
		w = doJSON(router, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "secret"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var data struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		tokens[i] = data.Token
	}
	require.NotEqual(t, tokens[0], tokens[1])

	// Revoking the first leaves the second valid
	w = doJSON(router, http.MethodPost, "/logout", nil, tokens[0])
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/profile", nil, tokens[0])
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/profile", nil, tokens[1])
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow_NoAccountEnumeration(t *testing.T) {
	router := setupServer(t, true)

	w := doJSON(router, http.MethodPost, "/register", gin.H{"email": "a@x.com", "password": "secret"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Unknown email and wrong password must be indistinguishable
	unknown := doJSON(router, http.MethodPost, "/login", gin.H{"email": "nobody@x.com", "password": "secret"}, "")
	wrongPw := doJSON(router, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "not-it"}, "")

	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, unknown.Code, wrongPw.Code)
	assert.Equal(t, decode(t, unknown).Message, decode(t, wrongPw).Message)
	assert.Equal(t, "Invalid login credentials!", decode(t, wrongPw).Message)
}

func TestAuthFlow_CaseInsensitiveEmail(t *testing.T) {
	router := setupServer(t, true)

	w := doJSON(router, http.MethodPost, "/register", gin.H{"email": "Mixed@X.com", "password": "secret"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Registering the same address in another case fails
	w = doJSON(router, http.MethodPost, "/register", gin.H{"email": "mixed@x.com", "password": "secret"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Login works regardless of case
	w = doJSON(router, http.MethodPost, "/login", gin.H{"email": "MIXED@x.COM", "password": "secret"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Healthz(t *testing.T) {
	router := setupServer(t, false)

	w := doJSON(router, http.MethodGet, "/healthz", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
