package api

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/medassist/medassist-api/config"
)

const tokenTTL = 24 * time.Hour

// Guard holds the config needed to authenticate the operator
type Guard struct {
	Config config.Config
}

var authenticator auth.Authenticator
var cache store.Cache

// Middleware adds some basic header authentication around accessing the routes
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugf("User %s Authenticated\n", user.UserName())
		next.ServeHTTP(w, r)
	})
}

// CreateToken mints a bearer token for an operator that passed basic auth.
// The token is a signed JWT and is also cached so subsequent requests skip
// the signature check.
func (g Guard) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email, _, ok := r.BasicAuth()
	if !ok {
		http.Error(w, "basic auth failed", http.StatusUnauthorized)
		return
	}

	jwtSecret := []byte(g.Config.JWTSecret)
	if len(jwtSecret) == 0 {
		http.Error(w, "server misconfigured", http.StatusInternalServerError)
		return
	}

	claims := jwt.MapClaims{
		"sub":   email,
		"jti":   uuid.New().String(),
		"scope": "operator",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		http.Error(w, "token generation failed", http.StatusInternalServerError)
		return
	}

	authUser := auth.NewDefaultUser(email, "1", nil, nil)
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Append(tokenStrategy, signed, authUser, r)

	responseBody, err := json.Marshal(map[string]string{"token": signed})
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Write(responseBody)
}

// SetupGoGuardian sets up the go-guardian middleware
func (g Guard) SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), tokenTTL)
	basicStrategy := basic.New(g.ValidateOperator, cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, cache)

	authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// ValidateOperator validates the operator credentials configured in the
// environment. There is no user store; the service has a single operator
// principal.
func (g Guard) ValidateOperator(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	if g.Config.OperatorEmail == "" || g.Config.OperatorPasswordHash == "" {
		return nil, fmt.Errorf("operator credentials are not configured")
	}

	usernameHash := sha256.Sum256([]byte(email))
	expectedUsernameHash := sha256.Sum256([]byte(g.Config.OperatorEmail))
	usernameMatch := subtle.ConstantTimeCompare(usernameHash[:], expectedUsernameHash[:]) == 1

	err := bcrypt.CompareHashAndPassword([]byte(g.Config.OperatorPasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("failed to compare password")
	}

	if usernameMatch {
		return auth.NewDefaultUser(email, "1", nil, nil), nil
	}
	return nil, fmt.Errorf("invalid credentials")
}

// RevokeToken revokes a token
func RevokeToken(w http.ResponseWriter, r *http.Request) {
	reqToken := r.Header.Get("Authorization")
	splitToken := strings.Split(reqToken, "Bearer ")
	if len(splitToken) < 2 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "missing bearer token"}`))
		return
	}
	reqToken = splitToken[1]

	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Revoke(tokenStrategy, reqToken, r)
	body := fmt.Sprintf(`{"revoked token": "%s"}`, reqToken)
	w.Write([]byte(body))
}
