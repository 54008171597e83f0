package auth

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/golang-jwt/jwt/v4"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/logger"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/shared"
)

type JWTMiddleware interface {
	AuthenticateAccountJWT(next http.Handler) http.Handler
}

type AuthMiddleware struct {
	CertURL  string
	CertFile string
	CertCA   string
	keyMap   map[string]*rsa.PublicKey
}

var _ JWTMiddleware = &AuthMiddleware{}

// NewAuthMiddleware builds the JWT verification middleware. Signing keys are
// read from the local JWKS file when present, falling back to downloading them
// from certURL.
func NewAuthMiddleware(certURL string, certFile string, certCA string) (*AuthMiddleware, error) {
	if certURL == "" && certFile == "" {
		return nil, fmt.Errorf("JWKS certificate URL or file must be provided")
	}

	middleware := AuthMiddleware{
		CertURL:  certURL,
		CertFile: certFile,
		CertCA:   certCA,
	}

	err := middleware.populateKeyMap()
	return &middleware, err
}

// AuthenticateAccountJWT validates the bearer token of the request and stores
// the verified token in the request context.
func (a *AuthMiddleware) AuthenticateAccountJWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token, err := a.parseRequestToken(r)
		if err != nil {
			shared.HandleError(r, w, errors.Unauthorized("Unable to verify JWT token: %s", err))
			return
		}

		ctx = SetTokenInContext(ctx, token)

		claims := FleetClaims(token.Claims.(jwt.MapClaims))
		username, err := claims.GetUsername()
		if err != nil {
			shared.HandleError(r, w, errors.Unauthorized("Unable to get payload details from JWT token: %s", err))
			return
		}

		// Append the username to the request context for logging
		ctx = context.WithValue(ctx, logger.UsernameKey, username)
		*r = *r.WithContext(ctx)

		// Add username to sentry context
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetUser(sentry.User{ID: username})
			})
		}

		next.ServeHTTP(w, r)
	})
}

func (a *AuthMiddleware) parseRequestToken(r *http.Request) (*jwt.Token, error) {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return nil, fmt.Errorf("request has no Authorization header")
	}
	rawToken := strings.TrimPrefix(authorization, "Bearer ")
	if rawToken == authorization {
		return nil, fmt.Errorf("request Authorization header is not a bearer token")
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	token, err := parser.Parse(rawToken, a.getValidationToken)
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (a *AuthMiddleware) populateKeyMap() error {
	if a.CertFile != "" {
		keyMap, err := readPublicKeysFile(a.CertFile)
		if err == nil {
			a.keyMap = keyMap
			return nil
		}
	}

	// Load the trusted CA certificates:
	trustedCAs, err := x509.SystemCertPool()
	if err != nil {
		return fmt.Errorf("can't load system trusted CAs: %v", err)
	}

	if a.CertCA != "" {
		trustedCAs.AppendCertsFromPEM([]byte(a.CertCA))
	}

	a.keyMap, err = downloadPublicKeys(a.CertURL, trustedCAs)
	return err
}

func (a *AuthMiddleware) getValidationToken(token *jwt.Token) (interface{}, error) {
	// Try to get the token kid.
	kid, ok := token.Header["kid"]
	if !ok {
		return nil, fmt.Errorf("no kid found in jwt token")
	}

	// Try to get the matching cert from the key map.
	key, ok := a.keyMap[kid.(string)]
	if !ok {
		return nil, fmt.Errorf("no matching key in auth keymap for key id [%v]", kid)
	}

	return key, nil
}
