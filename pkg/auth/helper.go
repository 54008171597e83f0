package auth

import (
	"crypto/rsa"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/shared"
)

const (
	defaultTokenIssuer = "https://auth.hpc-fleet.example.com/realms/hpc"
	tokenClaimType     = "Bearer"
	TokenExpMin        = 30
	JwkKID             = "hpctestkey"
)

type AuthHelper struct {
	JWTPrivateKey *rsa.PrivateKey
	JWTCA         *rsa.PublicKey
	tokenIssuer   string
}

// NewAuthHelper creates an auth helper for tests that need signed JWTs.
func NewAuthHelper(jwtKeyFilePath, jwtCAFilePath, tokenIssuer string) (*AuthHelper, error) {
	jwtKey, jwtCA, err := ParseJWTKeys(jwtKeyFilePath, jwtCAFilePath)
	if err != nil {
		return nil, err
	}

	iss := tokenIssuer
	if iss == "" {
		iss = defaultTokenIssuer
	}

	return &AuthHelper{
		JWTPrivateKey: jwtKey,
		JWTCA:         jwtCA,
		tokenIssuer:   iss,
	}, nil
}

// CreateSignedJWT creates a signed token for the given username, merging in any
// extra claims. A nil claim value removes the claim.
func (authHelper *AuthHelper) CreateSignedJWT(username string, jwtClaims jwt.MapClaims) (string, error) {
	token, err := authHelper.CreateJWTWithClaims(username, jwtClaims)
	if err != nil {
		return "", err
	}

	return token.SignedString(authHelper.JWTPrivateKey)
}

// CreateJWTWithClaims creates a JSON web token with the claims specified.
func (authHelper *AuthHelper) CreateJWTWithClaims(username string, jwtClaims jwt.MapClaims) (*jwt.Token, error) {
	claims := jwt.MapClaims{
		"typ":         tokenClaimType,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(time.Minute * time.Duration(TokenExpMin)).Unix(),
		"iss":         authHelper.tokenIssuer,
		usernameClaim: username,
	}

	// Override defaults with the specified claims. Remove any key with nil value
	for k, v := range jwtClaims {
		if v == nil {
			delete(claims, k)
		} else {
			claims[k] = v
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	// Set the token header kid to the same value we expect when validating the token
	// The kid is an arbitrary identifier for the key
	// See https://tools.ietf.org/html/rfc7517#section-4.5
	token.Header["kid"] = JwkKID
	token.Header["alg"] = jwt.SigningMethodRS256.Alg()

	return token, nil
}

func (authHelper *AuthHelper) GetJWTFromSignedToken(signedToken string) (*jwt.Token, error) {
	return jwt.Parse(signedToken, func(token *jwt.Token) (interface{}, error) {
		return authHelper.JWTCA, nil
	})
}

// ParseJWTKeys parses JWT private and public keys from the given paths.
func ParseJWTKeys(jwtKeyFilePath, jwtCAFilePath string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	projectRootDir := shared.GetProjectRootDir()
	privateBytes, err := os.ReadFile(filepath.Join(projectRootDir, jwtKeyFilePath))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read JWT key file %s: %s", jwtKeyFilePath, err.Error())
	}
	pubBytes, err := os.ReadFile(filepath.Join(projectRootDir, jwtCAFilePath))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read JWT ca file %s: %s", jwtCAFilePath, err.Error())
	}

	// Parse keys
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEMWithPassword(privateBytes, "passwd") //nolint
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse JWT private key: %s", err.Error())
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse JWT ca: %s", err.Error())
	}

	return privateKey, pubKey, nil
}
