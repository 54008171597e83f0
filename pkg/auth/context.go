package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Context key type defined to avoid collisions in other pkgs using context
// See https://golang.org/pkg/context/#WithValue
type contextKey string

const (
	contextToken contextKey = "token"

	usernameClaim          = "username"
	alternateUsernameClaim = "preferred_username"
	accountIdClaim         = "account_id"
	orgIdClaim             = "org_id"
)

// FleetClaims wraps the token claims of an authenticated request.
type FleetClaims jwt.MapClaims

func (c *FleetClaims) GetUsername() (string, error) {
	if (*c)[usernameClaim] != nil {
		return (*c)[usernameClaim].(string), nil
	}
	if (*c)[alternateUsernameClaim] != nil {
		return (*c)[alternateUsernameClaim].(string), nil
	}
	return "", fmt.Errorf("can't find neither '%s' or '%s' attribute in claims", usernameClaim, alternateUsernameClaim)
}

func (c *FleetClaims) GetOrgId() (string, error) {
	if (*c)[orgIdClaim] != nil {
		return (*c)[orgIdClaim].(string), nil
	}
	return "", fmt.Errorf("can't find '%s' attribute in claims", orgIdClaim)
}

func (c *FleetClaims) GetAccountId() (string, error) {
	if (*c)[accountIdClaim] != nil {
		return (*c)[accountIdClaim].(string), nil
	}
	return "", fmt.Errorf("can't find '%s' attribute in claims", accountIdClaim)
}

// SetTokenInContext stores the verified JWT in the request context.
func SetTokenInContext(ctx context.Context, token *jwt.Token) context.Context {
	return context.WithValue(ctx, contextToken, token)
}

// GetTokenFromContext retrieves the verified JWT from the request context.
func GetTokenFromContext(ctx context.Context) (*jwt.Token, error) {
	token, ok := ctx.Value(contextToken).(*jwt.Token)
	if !ok {
		return nil, fmt.Errorf("failed to get jwt token from context")
	}
	return token, nil
}

func GetClaimsFromContext(ctx context.Context) (jwt.MapClaims, error) {
	var claims jwt.MapClaims
	token, err := GetTokenFromContext(ctx)
	if err != nil {
		return claims, fmt.Errorf("failed to get jwt token from context: %v", err)
	}

	if token != nil && token.Claims != nil {
		claims = token.Claims.(jwt.MapClaims)
	}
	return claims, nil
}

// GetUsernameFromContext returns the username of the authenticated caller, or
// the empty string when the request carries no verified token.
func GetUsernameFromContext(ctx context.Context) string {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return ""
	}
	fleetClaims := FleetClaims(claims)
	username, _ := fleetClaims.GetUsername()
	return username
}

// GetOrgIdFromContext returns the organisation id of the authenticated
// caller, or the empty string when the request carries no verified token.
func GetOrgIdFromContext(ctx context.Context) string {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return ""
	}
	fleetClaims := FleetClaims(claims)
	orgId, _ := fleetClaims.GetOrgId()
	return orgId
}

// GetAccountIdFromContext returns the account id of the authenticated caller,
// or the empty string when the request carries no verified token.
func GetAccountIdFromContext(ctx context.Context) string {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return ""
	}
	fleetClaims := FleetClaims(claims)
	accountId, _ := fleetClaims.GetAccountId()
	return accountId
}
