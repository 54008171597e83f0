package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/onsi/gomega"
)

func Test_GetClaimsFromContext(t *testing.T) {
	token := &jwt.Token{
		Claims: jwt.MapClaims{
			"username":   "test-user",
			"account_id": "test-account",
		},
	}

	tests := []struct {
		name         string
		ctx          context.Context
		wantErr      bool
		wantUsername string
	}{
		{
			name:    "should fail when no token is stored in the context",
			ctx:     context.Background(),
			wantErr: true,
		},
		{
			name:         "should return the claims of the token stored in the context",
			ctx:          SetTokenInContext(context.Background(), token),
			wantErr:      false,
			wantUsername: "test-user",
		},
	}

	for _, testcase := range tests {
		tt := testcase

		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			claims, err := GetClaimsFromContext(tt.ctx)
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if !tt.wantErr {
				fleetClaims := FleetClaims(claims)
				username, err := fleetClaims.GetUsername()
				g.Expect(err).ToNot(gomega.HaveOccurred())
				g.Expect(username).To(gomega.Equal(tt.wantUsername))
			}
		})
	}
}

func Test_GetUsernameFromContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{
			name: "should return an empty username when no token is stored in the context",
			ctx:  context.Background(),
			want: "",
		},
		{
			name: "should return the username claim",
			ctx: SetTokenInContext(context.Background(), &jwt.Token{
				Claims: jwt.MapClaims{"username": "test-user"},
			}),
			want: "test-user",
		},
		{
			name: "should fall back to the preferred_username claim",
			ctx: SetTokenInContext(context.Background(), &jwt.Token{
				Claims: jwt.MapClaims{"preferred_username": "alternate-user"},
			}),
			want: "alternate-user",
		},
	}

	for _, testcase := range tests {
		tt := testcase

		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(GetUsernameFromContext(tt.ctx)).To(gomega.Equal(tt.want))
		})
	}
}
