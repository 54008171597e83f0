package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
)

func setContextToken(next http.Handler, token *jwt.Token) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		ctx = SetTokenInContext(ctx, token)
		request = request.WithContext(ctx)
		next.ServeHTTP(writer, request)
	})
}
