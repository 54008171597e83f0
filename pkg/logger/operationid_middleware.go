package logger

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type operationIDKey string

// OpIDKey is the context key under which the operation id of the current
// request is stored.
const OpIDKey operationIDKey = "opID"

// OpIDHeader is the response header carrying the operation id back to the caller.
const OpIDHeader = "X-Operation-ID"

// OperationIDMiddleware adds an operation id to the request context and echoes
// it back in the response headers so failed requests can be correlated with
// the service logs.
func OperationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithOpID(r.Context())
		w.Header().Set(OpIDHeader, GetOperationID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithOpID returns a context with an operation id set, generating a new one
// only if the context doesn't carry one already.
func WithOpID(ctx context.Context) context.Context {
	if GetOperationID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, OpIDKey, uuid.New().String())
}

// GetOperationID returns the operation id stored in the context, or an empty
// string when not set.
func GetOperationID(ctx context.Context) string {
	opID, ok := ctx.Value(OpIDKey).(string)
	if !ok {
		return ""
	}
	return opID
}
