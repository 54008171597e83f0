package db

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/logger"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/shared"
)

// TransactionMiddleware creates a new HTTP middleware that begins a database transaction
// and stores it in the request context.
func TransactionMiddleware(f *ConnectionFactory) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Create a new Context with the transaction stored in it.
			ctx, err := f.NewContext(r.Context())
			if err != nil {
				ulog := logger.NewUHCLogger(r.Context())
				ulog.Errorf("Could not create transaction: %v", err)
				// use default error to avoid exposing internals to users
				shared.HandleError(r, w, errors.GeneralError(""))
				return
			}

			// Set the value of the request pointer to the value of a new copy of the request with the new context stored in it
			*r = *r.WithContext(ctx)

			if hub := sentry.GetHubFromContext(ctx); hub != nil {
				hub.ConfigureScope(func(scope *sentry.Scope) {
					txid := ctx.Value(constants.TransactionIDkey).(int64)
					scope.SetTag("db_transaction_id", fmt.Sprintf("%d", txid))
				})
			}

			// Returned from handlers and resolve transactions.
			defer func() {
				if err := Resolve(r.Context()); err != nil {
					logger.NewUHCLogger(r.Context()).Errorf("%v", err)
				}
			}()

			// Continue handling requests.
			next.ServeHTTP(w, r)
		})
	}
}
