package server

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/golang/glog"
)

type Server interface {
	// Listen only starts the listener, not the server.
	// Useful when you require the server to be listening before continuing
	Listen() (net.Listener, error)

	// Serve starts the blocking call to Serve on an already prepared listener
	Serve(net.Listener)

	// Start starts the server in a goroutine
	Start()

	// Stop shuts the server down
	Stop()
}

// Exit on error
func check(err error, msg string, sentryTimeout time.Duration) {
	if err != nil && err != http.ErrServerClosed {
		sentry.CaptureException(err)
		sentry.Flush(sentryTimeout)
		glog.Fatalf("%s: %s", msg, err)
	}
}

// removeTrailingSlash strips a trailing slash so that /v3/clusters/ routes
// the same as /v3/clusters
func removeTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = strings.TrimSuffix(r.URL.Path, "/")
		next.ServeHTTP(w, r)
	})
}
