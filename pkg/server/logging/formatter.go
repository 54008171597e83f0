package logging

import (
	"encoding/json"
	"net/http"
)

// LoggingThreshold is the glog verbosity at which request/response logs are emitted.
const LoggingThreshold = 1

type ResponseInfo struct {
	Header  http.Header
	Body    []byte
	Status  int
	Elapsed string
}

type LogFormatter interface {
	FormatRequestLog(r *http.Request) (string, error)
	FormatResponseLog(info *ResponseInfo) (string, error)
}

// redactedHeaders are never written to logs.
var redactedHeaders = []string{"Authorization", "Cookie"}

func NewJSONLogFormatter() *jsonLogFormatter {
	return &jsonLogFormatter{}
}

type jsonLogFormatter struct{}

type requestLogEntry struct {
	Method     string      `json:"method"`
	RequestURI string      `json:"request_uri"`
	RemoteAddr string      `json:"remote_addr"`
	Header     http.Header `json:"header,omitempty"`
}

type responseLogEntry struct {
	Status  int         `json:"status"`
	Elapsed string      `json:"elapsed"`
	Header  http.Header `json:"header,omitempty"`
	Body    string      `json:"body,omitempty"`
}

func (f *jsonLogFormatter) FormatRequestLog(r *http.Request) (string, error) {
	entry := &requestLogEntry{
		Method:     r.Method,
		RequestURI: r.RequestURI,
		RemoteAddr: r.RemoteAddr,
		Header:     sanitizeHeader(r.Header),
	}
	log, err := json.Marshal(entry)
	if err != nil {
		return "", err
	}
	return string(log), nil
}

func (f *jsonLogFormatter) FormatResponseLog(info *ResponseInfo) (string, error) {
	entry := &responseLogEntry{
		Status:  info.Status,
		Elapsed: info.Elapsed,
		Header:  sanitizeHeader(info.Header),
	}
	// only log response bodies of error responses
	if info.Status >= http.StatusBadRequest {
		entry.Body = string(info.Body)
	}
	log, err := json.Marshal(entry)
	if err != nil {
		return "", err
	}
	return string(log), nil
}

func sanitizeHeader(header http.Header) http.Header {
	sanitized := http.Header{}
	for name, values := range header {
		sanitized[name] = values
	}
	for _, name := range redactedHeaders {
		if sanitized.Get(name) != "" {
			sanitized.Set(name, "<REDACTED>")
		}
	}
	return sanitized
}
