package logger

import (
	"context"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/golang/glog"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
)

type LoggerKeys string

const (
	ActionKey       LoggerKeys = "Action"
	ActionResultKey LoggerKeys = "EventResult"
	RemoteAddrKey   LoggerKeys = "RemoteAddr"
	UsernameKey     LoggerKeys = "Username"
	SessionKey      LoggerKeys = "SessionState"

	ActionFailed  LoggerKeys = "failed"
	ActionSuccess LoggerKeys = "success"

	logEventSeparator = "$$"
)

type LogEvent struct {
	Type        string
	Description string
}

func NewLogEventFromString(eventTypeAndDescription string) (logEvent LogEvent) {
	typeAndDesc := strings.Split(eventTypeAndDescription, logEventSeparator)
	sliceLen := len(typeAndDesc)

	if sliceLen > 0 {
		logEvent.Type = typeAndDesc[0]
	}

	if sliceLen > 1 {
		logEvent.Description = typeAndDesc[1]
	}

	return logEvent
}

func NewLogEvent(eventType string, description ...string) LogEvent {
	res := LogEvent{
		Type: eventType,
	}

	if len(description) != 0 {
		res.Description = description[0]
	}

	return res
}

func (l LogEvent) ToString() string {
	if l.Description != "" {
		return fmt.Sprintf("%s%s%s", l.Type, logEventSeparator, l.Description)
	}

	return l.Type
}

type UHCLogger interface {
	V(level int32) UHCLogger
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Error(err error)
	Fatalf(format string, args ...interface{})
}

// Logger is a logger with a background context
var Logger = NewUHCLogger(context.Background())
var _ UHCLogger = &logger{}

type logger struct {
	context   context.Context
	level     int32
	accountID string
	username  string
	session   string
	sentryHub *sentry.Hub
}

// NewUHCLogger creates a new logger instance with a default verbosity of 1
func NewUHCLogger(ctx context.Context) UHCLogger {
	logger := &logger{
		context:   ctx,
		level:     1,
		username:  getStringFromContext(ctx, UsernameKey),
		sentryHub: sentry.GetHubFromContext(ctx),
		session:   getStringFromContext(ctx, SessionKey),
	}
	return logger
}

func (l *logger) prepareLogPrefix(format string, args ...interface{}) string {
	orig := fmt.Sprintf(format, args...)
	var fields []string

	if l.username != "" {
		fields = append(fields, fmt.Sprintf("user='%s'", l.username))
	}

	if event, ok := l.context.Value(ActionKey).(string); ok {
		fields = append(fields, fmt.Sprintf("action='%s'", event))
		if eventStatus, ok := l.context.Value(ActionResultKey).(string); ok {
			fields = append(fields, fmt.Sprintf("result='%s'", eventStatus))
		}
	}

	if remoteAddr, ok := l.context.Value(RemoteAddrKey).(string); ok {
		fields = append(fields, fmt.Sprintf("src_ip='%s'", remoteAddr))
	}

	if l.session != "" {
		fields = append(fields, fmt.Sprintf("session='%s'", l.session))
	}

	if txid, ok := l.context.Value(constants.TransactionIDkey).(int64); ok {
		fields = append(fields, fmt.Sprintf("tx_id='%d'", txid))
	}

	if l.accountID != "" {
		fields = append(fields, fmt.Sprintf("accountID='%s'", l.accountID))
	}

	if opid, ok := l.context.Value(OpIDKey).(string); ok {
		fields = append(fields, fmt.Sprintf("opid='%s'", opid))
	}

	prefix := strings.Join(fields, " ")
	if orig == "" {
		return prefix
	}
	if prefix == "" {
		return orig
	}
	return prefix + " " + orig
}

func (l *logger) V(level int32) UHCLogger {
	return &logger{
		context:   l.context,
		accountID: l.accountID,
		username:  l.username,
		session:   l.session,
		level:     level,
	}
}

func getStringFromContext(ctx context.Context, key LoggerKeys) string {
	value, ok := ctx.Value(key).(string)
	if !ok {
		return ""
	}
	return value
}

func (l *logger) Infof(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.V(glog.Level(l.level)).Infof(prefixed)
}

func (l *logger) Warningf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.Warningln(prefixed)
	l.captureSentryEvent(sentry.LevelWarning, format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.Errorln(prefixed)
	l.captureSentryEvent(sentry.LevelError, format, args...)
}

func (l *logger) Error(err error) {
	glog.Error(err)
	if l.sentryHub == nil {
		sentry.CaptureException(err)
		return
	}
	l.sentryHub.CaptureException(err)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.Fatalln(prefixed)
	l.captureSentryEvent(sentry.LevelFatal, format, args...)
}

func (l *logger) captureSentryEvent(level sentry.Level, format string, args ...interface{}) {
	event := sentry.NewEvent()
	event.Level = level
	event.Message = fmt.Sprintf(format, args...)
	if l.sentryHub == nil {
		glog.Warning("Sentry hub not present in logger")
		sentry.CaptureEvent(event)
		return
	}
	l.sentryHub.CaptureEvent(event)
}
