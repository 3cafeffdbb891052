package domain

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// ErrLogProxy is a "tee" that sends to Sentry and to the local logger.
// Sentry is skipped if `GoEnv` is "test" or no DSN is configured.
type ErrLogProxy struct {
	LocalLog *logrus.Logger
}

func (e *ErrLogProxy) Init(l *logrus.Logger) {
	e.LocalLog = l
}

func (e *ErrLogProxy) Printf(format string, a ...interface{}) {
	e.LocalLog.Errorf(format, a...)

	if Env.GoEnv == "test" || Env.SentryDSN == "" {
		return
	}
	sentry.CaptureMessage(fmt.Sprintf(format, a...))
}
