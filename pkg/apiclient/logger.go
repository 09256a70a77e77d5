package apiclient

import (
	"context"
	"strings"

	"business-admin/pkg/log"
)

// restyLogger routes resty's own messages through the service logger.
type restyLogger struct {
	l log.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Errorf(context.Background(), "apiclient.resty: "+strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warnf(context.Background(), "apiclient.resty: "+strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debugf(context.Background(), "apiclient.resty: "+strings.TrimSpace(format), v...)
}
