package client

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// restyLogger routes resty's internal messages through zerolog.
type restyLogger struct {
	log zerolog.Logger
}

var _ resty.Logger = restyLogger{}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msg(trimMessage(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msg(trimMessage(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msg(trimMessage(format, v...))
}

func trimMessage(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
