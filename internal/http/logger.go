package http

import (
	"errors"
	"fmt"
	"net/url"
)

// leveledLogger adapts Logger to retryablehttp.LeveledLogger. Debug and info
// output is only forwarded in debug mode.
type leveledLogger struct {
	logger Logger
	debug  bool
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	if l.logger == nil {
		return
	}

	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.logger == nil || !l.debug {
		return
	}

	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.logger == nil || !l.debug {
		return
	}

	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	if l.logger == nil {
		return
	}

	l.logger.Warn(msg, toFields(keysAndValues))
}

// toFields turns alternating key/value pairs into a field map. The url
// field is dropped and URLs inside errors are redacted since they carry the
// api_key.
func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if key == "url" {
			continue
		}

		value := keysAndValues[i+1]
		if err, ok := value.(error); ok {
			value = redactError(err)
		}

		fields[key] = value
	}

	return fields
}

func redactError(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return (&url.Error{Op: urlErr.Op, URL: redactRawURL(urlErr.URL), Err: urlErr.Err}).Error()
	}

	return err.Error()
}
