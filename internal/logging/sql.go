package logging

import (
	"strings"

	"go.uber.org/zap"
)

// LogSQLQuery emits the query at debug level with whitespace collapsed,
// keeping multi-line statements greppable in the log stream.
func LogSQLQuery(logger *zap.Logger, sql string) {
	logger.Debug(strings.Join(strings.Fields(sql), " "))
}
