package repositories

import (
	"strings"

	"github.com/sbilibin2017/gw-todo-service/internal/logger"
)

// logQuery logs a statement on a single line together with its arguments and outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
