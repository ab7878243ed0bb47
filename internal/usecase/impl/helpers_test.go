package impl

import (
	"io"
	"log/slog"
	"strconv"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strconvID(id int64) string {
	return strconv.FormatInt(id, 10)
}
