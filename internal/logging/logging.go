// Package logging - единая настройка структурированного логирования для утилит
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Levels - допустимые значения флага -log-level
var Levels = []string{"debug", "info", "warn", "error"}

// LevelsString возвращает Levels одной строкой для справки по флагам
func LevelsString() string {
	return strings.Join(Levels, ", ")
}

// Init создаёт logfmt логгер в stderr с полями ts и caller
// Записи ниже уровня lvl отбрасываются, stdout остаётся для вывода утилит
func Init(lvl string) (log.Logger, error) {
	return New(os.Stderr, lvl)
}

// New - как Init, но с явным writer
func New(w io.Writer, lvl string) (log.Logger, error) {
	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}

	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = level.NewFilter(l, opt)
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "info", "":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, errors.Errorf("unknown log level %q, must be one of: %s", lvl, LevelsString())
	}
}
