package logx

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Opts controls logger initialisation.
type Opts struct {
	Production bool
}

// Init configures the global zerolog logger. Development gets a console
// writer with caller info at debug level; production keeps JSON at info level.
func Init(opts Opts) {
	if opts.Production {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger()
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}

func Debug() *zerolog.Event { return log.Debug() }

func Info() *zerolog.Event { return log.Info() }

func Warn() *zerolog.Event { return log.Warn() }

func Error() *zerolog.Event { return log.Error() }

func Fatal() *zerolog.Event { return log.Fatal() }
