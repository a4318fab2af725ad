package eventmgr

import (
	"fmt"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger to Logger. Fields added with WithField end up in the
// zerolog context.
func NewZerologLogger(log zerolog.Logger) Logger {
	return zerologLogger{log: log}
}

func (l zerologLogger) WithField(key string, value any) Logger {
	return zerologLogger{log: l.log.With().Interface(key, value).Logger()}
}

func (l zerologLogger) Debug(args ...any) { l.log.Debug().Msg(fmt.Sprint(args...)) }

func (l zerologLogger) Debugf(format string, args ...any) { l.log.Debug().Msgf(format, args...) }

func (l zerologLogger) Debugln(args ...any) { l.log.Debug().Msg(sprintln(args...)) }

func (l zerologLogger) Info(args ...any) { l.log.Info().Msg(fmt.Sprint(args...)) }

func (l zerologLogger) Infof(format string, args ...any) { l.log.Info().Msgf(format, args...) }

func (l zerologLogger) Infoln(args ...any) { l.log.Info().Msg(sprintln(args...)) }

func (l zerologLogger) Warn(args ...any) { l.log.Warn().Msg(fmt.Sprint(args...)) }

func (l zerologLogger) Warnf(format string, args ...any) { l.log.Warn().Msgf(format, args...) }

func (l zerologLogger) Warnln(args ...any) { l.log.Warn().Msg(sprintln(args...)) }

func (l zerologLogger) Error(args ...any) { l.log.Error().Msg(fmt.Sprint(args...)) }

func (l zerologLogger) Errorf(format string, args ...any) { l.log.Error().Msgf(format, args...) }

func (l zerologLogger) Errorln(args ...any) { l.log.Error().Msg(sprintln(args...)) }

// sprintln drops the trailing newline zerolog would otherwise keep in the message field.
func sprintln(args ...any) string {
	s := fmt.Sprintln(args...)
	return s[:len(s)-1]
}
