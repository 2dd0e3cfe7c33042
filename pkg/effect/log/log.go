package log

import (
	"go.uber.org/zap"

	"github.com/ethanthoma/effect/pkg/effect"
)

// Level defines the severity level for pipeline log entries.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func write(lg *zap.Logger, level Level, msg string, fields ...zap.Field) {
	switch level {
	case LevelDebug:
		lg.Debug(msg, fields...)
	case LevelWarn:
		lg.Warn(msg, fields...)
	case LevelError:
		lg.Error(msg, fields...)
	default:
		lg.Info(msg, fields...)
	}
}

func identityFields(e effect.Described) []zap.Field {
	return []zap.Field{
		zap.String("effect_id", e.Id().String()),
		zap.Time("effect_created_at", e.CreatedAt()),
	}
}

// Success observes the success channel of e, emitting one info entry per
// settled value. Settlement is unchanged; entries carry the identity of
// the observed effect.
func Success[S any, E any](e effect.Effect[S, E], lg *zap.Logger, msg string) effect.Effect[S, E] {
	return SuccessAt(e, lg, LevelInfo, msg)
}

// SuccessAt is Success at a chosen level.
func SuccessAt[S any, E any](e effect.Effect[S, E], lg *zap.Logger, level Level, msg string) effect.Effect[S, E] {
	return effect.Tee(e, func(v S) {
		fields := append(identityFields(e),
			zap.String("channel", "success"),
			zap.Any("value", v))
		write(lg, level, msg, fields...)
	})
}

// Early observes the early-return channel of e, emitting one warn entry
// per early value.
func Early[S any, E any](e effect.Effect[S, E], lg *zap.Logger, msg string) effect.Effect[S, E] {
	return EarlyAt(e, lg, LevelWarn, msg)
}

// EarlyAt is Early at a chosen level.
func EarlyAt[S any, E any](e effect.Effect[S, E], lg *zap.Logger, level Level, msg string) effect.Effect[S, E] {
	return effect.TeeEarly(e, func(early E) {
		fields := append(identityFields(e),
			zap.String("channel", "early_return"),
			zap.Any("early", early))
		write(lg, level, msg, fields...)
	})
}

// Outcome observes both channels of e: successes at info, early returns
// at warn.
func Outcome[S any, E any](e effect.Effect[S, E], lg *zap.Logger, msg string) effect.Effect[S, E] {
	return Early(Success(e, lg, msg), lg, msg)
}

// Perform realizes e with lifecycle logging: a debug entry when the run
// starts and one per settled outcome, before the handler sees it.
func Perform[S any, E any](e effect.Effect[S, E], lg *zap.Logger, handler func(r effect.Result[S, E])) {
	lg.Debug("performing effect",
		append(identityFields(e), zap.Int("fragments", e.Size()))...)

	effect.Perform(e, func(r effect.Result[S, E]) {
		if r.IsOk() {
			lg.Debug("effect settled",
				append(identityFields(e),
					zap.String("channel", "success"),
					zap.Any("value", r.Value()))...)
		} else {
			lg.Debug("effect settled",
				append(identityFields(e),
					zap.String("channel", "early_return"),
					zap.Any("early", r.Early()))...)
		}
		handler(r)
	})
}
