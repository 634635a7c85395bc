package bridge

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Span attribute keys set by TracingMiddleware.
const (
	SpanPrefix    = "robotom."
	AttrHostType  = "robotom.host_type"
	AttrMember    = "robotom.member"
	AttrOp        = "robotom.op"
	AttrInstance  = "robotom.instance_type"
	AttrArgCount  = "robotom.arg_count"
	AttrErrorKind = "robotom.error_type"
)

const unknownMember = "unknown"

// Middleware is a function that wraps a Handler to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
type Middleware func(next Handler) Handler

// PanicRecoveryMiddleware returns a middleware that converts a panic raised
// while serving a member into a HostError instead of crashing the caller.
func PanicRecoveryMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inst ports.Instance, args []any) (resp any, err error) {
			defer func() {
				if r := recover(); r != nil {
					herr := &errors.HostError{Panic: true, Err: panicError(r)}
					if cc, ok := CallContextFrom(ctx); ok {
						herr.Type = cc.HostType()
						herr.Member = cc.Member()
					}
					resp, err = nil, herr
				}
			}()
			return next(ctx, inst, args)
		}
	}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// LoggingMiddleware returns a middleware that logs member accesses at debug
// level and failures at warn level. A nil logger uses slog.Default().
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, inst ports.Instance, args []any) (any, error) {
			member, op := unknownMember, Op(unknownMember)
			var hostType string
			if cc, ok := CallContextFrom(ctx); ok {
				member, op, hostType = cc.Member(), cc.Op(), string(cc.HostType())
			}
			logger.DebugContext(ctx, "host member access",
				slog.String("type", hostType),
				slog.String("member", member),
				slog.String("op", string(op)),
			)
			resp, err := next(ctx, inst, args)
			if err != nil {
				logger.WarnContext(ctx, "host member access failed",
					slog.String("type", hostType),
					slog.String("member", member),
					slog.String("op", string(op)),
					slog.String("error", err.Error()),
				)
			}
			return resp, err
		}
	}
}

// TracingMiddleware returns a middleware that creates one span per member
// access. If tracer is nil, the middleware is a pass-through.
func TracingMiddleware(tracer trace.Tracer) Middleware {
	if tracer == nil {
		return func(next Handler) Handler {
			return next
		}
	}

	return func(next Handler) Handler {
		return func(ctx context.Context, inst ports.Instance, args []any) (any, error) {
			cc, ok := CallContextFrom(ctx)
			if !ok {
				return next(ctx, inst, args)
			}

			spanName := fmt.Sprintf("%s%s.%s", SpanPrefix, cc.HostType(), cc.Member())
			spanCtx, span := tracer.Start(ctx, spanName,
				trace.WithSpanKind(trace.SpanKindClient),
			)
			defer span.End()

			span.SetAttributes(
				attribute.String(AttrHostType, string(cc.HostType())),
				attribute.String(AttrMember, cc.Member()),
				attribute.String(AttrOp, string(cc.Op())),
				attribute.Int(AttrArgCount, len(args)),
			)
			if inst != nil {
				span.SetAttributes(attribute.String(AttrInstance, string(inst.HostType())))
			}

			// Keep the member information visible to inner middleware.
			resp, err := next(NewCallContext(spanCtx, cc.HostType(), cc.Member(), cc.Op()), inst, args)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				span.SetAttributes(attribute.String(AttrErrorKind, errors.ToErrorDetail(err).Type))
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return resp, err
		}
	}
}
