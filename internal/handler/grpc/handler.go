// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the operational gRPC surface of the API server: the
// standard health service and server reflection.
package grpc

import (
	"context"
	"time"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// TweetAPIServiceName is the health-check name reported for the tweet API.
const TweetAPIServiceName = "tweet.v1.TweetAPI"

const traceIDMetadataKey = "x-trace-id"

var traceIDs = utils.NewUUIDGenerator()

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		logger: logger,
	}
}

// Register attaches the health and reflection services to server and marks
// the tweet API as serving.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(TweetAPIServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown reports NOT_SERVING to every health watcher.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging is a unary interceptor that attaches a trace id and a child
// logger to the call context and logs the outcome of every call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := traceIDs.Generate()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

	start := time.Now()
	resp, err := next(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
