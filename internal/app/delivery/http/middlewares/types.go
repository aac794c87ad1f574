package middlewares

import (
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/contracts"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	WorkflowLimiter *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		SessionService:  sessionService,
		InternalConfig:  internalConfig,
		WorkflowLimiter: NewRateLimiter(10, time.Second, 1*time.Minute),
	}
}
