package session

import (
	"context"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/app/models"
	"mortuary-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewSessionService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return sessionServiceInstance
}

// ParseSessionData validates the bearer token issued by the host shell and
// returns the session scope. Sessions without a location fall back to the
// configured mortuary ward.
func (s *sessionService) ParseSessionData(ctx context.Context, token string) (*models.Session, error) {
	sessionID, locationUUID, err := utils.ParseSessionJWT(token, s.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	if locationUUID == "" {
		locationUUID = s.InternalConfig.Mortuary.LocationUUID
	}
	return &models.Session{
		SessionID:    sessionID,
		LocationUUID: locationUUID,
	}, nil
}
