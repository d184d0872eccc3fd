package service

import (
	"go.uber.org/zap"

	"defense-hub/config"
	"defense-hub/internal/repository"
	"defense-hub/pkg/jwt"
	"defense-hub/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth    AuthService
	Defense DefenseService
	Export  ExportService
	RefData RefDataService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	resolver := NewPersonResolver(repo)
	defense := NewDefenseService(repo, resolver, logger)

	return &Service{
		Auth:    NewAuthService(cfg, repo, resolver, jwtMgr, rdb, logger),
		Defense: defense,
		Export:  NewExportService(defense, logger),
		RefData: NewRefDataService(repo, logger),
	}
}

