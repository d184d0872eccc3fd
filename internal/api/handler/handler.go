package handler

import "defense-hub/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Defense *DefenseHandler
	Export  *ExportHandler
	RefData *RefDataHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Defense: NewDefenseHandler(svc.Defense),
		Export:  NewExportHandler(svc.Export),
		RefData: NewRefDataHandler(svc.RefData),
	}
}

