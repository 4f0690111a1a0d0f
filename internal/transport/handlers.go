package transport

import (
	"github.com/ragunandhant/photo-overlay/internal/service"
)

type BatchHandler struct {
	service  service.BatchService
	maxFiles int
}

func NewBatchHandler(service service.BatchService, maxFiles int) *BatchHandler {
	return &BatchHandler{service: service, maxFiles: maxFiles}
}
