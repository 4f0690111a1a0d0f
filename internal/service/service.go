package service

import (
	"github.com/ragunandhant/photo-overlay/internal/database"
	"github.com/ragunandhant/photo-overlay/internal/entity"
	"github.com/ragunandhant/photo-overlay/internal/pkg/kafka"
)

type BatchService interface {
	ProcessBatch(uploads []entity.Upload, text string, style entity.OverlayStyle) (*entity.Batch, error)
	GetBatch(id string) (*entity.Batch, error)
	GetArchive(id string) ([]byte, error)
	GetImage(id, name string) ([]byte, error)
	DeleteBatch(id string) error
}

type batchService struct {
	repo     database.BatchRepository
	producer kafka.Producer
}

func NewBatchService(repo database.BatchRepository, producer kafka.Producer) BatchService {
	return &batchService{
		repo:     repo,
		producer: producer,
	}
}
