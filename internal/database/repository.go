package database

import (
	"github.com/ragunandhant/photo-overlay/internal/entity"
	"github.com/ragunandhant/photo-overlay/internal/pkg/storage"
)

type BatchRepository interface {
	Save(batch *entity.Batch)
	FindByID(id string) (*entity.Batch, error)
	FindImage(batchID, name string) ([]byte, error)
	Delete(id string) error
}

type memoryBatchRepository struct {
	store storage.BatchStore
}
