package database

import (
	"github.com/ragunandhant/photo-overlay/internal/entity"
	"github.com/ragunandhant/photo-overlay/internal/pkg/storage"
)

func NewBatchRepository(store storage.BatchStore) BatchRepository {
	return &memoryBatchRepository{store: store}
}

func (r *memoryBatchRepository) Save(batch *entity.Batch) {
	r.store.Put(batch)
}

func (r *memoryBatchRepository) FindByID(id string) (*entity.Batch, error) {
	b, ok := r.store.Get(id)
	if !ok {
		return nil, entity.ErrBatchNotFound
	}
	return b, nil
}

func (r *memoryBatchRepository) FindImage(batchID, name string) ([]byte, error) {
	b, err := r.FindByID(batchID)
	if err != nil {
		return nil, err
	}
	data, ok := b.Images[name]
	if !ok {
		return nil, entity.ErrImageNotFound
	}
	return data, nil
}

func (r *memoryBatchRepository) Delete(id string) error {
	if _, ok := r.store.Get(id); !ok {
		return entity.ErrBatchNotFound
	}
	r.store.Delete(id)
	return nil
}
