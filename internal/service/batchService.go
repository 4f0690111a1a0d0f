package service

import (
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ragunandhant/photo-overlay/internal/entity"
	"github.com/ragunandhant/photo-overlay/internal/pkg/archive"
	"github.com/ragunandhant/photo-overlay/internal/pkg/decode"
	"github.com/ragunandhant/photo-overlay/internal/pkg/overlay"
)

const eventTopic = "batch-processed"

// ProcessBatch renders the overlay onto every upload and packs the results
// into a zip. A failure for one upload is recorded as a per-item result and
// does not stop the remaining uploads. Only a failure to build the archive
// itself fails the whole call.
func (s *batchService) ProcessBatch(uploads []entity.Upload, text string, style entity.OverlayStyle) (*entity.Batch, error) {
	if len(uploads) == 0 {
		return nil, entity.ErrEmptyBatch
	}
	start := time.Now()

	batch := &entity.Batch{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Images:    make(map[string][]byte),
	}

	var processed []entity.NamedImage
	seen := make(map[string]int)
	for _, up := range uploads {
		img, err := s.processOne(up, text, style)
		if err != nil {
			logrus.Warnf("processing %s failed: %v", up.Name, err)
			batch.Results = append(batch.Results, entity.ItemResult{
				Name:   up.Name,
				Status: entity.StatusFailed,
				Error:  err.Error(),
			})
			continue
		}
		data, err := archive.EncodePNG(img)
		if err != nil {
			logrus.Warnf("encoding %s failed: %v", up.Name, err)
			batch.Results = append(batch.Results, entity.ItemResult{
				Name:   up.Name,
				Status: entity.StatusFailed,
				Error:  err.Error(),
			})
			continue
		}
		entryName := archive.NextEntryName(seen, up.Name)
		batch.Images[entryName] = data
		batch.Results = append(batch.Results, entity.ItemResult{
			Name:      up.Name,
			EntryName: entryName,
			Status:    entity.StatusProcessed,
		})
		processed = append(processed, entity.NamedImage{Name: up.Name, Image: img})
	}

	arch, err := archive.Build(processed)
	if err != nil {
		return nil, fmt.Errorf("build archive: %w", err)
	}
	batch.Archive = arch

	s.repo.Save(batch)

	event := entity.BatchEvent{
		BatchID:    batch.ID,
		Processed:  batch.Processed(),
		Failed:     batch.Failed(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err := s.producer.SendMessage(eventTopic, event); err != nil {
		logrus.Warnf("batch event not sent: %v", err)
	}

	logrus.Infof("batch %s: %d processed, %d failed", batch.ID, event.Processed, event.Failed)
	return batch, nil
}

func (s *batchService) processOne(up entity.Upload, text string, style entity.OverlayStyle) (image.Image, error) {
	img, err := decode.Decode(up.Data)
	if err != nil {
		return nil, err
	}
	return overlay.Render(img, text, style)
}

func (s *batchService) GetBatch(id string) (*entity.Batch, error) {
	return s.repo.FindByID(id)
}

func (s *batchService) GetArchive(id string) ([]byte, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return b.Archive, nil
}

func (s *batchService) GetImage(id, name string) ([]byte, error) {
	return s.repo.FindImage(id, name)
}

func (s *batchService) DeleteBatch(id string) error {
	return s.repo.Delete(id)
}
