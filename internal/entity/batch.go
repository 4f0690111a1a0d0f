package entity

import (
	"image"
	"time"
)

// Upload is a raw uploaded file before decoding.
type Upload struct {
	Name string
	Data []byte
}

// NamedImage pairs a decoded image with its original filename. It is the
// archiver's input unit.
type NamedImage struct {
	Name  string
	Image image.Image
}

const (
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// ItemResult records the outcome for one uploaded file.
type ItemResult struct {
	Name      string `json:"name"`
	EntryName string `json:"entry_name,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Batch holds the processed results for one upload request. Images maps
// archive entry names to encoded PNG bytes.
type Batch struct {
	ID        string
	CreatedAt time.Time
	Results   []ItemResult
	Images    map[string][]byte
	Archive   []byte
}

// Processed returns the number of successfully processed items.
func (b *Batch) Processed() int {
	n := 0
	for _, r := range b.Results {
		if r.Status == StatusProcessed {
			n++
		}
	}
	return n
}

// Failed returns the number of failed items.
func (b *Batch) Failed() int {
	return len(b.Results) - b.Processed()
}

type BatchResponse struct {
	ID        string       `json:"id"`
	Processed int          `json:"processed"`
	Failed    int          `json:"failed"`
	Results   []ItemResult `json:"results"`
}

// BatchEvent is published after a batch finishes processing.
type BatchEvent struct {
	BatchID    string `json:"batch_id"`
	Processed  int    `json:"processed"`
	Failed     int    `json:"failed"`
	DurationMs int64  `json:"duration_ms"`
}
