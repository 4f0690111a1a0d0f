package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ragunandhant/photo-overlay/internal/entity"
)

const (
	entrySuffix = "_processed"
	entryExt    = ".png"
)

// EntryName derives the archive entry name for an original filename: the
// extension is stripped and replaced with the processed suffix plus ".png".
func EntryName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return base + entrySuffix + entryExt
}

// NextEntryName derives the entry name for filename, appending a numeric
// suffix when the plain name was already handed out according to seen. Two
// uploads with the same base name ("a.png" and "a.jpg") would otherwise map to
// the same entry.
func NextEntryName(seen map[string]int, filename string) string {
	name := EntryName(filename)
	seen[name]++
	if n := seen[name]; n > 1 {
		name = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, entryExt), n, entryExt)
	}
	return name
}

// Build packs the given images into a deflate-compressed zip, one PNG entry
// per image, in input order. An empty input yields a valid empty archive. Any
// encode failure aborts the whole build: a partial archive is worse than none.
func Build(items []entity.NamedImage) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	seen := make(map[string]int)
	for _, item := range items {
		name := NextEntryName(seen, item.Name)
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create entry %s: %w", name, err)
		}
		if err := imaging.Encode(w, item.Image, imaging.PNG); err != nil {
			return nil, fmt.Errorf("encode %s: %w", item.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNG returns the image losslessly encoded as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
