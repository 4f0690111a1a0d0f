package archive

import (
	"archive/zip"
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragunandhant/photo-overlay/internal/entity"
)

func openArchive(t *testing.T, data []byte) *zip.Reader {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return zr
}

func TestEntryName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "jpeg extension", filename: "photo.jpg", want: "photo_processed.png"},
		{name: "png extension", filename: "photo.png", want: "photo_processed.png"},
		{name: "uppercase extension", filename: "photo.PNG", want: "photo_processed.png"},
		{name: "no extension", filename: "photo", want: "photo_processed.png"},
		{name: "dotted base name", filename: "a.b.c.png", want: "a.b.c_processed.png"},
		{name: "path is stripped", filename: "dir/sub/photo.jpg", want: "photo_processed.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntryName(tt.filename))
		})
	}
}

// TestBuildEmpty checks that zero items yield a structurally valid, empty archive.
func TestBuildEmpty(t *testing.T) {
	data, err := Build(nil)

	require.NoError(t, err)
	zr := openArchive(t, data)
	assert.Len(t, zr.File, 0)
}

// TestBuildPreservesOrder checks that entries appear in input order.
func TestBuildPreservesOrder(t *testing.T) {
	items := []entity.NamedImage{
		{Name: "b.png", Image: imaging.New(4, 4, color.NRGBA{R: 1, A: 255})},
		{Name: "a.jpg", Image: imaging.New(4, 4, color.NRGBA{G: 1, A: 255})},
		{Name: "c.jpeg", Image: imaging.New(4, 4, color.NRGBA{B: 1, A: 255})},
	}

	data, err := Build(items)
	require.NoError(t, err)

	zr := openArchive(t, data)
	require.Len(t, zr.File, 3)
	assert.Equal(t, "b_processed.png", zr.File[0].Name)
	assert.Equal(t, "a_processed.png", zr.File[1].Name)
	assert.Equal(t, "c_processed.png", zr.File[2].Name)
}

// TestBuildRoundTrip checks that an archived image decodes back pixel-identical.
func TestBuildRoundTrip(t *testing.T) {
	src := imaging.New(8, 6, color.NRGBA{A: 255})
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: uint8(x + y), A: 255})
		}
	}

	data, err := Build([]entity.NamedImage{{Name: "grid.png", Image: src}})
	require.NoError(t, err)

	zr := openArchive(t, data)
	require.Len(t, zr.File, 1)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	decoded, err := png.Decode(rc)
	require.NoError(t, err)

	assert.Equal(t, src.Bounds().Dx(), decoded.Bounds().Dx())
	assert.Equal(t, src.Bounds().Dy(), decoded.Bounds().Dy())
	assert.Equal(t, src.Pix, imaging.Clone(decoded).Pix)
}

// TestBuildNameCollision checks that same base names with different extensions
// do not overwrite each other.
func TestBuildNameCollision(t *testing.T) {
	items := []entity.NamedImage{
		{Name: "a.png", Image: imaging.New(2, 2, color.NRGBA{R: 255, A: 255})},
		{Name: "a.jpg", Image: imaging.New(2, 2, color.NRGBA{G: 255, A: 255})},
		{Name: "a.jpeg", Image: imaging.New(2, 2, color.NRGBA{B: 255, A: 255})},
	}

	data, err := Build(items)
	require.NoError(t, err)

	zr := openArchive(t, data)
	require.Len(t, zr.File, 3)
	assert.Equal(t, "a_processed.png", zr.File[0].Name)
	assert.Equal(t, "a_processed_2.png", zr.File[1].Name)
	assert.Equal(t, "a_processed_3.png", zr.File[2].Name)

	// The first entry still holds the first input's pixels.
	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	decoded, err := png.Decode(rc)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, imaging.Clone(decoded).NRGBAAt(0, 0))
}

// TestBuildUsesDeflate checks that entries carry standard deflate compression.
func TestBuildUsesDeflate(t *testing.T) {
	data, err := Build([]entity.NamedImage{
		{Name: "x.png", Image: imaging.New(16, 16, color.NRGBA{R: 7, G: 7, B: 7, A: 255})},
	})
	require.NoError(t, err)

	zr := openArchive(t, data)
	require.Len(t, zr.File, 1)
	assert.Equal(t, zip.Deflate, zr.File[0].Method)
}

func TestEncodePNG(t *testing.T) {
	src := imaging.New(3, 3, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	data, err := EncodePNG(src)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, src.Pix, imaging.Clone(decoded).Pix)
}
