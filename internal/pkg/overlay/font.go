package overlay

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Preferred system faces, tried in order before the embedded fallbacks.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// loadFace resolves a font face at the requested pixel size. It never fails:
// system fonts are tried first, then the embedded Go Regular face, and as a
// last resort the fixed-size basicfont face.
func loadFace(size int) font.Face {
	for _, path := range systemFontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data, size); face != nil {
			return face
		}
	}
	if face := parseFace(goregular.TTF, size); face != nil {
		return face
	}
	return basicfont.Face7x13
}

func parseFace(ttf []byte, size int) font.Face {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}
