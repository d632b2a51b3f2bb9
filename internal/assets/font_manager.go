package assets

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager загружает шрифты и кэширует начертания по размеру.
type FontManager struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size float64
}

// NewFontManager parses the embedded Go fonts. When ttfPath is set, that file
// replaces the regular face.
func NewFontManager(ttfPath string) (*FontManager, error) {
	regularData := goregular.TTF
	if ttfPath != "" {
		data, err := os.ReadFile(ttfPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
		regularData = data
	}

	regular, err := opentype.Parse(regularData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &FontManager{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Face returns the regular face at the given size.
func (m *FontManager) Face(size float64) font.Face {
	return m.face(faceKey{size: size})
}

// BoldFace returns the bold face at the given size.
func (m *FontManager) BoldFace(size float64) font.Face {
	return m.face(faceKey{bold: true, size: size})
}

func (m *FontManager) face(key faceKey) font.Face {
	if f, ok := m.faces[key]; ok {
		return f
	}
	src := m.regular
	if key.bold {
		src = m.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Битый шрифт не должен ронять игру, рисуем встроенным bitmap-шрифтом
		log.Printf("Failed to create font face (size %.0f): %v. Falling back to basicfont.", key.size, err)
		f = basicfont.Face7x13
	}
	m.faces[key] = f
	return f
}

// Unload closes every cached face.
func (m *FontManager) Unload() {
	for key, f := range m.faces {
		if f != basicfont.Face7x13 {
			f.Close()
		}
		delete(m.faces, key)
	}
}
