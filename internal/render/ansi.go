package render

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/arcanaland/nrhelper/internal/card"
)

// Art dimensions in terminal cells
const (
	ArtWidth  = 30
	ArtHeight = 22
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// FindCardImage looks for a local image named after the card ID, falling back
// to the last path element of the card's image URL
func FindCardImage(imageDir string, rec card.Record) (string, error) {
	if imageDir == "" {
		return "", fmt.Errorf("no image directory configured")
	}

	var candidates []string
	if rec.ID != 0 {
		id := strconv.Itoa(rec.ID)
		for _, ext := range imageExtensions {
			candidates = append(candidates, filepath.Join(imageDir, id+ext))
		}
	}
	if rec.ImageURL != "" {
		if base := filepath.Base(rec.ImageURL); base != "." && base != "/" {
			candidates = append(candidates, filepath.Join(imageDir, base))
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no image found for card: %s", rec.Name)
}

// CardArt returns ANSI art for a card, converting and caching the local
// image on first use. A placeholder frame is returned when there is no image.
func CardArt(imageDir, cacheDir string, rec card.Record) (string, error) {
	imagePath, err := FindCardImage(imageDir, rec)
	if err != nil {
		return Placeholder(ArtWidth, ArtHeight), nil
	}

	ansiCache := filepath.Join(cacheDir, "ansi_cache")
	if err := os.MkdirAll(ansiCache, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	cachePath := filepath.Join(ansiCache, fmt.Sprintf("%x.ansi", md5.Sum([]byte(imagePath))))
	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	art, err := generateAnsiArt(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to generate ANSI art: %w", err)
	}

	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to cache: %w", err)
	}

	return art, nil
}

// Placeholder draws an empty card frame
func Placeholder(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", width-2) + "┐\n")
	for y := 1; y < height-1; y++ {
		fill := strings.Repeat(" ", width-2)
		if y == (height-1)/2 {
			fill = center("No Image", width-2)
		}
		b.WriteString("│" + fill + "│\n")
	}
	b.WriteString("└" + strings.Repeat("─", width-2) + "┘")
	return b.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func generateAnsiArt(imagePath string) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return ImageToANSI(img, ArtWidth, ArtHeight), nil
}

// ImageToANSI converts an image to half-block ANSI art of width x height cells
func ImageToANSI(img image.Image, width, height int) string {
	// Each cell covers a 2x2 block of the resized image
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			c1, _ := colorful.MakeColor(colorAt(resized, x, y))
			c2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			c3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			c4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			fg := averageColor(c1, c2)
			bg := averageColor(c3, c4)

			buffer.WriteString(halfBlock(fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// halfBlock renders the upper half block with fg on top and bg below
func halfBlock(fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m", r1, g1, b1, r2, g2, b2)
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
