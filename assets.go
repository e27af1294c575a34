package angryclones

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadImageFromFS decodes a PNG or JPEG file from fsys.
func LoadImageFromFS(fsys fs.FS, filePath string) (*ebiten.Image, error) {
	file, err := fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filePath, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// ImageCache decodes each image path once and hands out the same handle afterwards.
// Entries are never evicted.
type ImageCache struct {
	fsys   fs.FS
	dir    string
	images map[string]*ebiten.Image
}

func NewImageCache(fsys fs.FS, dir string) *ImageCache {
	return &ImageCache{
		fsys:   fsys,
		dir:    dir,
		images: make(map[string]*ebiten.Image),
	}
}

// Load returns the cached image for name, decoding it on first use.
func (c *ImageCache) Load(name string) (*ebiten.Image, error) {
	fullPath := path.Join(c.dir, name)

	if img, ok := c.images[fullPath]; ok {
		return img, nil
	}

	img, err := LoadImageFromFS(c.fsys, fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", fullPath, err)
	}

	c.images[fullPath] = img
	return img, nil
}

// Preload loads every name, stopping at the first failure.
func (c *ImageCache) Preload(names ...string) error {
	for _, name := range names {
		if _, err := c.Load(name); err != nil {
			return err
		}
	}
	return nil
}

// Len is the number of distinct paths in the cache.
func (c *ImageCache) Len() int {
	return len(c.images)
}

func (c *ImageCache) NewImage(name string) (*Image, error) {
	img, err := c.Load(name)
	if err != nil {
		return nil, err
	}
	return &Image{image: img}, nil
}

// Image is a positioned view of a cached bitmap.
type Image struct {
	image    *ebiten.Image
	position Vector2
}

// Move sets the top-left screen position used by Display.
func (i *Image) Move(position Vector2) {
	i.position = position
}

func (i *Image) Position() Vector2 {
	return i.position
}

func (i *Image) Display(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(i.position.X, i.position.Y)
	screen.DrawImage(i.image, op)
}

func (i *Image) Size() (float64, float64) {
	b := i.image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Handle exposes the shared bitmap.
func (i *Image) Handle() *ebiten.Image {
	return i.image
}
