package imaging

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DecodeError reports an image file that could not be opened or decoded.
type DecodeError struct {
	Path string // Path as given by the caller
	Err  error  // Underlying open or decode error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode opens and decodes a single image file.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG, JPEG,
//     GIF, BMP, TIFF, and WebP.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the format.
//   - error: A *DecodeError if the file is missing, unreadable, or not a
//     supported image.
//
// EXIF orientation is not applied; coordinates address the stored pixels.
func Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// A batch may name the same file more than once; the cache makes sure each
// distinct path is decoded a single time. Two goroutines racing on the same
// uncached path may both decode it, and the last one to finish wins. Both
// results are identical, so this only costs time.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
	decode func(string) (image.Image, error)
}

// NewImageCache creates an empty cache backed by Decode.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
		decode: Decode,
	}
}

// Load returns the cached image for path, decoding it on first use.
//
// The image is cached using the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) result in separate entries.
// Failed decodes are not cached.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := c.decode(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Dimensions returns the width and height of img in pixels.
func Dimensions(img image.Image) (width, height int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
