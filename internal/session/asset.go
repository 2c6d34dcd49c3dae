package session

import (
	"image"
	"sync"
)

// Asset is one composited output of a session. The session releases it when
// a newer save supersedes it or when the session closes, unless ownership
// was handed over with SaveAndClose.
type Asset struct {
	mu        sync.Mutex
	data      []byte
	img       *image.RGBA
	released  bool
	onRelease func()
}

func newAsset(data []byte, img *image.RGBA, onRelease func()) *Asset {
	return &Asset{data: data, img: img, onRelease: onRelease}
}

// Bytes returns a copy of the encoded JPEG, or nil after release
func (a *Asset) Bytes() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return nil
	}
	out := make([]byte, len(a.data))
	copy(out, a.data)
	return out
}

// Size returns the encoded size in bytes
func (a *Asset) Size() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.data)
}

// Image returns the composited raster, or nil after release
func (a *Asset) Image() image.Image {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return nil
	}
	return a.img
}

// Release frees the asset. Only the first call has an effect.
func (a *Asset) Release() {
	a.mu.Lock()
	if a.released {
		a.mu.Unlock()
		return
	}
	a.released = true
	a.data = nil
	a.img = nil
	onRelease := a.onRelease
	a.mu.Unlock()

	if onRelease != nil {
		onRelease()
	}
}

// Released reports whether Release has run
func (a *Asset) Released() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

// source is the decoded input raster held for the lifetime of a session
type source struct {
	once   sync.Once
	img    image.Image
	format string
}

func (s *source) release(onRelease func()) {
	s.once.Do(func() {
		s.img = nil
		if onRelease != nil {
			onRelease()
		}
	})
}
