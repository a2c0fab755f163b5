package rotation

import (
	"sync"

	"product-vendor-go/internal/models"
)

// Feed fans completed rotations out to watchers. Publishing never blocks: a
// watcher whose buffer is full misses that rotation.
type Feed struct {
	mu       sync.Mutex
	watchers map[chan models.Rotation]struct{}
}

func NewFeed() *Feed {
	return &Feed{watchers: make(map[chan models.Rotation]struct{})}
}

// Watch registers a watcher and returns its channel with a cancel func that
// unregisters it and closes the channel.
func (f *Feed) Watch(buffer int) (<-chan models.Rotation, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan models.Rotation, buffer)

	f.mu.Lock()
	f.watchers[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.watchers, ch)
			f.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

func (f *Feed) Publish(rotation models.Rotation) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.watchers {
		select {
		case ch <- rotation:
		default:
		}
	}
}

func (f *Feed) Watchers() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.watchers)
}
