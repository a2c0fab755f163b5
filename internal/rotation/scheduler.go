package rotation

import (
	"context"
	"time"

	"product-vendor-go/internal/models"

	log "github.com/sirupsen/logrus"
)

const DefaultInterval = 5 * time.Second

type Rotator interface {
	RotateAll(ctx context.Context) models.Rotation
}

// Scheduler rotates the catalog on a fixed interval, independent of request
// traffic and of the subscription gate.
type Scheduler struct {
	rotator  Rotator
	interval time.Duration
	feed     *Feed
}

// NewScheduler builds a scheduler. feed may be nil when nobody watches
// rotations.
func NewScheduler(rotator Rotator, interval time.Duration, feed *Feed) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Scheduler{rotator: rotator, interval: interval, feed: feed}
}

// Run rotates until ctx is cancelled. It always returns nil so that it can run
// as an errgroup member without tearing the group down.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.WithField("interval", s.interval).Info("[Scheduler] Rotation started")
	for {
		select {
		case <-ctx.Done():
			log.Info("[Scheduler] Rotation stopped")
			return nil
		case <-ticker.C:
			s.cycle(ctx)
		}
	}
}

// cycle runs one rotation. A panic only costs this cycle.
func (s *Scheduler) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("[Scheduler] Rotation cycle failed")
		}
	}()

	rotation := s.rotator.RotateAll(ctx)
	log.WithFields(log.Fields{
		"sequence": rotation.Sequence,
		"products": len(rotation.Products),
	}).Debug("[Scheduler] Catalog rotated")

	if s.feed != nil {
		s.feed.Publish(rotation)
	}
}
