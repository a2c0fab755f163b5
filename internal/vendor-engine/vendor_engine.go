package vendorengine

import (
	"context"

	"product-vendor-go/internal/catalog"
	"product-vendor-go/internal/config"
	"product-vendor-go/internal/negotiation"
	"product-vendor-go/internal/rotation"
	"product-vendor-go/internal/subscription"

	log "github.com/sirupsen/logrus"
)

// Vendor owns the process-wide catalog and gate and the services built on
// them.
type Vendor struct {
	Catalog *catalog.Catalog
	Gate    *subscription.Gate
	Service *negotiation.Service
	Feed    *rotation.Feed

	scheduler *rotation.Scheduler
}

func New(cfg config.CatalogConfig, opts ...catalog.Option) (*Vendor, error) {
	opts = append([]catalog.Option{catalog.WithSerialPolicy(catalog.SerialPolicy(cfg.SerialPolicy))}, opts...)
	c, err := catalog.New(cfg.Size, opts...)
	if err != nil {
		return nil, err
	}

	gate := subscription.NewGate(cfg.Quorum)
	var serviceGate negotiation.Gate
	if cfg.GateReads {
		serviceGate = gate
	}

	feed := rotation.NewFeed()
	v := &Vendor{
		Catalog:   c,
		Gate:      gate,
		Service:   negotiation.NewService(c, serviceGate),
		Feed:      feed,
		scheduler: rotation.NewScheduler(c, cfg.RotationInterval, feed),
	}

	log.WithFields(log.Fields{
		"size":       c.Len(),
		"quorum":     cfg.Quorum,
		"gate_reads": cfg.GateReads,
		"policy":     c.Policy(),
	}).Info("[Vendor] Catalog seeded")

	return v, nil
}

// StartSimulation rotates prices until ctx is cancelled.
func (v *Vendor) StartSimulation(ctx context.Context) error {
	return v.scheduler.Run(ctx)
}
