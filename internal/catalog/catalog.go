package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"product-vendor-go/internal/models"

	log "github.com/sirupsen/logrus"
)

type SerialPolicy string

const (
	// SerialStable keeps the index-based serials assigned at seeding.
	SerialStable SerialPolicy = "stable"
	// SerialReassign draws fresh, distinct serials on every rotation.
	SerialReassign SerialPolicy = "reassign"
)

var (
	ErrOutOfRange   = errors.New("serial number out of range")
	ErrInvalidPrice = errors.New("price out of bounds")
	ErrInvalidSize  = errors.New("invalid catalog size")
)

// PriceSink receives every price change applied to the catalog. Errors are
// logged by the catalog and never undo the change.
type PriceSink interface {
	PriceChanged(ctx context.Context, change models.PriceChange) error
}

type Option func(*Catalog)

func WithRand(rng *rand.Rand) Option {
	return func(c *Catalog) { c.rng = rng }
}

func WithSerialPolicy(policy SerialPolicy) Option {
	return func(c *Catalog) { c.policy = policy }
}

func WithSink(sink PriceSink) Option {
	return func(c *Catalog) {
		if sink != nil {
			c.sinks = append(c.sinks, sink)
		}
	}
}

type Catalog struct {
	mu        sync.RWMutex
	products  []models.Product
	positions map[int32]int
	sequence  uint64
	rotatedAt time.Time

	policy SerialPolicy
	// rng is only touched while mu is held for writing.
	rng   *rand.Rand
	sinks []PriceSink
}

// New seeds a catalog of size products with serials 0..size-1 and uniformly
// drawn prices.
func New(size int, opts ...Option) (*Catalog, error) {
	c := &Catalog{policy: SerialStable}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	switch c.policy {
	case SerialStable:
		if size < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
		}
	case SerialReassign:
		if size < 1 || size > int(models.MaxSerial)+1 {
			return nil, fmt.Errorf("%w: %d (reassign allows at most %d)", ErrInvalidSize, size, models.MaxSerial+1)
		}
	default:
		return nil, fmt.Errorf("unknown serial policy %q", c.policy)
	}

	c.products = make([]models.Product, size)
	c.positions = make(map[int32]int, size)
	for i := range c.products {
		c.products[i] = models.Product{Serial: int32(i), Price: c.drawPrice()}
		c.positions[int32(i)] = i
	}
	c.rotatedAt = time.Now()

	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) Policy() SerialPolicy {
	return c.policy
}

func (c *Catalog) Price(serial int32) (int32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.positions[serial]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, serial)
	}

	return c.products[pos].Price, nil
}

// Serials returns the serial numbers in catalog order.
func (c *Catalog) Serials() []int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	serials := make([]int32, len(c.products))
	for i, p := range c.products {
		serials[i] = p.Serial
	}

	return serials
}

// Current returns the first product in catalog order.
func (c *Catalog) Current() models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.products[0]
}

func (c *Catalog) Snapshot() models.Rotation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return models.Rotation{
		Sequence: c.sequence,
		Products: append([]models.Product(nil), c.products...),
		At:       c.rotatedAt,
	}
}

// SetPrice overrides one product's price. The change carries the current
// rotation sequence and goes to the price sinks only. It is not a rotation, so
// running WatchPrices streams never receive it; watchers that connect later
// get it in their initial snapshot.
func (c *Catalog) SetPrice(ctx context.Context, serial, price int32) error {
	if price < models.MinPrice || price > models.MaxPrice {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPrice, price, models.MinPrice, models.MaxPrice)
	}

	change, err := c.setPrice(serial, price)
	if err != nil {
		return err
	}

	c.report(ctx, []models.PriceChange{change})
	return nil
}

func (c *Catalog) setPrice(serial, price int32) (models.PriceChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.positions[serial]
	if !ok {
		return models.PriceChange{}, fmt.Errorf("%w: %d", ErrOutOfRange, serial)
	}
	c.products[pos].Price = price

	return models.PriceChange{Serial: serial, Price: price, Sequence: c.sequence, At: time.Now()}, nil
}

// RotateAll redraws every price, and every serial under SerialReassign, in a
// single critical section.
func (c *Catalog) RotateAll(ctx context.Context) models.Rotation {
	rotation, changes := c.rotate()
	c.report(ctx, changes)

	return rotation
}

func (c *Catalog) rotate() (models.Rotation, []models.PriceChange) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Draw everything before touching state so a failed draw leaves the
	// catalog as it was.
	var serials []int
	if c.policy == SerialReassign {
		serials = c.rng.Perm(int(models.MaxSerial) + 1)[:len(c.products)]
	}
	prices := make([]int32, len(c.products))
	for i := range prices {
		prices[i] = c.drawPrice()
	}

	c.sequence++
	c.rotatedAt = time.Now()
	if serials != nil {
		clear(c.positions)
	}

	changes := make([]models.PriceChange, len(c.products))
	for i := range c.products {
		if serials != nil {
			c.products[i].Serial = int32(serials[i])
			c.positions[c.products[i].Serial] = i
		}
		c.products[i].Price = prices[i]
		changes[i] = models.PriceChange{
			Serial:   c.products[i].Serial,
			Price:    c.products[i].Price,
			Sequence: c.sequence,
			At:       c.rotatedAt,
		}
	}

	return models.Rotation{
		Sequence: c.sequence,
		Products: append([]models.Product(nil), c.products...),
		At:       c.rotatedAt,
	}, changes
}

func (c *Catalog) drawPrice() int32 {
	return models.MinPrice + c.rng.Int32N(models.MaxPrice-models.MinPrice+1)
}

func (c *Catalog) report(ctx context.Context, changes []models.PriceChange) {
	for _, change := range changes {
		for _, sink := range c.sinks {
			if err := sink.PriceChanged(ctx, change); err != nil {
				log.WithError(err).WithField("serial", change.Serial).Warn("[Catalog] Price sink failed")
			}
		}
	}
}
