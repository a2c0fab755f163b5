package negotiation

import (
	"context"

	"product-vendor-go/internal/models"

	log "github.com/sirupsen/logrus"
)

type Catalog interface {
	Price(serial int32) (int32, error)
	Serials() []int32
	Current() models.Product
	Snapshot() models.Rotation
}

type Gate interface {
	AwaitQuorum(ctx context.Context) error
}

// Service answers buyer reads and offers against the live catalog. It keeps
// no state of its own.
type Service struct {
	catalog Catalog
	gate    Gate
}

// NewService wires the catalog and an optional gate. A nil gate serves reads
// immediately.
func NewService(catalog Catalog, gate Gate) *Service {
	return &Service{catalog: catalog, gate: gate}
}

func (s *Service) GetPrice(ctx context.Context, serial int32) (int32, error) {
	if err := s.awaitQuorum(ctx); err != nil {
		return 0, err
	}

	return s.catalog.Price(serial)
}

func (s *Service) CurrentPrice(ctx context.Context) (int32, error) {
	if err := s.awaitQuorum(ctx); err != nil {
		return 0, err
	}

	return s.catalog.Current().Price, nil
}

func (s *Service) CurrentSerial(ctx context.Context) (int32, error) {
	if err := s.awaitQuorum(ctx); err != nil {
		return 0, err
	}

	return s.catalog.Current().Serial, nil
}

func (s *Service) ListSerials(ctx context.Context) ([]int32, error) {
	if err := s.awaitQuorum(ctx); err != nil {
		return nil, err
	}

	return s.catalog.Serials(), nil
}

// Snapshot returns every product with the sequence of the rotation that
// produced it.
func (s *Service) Snapshot(ctx context.Context) (models.Rotation, error) {
	if err := s.awaitQuorum(ctx); err != nil {
		return models.Rotation{}, err
	}

	return s.catalog.Snapshot(), nil
}

// ConfirmOffer accepts the offer iff the asking price at read time is at or
// below the offered price.
func (s *Service) ConfirmOffer(ctx context.Context, offer models.Offer) (bool, error) {
	if err := s.awaitQuorum(ctx); err != nil {
		return false, err
	}

	asking, err := s.catalog.Price(offer.Serial)
	if err != nil {
		return false, err
	}

	confirmed := Accepts(asking, offer.Price)
	log.WithFields(log.Fields{
		"serial":    offer.Serial,
		"asking":    asking,
		"offer":     offer.Price,
		"confirmed": confirmed,
	}).Info("[Negotiation] Offer evaluated")

	return confirmed, nil
}

// Accepts is the vendor's acceptance rule.
func Accepts(asking, offered int32) bool {
	return asking <= offered
}

func (s *Service) awaitQuorum(ctx context.Context) error {
	if s.gate == nil {
		return nil
	}

	return s.gate.AwaitQuorum(ctx)
}
