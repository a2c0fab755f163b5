package buyer

import (
	"context"
	"time"

	vendorv1 "product-vendor-go/gen/go/vendorpb/v1"
	"product-vendor-go/internal/models"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	DefaultInterval = 5 * time.Second
	unsubscribeWait = 2 * time.Second
)

type Journal interface {
	Save(quote models.Quote) error
}

type Option func(*Buyer)

func WithInterval(interval time.Duration) Option {
	return func(b *Buyer) { b.interval = interval }
}

// WithDelta sets how far above (or below, when negative) the asking price
// the buyer offers.
func WithDelta(delta int32) Option {
	return func(b *Buyer) { b.delta = delta }
}

func WithJournal(journal Journal) Option {
	return func(b *Buyer) { b.journal = journal }
}

// Buyer polls the vendor's current product and makes one offer per round.
type Buyer struct {
	products      vendorv1.ProductServiceClient
	offers        vendorv1.OfferServiceClient
	subscriptions vendorv1.SubscriptionServiceClient
	journal       Journal
	interval      time.Duration
	delta         int32
	now           func() time.Time
}

func New(conn grpc.ClientConnInterface, opts ...Option) *Buyer {
	return newBuyer(
		vendorv1.NewProductServiceClient(conn),
		vendorv1.NewOfferServiceClient(conn),
		vendorv1.NewSubscriptionServiceClient(conn),
		opts...,
	)
}

func newBuyer(products vendorv1.ProductServiceClient, offers vendorv1.OfferServiceClient, subscriptions vendorv1.SubscriptionServiceClient, opts ...Option) *Buyer {
	b := &Buyer{
		products:      products,
		offers:        offers,
		subscriptions: subscriptions,
		interval:      DefaultInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.interval <= 0 {
		b.interval = DefaultInterval
	}

	return b
}

// Run subscribes, quotes once per interval and unsubscribes when ctx ends.
func (b *Buyer) Run(ctx context.Context) error {
	resp, err := b.subscriptions.Subscribe(ctx, &vendorv1.Empty{})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"quorum_reached": resp.GetSuccess(),
		"subscribers":    resp.GetSubscribers(),
	}).Info("[Buyer] Subscribed")
	defer b.unsubscribe()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		b.round(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (b *Buyer) round(ctx context.Context) {
	quote, err := b.Quote(ctx)
	switch {
	case err == nil:
	case status.Code(err) == codes.OutOfRange:
		log.WithError(err).Warn("[Buyer] Product rotated away, retrying next round")
		return
	case ctx.Err() != nil:
		return
	default:
		log.WithError(err).Error("[Buyer] Round failed")
		return
	}

	log.WithFields(log.Fields{
		"serial":    quote.Serial,
		"price":     quote.Price,
		"offer":     quote.Offer,
		"confirmed": quote.Confirmed,
	}).Info("[Buyer] Offer answered")

	if b.journal == nil {
		return
	}
	if err := b.journal.Save(quote); err != nil {
		log.WithError(err).Error("[Buyer] Journal save failed")
	}
}

// Quote reads the current product and offers its price plus delta.
func (b *Buyer) Quote(ctx context.Context) (models.Quote, error) {
	serial, err := b.products.GetSerial(ctx, &vendorv1.Empty{})
	if err != nil {
		return models.Quote{}, err
	}

	price, err := b.products.GetCurrentPrice(ctx, &vendorv1.Empty{})
	if err != nil {
		return models.Quote{}, err
	}

	quote := models.Quote{
		At:     b.now(),
		Serial: serial.GetSerial(),
		Price:  price.GetPrice(),
		Offer:  price.GetPrice() + b.delta,
	}

	resp, err := b.offers.ConfirmOffer(ctx, &vendorv1.OfferRequest{Serial: quote.Serial, Price: quote.Offer})
	if err != nil {
		return models.Quote{}, err
	}
	quote.Confirmed = resp.GetConfirmed()

	return quote, nil
}

func (b *Buyer) unsubscribe() {
	ctx, cancel := context.WithTimeout(context.Background(), unsubscribeWait)
	defer cancel()

	resp, err := b.subscriptions.Unsubscribe(ctx, &vendorv1.Empty{})
	if err != nil {
		log.WithError(err).Warn("[Buyer] Unsubscribe failed")
		return
	}
	log.WithField("subscribers", resp.GetSubscribers()).Info("[Buyer] Unsubscribed")
}
