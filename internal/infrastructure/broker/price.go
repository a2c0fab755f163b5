package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"product-vendor-go/internal/models"

	"github.com/nats-io/nats.go/jetstream"
	log "github.com/sirupsen/logrus"
)

// Publisher is the subset of jetstream.JetStream the price broker needs.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

type PriceMessage struct {
	Serial    int32  `json:"serial"`
	Price     int32  `json:"price"`
	Sequence  uint64 `json:"sequence"`
	Timestamp int64  `json:"timestamp"`
}

// PriceBroker publishes every catalog price change to <prefix>.price.<serial>.
type PriceBroker struct {
	js     Publisher
	prefix string
}

func NewPriceBroker(js Publisher, prefix string) *PriceBroker {
	return &PriceBroker{js: js, prefix: strings.ToLower(prefix)}
}

func (b *PriceBroker) Subject(serial int32) string {
	return fmt.Sprintf("%s.price.%d", b.prefix, serial)
}

func (b *PriceBroker) PriceChanged(ctx context.Context, change models.PriceChange) error {
	msg, err := json.Marshal(PriceMessage{
		Serial:    change.Serial,
		Price:     change.Price,
		Sequence:  change.Sequence,
		Timestamp: change.At.UnixMilli(),
	})
	if err != nil {
		log.WithError(err).Error("[PriceBroker] PriceChanged json.Marshal")
		return err
	}

	subject := b.Subject(change.Serial)
	if _, err := b.js.Publish(ctx, subject, msg); err != nil {
		log.WithError(err).WithField("subject", subject).Error("[PriceBroker] PriceChanged Publish")
		return err
	}

	log.WithField("subject", subject).Debug("[PriceBroker] PriceChanged")
	return nil
}
