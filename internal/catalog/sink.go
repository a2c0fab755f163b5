package catalog

import (
	"context"

	"product-vendor-go/internal/models"

	log "github.com/sirupsen/logrus"
)

// LogSink writes every price change to the process log.
type LogSink struct{}

func (LogSink) PriceChanged(_ context.Context, change models.PriceChange) error {
	log.WithFields(log.Fields{
		"serial":   change.Serial,
		"price":    change.Price,
		"sequence": change.Sequence,
	}).Info("[Catalog] Price changed")

	return nil
}
