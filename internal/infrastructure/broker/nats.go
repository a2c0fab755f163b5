package broker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	log "github.com/sirupsen/logrus"
)

// Connect dials NATS and makes sure the price stream exists. The caller
// closes the returned connection.
func Connect(ctx context.Context, url, stream string) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url, nats.Name("product-vendor"))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("create jetstream context: %w", err)
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     strings.ToUpper(stream),
		Subjects: []string{strings.ToLower(stream) + ".>"},
		Storage:  jetstream.FileStorage,
	})
	if err != nil && !errors.Is(err, jetstream.ErrStreamNameAlreadyInUse) {
		nc.Close()
		return nil, nil, fmt.Errorf("create stream %s: %w", stream, err)
	}

	log.WithFields(log.Fields{"url": url, "stream": strings.ToUpper(stream)}).Info("[Broker] Connected to NATS")
	return nc, js, nil
}
