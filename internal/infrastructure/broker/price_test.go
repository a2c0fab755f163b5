package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"product-vendor-go/internal/models"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (_m *MockPublisher) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	ret := _m.Called(ctx, subject, data)

	ack, _ := ret.Get(0).(*jetstream.PubAck)
	return ack, ret.Error(1)
}

func NewMockPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPublisher {
	m := &MockPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func TestPriceChangedPublishesJSON(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	js := NewMockPublisher(t)
	js.On("Publish", mock.Anything, "vendor.price.4", mock.MatchedBy(func(data []byte) bool {
		var msg PriceMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return false
		}
		return msg == PriceMessage{Serial: 4, Price: 120, Sequence: 9, Timestamp: at.UnixMilli()}
	})).Return(&jetstream.PubAck{Stream: "VENDOR", Sequence: 1}, nil).Once()

	b := NewPriceBroker(js, "VENDOR")
	err := b.PriceChanged(context.Background(), models.PriceChange{Serial: 4, Price: 120, Sequence: 9, At: at})
	require.NoError(t, err)
}

func TestPriceChangedReturnsPublishError(t *testing.T) {
	boom := errors.New("no responders")
	js := NewMockPublisher(t)
	js.On("Publish", mock.Anything, "vendor.price.1", mock.Anything).Return(nil, boom).Once()

	b := NewPriceBroker(js, "vendor")
	err := b.PriceChanged(context.Background(), models.PriceChange{Serial: 1, Price: 50})
	assert.ErrorIs(t, err, boom)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "vendor.price.300", NewPriceBroker(nil, "Vendor").Subject(300))
}
