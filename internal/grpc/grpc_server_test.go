package grpcserver

import (
	"context"
	"math/rand/v2"
	"net"
	"sync"
	"testing"
	"time"

	vendorv1 "product-vendor-go/gen/go/vendorpb/v1"
	"product-vendor-go/internal/catalog"
	"product-vendor-go/internal/negotiation"
	"product-vendor-go/internal/rotation"
	"product-vendor-go/internal/subscription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type harness struct {
	catalog      *catalog.Catalog
	gate         *subscription.Gate
	feed         *rotation.Feed
	products     vendorv1.ProductServiceClient
	offers       vendorv1.OfferServiceClient
	subscription vendorv1.SubscriptionServiceClient
	health       healthpb.HealthClient
}

func startServer(t *testing.T, quorum int, gateReads bool) *harness {
	t.Helper()

	c, err := catalog.New(5, catalog.WithRand(rand.New(rand.NewPCG(3, 5))))
	require.NoError(t, err)
	gate := subscription.NewGate(quorum)
	feed := rotation.NewFeed()

	var serviceGate negotiation.Gate
	if gateReads {
		serviceGate = gate
	}
	server := NewServer(negotiation.NewService(c, serviceGate), gate, feed, gateReads)

	listener := bufconn.Listen(1 << 20)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &harness{
		catalog:      c,
		gate:         gate,
		feed:         feed,
		products:     vendorv1.NewProductServiceClient(conn),
		offers:       vendorv1.NewOfferServiceClient(conn),
		subscription: vendorv1.NewSubscriptionServiceClient(conn),
		health:       healthpb.NewHealthClient(conn),
	}
}

func TestGetPriceBlocksUntilQuorum(t *testing.T) {
	h := startServer(t, 3, true)

	done := make(chan *vendorv1.PriceResponse, 1)
	go func() {
		resp, err := h.products.GetPrice(context.Background(), &vendorv1.GetPriceRequest{Serial: 0})
		if err == nil {
			done <- resp
		}
		close(done)
	}()

	for i := 1; i <= 2; i++ {
		resp, err := h.subscription.Subscribe(context.Background(), &vendorv1.Empty{})
		require.NoError(t, err)
		assert.False(t, resp.GetSuccess())
		assert.EqualValues(t, i, resp.GetSubscribers())
	}

	select {
	case <-done:
		t.Fatal("GetPrice answered before the third subscriber")
	case <-time.After(100 * time.Millisecond):
	}

	resp, err := h.subscription.Subscribe(context.Background(), &vendorv1.Empty{})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())
	assert.EqualValues(t, 3, resp.GetSubscribers())

	select {
	case price, ok := <-done:
		require.True(t, ok, "GetPrice failed")
		expected, err := h.catalog.Price(0)
		require.NoError(t, err)
		assert.Equal(t, expected, price.GetPrice())
	case <-time.After(2 * time.Second):
		t.Fatal("GetPrice still blocked after quorum")
	}
}

func TestGatedCallHonoursDeadline(t *testing.T) {
	h := startServer(t, 3, true)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := h.products.ListSerials(ctx, &vendorv1.Empty{})
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestOutOfRangeSerial(t *testing.T) {
	h := startServer(t, 0, false)
	ctx := context.Background()

	_, err := h.products.GetPrice(ctx, &vendorv1.GetPriceRequest{Serial: 7})
	assert.Equal(t, codes.OutOfRange, status.Code(err))

	_, err = h.offers.ConfirmOffer(ctx, &vendorv1.OfferRequest{Serial: -1, Price: 100})
	assert.Equal(t, codes.OutOfRange, status.Code(err))
}

func TestConfirmOfferBoundary(t *testing.T) {
	h := startServer(t, 0, false)
	ctx := context.Background()

	price, err := h.products.GetPrice(ctx, &vendorv1.GetPriceRequest{Serial: 2})
	require.NoError(t, err)

	cases := []struct {
		offer     int32
		confirmed bool
	}{
		{price.GetPrice() - 1, false},
		{price.GetPrice(), true},
		{price.GetPrice() + 1, true},
	}
	for _, tc := range cases {
		resp, err := h.offers.ConfirmOffer(ctx, &vendorv1.OfferRequest{Serial: 2, Price: tc.offer})
		require.NoError(t, err)
		assert.Equal(t, tc.confirmed, resp.GetConfirmed(), "offer %d", tc.offer)
	}
}

func TestCurrentProductAndSerials(t *testing.T) {
	h := startServer(t, 0, false)
	ctx := context.Background()

	serial, err := h.products.GetSerial(ctx, &vendorv1.Empty{})
	require.NoError(t, err)
	price, err := h.products.GetCurrentPrice(ctx, &vendorv1.Empty{})
	require.NoError(t, err)
	current := h.catalog.Current()
	assert.Equal(t, current.Serial, serial.GetSerial())
	assert.Equal(t, current.Price, price.GetPrice())

	serials, err := h.products.ListSerials(ctx, &vendorv1.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, serials.GetSerials())
}

func TestUnsubscribe(t *testing.T) {
	h := startServer(t, 2, true)
	ctx := context.Background()

	resp, err := h.subscription.Unsubscribe(ctx, &vendorv1.Empty{})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())
	assert.EqualValues(t, 0, resp.GetSubscribers(), "count never drops below zero")

	_, err = h.subscription.Subscribe(ctx, &vendorv1.Empty{})
	require.NoError(t, err)
	resp, err = h.subscription.Unsubscribe(ctx, &vendorv1.Empty{})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())
	assert.EqualValues(t, 0, resp.GetSubscribers())
}

func TestConcurrentSubscribeCountsAreConsistent(t *testing.T) {
	h := startServer(t, 5, true)

	const subscribers = 20
	responses := make(chan *vendorv1.SubscriptionResponse, subscribers)
	var wg sync.WaitGroup
	for range subscribers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := h.subscription.Subscribe(context.Background(), &vendorv1.Empty{})
			if assert.NoError(t, err) {
				responses <- resp
			}
		}()
	}
	wg.Wait()
	close(responses)

	successes := 0
	seen := make(map[int32]bool, subscribers)
	for resp := range responses {
		if resp.GetSuccess() {
			successes++
			assert.EqualValues(t, 5, resp.GetSubscribers())
		}
		assert.False(t, seen[resp.GetSubscribers()], "count %d reported twice", resp.GetSubscribers())
		seen[resp.GetSubscribers()] = true
	}
	assert.Equal(t, 1, successes)
	assert.Len(t, seen, subscribers)
}

func TestHealthFollowsQuorum(t *testing.T) {
	h := startServer(t, 1, true)
	ctx := context.Background()
	service := vendorv1.ProductService_ServiceDesc.ServiceName

	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	_, err = h.subscription.Subscribe(ctx, &vendorv1.Empty{})
	require.NoError(t, err)

	resp, err = h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	_, err = h.subscription.Unsubscribe(ctx, &vendorv1.Empty{})
	require.NoError(t, err)

	resp, err = h.health.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHealthServingWithoutGating(t *testing.T) {
	h := startServer(t, 3, false)

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestWatchPricesStreamsRotations(t *testing.T) {
	h := startServer(t, 0, false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := h.products.WatchPrices(ctx, &vendorv1.Empty{})
	require.NoError(t, err)

	initial := h.catalog.Snapshot()
	for range initial.Products {
		update, err := stream.Recv()
		require.NoError(t, err)
		assert.Equal(t, initial.Sequence, update.GetSequence())
	}

	require.Eventually(t, func() bool { return h.feed.Watchers() == 1 }, time.Second, 5*time.Millisecond)

	rotated := h.catalog.RotateAll(context.Background())
	h.feed.Publish(rotated)

	for _, product := range rotated.Products {
		update, err := stream.Recv()
		require.NoError(t, err)
		assert.Equal(t, rotated.Sequence, update.GetSequence())
		assert.Equal(t, product.Serial, update.GetSerial())
		assert.Equal(t, product.Price, update.GetPrice())
		assert.Equal(t, rotated.At.UnixMilli(), update.GetTimestamp())
	}
}
