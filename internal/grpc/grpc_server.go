package grpcserver

import (
	"context"

	vendorv1 "product-vendor-go/gen/go/vendorpb/v1"
	"product-vendor-go/internal/models"
	"product-vendor-go/internal/negotiation"
	"product-vendor-go/internal/rotation"
	"product-vendor-go/internal/subscription"

	log "github.com/sirupsen/logrus"
)

const watchBuffer = 16

type ProductServer struct {
	vendorv1.UnimplementedProductServiceServer
	Service *negotiation.Service
	Feed    *rotation.Feed
}

func (server *ProductServer) GetPrice(ctx context.Context, req *vendorv1.GetPriceRequest) (*vendorv1.PriceResponse, error) {
	price, err := server.Service.GetPrice(ctx, req.GetSerial())
	if err != nil {
		return nil, toStatus(err)
	}

	return &vendorv1.PriceResponse{Price: price}, nil
}

func (server *ProductServer) GetCurrentPrice(ctx context.Context, _ *vendorv1.Empty) (*vendorv1.PriceResponse, error) {
	price, err := server.Service.CurrentPrice(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &vendorv1.PriceResponse{Price: price}, nil
}

func (server *ProductServer) GetSerial(ctx context.Context, _ *vendorv1.Empty) (*vendorv1.SerialResponse, error) {
	serial, err := server.Service.CurrentSerial(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &vendorv1.SerialResponse{Serial: serial}, nil
}

func (server *ProductServer) ListSerials(ctx context.Context, _ *vendorv1.Empty) (*vendorv1.ListSerialsResponse, error) {
	serials, err := server.Service.ListSerials(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &vendorv1.ListSerialsResponse{Serials: serials}, nil
}

// WatchPrices sends the current catalog, then every product of each later
// rotation, until the client goes away.
func (server *ProductServer) WatchPrices(_ *vendorv1.Empty, stream vendorv1.ProductService_WatchPricesServer) error {
	ctx := stream.Context()

	updates, stop := server.Feed.Watch(watchBuffer)
	defer stop()

	snapshot, err := server.Service.Snapshot(ctx)
	if err != nil {
		return toStatus(err)
	}

	log.Info("[WatchPrices] Client connected")
	if err := sendRotation(stream, snapshot); err != nil {
		log.WithError(err).Warn("[WatchPrices] Send failed")
		return err
	}

	last := snapshot.Sequence
	for {
		select {
		case <-ctx.Done():
			log.Info("[WatchPrices] Client disconnected")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Sequence <= last {
				continue
			}
			last = update.Sequence

			if err := sendRotation(stream, update); err != nil {
				log.WithError(err).Warn("[WatchPrices] Send failed")
				return err
			}
		}
	}
}

func sendRotation(stream vendorv1.ProductService_WatchPricesServer, rotation models.Rotation) error {
	for _, product := range rotation.Products {
		err := stream.Send(&vendorv1.PriceUpdate{
			Serial:    product.Serial,
			Price:     product.Price,
			Sequence:  rotation.Sequence,
			Timestamp: rotation.At.UnixMilli(),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

type OfferServer struct {
	vendorv1.UnimplementedOfferServiceServer
	Service *negotiation.Service
}

func (server *OfferServer) ConfirmOffer(ctx context.Context, req *vendorv1.OfferRequest) (*vendorv1.OfferResponse, error) {
	confirmed, err := server.Service.ConfirmOffer(ctx, models.Offer{Serial: req.GetSerial(), Price: req.GetPrice()})
	if err != nil {
		return nil, toStatus(err)
	}

	return &vendorv1.OfferResponse{Confirmed: confirmed}, nil
}

type SubscriptionServer struct {
	vendorv1.UnimplementedSubscriptionServiceServer
	Gate *subscription.Gate
}

// Subscribe reports success only for the subscriber that completes the
// quorum.
func (server *SubscriptionServer) Subscribe(_ context.Context, _ *vendorv1.Empty) (*vendorv1.SubscriptionResponse, error) {
	reached, count := server.Gate.Subscribe()

	return &vendorv1.SubscriptionResponse{Success: reached, Subscribers: int32(count)}, nil
}

func (server *SubscriptionServer) Unsubscribe(_ context.Context, _ *vendorv1.Empty) (*vendorv1.SubscriptionResponse, error) {
	ok, count := server.Gate.Unsubscribe()

	return &vendorv1.SubscriptionResponse{Success: ok, Subscribers: int32(count)}, nil
}
