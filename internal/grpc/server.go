package grpcserver

import (
	vendorv1 "product-vendor-go/gen/go/vendorpb/v1"
	"product-vendor-go/internal/negotiation"
	"product-vendor-go/internal/rotation"
	"product-vendor-go/internal/subscription"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

var serviceNames = []string{
	"",
	vendorv1.ProductService_ServiceDesc.ServiceName,
	vendorv1.OfferService_ServiceDesc.ServiceName,
	vendorv1.SubscriptionService_ServiceDesc.ServiceName,
}

// NewServer registers the vendor services, gRPC health and reflection. Health
// reports NOT_SERVING while gated reads are waiting for the quorum.
func NewServer(service *negotiation.Service, gate *subscription.Gate, feed *rotation.Feed, gateReads bool, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryLogging()),
		grpc.ChainStreamInterceptor(StreamLogging()),
	}, opts...)
	server := grpc.NewServer(opts...)

	vendorv1.RegisterProductServiceServer(server, &ProductServer{Service: service, Feed: feed})
	vendorv1.RegisterOfferServiceServer(server, &OfferServer{Service: service})
	vendorv1.RegisterSubscriptionServiceServer(server, &SubscriptionServer{Gate: gate})

	healthServer := health.NewServer()
	setServing(healthServer, !gateReads || gate.Ready())
	if gateReads {
		gate.OnChange(func(ready bool) { setServing(healthServer, ready) })
	}
	healthpb.RegisterHealthServer(server, healthServer)

	reflection.Register(server)

	return server
}

func setServing(healthServer *health.Server, ready bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ready {
		status = healthpb.HealthCheckResponse_SERVING
	}
	for _, name := range serviceNames {
		healthServer.SetServingStatus(name, status)
	}
}
