package server

import "google.golang.org/grpc"

// Registrar is a common interface for all gRPC service registrars.
// It takes grpc.ServiceRegistrar so tests can register onto any server.
type Registrar interface {
	Register(s grpc.ServiceRegistrar)
}
