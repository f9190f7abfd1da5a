package wave

import (
	"google.golang.org/grpc"

	"github.com/oggyb/waveos/internal/app"
	pb "github.com/oggyb/waveos/internal/proto/wave"
)

// Registrar ties the Wave service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Wave service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Wave service implementation to the gRPC server
func (r *Registrar) Register(s grpc.ServiceRegistrar) {
	pb.RegisterWaveServiceServer(s, NewWaveService(r.appCtx))
}
