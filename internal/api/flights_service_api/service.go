package flights_service_api

import (
	"context"

	"github.com/Domenick1991/seatbooking/internal/api/rpc"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"google.golang.org/grpc"
)

const serviceName = "seatbooking.v1.FlightsService"

type FlightsServiceServer interface {
	ListFlights(context.Context, *Empty) (*ListFlightsResponse, error)
	GetFlight(context.Context, *GetFlightRequest) (*Flight, error)
	GetSeatMap(context.Context, *GetSeatMapRequest) (*booking.SeatMapView, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*FlightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListFlights", Handler: rpc.Unary("/"+serviceName+"/ListFlights", FlightsServiceServer.ListFlights)},
		{MethodName: "GetFlight", Handler: rpc.Unary("/"+serviceName+"/GetFlight", FlightsServiceServer.GetFlight)},
		{MethodName: "GetSeatMap", Handler: rpc.Unary("/"+serviceName+"/GetSeatMap", FlightsServiceServer.GetSeatMap)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterFlightsServiceServer(s grpc.ServiceRegistrar, srv FlightsServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListFlights(ctx context.Context, opts ...grpc.CallOption) (*ListFlightsResponse, error) {
	return rpc.Invoke[ListFlightsResponse](ctx, c.cc, "/"+serviceName+"/ListFlights", &Empty{}, opts...)
}

func (c *Client) GetFlight(ctx context.Context, in *GetFlightRequest, opts ...grpc.CallOption) (*Flight, error) {
	return rpc.Invoke[Flight](ctx, c.cc, "/"+serviceName+"/GetFlight", in, opts...)
}

func (c *Client) GetSeatMap(ctx context.Context, in *GetSeatMapRequest, opts ...grpc.CallOption) (*booking.SeatMapView, error) {
	return rpc.Invoke[booking.SeatMapView](ctx, c.cc, "/"+serviceName+"/GetSeatMap", in, opts...)
}
