package bookings_service_api

import (
	"context"

	"github.com/Domenick1991/seatbooking/internal/api/rpc"
	"google.golang.org/grpc"
)

const serviceName = "seatbooking.v1.ReservationService"

type ReservationServiceServer interface {
	GetOccupiedSeats(context.Context, *OccupiedSeatsRequest) (*OccupiedSeatsResponse, error)
	ValidateSeats(context.Context, *ValidateSeatsRequest) (*ValidateSeatsResponse, error)
	Reserve(context.Context, *ReserveRequest) (*Booking, error)
	Cancel(context.Context, *BookingIDRequest) (*Booking, error)
	GetBooking(context.Context, *BookingIDRequest) (*Booking, error)
	ListUserBookings(context.Context, *ListUserBookingsRequest) (*ListBookingsResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ReservationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetOccupiedSeats", Handler: rpc.Unary("/"+serviceName+"/GetOccupiedSeats", ReservationServiceServer.GetOccupiedSeats)},
		{MethodName: "ValidateSeats", Handler: rpc.Unary("/"+serviceName+"/ValidateSeats", ReservationServiceServer.ValidateSeats)},
		{MethodName: "Reserve", Handler: rpc.Unary("/"+serviceName+"/Reserve", ReservationServiceServer.Reserve)},
		{MethodName: "Cancel", Handler: rpc.Unary("/"+serviceName+"/Cancel", ReservationServiceServer.Cancel)},
		{MethodName: "GetBooking", Handler: rpc.Unary("/"+serviceName+"/GetBooking", ReservationServiceServer.GetBooking)},
		{MethodName: "ListUserBookings", Handler: rpc.Unary("/"+serviceName+"/ListUserBookings", ReservationServiceServer.ListUserBookings)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterReservationServiceServer(s grpc.ServiceRegistrar, srv ReservationServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client is a ReservationService client speaking the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) GetOccupiedSeats(ctx context.Context, in *OccupiedSeatsRequest, opts ...grpc.CallOption) (*OccupiedSeatsResponse, error) {
	return rpc.Invoke[OccupiedSeatsResponse](ctx, c.cc, "/"+serviceName+"/GetOccupiedSeats", in, opts...)
}

func (c *Client) ValidateSeats(ctx context.Context, in *ValidateSeatsRequest, opts ...grpc.CallOption) (*ValidateSeatsResponse, error) {
	return rpc.Invoke[ValidateSeatsResponse](ctx, c.cc, "/"+serviceName+"/ValidateSeats", in, opts...)
}

func (c *Client) Reserve(ctx context.Context, in *ReserveRequest, opts ...grpc.CallOption) (*Booking, error) {
	return rpc.Invoke[Booking](ctx, c.cc, "/"+serviceName+"/Reserve", in, opts...)
}

func (c *Client) Cancel(ctx context.Context, in *BookingIDRequest, opts ...grpc.CallOption) (*Booking, error) {
	return rpc.Invoke[Booking](ctx, c.cc, "/"+serviceName+"/Cancel", in, opts...)
}

func (c *Client) GetBooking(ctx context.Context, in *BookingIDRequest, opts ...grpc.CallOption) (*Booking, error) {
	return rpc.Invoke[Booking](ctx, c.cc, "/"+serviceName+"/GetBooking", in, opts...)
}

func (c *Client) ListUserBookings(ctx context.Context, in *ListUserBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error) {
	return rpc.Invoke[ListBookingsResponse](ctx, c.cc, "/"+serviceName+"/ListUserBookings", in, opts...)
}
