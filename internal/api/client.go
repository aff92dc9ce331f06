package api

import (
	"context"

	"google.golang.org/grpc"
)

// Client calls the calendar service over cc, forcing Codec on every call.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any, PResp interface {
	*Resp
	Message
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (PResp, error) {
	out := PResp(new(Resp))
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, "Login", in, opts)
}

func (c *Client) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, "Refresh", in, opts)
}

func (c *Client) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "Logout", in, opts)
}

func (c *Client) RegisterPerson(ctx context.Context, in *RegisterPersonRequest, opts ...grpc.CallOption) (*PersonResponse, error) {
	return invoke[PersonResponse](ctx, c.cc, "RegisterPerson", in, opts)
}

func (c *Client) GetPerson(ctx context.Context, in *PersonRequest, opts ...grpc.CallOption) (*PersonResponse, error) {
	return invoke[PersonResponse](ctx, c.cc, "GetPerson", in, opts)
}

func (c *Client) ListPersons(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListPersonsResponse, error) {
	return invoke[ListPersonsResponse](ctx, c.cc, "ListPersons", in, opts)
}

func (c *Client) UpdatePerson(ctx context.Context, in *UpdatePersonRequest, opts ...grpc.CallOption) (*PersonResponse, error) {
	return invoke[PersonResponse](ctx, c.cc, "UpdatePerson", in, opts)
}

func (c *Client) UpdatePassword(ctx context.Context, in *UpdatePasswordRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "UpdatePassword", in, opts)
}

func (c *Client) RenamePerson(ctx context.Context, in *RenamePersonRequest, opts ...grpc.CallOption) (*PersonResponse, error) {
	return invoke[PersonResponse](ctx, c.cc, "RenamePerson", in, opts)
}

func (c *Client) DeletePerson(ctx context.Context, in *PersonRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeletePerson", in, opts)
}

func (c *Client) CreateAppointment(ctx context.Context, in *SaveAppointmentRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, "CreateAppointment", in, opts)
}

func (c *Client) GetAppointment(ctx context.Context, in *AppointmentRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, "GetAppointment", in, opts)
}

func (c *Client) UpdateAppointment(ctx context.Context, in *SaveAppointmentRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, "UpdateAppointment", in, opts)
}

func (c *Client) DeleteAppointment(ctx context.Context, in *AppointmentRequest, opts ...grpc.CallOption) (*DeleteAppointmentResponse, error) {
	return invoke[DeleteAppointmentResponse](ctx, c.cc, "DeleteAppointment", in, opts)
}

func (c *Client) ListAppointmentsOnDay(ctx context.Context, in *DayQuery, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, "ListAppointmentsOnDay", in, opts)
}

func (c *Client) ListAppointmentsInRange(ctx context.Context, in *RangeQuery, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, "ListAppointmentsInRange", in, opts)
}
