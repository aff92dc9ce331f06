package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "calendar.v1.CalendarService"

// FullMethod returns the grpc path of a service method, e.g.
// "/calendar.v1.CalendarService/Login".
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

type CalendarServiceServer interface {
	Login(context.Context, *LoginRequest) (*TokenResponse, error)
	Refresh(context.Context, *RefreshRequest) (*TokenResponse, error)
	Logout(context.Context, *Empty) (*Empty, error)

	RegisterPerson(context.Context, *RegisterPersonRequest) (*PersonResponse, error)
	GetPerson(context.Context, *PersonRequest) (*PersonResponse, error)
	ListPersons(context.Context, *Empty) (*ListPersonsResponse, error)
	UpdatePerson(context.Context, *UpdatePersonRequest) (*PersonResponse, error)
	UpdatePassword(context.Context, *UpdatePasswordRequest) (*Empty, error)
	RenamePerson(context.Context, *RenamePersonRequest) (*PersonResponse, error)
	DeletePerson(context.Context, *PersonRequest) (*Empty, error)

	CreateAppointment(context.Context, *SaveAppointmentRequest) (*AppointmentResponse, error)
	GetAppointment(context.Context, *AppointmentRequest) (*AppointmentResponse, error)
	UpdateAppointment(context.Context, *SaveAppointmentRequest) (*AppointmentResponse, error)
	DeleteAppointment(context.Context, *AppointmentRequest) (*DeleteAppointmentResponse, error)
	ListAppointmentsOnDay(context.Context, *DayQuery) (*ListAppointmentsResponse, error)
	ListAppointmentsInRange(context.Context, *RangeQuery) (*ListAppointmentsResponse, error)
}

// UnimplementedCalendarServiceServer answers every method with
// codes.Unimplemented. Embed it to stay forward compatible.
type UnimplementedCalendarServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedCalendarServiceServer) Login(context.Context, *LoginRequest) (*TokenResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedCalendarServiceServer) Refresh(context.Context, *RefreshRequest) (*TokenResponse, error) {
	return nil, unimplemented("Refresh")
}
func (UnimplementedCalendarServiceServer) Logout(context.Context, *Empty) (*Empty, error) {
	return nil, unimplemented("Logout")
}
func (UnimplementedCalendarServiceServer) RegisterPerson(context.Context, *RegisterPersonRequest) (*PersonResponse, error) {
	return nil, unimplemented("RegisterPerson")
}
func (UnimplementedCalendarServiceServer) GetPerson(context.Context, *PersonRequest) (*PersonResponse, error) {
	return nil, unimplemented("GetPerson")
}
func (UnimplementedCalendarServiceServer) ListPersons(context.Context, *Empty) (*ListPersonsResponse, error) {
	return nil, unimplemented("ListPersons")
}
func (UnimplementedCalendarServiceServer) UpdatePerson(context.Context, *UpdatePersonRequest) (*PersonResponse, error) {
	return nil, unimplemented("UpdatePerson")
}
func (UnimplementedCalendarServiceServer) UpdatePassword(context.Context, *UpdatePasswordRequest) (*Empty, error) {
	return nil, unimplemented("UpdatePassword")
}
func (UnimplementedCalendarServiceServer) RenamePerson(context.Context, *RenamePersonRequest) (*PersonResponse, error) {
	return nil, unimplemented("RenamePerson")
}
func (UnimplementedCalendarServiceServer) DeletePerson(context.Context, *PersonRequest) (*Empty, error) {
	return nil, unimplemented("DeletePerson")
}
func (UnimplementedCalendarServiceServer) CreateAppointment(context.Context, *SaveAppointmentRequest) (*AppointmentResponse, error) {
	return nil, unimplemented("CreateAppointment")
}
func (UnimplementedCalendarServiceServer) GetAppointment(context.Context, *AppointmentRequest) (*AppointmentResponse, error) {
	return nil, unimplemented("GetAppointment")
}
func (UnimplementedCalendarServiceServer) UpdateAppointment(context.Context, *SaveAppointmentRequest) (*AppointmentResponse, error) {
	return nil, unimplemented("UpdateAppointment")
}
func (UnimplementedCalendarServiceServer) DeleteAppointment(context.Context, *AppointmentRequest) (*DeleteAppointmentResponse, error) {
	return nil, unimplemented("DeleteAppointment")
}
func (UnimplementedCalendarServiceServer) ListAppointmentsOnDay(context.Context, *DayQuery) (*ListAppointmentsResponse, error) {
	return nil, unimplemented("ListAppointmentsOnDay")
}
func (UnimplementedCalendarServiceServer) ListAppointmentsInRange(context.Context, *RangeQuery) (*ListAppointmentsResponse, error) {
	return nil, unimplemented("ListAppointmentsInRange")
}

// unary builds the method descriptor for one request/response call.
func unary[Req any, PReq interface {
	*Req
	Message
}, Resp Message](name string, call func(CalendarServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			handle := func(ctx context.Context, req any) (any, error) {
				out, err := call(srv.(CalendarServiceServer), ctx, req.(PReq))
				if err != nil {
					return nil, err
				}
				return out, nil
			}
			if interceptor == nil {
				return handle(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			return interceptor(ctx, in, info, handle)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalendarServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Login", CalendarServiceServer.Login),
		unary("Refresh", CalendarServiceServer.Refresh),
		unary("Logout", CalendarServiceServer.Logout),
		unary("RegisterPerson", CalendarServiceServer.RegisterPerson),
		unary("GetPerson", CalendarServiceServer.GetPerson),
		unary("ListPersons", CalendarServiceServer.ListPersons),
		unary("UpdatePerson", CalendarServiceServer.UpdatePerson),
		unary("UpdatePassword", CalendarServiceServer.UpdatePassword),
		unary("RenamePerson", CalendarServiceServer.RenamePerson),
		unary("DeletePerson", CalendarServiceServer.DeletePerson),
		unary("CreateAppointment", CalendarServiceServer.CreateAppointment),
		unary("GetAppointment", CalendarServiceServer.GetAppointment),
		unary("UpdateAppointment", CalendarServiceServer.UpdateAppointment),
		unary("DeleteAppointment", CalendarServiceServer.DeleteAppointment),
		unary("ListAppointmentsOnDay", CalendarServiceServer.ListAppointmentsOnDay),
		unary("ListAppointmentsInRange", CalendarServiceServer.ListAppointmentsInRange),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calendar/v1/calendar.proto",
}

func RegisterCalendarServiceServer(s grpc.ServiceRegistrar, srv CalendarServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
