// Package portrait exposes the portrait API over gRPC. Messages travel as
// google.protobuf.Struct values holding the api package's JSON shapes.
package portrait

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "crewportrait.portrait.v1.PortraitService"

// Method names.
const (
	MethodGenerateCharacter = "GenerateCharacter"
	MethodDefaultCharacter  = "DefaultCharacter"
	MethodValidateCharacter = "ValidateCharacter"
	MethodResolveCharacter  = "ResolveCharacter"
	MethodListLayerOptions  = "ListLayerOptions"
	MethodGetPostcardLayout = "GetPostcardLayout"
	MethodGenerateCrew      = "GenerateCrew"
	MethodGetCrew           = "GetCrew"
	MethodListCrewMembers   = "ListCrewMembers"
)

// localeHeader carries the caller's preferred locale for error messages.
const localeHeader = "accept-language"

// ServiceDesc describes PortraitService for grpc.Server.RegisterService.
// The registered implementation must satisfy api.API.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*api.API)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodGenerateCharacter, api.API.GenerateCharacter),
		unaryMethod(MethodDefaultCharacter, api.API.DefaultCharacter),
		unaryMethod(MethodValidateCharacter, api.API.ValidateCharacter),
		unaryMethod(MethodResolveCharacter, api.API.ResolveCharacter),
		unaryMethod(MethodListLayerOptions, api.API.ListLayerOptions),
		unaryMethod(MethodGetPostcardLayout, api.API.GetPostcardLayout),
		unaryMethod(MethodGenerateCrew, api.API.GenerateCrew),
		unaryMethod(MethodGetCrew, api.API.GetCrew),
		unaryMethod(MethodListCrewMembers, api.API.ListCrewMembers),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "crewportrait/portrait/v1/portrait.proto",
}

// Register installs the portrait service on a gRPC server.
func Register(server grpc.ServiceRegistrar, impl api.API) {
	server.RegisterService(&ServiceDesc, impl)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unaryMethod[Req, Resp any](name string, call func(api.API, context.Context, Req) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			impl := srv.(api.API)
			handler := func(ctx context.Context, req any) (any, error) {
				return serve(ctx, impl, req.(*structpb.Struct), call)
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func serve[Req, Resp any](ctx context.Context, impl api.API, in *structpb.Struct, call func(api.API, context.Context, Req) (Resp, error)) (*structpb.Struct, error) {
	req, err := fromStruct[Req](in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	resp, err := call(impl, ctx, req)
	if err != nil {
		return nil, apperrors.HandleError(err, localeFromContext(ctx))
	}
	out, err := toStruct(resp)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func localeFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return apperrors.DefaultLocale
	}
	for _, value := range md.Get(localeHeader) {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return apperrors.DefaultLocale
}
