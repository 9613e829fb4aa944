package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// DateLayout はメッセージ上の日付形式です。
const DateLayout = "2006-01-02"

// Empty は引数または戻り値のないメソッドに使うメッセージです。
type Empty struct{}

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

func unaryMethod[S, Req, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	name := fullMethod(service, method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			impl := srv.(S)
			if interceptor == nil {
				return call(impl, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: name}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(impl, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(service, method), in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}
