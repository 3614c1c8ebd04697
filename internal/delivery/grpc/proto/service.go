package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "storefront.StorefrontService"

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// StorefrontServiceClient is the client API for StorefrontService.
type StorefrontServiceClient interface {
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error)
	Unlock(ctx context.Context, in *UnlockRequest, opts ...grpc.CallOption) (*UnlockResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	GetCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CartResponse, error)
	AddItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*CartResponse, error)
	UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*CartResponse, error)
	RemoveItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*CartResponse, error)
	OpenCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CheckoutResponse, error)
	SetShipping(ctx context.Context, in *SetShippingRequest, opts ...grpc.CallOption) (*CheckoutResponse, error)
	SetPayment(ctx context.Context, in *SetPaymentRequest, opts ...grpc.CallOption) (*CheckoutResponse, error)
	NextStep(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CheckoutResponse, error)
	PreviousStep(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CheckoutResponse, error)
	GoToStep(ctx context.Context, in *GoToStepRequest, opts ...grpc.CallOption) (*CheckoutResponse, error)
	BeginConfiguration(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ConfiguratorResponse, error)
	UpdateConfiguration(ctx context.Context, in *UpdateConfigurationRequest, opts ...grpc.CallOption) (*ConfiguratorResponse, error)
	FinalizeConfiguration(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CartResponse, error)
	Chat(ctx context.Context, in *ChatRequest, opts ...grpc.CallOption) (*ChatResponse, error)
}

type storefrontServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStorefrontServiceClient(cc grpc.ClientConnInterface) StorefrontServiceClient {
	return &storefrontServiceClient{cc}
}

func (c *storefrontServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...)
}

func (c *storefrontServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	out := new(StartSessionResponse)
	if err := c.invoke(ctx, "StartSession", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) Unlock(ctx context.Context, in *UnlockRequest, opts ...grpc.CallOption) (*UnlockResponse, error) {
	out := new(UnlockResponse)
	if err := c.invoke(ctx, "Unlock", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	out := new(ListProductsResponse)
	if err := c.invoke(ctx, "ListProducts", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) GetCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	out := new(CartResponse)
	if err := c.invoke(ctx, "GetCart", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) AddItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	out := new(CartResponse)
	if err := c.invoke(ctx, "AddItem", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	out := new(CartResponse)
	if err := c.invoke(ctx, "UpdateQuantity", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) RemoveItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	out := new(CartResponse)
	if err := c.invoke(ctx, "RemoveItem", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) OpenCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	out := new(CheckoutResponse)
	if err := c.invoke(ctx, "OpenCart", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) SetShipping(ctx context.Context, in *SetShippingRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	out := new(CheckoutResponse)
	if err := c.invoke(ctx, "SetShipping", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) SetPayment(ctx context.Context, in *SetPaymentRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	out := new(CheckoutResponse)
	if err := c.invoke(ctx, "SetPayment", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) NextStep(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	out := new(CheckoutResponse)
	if err := c.invoke(ctx, "NextStep", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) PreviousStep(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	out := new(CheckoutResponse)
	if err := c.invoke(ctx, "PreviousStep", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) GoToStep(ctx context.Context, in *GoToStepRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	out := new(CheckoutResponse)
	if err := c.invoke(ctx, "GoToStep", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) BeginConfiguration(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ConfiguratorResponse, error) {
	out := new(ConfiguratorResponse)
	if err := c.invoke(ctx, "BeginConfiguration", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) UpdateConfiguration(ctx context.Context, in *UpdateConfigurationRequest, opts ...grpc.CallOption) (*ConfiguratorResponse, error) {
	out := new(ConfiguratorResponse)
	if err := c.invoke(ctx, "UpdateConfiguration", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) FinalizeConfiguration(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	out := new(CartResponse)
	if err := c.invoke(ctx, "FinalizeConfiguration", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) Chat(ctx context.Context, in *ChatRequest, opts ...grpc.CallOption) (*ChatResponse, error) {
	out := new(ChatResponse)
	if err := c.invoke(ctx, "Chat", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// StorefrontServiceServer is the server API for StorefrontService.
type StorefrontServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error)
	Unlock(context.Context, *UnlockRequest) (*UnlockResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetCart(context.Context, *SessionRequest) (*CartResponse, error)
	AddItem(context.Context, *ItemRequest) (*CartResponse, error)
	UpdateQuantity(context.Context, *UpdateQuantityRequest) (*CartResponse, error)
	RemoveItem(context.Context, *ItemRequest) (*CartResponse, error)
	OpenCart(context.Context, *SessionRequest) (*CheckoutResponse, error)
	SetShipping(context.Context, *SetShippingRequest) (*CheckoutResponse, error)
	SetPayment(context.Context, *SetPaymentRequest) (*CheckoutResponse, error)
	NextStep(context.Context, *SessionRequest) (*CheckoutResponse, error)
	PreviousStep(context.Context, *SessionRequest) (*CheckoutResponse, error)
	GoToStep(context.Context, *GoToStepRequest) (*CheckoutResponse, error)
	BeginConfiguration(context.Context, *ItemRequest) (*ConfiguratorResponse, error)
	UpdateConfiguration(context.Context, *UpdateConfigurationRequest) (*ConfiguratorResponse, error)
	FinalizeConfiguration(context.Context, *SessionRequest) (*CartResponse, error)
	Chat(context.Context, *ChatRequest) (*ChatResponse, error)
}

// UnimplementedStorefrontServiceServer can be embedded for forward
// compatible implementations.
type UnimplementedStorefrontServiceServer struct{}

func (UnimplementedStorefrontServiceServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error) {
	return nil, errUnimplemented("StartSession")
}
func (UnimplementedStorefrontServiceServer) Unlock(context.Context, *UnlockRequest) (*UnlockResponse, error) {
	return nil, errUnimplemented("Unlock")
}
func (UnimplementedStorefrontServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, errUnimplemented("ListProducts")
}
func (UnimplementedStorefrontServiceServer) GetCart(context.Context, *SessionRequest) (*CartResponse, error) {
	return nil, errUnimplemented("GetCart")
}
func (UnimplementedStorefrontServiceServer) AddItem(context.Context, *ItemRequest) (*CartResponse, error) {
	return nil, errUnimplemented("AddItem")
}
func (UnimplementedStorefrontServiceServer) UpdateQuantity(context.Context, *UpdateQuantityRequest) (*CartResponse, error) {
	return nil, errUnimplemented("UpdateQuantity")
}
func (UnimplementedStorefrontServiceServer) RemoveItem(context.Context, *ItemRequest) (*CartResponse, error) {
	return nil, errUnimplemented("RemoveItem")
}
func (UnimplementedStorefrontServiceServer) OpenCart(context.Context, *SessionRequest) (*CheckoutResponse, error) {
	return nil, errUnimplemented("OpenCart")
}
func (UnimplementedStorefrontServiceServer) SetShipping(context.Context, *SetShippingRequest) (*CheckoutResponse, error) {
	return nil, errUnimplemented("SetShipping")
}
func (UnimplementedStorefrontServiceServer) SetPayment(context.Context, *SetPaymentRequest) (*CheckoutResponse, error) {
	return nil, errUnimplemented("SetPayment")
}
func (UnimplementedStorefrontServiceServer) NextStep(context.Context, *SessionRequest) (*CheckoutResponse, error) {
	return nil, errUnimplemented("NextStep")
}
func (UnimplementedStorefrontServiceServer) PreviousStep(context.Context, *SessionRequest) (*CheckoutResponse, error) {
	return nil, errUnimplemented("PreviousStep")
}
func (UnimplementedStorefrontServiceServer) GoToStep(context.Context, *GoToStepRequest) (*CheckoutResponse, error) {
	return nil, errUnimplemented("GoToStep")
}
func (UnimplementedStorefrontServiceServer) BeginConfiguration(context.Context, *ItemRequest) (*ConfiguratorResponse, error) {
	return nil, errUnimplemented("BeginConfiguration")
}
func (UnimplementedStorefrontServiceServer) UpdateConfiguration(context.Context, *UpdateConfigurationRequest) (*ConfiguratorResponse, error) {
	return nil, errUnimplemented("UpdateConfiguration")
}
func (UnimplementedStorefrontServiceServer) FinalizeConfiguration(context.Context, *SessionRequest) (*CartResponse, error) {
	return nil, errUnimplemented("FinalizeConfiguration")
}
func (UnimplementedStorefrontServiceServer) Chat(context.Context, *ChatRequest) (*ChatResponse, error) {
	return nil, errUnimplemented("Chat")
}

func RegisterStorefrontServiceServer(s grpc.ServiceRegistrar, srv StorefrontServiceServer) {
	s.RegisterService(&StorefrontService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](
	name string,
	call func(StorefrontServiceServer, context.Context, *Req) (*Resp, error),
) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StorefrontServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + serviceName + "/" + name,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(StorefrontServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StorefrontService_ServiceDesc is the grpc.ServiceDesc for
// StorefrontService. It is maintained by hand alongside storefront.proto.
var StorefrontService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*StorefrontServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartSession", Handler: unaryHandler("StartSession", StorefrontServiceServer.StartSession)},
		{MethodName: "Unlock", Handler: unaryHandler("Unlock", StorefrontServiceServer.Unlock)},
		{MethodName: "ListProducts", Handler: unaryHandler("ListProducts", StorefrontServiceServer.ListProducts)},
		{MethodName: "GetCart", Handler: unaryHandler("GetCart", StorefrontServiceServer.GetCart)},
		{MethodName: "AddItem", Handler: unaryHandler("AddItem", StorefrontServiceServer.AddItem)},
		{MethodName: "UpdateQuantity", Handler: unaryHandler("UpdateQuantity", StorefrontServiceServer.UpdateQuantity)},
		{MethodName: "RemoveItem", Handler: unaryHandler("RemoveItem", StorefrontServiceServer.RemoveItem)},
		{MethodName: "OpenCart", Handler: unaryHandler("OpenCart", StorefrontServiceServer.OpenCart)},
		{MethodName: "SetShipping", Handler: unaryHandler("SetShipping", StorefrontServiceServer.SetShipping)},
		{MethodName: "SetPayment", Handler: unaryHandler("SetPayment", StorefrontServiceServer.SetPayment)},
		{MethodName: "NextStep", Handler: unaryHandler("NextStep", StorefrontServiceServer.NextStep)},
		{MethodName: "PreviousStep", Handler: unaryHandler("PreviousStep", StorefrontServiceServer.PreviousStep)},
		{MethodName: "GoToStep", Handler: unaryHandler("GoToStep", StorefrontServiceServer.GoToStep)},
		{MethodName: "BeginConfiguration", Handler: unaryHandler("BeginConfiguration", StorefrontServiceServer.BeginConfiguration)},
		{MethodName: "UpdateConfiguration", Handler: unaryHandler("UpdateConfiguration", StorefrontServiceServer.UpdateConfiguration)},
		{MethodName: "FinalizeConfiguration", Handler: unaryHandler("FinalizeConfiguration", StorefrontServiceServer.FinalizeConfiguration)},
		{MethodName: "Chat", Handler: unaryHandler("Chat", StorefrontServiceServer.Chat)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront.proto",
}
