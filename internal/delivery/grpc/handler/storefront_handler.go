package handler

import (
	"context"
	"errors"

	"storefront-service/internal/delivery/grpc/proto"
	"storefront-service/internal/domain/entities"
	"storefront-service/internal/usecase"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type StorefrontHandler struct {
	proto.UnimplementedStorefrontServiceServer
	sessions *usecase.SessionUseCase
}

func NewStorefrontHandler(sessions *usecase.SessionUseCase) *StorefrontHandler {
	return &StorefrontHandler{
		sessions: sessions,
	}
}

func (h *StorefrontHandler) StartSession(ctx context.Context, req *proto.StartSessionRequest) (*proto.StartSessionResponse, error) {
	s := h.sessions.StartSession()
	return &proto.StartSessionResponse{
		SessionId:   s.ID,
		GateEnabled: h.sessions.GateEnabled(),
	}, nil
}

func (h *StorefrontHandler) Unlock(ctx context.Context, req *proto.UnlockRequest) (*proto.UnlockResponse, error) {
	if err := h.sessions.Unlock(ctx, req.SessionId, req.Phrase); err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.UnlockResponse{Unlocked: true}, nil
}

func (h *StorefrontHandler) ListProducts(ctx context.Context, req *proto.ListProductsRequest) (*proto.ListProductsResponse, error) {
	var criteria entities.FilterCriteria
	if req.Filter != nil {
		criteria = entities.FilterCriteria{
			Shape:    req.Filter.Shape,
			Clarity:  req.Filter.Clarity,
			Color:    req.Filter.Color,
			Type:     req.Filter.Type,
			Query:    req.Filter.Query,
			MaxPrice: req.Filter.MaxPrice,
		}
	}

	products, minPrice, maxPrice, err := h.sessions.Browse(req.SessionId, criteria)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}

	protoProducts := make([]*proto.Product, len(products))
	for i := range products {
		protoProducts[i] = productToProto(products[i])
	}

	return &proto.ListProductsResponse{
		Products: protoProducts,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}, nil
}

func (h *StorefrontHandler) GetCart(ctx context.Context, req *proto.SessionRequest) (*proto.CartResponse, error) {
	summary, err := h.sessions.GetCart(req.SessionId)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CartResponse{Cart: cartToProto(summary)}, nil
}

func (h *StorefrontHandler) AddItem(ctx context.Context, req *proto.ItemRequest) (*proto.CartResponse, error) {
	summary, err := h.sessions.AddToCart(req.SessionId, req.ProductId)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CartResponse{Cart: cartToProto(summary)}, nil
}

func (h *StorefrontHandler) UpdateQuantity(ctx context.Context, req *proto.UpdateQuantityRequest) (*proto.CartResponse, error) {
	summary, err := h.sessions.SetQuantity(req.SessionId, req.ProductId, int(req.Quantity))
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CartResponse{Cart: cartToProto(summary)}, nil
}

func (h *StorefrontHandler) RemoveItem(ctx context.Context, req *proto.ItemRequest) (*proto.CartResponse, error) {
	summary, err := h.sessions.RemoveFromCart(req.SessionId, req.ProductId)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CartResponse{Cart: cartToProto(summary)}, nil
}

func (h *StorefrontHandler) OpenCart(ctx context.Context, req *proto.SessionRequest) (*proto.CheckoutResponse, error) {
	view, err := h.sessions.OpenCart(req.SessionId)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CheckoutResponse{Checkout: checkoutToProto(view)}, nil
}

func (h *StorefrontHandler) SetShipping(ctx context.Context, req *proto.SetShippingRequest) (*proto.CheckoutResponse, error) {
	var shipping entities.ShippingDetails
	if req.Shipping != nil {
		shipping = entities.ShippingDetails{
			FirstName:  req.Shipping.FirstName,
			LastName:   req.Shipping.LastName,
			Email:      req.Shipping.Email,
			Phone:      req.Shipping.Phone,
			Street:     req.Shipping.Street,
			PostalCode: req.Shipping.PostalCode,
			City:       req.Shipping.City,
			Country:    req.Shipping.Country,
		}
	}

	view, err := h.sessions.SetShipping(req.SessionId, shipping)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CheckoutResponse{Checkout: checkoutToProto(view)}, nil
}

func (h *StorefrontHandler) SetPayment(ctx context.Context, req *proto.SetPaymentRequest) (*proto.CheckoutResponse, error) {
	var payment entities.PaymentDetails
	if req.Payment != nil {
		payment = entities.PaymentDetails{
			Method:     entities.PaymentMethod(req.Payment.Method),
			CardName:   req.Payment.CardHolder,
			CardNumber: req.Payment.CardNumber,
			Expiry:     req.Payment.Expiry,
			CVC:        req.Payment.Cvc,
		}
	}

	view, err := h.sessions.SetPayment(req.SessionId, payment)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CheckoutResponse{Checkout: checkoutToProto(view)}, nil
}

func (h *StorefrontHandler) NextStep(ctx context.Context, req *proto.SessionRequest) (*proto.CheckoutResponse, error) {
	view, err := h.sessions.NextStep(ctx, req.SessionId)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CheckoutResponse{Checkout: checkoutToProto(view)}, nil
}

func (h *StorefrontHandler) PreviousStep(ctx context.Context, req *proto.SessionRequest) (*proto.CheckoutResponse, error) {
	view, err := h.sessions.PreviousStep(req.SessionId)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CheckoutResponse{Checkout: checkoutToProto(view)}, nil
}

func (h *StorefrontHandler) GoToStep(ctx context.Context, req *proto.GoToStepRequest) (*proto.CheckoutResponse, error) {
	view, err := h.sessions.GoToStep(req.SessionId, entities.CheckoutStep(req.Step), req.Forced)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CheckoutResponse{Checkout: checkoutToProto(view)}, nil
}

func (h *StorefrontHandler) BeginConfiguration(ctx context.Context, req *proto.ItemRequest) (*proto.ConfiguratorResponse, error) {
	view, err := h.sessions.BeginConfiguration(req.SessionId, req.ProductId)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.ConfiguratorResponse{Configurator: configuratorToProto(view)}, nil
}

func (h *StorefrontHandler) UpdateConfiguration(ctx context.Context, req *proto.UpdateConfigurationRequest) (*proto.ConfiguratorResponse, error) {
	update := usecase.ConfigurationUpdate{
		Mode:    entities.ConfiguratorMode(req.Mode),
		Setting: req.Setting,
		Metal:   req.Metal,
		Size:    req.Size,
		Backing: req.Backing,
	}

	view, err := h.sessions.UpdateConfiguration(req.SessionId, update)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.ConfiguratorResponse{Configurator: configuratorToProto(view)}, nil
}

func (h *StorefrontHandler) FinalizeConfiguration(ctx context.Context, req *proto.SessionRequest) (*proto.CartResponse, error) {
	summary, err := h.sessions.FinalizeConfiguration(req.SessionId)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}
	return &proto.CartResponse{Cart: cartToProto(summary)}, nil
}

func (h *StorefrontHandler) Chat(ctx context.Context, req *proto.ChatRequest) (*proto.ChatResponse, error) {
	reply, err := h.sessions.Chat(ctx, req.SessionId, req.OptionId, req.Text)
	if err != nil {
		return nil, h.mapErrorToStatus(err)
	}

	options := make([]*proto.QuickReply, len(reply.Options))
	for i, opt := range reply.Options {
		options[i] = &proto.QuickReply{Id: opt.ID, Label: opt.Label}
	}

	return &proto.ChatResponse{
		Text:    reply.Text,
		Options: options,
		State:   string(reply.Next),
	}, nil
}

func productToProto(p entities.Product) *proto.Product {
	out := &proto.Product{
		Id:         p.ID,
		Name:       p.Name,
		Type:       string(p.Type),
		Shape:      p.Shape,
		Clarity:    p.Clarity,
		Color:      p.Color,
		Carat:      p.Carat,
		Price:      p.Price,
		Image:      p.Image,
		TripleEx:   p.TripleEx,
		BestSeller: p.BestSeller,
	}
	if p.Config != nil {
		out.Config = &proto.JewelleryConfig{
			Mode:          string(p.Config.Mode),
			Setting:       p.Config.Setting,
			Metal:         p.Config.Metal,
			Size:          p.Config.Size,
			Backing:       p.Config.Backing,
			BaseProductId: p.Config.BaseProductID,
		}
	}
	return out
}

func cartToProto(summary usecase.CartSummary) *proto.CartSummary {
	lines := make([]*proto.CartLine, len(summary.Lines))
	for i, line := range summary.Lines {
		lines[i] = &proto.CartLine{
			Product:  productToProto(line.Product),
			Quantity: int32(line.Quantity),
		}
	}

	return &proto.CartSummary{
		Lines:    lines,
		Count:    int32(summary.Count),
		Subtotal: summary.Subtotal,
		Shipping: summary.Shipping,
		Total:    summary.Total,
	}
}

func checkoutToProto(view usecase.CheckoutView) *proto.CheckoutView {
	return &proto.CheckoutView{
		Step:        int32(view.Step),
		StepName:    view.Step.String(),
		OrderPlaced: view.OrderPlaced,
		OrderId:     view.OrderID,
	}
}

func configuratorToProto(view usecase.ConfiguratorView) *proto.ConfiguratorView {
	return &proto.ConfiguratorView{
		BaseProductId:  view.BaseProductID,
		Mode:           string(view.Mode),
		Setting:        view.Setting,
		Metal:          view.Metal,
		Size:           view.Size,
		Backing:        view.Backing,
		SettingOptions: view.SettingOptions,
		EstimatedPrice: view.EstimatedPrice,
	}
}

func (h *StorefrontHandler) mapErrorToStatus(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, usecase.ErrSessionLocked),
		errors.Is(err, usecase.ErrAccessDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, entities.ErrShippingIncomplete),
		errors.Is(err, entities.ErrCardIncomplete),
		errors.Is(err, entities.ErrCheckoutCompleted),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrNoConfiguration):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, entities.ErrForwardJump),
		errors.Is(err, entities.ErrInvalidStep),
		errors.Is(err, entities.ErrNotLooseStone),
		errors.Is(err, entities.ErrInvalidMode),
		errors.Is(err, entities.ErrUnknownSetting):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
