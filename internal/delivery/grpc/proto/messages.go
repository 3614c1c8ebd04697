// Package proto holds the wire types for StorefrontService. The structs
// are maintained by hand against storefront.proto and use the legacy
// struct-tag message form, which the protobuf runtime still serves
// through its v1 compatibility layer.
package proto

import "fmt"

type StartSessionRequest struct{}

func (m *StartSessionRequest) Reset()         { *m = StartSessionRequest{} }
func (m *StartSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StartSessionRequest) ProtoMessage()    {}

type StartSessionResponse struct {
	SessionId   string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	GateEnabled bool   `protobuf:"varint,2,opt,name=gate_enabled,json=gateEnabled,proto3" json:"gate_enabled,omitempty"`
}

func (m *StartSessionResponse) Reset()         { *m = StartSessionResponse{} }
func (m *StartSessionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StartSessionResponse) ProtoMessage()    {}

type UnlockRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Phrase    string `protobuf:"bytes,2,opt,name=phrase,proto3" json:"phrase,omitempty"`
}

func (m *UnlockRequest) Reset()         { *m = UnlockRequest{} }
func (m *UnlockRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UnlockRequest) ProtoMessage()    {}

type UnlockResponse struct {
	Unlocked bool `protobuf:"varint,1,opt,name=unlocked,proto3" json:"unlocked,omitempty"`
}

func (m *UnlockResponse) Reset()         { *m = UnlockResponse{} }
func (m *UnlockResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UnlockResponse) ProtoMessage()    {}

type Filter struct {
	Shape    string `protobuf:"bytes,1,opt,name=shape,proto3" json:"shape,omitempty"`
	Clarity  string `protobuf:"bytes,2,opt,name=clarity,proto3" json:"clarity,omitempty"`
	Color    string `protobuf:"bytes,3,opt,name=color,proto3" json:"color,omitempty"`
	Type     string `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	Query    string `protobuf:"bytes,5,opt,name=query,proto3" json:"query,omitempty"`
	MaxPrice int64  `protobuf:"varint,6,opt,name=max_price,json=maxPrice,proto3" json:"max_price,omitempty"`
}

func (m *Filter) Reset()         { *m = Filter{} }
func (m *Filter) String() string { return fmt.Sprintf("%+v", *m) }
func (*Filter) ProtoMessage()    {}

type ListProductsRequest struct {
	SessionId string  `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Filter    *Filter `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
}

func (m *ListProductsRequest) Reset()         { *m = ListProductsRequest{} }
func (m *ListProductsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListProductsRequest) ProtoMessage()    {}

type ListProductsResponse struct {
	Products []*Product `protobuf:"bytes,1,rep,name=products,proto3" json:"products,omitempty"`
	MinPrice int64      `protobuf:"varint,2,opt,name=min_price,json=minPrice,proto3" json:"min_price,omitempty"`
	MaxPrice int64      `protobuf:"varint,3,opt,name=max_price,json=maxPrice,proto3" json:"max_price,omitempty"`
}

func (m *ListProductsResponse) Reset()         { *m = ListProductsResponse{} }
func (m *ListProductsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListProductsResponse) ProtoMessage()    {}

type JewelleryConfig struct {
	Mode          string `protobuf:"bytes,1,opt,name=mode,proto3" json:"mode,omitempty"`
	Setting       string `protobuf:"bytes,2,opt,name=setting,proto3" json:"setting,omitempty"`
	Metal         string `protobuf:"bytes,3,opt,name=metal,proto3" json:"metal,omitempty"`
	Size          string `protobuf:"bytes,4,opt,name=size,proto3" json:"size,omitempty"`
	Backing       string `protobuf:"bytes,5,opt,name=backing,proto3" json:"backing,omitempty"`
	BaseProductId string `protobuf:"bytes,6,opt,name=base_product_id,json=baseProductId,proto3" json:"base_product_id,omitempty"`
}

func (m *JewelleryConfig) Reset()         { *m = JewelleryConfig{} }
func (m *JewelleryConfig) String() string { return fmt.Sprintf("%+v", *m) }
func (*JewelleryConfig) ProtoMessage()    {}

type Product struct {
	Id         string           `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name       string           `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Type       string           `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Shape      string           `protobuf:"bytes,4,opt,name=shape,proto3" json:"shape,omitempty"`
	Clarity    string           `protobuf:"bytes,5,opt,name=clarity,proto3" json:"clarity,omitempty"`
	Color      string           `protobuf:"bytes,6,opt,name=color,proto3" json:"color,omitempty"`
	Carat      float64          `protobuf:"fixed64,7,opt,name=carat,proto3" json:"carat,omitempty"`
	Price      int64            `protobuf:"varint,8,opt,name=price,proto3" json:"price,omitempty"`
	Image      string           `protobuf:"bytes,9,opt,name=image,proto3" json:"image,omitempty"`
	TripleEx   bool             `protobuf:"varint,10,opt,name=triple_ex,json=tripleEx,proto3" json:"triple_ex,omitempty"`
	BestSeller bool             `protobuf:"varint,11,opt,name=best_seller,json=bestSeller,proto3" json:"best_seller,omitempty"`
	Config     *JewelleryConfig `protobuf:"bytes,12,opt,name=config,proto3" json:"config,omitempty"`
}

func (m *Product) Reset()         { *m = Product{} }
func (m *Product) String() string { return fmt.Sprintf("%+v", *m) }
func (*Product) ProtoMessage()    {}

type SessionRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *SessionRequest) Reset()         { *m = SessionRequest{} }
func (m *SessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionRequest) ProtoMessage()    {}

type ItemRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ProductId string `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
}

func (m *ItemRequest) Reset()         { *m = ItemRequest{} }
func (m *ItemRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ItemRequest) ProtoMessage()    {}

type UpdateQuantityRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ProductId string `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Quantity  int32  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *UpdateQuantityRequest) Reset()         { *m = UpdateQuantityRequest{} }
func (m *UpdateQuantityRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateQuantityRequest) ProtoMessage()    {}

type CartLine struct {
	Product  *Product `protobuf:"bytes,1,opt,name=product,proto3" json:"product,omitempty"`
	Quantity int32    `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *CartLine) Reset()         { *m = CartLine{} }
func (m *CartLine) String() string { return fmt.Sprintf("%+v", *m) }
func (*CartLine) ProtoMessage()    {}

type CartSummary struct {
	Lines    []*CartLine `protobuf:"bytes,1,rep,name=lines,proto3" json:"lines,omitempty"`
	Count    int32       `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Subtotal int64       `protobuf:"varint,3,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Shipping int64       `protobuf:"varint,4,opt,name=shipping,proto3" json:"shipping,omitempty"`
	Total    int64       `protobuf:"varint,5,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *CartSummary) Reset()         { *m = CartSummary{} }
func (m *CartSummary) String() string { return fmt.Sprintf("%+v", *m) }
func (*CartSummary) ProtoMessage()    {}

type CartResponse struct {
	Cart *CartSummary `protobuf:"bytes,1,opt,name=cart,proto3" json:"cart,omitempty"`
}

func (m *CartResponse) Reset()         { *m = CartResponse{} }
func (m *CartResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CartResponse) ProtoMessage()    {}

type CheckoutView struct {
	Step        int32  `protobuf:"varint,1,opt,name=step,proto3" json:"step,omitempty"`
	StepName    string `protobuf:"bytes,2,opt,name=step_name,json=stepName,proto3" json:"step_name,omitempty"`
	OrderPlaced bool   `protobuf:"varint,3,opt,name=order_placed,json=orderPlaced,proto3" json:"order_placed,omitempty"`
	OrderId     string `protobuf:"bytes,4,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
}

func (m *CheckoutView) Reset()         { *m = CheckoutView{} }
func (m *CheckoutView) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckoutView) ProtoMessage()    {}

type CheckoutResponse struct {
	Checkout *CheckoutView `protobuf:"bytes,1,opt,name=checkout,proto3" json:"checkout,omitempty"`
}

func (m *CheckoutResponse) Reset()         { *m = CheckoutResponse{} }
func (m *CheckoutResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckoutResponse) ProtoMessage()    {}

type ShippingDetails struct {
	FirstName  string `protobuf:"bytes,1,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName   string `protobuf:"bytes,2,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email      string `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Phone      string `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	Street     string `protobuf:"bytes,5,opt,name=street,proto3" json:"street,omitempty"`
	City       string `protobuf:"bytes,6,opt,name=city,proto3" json:"city,omitempty"`
	PostalCode string `protobuf:"bytes,7,opt,name=postal_code,json=postalCode,proto3" json:"postal_code,omitempty"`
	Country    string `protobuf:"bytes,8,opt,name=country,proto3" json:"country,omitempty"`
}

func (m *ShippingDetails) Reset()         { *m = ShippingDetails{} }
func (m *ShippingDetails) String() string { return fmt.Sprintf("%+v", *m) }
func (*ShippingDetails) ProtoMessage()    {}

type SetShippingRequest struct {
	SessionId string           `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Shipping  *ShippingDetails `protobuf:"bytes,2,opt,name=shipping,proto3" json:"shipping,omitempty"`
}

func (m *SetShippingRequest) Reset()         { *m = SetShippingRequest{} }
func (m *SetShippingRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SetShippingRequest) ProtoMessage()    {}

type PaymentDetails struct {
	Method     string `protobuf:"bytes,1,opt,name=method,proto3" json:"method,omitempty"`
	CardNumber string `protobuf:"bytes,2,opt,name=card_number,json=cardNumber,proto3" json:"card_number,omitempty"`
	CardHolder string `protobuf:"bytes,3,opt,name=card_holder,json=cardHolder,proto3" json:"card_holder,omitempty"`
	Expiry     string `protobuf:"bytes,4,opt,name=expiry,proto3" json:"expiry,omitempty"`
	Cvc        string `protobuf:"bytes,5,opt,name=cvc,proto3" json:"cvc,omitempty"`
}

func (m *PaymentDetails) Reset()         { *m = PaymentDetails{} }
func (m *PaymentDetails) String() string { return fmt.Sprintf("%+v", *m) }
func (*PaymentDetails) ProtoMessage()    {}

type SetPaymentRequest struct {
	SessionId string          `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Payment   *PaymentDetails `protobuf:"bytes,2,opt,name=payment,proto3" json:"payment,omitempty"`
}

func (m *SetPaymentRequest) Reset()         { *m = SetPaymentRequest{} }
func (m *SetPaymentRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SetPaymentRequest) ProtoMessage()    {}

type GoToStepRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Step      int32  `protobuf:"varint,2,opt,name=step,proto3" json:"step,omitempty"`
	Forced    bool   `protobuf:"varint,3,opt,name=forced,proto3" json:"forced,omitempty"`
}

func (m *GoToStepRequest) Reset()         { *m = GoToStepRequest{} }
func (m *GoToStepRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GoToStepRequest) ProtoMessage()    {}

type ConfiguratorView struct {
	BaseProductId  string   `protobuf:"bytes,1,opt,name=base_product_id,json=baseProductId,proto3" json:"base_product_id,omitempty"`
	Mode           string   `protobuf:"bytes,2,opt,name=mode,proto3" json:"mode,omitempty"`
	Setting        string   `protobuf:"bytes,3,opt,name=setting,proto3" json:"setting,omitempty"`
	Metal          string   `protobuf:"bytes,4,opt,name=metal,proto3" json:"metal,omitempty"`
	Size           string   `protobuf:"bytes,5,opt,name=size,proto3" json:"size,omitempty"`
	Backing        string   `protobuf:"bytes,6,opt,name=backing,proto3" json:"backing,omitempty"`
	SettingOptions []string `protobuf:"bytes,7,rep,name=setting_options,json=settingOptions,proto3" json:"setting_options,omitempty"`
	EstimatedPrice int64    `protobuf:"varint,8,opt,name=estimated_price,json=estimatedPrice,proto3" json:"estimated_price,omitempty"`
}

func (m *ConfiguratorView) Reset()         { *m = ConfiguratorView{} }
func (m *ConfiguratorView) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConfiguratorView) ProtoMessage()    {}

type ConfiguratorResponse struct {
	Configurator *ConfiguratorView `protobuf:"bytes,1,opt,name=configurator,proto3" json:"configurator,omitempty"`
}

func (m *ConfiguratorResponse) Reset()         { *m = ConfiguratorResponse{} }
func (m *ConfiguratorResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConfiguratorResponse) ProtoMessage()    {}

type UpdateConfigurationRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Mode      string `protobuf:"bytes,2,opt,name=mode,proto3" json:"mode,omitempty"`
	Setting   string `protobuf:"bytes,3,opt,name=setting,proto3" json:"setting,omitempty"`
	Metal     string `protobuf:"bytes,4,opt,name=metal,proto3" json:"metal,omitempty"`
	Size      string `protobuf:"bytes,5,opt,name=size,proto3" json:"size,omitempty"`
	Backing   string `protobuf:"bytes,6,opt,name=backing,proto3" json:"backing,omitempty"`
}

func (m *UpdateConfigurationRequest) Reset()         { *m = UpdateConfigurationRequest{} }
func (m *UpdateConfigurationRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateConfigurationRequest) ProtoMessage()    {}

type QuickReply struct {
	Id    string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Label string `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
}

func (m *QuickReply) Reset()         { *m = QuickReply{} }
func (m *QuickReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*QuickReply) ProtoMessage()    {}

type ChatRequest struct {
	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	OptionId  string `protobuf:"bytes,2,opt,name=option_id,json=optionId,proto3" json:"option_id,omitempty"`
	Text      string `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *ChatRequest) Reset()         { *m = ChatRequest{} }
func (m *ChatRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ChatRequest) ProtoMessage()    {}

type ChatResponse struct {
	Text    string        `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Options []*QuickReply `protobuf:"bytes,2,rep,name=options,proto3" json:"options,omitempty"`
	State   string        `protobuf:"bytes,3,opt,name=state,proto3" json:"state,omitempty"`
}

func (m *ChatResponse) Reset()         { *m = ChatResponse{} }
func (m *ChatResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ChatResponse) ProtoMessage()    {}
