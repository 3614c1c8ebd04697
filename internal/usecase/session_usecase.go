package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-service/internal/domain/entities"
	"storefront-service/internal/domain/repositories"
	"storefront-service/internal/infrastructure/logger"
)

// EventPublisher announces placed orders to downstream consumers.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *entities.Order) error
	Close()
}

// GateConfig is the access gate injected once at startup.
type GateConfig struct {
	Enabled    bool
	Passphrase string
	CheckDelay time.Duration
}

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLocked   = errors.New("store access not unlocked for this session")
	ErrAccessDenied    = errors.New("incorrect access phrase")
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoConfiguration = errors.New("no jewellery build in progress")
)

// Session holds everything one browser session owns: its cart, checkout
// flow, in-progress jewellery build, chat position and gate state. There
// is exactly one logical thread of control per session.
type Session struct {
	ID           string
	Cart         *entities.Cart
	Checkout     *entities.Checkout
	Configurator *entities.Configurator
	ChatState    ChatState
	Unlocked     bool
	OrderPlaced  bool
	LastOrderID  string
}

// CartSummary is a read snapshot of a session's cart and derived totals.
type CartSummary struct {
	Lines    []entities.CartLine
	Count    int
	Subtotal int64
	Shipping int64
	Total    int64
}

// CheckoutView is a read snapshot of a session's checkout position.
type CheckoutView struct {
	Step        entities.CheckoutStep
	OrderPlaced bool
	OrderID     string
}

// ConfiguratorView is a read snapshot of an in-progress jewellery build.
type ConfiguratorView struct {
	BaseProductID  string
	Mode           entities.ConfiguratorMode
	Setting        string
	Metal          string
	Size           string
	Backing        string
	SettingOptions []string
	EstimatedPrice int64
}

// ConfigurationUpdate carries optional selection changes; empty fields
// leave the current selection untouched. A mode change is applied first
// and resets the setting to the new mode's default.
type ConfigurationUpdate struct {
	Mode    entities.ConfiguratorMode
	Setting string
	Metal   string
	Size    string
	Backing string
}

// SessionUseCase is the registry of live sessions and the entry point for
// every session-scoped operation.
type SessionUseCase struct {
	catalog   *CatalogUseCase
	chat      *ChatUseCase
	orderRepo repositories.OrderRepository
	publisher EventPublisher
	gate      GateConfig
	logger    *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionUseCase(
	catalog *CatalogUseCase,
	chat *ChatUseCase,
	orderRepo repositories.OrderRepository,
	publisher EventPublisher,
	gate GateConfig,
	log *logger.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		catalog:   catalog,
		chat:      chat,
		orderRepo: orderRepo,
		publisher: publisher,
		gate:      gate,
		logger:    log,
		sessions:  make(map[string]*Session),
	}
}

// StartSession creates an independent session. With the gate disabled the
// session starts unlocked.
func (uc *SessionUseCase) StartSession() *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Cart:      entities.NewCart(),
		ChatState: ChatStateHome,
		Unlocked:  !uc.gate.Enabled,
	}
	s.Checkout = entities.NewCheckout(func(ctx context.Context) error {
		return uc.submitOrder(ctx, s)
	})

	uc.mu.Lock()
	uc.sessions[s.ID] = s
	uc.mu.Unlock()

	uc.logger.Info("Session started", "session_id", s.ID)
	return s
}

// GateEnabled reports whether sessions must unlock before using the store.
func (uc *SessionUseCase) GateEnabled() bool {
	return uc.gate.Enabled
}

// Unlock checks the shared access phrase for a session. The check waits
// the configured delay to mimic a remote verification; a mismatch is a
// plain error with no lockout, and a success is remembered only for the
// session's lifetime.
func (uc *SessionUseCase) Unlock(ctx context.Context, sessionID, phrase string) error {
	uc.mu.RLock()
	s, ok := uc.sessions[sessionID]
	uc.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	if uc.gate.CheckDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(uc.gate.CheckDelay):
		}
	}

	if !uc.gate.Enabled {
		return nil
	}
	if phrase != uc.gate.Passphrase {
		return ErrAccessDenied
	}

	uc.mu.Lock()
	s.Unlocked = true
	uc.mu.Unlock()

	uc.logger.Info("Session unlocked", "session_id", sessionID)
	return nil
}

// unlockedSession resolves a session and enforces the gate. Callers must
// hold uc.mu.
func (uc *SessionUseCase) unlockedSession(sessionID string) (*Session, error) {
	s, ok := uc.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !s.Unlocked {
		return nil, ErrSessionLocked
	}
	return s, nil
}

// Browse returns the catalog products matching the criteria together
// with the catalog's overall price bounds for the storefront's slider.
func (uc *SessionUseCase) Browse(sessionID string, criteria entities.FilterCriteria) ([]entities.Product, int64, int64, error) {
	uc.mu.RLock()
	_, err := uc.unlockedSession(sessionID)
	uc.mu.RUnlock()
	if err != nil {
		return nil, 0, 0, err
	}

	minPrice, maxPrice := uc.catalog.PriceBounds()
	return uc.catalog.Filter(criteria), minPrice, maxPrice, nil
}

// AddToCart adds one unit of a catalog product to the session's cart.
func (uc *SessionUseCase) AddToCart(sessionID, productID string) (CartSummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CartSummary{}, err
	}

	p, ok := uc.catalog.FindByID(productID)
	if !ok {
		return CartSummary{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	s.Cart.AddProduct(p)
	return summarize(s.Cart), nil
}

// SetQuantity sets a cart line's quantity, clamped to a minimum of 1.
func (uc *SessionUseCase) SetQuantity(sessionID, productID string, qty int) (CartSummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CartSummary{}, err
	}

	s.Cart.SetQuantity(productID, qty)
	return summarize(s.Cart), nil
}

// RemoveFromCart deletes a cart line; no-op if absent.
func (uc *SessionUseCase) RemoveFromCart(sessionID, productID string) (CartSummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CartSummary{}, err
	}

	s.Cart.Remove(productID)
	return summarize(s.Cart), nil
}

func (uc *SessionUseCase) GetCart(sessionID string) (CartSummary, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	return summarize(s.Cart), nil
}

// OpenCart resets the checkout flow to the basket step, as the storefront
// does whenever the cart drawer opens. The forced reset bypasses
// validation and clears the placed flag for a fresh run.
func (uc *SessionUseCase) OpenCart(sessionID string) (CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CheckoutView{}, err
	}

	s.Checkout.Force(entities.StepBasket)
	s.OrderPlaced = false
	return checkoutView(s), nil
}

// SetShipping stores the shipping record collected on the Address step.
func (uc *SessionUseCase) SetShipping(sessionID string, shipping entities.ShippingDetails) (CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CheckoutView{}, err
	}

	s.Checkout.Shipping = shipping
	return checkoutView(s), nil
}

// SetPayment stores the payment record collected on the Payment step.
func (uc *SessionUseCase) SetPayment(sessionID string, payment entities.PaymentDetails) (CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CheckoutView{}, err
	}

	s.Checkout.Payment = payment
	return checkoutView(s), nil
}

// NextStep advances the checkout one step. The departing step is
// validated first and a rejection is surfaced synchronously with no state
// change. Completing the Review step submits the order.
func (uc *SessionUseCase) NextStep(ctx context.Context, sessionID string) (CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CheckoutView{}, err
	}

	if err := s.Checkout.Advance(ctx); err != nil {
		return checkoutView(s), err
	}
	return checkoutView(s), nil
}

// PreviousStep moves the checkout back one step, never validated.
func (uc *SessionUseCase) PreviousStep(sessionID string) (CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CheckoutView{}, err
	}

	s.Checkout.Back()
	return checkoutView(s), nil
}

// GoToStep revisits an earlier step, or with forced set jumps anywhere
// without validation (the "place order" trigger uses this to reach the
// final step directly).
func (uc *SessionUseCase) GoToStep(sessionID string, step entities.CheckoutStep, forced bool) (CheckoutView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CheckoutView{}, err
	}

	if forced {
		s.Checkout.Force(step)
		return checkoutView(s), nil
	}
	if err := s.Checkout.GoTo(step); err != nil {
		return checkoutView(s), err
	}
	return checkoutView(s), nil
}

// BeginConfiguration starts a jewellery build around a loose stone from
// the catalog.
func (uc *SessionUseCase) BeginConfiguration(sessionID, baseProductID string) (ConfiguratorView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return ConfiguratorView{}, err
	}

	stone, ok := uc.catalog.FindByID(baseProductID)
	if !ok {
		return ConfiguratorView{}, fmt.Errorf("%w: %s", ErrProductNotFound, baseProductID)
	}

	builder, err := entities.NewConfigurator(stone)
	if err != nil {
		return ConfiguratorView{}, err
	}

	s.Configurator = builder
	return configuratorView(builder), nil
}

// UpdateConfiguration applies selection changes to the in-progress build
// and returns the recomputed estimate.
func (uc *SessionUseCase) UpdateConfiguration(sessionID string, update ConfigurationUpdate) (ConfiguratorView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return ConfiguratorView{}, err
	}
	if s.Configurator == nil {
		return ConfiguratorView{}, ErrNoConfiguration
	}

	b := s.Configurator
	if update.Mode != "" {
		if err := b.SetMode(update.Mode); err != nil {
			return configuratorView(b), err
		}
	}
	if update.Setting != "" {
		if err := b.SetSetting(update.Setting); err != nil {
			return configuratorView(b), err
		}
	}
	if update.Metal != "" {
		b.Metal = update.Metal
	}
	if update.Size != "" {
		b.Size = update.Size
	}
	if update.Backing != "" {
		b.Backing = update.Backing
	}
	return configuratorView(b), nil
}

// FinalizeConfiguration turns the build into a composite product, adds it
// to the cart and ends the build.
func (uc *SessionUseCase) FinalizeConfiguration(sessionID string) (CartSummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	if s.Configurator == nil {
		return CartSummary{}, ErrNoConfiguration
	}

	piece := s.Configurator.Finalize()
	s.Cart.AddProduct(piece)
	s.Configurator = nil

	uc.logger.Info("Composite piece added to cart",
		"session_id", sessionID,
		"product_id", piece.ID,
		"price", piece.Price)
	return summarize(s.Cart), nil
}

// Chat answers one support-chat message for the session and records the
// successor dialogue state.
func (uc *SessionUseCase) Chat(ctx context.Context, sessionID, optionID, text string) (ChatReply, error) {
	uc.mu.RLock()
	s, err := uc.unlockedSession(sessionID)
	if err != nil {
		uc.mu.RUnlock()
		return ChatReply{}, err
	}
	state := s.ChatState
	uc.mu.RUnlock()

	reply, err := uc.chat.Respond(ctx, state, optionID, text)
	if err != nil {
		return ChatReply{}, err
	}

	uc.mu.Lock()
	s.ChatState = reply.Next
	uc.mu.Unlock()
	return reply, nil
}

// submitOrder snapshots the cart into an order, writes it to the store
// and publishes the placed event. The cart is cleared only on success;
// a failed submission leaves cart and checkout untouched and is never
// retried.
func (uc *SessionUseCase) submitOrder(ctx context.Context, s *Session) error {
	if s.Cart.IsEmpty() {
		return ErrEmptyCart
	}

	lines := s.Cart.Lines()
	items := make([]entities.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = entities.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
			Config:    line.Product.Config,
		}
	}

	order := &entities.Order{
		OrderID:         uuid.New().String(),
		CustomerEmail:   s.Checkout.Shipping.Email,
		Items:           items,
		TotalAmount:     s.Cart.Total(),
		Status:          entities.OrderStatusPaid,
		ShippingAddress: s.Checkout.Shipping,
		CreatedAt:       time.Now(),
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		uc.logger.Error("Failed to submit order",
			"session_id", s.ID,
			"order_id", order.OrderID,
			"error", err)
		return fmt.Errorf("failed to submit order: %w", err)
	}

	if uc.publisher != nil {
		go func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.publisher.PublishOrderPlaced(pubCtx, order); err != nil {
				uc.logger.Warn("Failed to publish order.placed event",
					"order_id", order.OrderID,
					"error", err)
			}
		}()
	}

	s.Cart.Clear()
	s.OrderPlaced = true
	s.LastOrderID = order.OrderID

	uc.logger.Info("Order placed",
		"session_id", s.ID,
		"order_id", order.OrderID,
		"total", order.TotalAmount)
	return nil
}

func summarize(c *entities.Cart) CartSummary {
	return CartSummary{
		Lines:    c.Lines(),
		Count:    c.Count(),
		Subtotal: c.Subtotal(),
		Shipping: c.Shipping(),
		Total:    c.Total(),
	}
}

func checkoutView(s *Session) CheckoutView {
	return CheckoutView{
		Step:        s.Checkout.Step(),
		OrderPlaced: s.OrderPlaced,
		OrderID:     s.LastOrderID,
	}
}

func configuratorView(b *entities.Configurator) ConfiguratorView {
	return ConfiguratorView{
		BaseProductID:  b.Stone.ID,
		Mode:           b.Mode(),
		Setting:        b.Setting(),
		Metal:          b.Metal,
		Size:           b.Size,
		Backing:        b.Backing,
		SettingOptions: entities.SettingsFor(b.Mode()),
		EstimatedPrice: b.EstimatedPrice(),
	}
}
