package entities

import (
	"context"
	"errors"
	"fmt"
)

// CheckoutStep is one stage of the guided purchase flow. StepCompleted is
// the terminal confirmation state past the last numbered step.
type CheckoutStep int

const (
	StepBasket CheckoutStep = iota + 1
	StepAddress
	StepPayment
	StepReview
	StepCompleted
)

func (s CheckoutStep) String() string {
	switch s {
	case StepBasket:
		return "basket"
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepCompleted:
		return "completed"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "card"
	PaymentTwint PaymentMethod = "twint"
	PaymentBank  PaymentMethod = "bank"
)

// ShippingDetails is the flat record collected on the Address step.
type ShippingDetails struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Street     string
	PostalCode string
	City       string
	Country    string
}

// PaymentDetails is the flat record collected on the Payment step. The
// card fields are only required when Method is PaymentCard.
type PaymentDetails struct {
	Method     PaymentMethod
	CardName   string
	CardNumber string
	Expiry     string
	CVC        string
}

var (
	ErrShippingIncomplete = errors.New("missing required shipping field")
	ErrCardIncomplete     = errors.New("missing required card field")
	ErrCheckoutCompleted  = errors.New("checkout already completed")
	ErrForwardJump        = errors.New("cannot jump forward past validation")
	ErrInvalidStep        = errors.New("invalid checkout step")
)

// CompleteFunc is the order-submission side effect run when the Review
// step is completed.
type CompleteFunc func(ctx context.Context) error

// Checkout is the multi-step purchase flow. Forward transitions are gated
// by per-step validation of the data collected so far; backward moves are
// always free. The departing step is validated before any state changes,
// so a rejected transition leaves the flow exactly where it was.
type Checkout struct {
	step       CheckoutStep
	Shipping   ShippingDetails
	Payment    PaymentDetails
	onComplete CompleteFunc
}

func NewCheckout(onComplete CompleteFunc) *Checkout {
	return &Checkout{
		step:       StepBasket,
		Payment:    PaymentDetails{Method: PaymentCard},
		onComplete: onComplete,
	}
}

func (c *Checkout) Step() CheckoutStep {
	return c.step
}

func (c *Checkout) Completed() bool {
	return c.step == StepCompleted
}

// Advance moves one step forward. Completing the Review step runs the
// submission callback first; if it fails the flow stays on Review.
func (c *Checkout) Advance(ctx context.Context) error {
	if c.step == StepCompleted {
		return ErrCheckoutCompleted
	}
	if err := c.validate(c.step); err != nil {
		return err
	}
	if c.step == StepReview {
		if c.onComplete != nil {
			if err := c.onComplete(ctx); err != nil {
				return err
			}
		}
		c.step = StepCompleted
		return nil
	}
	c.step++
	return nil
}

// Back returns to the previous step without validation.
func (c *Checkout) Back() {
	if c.step > StepBasket && c.step <= StepReview {
		c.step--
	}
}

// GoTo revisits an earlier step, e.g. via a step indicator. Forward jumps
// are rejected; Force is the only way to skip the validation gate.
func (c *Checkout) GoTo(step CheckoutStep) error {
	if step < StepBasket || step > StepReview {
		return fmt.Errorf("%w: %d", ErrInvalidStep, int(step))
	}
	if step >= c.step {
		return ErrForwardJump
	}
	c.step = step
	return nil
}

// Force sets the step directly, bypassing validation. Used by the
// controller to reset the flow when the cart is opened or to jump straight
// to the final step.
func (c *Checkout) Force(step CheckoutStep) {
	if step < StepBasket {
		step = StepBasket
	}
	if step > StepCompleted {
		step = StepCompleted
	}
	c.step = step
}

func (c *Checkout) validate(step CheckoutStep) error {
	switch step {
	case StepAddress:
		required := []struct {
			name  string
			value string
		}{
			{"first name", c.Shipping.FirstName},
			{"last name", c.Shipping.LastName},
			{"email", c.Shipping.Email},
			{"street", c.Shipping.Street},
			{"city", c.Shipping.City},
			{"postal code", c.Shipping.PostalCode},
		}
		for _, f := range required {
			if f.value == "" {
				return fmt.Errorf("%w: %s", ErrShippingIncomplete, f.name)
			}
		}
	case StepPayment:
		if c.Payment.Method != PaymentCard {
			return nil
		}
		required := []struct {
			name  string
			value string
		}{
			{"name on card", c.Payment.CardName},
			{"card number", c.Payment.CardNumber},
			{"expiry", c.Payment.Expiry},
			{"cvc", c.Payment.CVC},
		}
		for _, f := range required {
			if f.value == "" {
				return fmt.Errorf("%w: %s", ErrCardIncomplete, f.name)
			}
		}
	}
	return nil
}
