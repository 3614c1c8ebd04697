package entities

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validShipping() ShippingDetails {
	return ShippingDetails{
		FirstName:  "Anna",
		LastName:   "Keller",
		Email:      "anna@example.ch",
		Street:     "Bahnhofstrasse 1",
		PostalCode: "8001",
		City:       "Zurich",
		Country:    "Switzerland",
	}
}

func validCard() PaymentDetails {
	return PaymentDetails{
		Method:     PaymentCard,
		CardName:   "Anna Keller",
		CardNumber: "4242 4242 4242 4242",
		Expiry:     "12/27",
		CVC:        "123",
	}
}

func TestCheckout_StartsOnBasket(t *testing.T) {
	c := NewCheckout(nil)

	assert.Equal(t, StepBasket, c.Step())
	assert.Equal(t, PaymentCard, c.Payment.Method)
	assert.False(t, c.Completed())
}

func TestCheckout_AdvanceThroughAllSteps(t *testing.T) {
	c := NewCheckout(nil)
	ctx := context.Background()

	assert.NoError(t, c.Advance(ctx))
	assert.Equal(t, StepAddress, c.Step())

	c.Shipping = validShipping()
	assert.NoError(t, c.Advance(ctx))
	assert.Equal(t, StepPayment, c.Step())

	c.Payment = validCard()
	assert.NoError(t, c.Advance(ctx))
	assert.Equal(t, StepReview, c.Step())

	assert.NoError(t, c.Advance(ctx))
	assert.Equal(t, StepCompleted, c.Step())
	assert.True(t, c.Completed())
}

func TestCheckout_AddressValidationBlocksAdvance(t *testing.T) {
	c := NewCheckout(nil)
	ctx := context.Background()
	assert.NoError(t, c.Advance(ctx))

	shipping := validShipping()
	shipping.Email = ""
	c.Shipping = shipping

	err := c.Advance(ctx)
	assert.ErrorIs(t, err, ErrShippingIncomplete)
	assert.Contains(t, err.Error(), "email")
	assert.Equal(t, StepAddress, c.Step())
}

func TestCheckout_CardValidationOnlyForCardMethod(t *testing.T) {
	c := NewCheckout(nil)
	ctx := context.Background()
	assert.NoError(t, c.Advance(ctx))
	c.Shipping = validShipping()
	assert.NoError(t, c.Advance(ctx))

	// incomplete card blocks
	c.Payment = PaymentDetails{Method: PaymentCard, CardName: "Anna Keller"}
	err := c.Advance(ctx)
	assert.ErrorIs(t, err, ErrCardIncomplete)
	assert.Equal(t, StepPayment, c.Step())

	// other methods skip card fields entirely
	c.Payment = PaymentDetails{Method: PaymentTwint}
	assert.NoError(t, c.Advance(ctx))
	assert.Equal(t, StepReview, c.Step())
}

func TestCheckout_CompletionCallbackFailureStaysOnReview(t *testing.T) {
	submitErr := errors.New("store unavailable")
	calls := 0
	c := NewCheckout(func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return submitErr
		}
		return nil
	})
	ctx := context.Background()

	c.Shipping = validShipping()
	c.Payment = PaymentDetails{Method: PaymentBank}
	c.Force(StepReview)

	err := c.Advance(ctx)
	assert.ErrorIs(t, err, submitErr)
	assert.Equal(t, StepReview, c.Step())

	// a later attempt can still complete
	assert.NoError(t, c.Advance(ctx))
	assert.Equal(t, StepCompleted, c.Step())
	assert.Equal(t, 2, calls)
}

func TestCheckout_AdvancePastCompletedRejected(t *testing.T) {
	c := NewCheckout(nil)
	c.Force(StepCompleted)

	assert.ErrorIs(t, c.Advance(context.Background()), ErrCheckoutCompleted)
	assert.Equal(t, StepCompleted, c.Step())
}

func TestCheckout_BackNeverValidates(t *testing.T) {
	c := NewCheckout(nil)
	c.Force(StepReview)

	c.Back()
	assert.Equal(t, StepPayment, c.Step())
	c.Back()
	assert.Equal(t, StepAddress, c.Step())
	c.Back()
	assert.Equal(t, StepBasket, c.Step())

	// already at the first step
	c.Back()
	assert.Equal(t, StepBasket, c.Step())
}

func TestCheckout_GoToRejectsForwardJumps(t *testing.T) {
	c := NewCheckout(nil)

	assert.ErrorIs(t, c.GoTo(StepPayment), ErrForwardJump)
	assert.Equal(t, StepBasket, c.Step())

	c.Force(StepReview)
	assert.NoError(t, c.GoTo(StepAddress))
	assert.Equal(t, StepAddress, c.Step())

	assert.ErrorIs(t, c.GoTo(CheckoutStep(99)), ErrInvalidStep)
}

func TestCheckout_ForceClamps(t *testing.T) {
	c := NewCheckout(nil)

	c.Force(CheckoutStep(0))
	assert.Equal(t, StepBasket, c.Step())

	c.Force(CheckoutStep(42))
	assert.Equal(t, StepCompleted, c.Step())
}

func TestCheckoutStep_String(t *testing.T) {
	assert.Equal(t, "basket", StepBasket.String())
	assert.Equal(t, "review", StepReview.String())
	assert.Equal(t, "completed", StepCompleted.String())
}
