package entity

// PaymentEventCheckoutCompleted is the only event kind that drives activation.
const PaymentEventCheckoutCompleted = "checkout.session.completed"

// PaymentEvent is a payment provider notification after signature verification.
type PaymentEvent struct {
	ID                string
	Type              string
	ClientReferenceID string
	// Verified is set only by the gateway once the provider signature matched.
	Verified bool
}

// CheckoutSession is the provider-hosted payment page created for a user.
type CheckoutSession struct {
	ID  string
	URL string
}

// ActivationResult describes what an entitlement activation did.
type ActivationResult string

const (
	// ActivationActivated means the flag went from false to true.
	ActivationActivated ActivationResult = "activated"
	// ActivationAlreadyActive means the user was already active; nothing was written.
	ActivationAlreadyActive ActivationResult = "already_active"
	// ActivationIgnored means the event kind does not drive activation.
	ActivationIgnored ActivationResult = "ignored"
)
