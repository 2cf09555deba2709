package gateway

import "context"

// FundingSession is the gateway-hosted redirect handle returned when a
// funding transaction is initialized
type FundingSession struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaymentGateway is the boundary to the external payment provider. Only the
// funding initialization call is modeled here; the provider reports outcomes
// asynchronously through signed notifications handled by the webhook intake.
type PaymentGateway interface {
	// InitializeFunding starts a hosted checkout for the given amount and
	// locally generated reference. The later notification echoes the
	// reference back.
	//
	// Possible errors:
	// - ErrGatewayUnavailable: If the provider cannot be reached or rejects the call
	InitializeFunding(ctx context.Context, email string, amountInKobo int64, reference string, accountID string) (*FundingSession, error)
}
