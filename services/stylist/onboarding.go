package stylist

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	"github.com/stripe/stripe-go/v76/accountlink"
)

// StartPaymentOnboarding creates the stylist's Stripe Express account on
// first call and returns a hosted onboarding link. Payouts flow to this
// account once onboarding completes.
func (s *DefaultStylistService) StartPaymentOnboarding(ctx context.Context, stylistID, refreshURL, returnURL string) (string, error) {
	stylist, err := s.Repo.GetByID(ctx, stylistID)
	if err != nil {
		return "", err
	}

	if stylist.StripeAccountID == "" {
		params := &stripe.AccountParams{
			Type:  stripe.String(string(stripe.AccountTypeExpress)),
			Email: stripe.String(stylist.Email),
			Capabilities: &stripe.AccountCapabilitiesParams{
				Transfers: &stripe.AccountCapabilitiesTransfersParams{
					Requested: stripe.Bool(true),
				},
			},
		}
		params.Context = ctx
		acct, err := account.New(params)
		if err != nil {
			return "", fmt.Errorf("create connected account: %w", err)
		}
		stylist.StripeAccountID = acct.ID
		if err := s.Repo.Update(ctx, *stylist); err != nil {
			return "", fmt.Errorf("store connected account: %w", err)
		}
	}

	linkParams := &stripe.AccountLinkParams{
		Account:    stripe.String(stylist.StripeAccountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	linkParams.Context = ctx
	link, err := accountlink.New(linkParams)
	if err != nil {
		return "", fmt.Errorf("create onboarding link: %w", err)
	}
	return link.URL, nil
}
