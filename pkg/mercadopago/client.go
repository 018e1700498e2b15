// Package mercadopago adapts the official Mercado Pago Go SDK to the subset
// of the API this service uses: creating preapproval (subscription) plans and
// resolving the preapproval and payment resources referenced by webhook
// notifications. SDK types stay inside this package; callers see the
// package-local request/response types.
package mercadopago

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preapprovalplan"
	"github.com/mercadopago/sdk-go/pkg/requester"
)

// Client calls the Mercado Pago API through the official SDK.
type Client struct {
	plans        preapprovalplan.Client
	preapprovals preapproval.Client
	payments     payment.Client
}

type settings struct {
	requester requester.Requester
}

// Option configures the Client.
type Option func(*settings)

// WithRequester overrides the SDK's HTTP transport. Used by tests to serve
// canned API responses without network access.
func WithRequester(r requester.Requester) Option {
	return func(s *settings) {
		if r != nil {
			s.requester = r
		}
	}
}

// New returns a Client configured from cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	sdkOpts := []config.Option{}
	if s.requester != nil {
		sdkOpts = append(sdkOpts, config.WithHTTPClient(s.requester))
	}
	sdkCfg, err := config.New(cfg.AccessToken, sdkOpts...)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: configure sdk: %w", err)
	}

	return &Client{
		plans:        preapprovalplan.NewClient(sdkCfg),
		preapprovals: preapproval.NewClient(sdkCfg),
		payments:     payment.NewClient(sdkCfg),
	}, nil
}

// CreatePreapprovalPlan creates a subscription plan and returns the created
// resource, including the hosted checkout init_point.
func (c *Client) CreatePreapprovalPlan(ctx context.Context, req PreapprovalPlanRequest) (*PreapprovalPlan, error) {
	res, err := c.plans.Create(ctx, preapprovalplan.Request{
		Reason: req.Reason,
		AutoRecurring: &preapprovalplan.AutoRecurringRequest{
			Frequency:         req.AutoRecurring.Frequency,
			FrequencyType:     req.AutoRecurring.FrequencyType,
			TransactionAmount: req.AutoRecurring.TransactionAmount,
			CurrencyID:        req.AutoRecurring.CurrencyID,
		},
		BackURL:           req.BackURL,
		ExternalReference: req.ExternalReference,
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago: create preapproval plan: %w", err)
	}

	return &PreapprovalPlan{
		ID:                res.ID,
		Status:            res.Status,
		Reason:            res.Reason,
		InitPoint:         res.InitPoint,
		ExternalReference: res.ExternalReference,
	}, nil
}

// GetPreapproval fetches a preapproval resource by id.
func (c *Client) GetPreapproval(ctx context.Context, id string) (*Preapproval, error) {
	res, err := c.preapprovals.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: get preapproval %q: %w", id, err)
	}

	return &Preapproval{
		ID:                res.ID,
		Status:            res.Status,
		Reason:            res.Reason,
		PayerEmail:        res.PayerEmail,
		ExternalReference: res.ExternalReference,
	}, nil
}

// GetPayment fetches a payment resource by id.
func (c *Client) GetPayment(ctx context.Context, id int64) (*Payment, error) {
	res, err := c.payments.Get(ctx, int(id))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: get payment %d: %w", id, err)
	}

	return &Payment{
		ID:                int64(res.ID),
		Status:            res.Status,
		StatusDetail:      res.StatusDetail,
		ExternalReference: res.ExternalReference,
	}, nil
}
