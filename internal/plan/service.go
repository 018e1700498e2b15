package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/menuzap/menuzap/internal/chef"
	"github.com/menuzap/menuzap/pkg/mercadopago"
)

// Service drives plan checkout creation and webhook-based plan state
// transitions.
type Service struct {
	chefs    chef.Store
	provider PaymentProvider
	catalog  Catalog
	log      *slog.Logger
	now      func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithLogger supplies a logger for webhook processing.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService returns a Service with the given dependencies.
// Panics on nil dependencies to fail fast during initialization.
func NewService(chefs chef.Store, provider PaymentProvider, catalog Catalog, opts ...Option) *Service {
	if chefs == nil {
		panic("plan: chef.Store is required")
	}
	if provider == nil {
		panic("plan: PaymentProvider is required")
	}
	if len(catalog) == 0 {
		panic("plan: catalog is required")
	}
	s := &Service{
		chefs:    chefs,
		provider: provider,
		catalog:  catalog,
		log:      slog.Default(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCheckout registers a preapproval plan with the payment provider for
// the given chef and returns the hosted checkout URL the chef is redirected
// to. The chef must exist: the external reference embeds their email and a
// typo here would orphan the subscription.
func (s *Service) CreateCheckout(ctx context.Context, kind Kind, email string) (string, error) {
	p, ok := s.catalog[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlanKind, kind)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.chefs.ByEmail(ctx, email); err != nil {
		return "", err
	}

	created, err := s.provider.CreatePreapprovalPlan(ctx, mercadopago.PreapprovalPlanRequest{
		Reason: p.Reason,
		AutoRecurring: mercadopago.AutoRecurring{
			Frequency:         p.Months,
			FrequencyType:     "months",
			TransactionAmount: p.Amount,
			CurrencyID:        p.Currency,
		},
		BackURL:           p.BackURL,
		ExternalReference: p.Reference(email),
	})
	if err != nil {
		return "", fmt.Errorf("plan: create checkout: %w", err)
	}
	return created.InitPoint, nil
}

// Notification is the webhook payload the payment provider posts.
type Notification struct {
	Type string           `json:"type"`
	Data NotificationData `json:"data"`
}

// NotificationData carries the provider resource id. The provider sends it
// as a string for preapprovals and a number for payments, so decoding
// tolerates both.
type NotificationData struct {
	ID string `json:"id"`
}

func (d *NotificationData) UnmarshalJSON(b []byte) error {
	var v struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch id := v.ID.(type) {
	case string:
		d.ID = id
	case float64:
		d.ID = strconv.FormatInt(int64(id), 10)
	case nil:
		d.ID = ""
	default:
		d.ID = fmt.Sprint(id)
	}
	return nil
}

// HandleWebhook resolves the notified provider resource and applies the
// resulting plan transition. Notification types this service does not act on
// return nil so the provider receives a 2xx and stops retrying.
func (s *Service) HandleWebhook(ctx context.Context, n Notification) error {
	if n.Data.ID == "" {
		return fmt.Errorf("%w: missing data.id", ErrInvalidNotification)
	}

	switch n.Type {
	case "preapproval":
		return s.handlePreapproval(ctx, n.Data.ID)
	case "payment":
		return s.handlePayment(ctx, n.Data.ID)
	default:
		s.log.InfoContext(ctx, "ignoring webhook notification", slog.String("type", n.Type))
		return nil
	}
}

func (s *Service) handlePreapproval(ctx context.Context, id string) error {
	pa, err := s.provider.GetPreapproval(ctx, id)
	if err != nil {
		return fmt.Errorf("plan: resolve preapproval %q: %w", id, err)
	}

	eventRef := "preapproval:" + pa.ID + ":" + pa.Status

	switch pa.Status {
	case mercadopago.PreapprovalStatusAuthorized:
		return s.activate(ctx, pa.ExternalReference, eventRef, false)
	case mercadopago.PreapprovalStatusCancelled,
		mercadopago.PreapprovalStatusPaused,
		mercadopago.PreapprovalStatusPending:
		return s.deactivate(ctx, pa.ExternalReference, eventRef, pa.Status)
	default:
		s.log.InfoContext(ctx, "ignoring preapproval status",
			slog.String("preapproval_id", pa.ID), slog.String("status", pa.Status))
		return nil
	}
}

func (s *Service) handlePayment(ctx context.Context, id string) error {
	paymentID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: payment id %q", ErrInvalidNotification, id)
	}

	p, err := s.provider.GetPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("plan: resolve payment %d: %w", paymentID, err)
	}

	// One-off payments only matter here when they carry a plan reference and
	// were approved; anything else belongs to a flow this service does not own.
	if p.Status != mercadopago.PaymentStatusApproved || !strings.HasPrefix(p.ExternalReference, "plano_") {
		s.log.InfoContext(ctx, "ignoring payment notification",
			slog.Int64("payment_id", p.ID), slog.String("status", p.Status))
		return nil
	}

	eventRef := "payment:" + strconv.FormatInt(p.ID, 10) + ":" + p.Status
	return s.activate(ctx, p.ExternalReference, eventRef, true)
}

// activate transitions the referenced chef to an active plan. Expiration is
// extended from the previous expiration when it is still in the future, so a
// renewal stacks instead of restarting from "now"; redelivery of an already
// applied event is a no-op either way.
func (s *Service) activate(ctx context.Context, externalRef, eventRef string, onlyIfInactive bool) error {
	p, email, err := s.catalog.ByReference(externalRef)
	if err != nil {
		return err
	}

	c, err := s.chefs.ByEmail(ctx, email)
	if err != nil {
		return err
	}
	if c.LastPaymentRef == eventRef {
		s.log.InfoContext(ctx, "webhook event already applied", slog.String("event", eventRef))
		return nil
	}

	now := s.now()
	if onlyIfInactive && c.HasActivePlan(now) {
		return nil
	}

	base := now
	if c.PlanActive && c.PlanExpiresAt != nil && c.PlanExpiresAt.After(now) {
		base = *c.PlanExpiresAt
	}
	expiresAt := base.AddDate(0, p.Months, 0)

	if err := s.chefs.SetPlan(ctx, c.ID, chef.PlanState{
		Active:     true,
		ExpiresAt:  &expiresAt,
		PaymentRef: eventRef,
	}); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "plan activated",
		slog.String("chef_id", c.ID),
		slog.String("plan_kind", string(p.Kind)),
		slog.Time("expires_at", expiresAt))
	return nil
}

func (s *Service) deactivate(ctx context.Context, externalRef, eventRef, status string) error {
	_, email, err := s.catalog.ByReference(externalRef)
	if err != nil {
		return err
	}

	c, err := s.chefs.ByEmail(ctx, email)
	if err != nil {
		return err
	}
	if c.LastPaymentRef == eventRef {
		return nil
	}

	if err := s.chefs.SetPlan(ctx, c.ID, chef.PlanState{
		Active:     false,
		ExpiresAt:  nil,
		PaymentRef: eventRef,
	}); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "plan deactivated",
		slog.String("chef_id", c.ID), slog.String("provider_status", status))
	return nil
}

// DeactivateExpired deactivates every chef whose active plan has expired.
// Invoked by the daily sweep; safe to call at any time.
func (s *Service) DeactivateExpired(ctx context.Context) (int64, error) {
	n, err := s.chefs.DeactivateExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired plans deactivated", slog.Int64("count", n))
	}
	return n, nil
}
