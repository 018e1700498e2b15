package plan

import (
	"context"

	"github.com/menuzap/menuzap/pkg/mercadopago"
)

// PaymentProvider is the slice of the payment provider API the subscription
// state machine needs. Satisfied by *mercadopago.Client; tests substitute a
// fake.
type PaymentProvider interface {
	CreatePreapprovalPlan(ctx context.Context, req mercadopago.PreapprovalPlanRequest) (*mercadopago.PreapprovalPlan, error)
	GetPreapproval(ctx context.Context, id string) (*mercadopago.Preapproval, error)
	GetPayment(ctx context.Context, id int64) (*mercadopago.Payment, error)
}
