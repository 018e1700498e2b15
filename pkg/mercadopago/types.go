package mercadopago

// AutoRecurring describes the recurrence settings of a preapproval plan.
type AutoRecurring struct {
	Frequency         int     `json:"frequency"`
	FrequencyType     string  `json:"frequency_type"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
}

// PreapprovalPlanRequest is the payload for creating a subscription plan.
type PreapprovalPlanRequest struct {
	Reason            string        `json:"reason"`
	AutoRecurring     AutoRecurring `json:"auto_recurring"`
	BackURL           string        `json:"back_url,omitempty"`
	ExternalReference string        `json:"external_reference,omitempty"`
}

// PreapprovalPlan is the provider's subscription plan resource. InitPoint is
// the hosted checkout URL the subscriber is redirected to.
type PreapprovalPlan struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	Reason            string `json:"reason"`
	InitPoint         string `json:"init_point"`
	ExternalReference string `json:"external_reference"`
}

// Preapproval is the provider's recurring-subscription authorization resource.
type Preapproval struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	Reason            string `json:"reason"`
	PayerEmail        string `json:"payer_email"`
	ExternalReference string `json:"external_reference"`
}

// Payment is the provider's one-off payment resource.
type Payment struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	ExternalReference string `json:"external_reference"`
}

// Preapproval status values observed on webhook-triggered lookups.
const (
	PreapprovalStatusAuthorized = "authorized"
	PreapprovalStatusPaused     = "paused"
	PreapprovalStatusCancelled  = "cancelled"
	PreapprovalStatusPending    = "pending"
)

// Payment status values.
const (
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)
