package checkout

// CreateSessionRequest describes a hosted checkout session to open with the
// provider. Metadata is passed through opaquely and returned on retrieval.
type CreateSessionRequest struct {
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customer_email"`
	SuccessURL    string            `json:"success_url"`
	CancelURL     string            `json:"cancel_url"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Session is the provider's view of a checkout session.
type Session struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   float64           `json:"amount_total"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

// PaymentStatusPaid is the terminal state a session must reach before a
// subscription is granted.
const PaymentStatusPaid = "paid"

type errorResponse struct {
	Message string `json:"message"`
}
