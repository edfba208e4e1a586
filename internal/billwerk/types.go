package billwerk

// Request body types. Field names match the upstream JSON contract exactly;
// the API rejects unknown casing.

// CustomerCreate is the payload for creating or replacing a customer.
type CustomerCreate struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	CompanyName  string `json:"companyName,omitempty"`
	Language     string `json:"language,omitempty"`
	Locale       string `json:"locale,omitempty"`
	CustomerType string `json:"customerType,omitempty"`
}

// applyDefaults fills the upstream defaults for optional fields.
func (c *CustomerCreate) applyDefaults() {
	if c.Language == "" {
		c.Language = "en-US"
	}
	if c.Locale == "" {
		c.Locale = "en-US"
	}
	if c.CustomerType == "" {
		c.CustomerType = "Consumer"
	}
}

// ContractCreate is the payload for creating a contract.
type ContractCreate struct {
	CustomerID    string `json:"customerId"`
	PlanVariantID string `json:"planVariantId"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
}

// ComponentSubscriptionCreate is the payload for subscribing a contract to a
// component.
type ComponentSubscriptionCreate struct {
	ComponentID string  `json:"componentId"`
	Quantity    float64 `json:"quantity"`
	StartDate   string  `json:"startDate,omitempty"`
	Memo        string  `json:"memo,omitempty"`
}

// MeteredUsageCreate is the payload for recording metered usage on a
// contract.
type MeteredUsageCreate struct {
	ComponentID string  `json:"componentId"`
	Quantity    float64 `json:"quantity"`
	Memo        string  `json:"memo,omitempty"`
	DueDate     string  `json:"dueDate,omitempty"`
}

// PaymentCreate is the payload for recording an external payment. A negative
// amount records a refund.
type PaymentCreate struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	BookingDate string  `json:"bookingDate,omitempty"`
}
