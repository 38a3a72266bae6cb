package models

// Organization is a billing organization owning projects.
type Organization struct {
	ID                        string         `json:"$id"`
	CreatedAt                 string         `json:"$createdAt"`
	UpdatedAt                 string         `json:"$updatedAt"`
	Name                      string         `json:"name"`
	Total                     int            `json:"total"`
	Prefs                     map[string]any `json:"prefs"`
	BillingBudget             int            `json:"billingBudget"`
	BudgetAlerts              []int          `json:"budgetAlerts"`
	BillingPlan               string         `json:"billingPlan"`
	BillingEmail              string         `json:"billingEmail"`
	BillingStartDate          string         `json:"billingStartDate"`
	BillingCurrentInvoiceDate string         `json:"billingCurrentInvoiceDate"`
	BillingNextInvoiceDate    string         `json:"billingNextInvoiceDate"`
	BillingTrialStartDate     string         `json:"billingTrialStartDate"`
	BillingTrialDays          int            `json:"billingTrialDays"`
	PaymentMethodID           string         `json:"paymentMethodId"`
	BillingAddressID          string         `json:"billingAddressId"`
	BackupPaymentMethodID     string         `json:"backupPaymentMethodId"`
	Status                    string         `json:"status"`
}

// OrganizationList is a page of organizations.
type OrganizationList struct {
	Total int            `json:"total"`
	Teams []Organization `json:"teams"`
}

// Invoice is a billing invoice of an organization.
type Invoice struct {
	ID          string  `json:"$id"`
	CreatedAt   string  `json:"$createdAt"`
	UpdatedAt   string  `json:"$updatedAt"`
	TeamID      string  `json:"teamId"`
	Plan        string  `json:"plan"`
	Amount      float64 `json:"amount"`
	Tax         float64 `json:"tax"`
	TaxAmount   float64 `json:"taxAmount"`
	GrossAmount float64 `json:"grossAmount"`
	CreditsUsed float64 `json:"creditsUsed"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	LastError   string  `json:"lastError"`
	DueAt       string  `json:"dueAt"`
	From        string  `json:"from"`
	To          string  `json:"to"`
}

// EstimationDeleteOrganization lists what blocks deleting an organization.
type EstimationDeleteOrganization struct {
	UnpaidInvoices []Invoice `json:"unpaidInvoices"`
}
