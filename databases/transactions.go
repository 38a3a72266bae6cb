package databases

import (
	"context"
	"net/http"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/models"
)

// ListTransactionsParams holds the parameters of ListTransactions.
type ListTransactionsParams struct {
	Queries []string
}

// ListTransactions returns the open transactions.
func (s *Service) ListTransactions(ctx context.Context, p ListTransactionsParams) (*models.TransactionList, error) {
	params := map[string]any{}
	if p.Queries != nil {
		params["queries"] = p.Queries
	}

	return core.Fetch[models.TransactionList](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   "/databases/transactions",
		Params: params,
	})
}

// CreateTransactionParams holds the parameters of CreateTransaction.
type CreateTransactionParams struct {
	TTL *int
}

// CreateTransaction opens a transaction. TTL is in seconds; the server default
// applies when nil.
func (s *Service) CreateTransaction(ctx context.Context, p CreateTransactionParams) (*models.Transaction, error) {
	params := map[string]any{}
	if p.TTL != nil {
		params["ttl"] = *p.TTL
	}

	return core.Fetch[models.Transaction](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    "/databases/transactions",
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// GetTransactionParams holds the parameters of GetTransaction.
type GetTransactionParams struct {
	TransactionID string
}

// GetTransaction returns a transaction by ID.
func (s *Service) GetTransaction(ctx context.Context, p GetTransactionParams) (*models.Transaction, error) {
	if p.TransactionID == "" {
		return nil, core.NewMissingParameterError("transactionId")
	}

	path := core.ExpandPath("/databases/transactions/{transactionId}", "transactionId", p.TransactionID)

	return core.Fetch[models.Transaction](ctx, s.caller, &core.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// UpdateTransactionParams holds the parameters of UpdateTransaction.
type UpdateTransactionParams struct {
	TransactionID string
	Commit        *bool
	Rollback      *bool
}

// UpdateTransaction commits or rolls back a transaction.
func (s *Service) UpdateTransaction(ctx context.Context, p UpdateTransactionParams) (*models.Transaction, error) {
	if p.TransactionID == "" {
		return nil, core.NewMissingParameterError("transactionId")
	}

	path := core.ExpandPath("/databases/transactions/{transactionId}", "transactionId", p.TransactionID)
	params := map[string]any{}
	if p.Commit != nil {
		params["commit"] = *p.Commit
	}
	if p.Rollback != nil {
		params["rollback"] = *p.Rollback
	}

	return core.Fetch[models.Transaction](ctx, s.caller, &core.Request{
		Method:  http.MethodPatch,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}

// DeleteTransactionParams holds the parameters of DeleteTransaction.
type DeleteTransactionParams struct {
	TransactionID string
}

// DeleteTransaction deletes a transaction without committing it.
func (s *Service) DeleteTransaction(ctx context.Context, p DeleteTransactionParams) error {
	if p.TransactionID == "" {
		return core.NewMissingParameterError("transactionId")
	}

	path := core.ExpandPath("/databases/transactions/{transactionId}", "transactionId", p.TransactionID)

	return s.caller.Call(ctx, &core.Request{
		Method:  http.MethodDelete,
		Path:    path,
		Headers: core.JSONHeaders(),
	}, nil)
}

// CreateOperationsParams holds the parameters of CreateOperations.
type CreateOperationsParams struct {
	TransactionID string
	Operations    []models.Operation
}

// CreateOperations stages write operations in a transaction.
func (s *Service) CreateOperations(ctx context.Context, p CreateOperationsParams) (*models.Transaction, error) {
	if p.TransactionID == "" {
		return nil, core.NewMissingParameterError("transactionId")
	}

	path := core.ExpandPath("/databases/transactions/{transactionId}/operations", "transactionId", p.TransactionID)
	params := map[string]any{}
	if p.Operations != nil {
		params["operations"] = p.Operations
	}

	return core.Fetch[models.Transaction](ctx, s.caller, &core.Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: core.JSONHeaders(),
		Params:  params,
	})
}
