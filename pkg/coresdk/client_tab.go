package coresdk

import (
	"context"
	"net/http"
	"net/url"
)

// The bill tab is bound to the client's cookie jar.

func (c *SDKClient) Members(ctx context.Context) ([]Member, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/tab/members", nil, nil)
	if err != nil {
		return nil, err
	}

	var out MembersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Members, nil
}

func (c *SDKClient) AddMember(ctx context.Context, name string) (*Member, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/tab/members", MemberRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var out Member
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) RemoveMember(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/tab/members/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *SDKClient) Expenses(ctx context.Context) ([]Expense, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/tab/expenses", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ExpensesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Expenses, nil
}

func (c *SDKClient) AddExpense(ctx context.Context, req ExpenseRequest) (*Expense, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/tab/expenses", req)
	if err != nil {
		return nil, err
	}

	var out Expense
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) RemoveExpense(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/tab/expenses/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *SDKClient) Summary(ctx context.Context) (*TabSummary, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/tab/summary", nil, nil)
	if err != nil {
		return nil, err
	}

	var out TabSummary
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Settlements returns the transfers that square the tab. It fails with
// ErrorCodeOrphanExpenses while expenses belong to removed members.
func (c *SDKClient) Settlements(ctx context.Context) ([]Transfer, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/tab/settlements", nil, nil)
	if err != nil {
		return nil, err
	}

	var out SettlementsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Transfers, nil
}
