package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/pkg/slogx"
)

var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvalidVariables     = errors.New("invalid operation variables")
)

// Operation is one of the GraphQL-shaped calls the dispatcher can answer.
type Operation string

const (
	OpCreateUser      Operation = "createUser"
	OpUpdateUser      Operation = "updateUser"
	OpGetUser         Operation = "getUser"
	OpListUsers       Operation = "listUsers"
	OpCreatePortfolio Operation = "createPortfolio"
	OpDeletePortfolio Operation = "deletePortfolio"
	OpListPortfolios  Operation = "listPortfolios"
)

// Operations lists every supported operation.
var Operations = []Operation{
	OpCreateUser, OpUpdateUser, OpGetUser, OpListUsers,
	OpCreatePortfolio, OpDeletePortfolio, OpListPortfolios,
}

var (
	operationName     = regexp.MustCompile(`(?:query|mutation|subscription)\s+(\w+)`)
	operationsByLower = func() map[string]Operation {
		m := make(map[string]Operation, len(Operations))
		for _, op := range Operations {
			m[strings.ToLower(string(op))] = op
		}
		return m
	}()
)

// ParseOperation pulls the operation name out of a query document.
func ParseOperation(document string) (Operation, error) {
	m := operationName.FindStringSubmatch(document)
	if m == nil {
		return "", fmt.Errorf("%w: no operation name in document", ErrUnsupportedOperation)
	}

	op, ok := operationsByLower[strings.ToLower(m[1])]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOperation, m[1])
	}
	return op, nil
}

// Response mirrors a GraphQL result body.
type Response struct {
	Data map[string]any `json:"data"`
}

// Dispatcher answers operations from the local collections after a fixed
// artificial delay. It is not a GraphQL executor: selection sets are ignored.
type Dispatcher struct {
	Users     *Collection
	Portfolio *Collection
	Latency   time.Duration
	Metrics   Recorder
}

// DispatchDocument parses the operation out of document and runs it.
func (d *Dispatcher) DispatchDocument(ctx context.Context, document string, vars map[string]any) (Response, error) {
	op, err := ParseOperation(document)
	if err != nil {
		recorderOrNop(d.Metrics).ObserveOperation("unsupported", OutcomeError, 0)
		return Response{}, err
	}
	return d.Dispatch(ctx, op, vars)
}

// Dispatch runs op. Variables: input for create and update, id for get and
// delete, an optional filter for lists.
func (d *Dispatcher) Dispatch(ctx context.Context, op Operation, vars map[string]any) (Response, error) {
	start := time.Now()
	log := slogx.FromContext(ctx)

	data, err := d.dispatch(ctx, op, vars)

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
		log.Warn("operation failed", slog.String("operation", string(op)), slog.Any("error", err))
	}
	recorderOrNop(d.Metrics).ObserveOperation(string(op), outcome, time.Since(start))

	if err != nil {
		return Response{}, err
	}
	return Response{Data: map[string]any{string(op): data}}, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, op Operation, vars map[string]any) (any, error) {
	if err := simulateLatency(ctx, d.Latency); err != nil {
		return nil, err
	}

	switch op {
	case OpCreateUser:
		input, err := inputVar(vars)
		if err != nil {
			return nil, err
		}
		return d.Users.Create(ctx, input)

	case OpUpdateUser:
		input, err := inputVar(vars)
		if err != nil {
			return nil, err
		}
		id, _ := input[domain.FieldID].(string)
		if id == "" {
			return nil, fmt.Errorf("%w: input.id is required", ErrInvalidVariables)
		}
		return d.Users.Update(ctx, id, input)

	case OpGetUser:
		id, err := idVar(vars)
		if err != nil {
			return nil, err
		}
		rec, err := d.Users.Get(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return rec, err

	case OpListUsers:
		return d.list(ctx, d.Users, vars)

	case OpCreatePortfolio:
		input, err := inputVar(vars)
		if err != nil {
			return nil, err
		}
		return d.Portfolio.Create(ctx, input)

	case OpDeletePortfolio:
		id, err := idVar(vars)
		if err != nil {
			return nil, err
		}
		deleted, err := d.Portfolio.Get(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			deleted = domain.Record{domain.FieldID: id}
		} else if err != nil {
			return nil, err
		}
		if err := d.Portfolio.Delete(ctx, id); err != nil {
			return nil, err
		}
		return deleted, nil

	case OpListPortfolios:
		return d.list(ctx, d.Portfolio, vars)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
	}
}

func (d *Dispatcher) list(ctx context.Context, c *Collection, vars map[string]any) (any, error) {
	records, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := filterVar(vars)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Record, 0, len(records))
	for _, r := range records {
		ok, err := matchesFilter(r, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, r)
		}
	}
	return map[string]any{"items": items}, nil
}

func inputVar(vars map[string]any) (domain.Fields, error) {
	switch v := vars["input"].(type) {
	case map[string]any:
		return domain.Fields(v), nil
	case domain.Fields:
		return v, nil
	case domain.Patch:
		return v.Fields(), nil
	default:
		return nil, fmt.Errorf("%w: input must be an object", ErrInvalidVariables)
	}
}

// idVar accepts a top-level id or input.id.
func idVar(vars map[string]any) (string, error) {
	if id, ok := vars["id"].(string); ok && id != "" {
		return id, nil
	}
	if input, err := inputVar(vars); err == nil {
		if id, ok := input[domain.FieldID].(string); ok && id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: id is required", ErrInvalidVariables)
}

func filterVar(vars map[string]any) (map[string]any, error) {
	raw, ok := vars["filter"]
	if !ok || raw == nil {
		return nil, nil
	}
	switch f := raw.(type) {
	case map[string]any:
		return f, nil
	case domain.Fields:
		return f, nil
	default:
		return nil, fmt.Errorf("%w: filter must be an object", ErrInvalidVariables)
	}
}

// matchesFilter applies {field: {eq: v}} and {field: {contains: s}}. A bare
// value is treated as eq.
func matchesFilter(r domain.Record, filter map[string]any) (bool, error) {
	for field, cond := range filter {
		ops, ok := cond.(map[string]any)
		if !ok {
			ops = map[string]any{"eq": cond}
		}

		for name, want := range ops {
			switch name {
			case "eq":
				if !jsonEqual(r[field], want) {
					return false, nil
				}
			case "contains":
				if !contains(r[field], want) {
					return false, nil
				}
			default:
				return false, fmt.Errorf("%w: filter operator %q", ErrInvalidVariables, name)
			}
		}
	}
	return true, nil
}

// contains is substring match on strings and membership on arrays.
func contains(got, want any) bool {
	switch g := got.(type) {
	case string:
		s, ok := want.(string)
		return ok && strings.Contains(g, s)
	case []any:
		for _, el := range g {
			if jsonEqual(el, want) {
				return true
			}
		}
	}
	return false
}
