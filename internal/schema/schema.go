// Package schema describes tool input contracts and validates raw argument
// bags against them. The contract is the single source of truth: it renders
// the JSON-Schema object advertised by listTools, and Validate is the only
// place untyped argument values are inspected. Values that pass validation
// come out coerced; values that don't never escape this package.
package schema

import (
	"encoding/json"
	"fmt"
)

// ParamType is the primitive type of a tool parameter.
type ParamType string

const (
	// TypeNumber accepts any JSON number (integer or float).
	TypeNumber ParamType = "number"
	// TypeString accepts a JSON string.
	TypeString ParamType = "string"
	// TypeBoolean accepts a JSON boolean.
	TypeBoolean ParamType = "boolean"
)

// Param declares one named tool parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Contract is the ordered set of parameters a tool accepts.
type Contract struct {
	Params []Param
}

// NewContract builds a contract from the given parameters. Declaration order
// is preserved and used for the advertised schema.
func NewContract(params ...Param) Contract {
	return Contract{Params: params}
}

// Properties renders the JSON-Schema "properties" mapping for the contract.
func (c Contract) Properties() map[string]any {
	props := make(map[string]any, len(c.Params))
	for _, p := range c.Params {
		props[p.Name] = map[string]any{
			"type":        string(p.Type),
			"description": p.Description,
		}
	}
	return props
}

// RequiredNames returns the names of all required parameters in declaration
// order.
func (c Contract) RequiredNames() []string {
	names := make([]string, 0)
	for _, p := range c.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// ValidationError reports a single argument violation with enough detail for
// the caller to fix the request.
type ValidationError struct {
	Param   string `json:"param"`           // Parameter that failed validation
	Value   any    `json:"value,omitempty"` // Value that was provided
	Message string `json:"message"`         // Human-readable error message
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Message)
}

// Args holds validated, coerced arguments. Numbers are normalized to
// float64. Keys not declared in the contract are never present.
type Args map[string]any

// Number returns the named argument as a float64.
func (a Args) Number(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

// String returns the named argument as a string.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Bool returns the named argument as a bool.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// Validate checks a raw argument bag against the contract and returns the
// coerced arguments. Missing required parameters and type mismatches yield a
// *ValidationError naming the offending parameter. Keys not declared in the
// contract are ignored so forward-compatible callers keep working. Validate
// performs no I/O and never mutates its inputs.
func Validate(c Contract, raw map[string]any) (Args, error) {
	for _, p := range c.Params {
		if !p.Required {
			continue
		}
		if _, ok := raw[p.Name]; !ok {
			return nil, &ValidationError{Param: p.Name, Message: "required parameter is missing"}
		}
	}

	args := make(Args, len(c.Params))
	for _, p := range c.Params {
		v, ok := raw[p.Name]
		if !ok {
			continue
		}
		coerced, err := coerce(p, v)
		if err != nil {
			return nil, err
		}
		args[p.Name] = coerced
	}
	return args, nil
}

func coerce(p Param, v any) (any, error) {
	switch p.Type {
	case TypeNumber:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int32:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint:
			return float64(n), nil
		case uint32:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, &ValidationError{Param: p.Name, Value: v, Message: "value is not interpretable as a number"}
			}
			return f, nil
		}
	case TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case TypeBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	}
	return nil, &ValidationError{
		Param:   p.Name,
		Value:   v,
		Message: fmt.Sprintf("expected type %s, got %T", p.Type, v),
	}
}
