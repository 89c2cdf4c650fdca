package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

// TransformFactory builds an InputTransform from string parameters,
// mirroring the teacher's TransformFactory contract.
type TransformFactory func(params map[string]string) (InputTransform, error)

// Registry maps transform names to the factories that construct them.
type Registry struct {
	factories map[string]TransformFactory
}

// NewRegistry builds a Registry with every built-in transform registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]TransformFactory)}
	r.Register("postpone_retirement", createPostponeRetirement)
	r.Register("delay_ss", createDelaySSClaim)
	r.Register("adjust_withdrawal_rate", createAdjustWithdrawalRate)
	r.Register("set_withdrawal_strategy", createSetWithdrawalStrategy)
	return r
}

// Register adds a transform factory under name.
func (r *Registry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create builds the named transform from params.
func (r *Registry) Create(name string, params map[string]string) (InputTransform, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(params)
}

// List returns every registered transform name.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// ParseTransformSpec parses "name:param1=value1,param2=value2" into a
// constructed InputTransform, mirroring the teacher's spec grammar.
func (r *Registry) ParseTransformSpec(spec string) (InputTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, pair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(pair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", pair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

func createPostponeRetirement(params map[string]string) (InputTransform, error) {
	monthsStr, ok := params["months"]
	if !ok {
		return nil, fmt.Errorf("postpone_retirement requires 'months' parameter")
	}
	months, err := strconv.Atoi(monthsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid months value: %w", err)
	}
	return &PostponeRetirement{Months: months}, nil
}

func createDelaySSClaim(params map[string]string) (InputTransform, error) {
	ageStr, ok := params["age"]
	if !ok {
		return nil, fmt.Errorf("delay_ss requires 'age' parameter")
	}
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return nil, fmt.Errorf("invalid age value: %w", err)
	}
	return &DelaySSClaim{Age: age}, nil
}

func createAdjustWithdrawalRate(params map[string]string) (InputTransform, error) {
	rateStr, ok := params["rate"]
	if !ok {
		return nil, fmt.Errorf("adjust_withdrawal_rate requires 'rate' parameter")
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate value: %w", err)
	}
	return &AdjustWithdrawalRate{Rate: rate}, nil
}

func createSetWithdrawalStrategy(params map[string]string) (InputTransform, error) {
	kindStr, ok := params["kind"]
	if !ok {
		return nil, fmt.Errorf("set_withdrawal_strategy requires 'kind' parameter")
	}
	customPct := decimal.Zero
	if pctStr, ok := params["custom_traditional_pct"]; ok {
		parsed, err := decimal.NewFromString(pctStr)
		if err != nil {
			return nil, fmt.Errorf("invalid custom_traditional_pct value: %w", err)
		}
		customPct = parsed
	}
	return &SetWithdrawalStrategy{Kind: domain.WithdrawalStrategyKind(kindStr), CustomTraditionalPct: customPct}, nil
}
