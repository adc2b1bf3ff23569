package service

import (
	"errors"
	"fmt"

	"finance-toolkit/domain"
)

var (
	ErrUnknownTool       = errors.New("unknown tool")
	ErrNonFiniteResult   = errors.New("inputs do not produce a finite result")
	errDuplicateRegistry = errors.New("tool registered twice")
)

// Calculator evaluates the rule-of-thumb tools. It holds no per-request
// state and is safe for concurrent use.
type Calculator struct {
	tools     map[domain.ToolKey]*Tool
	formatter *Formatter
}

// NewCalculator creates a Calculator with every tool from the key/label table.
func NewCalculator(formatter *Formatter) *Calculator {
	c := &Calculator{
		tools:     make(map[domain.ToolKey]*Tool),
		formatter: formatter,
	}
	for _, t := range defaultTools() {
		if err := c.register(t); err != nil {
			panic(err)
		}
	}
	return c
}

func (c *Calculator) register(t *Tool) error {
	label, ok := domain.LabelFor(t.Key)
	if !ok || t.Key == domain.ToolHome {
		return fmt.Errorf("register %q: %w", t.Key, ErrUnknownTool)
	}
	if _, dup := c.tools[t.Key]; dup {
		return fmt.Errorf("register %q: %w", t.Key, errDuplicateRegistry)
	}
	t.Label = label
	c.tools[t.Key] = t
	return nil
}

// Tool returns the calculator behind key. Home is not a calculator.
func (c *Calculator) Tool(key domain.ToolKey) (*Tool, bool) {
	t, ok := c.tools[key]
	return t, ok
}

// Tools lists the calculators in sidebar order.
func (c *Calculator) Tools() []*Tool {
	out := make([]*Tool, 0, len(c.tools))
	for _, e := range domain.Tools() {
		if t, ok := c.tools[e.Key]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (c *Calculator) Formatter() *Formatter {
	return c.formatter
}

// Evaluate clamps the request inputs, runs the tool and formats its metrics
// for the requested currency. An unknown currency code falls back to the
// default one.
func (c *Calculator) Evaluate(req domain.CalculateRequest) (domain.Calculation, error) {
	t, ok := c.tools[req.Tool]
	if !ok {
		return domain.Calculation{}, fmt.Errorf("%q: %w", req.Tool, ErrUnknownTool)
	}

	currency, ok := domain.CurrencyFor(req.Currency)
	if !ok {
		currency = domain.DefaultCurrency
	}

	in := ResolveInputs(t.Fields, req.Inputs)
	res := t.evaluate(in)

	formatted := make(map[string]string, len(res.metrics))
	for i := range res.metrics {
		m := &res.metrics[i]
		if !finite(m.Value) {
			return domain.Calculation{}, fmt.Errorf("%s: %w", m.Name, ErrNonFiniteResult)
		}
		m.Formatted = c.formatter.Metric(currency, *m)
		formatted[m.Name] = m.Formatted
	}

	calc := domain.Calculation{
		Tool:     t.Key,
		Label:    t.Label,
		Currency: currency.Code,
		Inputs:   in,
		Metrics:  res.metrics,
		Tone:     t.Tone,
		Chart:    res.chart,
	}
	if res.headline != nil {
		calc.Headline = res.headline(headlineContext{in: in, out: formatted, fmt: c.formatter})
	}
	return calc, nil
}
