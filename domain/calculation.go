package domain

type MetricKind string

const (
	KindMoney   MetricKind = "money"
	KindYears   MetricKind = "years"
	KindPercent MetricKind = "percent"
)

type Field struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Bounded bool // false means no declared range, e.g. the car loan rate
	NoMax   bool
	Default float64
	Step    float64
	Integer bool
	Money   bool
}

type Metric struct {
	Name      string     `json:"name"`
	Label     string     `json:"label"`
	Value     float64    `json:"value"`
	Kind      MetricKind `json:"kind"`
	Formatted string     `json:"formatted,omitempty"`
}

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
)

type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Calculation struct {
	Tool     ToolKey            `json:"tool"`
	Label    ToolLabel          `json:"label"`
	Currency string             `json:"currency"`
	Inputs   map[string]float64 `json:"inputs"`
	Metrics  []Metric           `json:"metrics"`
	Headline string             `json:"headline,omitempty"`
	Tone     Tone               `json:"tone,omitempty"`
	Chart    []Bar              `json:"chart,omitempty"`
}

type CalculateRequest struct {
	Tool     ToolKey            `json:"tool"`
	Currency string             `json:"currency"`
	Inputs   map[string]float64 `json:"inputs"`
}
