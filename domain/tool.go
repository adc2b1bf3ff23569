package domain

type ToolKey string

const (
	ToolHome        ToolKey = "home"
	ToolDoubling    ToolKey = "doubling"
	ToolTripling    ToolKey = "tripling"
	ToolQuadrupling ToolKey = "quadrupling"
	ToolInflation   ToolKey = "inflation"
	ToolAllocation  ToolKey = "allocation"
	ToolEmergency   ToolKey = "emergency"
	ToolBudget      ToolKey = "budget"
	ToolRetirement  ToolKey = "retirement"
	ToolCar         ToolKey = "car"
)

type ToolLabel string

const HomeLabel ToolLabel = "Home"

type ToolEntry struct {
	Key   ToolKey
	Label ToolLabel
}

// tools is the sidebar order. It is never mutated; callers get copies.
var tools = [...]ToolEntry{
	{ToolHome, HomeLabel},
	{ToolDoubling, "Rule of 72 (Doubling)"},
	{ToolTripling, "Rule of 114 (Tripling)"},
	{ToolQuadrupling, "Rule of 144 (Quadrupling)"},
	{ToolInflation, "Rule of 70 (Inflation)"},
	{ToolAllocation, "The 110 Rule (Asset Allocation)"},
	{ToolEmergency, "The 3-6 Rule (Emergency Fund)"},
	{ToolBudget, "50-30-20 Rule (Budgeting)"},
	{ToolRetirement, "The 4% Rule (Retirement)"},
	{ToolCar, "20-4-10 Rule (Car Buying)"},
}

// Tools returns the key/label table in sidebar order.
func Tools() []ToolEntry {
	out := make([]ToolEntry, len(tools))
	copy(out[:], tools[:])
	return out
}

// LabelFor returns the label for key and whether key is known.
func LabelFor(key ToolKey) (ToolLabel, bool) {
	for _, t := range tools {
		if t.Key == key {
			return t.Label, true
		}
	}
	return "", false
}

// KeyFor is the reverse of LabelFor.
func KeyFor(label ToolLabel) (ToolKey, bool) {
	for _, t := range tools {
		if t.Label == label {
			return t.Key, true
		}
	}
	return "", false
}
