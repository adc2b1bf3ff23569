package service

import (
	"testing"

	"finance-toolkit/domain"
)

func TestResolveTool(t *testing.T) {

	tests := []struct {
		name     string
		deepLink domain.ToolKey
		sidebar  domain.ToolLabel
		want     domain.ToolLabel
	}{
		{"nothing", "", "", domain.HomeLabel},
		{"deep link car", "car", "", "20-4-10 Rule (Car Buying)"},
		{"deep link home", "home", "", domain.HomeLabel},
		{"unknown deep link", "unknown", "", domain.HomeLabel},
		{"sidebar wins", "car", "The 4% Rule (Retirement)", "The 4% Rule (Retirement)"},
		{"unknown sidebar falls back to deep link", "doubling", "Rule of 1", "Rule of 72 (Doubling)"},
		{"label used as key is ignored", "Home", "", domain.HomeLabel},
		{"key used as label is ignored", "", "car", domain.HomeLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTool(tt.deepLink, tt.sidebar); got != tt.want {
				t.Errorf("ResolveTool(%q, %q) = %q, want %q", tt.deepLink, tt.sidebar, got, tt.want)
			}
		})
	}
}

func TestToolTable_OneLabelPerKey(t *testing.T) {

	seenKeys := map[domain.ToolKey]bool{}
	seenLabels := map[domain.ToolLabel]bool{}

	for _, e := range domain.Tools() {
		if seenKeys[e.Key] || seenLabels[e.Label] {
			t.Fatalf("duplicate entry %+v", e)
		}
		seenKeys[e.Key] = true
		seenLabels[e.Label] = true

		key, ok := domain.KeyFor(e.Label)
		if !ok || key != e.Key {
			t.Errorf("KeyFor(%q) = %q, %v", e.Label, key, ok)
		}
	}

	if len(seenKeys) != 10 {
		t.Errorf("expected 10 entries, got %d", len(seenKeys))
	}
	if first := domain.Tools()[0]; first.Key != domain.ToolHome {
		t.Errorf("expected Home first, got %+v", first)
	}
}

func TestToolTable_CopyIsIndependent(t *testing.T) {

	tools := domain.Tools()
	tools[0].Label = "Changed"

	if label, _ := domain.LabelFor(domain.ToolHome); label != domain.HomeLabel {
		t.Errorf("table was mutated through the copy: %q", label)
	}
}
