package service

import "finance-toolkit/domain"

// ResolveTool picks the active view. A known sidebar label wins; otherwise a
// known deep-link key supplies the label; otherwise Home. Unknown values are
// ignored rather than reported.
func ResolveTool(deepLink domain.ToolKey, sidebar domain.ToolLabel) domain.ToolLabel {
	if sidebar != "" {
		if _, ok := domain.KeyFor(sidebar); ok {
			return sidebar
		}
	}
	if deepLink != "" {
		if label, ok := domain.LabelFor(deepLink); ok {
			return label
		}
	}
	return domain.HomeLabel
}
