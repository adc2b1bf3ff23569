package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"finance-toolkit/domain"
	"finance-toolkit/service"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type Author struct {
	Name string
	URL  string
}

type currencyOption struct {
	Code     string
	Display  string
	Selected bool
}

type toolOption struct {
	Key      domain.ToolKey
	Label    domain.ToolLabel
	Selected bool
}

type fieldView struct {
	Name   string
	Label  string
	Value  string
	Min    string
	Max    string
	Step   string
	Slider bool
}

type toolView struct {
	Key         domain.ToolKey
	Title       string
	Description template.HTML
	Formula     string
	Fields      []fieldView
	Headline    template.HTML
	Tone        domain.Tone
	Metrics     []domain.Metric
	Chart       []domain.Bar
	Error       string
}

type pageView struct {
	Currencies []currencyOption
	Tools      []toolOption
	IsHome     bool
	Welcome    template.HTML
	Tool       *toolView
	Disclaimer template.HTML
	Author     Author
}

// PageHandler renders the toolkit page: sidebar, the active view and the
// footer.
type PageHandler struct {
	calculator *service.Calculator
	markdown   *service.Markdown
	sessions   *SessionManager
	author     Author
	log        zerolog.Logger
}

func NewPageHandler(
	calculator *service.Calculator,
	markdown *service.Markdown,
	sessions *SessionManager,
	author Author,
	log zerolog.Logger,
) *PageHandler {
	return &PageHandler{
		calculator: calculator,
		markdown:   markdown,
		sessions:   sessions,
		author:     author,
		log:        log,
	}
}

func (h *PageHandler) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid query", http.StatusBadRequest)
		return
	}

	id, sess := h.sessions.Load(r)

	currency, ok := domain.CurrencyFor(r.Form.Get("currency"))
	if !ok {
		currency, ok = domain.CurrencyFor(sess.Currency)
		if !ok {
			currency = domain.DefaultCurrency
		}
	}

	deepLink := domain.ToolKey(r.Form.Get("tool"))
	sidebar := domain.ToolLabel(r.Form.Get("rule"))
	if deepLink == "" && sidebar == "" {
		sidebar = sess.Tool
	}
	active := service.ResolveTool(deepLink, sidebar)

	h.sessions.Save(id, domain.Session{Currency: currency.Code, Tool: active})

	view, err := h.buildView(r, currency, active)
	if err != nil {
		h.log.Error().Err(err).Str("tool", string(active)).Msg("failed to build page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Render into a buffer first so a template error never leaves a
	// half-written 200 response.
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.log.Error().Err(err).Msg("failed to execute page template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debug().Err(err).Msg("failed to write page")
	}
}

func (h *PageHandler) buildView(r *http.Request, currency domain.Currency, active domain.ToolLabel) (pageView, error) {
	view := pageView{Author: h.author}

	for _, c := range domain.Currencies() {
		view.Currencies = append(view.Currencies, currencyOption{
			Code:     c.Code,
			Display:  c.String(),
			Selected: c == currency,
		})
	}
	for _, t := range domain.Tools() {
		view.Tools = append(view.Tools, toolOption{
			Key:      t.Key,
			Label:    t.Label,
			Selected: t.Label == active,
		})
	}

	disclaimer, err := h.markdown.Render(disclaimerMarkdown)
	if err != nil {
		return pageView{}, err
	}
	view.Disclaimer = template.HTML(disclaimer)

	key, _ := domain.KeyFor(active)
	tool, ok := h.calculator.Tool(key)
	if !ok {
		view.IsHome = true
		welcome, err := h.markdown.Render(welcomeMarkdown(currency.String()))
		if err != nil {
			return pageView{}, err
		}
		view.Welcome = template.HTML(welcome)
		return view, nil
	}

	tv, err := h.buildToolView(r, tool, currency)
	if err != nil {
		return pageView{}, err
	}
	view.Tool = tv
	return view, nil
}

func (h *PageHandler) buildToolView(r *http.Request, tool *service.Tool, currency domain.Currency) (*toolView, error) {
	// Inputs posted for a different tool share names (e.g. income) but not
	// meaning, so they are only honoured for the tool they were entered on.
	useForm := r.Form.Get("inputs_for") == string(tool.Key)

	inputs := make(map[string]float64, len(tool.Fields))
	for _, f := range tool.Fields {
		if useForm {
			inputs[f.Name] = service.ParseField(f, r.Form.Get(f.Name))
		} else {
			inputs[f.Name] = f.Default
		}
	}

	description, err := h.markdown.RenderInline(tool.Description)
	if err != nil {
		return nil, err
	}

	tv := &toolView{
		Key:         tool.Key,
		Title:       tool.Title,
		Description: template.HTML(description),
		Formula:     tool.Formula,
		Tone:        tool.Tone,
	}
	for _, f := range tool.Fields {
		tv.Fields = append(tv.Fields, newFieldView(f, inputs[f.Name], currency))
	}

	calc, err := h.calculator.Evaluate(domain.CalculateRequest{
		Tool:     tool.Key,
		Currency: currency.Code,
		Inputs:   inputs,
	})
	if errors.Is(err, service.ErrNonFiniteResult) {
		tv.Error = "These inputs do not produce a meaningful result."
		return tv, nil
	}
	if err != nil {
		return nil, err
	}

	tv.Metrics = calc.Metrics
	tv.Chart = calc.Chart
	if calc.Headline != "" {
		headline, err := h.markdown.RenderInline(calc.Headline)
		if err != nil {
			return nil, err
		}
		tv.Headline = template.HTML(headline)
	}
	return tv, nil
}

func newFieldView(f domain.Field, value float64, currency domain.Currency) fieldView {
	fv := fieldView{
		Name:   f.Name,
		Label:  f.Label,
		Value:  formatInput(value),
		Slider: f.Integer,
	}
	if f.Money {
		fv.Label += " (" + currency.Symbol + ")"
	}
	if f.Bounded {
		fv.Min = formatInput(f.Min)
		if !f.NoMax {
			fv.Max = formatInput(f.Max)
		}
	}
	if f.Step > 0 {
		fv.Step = formatInput(f.Step)
	}
	return fv
}

// formatInput renders a value for an HTML input: no grouping, no trailing
// zeros.
func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
