package service

import (
	"fmt"

	"finance-toolkit/domain"
)

// Tool describes one calculator view: what it asks for and how it answers.
type Tool struct {
	Key         domain.ToolKey
	Label       domain.ToolLabel
	Title       string
	Description string // markdown
	Formula     string
	Fields      []domain.Field
	Tone        domain.Tone

	evaluate func(in map[string]float64) outcome
}

type outcome struct {
	metrics  []domain.Metric
	headline func(p headlineContext) string // markdown
	chart    []domain.Bar
}

type headlineContext struct {
	in  map[string]float64
	out map[string]string // formatted metrics by name
	fmt *Formatter
}

func rateField(upper float64) domain.Field {
	return domain.Field{
		Name: FieldRate, Label: "Expected Annual Return (%)",
		Min: 1, Max: upper, Bounded: true, Default: 10, Step: 0.01,
	}
}

func moneyField(name, label string, def, step float64) domain.Field {
	return domain.Field{
		Name: name, Label: label,
		Min: 0, Bounded: true, NoMax: true, Default: def, Step: step, Money: true,
	}
}

func yearsMetric(years float64) []domain.Metric {
	return []domain.Metric{{Name: "years", Label: "Years", Value: years, Kind: domain.KindYears}}
}

func growthTool(key domain.ToolKey, title, verb, formula string, years func(float64) float64) *Tool {
	return &Tool{
		Key:         key,
		Title:       title,
		Description: fmt.Sprintf("**Find out how many years it takes to %s your money.**", verb),
		Formula:     formula,
		Fields:      []domain.Field{rateField(100)},
		Tone:        domain.ToneSuccess,
		evaluate: func(in map[string]float64) outcome {
			return outcome{
				metrics: yearsMetric(years(in[FieldRate])),
				headline: func(p headlineContext) string {
					return fmt.Sprintf("At %s%%, your money will **%s** in approx **%s**.",
						p.fmt.Number(p.in[FieldRate]), verb, p.out["years"])
				},
			}
		},
	}
}

func defaultTools() []*Tool {
	return []*Tool{
		growthTool(domain.ToolDoubling, "Rule of 72 📈", "DOUBLE", "Years = 72 / Interest Rate", DoublingYears),
		growthTool(domain.ToolTripling, "Rule of 114 🚀", "TRIPLE", "Years = 114 / Interest Rate", TriplingYears),
		growthTool(domain.ToolQuadrupling, "Rule of 144 💰", "QUADRUPLE", "Years = 144 / Interest Rate", QuadruplingYears),
		{
			Key:         domain.ToolInflation,
			Title:       "Rule of 70 💸",
			Description: "**Find out how fast Inflation HALVES your money's purchasing power.**",
			Formula:     "Years = 70 / Inflation Rate",
			Fields: []domain.Field{{
				Name: FieldInflation, Label: "Inflation Rate (%)",
				Min: 1, Max: 50, Bounded: true, Default: 6, Step: 0.01,
			}},
			Tone: domain.ToneWarning,
			evaluate: func(in map[string]float64) outcome {
				return outcome{
					metrics: yearsMetric(InflationHalvingYears(in[FieldInflation])),
					headline: func(p headlineContext) string {
						return fmt.Sprintf("At %s%% inflation, your money will lose **HALF its value** in **%s**.",
							p.fmt.Number(p.in[FieldInflation]), p.out["years"])
					},
				}
			},
		},
		{
			Key:         domain.ToolAllocation,
			Title:       "The 110 Rule ⚖️",
			Description: "**Determine how much Equity (Stocks) you should hold.**",
			Formula:     "Equity % = 110 - Age",
			Fields: []domain.Field{{
				Name: FieldAge, Label: "Your Age",
				Min: 18, Max: 100, Bounded: true, Default: 25, Step: 1, Integer: true,
			}},
			Tone: domain.ToneInfo,
			evaluate: func(in map[string]float64) outcome {
				res := AssetAllocation(in[FieldAge])
				return outcome{
					metrics: []domain.Metric{
						{Name: "equity", Label: "Equity (Stocks)", Value: res.Equity, Kind: domain.KindPercent},
						{Name: "debt", Label: "Debt (Bonds/FD)", Value: res.Debt, Kind: domain.KindPercent},
					},
					chart: []domain.Bar{
						{Label: "Equity", Value: res.Equity},
						{Label: "Debt", Value: res.Debt},
					},
				}
			},
		},
		{
			Key:         domain.ToolEmergency,
			Title:       "The 3-6 Rule 🛡️",
			Description: "**Calculate the Emergency Fund you need.**",
			Fields:      []domain.Field{moneyField(FieldExpense, "Monthly Expenses", 25000, 500)},
			Tone:        domain.ToneInfo,
			evaluate: func(in map[string]float64) outcome {
				res := EmergencyFund(in[FieldExpense])
				return outcome{
					metrics: []domain.Metric{
						{Name: "min", Label: "Minimum (3 months)", Value: res.Min, Kind: domain.KindMoney},
						{Name: "max", Label: "Maximum (6 months)", Value: res.Max, Kind: domain.KindMoney},
					},
					headline: func(p headlineContext) string {
						return fmt.Sprintf("You should save between **%s** and **%s**.", p.out["min"], p.out["max"])
					},
				}
			},
		},
		{
			Key:         domain.ToolBudget,
			Title:       "50-30-20 Rule 📊",
			Description: "**The classic budgeting framework.**",
			Fields:      []domain.Field{moneyField(FieldIncome, "Monthly Income (After Tax)", 50000, 1000)},
			Tone:        domain.ToneInfo,
			evaluate: func(in map[string]float64) outcome {
				res := BudgetSplit(in[FieldIncome])
				return outcome{
					metrics: []domain.Metric{
						{Name: "needs", Label: "Needs (50%)", Value: res.Needs, Kind: domain.KindMoney},
						{Name: "wants", Label: "Wants (30%)", Value: res.Wants, Kind: domain.KindMoney},
						{Name: "savings", Label: "Savings (20%)", Value: res.Savings, Kind: domain.KindMoney},
					},
				}
			},
		},
		{
			Key:         domain.ToolRetirement,
			Title:       "The 4% Rule 🏖️",
			Description: "**Safe annual withdrawal from retirement corpus.**",
			Fields:      []domain.Field{moneyField(FieldCorpus, "Total Retirement Corpus", 1000000, 10000)},
			Tone:        domain.ToneSuccess,
			evaluate: func(in map[string]float64) outcome {
				res := RetirementWithdrawal(in[FieldCorpus])
				return outcome{
					metrics: []domain.Metric{
						{Name: "annual", Label: "Per Year", Value: res.Annual, Kind: domain.KindMoney},
						{Name: "monthly", Label: "Per Month", Value: res.Monthly, Kind: domain.KindMoney},
					},
					headline: func(p headlineContext) string {
						return fmt.Sprintf("Safe Withdrawal: **%s/year** (%s/month).", p.out["annual"], p.out["monthly"])
					},
				}
			},
		},
		{
			Key:         domain.ToolCar,
			Title:       "20-4-10 Rule 🚗",
			Description: "**How much Car can you afford?**",
			Fields: []domain.Field{
				moneyField(FieldIncome, "Monthly Income", 80000, 1000),
				{Name: FieldLoanRate, Label: "Car Loan Interest Rate (%)", Default: 9.0, Step: 0.01},
			},
			Tone: domain.ToneInfo,
			evaluate: func(in map[string]float64) outcome {
				res := CarAffordability(domain.CarInput{
					MonthlyIncome: in[FieldIncome],
					LoanRate:      in[FieldLoanRate],
				})
				return outcome{
					metrics: []domain.Metric{
						{Name: "max_price", Label: "Max Budget", Value: res.MaxPrice, Kind: domain.KindMoney},
						{Name: "max_emi", Label: "Max EMI (10%)", Value: res.MaxEMI, Kind: domain.KindMoney},
						{Name: "down_payment", Label: "Down Payment", Value: res.DownPayment, Kind: domain.KindMoney},
						{Name: "max_loan", Label: "Max Loan", Value: res.MaxLoan, Kind: domain.KindMoney},
					},
					headline: func(p headlineContext) string {
						return fmt.Sprintf("🚗 Max Budget: **%s**", p.out["max_price"])
					},
				}
			},
		},
	}
}
