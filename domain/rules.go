package domain

type AllocationResult struct {
	Equity float64
	Debt   float64
}

type EmergencyFundResult struct {
	Min float64
	Max float64
}

type BudgetResult struct {
	Needs   float64
	Wants   float64
	Savings float64
}

type RetirementResult struct {
	Annual  float64
	Monthly float64
}

type CarInput struct {
	MonthlyIncome float64
	LoanRate      float64
}

type CarResult struct {
	MaxEMI      float64
	MaxLoan     float64
	MaxPrice    float64
	DownPayment float64
}
