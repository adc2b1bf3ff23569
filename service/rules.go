package service

import (
	"math"

	"finance-toolkit/domain"
)

// DoublingYears is the Rule of 72.
func DoublingYears(rate float64) float64 {
	return DoublingNumerator / rate
}

// TriplingYears is the Rule of 114.
func TriplingYears(rate float64) float64 {
	return TriplingNumerator / rate
}

// QuadruplingYears is the Rule of 144.
func QuadruplingYears(rate float64) float64 {
	return QuadruplingNumerator / rate
}

// InflationHalvingYears is the Rule of 70: years until purchasing power halves.
func InflationHalvingYears(inflation float64) float64 {
	return InflationNumerator / inflation
}

// AssetAllocation applies the 110 rule. Equity is kept within [0, 100].
func AssetAllocation(age float64) domain.AllocationResult {
	equity := math.Min(math.Max(AllocationBase-age, 0), 100)
	return domain.AllocationResult{
		Equity: equity,
		Debt:   100 - equity,
	}
}

func EmergencyFund(monthlyExpense float64) domain.EmergencyFundResult {
	return domain.EmergencyFundResult{
		Min: monthlyExpense * EmergencyMinMonths,
		Max: monthlyExpense * EmergencyMaxMonths,
	}
}

func BudgetSplit(monthlyIncome float64) domain.BudgetResult {
	return domain.BudgetResult{
		Needs:   monthlyIncome * NeedsShare,
		Wants:   monthlyIncome * WantsShare,
		Savings: monthlyIncome * SavingsShare,
	}
}

func RetirementWithdrawal(corpus float64) domain.RetirementResult {
	annual := corpus * SafeWithdrawalRate
	return domain.RetirementResult{
		Annual:  annual,
		Monthly: annual / 12,
	}
}

// CarAffordability applies 20-4-10: 20% down, 4 year loan, EMI at most 10%
// of monthly income. The loan is the present value of the EMI annuity.
func CarAffordability(input domain.CarInput) domain.CarResult {
	maxEMI := input.MonthlyIncome * CarEMIShare
	n := float64(CarLoanTermMonths)

	var maxLoan float64
	if input.LoanRate == 0 {
		maxLoan = maxEMI * n
	} else {
		r := (input.LoanRate / 100) / 12
		// 1-(1+r)^-n via Expm1/Log1p keeps precision for tiny r.
		maxLoan = maxEMI * -math.Expm1(-n*math.Log1p(r)) / r
	}

	maxPrice := maxLoan / CarLoanShare
	return domain.CarResult{
		MaxEMI:      maxEMI,
		MaxLoan:     maxLoan,
		MaxPrice:    maxPrice,
		DownPayment: maxPrice * CarDownShare,
	}
}
