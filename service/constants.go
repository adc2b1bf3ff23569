package service

const (
	DoublingNumerator    = 72.0
	TriplingNumerator    = 114.0
	QuadruplingNumerator = 144.0
	InflationNumerator   = 70.0

	AllocationBase = 110.0

	EmergencyMinMonths = 3.0
	EmergencyMaxMonths = 6.0

	NeedsShare   = 0.50
	WantsShare   = 0.30
	SavingsShare = 0.20

	SafeWithdrawalRate = 0.04

	CarEMIShare       = 0.10 // EMI capped at 10% of monthly income
	CarLoanTermMonths = 4 * 12
	CarLoanShare      = 0.8 // 20% down, 80% financed
	CarDownShare      = 0.2
)

// Input field names shared by the form and the JSON API.
const (
	FieldRate      = "rate"
	FieldInflation = "inflation"
	FieldAge       = "age"
	FieldExpense   = "expense"
	FieldIncome    = "income"
	FieldCorpus    = "corpus"
	FieldLoanRate  = "loan_rate"
)
