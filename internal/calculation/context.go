package calculation

import (
	"github.com/lifetracker/spending-calculator/internal/domain"
	money "github.com/lifetracker/spending-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	retirementIncomeRatio = decimal.NewFromFloat(0.8)
	emergencyFundMonths   = decimal.NewFromInt(6)
	investmentRate        = decimal.NewFromFloat(0.2)
)

// CalculateSpendingContext derives the retirement, emergency-fund and investment figures
// from monthly spending. They do not depend on the projection.
func CalculateSpendingContext(monthlySpending decimal.Decimal) domain.SpendingContext {
	monthly := money.NewMoneyFromDecimal(monthlySpending)
	return domain.SpendingContext{
		RetirementMonthlyIncome: monthly.Mul(retirementIncomeRatio).Whole().Decimal,
		EmergencyFund:           monthly.Mul(emergencyFundMonths).Decimal,
		YearlyInvestmentTarget:  monthly.Annual().Mul(investmentRate).Decimal,
	}
}

// LifeStatistics returns the illustrative "Life in Numbers" figures.
func LifeStatistics() []domain.LifeStatistic {
	return []domain.LifeStatistic{
		{
			Label:       "Global Average Spending",
			Value:       decimal.NewFromInt(1200000),
			Format:      domain.FormatCurrency,
			Description: "lifetime spending per person in developed countries",
		},
		{
			Label:       "Inflation Impact",
			Value:       decimal.NewFromFloat(2.5),
			Format:      domain.FormatPercent,
			Description: "average yearly increase in living costs",
		},
		{
			Label:       "Major Life Events",
			Value:       decimal.NewFromInt(10),
			Format:      domain.FormatNumber,
			Description: "significant financial milestones in an average lifetime",
		},
		{
			Label:       "Working Years",
			Value:       decimal.NewFromInt(40),
			Format:      domain.FormatNumber,
			Description: "average years of active income generation",
		},
	}
}

// MoneyTips returns the fixed planning tips shown with every projection.
func MoneyTips() []string {
	return []string{
		"Consider inflation in your long-term planning (~2.5% yearly)",
		"Build an emergency fund before major life events",
		"Adjust spending habits during high-expense periods",
	}
}
