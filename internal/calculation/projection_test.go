package calculation

import (
	"testing"

	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestProject_NonPositiveSpendingIsEmpty(t *testing.T) {
	for _, monthly := range []string{"0", "-1", "-2500.75"} {
		t.Run(monthly, func(t *testing.T) {
			records := Project(d(monthly), 30)
			assert.NotNil(t, records)
			assert.Empty(t, records)
			assert.True(t, TotalLifetimeSpending(records).IsZero())
		})
	}
}

func TestProject_AgeAtOrBeyondLifeExpectancyIsEmpty(t *testing.T) {
	for _, age := range []int{85, 86, 120} {
		assert.Empty(t, Project(d("1000"), age), "age %d", age)
	}
}

func TestProject_SequenceLengthAndOrder(t *testing.T) {
	for _, age := range []int{0, 18, 25, 28, 64, 80, 84} {
		records := Project(d("1500"), age)
		require.Len(t, records, domain.LifeExpectancy-age, "age %d", age)
		for i, r := range records {
			assert.Equal(t, i, r.Index)
			assert.Equal(t, age+i, r.Age)
			assert.Equal(t, domain.YearLabel(age+i), r.Year)
		}
	}
}

func TestProject_CumulativeIsNonDecreasing(t *testing.T) {
	records := Project(d("2750.40"), 18)
	require.NotEmpty(t, records)
	for i := 1; i < len(records); i++ {
		assert.True(t, records[i].Amount.GreaterThanOrEqual(records[i-1].Amount),
			"amount dropped at %s: %s -> %s", records[i].Year, records[i-1].Amount, records[i].Amount)
	}
}

func TestProject_IsDeterministic(t *testing.T) {
	a := Project(d("3210.99"), 21)
	b := Project(d("3210.99"), 21)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Year, b[i].Year)
		assert.True(t, a[i].YearlySpend.Equal(b[i].YearlySpend))
		assert.True(t, a[i].Amount.Equal(b[i].Amount))
		assert.Equal(t, a[i].IsLifeEvent, b[i].IsLifeEvent)
		assert.Equal(t, a[i].Event, b[i].Event)
		assert.Equal(t, a[i].Fill, b[i].Fill)
	}
}

func TestProject_MarriageYear(t *testing.T) {
	records := Project(d("1000"), 28)
	require.NotEmpty(t, records)

	first := records[0]
	assert.Equal(t, "Age 28", first.Year)
	assert.Equal(t, "24000", first.YearlySpend.String())
	assert.Equal(t, "24000", first.Amount.String())
	assert.True(t, first.IsLifeEvent)
	assert.Equal(t, "Marriage", first.Event)
	assert.Equal(t, "hsl(220 90% 45%)", first.Fill)
}

func TestProject_FirstChildWindow(t *testing.T) {
	records := Project(d("1000"), 25)

	at := func(age int) domain.YearRecord {
		t.Helper()
		r := records[age-25]
		require.Equal(t, age, r.Age)
		return r
	}

	assert.Equal(t, "21600", at(30).YearlySpend.String())
	assert.Equal(t, "First Child", at(30).Event)

	// 47 is the last year of the First Child window, 48 the first year after it
	assert.Equal(t, "64800", at(47).YearlySpend.String()) // 1.8 * 1.5 * 2
	assert.Equal(t, "36000", at(48).YearlySpend.String()) // 1.5 * 2
}

func TestProject_OverlapCompoundsAndLastEventNamesTheYear(t *testing.T) {
	records := Project(d("1000"), 25)

	testCases := []struct {
		age    int
		spend  string
		event  string
		amount string
	}{
		{age: 25, spend: "18000", event: "College", amount: "18000"},
		{age: 26, spend: "12000", event: "", amount: "30000"},
		{age: 33, spend: "32400", event: "Second Child", amount: "175200"},
		{age: 45, spend: "64800", event: "Children College", amount: "596400"},
		{age: 49, spend: "18000", event: "Second Child", amount: "780000"},
		{age: 51, spend: "12000", event: "", amount: "810000"},
		{age: 65, spend: "15600", event: "Retirement", amount: "981600"},
		{age: 84, spend: "15600", event: "Retirement", amount: "1278000"},
	}

	for _, tc := range testCases {
		r := records[tc.age-25]
		assert.Equal(t, tc.spend, r.YearlySpend.String(), "yearly at %d", tc.age)
		assert.Equal(t, tc.event, r.Event, "event at %d", tc.age)
		assert.Equal(t, tc.event != "", r.IsLifeEvent, "isLifeEvent at %d", tc.age)
		assert.Equal(t, tc.amount, r.Amount.String(), "amount at %d", tc.age)
	}
	assert.Equal(t, "1278000", TotalLifetimeSpending(records).String())
}

func TestProject_CumulativeIsRoundedFromUnroundedSum(t *testing.T) {
	// 1234.56 * 12 * 1.3 = 19259.136 per retirement year
	records := Project(d("1234.56"), 80)
	require.Len(t, records, 5)

	for _, r := range records {
		assert.Equal(t, "19259", r.YearlySpend.String())
	}
	// 5 * 19259.136 = 96295.68, not 5 * 19259
	assert.Equal(t, "96296", records[4].Amount.String())
}

func TestProjectWith_CustomCalendarAndHorizon(t *testing.T) {
	cal := domain.NewEventCalendar(
		domain.LifeEvent{Age: 40, Name: "Sabbatical", Multiplier: d("0.5"), Duration: 1},
		domain.LifeEvent{Age: 40, Name: "Travel", Multiplier: d("3"), Duration: 2},
	)

	records := ProjectWith(d("100"), 39, cal, 43)
	require.Len(t, records, 4)

	assert.Equal(t, "1200", records[0].YearlySpend.String())
	assert.Equal(t, "1800", records[1].YearlySpend.String()) // 1200 * 0.5 * 3
	assert.Equal(t, "Travel", records[1].Event)
	assert.Equal(t, "3600", records[2].YearlySpend.String())
	assert.Equal(t, "1200", records[3].YearlySpend.String())
	assert.Equal(t, "7800", records[3].Amount.String())

	assert.Empty(t, ProjectWith(d("100"), 43, cal, 43))
	assert.Len(t, ProjectWith(d("100"), 39, domain.EventCalendar{}, 43), 4)
}

func TestTotalLifetimeSpending(t *testing.T) {
	assert.True(t, TotalLifetimeSpending(nil).IsZero())
	assert.Equal(t, "1236000", TotalLifetimeSpending(Project(d("1000"), 28)).String())
	assert.Equal(t, "3834000", TotalLifetimeSpending(Project(d("3000"), 25)).String())
}
