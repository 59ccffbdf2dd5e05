package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lifetracker/spending-calculator/internal/calculation"
	"github.com/lifetracker/spending-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints the years on either side of every event boundary for a monthly budget,
// defaulting to $1,000 from age 18.
func main() {
	monthly := decimal.NewFromInt(1000)
	age := 18
	if len(os.Args) > 1 {
		monthly = decimal.RequireFromString(os.Args[1])
	}
	if len(os.Args) > 2 {
		a, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad age %q\n", os.Args[2])
			os.Exit(2)
		}
		age = a
	}

	records := calculation.Project(monthly, age)
	if len(records) == 0 {
		fmt.Println("empty projection")
		return
	}

	for _, e := range domain.DefaultCalendar().Events() {
		fmt.Printf("%s [%d, %d) x%s\n", e.Name, e.Age, e.EndAge(), e.Multiplier.String())
		for _, boundary := range []int{e.Age - 1, e.Age, e.EndAge() - 1, e.EndAge()} {
			idx := boundary - age
			if idx < 0 || idx >= len(records) {
				continue
			}
			r := records[idx]
			fmt.Printf("  %-7s yearly=%s cumulative=%s event=%q\n", r.Year, r.YearlySpend.String(), r.Amount.String(), r.Event)
		}
	}
	fmt.Printf("total=%s\n", calculation.TotalLifetimeSpending(records).String())
}
