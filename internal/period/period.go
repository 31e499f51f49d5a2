package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period identifies a reporting period, either a quarter ("2025-Q1") or a
// calendar month ("2025-01"). Month is 0 for quarterly periods and Quarter
// is 0 for monthly ones.
type Period struct {
	Year    int
	Quarter int
	Month   int
}

// Quarterly returns the quarter period for year/q.
func Quarterly(year, q int) Period {
	return Period{Year: year, Quarter: q}
}

// Monthly returns the month period for year/month.
func Monthly(year, month int) Period {
	return Period{Year: year, Month: month}
}

// Current returns the quarter containing t.
func Current(t time.Time) Period {
	return Quarterly(t.Year(), (int(t.Month())-1)/3+1)
}

// String formats the period as "2025-Q1" or "2025-01".
func (p Period) String() string {
	if p.Quarter != 0 {
		return fmt.Sprintf("%04d-Q%d", p.Year, p.Quarter)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Parse parses "2025-Q1" or "2025-01" into a Period.
func Parse(s string) (Period, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid period format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return Period{}, fmt.Errorf("invalid year in period %q", s)
	}

	if q, ok := strings.CutPrefix(parts[1], "Q"); ok {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > 4 {
			return Period{}, fmt.Errorf("invalid quarter in period %q", s)
		}
		return Quarterly(year, n), nil
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month in period %q", s)
	}
	return Monthly(year, month), nil
}
