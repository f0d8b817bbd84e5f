package archtext

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultURLTemplate is the monthly archive path template of UNAM Global.
// It is formatted with the four-digit year and two-digit month.
const DefaultURLTemplate = "https://unamglobal.unam.mx/%04d/%02d/"

// Period identifies one monthly archive page.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// String returns the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// SourceURL renders the archive URL for the period from a template.
// An empty template uses DefaultURLTemplate. The month is not range-checked:
// rejecting nonexistent archives is left to the source.
func (p Period) SourceURL(template string) string {
	if template == "" {
		template = DefaultURLTemplate
	}
	return fmt.Sprintf(template, p.Year, p.Month)
}

// Validate returns an error if the period is not a calendar month.
func (p Period) Validate() error {
	if p.Year <= 0 {
		return Errorf(EINVALID, "period year must be positive")
	}
	if p.Month < 1 || p.Month > 12 {
		return Errorf(EINVALID, "period month %d out of range", p.Month)
	}
	return nil
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	if p.Month >= 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Before reports whether p comes strictly before o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// ParsePeriod parses a YYYY-MM string.
func ParsePeriod(s string) (Period, error) {
	year, month, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Period{}, Errorf(EINVALID, "period %q must be YYYY-MM", s)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return Period{}, Errorf(EINVALID, "period %q has invalid year", s)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Period{}, Errorf(EINVALID, "period %q has invalid month", s)
	}
	p := Period{Year: y, Month: m}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodRange returns every month from from through to, inclusive.
// Returns nil if to comes before from.
func PeriodRange(from, to Period) []Period {
	if to.Before(from) {
		return nil
	}
	var periods []Period
	for p := from; !to.Before(p); p = p.Next() {
		periods = append(periods, p)
	}
	return periods
}

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthName returns the Spanish name of the period's month, or "mes_N"
// for months outside 1-12.
func (p Period) MonthName() string {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Sprintf("mes_%d", p.Month)
	}
	return monthNames[p.Month-1]
}
