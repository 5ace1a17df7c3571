package models

// DayRateTable maps a normalized item name to its per-day rates.
// Day numbers are positive integers; rates are positive values only —
// unresolvable or non-positive entries are dropped during extraction.
type DayRateTable map[string]map[int]float64

// Rate returns the rate for an item and day, if present.
func (t DayRateTable) Rate(item string, day int) (float64, bool) {
	days, ok := t[item]
	if !ok {
		return 0, false
	}
	rate, ok := days[day]
	return rate, ok
}

// Set records a rate, creating the item entry on first sight.
func (t DayRateTable) Set(item string, day int, rate float64) {
	days, ok := t[item]
	if !ok {
		days = make(map[int]float64)
		t[item] = days
	}
	days[day] = rate
}
