package sampling

// Recommendation gives tiered documentation counts for a portfolio of a given
// size, independent of the statistical formula. The tiers trade audit risk
// against documentation cost.
type Recommendation struct {
	TotalRecords int      `json:"total_records"`
	Conservative int      `json:"conservative"`
	Moderate     int      `json:"moderate"`
	Aggressive   int      `json:"aggressive"`
	Notes        []string `json:"notes"`
}

// Recommend returns tiered documentation counts based on portfolio size
func Recommend(total int) Recommendation {
	rec := Recommendation{TotalRecords: total}

	switch {
	case total <= 10:
		rec.Conservative, rec.Moderate, rec.Aggressive = total, total, total
		rec.Notes = append(rec.Notes, "Document all records for small portfolios")
	case total <= 25:
		rec.Conservative = min(total, 15)
		rec.Moderate = min(total, 12)
		rec.Aggressive = min(total, 8)
		rec.Notes = append(rec.Notes, "Small portfolio - document majority of records")
	case total <= 50:
		rec.Conservative = min(total, 25)
		rec.Moderate = min(total, 18)
		rec.Aggressive = min(total, 12)
		rec.Notes = append(rec.Notes, "Medium portfolio - 25-50% documentation typical")
	case total <= 100:
		rec.Conservative = min(total, 35)
		rec.Moderate = min(total, 25)
		rec.Aggressive = min(total, 15)
		rec.Notes = append(rec.Notes, "Large portfolio - 15-35% documentation common")
	case total <= 200:
		rec.Conservative = min(total, 50)
		rec.Moderate = min(total, 35)
		rec.Aggressive = min(total, 20)
		rec.Notes = append(rec.Notes, "Very large portfolio - 10-25% documentation")
	default:
		rec.Conservative = min(total, 75)
		rec.Moderate = min(total, 50)
		rec.Aggressive = min(total, 30)
		rec.Notes = append(rec.Notes, "Enterprise portfolio - 5-15% documentation may suffice")
	}

	rec.Notes = append(rec.Notes,
		"Conservative: lower audit risk, higher documentation cost",
		"Moderate: balanced approach, most common selection",
		"Aggressive: higher audit risk, lower documentation cost",
	)
	return rec
}
