package core

// Summary is the derived triple over the current ledger.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
}

// Summarize recomputes the summary from scratch over all records. It is a
// pure function of the collection; there is no incremental maintenance.
func Summarize(items []Transaction) Summary {
	var s Summary
	for _, t := range items {
		switch t.Type {
		case Income:
			s.Income += ParseAmount(t.Amount)
		case Expense:
			s.Expense += ParseAmount(t.Amount)
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}
