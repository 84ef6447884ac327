package core

import "testing"

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Income != 0 || s.Expense != 0 || s.Balance != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestSummarizeSingleExpense(t *testing.T) {
	s := Summarize([]Transaction{
		{Amount: "50.00", Category: "Food", Date: "2024-05-01", Type: Expense},
	})
	if s.Income != 0 {
		t.Fatalf("income = %v, want 0", s.Income)
	}
	if s.Expense != 50 {
		t.Fatalf("expense = %v, want 50", s.Expense)
	}
	if s.Balance != -50 {
		t.Fatalf("balance = %v, want -50", s.Balance)
	}
}

func TestSummarizeIncomeAndExpense(t *testing.T) {
	s := Summarize([]Transaction{
		{Amount: "100", Category: "Salary", Date: "2024-05-01", Type: Income},
		{Amount: "30", Category: "Food", Date: "2024-05-02", Type: Expense},
	})
	if s.Income != 100 || s.Expense != 30 || s.Balance != 70 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestSummarizeBalanceConsistency(t *testing.T) {
	collections := [][]Transaction{
		nil,
		{{Amount: "1.10", Type: Income}},
		{{Amount: "1.10", Type: Income}, {Amount: "2.20", Type: Expense}},
		{{Amount: "garbage", Type: Income}, {Amount: "5", Type: Expense}},
		{{Amount: "3", Type: "transfer"}}, // unknown type counts nowhere
	}
	for i, items := range collections {
		s := Summarize(items)
		if s.Balance != s.Income-s.Expense {
			t.Fatalf("case %d: balance %v != income %v - expense %v", i, s.Balance, s.Income, s.Expense)
		}
	}
}
