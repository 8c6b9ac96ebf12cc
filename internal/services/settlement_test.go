package services

import (
	"errors"
	"testing"
)

func TestSettleTotalsPartialPayment(t *testing.T) {
	// debt of 100, expense of 100, first payment of 60
	s, err := SettleTotals(dec("0"), dec("100"), dec("0"), dec("100"), dec("60"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.DebtPaid.Equal(dec("60")) {
		t.Errorf("DebtPaid = %s, want 60", s.DebtPaid)
	}
	if s.DebtSettled {
		t.Error("debt settled after partial payment")
	}
	if s.ExpenseSettled {
		t.Error("expense settled after partial payment")
	}
}

func TestSettleTotalsFinalPaymentSettles(t *testing.T) {
	// 60 already paid, the remaining 40 settles both debt and expense
	s, err := SettleTotals(dec("60"), dec("100"), dec("60"), dec("100"), dec("40"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.DebtPaid.Equal(dec("100")) {
		t.Errorf("DebtPaid = %s, want 100", s.DebtPaid)
	}
	if !s.DebtSettled {
		t.Error("debt not settled at exact equality")
	}
	if !s.ExpenseSettled {
		t.Error("expense not settled at exact equality")
	}
}

func TestSettleTotalsExpenseSpansDebts(t *testing.T) {
	// expense of 100 split into two debts of 50: paying off the first
	// leaves the expense open, paying off the second closes it
	s, err := SettleTotals(dec("0"), dec("50"), dec("0"), dec("100"), dec("50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.DebtSettled {
		t.Error("first debt not settled")
	}
	if s.ExpenseSettled {
		t.Error("expense settled with half the amount outstanding")
	}

	s, err = SettleTotals(dec("0"), dec("50"), s.ExpensePaid, dec("100"), dec("50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.DebtSettled {
		t.Error("second debt not settled")
	}
	if !s.ExpenseSettled {
		t.Error("expense not settled after both debts paid")
	}
}

func TestSettleTotalsRejectsOverpay(t *testing.T) {
	_, err := SettleTotals(dec("60"), dec("100"), dec("60"), dec("100"), dec("50"))
	if err == nil {
		t.Fatal("expected overpayment to be rejected")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want *ValidationError", err)
	}
}

func TestSettleTotalsRejectsNonPositive(t *testing.T) {
	for _, amount := range []string{"0", "-10"} {
		_, err := SettleTotals(dec("0"), dec("100"), dec("0"), dec("100"), dec(amount))
		if err == nil {
			t.Errorf("payment of %s accepted, want rejection", amount)
		}
	}
}

func TestSettleTotalsPaidNeverDecreases(t *testing.T) {
	paid := dec("0")
	expensePaid := dec("0")

	for _, amount := range []string{"10", "0.01", "39.99", "50"} {
		s, err := SettleTotals(paid, dec("100"), expensePaid, dec("100"), dec(amount))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.DebtPaid.LessThan(paid) {
			t.Fatalf("DebtPaid decreased from %s to %s", paid, s.DebtPaid)
		}
		paid = s.DebtPaid
		expensePaid = s.ExpensePaid
	}

	if !paid.Equal(dec("100")) {
		t.Errorf("final paid = %s, want 100", paid)
	}
}
