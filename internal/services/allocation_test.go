package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCommonShares(t *testing.T) {
	// two dwellings, dimensions 50 and 150
	quotas := ComputeQuotas([]DwellingInput{
		{Name: "A", Dimension: dec("50")},
		{Name: "B", Dimension: dec("150")},
	})

	shares := CommonShares(dec("1000"), quotas)

	if !shares[0].Equal(dec("250")) {
		t.Errorf("share[0] = %s, want 250", shares[0])
	}
	if !shares[1].Equal(dec("750")) {
		t.Errorf("share[1] = %s, want 750", shares[1])
	}
}

func TestCommonSharesConserveAmount(t *testing.T) {
	quotas := ComputeQuotas([]DwellingInput{
		{Name: "A", Dimension: dec("37.2")},
		{Name: "B", Dimension: dec("81.9")},
		{Name: "C", Dimension: dec("55")},
		{Name: "D", Dimension: dec("120.75")},
		{Name: "E", Dimension: dec("64.01")},
	})

	amount := dec("12345.67")
	shares := CommonShares(amount, quotas)

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	if !sum.Round(8).Equal(amount) {
		t.Errorf("shares sum to %s, want %s", sum, amount)
	}
}

func TestSubsetShares(t *testing.T) {
	// three dwellings (10, 20, 30); expense over the last two only:
	// local proportions 0.4 and 0.6
	shares := SubsetShares(dec("300"), []decimal.Decimal{dec("20"), dec("30")})

	if !shares[0].Equal(dec("120")) {
		t.Errorf("share[0] = %s, want 120", shares[0])
	}
	if !shares[1].Equal(dec("180")) {
		t.Errorf("share[1] = %s, want 180", shares[1])
	}
}

func TestSubsetSharesZeroTotal(t *testing.T) {
	shares := SubsetShares(dec("300"), []decimal.Decimal{dec("0"), dec("0")})

	for i, s := range shares {
		if !s.IsZero() {
			t.Errorf("share[%d] = %s, want 0", i, s)
		}
	}
}

func TestSubsetSharesConserveAmount(t *testing.T) {
	dims := []decimal.Decimal{dec("17.3"), dec("42"), dec("99.99")}
	amount := dec("777.77")

	shares := SubsetShares(amount, dims)

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	if !sum.Round(8).Equal(amount) {
		t.Errorf("shares sum to %s, want %s", sum, amount)
	}
}
