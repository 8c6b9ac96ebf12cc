package services

import "github.com/shopspring/decimal"

// DwellingInput is one dwelling of a batch submitted at condominium setup
// (or a later batch addition).
type DwellingInput struct {
	Name            string
	OwnerNationalID string
	Dimension       decimal.Decimal
}

// ComputeQuotas returns one quota per dwelling: dimension / sum(dimensions)
// over the submitted batch. An empty batch or a zero total yields all-zero
// quotas instead of dividing by zero. Quotas of previously stored batches
// are never recomputed.
func ComputeQuotas(dwellings []DwellingInput) []decimal.Decimal {
	quotas := make([]decimal.Decimal, len(dwellings))

	total := decimal.Zero
	for _, d := range dwellings {
		total = total.Add(d.Dimension)
	}

	if total.IsZero() {
		for i := range quotas {
			quotas[i] = decimal.Zero
		}
		return quotas
	}

	for i, d := range dwellings {
		quotas[i] = d.Dimension.Div(total)
	}
	return quotas
}
