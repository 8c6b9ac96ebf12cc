package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeQuotas(t *testing.T) {
	tests := []struct {
		name       string
		dimensions []string
		want       []string
	}{
		{
			name:       "two dwellings 50 and 150",
			dimensions: []string{"50", "150"},
			want:       []string{"0.25", "0.75"},
		},
		{
			name:       "equal dimensions",
			dimensions: []string{"100", "100", "100", "100"},
			want:       []string{"0.25", "0.25", "0.25", "0.25"},
		},
		{
			name:       "single dwelling takes it all",
			dimensions: []string{"72.5"},
			want:       []string{"1"},
		},
		{
			name:       "zero total yields zero quotas",
			dimensions: []string{"0", "0"},
			want:       []string{"0", "0"},
		},
		{
			name:       "empty batch",
			dimensions: nil,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]DwellingInput, len(tt.dimensions))
			for i, d := range tt.dimensions {
				in[i] = DwellingInput{Name: "unit", Dimension: dec(d)}
			}

			got := ComputeQuotas(in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d quotas, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Equal(dec(tt.want[i])) {
					t.Errorf("quota[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestComputeQuotasSumToOne(t *testing.T) {
	in := []DwellingInput{
		{Name: "A", Dimension: dec("33.33")},
		{Name: "B", Dimension: dec("66.67")},
		{Name: "C", Dimension: dec("125")},
		{Name: "D", Dimension: dec("18.5")},
	}

	quotas := ComputeQuotas(in)

	sum := decimal.Zero
	for _, q := range quotas {
		sum = sum.Add(q)
	}
	if !sum.Round(12).Equal(decimal.NewFromInt(1)) {
		t.Errorf("quotas sum to %s, want 1", sum)
	}
}
