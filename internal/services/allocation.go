package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"condoadmin/internal/models"

	"github.com/shopspring/decimal"
)

type CreateExpenseInput struct {
	CondominiumID int
	Amount        decimal.Decimal
	Concept       string
	DueDate       string
	Kind          string
	DwellingIDs   []int
}

type AllocatedDebt struct {
	DebtID          int             `json:"debt_id"`
	DwellingID      int             `json:"dwelling_id"`
	OwnerUserID     *int            `json:"owner_user_id,omitempty"`
	OwnerNationalID string          `json:"owner_national_id"`
	AmountOwed      decimal.Decimal `json:"amount_owed"`
}

type CreateExpenseResult struct {
	ExpenseID int             `json:"expense_id"`
	Debts     []AllocatedDebt `json:"debts"`
}

// CommonShares splits amount across dwellings by their stored quotas.
// Because quotas of one condominium sum to 1, the shares conserve amount.
func CommonShares(amount decimal.Decimal, quotas []decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(quotas))
	for i, q := range quotas {
		shares[i] = amount.Mul(q)
	}
	return shares
}

// SubsetShares splits amount across a restricted set of dwellings by floor
// area re-normalized over that subset only, not by the condominium-wide
// quota. A zero subset total yields all-zero shares.
func SubsetShares(amount decimal.Decimal, dimensions []decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(dimensions))

	total := decimal.Zero
	for _, d := range dimensions {
		total = total.Add(d)
	}
	if total.IsZero() {
		for i := range shares {
			shares[i] = decimal.Zero
		}
		return shares
	}

	for i, d := range dimensions {
		shares[i] = amount.Mul(d).Div(total)
	}
	return shares
}

// CreateExpense records an expense and fans it out into one debt per
// affected dwelling. The expense and its full debt set are inserted in a
// single transaction: either all rows land or none do.
func CreateExpense(ctx context.Context, db *sql.DB, in CreateExpenseInput) (*CreateExpenseResult, error) {
	if !in.Amount.IsPositive() {
		return nil, validationErr("amount", "amount must be greater than 0")
	}
	if in.Kind != models.ExpenseKindCommon && in.Kind != models.ExpenseKindExtraordinary {
		return nil, validationErr("kind", "kind must be Common or Extraordinary")
	}
	if in.Kind == models.ExpenseKindExtraordinary && len(in.DwellingIDs) == 0 {
		return nil, validationErr("dwelling_ids", "an extraordinary expense needs at least one dwelling")
	}

	var condoID int
	err := db.QueryRowContext(ctx, "SELECT id FROM condominiums WHERE id = ?", in.CondominiumID).Scan(&condoID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, storeErr("lookup condominium", err)
	}

	dwellings, err := loadAffectedDwellings(ctx, db, in)
	if err != nil {
		return nil, err
	}
	if len(dwellings) == 0 {
		// A condominium without dwellings has nobody to bill.
		return nil, ErrNotFound
	}

	var shares []decimal.Decimal
	if in.Kind == models.ExpenseKindCommon {
		quotas := make([]decimal.Decimal, len(dwellings))
		for i, d := range dwellings {
			quotas[i] = d.Quota
		}
		shares = CommonShares(in.Amount, quotas)
	} else {
		dims := make([]decimal.Decimal, len(dwellings))
		for i, d := range dwellings {
			dims[i] = d.Dimension
		}
		shares = SubsetShares(in.Amount, dims)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin transaction", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO expenses (condominium_id, amount, concept, due_date, kind, amount_paid, active)
		VALUES (?, ?, ?, ?, ?, 0, TRUE)
	`, in.CondominiumID, in.Amount, in.Concept, in.DueDate, in.Kind)
	if err != nil {
		tx.Rollback()
		return nil, storeErr("insert expense", err)
	}
	expenseID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, storeErr("read expense id", err)
	}

	result := &CreateExpenseResult{ExpenseID: int(expenseID)}
	for i, d := range dwellings {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO debts (expense_id, dwelling_id, owner_user_id, owner_national_id, amount_owed, amount_paid, active)
			VALUES (?, ?, ?, ?, ?, 0, TRUE)
		`, expenseID, d.ID, d.OwnerUserID, d.OwnerNationalID, shares[i])
		if err != nil {
			tx.Rollback()
			return nil, storeErr("insert debt", err)
		}
		debtID, err := res.LastInsertId()
		if err != nil {
			tx.Rollback()
			return nil, storeErr("read debt id", err)
		}

		allocated := AllocatedDebt{
			DebtID:          int(debtID),
			DwellingID:      d.ID,
			OwnerNationalID: d.OwnerNationalID,
			AmountOwed:      shares[i],
		}
		if d.OwnerUserID.Valid {
			ownerID := int(d.OwnerUserID.Int64)
			allocated.OwnerUserID = &ownerID
		}
		result.Debts = append(result.Debts, allocated)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, storeErr("commit expense", err)
	}
	return result, nil
}

// loadAffectedDwellings returns every dwelling of the condominium for a
// common expense, or exactly the listed ones for an extraordinary expense.
// A listed dwelling missing from the condominium is a NotFound.
func loadAffectedDwellings(ctx context.Context, db *sql.DB, in CreateExpenseInput) ([]models.Dwelling, error) {
	query := "SELECT id, owner_user_id, owner_national_id, dimension, quota FROM dwellings WHERE condominium_id = ?"
	args := []interface{}{in.CondominiumID}

	if in.Kind == models.ExpenseKindExtraordinary {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(in.DwellingIDs)), ",")
		query += fmt.Sprintf(" AND id IN (%s)", placeholders)
		for _, id := range in.DwellingIDs {
			args = append(args, id)
		}
	}
	query += " ORDER BY id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("fetch dwellings", err)
	}
	defer rows.Close()

	var dwellings []models.Dwelling
	for rows.Next() {
		var d models.Dwelling
		if err := rows.Scan(&d.ID, &d.OwnerUserID, &d.OwnerNationalID, &d.Dimension, &d.Quota); err != nil {
			return nil, storeErr("scan dwelling", err)
		}
		dwellings = append(dwellings, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate dwellings", err)
	}

	if in.Kind == models.ExpenseKindExtraordinary && len(dwellings) != len(in.DwellingIDs) {
		return nil, ErrNotFound
	}
	return dwellings, nil
}
