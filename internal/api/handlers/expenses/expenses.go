package expenses

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"condoadmin/internal/api/handlers"
	"condoadmin/internal/models"
	"condoadmin/internal/repositories/sqlconnect"
	"condoadmin/internal/services"
	"condoadmin/pkg/utils"

	"github.com/shopspring/decimal"
)

type createExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Concept     string          `json:"concept" validate:"required,max=255"`
	DueDate     string          `json:"due_date" validate:"required"`
	Kind        string          `json:"kind" validate:"required,oneof=Common Extraordinary"`
	DwellingIDs []int           `json:"dwelling_ids" validate:"omitempty,dive,gt=0"`
}

// FUNC TO DISPATCH ON /condominiums/{id}/expenses
func CondominiumExpensesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		CreateExpenseHandler(w, r)
	case http.MethodGet:
		ListCondominiumExpensesHandler(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// FUNC TO CREATE AN EXPENSE AND ALLOCATE ITS DEBTS
func CreateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	condoID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid condominium ID", http.StatusBadRequest)
		return
	}

	var req createExpenseRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := handlers.ValidateStruct(req); err != nil {
		utils.WriteError(w, strings.Join(handlers.ValidationMessages(err), ", "), http.StatusBadRequest)
		return
	}

	result, err := services.CreateExpense(r.Context(), db, services.CreateExpenseInput{
		CondominiumID: condoID,
		Amount:        req.Amount,
		Concept:       req.Concept,
		DueDate:       req.DueDate,
		Kind:          req.Kind,
		DwellingIDs:   req.DwellingIDs,
	})
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	utils.Logger.Infof("expense %d created for condominium %d with %d debts",
		result.ExpenseID, condoID, len(result.Debts))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"expense": result,
	})
}

// FUNC TO LIST A CONDOMINIUM'S EXPENSES GROUPED BY SETTLEMENT STATE
func ListCondominiumExpensesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	condoID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid condominium ID", http.StatusBadRequest)
		return
	}

	rows, err := db.QueryContext(r.Context(), `
		SELECT id, condominium_id, amount, concept, due_date, kind, amount_paid, active, created_at
		FROM expenses WHERE condominium_id = ? ORDER BY due_date, id
	`, condoID)
	if err != nil {
		utils.Logger.Errorf("failed to fetch expenses: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	settledExpenses := []models.Expense{}
	pendingExpenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.CondominiumID, &e.Amount, &e.Concept, &e.DueDate,
			&e.Kind, &e.AmountPaid, &e.Active, &e.CreatedAt); err != nil {
			utils.Logger.Errorf("failed to scan expense: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if e.Active {
			pendingExpenses = append(pendingExpenses, e)
		} else {
			settledExpenses = append(settledExpenses, e)
		}
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Errorf("failed to iterate expenses: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"settled": settledExpenses,
		"pending": pendingExpenses,
	})
}
