package debts

import (
	"net/http"
	"strconv"

	"condoadmin/internal/api/handlers"
	"condoadmin/internal/repositories/sqlconnect"
	"condoadmin/internal/services"
	"condoadmin/pkg/utils"
)

// FUNC TO LIST A USER'S ACTIVE DEBTS
// Optional ?condominium_id= scopes the result to one condominium.
func ListUserDebtsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	condoID, err := optionalCondominiumID(r)
	if err != nil {
		utils.WriteError(w, "invalid condominium ID", http.StatusBadRequest)
		return
	}

	userDebts, err := services.ListUserDebts(r.Context(), db, userID, condoID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"debts": userDebts})
}

// FUNC TO LIST A USER'S PAYMENTS
func ListUserPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	condoID, err := optionalCondominiumID(r)
	if err != nil {
		utils.WriteError(w, "invalid condominium ID", http.StatusBadRequest)
		return
	}

	userPayments, err := services.ListUserPayments(r.Context(), db, userID, condoID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"payments": userPayments})
}

func optionalCondominiumID(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("condominium_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
