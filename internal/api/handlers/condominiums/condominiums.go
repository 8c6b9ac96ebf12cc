package condominiums

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"condoadmin/internal/api/handlers"
	"condoadmin/internal/models"
	"condoadmin/internal/repositories/sqlconnect"
	"condoadmin/pkg/utils"
)

type condominiumRequest struct {
	AdminUserID      int    `json:"admin_user_id" validate:"required,gt=0"`
	Name             string `json:"name" validate:"required,max=255"`
	Kind             string `json:"kind" validate:"required,oneof=Buildings Houses"`
	Address          string `json:"address" validate:"required,max=255"`
	ActuarialPageURL string `json:"actuarial_page_url" validate:"omitempty,max=255"`
}

// FUNC TO CREATE A CONDOMINIUM
func CreateCondominiumHandler(w http.ResponseWriter, r *http.Request) {
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

	var req condominiumRequest
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

	var adminID int
	err := db.QueryRowContext(r.Context(), "SELECT id FROM users WHERE id = ?", req.AdminUserID).Scan(&adminID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "administrator does not exist", http.StatusBadRequest)
			return
		}
		utils.Logger.Errorf("failed to verify administrator: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Reserve starts at 0; plan is unpaid until a proof is registered.
	res, err := db.ExecContext(r.Context(), `
		INSERT INTO condominiums (admin_user_id, name, kind, address, actuarial_page_url, reserve, plan_paid)
		VALUES (?, ?, ?, ?, ?, 0, FALSE)
	`, req.AdminUserID, req.Name, req.Kind, req.Address, req.ActuarialPageURL)
	if err != nil {
		utils.Logger.Errorf("failed to insert condominium: %v", err)
		utils.WriteError(w, "failed to create condominium", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		utils.Logger.Errorf("failed to get last insert ID: %v", err)
		utils.WriteError(w, "failed to create condominium", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         "success",
		"condominium_id": id,
	})
}

// FUNC TO GET / UPDATE / DELETE A CONDOMINIUM
func CondominiumHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		getCondominium(w, r)
	case http.MethodPut:
		updateCondominium(w, r)
	case http.MethodDelete:
		deleteCondominium(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func getCondominium(w http.ResponseWriter, r *http.Request) {
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

	var condo models.Condominium
	err = db.QueryRowContext(r.Context(), `
		SELECT id, admin_user_id, name, kind, address, actuarial_page_url, reserve, plan_paid, created_at
		FROM condominiums WHERE id = ?
	`, condoID).Scan(&condo.ID, &condo.AdminUserID, &condo.Name, &condo.Kind,
		&condo.Address, &condo.ActuarialPageURL, &condo.Reserve, &condo.PlanPaid, &condo.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "condominium not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("failed to fetch condominium: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"condominium": condo})
}

func updateCondominium(w http.ResponseWriter, r *http.Request) {
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

	type request struct {
		AdminUserID      int    `json:"admin_user_id" validate:"omitempty,gt=0"`
		ActuarialPageURL string `json:"actuarial_page_url" validate:"omitempty,max=255"`
	}

	var req request
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

	fields := []string{}
	args := []interface{}{}
	if req.AdminUserID != 0 {
		var adminID int
		err := db.QueryRowContext(r.Context(), "SELECT id FROM users WHERE id = ?", req.AdminUserID).Scan(&adminID)
		if err != nil {
			if err == sql.ErrNoRows {
				utils.WriteError(w, "administrator does not exist", http.StatusBadRequest)
				return
			}
			utils.Logger.Errorf("failed to verify administrator: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		fields = append(fields, "admin_user_id = ?")
		args = append(args, req.AdminUserID)
	}
	if req.ActuarialPageURL != "" {
		fields = append(fields, "actuarial_page_url = ?")
		args = append(args, req.ActuarialPageURL)
	}
	if len(fields) == 0 {
		utils.WriteError(w, "nothing to update", http.StatusBadRequest)
		return
	}
	args = append(args, condoID)

	res, err := db.ExecContext(r.Context(),
		"UPDATE condominiums SET "+strings.Join(fields, ", ")+" WHERE id = ?", args...)
	if err != nil {
		utils.Logger.Errorf("failed to update condominium: %v", err)
		utils.WriteError(w, "failed to update condominium", http.StatusInternalServerError)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		utils.WriteError(w, "condominium not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"status": "success"})
}

func deleteCondominium(w http.ResponseWriter, r *http.Request) {
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

	res, err := db.ExecContext(r.Context(), "DELETE FROM condominiums WHERE id = ?", condoID)
	if err != nil {
		utils.Logger.Errorf("failed to delete condominium: %v", err)
		utils.WriteError(w, "failed to delete condominium", http.StatusInternalServerError)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		utils.WriteError(w, "condominium not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"status": "success"})
}

// FUNC TO ATTACH ACCEPTED PAYMENT METHODS
func AddPaymentMethodsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
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

	type request struct {
		Methods []string `json:"payment_methods" validate:"required,min=1,dive,oneof=Zelle 'Pago Movil' Paypal Efectivo"`
	}

	var req request
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

	var id int
	err = db.QueryRowContext(r.Context(), "SELECT id FROM condominiums WHERE id = ?", condoID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "condominium not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("failed to fetch condominium: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	tx, err := db.BeginTx(r.Context(), nil)
	if err != nil {
		utils.Logger.Errorf("failed to start transaction: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	for _, kind := range req.Methods {
		if _, err := tx.ExecContext(r.Context(),
			"INSERT INTO payment_methods (condominium_id, kind) VALUES (?, ?)", condoID, kind); err != nil {
			tx.Rollback()
			utils.Logger.Errorf("failed to insert payment method: %v", err)
			utils.WriteError(w, "failed to add payment methods", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		utils.Logger.Errorf("failed to commit payment methods: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"status": "success"})
}

// FUNC TO REGISTER A PLAN PAYMENT PROOF
func PlanProofHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
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

	type request struct {
		ProofURL string `json:"proof_url" validate:"required,max=255"`
	}

	var req request
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

	var id int
	err = db.QueryRowContext(r.Context(), "SELECT id FROM condominiums WHERE id = ?", condoID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "condominium not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("failed to fetch condominium: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := db.ExecContext(r.Context(),
		"UPDATE condominiums SET plan_paid = TRUE WHERE id = ?", condoID); err != nil {
		utils.Logger.Errorf("failed to mark plan as paid: %v", err)
		utils.WriteError(w, "failed to register proof", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"status": "success"})
}
