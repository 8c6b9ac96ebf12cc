package reports

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

// FUNC TO DISPATCH ON /condominiums/{id}/reports
func CondominiumReportsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		CreateReportHandler(w, r)
	case http.MethodGet:
		ListReportsHandler(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type reportRequest struct {
	UserID      int    `json:"user_id" validate:"required,gt=0"`
	Subject     string `json:"subject" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

// FUNC TO FILE A RESIDENT REPORT AGAINST A CONDOMINIUM
func CreateReportHandler(w http.ResponseWriter, r *http.Request) {
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

	var req reportRequest
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

	err = db.QueryRowContext(r.Context(), "SELECT id FROM users WHERE id = ?", req.UserID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "user not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("failed to fetch user: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := db.ExecContext(r.Context(), `
		INSERT INTO reports (condominium_id, user_id, subject, description) VALUES (?, ?, ?, ?)
	`, condoID, req.UserID, req.Subject, req.Description); err != nil {
		utils.Logger.Errorf("failed to insert report: %v", err)
		utils.WriteError(w, "failed to create report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success"})
}

// FUNC TO LIST A CONDOMINIUM'S REPORTS
func ListReportsHandler(w http.ResponseWriter, r *http.Request) {
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
		SELECT id, condominium_id, user_id, subject, description, created_at
		FROM reports WHERE condominium_id = ? ORDER BY created_at DESC, id DESC
	`, condoID)
	if err != nil {
		utils.Logger.Errorf("failed to fetch reports: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	items := []models.Report{}
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(&rep.ID, &rep.CondominiumID, &rep.UserID, &rep.Subject, &rep.Description, &rep.CreatedAt); err != nil {
			utils.Logger.Errorf("failed to scan report: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		items = append(items, rep)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Errorf("failed to iterate reports: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"reports": items})
}
