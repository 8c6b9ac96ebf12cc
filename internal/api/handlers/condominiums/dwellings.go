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
	"condoadmin/internal/services"
	"condoadmin/pkg/utils"

	"github.com/shopspring/decimal"
)

type dwellingRequest struct {
	Name            string          `json:"name" validate:"required,max=255"`
	OwnerNationalID string          `json:"owner_national_id" validate:"required,max=15"`
	Dimension       decimal.Decimal `json:"dimension"`
}

// FUNC TO DISPATCH ON /condominiums/{id}/dwellings
func DwellingsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		AddDwellingsHandler(w, r)
	case http.MethodGet:
		ListDwellingsHandler(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// FUNC TO ADD A BATCH OF DWELLINGS
// Quotas are computed over the submitted batch only; dwellings stored in
// earlier batches keep the quota they were created with.
func AddDwellingsHandler(w http.ResponseWriter, r *http.Request) {
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

	type request struct {
		Dwellings []dwellingRequest `json:"dwellings" validate:"required,min=1,dive"`
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
	for _, d := range req.Dwellings {
		if !d.Dimension.IsPositive() {
			utils.WriteError(w, "dimension must be greater than 0", http.StatusBadRequest)
			return
		}
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

	batch := make([]services.DwellingInput, len(req.Dwellings))
	for i, d := range req.Dwellings {
		batch[i] = services.DwellingInput{
			Name:            d.Name,
			OwnerNationalID: d.OwnerNationalID,
			Dimension:       d.Dimension,
		}
	}
	quotas := services.ComputeQuotas(batch)

	tx, err := db.BeginTx(r.Context(), nil)
	if err != nil {
		utils.Logger.Errorf("failed to start transaction: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	for i, d := range req.Dwellings {
		// Owners who already registered are linked by national id.
		var ownerUserID sql.NullInt64
		err := tx.QueryRowContext(r.Context(),
			"SELECT id FROM users WHERE national_id = ?", d.OwnerNationalID).Scan(&ownerUserID.Int64)
		if err == nil {
			ownerUserID.Valid = true
		} else if err != sql.ErrNoRows {
			tx.Rollback()
			utils.Logger.Errorf("failed to look up owner: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		_, err = tx.ExecContext(r.Context(), `
			INSERT INTO dwellings (condominium_id, name, owner_national_id, owner_user_id, dimension, quota)
			VALUES (?, ?, ?, ?, ?, ?)
		`, condoID, d.Name, d.OwnerNationalID, ownerUserID, d.Dimension, quotas[i])
		if err != nil {
			tx.Rollback()
			utils.Logger.Errorf("failed to insert dwelling: %v", err)
			utils.WriteError(w, "failed to add dwellings", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		utils.Logger.Errorf("failed to commit dwellings: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"added":  len(req.Dwellings),
	})
}

// FUNC TO LIST THE DWELLINGS OF A CONDOMINIUM
func ListDwellingsHandler(w http.ResponseWriter, r *http.Request) {
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
		SELECT id, condominium_id, name, owner_national_id, owner_user_id, dimension, quota, created_at
		FROM dwellings WHERE condominium_id = ? ORDER BY id
	`, condoID)
	if err != nil {
		utils.Logger.Errorf("failed to fetch dwellings: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	dwellings := []models.Dwelling{}
	for rows.Next() {
		var d models.Dwelling
		if err := rows.Scan(&d.ID, &d.CondominiumID, &d.Name, &d.OwnerNationalID,
			&d.OwnerUserID, &d.Dimension, &d.Quota, &d.CreatedAt); err != nil {
			utils.Logger.Errorf("failed to scan dwelling: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		dwellings = append(dwellings, d)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Errorf("failed to iterate dwellings: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"dwellings": dwellings})
}

// FUNC TO GET A USER'S QUOTAS IN A CONDOMINIUM
func UserQuotasHandler(w http.ResponseWriter, r *http.Request) {
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
	userID, err := strconv.Atoi(r.PathValue("userId"))
	if err != nil {
		utils.WriteError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	rows, err := db.QueryContext(r.Context(), `
		SELECT id, name, quota, dimension
		FROM dwellings WHERE condominium_id = ? AND owner_user_id = ? ORDER BY id
	`, condoID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to fetch quotas: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	type quotaEntry struct {
		DwellingID int             `json:"dwelling_id"`
		Name       string          `json:"name"`
		Quota      decimal.Decimal `json:"quota"`
		Dimension  decimal.Decimal `json:"dimension"`
	}

	quotas := []quotaEntry{}
	for rows.Next() {
		var q quotaEntry
		if err := rows.Scan(&q.DwellingID, &q.Name, &q.Quota, &q.Dimension); err != nil {
			utils.Logger.Errorf("failed to scan quota row: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		quotas = append(quotas, q)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Errorf("failed to iterate quota rows: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if len(quotas) == 0 {
		utils.WriteError(w, "user has no dwellings in this condominium", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"quotas": quotas})
}
