package announcements

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

// FUNC TO DISPATCH ON /condominiums/{id}/announcements
func CondominiumAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		CreateAnnouncementHandler(w, r)
	case http.MethodGet:
		ListAnnouncementsHandler(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type announcementRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// FUNC TO PUBLISH AN ANNOUNCEMENT IN A CONDOMINIUM
func CreateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
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

	var req announcementRequest
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

	if _, err := db.ExecContext(r.Context(), `
		INSERT INTO announcements (condominium_id, title, content) VALUES (?, ?, ?)
	`, condoID, req.Title, req.Content); err != nil {
		utils.Logger.Errorf("failed to insert announcement: %v", err)
		utils.WriteError(w, "failed to create announcement", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success"})
}

// FUNC TO LIST A CONDOMINIUM'S ANNOUNCEMENTS, NEWEST FIRST
func ListAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
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
		SELECT id, condominium_id, title, content, published_at
		FROM announcements WHERE condominium_id = ? ORDER BY published_at DESC, id DESC
	`, condoID)
	if err != nil {
		utils.Logger.Errorf("failed to fetch announcements: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	items := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.CondominiumID, &a.Title, &a.Content, &a.PublishedAt); err != nil {
			utils.Logger.Errorf("failed to scan announcement: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Errorf("failed to iterate announcements: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"announcements": items})
}

// FUNC TO UPDATE OR DELETE AN ANNOUNCEMENT
func AnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		updateAnnouncement(w, r)
	case http.MethodDelete:
		deleteAnnouncement(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func updateAnnouncement(w http.ResponseWriter, r *http.Request) {
	db := sqlconnect.DB
	if db == nil {
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid announcement ID", http.StatusBadRequest)
		return
	}

	var req announcementRequest
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

	res, err := db.ExecContext(r.Context(),
		"UPDATE announcements SET title = ?, content = ? WHERE id = ?", req.Title, req.Content, id)
	if err != nil {
		utils.Logger.Errorf("failed to update announcement: %v", err)
		utils.WriteError(w, "failed to update announcement", http.StatusInternalServerError)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		utils.WriteError(w, "announcement not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"status": "success"})
}

func deleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	db := sqlconnect.DB
	if db == nil {
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid announcement ID", http.StatusBadRequest)
		return
	}

	res, err := db.ExecContext(r.Context(), "DELETE FROM announcements WHERE id = ?", id)
	if err != nil {
		utils.Logger.Errorf("failed to delete announcement: %v", err)
		utils.WriteError(w, "failed to delete announcement", http.StatusInternalServerError)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		utils.WriteError(w, "announcement not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"status": "success"})
}
