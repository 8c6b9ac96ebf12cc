package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"condoadmin/internal/api/handlers"
	"condoadmin/internal/models"
	"condoadmin/internal/repositories/sqlconnect"
	"condoadmin/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type signupRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=255"`
	LastName        string `json:"last_name" validate:"required,max=255"`
	NationalID      string `json:"national_id" validate:"required,max=15"`
	BirthDate       string `json:"birth_date" validate:"required"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Phone           string `json:"phone" validate:"required,max=255"`
	Password        string `json:"password" validate:"required,min=8,max=255"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// FUNC TO REGISTER USERS
func RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
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

	var req signupRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := handlers.ValidateStruct(req); err != nil {
		utils.WriteError(w, strings.Join(handlers.ValidationMessages(err), ", "), http.StatusBadRequest)
		return
	}
	if req.Password != req.PasswordConfirm {
		utils.WriteError(w, "password and confirmation do not match", http.StatusBadRequest)
		return
	}

	hashedPwd, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Logger.Errorf("failed to hash password: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	res, err := db.ExecContext(r.Context(), `
		INSERT INTO users (first_name, last_name, national_id, birth_date, email, phone, password)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.FirstName, req.LastName, req.NationalID, req.BirthDate, req.Email, req.Phone, hashedPwd)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			utils.WriteError(w, "email or national id already in use", http.StatusConflict)
			return
		}
		utils.Logger.Errorf("failed to insert user: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		utils.Logger.Errorf("failed to get last insert ID: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	go func(email, firstName string) {
		if err := utils.SendWelcomeEmail(email, firstName); err != nil {
			utils.Logger.Errorf("failed to send welcome email to %s: %v", email, err)
		}
	}(req.Email, req.FirstName)

	token, err := generateToken(int(id), req.Email)
	if err != nil {
		utils.Logger.Errorf("failed to sign token: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"user_id": id,
		"token":   token,
	})
}

// FUNC TO LOG USERS IN
func LoginHandler(w http.ResponseWriter, r *http.Request) {
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

	type request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := handlers.ValidateStruct(req); err != nil {
		utils.WriteError(w, "invalid credentials", http.StatusBadRequest)
		return
	}

	var user models.User
	err := db.QueryRowContext(r.Context(),
		"SELECT id, email, password FROM users WHERE email = ?", req.Email).
		Scan(&user.ID, &user.Email, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "email is not registered", http.StatusUnauthorized)
			return
		}
		utils.Logger.Errorf("failed to fetch user: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := utils.VerifyPassword(req.Password, user.Password); err != nil {
		utils.WriteError(w, "invalid password", http.StatusUnauthorized)
		return
	}

	token, err := generateToken(user.ID, user.Email)
	if err != nil {
		utils.Logger.Errorf("failed to sign token: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"user_id": user.ID,
		"token":   token,
	})
}

// FUNC TO GET / UPDATE / DELETE A USER
func UserHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		getUser(w, r)
	case http.MethodPut:
		updateUser(w, r)
	case http.MethodDelete:
		deleteUser(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func getUser(w http.ResponseWriter, r *http.Request) {
	db := sqlconnect.DB
	if db == nil {
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	var user models.User
	err = db.QueryRowContext(r.Context(), `
		SELECT id, first_name, last_name, national_id, birth_date, email, phone, created_at
		FROM users WHERE id = ?
	`, userID).Scan(&user.ID, &user.FirstName, &user.LastName, &user.NationalID,
		&user.BirthDate, &user.Email, &user.Phone, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "user not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("failed to fetch user: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Password is never serialized
	utils.WriteJSON(w, map[string]interface{}{"user": user})
}

func updateUser(w http.ResponseWriter, r *http.Request) {
	db := sqlconnect.DB
	if db == nil {
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	type request struct {
		FirstName string `json:"first_name" validate:"omitempty,max=255"`
		LastName  string `json:"last_name" validate:"omitempty,max=255"`
		BirthDate string `json:"birth_date"`
		Email     string `json:"email" validate:"omitempty,email,max=255"`
		Phone     string `json:"phone" validate:"omitempty,max=255"`
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
	if req.FirstName != "" {
		fields = append(fields, "first_name = ?")
		args = append(args, req.FirstName)
	}
	if req.LastName != "" {
		fields = append(fields, "last_name = ?")
		args = append(args, req.LastName)
	}
	if req.BirthDate != "" {
		fields = append(fields, "birth_date = ?")
		args = append(args, req.BirthDate)
	}
	if req.Email != "" {
		fields = append(fields, "email = ?")
		args = append(args, strings.ToLower(req.Email))
	}
	if req.Phone != "" {
		fields = append(fields, "phone = ?")
		args = append(args, req.Phone)
	}
	if len(fields) == 0 {
		utils.WriteError(w, "nothing to update", http.StatusBadRequest)
		return
	}
	args = append(args, userID)

	res, err := db.ExecContext(r.Context(),
		"UPDATE users SET "+strings.Join(fields, ", ")+" WHERE id = ?", args...)
	if err != nil {
		utils.Logger.Errorf("failed to update user: %v", err)
		utils.WriteError(w, "failed to update user", http.StatusInternalServerError)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"status": "success"})
}

func deleteUser(w http.ResponseWriter, r *http.Request) {
	db := sqlconnect.DB
	if db == nil {
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	res, err := db.ExecContext(r.Context(), "DELETE FROM users WHERE id = ?", userID)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key constraint") {
			utils.WriteError(w, "user is still referenced by a condominium or report", http.StatusConflict)
			return
		}
		utils.Logger.Errorf("failed to delete user: %v", err)
		utils.WriteError(w, "failed to delete user", http.StatusInternalServerError)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"status": "success"})
}

func generateToken(userID int, email string) (string, error) {
	expHours := 24
	if v := os.Getenv("JWT_EXP_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			expHours = parsed
		}
	}

	claims := jwt.MapClaims{
		"uid":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Duration(expHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
