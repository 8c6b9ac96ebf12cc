package payments

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"condoadmin/internal/api/handlers"
	"condoadmin/internal/repositories/sqlconnect"
	"condoadmin/internal/services"
	"condoadmin/pkg/utils"

	"github.com/shopspring/decimal"
)

type applyPaymentRequest struct {
	DebtID      int             `json:"debt_id" validate:"required,gt=0"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Method      string          `json:"method" validate:"required,max=255"`
	ProofURL    string          `json:"proof_url" validate:"required,max=255"`
	Notes       string          `json:"notes" validate:"omitempty,max=255"`
	ReferenceNo string          `json:"reference_no" validate:"omitempty,max=255"`
}

// FUNC TO APPLY A PAYMENT AGAINST A DEBT
func ApplyPaymentHandler(w http.ResponseWriter, r *http.Request) {
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

	var req applyPaymentRequest
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

	result, err := services.ApplyPayment(r.Context(), db, services.ApplyPaymentInput{
		DebtID:      req.DebtID,
		Amount:      req.AmountPaid,
		Method:      req.Method,
		ProofURL:    req.ProofURL,
		Notes:       req.Notes,
		ReferenceNo: req.ReferenceNo,
	})
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	utils.Logger.Infof("payment %d applied to debt %d (debt settled: %t, expense settled: %t)",
		result.PaymentID, req.DebtID, result.DebtSettled, result.ExpenseSettled)

	sendReceipt(db, req.DebtID, req.AmountPaid, result.ReceiptRef)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"payment": result,
	})
}

// sendReceipt emails the debtor asynchronously; a failed lookup or send
// only logs, it never fails the already committed payment.
func sendReceipt(db *sql.DB, debtID int, amount decimal.Decimal, receiptRef string) {
	var email, firstName, concept string
	err := db.QueryRow(`
		SELECT u.email, u.first_name, e.concept
		FROM debts d
		JOIN expenses e ON d.expense_id = e.id
		JOIN users u ON d.owner_user_id = u.id
		WHERE d.id = ?
	`, debtID).Scan(&email, &firstName, &concept)
	if err != nil {
		utils.Logger.Warnf("skipping receipt email for debt %d: %v", debtID, err)
		return
	}

	go func() {
		if err := utils.SendPaymentReceiptEmail(email, firstName, amount.StringFixed(2), concept, receiptRef, time.Now()); err != nil {
			utils.Logger.Errorf("failed to send receipt email to %s: %v", email, err)
		}
	}()
}

// FUNC TO LIST A CONDOMINIUM'S PAYMENTS GROUPED BY EXPENSE STATE
func ListCondominiumPaymentsHandler(w http.ResponseWriter, r *http.Request) {
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
		SELECT p.id, d.owner_national_id, u.first_name, u.last_name,
			p.amount_paid, p.method, p.receipt_ref, p.paid_at, e.concept, e.active
		FROM payments p
		JOIN debts d ON p.debt_id = d.id
		JOIN expenses e ON d.expense_id = e.id
		LEFT JOIN users u ON d.owner_user_id = u.id
		WHERE e.condominium_id = ?
		ORDER BY p.paid_at DESC, p.id DESC
	`, condoID)
	if err != nil {
		utils.Logger.Errorf("failed to fetch payments: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	type paymentEntry struct {
		PaymentID       int             `json:"payment_id"`
		OwnerNationalID string          `json:"owner_national_id"`
		OwnerName       string          `json:"owner_name,omitempty"`
		Amount          decimal.Decimal `json:"amount"`
		Method          string          `json:"method"`
		ReceiptRef      string          `json:"receipt_ref"`
		PaidAt          string          `json:"paid_at"`
		Concept         string          `json:"concept"`
	}

	settledPayments := []paymentEntry{}
	pendingPayments := []paymentEntry{}
	for rows.Next() {
		var p paymentEntry
		var firstName, lastName, paidAt sql.NullString
		var expenseActive bool
		if err := rows.Scan(&p.PaymentID, &p.OwnerNationalID, &firstName, &lastName,
			&p.Amount, &p.Method, &p.ReceiptRef, &paidAt, &p.Concept, &expenseActive); err != nil {
			utils.Logger.Errorf("failed to scan payment: %v", err)
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if firstName.Valid {
			p.OwnerName = strings.TrimSpace(firstName.String + " " + lastName.String)
		}
		p.PaidAt = paidAt.String
		if expenseActive {
			pendingPayments = append(pendingPayments, p)
		} else {
			settledPayments = append(settledPayments, p)
		}
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Errorf("failed to iterate payments: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"settled": settledPayments,
		"pending": pendingPayments,
	})
}
