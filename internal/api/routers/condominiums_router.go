package routers

import (
	"net/http"

	"condoadmin/internal/api/handlers/announcements"
	"condoadmin/internal/api/handlers/condominiums"
	"condoadmin/internal/api/handlers/expenses"
	"condoadmin/internal/api/handlers/payments"
	"condoadmin/internal/api/handlers/reports"
)

func condominiumsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/condominiums", condominiums.CreateCondominiumHandler)

	mux.HandleFunc("/condominiums/{id}", condominiums.CondominiumHandler)

	mux.HandleFunc("/condominiums/{id}/dwellings", condominiums.DwellingsHandler)

	mux.HandleFunc("/condominiums/{id}/users/{userId}/quotas", condominiums.UserQuotasHandler)

	mux.HandleFunc("/condominiums/{id}/payment-methods", condominiums.AddPaymentMethodsHandler)

	mux.HandleFunc("/condominiums/{id}/plan-proof", condominiums.PlanProofHandler)

	mux.HandleFunc("/condominiums/{id}/expenses", expenses.CondominiumExpensesHandler)

	mux.HandleFunc("/condominiums/{id}/payments", payments.ListCondominiumPaymentsHandler)

	mux.HandleFunc("/condominiums/{id}/announcements", announcements.CondominiumAnnouncementsHandler)

	mux.HandleFunc("/condominiums/{id}/reports", reports.CondominiumReportsHandler)

	return mux
}
