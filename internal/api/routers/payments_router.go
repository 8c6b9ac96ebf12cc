package routers

import (
	"net/http"

	"condoadmin/internal/api/handlers/payments"
)

func paymentsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/payments", payments.ApplyPaymentHandler)

	return mux
}
