package routers

import (
	"net/http"

	"condoadmin/internal/api/handlers/auth"
	"condoadmin/internal/api/handlers/debts"
)

func usersRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/signup", auth.RegisterUserHandler)
	mux.HandleFunc("/auth/login", auth.LoginHandler)

	mux.HandleFunc("/users/{id}", auth.UserHandler)

	mux.HandleFunc("/users/{id}/debts", debts.ListUserDebtsHandler)
	mux.HandleFunc("/users/{id}/payments", debts.ListUserPaymentsHandler)

	return mux
}
