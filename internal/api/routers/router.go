package routers

import (
	"net/http"
)

func MainRouter() *http.ServeMux {

	mux := http.NewServeMux()

	uRouter := usersRouter()
	mux.Handle("/auth/", uRouter)
	mux.Handle("/users/", uRouter)

	cRouter := condominiumsRouter()
	mux.Handle("/condominiums", cRouter)
	mux.Handle("/condominiums/", cRouter)

	pRouter := paymentsRouter()
	mux.Handle("/payments", pRouter)

	aRouter := announcementsRouter()
	mux.Handle("/announcements/", aRouter)

	return mux
}
