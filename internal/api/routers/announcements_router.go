package routers

import (
	"net/http"

	"condoadmin/internal/api/handlers/announcements"
)

func announcementsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/announcements/{id}", announcements.AnnouncementHandler)

	return mux
}
