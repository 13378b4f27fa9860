package web

import (
	"net/http"

	"daftar/internal/adapters/http/middleware"
)

// registerRoutes attaches all application routes to the mux. Everything
// under /contacts requires an authenticated session; /login and /help
// are public.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)
	mux.HandleFunc("/help", handleHelp)

	mux.Handle("/contacts", middleware.RequireAuth(http.HandlerFunc(handleContacts)))
	mux.Handle("/contacts/import", middleware.RequireAuth(http.HandlerFunc(handleImportContacts)))
	mux.Handle("/contacts/export", middleware.RequireAuth(http.HandlerFunc(handleExportContacts)))
	mux.Handle("/contacts/", middleware.RequireAuth(http.HandlerFunc(handleContactByID)))

	mux.Handle("/perf", middleware.RequireAuth(http.HandlerFunc(handlePerfSnapshot)))
}

// handleRoot redirects the bare root to the contact list and 404s
// everything else that fell through the mux.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}
