package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"daftar/internal/adapters/http/middleware"
	"daftar/internal/adapters/messaging"
	"daftar/internal/application/listutil"
	"daftar/internal/application/orchestrators"
	"daftar/internal/application/projections"
	contactDomain "daftar/internal/domain/contact"
	"daftar/internal/domain/export"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	email := ""
	if ok {
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return email != "" },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"paginationQuery": func(page int, search string, perPage int) template.URL {
			q := fmt.Sprintf("page=%d", page)
			if search != "" {
				q += "&q=" + search
			}
			if perPage > 0 {
				q += fmt.Sprintf("&per_page=%d", perPage)
			}
			return template.URL(q)
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// renderContactList renders the list page with optional import feedback.
func renderContactList(w http.ResponseWriter, r *http.Request, extra map[string]any) {
	q := r.URL.Query()
	pp := listutil.ParsePageParams(q)
	search := listutil.ParseSearch(q)

	result, err := projections.QueryGetContactList(r.Context(), projections.GetContactListQuery{
		Search:  search,
		Page:    pp.Page,
		PerPage: pp.PerPage,
	}, projections.GetContactListDeps{ContactStore: stores.ContactStore})
	if err != nil {
		internalError(w, err)
		return
	}

	data := map[string]any{
		"Contacts":       result.Contacts,
		"PageInfo":       result.PageInfo,
		"Search":         search,
		"PerPageOptions": listutil.PerPageOptions,
	}
	for k, v := range extra {
		data[k] = v
	}
	renderTemplate(w, r, "contacts.html", data)
}

// handleContacts handles GET /contacts (list with search and pagination).
func handleContacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if isHTMLRequest(r) {
		renderContactList(w, r, nil)
		return
	}

	q := r.URL.Query()
	pp := listutil.ParsePageParams(q)
	result, err := projections.QueryGetContactList(r.Context(), projections.GetContactListQuery{
		Search:  listutil.ParseSearch(q),
		Page:    pp.Page,
		PerPage: pp.PerPage,
	}, projections.GetContactListDeps{ContactStore: stores.ContactStore})
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleImportContacts handles POST /contacts/import (paste batch import).
func handleImportContacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	isHTML := isHTMLRequest(r)

	input := orchestrators.ImportContactsInput{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Text   string `json:"Text"`
			DryRun bool   `json:"DryRun"`
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		input.RawText = body.Text
		input.DryRun = body.DryRun
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.RawText = r.FormValue("Text")
	}

	deps := orchestrators.ImportContactsDeps{
		ContactStore: stores.ContactStore,
		GenerateID:   generateID,
	}
	result, err := orchestrators.ExecuteImportContacts(r.Context(), input, deps)
	if err != nil {
		message := "import failed"
		switch {
		case errors.Is(err, contactDomain.ErrEmptyInput):
			message = "paste some text first"
		case errors.Is(err, contactDomain.ErrNoNewRecords):
			message = "no new contacts found in the pasted text"
		default:
			internalError(w, err)
			return
		}
		if isHTML {
			renderContactList(w, r, map[string]any{"ImportError": message})
		} else {
			http.Error(w, message, http.StatusUnprocessableEntity)
		}
		return
	}

	if isHTML {
		http.Redirect(w, r, fmt.Sprintf("/contacts?imported=%d", result.Imported), http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleExportContacts handles GET /contacts/export (CSV download).
func handleExportContacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := orchestrators.ExportContactsDeps{
		ContactStore: stores.ContactStore,
		EmailSender:  emailSender,
		Now:          timeNow,
	}
	result, err := orchestrators.ExecuteExportContacts(r.Context(),
		orchestrators.ExportContactsInput{BackupEmail: backupEmailAddress}, deps)
	if err != nil {
		if errors.Is(err, export.ErrNoContacts) {
			http.Error(w, "nothing to export", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.CSV)))
	w.Write(result.CSV)
}

// handleContactByID dispatches /contacts/{id}, /contacts/{id}/edit,
// /contacts/{id}/delete and /contacts/{id}/whatsapp.
func handleContactByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/contacts/")
	parts := strings.SplitN(rest, "/", 2)
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}
	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch action {
	case "":
		handleSaveContact(w, r, id)
	case "edit":
		handleEditContactForm(w, r, id)
	case "delete":
		handleDeleteContact(w, r, id)
	case "whatsapp":
		handleWhatsAppRedirect(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

// handleEditContactForm handles GET /contacts/{id}/edit.
func handleEditContactForm(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	c, err := stores.ContactStore.GetByID(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	renderTemplate(w, r, "edit_contact.html", map[string]any{
		"Contact":     c,
		"FieldErrors": contactDomain.FieldErrors{},
	})
}

// handleSaveContact handles POST /contacts/{id} (save an edit).
func handleSaveContact(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	isHTML := isHTMLRequest(r)

	input := orchestrators.SaveContactInput{ID: id}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Name  string `json:"Name"`
			Phone string `json:"Phone"`
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		input.Name = body.Name
		input.Phone = body.Phone
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.Name = r.FormValue("Name")
		input.Phone = r.FormValue("Phone")
	}

	saved, fieldErrs, err := orchestrators.ExecuteSaveContact(r.Context(), input,
		orchestrators.SaveContactDeps{ContactStore: stores.ContactStore})
	if err != nil {
		if errors.Is(err, orchestrators.ErrContactNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		if isHTML {
			w.WriteHeader(http.StatusUnprocessableEntity)
			renderTemplate(w, r, "edit_contact.html", map[string]any{
				"Contact":     contactDomain.Contact{ID: id, Name: input.Name, Phone: input.Phone},
				"FieldErrors": fieldErrs,
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"FieldErrors": fieldErrs})
		return
	}

	if isHTML {
		http.Redirect(w, r, "/contacts", http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

// handleDeleteContact handles POST /contacts/{id}/delete.
func handleDeleteContact(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	err := orchestrators.ExecuteDeleteContact(r.Context(), id,
		orchestrators.DeleteContactDeps{ContactStore: stores.ContactStore})
	if err != nil {
		if errors.Is(err, orchestrators.ErrContactNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/contacts", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWhatsAppRedirect handles GET /contacts/{id}/whatsapp.
func handleWhatsAppRedirect(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	c, err := stores.ContactStore.GetByID(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	link, err := messaging.WhatsAppLink(c.Phone)
	if err != nil {
		http.Error(w, "contact has no usable phone number", http.StatusUnprocessableEntity)
		return
	}
	http.Redirect(w, r, link, http.StatusSeeOther)
}

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, go straight to the list
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/contacts", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
		}
		result, err := orchestrators.ExecuteLogin(r.Context(), input,
			orchestrators.LoginDeps{AccountStore: stores.AccountStore})
		if err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/contacts", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie("daftar_session")
	if err == nil {
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// helpMarkdown is the operator guide shown on /help.
const helpMarkdown = `# كيف يعمل دفتر

## استيراد جهات الاتصال

الصق نصاً حراً في صندوق الاستيراد، سطراً لكل جهة اتصال. يبحث دفتر في كل
سطر عن أول تسلسل أرقام ويعتبره رقم الهاتف، وما تبقى من السطر يصبح الاسم.

- الأسطر الفارغة والأسطر بلا أرقام يتم تجاوزها.
- الأرقام المكررة (الموجودة مسبقاً أو المتكررة في نفس اللصقة) تُهمل.
- الشرطات والمسافات وعلامة + تُحذف من الأرقام تلقائياً.

## التعديل والحذف

من قائمة جهات الاتصال اختر **تعديل** لتصحيح اسم أو رقم. الرقم المعدل يجب
ألا يقل عن ٧ أرقام وألا يطابق رقم جهة اتصال أخرى.

## التصدير

زر **تصدير CSV** ينزل القائمة كاملة مرتبة بالاسم في ملف واحد.

## واتساب

زر **واتساب** بجانب أي جهة اتصال يفتح محادثة معها مباشرة عبر wa.me.
`

// handlePerfSnapshot handles GET /perf with request and query latency
// percentiles from the in-memory collector.
func handlePerfSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"Snapshot":      perfCollector.Snapshot(),
		"TotalRecorded": perfCollector.TotalRecorded(),
	})
}

// handleHelp handles GET /help.
func handleHelp(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "help.html", map[string]any{
		"HelpMarkdown": helpMarkdown,
	})
}
