package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/applicant-intake/internal/application/analysis"
	appapps "github.com/bryanwahyu/applicant-intake/internal/application/applications"
	appqr "github.com/bryanwahyu/applicant-intake/internal/application/qrcodes"
	domai "github.com/bryanwahyu/applicant-intake/internal/domain/ai"
	domain "github.com/bryanwahyu/applicant-intake/internal/domain/applications"
	"github.com/bryanwahyu/applicant-intake/internal/infra/export"
	"github.com/bryanwahyu/applicant-intake/internal/middleware"
)

type Router struct {
	appsSvc     *appapps.Service
	analysisSvc *appanalysis.Service
	qrSvc       *appqr.Service
}

func NewRouter(appsSvc *appapps.Service, analysisSvc *appanalysis.Service, qrSvc *appqr.Service, adminSecret string) http.Handler {
	r := &Router{appsSvc: appsSvc, analysisSvc: analysisSvc, qrSvc: qrSvc}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/submit", r.wrap(r.handleSubmit))

		rt.Route("/admin", func(ad chi.Router) {
			ad.Use(middleware.AdminAuth(adminSecret))
			ad.Get("/applications", r.wrap(r.handleListApplications))
			ad.Patch("/applications/{id}/status", r.wrap(r.handleUpdateStatus))
			ad.Post("/applications/{id}/analyze", r.wrap(r.handleAnalyze))
			ad.Get("/export", r.wrap(r.handleExport))
			ad.Post("/qr", r.wrap(r.handleGenerateQR))
			ad.Get("/qr", r.wrap(r.handleLatestQR))
		})
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var verr *appapps.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"error":  "Invalid form data",
					"fields": verr.Fields,
				})
				return
			}
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domai.ErrQuotaExceeded) {
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /v1/submit
func (r *Router) handleSubmit(w http.ResponseWriter, req *http.Request) error {
	var cmd appapps.SubmitCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		return &appapps.ValidationError{Fields: []appapps.FieldError{
			{Field: "body", Message: "must be a valid JSON object"},
		}}
	}

	app, err := r.appsSvc.Submit(req.Context(), cmd)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

// GET /v1/admin/applications?status=&search=
func (r *Router) handleListApplications(w http.ResponseWriter, req *http.Request) error {
	filter := domain.ListFilter{
		Status: req.URL.Query().Get("status"),
		Search: req.URL.Query().Get("search"),
	}

	list, err := r.appsSvc.List(req.Context(), filter)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{"applications": list})
}

// PATCH /v1/admin/applications/{id}/status
func (r *Router) handleUpdateStatus(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}

	if err := r.appsSvc.UpdateStatus(req.Context(), domain.ApplicationID(id), body.Status); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"message": "Status updated"})
}

// POST /v1/admin/applications/{id}/analyze
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")

	analysis, err := r.analysisSvc.Analyze(req.Context(), domain.ApplicationID(id))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Analysis completed successfully",
		"analysis": analysis,
	})
}

// GET /v1/admin/export?format=csv|excel
func (r *Router) handleExport(w http.ResponseWriter, req *http.Request) error {
	format := req.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	rows, err := r.appsSvc.ExportRows(req.Context())
	if err != nil {
		return err
	}

	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	switch format {
	case "csv":
		data, err := export.ToCSV(rows)
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="applications_%s.csv"`, stamp))
		_, err = w.Write(data)
		return err
	case "excel":
		data, err := export.ToExcel(rows)
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="applications_%s.xlsx"`, stamp))
		_, err = w.Write(data)
		return err
	default:
		return &appapps.ValidationError{Fields: []appapps.FieldError{
			{Field: "format", Message: "must be csv or excel"},
		}}
	}
}

// POST /v1/admin/qr
func (r *Router) handleGenerateQR(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}
	if body.URL == "" {
		return &appapps.ValidationError{Fields: []appapps.FieldError{
			{Field: "url", Message: "is required"},
		}}
	}

	code, err := r.qrSvc.Generate(req.Context(), body.URL)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"message": "QR code generated successfully",
		"qr_code": code,
	})
}

// GET /v1/admin/qr
func (r *Router) handleLatestQR(w http.ResponseWriter, req *http.Request) error {
	code, err := r.qrSvc.Latest(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"qr_code": code})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
