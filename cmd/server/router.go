package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paymind/paymind-server/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.ListInvoices)
			r.Post("/", h.IngestInvoices)
			r.Post("/upload", h.UploadInvoicesCSV)
			r.Delete("/", h.ResetInvoices)
		})

		r.Route("/agents", func(r chi.Router) {
			r.Post("/payment-monitor", h.RunPaymentMonitor)
			r.Post("/reminder-generator", h.RunReminderGenerator)
			r.Post("/response-handler", h.RunResponseHandler)
		})

		r.Route("/workflow", func(r chi.Router) {
			r.Post("/start", h.StartWorkflow)
			r.Post("/stop", h.StopWorkflow)
			r.Get("/status", h.GetWorkflowStatus)
		})

		r.Route("/workflow-runs", func(r chi.Router) {
			r.Get("/", h.ListWorkflowRuns)
			r.Post("/", h.SaveWorkflowRun)
			r.Delete("/", h.DeleteAllWorkflowRuns)
			r.Get("/{id}", h.GetWorkflowRun)
			r.Delete("/{id}", h.DeleteWorkflowRun)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Post("/", h.ValidateKey)
		})
	})

	return r
}
