package http

import (
	"net/http"

	"healvista-server/internal/delivery/http/handler"
	"healvista-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	feedbackHandler    *handler.FeedbackHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	medicineHandler    *handler.MedicineHandler
	labTestHandler     *handler.LabTestHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	feedbackHandler *handler.FeedbackHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	medicineHandler *handler.MedicineHandler,
	labTestHandler *handler.LabTestHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		feedbackHandler:    feedbackHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		medicineHandler:    medicineHandler,
		labTestHandler:     labTestHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Appointment routes (any authenticated user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/doctor/{doctorId}", r.appointmentHandler.ListByDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/patient/{patientId}", r.appointmentHandler.ListByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/feedback", r.feedbackHandler.Submit).Methods(http.MethodPost)

	// Doctor directory (any authenticated user)
	protected.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}/rating", r.feedbackHandler.GetDoctorRating).Methods(http.MethodGet)

	// Patient self-service (patient only)
	patientSelf := api.PathPrefix("/patients").Subrouter()
	patientSelf.Use(r.authMiddleware.Authenticate)
	patientSelf.Use(middleware.RequirePatient)
	patientSelf.HandleFunc("/me", r.patientHandler.UpdateSelfProfile).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Dashboard stats (admin)
	admin.HandleFunc("/appointments/count", r.appointmentHandler.Count).Methods(http.MethodGet)

	// Doctor management (admin)
	admin.HandleFunc("/register-doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patient management (admin)
	admin.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/search", r.patientHandler.SearchPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Medicine management (admin)
	admin.HandleFunc("/medicines", r.medicineHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/medicines", r.medicineHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.Delete).Methods(http.MethodDelete)

	// Lab test management (admin)
	admin.HandleFunc("/lab-tests", r.labTestHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/lab-tests", r.labTestHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/lab-tests/patient/{patientId}", r.labTestHandler.GetByPatient).Methods(http.MethodGet)
	admin.HandleFunc("/lab-tests/{id}", r.labTestHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/lab-tests/{id}", r.labTestHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/lab-tests/{id}", r.labTestHandler.Delete).Methods(http.MethodDelete)

	// Audit logs (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
