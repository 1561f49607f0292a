package http

import (
	"net/http"

	"healthcare-backend/internal/delivery/http/handler"
	"healthcare-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	patientHandler    *handler.PatientHandler
	doctorHandler     *handler.DoctorHandler
	mappingHandler    *handler.MappingHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	mappingHandler *handler.MappingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		patientHandler:    patientHandler,
		doctorHandler:     doctorHandler,
		mappingHandler:    mappingHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

// Setup registers every route. Paths keep their trailing slashes: that is
// how clients of this API call them.
func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check (public)
	api.HandleFunc("/health/", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login/", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me/", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patients (protected, owner-scoped)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("/", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("/", r.patientHandler.GetPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}/", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}/", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id:[0-9]+}/", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctors (protected, shared directory)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("/", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctors.HandleFunc("/", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/{id:[0-9]+}/", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctors.HandleFunc("/{id:[0-9]+}/", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	doctors.HandleFunc("/{id:[0-9]+}/", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Mappings (protected; GET takes a patient id, DELETE a mapping id)
	mappings := api.PathPrefix("/mappings").Subrouter()
	mappings.Use(r.authMiddleware.Authenticate)
	mappings.HandleFunc("/", r.mappingHandler.CreateMapping).Methods(http.MethodPost)
	mappings.HandleFunc("/", r.mappingHandler.GetMappings).Methods(http.MethodGet)
	mappings.HandleFunc("/{patientId:[0-9]+}/", r.mappingHandler.GetMappingsByPatient).Methods(http.MethodGet)
	mappings.HandleFunc("/{id:[0-9]+}/", r.mappingHandler.DeleteMapping).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "OK", "message": "Healthcare Backend API is running"}`))
}
