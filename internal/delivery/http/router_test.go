package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthcare-backend/config"
	"healthcare-backend/internal/delivery/http/handler"
	"healthcare-backend/internal/delivery/http/middleware"
	"healthcare-backend/internal/infrastructure/memstore"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/usecase"
	"healthcare-backend/pkg/jwt"
	"healthcare-backend/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter() *mux.Router {
	store := memstore.New()
	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	customValidator := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	mappingRepo := repository.NewMappingRepository()

	authUsecase := usecase.NewAuthUsecase(store, log, userRepo, jwtService, bcrypt.MinCost)
	patientUsecase := usecase.NewPatientUsecase(store, log, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(store, log, doctorRepo)
	mappingUsecase := usecase.NewMappingUsecase(store, log, mappingRepo, patientRepo, doctorRepo)

	router := NewRouter(
		handler.NewAuthHandler(authUsecase, customValidator),
		handler.NewPatientHandler(patientUsecase, customValidator),
		handler.NewDoctorHandler(doctorUsecase, customValidator),
		handler.NewMappingHandler(mappingUsecase, customValidator),
		middleware.NewAuthMiddleware(jwtService),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)
	return router.Setup()
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func registerAndLogin(t *testing.T, router *mux.Router, name, email, password string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register/", "", map[string]interface{}{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login/", "", map[string]interface{}{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Access string `json:"access"`
	}
	decodeBody(t, rec, &res)
	require.NotEmpty(t, res.Access)
	return res.Access
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/health/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Healthcare Backend API is running", body["message"])
}

func TestEndToEndAssignmentFlow(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register/", "", map[string]interface{}{
		"name": "A", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var registered struct {
		User struct {
			ID int `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, rec, &registered)
	assert.Equal(t, 1, registered.User.ID)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login/", "", map[string]interface{}{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Access string `json:"access"`
	}
	decodeBody(t, rec, &login)
	token := login.Access

	rec = doJSON(t, router, http.MethodPost, "/api/patients/", token, map[string]interface{}{
		"name": "P", "age": 30, "gender": "f",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var patient struct {
		ID int `json:"id"`
	}
	decodeBody(t, rec, &patient)
	assert.Equal(t, 1, patient.ID)

	rec = doJSON(t, router, http.MethodPost, "/api/doctors/", token, map[string]interface{}{
		"name": "D", "specialization": "cardio",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var doctor struct {
		ID int `json:"id"`
	}
	decodeBody(t, rec, &doctor)
	assert.Equal(t, 1, doctor.ID)

	rec = doJSON(t, router, http.MethodPost, "/api/mappings/", token, map[string]interface{}{
		"patient_id": 1, "doctor_id": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var mapping struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, rec, &mapping)
	assert.Equal(t, 1, mapping.ID)
	assert.Equal(t, "active", mapping.Status)

	rec = doJSON(t, router, http.MethodPost, "/api/mappings/", token, map[string]interface{}{
		"patient_id": 1, "doctor_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var conflict map[string]string
	decodeBody(t, rec, &conflict)
	assert.Equal(t, "This patient is already assigned to this doctor", conflict["error"])
}

func TestMissingTokenVersusInvalidToken(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/patients/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Access token required", body["error"])

	rec = doJSON(t, router, http.MethodGet, "/api/patients/", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register/", "", map[string]interface{}{
		"name": "A", "email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Name, email, and password are required", body["error"])

	rec = doJSON(t, router, http.MethodPost, "/api/auth/register/", "", map[string]interface{}{
		"name": "A", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/register/", "", map[string]interface{}{
		"name": "A2", "email": "a@x.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "User with this email already exists", body["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter()
	registerAndLogin(t, router, "A", "a@x.com", "secret1")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login/", "", map[string]interface{}{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestPatientHiddenAcrossUsers(t *testing.T) {
	router := newTestRouter()
	tokenA := registerAndLogin(t, router, "A", "a@x.com", "secret1")
	tokenB := registerAndLogin(t, router, "B", "b@x.com", "secret2")

	rec := doJSON(t, router, http.MethodPost, "/api/patients/", tokenA, map[string]interface{}{
		"name": "P", "age": 30, "gender": "f",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var body interface{}
		if method == http.MethodPut {
			body = map[string]interface{}{"name": "X"}
		}
		rec = doJSON(t, router, method, "/api/patients/1/", tokenB, body)
		assert.Equal(t, http.StatusNotFound, rec.Code, "method %s", method)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/patients/", tokenB, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(rec.Body.Bytes())))

	// Still visible to its owner.
	rec = doJSON(t, router, http.MethodGet, "/api/patients/1/", tokenA, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPatientUpdateMergeOverHTTP(t *testing.T) {
	router := newTestRouter()
	token := registerAndLogin(t, router, "A", "a@x.com", "secret1")

	rec := doJSON(t, router, http.MethodPost, "/api/patients/", token, map[string]interface{}{
		"name": "P", "age": 30, "gender": "f", "phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var patient struct {
		Age   int    `json:"age"`
		Phone string `json:"phone"`
	}

	// Explicit empty phone overwrites; age 0 is ignored and the old age
	// kept. Documented quirk of the merge rules.
	rec = doJSON(t, router, http.MethodPut, "/api/patients/1/", token, map[string]interface{}{
		"phone": "", "age": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &patient)
	assert.Equal(t, "", patient.Phone)
	assert.Equal(t, 30, patient.Age)

	// A body without phone leaves it alone.
	rec = doJSON(t, router, http.MethodPut, "/api/patients/1/", token, map[string]interface{}{
		"address": "new st",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &patient)
	assert.Equal(t, "", patient.Phone)
}

func TestMappingRoutes(t *testing.T) {
	router := newTestRouter()
	tokenA := registerAndLogin(t, router, "A", "a@x.com", "secret1")
	tokenB := registerAndLogin(t, router, "B", "b@x.com", "secret2")

	rec := doJSON(t, router, http.MethodPost, "/api/patients/", tokenA, map[string]interface{}{
		"name": "P", "age": 30, "gender": "f",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/doctors/", tokenA, map[string]interface{}{
		"name": "D", "specialization": "cardio",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/mappings/", tokenA, map[string]interface{}{
		"patient_id": 1, "doctor_id": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Listing by patient is owner-scoped.
	rec = doJSON(t, router, http.MethodGet, "/api/mappings/1/", tokenA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodGet, "/api/mappings/1/", tokenB, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Deleting someone else's mapping is 403, an unknown id 404: existence
	// is observable here, unlike patient routes.
	rec = doJSON(t, router, http.MethodDelete, "/api/mappings/1/", tokenB, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Access denied", body["error"])

	rec = doJSON(t, router, http.MethodDelete, "/api/mappings/99/", tokenA, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/mappings/1/", tokenA, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMappingCreateValidation(t *testing.T) {
	router := newTestRouter()
	token := registerAndLogin(t, router, "A", "a@x.com", "secret1")

	// Missing and zero ids are both rejected as missing.
	for _, body := range []map[string]interface{}{
		{"doctor_id": 1},
		{"patient_id": 0, "doctor_id": 1},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/mappings/", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, fmt.Sprintf("body %v", body))
	}
}
