package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/delivery/http/middleware"
	"healthcare-backend/internal/usecase"
	"healthcare-backend/pkg/response"
	"healthcare-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type MappingHandler struct {
	mappingUsecase usecase.MappingUsecase
	validator      *validator.CustomValidator
}

func NewMappingHandler(mappingUsecase usecase.MappingUsecase, validator *validator.CustomValidator) *MappingHandler {
	return &MappingHandler{
		mappingUsecase: mappingUsecase,
		validator:      validator,
	}
}

func (h *MappingHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Access token required")
		return
	}

	var req dto.CreateMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Patient ID and Doctor ID are required")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Patient ID and Doctor ID are required")
		return
	}

	mapping, err := h.mappingUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrMappingAlreadyExists:
			response.Error(w, http.StatusBadRequest, "This patient is already assigned to this doctor")
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, mapping)
}

func (h *MappingHandler) GetMappings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Access token required")
		return
	}

	mappings, err := h.mappingUsecase.GetAllForOwner(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, mappings)
}

func (h *MappingHandler) GetMappingsByPatient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Access token required")
		return
	}

	patientID, err := strconv.Atoi(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	mappings, err := h.mappingUsecase.GetForPatient(r.Context(), userID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, mappings)
}

func (h *MappingHandler) DeleteMapping(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Access token required")
		return
	}

	mappingID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid mapping ID")
		return
	}

	if err := h.mappingUsecase.Delete(r.Context(), userID, mappingID); err != nil {
		switch err {
		case usecase.ErrMappingNotFound:
			response.NotFound(w, "Mapping not found")
		case usecase.ErrMappingAccessDenied:
			response.Forbidden(w, "Access denied")
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.NoContent(w)
}
