package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"stp-signer/internal/adapter/http/dto"
	"stp-signer/internal/core/domain"
	"stp-signer/internal/core/ports"
	"stp-signer/pkg/apperror"
	"stp-signer/pkg/response"

	"github.com/gin-gonic/gin"
)

// InstructionHandler handles order and account instruction endpoints.
type InstructionHandler struct {
	svc ports.InstructionService
}

// NewInstructionHandler creates a new InstructionHandler.
func NewInstructionHandler(svc ports.InstructionService) *InstructionHandler {
	return &InstructionHandler{svc: svc}
}

type instructionFunc func(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error)

// FirmaOrden handles POST /api/v1/ordenes/firma.
func (h *InstructionHandler) FirmaOrden(c *gin.Context) {
	h.handle(c, h.svc.PrepareOrden, http.StatusOK)
}

// RegistraOrden handles POST /api/v1/ordenes.
func (h *InstructionHandler) RegistraOrden(c *gin.Context) {
	h.handle(c, h.svc.RegistraOrden, http.StatusCreated)
}

// FirmaCuenta handles POST /api/v1/cuentas/firma.
func (h *InstructionHandler) FirmaCuenta(c *gin.Context) {
	h.handle(c, h.svc.PrepareCuenta, http.StatusOK)
}

// AltaCuenta handles POST /api/v1/cuentas.
func (h *InstructionHandler) AltaCuenta(c *gin.Context) {
	h.handle(c, h.svc.AltaCuenta, http.StatusCreated)
}

// BajaCuenta handles DELETE /api/v1/cuentas.
func (h *InstructionHandler) BajaCuenta(c *gin.Context) {
	h.handle(c, h.svc.BajaCuenta, http.StatusOK)
}

// Clasificar handles POST /api/v1/errores/clasificar.
func (h *InstructionHandler) Clasificar(c *gin.Context) {
	var req dto.ClasificarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	stpErr := h.svc.Classify(req.Endpoint, req.Respuesta)
	if stpErr == nil {
		response.OK(c, dto.ClasificarResponse{Success: true})
		return
	}

	id := stpErr.ID
	response.OK(c, dto.ClasificarResponse{
		ErrorCode:   stpErr.Kind(),
		Message:     stpErr.Message,
		StpID:       &id,
		Descripcion: stpErr.Description,
		Field:       stpErr.Field,
	})
}

func (h *InstructionHandler) handle(c *gin.Context, fn instructionFunc, status int) {
	rec, err := bindRecord(c.Request.Body)
	if err != nil {
		response.Error(c, err)
		return
	}

	signed, err := fn(c.Request.Context(), rec)
	if err != nil {
		response.Error(c, err)
		return
	}

	if status == http.StatusCreated {
		response.Created(c, dto.FromSignedInstruction(signed))
		return
	}
	response.OK(c, dto.FromSignedInstruction(signed))
}

// bindRecord decodes a JSON object keeping numbers as json.Number, so the
// validation pipeline can tell 12 from 12.0.
func bindRecord(body io.Reader) (domain.Record, error) {
	if body == nil {
		return nil, apperror.Validation("request body is required")
	}

	dec := json.NewDecoder(body)
	dec.UseNumber()

	var rec domain.Record
	if err := dec.Decode(&rec); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperror.Validation(fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
		}
		if errors.Is(err, io.EOF) {
			return nil, apperror.Validation("request body is required")
		}
		return nil, apperror.Validation("request body must be a JSON object: " + err.Error())
	}
	if rec == nil {
		return nil, apperror.Validation("request body must be a JSON object")
	}
	if dec.More() {
		return nil, apperror.Validation("request body must contain a single JSON object")
	}
	return rec, nil
}
