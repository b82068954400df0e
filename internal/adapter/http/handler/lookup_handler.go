package handler

import (
	"stp-signer/internal/adapter/http/dto"
	"stp-signer/internal/core/domain"
	"stp-signer/pkg/apperror"
	"stp-signer/pkg/response"

	"github.com/gin-gonic/gin"
)

// LookupHandler answers CLABE and institution code queries.
type LookupHandler struct{}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler() *LookupHandler {
	return &LookupHandler{}
}

// Clabe handles GET /api/v1/clabes/:clabe.
func (h *LookupHandler) Clabe(c *gin.Context) {
	var req dto.ClabeRequest
	if err := c.ShouldBindUri(&req); err != nil {
		// Re-run the domain check for a precise message.
		if derr := domain.ValidateClabe("clabe", req.Clabe); derr != nil {
			response.Error(c, derr)
			return
		}
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	clabe, err := domain.ParseClabe(req.Clabe)
	if err != nil {
		response.Error(c, apperror.ErrInvalidIdentifier("clabe", err.Error()))
		return
	}
	name, _ := domain.BankName(clabe.BankCode)

	response.OK(c, dto.ClabeResponse{
		Clabe:      req.Clabe,
		BankCode:   clabe.BankCode,
		BankName:   name,
		Plaza:      clabe.Plaza,
		Account:    clabe.Account,
		CheckDigit: clabe.CheckDigit,
	})
}

// Banco handles GET /api/v1/bancos/:code.
func (h *LookupHandler) Banco(c *gin.Context) {
	var req dto.BancoRequest
	if err := c.ShouldBindUri(&req); err != nil {
		if derr := domain.ValidateBankCode("code", req.Code); derr != nil {
			response.Error(c, derr)
			return
		}
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	name, _ := domain.BankName(req.Code)
	response.OK(c, dto.BancoResponse{Code: req.Code, Name: name})
}
