package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stp-signer/internal/core/domain"
	"stp-signer/internal/core/ports"
	"stp-signer/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTrackingKeyTTL is how long a submitted claveRastreo stays reserved.
const DefaultTrackingKeyTTL = 24 * time.Hour

// InstructionServiceImpl implements ports.InstructionService.
type InstructionServiceImpl struct {
	company *domain.Company
	signer  ports.Signer
	keys    ports.TrackingKeyStore // optional
	gateway ports.StpGateway       // optional, required for submission
	audit   ports.AuditService     // optional
	keyTTL  time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

// NewInstructionService creates a new InstructionServiceImpl. keys, gateway
// and audit may be nil.
func NewInstructionService(
	company *domain.Company,
	signer ports.Signer,
	keys ports.TrackingKeyStore,
	gateway ports.StpGateway,
	audit ports.AuditService,
	keyTTL time.Duration,
	log zerolog.Logger,
) *InstructionServiceImpl {
	if keyTTL <= 0 {
		keyTTL = DefaultTrackingKeyTTL
	}
	return &InstructionServiceImpl{
		company: company,
		signer:  signer,
		keys:    keys,
		gateway: gateway,
		audit:   audit,
		keyTTL:  keyTTL,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log,
	}
}

// PrepareOrden validates rec and signs it. Nothing is reserved: the same
// order may be signed again, or signed here and submitted later.
func (s *InstructionServiceImpl) PrepareOrden(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error) {
	orden, err := domain.NewOrden(rec, s.company)
	if err != nil {
		return nil, err
	}
	signed, err := s.signOrden(orden)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.AuditActionFirma, signed, "", nil)
	return signed, nil
}

// RegistraOrden validates the order, reserves its claveRastreo, signs it and
// submits it to STP. On success the returned instruction carries the id STP
// assigned.
func (s *InstructionServiceImpl) RegistraOrden(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error) {
	if s.gateway == nil {
		return nil, apperror.ErrGatewayUnavailable(errors.New("no STP gateway configured"))
	}

	orden, err := domain.NewOrden(rec, s.company)
	if err != nil {
		return nil, err
	}
	if err := s.reserve(ctx, orden.ClaveRastreo); err != nil {
		return nil, err
	}

	signed, err := s.signOrden(orden)
	if err != nil {
		s.release(ctx, orden.ClaveRastreo)
		return nil, err
	}

	// From here on the key stays reserved: STP may have recorded it.
	id, err := s.gateway.RegistraOrden(ctx, signed.Payload)
	if err != nil {
		err = s.submitError(err)
		s.record(ctx, domain.AuditActionRegistraOrden, signed, "", err)
		return nil, err
	}

	signed.ID = &id
	s.log.Info().
		Str("clave_rastreo", signed.ClaveRastreo).
		Int("stp_id", id).
		Msg("orden registered")
	s.record(ctx, domain.AuditActionRegistraOrden, signed, "", nil)
	return signed, nil
}

// PrepareCuenta validates and signs an account registration.
func (s *InstructionServiceImpl) PrepareCuenta(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error) {
	cuenta, err := domain.NewCuentaFisica(rec, s.company)
	if err != nil {
		return nil, err
	}
	signed, err := s.sign(cuenta)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.AuditActionFirma, signed, cuenta.Cuenta, nil)
	return signed, nil
}

// AltaCuenta signs an account registration and submits it to STP.
func (s *InstructionServiceImpl) AltaCuenta(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error) {
	cuenta, err := domain.NewCuentaFisica(rec, s.company)
	if err != nil {
		return nil, err
	}
	return s.submitCuenta(ctx, cuenta, domain.AuditActionAltaCuenta, s.gatewayAlta)
}

// BajaCuenta signs an account deregistration and submits it to STP.
func (s *InstructionServiceImpl) BajaCuenta(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error) {
	cuenta, err := domain.NewCuentaBaja(rec, s.company)
	if err != nil {
		return nil, err
	}
	return s.submitCuenta(ctx, cuenta, domain.AuditActionBajaCuenta, s.gatewayBaja)
}

// Classify turns a raw STP response body into its error kind, nil on success.
func (s *InstructionServiceImpl) Classify(endpoint string, body []byte) *apperror.StpError {
	return ClassifyBody(endpoint, body)
}

func (s *InstructionServiceImpl) gatewayAlta(ctx context.Context, payload map[string]any) error {
	return s.gateway.AltaCuenta(ctx, payload)
}

func (s *InstructionServiceImpl) gatewayBaja(ctx context.Context, payload map[string]any) error {
	return s.gateway.BajaCuenta(ctx, payload)
}

func (s *InstructionServiceImpl) submitCuenta(
	ctx context.Context,
	cuenta *domain.CuentaFisica,
	action domain.AuditAction,
	send func(context.Context, map[string]any) error,
) (*domain.SignedInstruction, error) {
	if s.gateway == nil {
		return nil, apperror.ErrGatewayUnavailable(errors.New("no STP gateway configured"))
	}

	signed, err := s.sign(cuenta)
	if err != nil {
		return nil, err
	}

	if err := send(ctx, signed.Payload); err != nil {
		err = s.submitError(err)
		s.record(ctx, action, signed, cuenta.Cuenta, err)
		return nil, err
	}

	s.log.Info().Str("cuenta", cuenta.Cuenta).Str("action", string(action)).Msg("cuenta submitted")
	s.record(ctx, action, signed, cuenta.Cuenta, nil)
	return signed, nil
}

func (s *InstructionServiceImpl) reserve(ctx context.Context, claveRastreo string) error {
	if s.keys == nil {
		return nil
	}
	ok, err := s.keys.Reserve(ctx, s.company.Empresa, claveRastreo, s.keyTTL)
	if err != nil {
		return apperror.ErrStorage(fmt.Errorf("reserve claveRastreo: %w", err))
	}
	if !ok {
		return apperror.ErrTrackingKeyReserved(claveRastreo)
	}
	return nil
}

func (s *InstructionServiceImpl) release(ctx context.Context, claveRastreo string) {
	if s.keys == nil {
		return
	}
	if err := s.keys.Release(ctx, s.company.Empresa, claveRastreo); err != nil {
		s.log.Warn().Err(err).Str("clave_rastreo", claveRastreo).Msg("failed to release claveRastreo")
	}
}

func (s *InstructionServiceImpl) signOrden(orden *domain.Orden) (*domain.SignedInstruction, error) {
	signed, err := s.sign(orden)
	if err != nil {
		return nil, err
	}
	signed.ClaveRastreo = orden.ClaveRastreo
	signed.ID = orden.ID
	return signed, nil
}

// sign joins inst into its cadena original, signs it and builds the body
// STP expects, with empresa and firma added.
func (s *InstructionServiceImpl) sign(inst domain.Instruction) (*domain.SignedInstruction, error) {
	rules, err := FieldsFor(inst.Kind())
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	cadena := Join(inst, rules, s.company)
	firma, err := s.signer.Sign(cadena)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ErrSigningFailure(err)
	}

	payload := inst.Payload()
	payload["empresa"] = s.company.Empresa
	payload["firma"] = firma

	return &domain.SignedInstruction{
		Kind:     inst.Kind(),
		Cadena:   string(cadena),
		Firma:    firma,
		Payload:  payload,
		SignedAt: s.now(),
	}, nil
}

// submitError keeps classified STP errors and wraps transport failures.
func (s *InstructionServiceImpl) submitError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrGatewayUnavailable(err)
}

func (s *InstructionServiceImpl) record(ctx context.Context, action domain.AuditAction, signed *domain.SignedInstruction, cuenta string, submitErr error) {
	if s.audit == nil {
		return
	}
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		Action:       action,
		Kind:         signed.Kind,
		Empresa:      s.company.Empresa,
		ClaveRastreo: signed.ClaveRastreo,
		Cuenta:       cuenta,
		Cadena:       signed.Cadena,
		Firma:        signed.Firma,
		StpID:        signed.ID,
		Subject:      ports.SubjectFrom(ctx),
		CreatedAt:    s.now(),
	}
	if submitErr != nil {
		entry.ErrorCode = apperror.CodeOf(submitErr)
		var stpErr *apperror.StpError
		if errors.As(submitErr, &stpErr) {
			id := stpErr.ID
			entry.StpID = &id
		}
	}
	s.audit.Log(ctx, entry)
}
