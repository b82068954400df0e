package service

import (
	"context"
	"errors"
	"testing"

	"stp-signer/internal/core/domain"
	"stp-signer/internal/core/ports"
	"stp-signer/internal/core/ports/mocks"
	"stp-signer/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type instructionTestDeps struct {
	svc     *InstructionServiceImpl
	signer  *mocks.MockSigner
	keys    *mocks.MockTrackingKeyStore
	gateway *mocks.MockStpGateway
	audit   *mocks.MockAuditService
	ctrl    *gomock.Controller
}

func setupInstructionService(t *testing.T) *instructionTestDeps {
	ctrl := gomock.NewController(t)
	d := &instructionTestDeps{
		signer:  mocks.NewMockSigner(ctrl),
		keys:    mocks.NewMockTrackingKeyStore(ctrl),
		gateway: mocks.NewMockStpGateway(ctrl),
		audit:   mocks.NewMockAuditService(ctrl),
		ctrl:    ctrl,
	}
	d.svc = NewInstructionService(testCompany(), d.signer, d.keys, d.gateway, d.audit, DefaultTrackingKeyTTL, zerolog.Nop())
	return d
}

// ==================== PrepareOrden Tests ====================

func TestInstructionService_PrepareOrden_Success(t *testing.T) {
	d := setupInstructionService(t)
	ctx := ports.WithSubject(context.Background(), "operador")

	// Signing alone never touches the tracking key store.
	d.signer.EXPECT().Sign([]byte(testOrdenCadena)).Return("firma", nil)
	d.audit.EXPECT().Log(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionFirma, entry.Action)
		assert.Equal(t, "CR1564969083", entry.ClaveRastreo)
		assert.Equal(t, "operador", entry.Subject)
		assert.Equal(t, testOrdenCadena, entry.Cadena)
		assert.Nil(t, entry.StpID)
	})

	signed, err := d.svc.PrepareOrden(ctx, ordenRecord())
	require.NoError(t, err)
	assert.Equal(t, domain.KindOrden, signed.Kind)
	assert.Equal(t, testOrdenCadena, signed.Cadena)
	assert.Equal(t, "firma", signed.Firma)
	assert.Equal(t, "CR1564969083", signed.ClaveRastreo)
	assert.Equal(t, "TAMIZI", signed.Payload["empresa"])
	assert.Equal(t, "firma", signed.Payload["firma"])
	assert.Equal(t, "Ricardo Sanchez", signed.Payload["nombreBeneficiario"])
}

func TestInstructionService_PrepareOrden_RealSigner(t *testing.T) {
	svc := NewInstructionService(testCompany(), loadTestSigner(t), nil, nil, nil, 0, zerolog.Nop())

	signed, err := svc.PrepareOrden(context.Background(), ordenRecord())
	require.NoError(t, err)
	assert.Equal(t, testOrdenFirma, signed.Firma)
}

func TestInstructionService_PrepareOrden_ValidationStopsBeforeSigning(t *testing.T) {
	d := setupInstructionService(t)

	rec := ordenRecord()
	rec["monto"] = 12

	_, err := d.svc.PrepareOrden(context.Background(), rec)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))
}

func TestInstructionService_PrepareOrden_SignTwice(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	rec := ordenRecord()
	rec["claveRastreo"] = "CR0001"

	d.signer.EXPECT().Sign(gomock.Any()).Return("firma", nil).Times(2)
	d.audit.EXPECT().Log(ctx, gomock.Any()).Times(2)

	first, err := d.svc.PrepareOrden(ctx, rec)
	require.NoError(t, err)
	second, err := d.svc.PrepareOrden(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, first.Cadena, second.Cadena)
}

func TestInstructionService_PrepareOrden_DefaultKeysDiffer(t *testing.T) {
	svc := NewInstructionService(testCompany(), loadTestSigner(t), nil, nil, nil, 0, zerolog.Nop())

	first, err := svc.PrepareOrden(context.Background(), ordenRecord())
	require.NoError(t, err)
	second, err := svc.PrepareOrden(context.Background(), ordenRecord())
	require.NoError(t, err)

	assert.Equal(t, "CR1564969083", first.ClaveRastreo)
	assert.Equal(t, "CR1564969083S1", second.ClaveRastreo)
	assert.NotEqual(t, first.Firma, second.Firma)
}

// ==================== RegistraOrden Tests ====================

func TestInstructionService_RegistraOrden_Success(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	d.keys.EXPECT().Reserve(ctx, "TAMIZI", "CR1564969083", DefaultTrackingKeyTTL).Return(true, nil)
	d.signer.EXPECT().Sign(gomock.Any()).Return("firma", nil)
	d.gateway.EXPECT().RegistraOrden(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, payload map[string]any) (int, error) {
			assert.Equal(t, "firma", payload["firma"])
			assert.Equal(t, "CR1564969083", payload["claveRastreo"])
			return 5273144, nil
		},
	)
	d.audit.EXPECT().Log(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionRegistraOrden, entry.Action)
		require.NotNil(t, entry.StpID)
		assert.Equal(t, 5273144, *entry.StpID)
		assert.Empty(t, entry.ErrorCode)
	})

	signed, err := d.svc.RegistraOrden(ctx, ordenRecord())
	require.NoError(t, err)
	require.NotNil(t, signed.ID)
	assert.Equal(t, 5273144, *signed.ID)
}

func TestInstructionService_RegistraOrden_TrackingKeyReserved(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	d.keys.EXPECT().Reserve(ctx, "TAMIZI", "CR1564969083", DefaultTrackingKeyTTL).Return(false, nil)

	_, err := d.svc.RegistraOrden(ctx, ordenRecord())
	require.Error(t, err)
	assert.Equal(t, apperror.CodeTrackingKeyReserved, apperror.CodeOf(err))
}

func TestInstructionService_RegistraOrden_StoreFailure(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	d.keys.EXPECT().Reserve(ctx, "TAMIZI", "CR1564969083", DefaultTrackingKeyTTL).Return(false, errors.New("connection refused"))

	_, err := d.svc.RegistraOrden(ctx, ordenRecord())
	require.Error(t, err)
	assert.Equal(t, "SYS_002", apperror.CodeOf(err))
}

func TestInstructionService_RegistraOrden_SignFailureReleasesKey(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	gomock.InOrder(
		d.keys.EXPECT().Reserve(ctx, "TAMIZI", "CR1564969083", DefaultTrackingKeyTTL).Return(true, nil),
		d.signer.EXPECT().Sign(gomock.Any()).Return("", errors.New("hsm offline")),
		d.keys.EXPECT().Release(ctx, "TAMIZI", "CR1564969083").Return(nil),
	)

	_, err := d.svc.RegistraOrden(ctx, ordenRecord())
	require.Error(t, err)
	assert.Equal(t, apperror.CodeSigning, apperror.CodeOf(err))
}

func TestInstructionService_RegistraOrden_ValidationReservesNothing(t *testing.T) {
	d := setupInstructionService(t)

	rec := ordenRecord()
	rec["monto"] = 12

	_, err := d.svc.RegistraOrden(context.Background(), rec)
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))
}

func TestInstructionService_RegistraOrden_StpError(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	stpErr := apperror.ErrClaveRastreoAlreadyInUse(EndpointRegistraOrden, -1, "ya fue utilizada")

	d.keys.EXPECT().Reserve(ctx, "TAMIZI", "CR1564969083", DefaultTrackingKeyTTL).Return(true, nil)
	d.signer.EXPECT().Sign(gomock.Any()).Return("firma", nil)
	d.gateway.EXPECT().RegistraOrden(ctx, gomock.Any()).Return(0, stpErr)
	d.audit.EXPECT().Log(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, apperror.KindClaveRastreoAlreadyInUse, entry.ErrorCode)
		require.NotNil(t, entry.StpID)
		assert.Equal(t, -1, *entry.StpID)
	})

	_, err := d.svc.RegistraOrden(ctx, ordenRecord())
	require.Error(t, err)

	var got *apperror.StpError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, apperror.KindClaveRastreoAlreadyInUse, got.Kind())
}

func TestInstructionService_RegistraOrden_TransportError(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	d.keys.EXPECT().Reserve(ctx, "TAMIZI", "CR1564969083", DefaultTrackingKeyTTL).Return(true, nil)
	d.signer.EXPECT().Sign(gomock.Any()).Return("firma", nil)
	d.gateway.EXPECT().RegistraOrden(ctx, gomock.Any()).Return(0, errors.New("dial tcp: timeout"))
	d.audit.EXPECT().Log(ctx, gomock.Any())

	_, err := d.svc.RegistraOrden(ctx, ordenRecord())
	require.Error(t, err)
	assert.Equal(t, "SYS_003", apperror.CodeOf(err))
}

func TestInstructionService_RegistraOrden_NoGateway(t *testing.T) {
	svc := NewInstructionService(testCompany(), loadTestSigner(t), nil, nil, nil, 0, zerolog.Nop())

	_, err := svc.RegistraOrden(context.Background(), ordenRecord())
	require.Error(t, err)
	assert.Equal(t, "SYS_003", apperror.CodeOf(err))
}

// ==================== Cuenta Tests ====================

func TestInstructionService_PrepareCuenta(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	d.signer.EXPECT().Sign([]byte(testCuentaCadena)).Return("firma", nil)
	d.audit.EXPECT().Log(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, "646180157099999993", entry.Cuenta)
		assert.Equal(t, domain.KindCuenta, entry.Kind)
	})

	signed, err := d.svc.PrepareCuenta(ctx, cuentaRecord())
	require.NoError(t, err)
	assert.Equal(t, testCuentaCadena, signed.Cadena)
	assert.Equal(t, "EDUARDO", signed.Payload["nombre"])
	assert.Equal(t, "TAMIZI", signed.Payload["empresa"])
}

func TestInstructionService_AltaCuenta(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	d.signer.EXPECT().Sign([]byte(testCuentaCadena)).Return("firma", nil)
	d.gateway.EXPECT().AltaCuenta(ctx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Log(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionAltaCuenta, entry.Action)
	})

	_, err := d.svc.AltaCuenta(ctx, cuentaRecord())
	require.NoError(t, err)
}

func TestInstructionService_AltaCuenta_Duplicated(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	d.signer.EXPECT().Sign(gomock.Any()).Return("firma", nil)
	d.gateway.EXPECT().AltaCuenta(ctx, gomock.Any()).
		Return(apperror.ErrDuplicatedAccount(EndpointCuentaFisica, 1, "Cuenta Duplicada"))
	d.audit.EXPECT().Log(ctx, gomock.Any())

	_, err := d.svc.AltaCuenta(ctx, cuentaRecord())
	assert.Equal(t, apperror.KindDuplicatedAccount, apperror.CodeOf(err))
}

func TestInstructionService_BajaCuenta(t *testing.T) {
	d := setupInstructionService(t)
	ctx := context.Background()

	d.signer.EXPECT().Sign([]byte(testCuentaCadena)).Return("firma", nil)
	d.gateway.EXPECT().BajaCuenta(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, payload map[string]any) error {
			assert.Len(t, payload, 4)
			return nil
		},
	)
	d.audit.EXPECT().Log(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionBajaCuenta, entry.Action)
	})

	_, err := d.svc.BajaCuenta(ctx, domain.Record{
		"cuenta":  "646180157099999993",
		"rfcCurp": "SAHE800416HDFABC01",
	})
	require.NoError(t, err)
}

func TestInstructionService_Classify(t *testing.T) {
	d := setupInstructionService(t)

	assert.Nil(t, d.svc.Classify(EndpointRegistraOrden, []byte(`{"resultado":{"id":1}}`)))
	err := d.svc.Classify(EndpointRegistraOrden, []byte(`{"resultado":{"id":-34,"descripcionError":"Clave rastreo invalida"}}`))
	require.NotNil(t, err)
	assert.Equal(t, apperror.KindInvalidTrackingKey, err.Kind())
}
