package service

import (
	"context"
	"io"
	"testing"
	"time"

	"stp-signer/internal/core/domain"
	"stp-signer/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) error {
			if log.Action != domain.AuditActionRegistraOrden {
				t.Errorf("expected REGISTRA_ORDEN, got %s", log.Action)
			}
			close(done)
			return nil
		},
	)

	stpID := 5273144
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionRegistraOrden,
		Kind:         domain.KindOrden,
		Empresa:      "TAMIZI",
		ClaveRastreo: "CR1564969083",
		StpID:        &stpID,
		CreatedAt:    time.Now(),
	})

	select {
	case <-done:
		// OK
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), &domain.AuditLog{
		ID:        uuid.New(),
		Action:    domain.AuditActionFirma,
		Kind:      domain.KindCuenta,
		Empresa:   "TAMIZI",
		Cuenta:    "646180157099999993",
		ErrorCode: "STP_009",
		CreatedAt: time.Now(),
	})

	time.Sleep(50 * time.Millisecond) // let goroutine run
}
