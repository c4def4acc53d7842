package usecase_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/semtexzv/tproc/internal/domain"
	"github.com/semtexzv/tproc/internal/usecase"
	"github.com/semtexzv/tproc/internal/usecase/mocks"
)

func TestReconciliation_Audit(t *testing.T) {
	tests := []struct {
		name    string
		rows    []domain.AccountRow
		wantErr bool
	}{
		{
			name: "consistent table",
			rows: []domain.AccountRow{
				{ClientID: 1, Available: dec("3.5"), Held: dec("2.0"), Total: dec("5.5")},
				{ClientID: 2, Available: dec("-1.0"), Held: dec("1.0"), Total: dec("0")},
			},
		},
		{
			name: "empty table",
			rows: nil,
		},
		{
			name: "total drifted",
			rows: []domain.AccountRow{
				{ClientID: 1, Available: dec("3.5"), Held: dec("2.0"), Total: dec("5.0")},
			},
			wantErr: true,
		},
		{
			name: "negative held funds",
			rows: []domain.AccountRow{
				{ClientID: 1, Available: dec("5.0"), Held: dec("-1.0"), Total: dec("4.0")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accounts := mocks.NewMockAccountStore(ctrl)
			accounts.EXPECT().Snapshot().Return(tt.rows)

			uc := usecase.NewReconciliationUseCase(accounts)

			err := uc.Audit()
			if tt.wantErr && !errors.Is(err, usecase.ErrInconsistentLedger) {
				t.Errorf("expected ErrInconsistentLedger, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
