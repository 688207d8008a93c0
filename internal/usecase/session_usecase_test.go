package usecase

import (
	"context"
	"errors"
	"testing"

	"opticai/internal/domain/entities"
	mock_interfaces "opticai/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSessionUseCase_Resolve(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil)
		if _, err := uc.Resolve(context.Background(), " "); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("profile missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewSessionUseCase(profiles, nil)
		profiles.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Profile{}, nil)

		if _, err := uc.Resolve(context.Background(), "u-1"); !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("tenant missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewSessionUseCase(profiles, tenants)
		profiles.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Profile{UserID: "u-1", TenantID: "t-1"}, nil)
		tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{}, nil)

		if _, err := uc.Resolve(context.Background(), "u-1"); !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewSessionUseCase(profiles, tenants)
		profiles.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Profile{UserID: "u-1", TenantID: "t-1", Role: entities.ProfileRoleOwner}, nil)
		tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{ID: "t-1", Name: "Ótica"}, nil)

		s, err := uc.Resolve(context.Background(), "u-1")
		if err != nil || s.Tenant.ID != "t-1" || s.Profile.Role != entities.ProfileRoleOwner {
			t.Fatalf("unexpected session %+v err=%v", s, err)
		}
	})
}
