package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/model"
)

func TestUserService_GetProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Email: "alice@example.com"}, nil)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.GetProfile(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.GetProfile(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_UpdateProfile(t *testing.T) {
	tests := []struct {
		name          string
		input         UpdateProfileInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "update full name",
			input: UpdateProfileInput{FullName: strPtr("Alice B. Anders")},
			setupMock: func(mRepo *MockUserRepository) {
				mRepo.On("Update", mock.Anything, uint(1), map[string]interface{}{"full_name": "Alice B. Anders"}).
					Return(&model.User{ID: 1, FullName: "Alice B. Anders"}, nil)
			},
			expectedError: nil,
		},
		{
			name:  "mobile taken by another user",
			input: UpdateProfileInput{MobileNo: strPtr("+15557654321")},
			setupMock: func(mRepo *MockUserRepository) {
				mRepo.On("FindByMobile", mock.Anything, "+15557654321").Return(&model.User{ID: 2, MobileNo: "+15557654321"}, nil)
			},
			expectedError: apperrors.ErrMobileTaken,
		},
		{
			name:  "changing own mobile to itself is allowed",
			input: UpdateProfileInput{MobileNo: strPtr("+15551234567")},
			setupMock: func(mRepo *MockUserRepository) {
				mRepo.On("FindByMobile", mock.Anything, "+15551234567").Return(&model.User{ID: 1, MobileNo: "+15551234567"}, nil)
				mRepo.On("Update", mock.Anything, uint(1), map[string]interface{}{"mobile_no": "+15551234567"}).
					Return(&model.User{ID: 1, MobileNo: "+15551234567"}, nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.UpdateProfile(context.Background(), 1, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateProfile_NoFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_DeleteAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

	svc := NewUserService(mockRepo, nil)
	assert.NoError(t, svc.DeleteAccount(context.Background(), 1))
}

func TestUserService_DeleteAccount_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Delete", mock.Anything, uint(9)).Return(gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), 9), apperrors.ErrUserNotFound)
}
