package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/media"
	"corpdesk/internal/model"
	"corpdesk/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestCompanyService_Register(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockCompanyRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(mRepo *MockCompanyRepository) {
				mRepo.On("FindByOwnerID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.CompanyProfile")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "owner already has a company",
			setupMock: func(mRepo *MockCompanyRepository) {
				mRepo.On("FindByOwnerID", mock.Anything, uint(1)).Return(&model.CompanyProfile{ID: 3, OwnerID: 1}, nil)
			},
			expectedError: apperrors.ErrCompanyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCompanyRepository)
			tt.setupMock(mockRepo)

			svc := NewCompanyService(mockRepo, new(MockUploader), nil)
			company, err := svc.Register(context.Background(), 1, CompanyInput{
				CompanyName: strPtr("Anders Analytics"),
				Country:     strPtr("US"),
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, company)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, company)
				assert.Equal(t, uint(1), company.OwnerID)
				assert.Equal(t, "Anders Analytics", company.CompanyName)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCompanyService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("FindByOwnerID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCompanyService(mockRepo, new(MockUploader), nil)
	company, err := svc.Get(context.Background(), 5)

	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
	assert.Nil(t, company)
}

func TestCompanyService_Update(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	updated := &model.CompanyProfile{ID: 3, OwnerID: 1, CompanyName: "Anders Analytics", City: "Dallas"}
	mockRepo.On("Update", mock.Anything, uint(1), map[string]interface{}{"city": "Dallas"}).Return(updated, nil)

	svc := NewCompanyService(mockRepo, new(MockUploader), nil)
	company, err := svc.Update(context.Background(), 1, CompanyInput{City: strPtr("Dallas")})

	assert.NoError(t, err)
	assert.Equal(t, "Dallas", company.City)
	mockRepo.AssertExpectations(t)
}

func TestCompanyService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("Update", mock.Anything, uint(1), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCompanyService(mockRepo, new(MockUploader), nil)
	_, err := svc.Update(context.Background(), 1, CompanyInput{City: strPtr("Dallas")})

	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestCompanyService_UploadLogo(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockUploader := new(MockUploader)

	existing := &model.CompanyProfile{ID: 3, OwnerID: 1}
	withLogo := &model.CompanyProfile{ID: 3, OwnerID: 1, LogoURL: "https://cdn.example.com/logo.png"}

	mockRepo.On("FindByOwnerID", mock.Anything, uint(1)).Return(existing, nil)
	mockUploader.On("UploadImage", mock.Anything, "company_logos", mock.MatchedBy(func(publicID string) bool {
		return strings.HasPrefix(publicID, "logo_1_")
	}), media.LogoTransformation, mock.Anything).Return("https://cdn.example.com/logo.png", nil)
	mockRepo.On("UpdateAssetURL", mock.Anything, uint(1), repository.AssetLogo, "https://cdn.example.com/logo.png").Return(withLogo, nil)

	svc := NewCompanyService(mockRepo, mockUploader, nil)
	company, err := svc.UploadLogo(context.Background(), 1, strings.NewReader("fake-image-bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/logo.png", company.LogoURL)
	mockRepo.AssertExpectations(t)
	mockUploader.AssertExpectations(t)
}

func TestCompanyService_UploadBanner_RequiresProfile(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockUploader := new(MockUploader)
	mockRepo.On("FindByOwnerID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCompanyService(mockRepo, mockUploader, nil)
	company, err := svc.UploadBanner(context.Background(), 1, strings.NewReader("fake-image-bytes"))

	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
	assert.Nil(t, company)
	mockUploader.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompanyService_UploadLogo_UploaderFailure(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockUploader := new(MockUploader)

	mockRepo.On("FindByOwnerID", mock.Anything, uint(1)).Return(&model.CompanyProfile{ID: 3, OwnerID: 1}, nil)
	mockUploader.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)

	svc := NewCompanyService(mockRepo, mockUploader, nil)
	company, err := svc.UploadLogo(context.Background(), 1, strings.NewReader("fake-image-bytes"))

	assert.ErrorIs(t, err, apperrors.ErrUploadFailed)
	assert.Nil(t, company)
	mockRepo.AssertNotCalled(t, "UpdateAssetURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompanyService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("Delete", mock.Anything, uint(9)).Return(gorm.ErrRecordNotFound)

	svc := NewCompanyService(mockRepo, new(MockUploader), nil)
	err := svc.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}
