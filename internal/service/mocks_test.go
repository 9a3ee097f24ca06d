package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"corpdesk/internal/identity"
	"corpdesk/internal/model"
	"corpdesk/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByMobile(ctx context.Context, mobileNo string) (*model.User, error) {
	args := m.Called(ctx, mobileNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateVerificationFlag(ctx context.Context, id uint, channel model.VerificationChannel, verified bool) error {
	args := m.Called(ctx, id, channel, verified)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCompanyRepository is a mock implementation of repository.CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

var _ repository.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) Create(ctx context.Context, company *model.CompanyProfile) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindByOwnerID(ctx context.Context, ownerID uint) (*model.CompanyProfile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyProfile), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, ownerID uint, updates map[string]interface{}) (*model.CompanyProfile, error) {
	args := m.Called(ctx, ownerID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyProfile), args.Error(1)
}

func (m *MockCompanyRepository) UpdateAssetURL(ctx context.Context, ownerID uint, kind repository.AssetKind, url string) (*model.CompanyProfile, error) {
	args := m.Called(ctx, ownerID, kind, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyProfile), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, ownerID uint) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// MockIdentityProvider is a mock implementation of identity.Provider.
type MockIdentityProvider struct {
	mock.Mock
}

var _ identity.Provider = (*MockIdentityProvider)(nil)

func (m *MockIdentityProvider) CreateUser(ctx context.Context, email, password, displayName, phoneNumber string) (string, error) {
	args := m.Called(ctx, email, password, displayName, phoneNumber)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*identity.IDToken, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.IDToken), args.Error(1)
}

func (m *MockIdentityProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

// MockUploader is a mock implementation of media.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadImage(ctx context.Context, folder, publicID, transformation string, file io.Reader) (string, error) {
	args := m.Called(ctx, folder, publicID, transformation, file)
	return args.String(0), args.Error(1)
}
