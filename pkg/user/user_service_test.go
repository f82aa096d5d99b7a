package user

import (
	"context"
	"testing"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"
	"resto-pos-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	usersByEmail map[string]*entities.User
	usersByID    map[uint]*entities.User

	createdUsers      []*entities.User
	createdBusinesses []*entities.Business
	deletedIDs        []uint
	nextBusinessID    uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		usersByEmail:   map[string]*entities.User{},
		usersByID:      map[uint]*entities.User{},
		nextBusinessID: 1,
	}
}

func (f *fakeUserRepository) add(u *entities.User) {
	f.usersByEmail[u.Email] = u
	f.usersByID[u.ID] = u
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.createdUsers = append(f.createdUsers, user)
	return nil
}

func (f *fakeUserRepository) CreateBusiness(_ context.Context, business *entities.Business) error {
	business.ID = f.nextBusinessID
	f.nextBusinessID++
	f.createdBusinesses = append(f.createdBusinesses, business)
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := f.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByIdentifier(_ context.Context, identifier string) (*entities.User, error) {
	if u, ok := f.usersByEmail[identifier]; ok {
		return u, nil
	}
	for _, u := range f.usersByID {
		if u.Name == identifier {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id uint) (*entities.User, error) {
	if u, ok := f.usersByID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUsersByBusiness(_ context.Context, businessID uint) ([]*entities.User, error) {
	var users []*entities.User
	for _, u := range f.usersByID {
		if u.BusinessID == businessID {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeUserRepository) GetUserByResetToken(_ context.Context, token string) (*entities.User, error) {
	for _, u := range f.usersByID {
		if u.ResetToken != nil && *u.ResetToken == token {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id uint) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestRegisterCreatesBusinessAndAdmin(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService("test-secret"))

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:          "Wanjiku",
		Email:         "wanjiku@example.com",
		Password:      "s3cret-pass",
		BusinessName:  "Mama Oliech",
		BusinessEmail: "info@mamaoliech.co.ke",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), res.BusinessID)
	require.Len(t, repo.createdBusinesses, 1)
	require.Len(t, repo.createdUsers, 1)

	admin := repo.createdUsers[0]
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Equal(t, uint(1), admin.BusinessID)
	assert.NotEqual(t, "s3cret-pass", admin.Password, "password must be stored hashed")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	repo.add(&entities.User{ID: 1, Email: "wanjiku@example.com"})
	service := NewUserService(repo, jwt.NewJWTService("test-secret"))

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:          "Wanjiku",
		Email:         "wanjiku@example.com",
		Password:      "s3cret-pass",
		BusinessName:  "Mama Oliech",
		BusinessEmail: "info@mamaoliech.co.ke",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, repo.createdBusinesses)
}

func TestLoginWithEmailOrName(t *testing.T) {
	repo := newFakeUserRepository()
	repo.add(&entities.User{
		ID:         7,
		BusinessID: 3,
		Name:       "Otieno",
		Email:      "otieno@example.com",
		Password:   hashPassword(t, "correct-horse"),
		Role:       domain.RoleSalesperson,
	})
	service := NewUserService(repo, jwt.NewJWTService("test-secret"))

	for _, identifier := range []string{"otieno@example.com", "Otieno"} {
		res, err := service.Login(context.Background(), domain.LoginRequest{
			Identifier: identifier,
			Password:   "correct-horse",
		})
		require.NoError(t, err, "identifier %q", identifier)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, uint(3), res.User.BusinessID)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	repo.add(&entities.User{
		ID:       7,
		Email:    "otieno@example.com",
		Password: hashPassword(t, "correct-horse"),
	})
	service := NewUserService(repo, jwt.NewJWTService("test-secret"))

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Identifier: "otieno@example.com",
		Password:   "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), jwt.NewJWTService("test-secret"))

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Identifier: "nobody@example.com",
		Password:   "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCreateSalespersonUsesCallerBusiness(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService("test-secret"))

	err := service.CreateSalesperson(context.Background(), domain.CreateSalespersonRequest{
		Name:     "Akinyi",
		Email:    "akinyi@example.com",
		Password: "s3cret-pass",
	}, 3)

	require.NoError(t, err)
	require.Len(t, repo.createdUsers, 1)
	assert.Equal(t, uint(3), repo.createdUsers[0].BusinessID)
	assert.Equal(t, domain.RoleSalesperson, repo.createdUsers[0].Role)
}

func TestResetPasswordClearsToken(t *testing.T) {
	token := "reset-token-abc"
	user := &entities.User{
		ID:         7,
		Email:      "otieno@example.com",
		Password:   hashPassword(t, "old-pass"),
		ResetToken: &token,
	}
	repo := newFakeUserRepository()
	repo.add(user)
	service := NewUserService(repo, jwt.NewJWTService("test-secret"))

	err := service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:    token,
		Password: "new-pass-123",
	})

	require.NoError(t, err)
	assert.Nil(t, user.ResetToken)
	assert.Nil(t, user.ResetExpires)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-pass-123")))
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), jwt.NewJWTService("test-secret"))

	err := service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:    "stale-token",
		Password: "new-pass-123",
	})

	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}

func TestGetUserEnforcesBusinessBoundary(t *testing.T) {
	repo := newFakeUserRepository()
	repo.add(&entities.User{ID: 7, BusinessID: 3, Email: "otieno@example.com"})
	service := NewUserService(repo, jwt.NewJWTService("test-secret"))

	_, err := service.GetUser(context.Background(), 7, 99)
	assert.ErrorIs(t, err, domain.ErrUserOutsideBusiness)

	res, err := service.GetUser(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(7), res.ID)
}

func TestDeleteUserEnforcesBusinessBoundary(t *testing.T) {
	repo := newFakeUserRepository()
	repo.add(&entities.User{ID: 7, BusinessID: 3})
	service := NewUserService(repo, jwt.NewJWTService("test-secret"))

	err := service.DeleteUser(context.Background(), 7, 99)
	assert.ErrorIs(t, err, domain.ErrUserOutsideBusiness)
	assert.Empty(t, repo.deletedIDs)

	require.NoError(t, service.DeleteUser(context.Background(), 7, 3))
	assert.Equal(t, []uint{7}, repo.deletedIDs)
}
