package user

import (
	"context"
	"strings"
	"testing"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryUserRepository struct {
	users map[string]*entities.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*entities.User)}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID.String()] = user
	return nil
}

func (r *memoryUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *memoryUserRepository) GetUsers(_ context.Context, userType string, search string, _, _ int) ([]*entities.User, int64, error) {
	var out []*entities.User
	for _, user := range r.users {
		if userType != "" && user.Type != userType {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(user.Email), strings.ToLower(search)) {
			continue
		}
		out = append(out, user)
	}
	return out, int64(len(out)), nil
}

func (r *memoryUserRepository) GetUsersByType(_ context.Context, userType string) ([]*entities.User, error) {
	var out []*entities.User
	for _, user := range r.users {
		if user.Type == userType {
			out = append(out, user)
		}
	}
	return out, nil
}

type stubJWTService struct{}

func (s *stubJWTService) GenerateTokenUser(userID string, role string) string {
	return "token:" + userID + ":" + role
}

func (s *stubJWTService) ValidateTokenUser(string) (*jwt.Token, error) { return nil, nil }

func (s *stubJWTService) GetUserIDByToken(token string) (string, string, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return "", "", domain.ErrTokenInvalid
	}
	return parts[1], parts[2], nil
}

func registerTestUser(t *testing.T, service UserService, email string, userType string) domain.RegisterUserResponse {
	t.Helper()
	res, err := service.Register(context.Background(), domain.RegisterUserRequest{
		FirstName: "Mika",
		LastName:  "Peric",
		Email:     email,
		Password:  "hunter2hunter2",
	}, userType)
	require.NoError(t, err)
	return res
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMemoryUserRepository()
	service := NewUserService(repo, &stubJWTService{})

	res := registerTestUser(t, service, "mika@tiac.rs", domain.RoleUser)

	stored, err := repo.GetUserByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", stored.Password)
	assert.Equal(t, domain.RoleUser, stored.Type)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &stubJWTService{})

	registerTestUser(t, service, "mika@tiac.rs", domain.RoleUser)

	_, err := service.Register(context.Background(), domain.RegisterUserRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "mika@tiac.rs",
		Password:  "hunter2hunter2",
	}, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginRoundtrip(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &stubJWTService{})
	registerTestUser(t, service, "mika@tiac.rs", domain.RoleUser)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "mika@tiac.rs",
		Password: "hunter2hunter2",
	}, false)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &stubJWTService{})
	registerTestUser(t, service, "mika@tiac.rs", domain.RoleUser)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "mika@tiac.rs",
		Password: "wrong",
	}, false)
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &stubJWTService{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@tiac.rs",
		Password: "whatever",
	}, false)
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestAdminLoginRejectsRegularUser(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &stubJWTService{})
	registerTestUser(t, service, "mika@tiac.rs", domain.RoleUser)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "mika@tiac.rs",
		Password: "hunter2hunter2",
	}, true)
	assert.ErrorIs(t, err, domain.ErrNotAnAdmin)
}

func TestAdminLoginAllowsAdmin(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &stubJWTService{})
	registerTestUser(t, service, "admin@tiac.rs", domain.RoleAdmin)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@tiac.rs",
		Password: "hunter2hunter2",
	}, true)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)
}

func TestUpdatePasswordMismatch(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &stubJWTService{})
	res := registerTestUser(t, service, "mika@tiac.rs", domain.RoleUser)

	err := service.UpdatePassword(context.Background(), domain.UpdatePasswordRequest{
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword2",
	}, res.ID)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
}

func TestUpdateAndSettleDebt(t *testing.T) {
	repo := newMemoryUserRepository()
	service := NewUserService(repo, &stubJWTService{})
	res := registerTestUser(t, service, "mika@tiac.rs", domain.RoleUser)

	require.NoError(t, service.UpdateDebt(context.Background(), res.ID, 420))

	me, err := service.Me(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, 420.0, me.CurrentDebt)

	require.NoError(t, service.SettleDebt(context.Background(), res.ID))

	me, err = service.Me(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Zero(t, me.CurrentDebt)
}
