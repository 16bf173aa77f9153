package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
)

type fakeUserRepo struct {
	users  map[uint]domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uint]domain.User),
		nextID: 1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.User{}, repository.ErrUserEmailExists
		}
	}

	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.users[user.ID]; !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	f.users[user.ID] = user

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "setup-code")

	user, err := svc.Signup(context.Background(), domain.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "password1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password1")))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "setup-code")

	_, err := svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_SignupAdmin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "setup-code")

	admin, err := svc.SignupAdmin(context.Background(), domain.User{
		Email:    "admin@example.com",
		Password: "password1",
	}, "setup-code")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}

func TestAuthService_SignupAdmin_WrongCode(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "setup-code")

	_, err := svc.SignupAdmin(context.Background(), domain.User{
		Email:    "admin@example.com",
		Password: "password1",
	}, "wrong-code")
	assert.ErrorIs(t, err, ErrInvalidSetupCode)
}

func TestAuthService_SignupAdmin_NoCodeConfigured(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "")

	_, err := svc.SignupAdmin(context.Background(), domain.User{
		Email:    "admin@example.com",
		Password: "password1",
	}, "")
	assert.ErrorIs(t, err, ErrInvalidSetupCode)
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "setup-code")

	created, err := svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "alice@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "setup-code")

	_, err := svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "setup-code")

	_, err := svc.Login(context.Background(), "nobody@example.com", "password1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_UpdateProfile_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "setup-code")

	_, err := svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)
	bob, err := svc.Signup(context.Background(), domain.User{Email: "bob@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), bob.ID, "", "alice@example.com")
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "setup-code")

	user, err := svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), user.ID, "wrong", "newpassword1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), user.ID, "password1", "newpassword1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "newpassword1")
	assert.NoError(t, err)
}
