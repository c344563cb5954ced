package user

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"lawnly/models"
	"lawnly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users  map[string]models.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]models.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, u *models.User) error {
	r.nextID++
	u.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListCustomers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == models.RoleCustomer {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(ctx context.Context, u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.TokenHash = tokenHash
	r.users[id] = u
	return nil
}

func registerInput() RegisterInput {
	return RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		Password:  "correct horse",
	}
}

func TestRegister_CreatesCustomerWithHashedPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultService{Users: repo}

	result, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.RoleCustomer, result.User.Role)

	stored := repo.users[result.User.ID]
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
	assert.Equal(t, utils.HashToken(result.Token), stored.TokenHash)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultService{Users: repo}

	input := registerInput()
	input.Email = "  Jane@Example.COM "
	result, err := svc.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", result.User.Email)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	svc := &DefaultService{Users: newMemUserRepo()}

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	svc := &DefaultService{Users: newMemUserRepo()}

	input := registerInput()
	input.Password = "short"
	_, err := svc.Register(context.Background(), input)

	var invalid *models.ValidationError
	assert.ErrorAs(t, err, &invalid)
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultService{Users: repo}

	registered, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "jane@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)

	subject, role, err := utils.ExtractClaimsFromToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, subject)
	assert.Equal(t, models.RoleCustomer, role)
}

func TestLogin_WrongPasswordOrUnknownEmail(t *testing.T) {
	svc := &DefaultService{Users: newMemUserRepo()}
	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_ClearsTokenHash(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultService{Users: repo}

	result, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.User.ID))
	assert.Empty(t, repo.users[result.User.ID].TokenHash)
}

func TestUpdateProfile_EditsOnlySuppliedFields(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultService{Users: repo}

	result, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), result.User.ID, ProfileUpdate{Phone: "555-0199"})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "jane@example.com", updated.Email)
}

func TestDeleteAccount(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultService{Users: repo}

	result, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(context.Background(), result.User.ID))

	_, err = svc.GetProfile(context.Background(), result.User.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), result.User.ID), ErrUserNotFound)
}

func TestListCustomers_ExcludesAdmins(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultService{Users: repo}

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	admin := &models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(context.Background(), admin))

	customers, err := svc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "jane@example.com", customers[0].Email)
}
