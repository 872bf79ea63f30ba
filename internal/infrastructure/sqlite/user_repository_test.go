package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/internal/infrastructure/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.InitSchema(db))
	return db
}

func newUser(username, email, dni string) *entity.User {
	now := time.Now()
	return &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "pbkdf2:sha256:1000$salt$digest",
		DNI:          dni,
		Role:         entity.RoleCajero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepo_CreateYBusquedas(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))
	alice := newUser("alice", "alice@x.com", "111")
	require.NoError(t, repo.Create(alice))

	byEmail, err := repo.FindByEmail("alice@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, alice.ID, byEmail.ID)
	assert.Equal(t, alice.PasswordHash, byEmail.PasswordHash)

	byUsername, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, byUsername)

	byDNI, err := repo.FindByDNI("111")
	require.NoError(t, err)
	require.NotNil(t, byDNI)

	missing, err := repo.FindByEmail("nadie@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing, "sin coincidencia devuelve nil, nil")
}

// La unicidad la impone el esquema: username, email o dni repetidos devuelven
// ErrDuplicateField sin indicar cuál colisionó.
func TestUserRepo_CamposDuplicados(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))
	require.NoError(t, repo.Create(newUser("alice", "alice@x.com", "111")))

	cases := []*entity.User{
		newUser("alice", "otra@x.com", "222"),
		newUser("otra", "alice@x.com", "333"),
		newUser("tercera", "tercera@x.com", "111"),
	}
	for _, u := range cases {
		assert.ErrorIs(t, repo.Create(u), domain.ErrDuplicateField)
	}

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n, "ningún duplicado debe insertarse")
}

func TestUserRepo_Count(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(newUser("alice", "alice@x.com", "111")))
	require.NoError(t, repo.Create(newUser("bob", "bob@x.com", "222")))

	n, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))
	require.NoError(t, repo.Create(newUser("alice", "alice@x.com", "111")))

	require.NoError(t, repo.UpdatePassword("alice@x.com", "pbkdf2:sha256:1000$nuevo$hash"))
	u, err := repo.FindByEmail("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "pbkdf2:sha256:1000$nuevo$hash", u.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword("nadie@x.com", "h"), domain.ErrUserNotFound)
}

func TestUserRepo_UpdateRolePorID(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))
	alice := newUser("alice", "alice@x.com", "111")
	require.NoError(t, repo.Create(alice))

	require.NoError(t, repo.UpdateRole(alice.ID, entity.RoleAdmin))
	u, err := repo.FindByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	// El DNI no es un ID válido para esta operación.
	assert.ErrorIs(t, repo.UpdateRole("111", entity.RoleAdmin), domain.ErrUserNotFound)
}

func TestUserRepo_DeleteDefinitivo(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))
	alice := newUser("alice", "alice@x.com", "111")
	require.NoError(t, repo.Create(alice))

	require.NoError(t, repo.Delete(alice.ID))
	u, err := repo.FindByID(alice.ID)
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.ErrorIs(t, repo.Delete(alice.ID), domain.ErrUserNotFound)
}

func TestUserRepo_List(t *testing.T) {
	repo := sqlite.NewUserRepository(openTestDB(t))
	require.NoError(t, repo.Create(newUser("alice", "alice@x.com", "111")))
	require.NoError(t, repo.Create(newUser("bob", "bob@x.com", "222")))

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
