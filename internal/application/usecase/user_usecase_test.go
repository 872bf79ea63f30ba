package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FedericoMusa/ordico2/internal/application/usecase"
	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/pkg/logger"
)

// fakeUserRepo versión mínima para administración: las altas se siembran
// directo en el slice.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(string) (*entity.User, error)    { return nil, nil }
func (r *fakeUserRepo) FindByUsername(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) FindByDNI(string) (*entity.User, error)      { return nil, nil }
func (r *fakeUserRepo) List() ([]*entity.User, error)               { return r.users, nil }
func (r *fakeUserRepo) Count() (int, error)                         { return len(r.users), nil }
func (r *fakeUserRepo) UpdatePassword(string, string) error         { return nil }

func (r *fakeUserRepo) UpdateRole(id, role string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func seedUser(repo *fakeUserRepo, id, username, dni string) {
	repo.users = append(repo.users, &entity.User{
		ID: id, Username: username, Email: username + "@x.com",
		PasswordHash: "hash", DNI: dni, Role: entity.RoleCajero, CreatedAt: time.Now(),
	})
}

func TestUserList_NoExponeElHash(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, "id-1", "alice", "111")
	uc := usecase.NewUserUseCase(repo, logger.Nop())

	views, err := uc.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "alice", views[0].Username)
	assert.Equal(t, "111", views[0].DNI)
	// dto.UserView no tiene campo de hash; acá solo se verifica el contenido.
}

func TestUserUpdateRole_SoloPorID(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, "id-1", "alice", "111")
	uc := usecase.NewUserUseCase(repo, logger.Nop())

	require.NoError(t, uc.UpdateRole("id-1", entity.RoleVendedor))
	assert.Equal(t, entity.RoleVendedor, repo.users[0].Role)

	// El DNI no sirve como identificador de esta operación.
	assert.ErrorIs(t, uc.UpdateRole("111", entity.RoleAdmin), domain.ErrUserNotFound)
}

func TestUserUpdateRole_RolInvalido(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, "id-1", "alice", "111")
	uc := usecase.NewUserUseCase(repo, logger.Nop())

	assert.ErrorIs(t, uc.UpdateRole("id-1", "gerente"), domain.ErrInvalidRole)
	assert.ErrorIs(t, uc.UpdateRole("id-1", ""), domain.ErrMissingField)
}

func TestUserDelete(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, "id-1", "alice", "111")
	uc := usecase.NewUserUseCase(repo, logger.Nop())

	require.NoError(t, uc.Delete("id-1"))
	assert.Empty(t, repo.users)
	assert.ErrorIs(t, uc.Delete("id-1"), domain.ErrUserNotFound)
}
