package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, username, password, email, dni, rol, created_at, updated_at`

// Create persiste un nuevo usuario. Una violación de UNIQUE en username,
// email o dni devuelve domain.ErrDuplicateField sin indicar cuál colisionó.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuarios (id, username, password, email, dni, rol, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		user.ID, user.Username, user.PasswordHash, user.Email, user.DNI, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateField
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM usuarios WHERE id = ?`, id)
}

// FindByEmail obtiene un usuario por email ya normalizado.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM usuarios WHERE email = ?`, email)
}

// FindByUsername obtiene un usuario por nombre exacto (sensible a mayúsculas).
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM usuarios WHERE username = ?`, username)
}

// FindByDNI obtiene un usuario por DNI (recuperación de contraseña).
func (r *UserRepo) FindByDNI(dni string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM usuarios WHERE dni = ?`, dni)
}

func (r *UserRepo) findOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.DNI, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios ordenados por fecha de alta.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM usuarios ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.DNI, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("escanear usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Count devuelve la cantidad total de usuarios (política de primer admin).
func (r *UserRepo) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM usuarios`).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar usuarios: %w", err)
	}
	return n, nil
}

// UpdatePassword reemplaza el hash del usuario con ese email.
func (r *UserRepo) UpdatePassword(email, newHash string) error {
	res, err := r.db.Exec(`UPDATE usuarios SET password = ?, updated_at = ? WHERE email = ?`,
		newHash, time.Now(), email)
	if err != nil {
		return fmt.Errorf("actualizar contraseña: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateRole cambia el rol del usuario con ese ID.
func (r *UserRepo) UpdateRole(id, role string) error {
	res, err := r.db.Exec(`UPDATE usuarios SET rol = ?, updated_at = ? WHERE id = ?`,
		role, time.Now(), id)
	if err != nil {
		return fmt.Errorf("actualizar rol: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario por ID. Definitivo, sin baja lógica.
func (r *UserRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM usuarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
