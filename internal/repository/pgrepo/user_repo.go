package pgrepo

import (
	"context"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

const (
	userFindByEmailSQL = `SELECT id::text, name, email, password FROM users WHERE email = $1`
	userCreateSQL      = `INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING id::text, name, email, password`
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{db: conn}
}

// CreateUser создает юзера. В случае конфликта email возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (r *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, userCreateSQL, user.Name, user.Email, user.Password).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return &u, nil
}

// FindUserByEmail ищет юзера по точному совпадению email. Возвращает ошибку domain.ErrRecordNotFound если запись
// не найдена, во всех других случаях - domain.ErrUnknown.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, userFindByEmailSQL, email).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return &u, nil
}
