package user

import (
	"context"

	"learnhub/be/internal/db"
)

type RepositoryImpl struct {
	db *db.LDb
}

func NewRepositoryImpl(db *db.LDb) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, "SELECT id, username, password FROM user_account WHERE username = $1", username)
	return user, err
}

func (r *RepositoryImpl) Create(ctx context.Context, user *User) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO user_account (username, password) VALUES ($1, $2)", user.Username, user.Password)
	return err
}
