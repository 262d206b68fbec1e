package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/labsurvey/internal/model"
)

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// Create はユーザーを1件作成し、採番されたIDをuser.IDに設定する。
// INSERTとCOMMITを単一トランザクションで行い、
// 一意制約違反の場合はロールバックしてErrDuplicateKeyを返す。
func (r *PostgresUserRepo) Create(ctx context.Context, user *model.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		user.Username, user.Email, user.PasswordHash,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", classify(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classify(err))
	}

	return nil
}

// FindByIdentifier はusernameまたはemailが一致するユーザーを取得する。
// 見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash
		 FROM users
		 WHERE username = $1 OR email = $1`,
		identifier,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by identifier: %w", classify(err))
	}

	return user, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
