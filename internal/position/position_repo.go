package position

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, pos *Position) error
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id uint) (*Position, error)
	FindByName(ctx context.Context, name string) (*Position, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).Find(&positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).First(&pos, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).First(&pos, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}
