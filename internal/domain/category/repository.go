package category

import "context"

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID uint) error
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	// GetByName matches case-insensitively; uniqueness checks go through it.
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context, onlyActive bool) ([]*Category, error)
	CountAll(ctx context.Context) (int64, error)
}
