package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/folio/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ProjectRepo stores catalog projects.
type ProjectRepo interface {
	// Create inserts p and sets its ID and CreatedAt.
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	// List returns every project, oldest first.
	List(ctx context.Context) ([]domain.Project, error)
	Delete(ctx context.Context, id int64) error
}
