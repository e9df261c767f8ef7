package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
)

// ImportFile validates the seed at path and inserts all of its projects in
// one transaction. Nothing is written if any project fails.
func ImportFile(ctx context.Context, uow db.UnitOfWork, path string) ([]*domain.Project, error) {
	seed, err := LoadSeed(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidateSeed(seed); len(errs) > 0 {
		return nil, fmt.Errorf("invalid seed file %s:\n%w", path, errors.Join(errs...))
	}
	projects := Convert(seed)
	if err := Import(ctx, uow, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Import inserts projects in one transaction, setting their IDs.
func Import(ctx context.Context, uow db.UnitOfWork, projects []*domain.Project) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProjectRepo(tx)
		for i, p := range projects {
			if err := repo.Create(ctx, p); err != nil {
				return fmt.Errorf("importing project %d (%s): %w", i, p.Title, err)
			}
		}
		return nil
	})
}
