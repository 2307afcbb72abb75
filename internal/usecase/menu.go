package usecase

import (
	"context"

	"github.com/angulacms/angula/internal/domain"
)

// MenuRepository defines persistence for menus. ReplaceItems must
// perform the delete-and-recreate of the item set atomically.
type MenuRepository interface {
	Get(ctx context.Context, id string) (domain.Menu, error)
	GetByName(ctx context.Context, name string) (domain.Menu, error)
	List(ctx context.Context) ([]domain.Menu, error)
	Create(ctx context.Context, name string) (domain.Menu, error)
	ReplaceItems(ctx context.Context, menuID string, items []domain.MenuItemInput) (domain.Menu, error)
	Delete(ctx context.Context, id string) error
}

type MenuUsecase struct {
	repo MenuRepository
}

func NewMenuUsecase(repo MenuRepository) *MenuUsecase {
	return &MenuUsecase{repo: repo}
}

func (uc *MenuUsecase) Get(ctx context.Context, id string) (domain.Menu, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *MenuUsecase) GetByName(ctx context.Context, name string) (domain.Menu, error) {
	return uc.repo.GetByName(ctx, name)
}

func (uc *MenuUsecase) List(ctx context.Context) ([]domain.Menu, error) {
	return uc.repo.List(ctx)
}

func (uc *MenuUsecase) Create(ctx context.Context, name string) (domain.Menu, error) {
	if name == "" {
		return domain.Menu{}, domain.ValidationError{Message: "menu name is required"}
	}
	return uc.repo.Create(ctx, name)
}

// ReplaceItems swaps the full item tree of a menu. The submitted tree
// is validated and normalized before it reaches storage: nesting
// deeper than two levels is rejected rather than flattened, and every
// item without an explicit open target gets "_self".
func (uc *MenuUsecase) ReplaceItems(ctx context.Context, menuID string, items []domain.MenuItemInput) (domain.Menu, error) {
	normalized, err := normalizeItems(items)
	if err != nil {
		return domain.Menu{}, err
	}
	return uc.repo.ReplaceItems(ctx, menuID, normalized)
}

func (uc *MenuUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func normalizeItems(items []domain.MenuItemInput) ([]domain.MenuItemInput, error) {
	normalized := make([]domain.MenuItemInput, 0, len(items))
	for _, item := range items {
		if item.Target == "" {
			item.Target = domain.TargetSelf
		}

		children := make([]domain.MenuItemInput, 0, len(item.Children))
		for _, child := range item.Children {
			if len(child.Children) > 0 {
				return nil, domain.ValidationError{Message: "menu items can only be nested one level deep"}
			}
			if child.Target == "" {
				child.Target = domain.TargetSelf
			}
			children = append(children, child)
		}
		item.Children = children

		normalized = append(normalized, item)
	}
	return normalized, nil
}
