package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/infrastructure/database/models"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) Get(ctx context.Context, id string) (domain.Menu, error) {
	var menu models.Menu
	err := r.db.WithContext(ctx).Take(&menu, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Menu{}, domain.NotFoundError{Resource: "menu"}
	}
	if err != nil {
		return domain.Menu{}, err
	}
	return r.loadTree(ctx, menu)
}

func (r *MenuRepository) GetByName(ctx context.Context, name string) (domain.Menu, error) {
	var menu models.Menu
	err := r.db.WithContext(ctx).Take(&menu, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Menu{}, domain.NotFoundError{Resource: "menu"}
	}
	if err != nil {
		return domain.Menu{}, err
	}
	return r.loadTree(ctx, menu)
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.Menu, error) {
	var menus []models.Menu
	if err := r.db.WithContext(ctx).Order("name asc").Find(&menus).Error; err != nil {
		return nil, err
	}

	result := make([]domain.Menu, 0, len(menus))
	for _, m := range menus {
		tree, err := r.loadTree(ctx, m)
		if err != nil {
			return nil, err
		}
		result = append(result, tree)
	}
	return result, nil
}

func (r *MenuRepository) Create(ctx context.Context, name string) (domain.Menu, error) {
	menu := models.Menu{
		ID:   uuid.NewString(),
		Name: name,
	}
	err := r.db.WithContext(ctx).Create(&menu).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Menu{}, domain.ConflictError{Resource: "menu"}
	}
	if err != nil {
		return domain.Menu{}, err
	}
	return domain.Menu{ID: menu.ID, Name: menu.Name, Items: []domain.MenuItem{}}, nil
}

// ReplaceItems swaps the menu's entire item set for the submitted
// tree. Delete and recreate run in one transaction so the menu is
// never observable in a partially rebuilt state.
func (r *MenuRepository) ReplaceItems(ctx context.Context, menuID string, items []domain.MenuItemInput) (domain.Menu, error) {
	var menu models.Menu
	err := r.db.WithContext(ctx).Take(&menu, "id = ?", menuID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Menu{}, domain.NotFoundError{Resource: "menu"}
	}
	if err != nil {
		return domain.Menu{}, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Delete(&models.MenuItem{}, "menu_id = ?", menuID).Error; err != nil {
			return err
		}

		for i, item := range items {
			parent := models.MenuItem{
				ID:        uuid.NewString(),
				MenuID:    menuID,
				Label:     localizedJSON(item.Label),
				URL:       item.URL,
				PageID:    item.PageID,
				Target:    item.Target,
				SortOrder: i,
			}
			if err := tx.Create(&parent).Error; err != nil {
				return err
			}

			for j, child := range item.Children {
				childRow := models.MenuItem{
					ID:        uuid.NewString(),
					MenuID:    menuID,
					ParentID:  &parent.ID,
					Label:     localizedJSON(child.Label),
					URL:       child.URL,
					PageID:    child.PageID,
					Target:    child.Target,
					SortOrder: j,
				}
				if err := tx.Create(&childRow).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return domain.Menu{}, err
	}

	return r.loadTree(ctx, menu)
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		err := tx.Take(&menu, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Resource: "menu"}
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.MenuItem{}, "menu_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Menu{}, "id = ?", id).Error
	})
}

func (r *MenuRepository) loadTree(ctx context.Context, menu models.Menu) (domain.Menu, error) {
	var tops []models.MenuItem
	err := r.db.WithContext(ctx).
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc")
		}).
		Where("menu_id = ? AND parent_id IS NULL", menu.ID).
		Order("sort_order asc").
		Find(&tops).Error
	if err != nil {
		return domain.Menu{}, err
	}

	items := make([]domain.MenuItem, 0, len(tops))
	for _, top := range tops {
		item := itemToDomain(top)
		item.Children = make([]domain.MenuItem, 0, len(top.Children))
		for _, child := range top.Children {
			item.Children = append(item.Children, itemToDomain(child))
		}
		items = append(items, item)
	}

	return domain.Menu{ID: menu.ID, Name: menu.Name, Items: items}, nil
}

func itemToDomain(m models.MenuItem) domain.MenuItem {
	return domain.MenuItem{
		ID:        m.ID,
		Label:     jsonLocalized(m.Label),
		URL:       m.URL,
		PageID:    m.PageID,
		Target:    m.Target,
		SortOrder: m.SortOrder,
	}
}
