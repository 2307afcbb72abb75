package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/locale"
)

type mockMenuRepo struct {
	menus    map[string]domain.Menu
	replaced []domain.MenuItemInput
}

func (m *mockMenuRepo) Get(ctx context.Context, id string) (domain.Menu, error) {
	menu, ok := m.menus[id]
	if !ok {
		return domain.Menu{}, domain.NotFoundError{Resource: "menu"}
	}
	return menu, nil
}

func (m *mockMenuRepo) GetByName(ctx context.Context, name string) (domain.Menu, error) {
	for _, menu := range m.menus {
		if menu.Name == name {
			return menu, nil
		}
	}
	return domain.Menu{}, domain.NotFoundError{Resource: "menu"}
}

func (m *mockMenuRepo) List(ctx context.Context) ([]domain.Menu, error) { return nil, nil }

func (m *mockMenuRepo) Create(ctx context.Context, name string) (domain.Menu, error) {
	for _, menu := range m.menus {
		if menu.Name == name {
			return domain.Menu{}, domain.ConflictError{Resource: "menu"}
		}
	}
	return domain.Menu{ID: "m1", Name: name}, nil
}

func (m *mockMenuRepo) ReplaceItems(ctx context.Context, menuID string, items []domain.MenuItemInput) (domain.Menu, error) {
	if _, ok := m.menus[menuID]; !ok {
		return domain.Menu{}, domain.NotFoundError{Resource: "menu"}
	}
	m.replaced = items
	return m.menus[menuID], nil
}

func (m *mockMenuRepo) Delete(ctx context.Context, id string) error { return nil }

func label(s string) locale.Localized {
	return locale.Localized{"en": s}
}

func TestMenuReplaceItemsDefaultsTarget(t *testing.T) {
	repo := &mockMenuRepo{menus: map[string]domain.Menu{"m1": {ID: "m1", Name: "main"}}}
	uc := NewMenuUsecase(repo)

	items := []domain.MenuItemInput{
		{Label: label("Home")},
		{Label: label("External"), Target: domain.TargetBlank, Children: []domain.MenuItemInput{
			{Label: label("Child")},
		}},
	}

	if _, err := uc.ReplaceItems(context.Background(), "m1", items); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if repo.replaced[0].Target != domain.TargetSelf {
		t.Fatalf("expected default target %q got %q", domain.TargetSelf, repo.replaced[0].Target)
	}
	if repo.replaced[1].Target != domain.TargetBlank {
		t.Fatalf("explicit target must be kept, got %q", repo.replaced[1].Target)
	}
	if repo.replaced[1].Children[0].Target != domain.TargetSelf {
		t.Fatalf("expected child default target, got %q", repo.replaced[1].Children[0].Target)
	}
}

func TestMenuReplaceItemsRejectsDeepNesting(t *testing.T) {
	repo := &mockMenuRepo{menus: map[string]domain.Menu{"m1": {ID: "m1", Name: "main"}}}
	uc := NewMenuUsecase(repo)

	items := []domain.MenuItemInput{
		{Label: label("Top"), Children: []domain.MenuItemInput{
			{Label: label("Child"), Children: []domain.MenuItemInput{
				{Label: label("Grandchild")},
			}},
		}},
	}

	_, err := uc.ReplaceItems(context.Background(), "m1", items)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.replaced != nil {
		t.Fatalf("invalid tree must never reach the repository")
	}
}

func TestMenuReplaceItemsKeepsSubmittedOrder(t *testing.T) {
	repo := &mockMenuRepo{menus: map[string]domain.Menu{"m1": {ID: "m1", Name: "main"}}}
	uc := NewMenuUsecase(repo)

	items := []domain.MenuItemInput{
		{Label: label("Third")},
		{Label: label("First")},
		{Label: label("Second")},
	}

	if _, err := uc.ReplaceItems(context.Background(), "m1", items); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	for i, want := range []string{"Third", "First", "Second"} {
		if got := repo.replaced[i].Label["en"]; got != want {
			t.Fatalf("position %d: expected %q got %q", i, want, got)
		}
	}
}

func TestMenuReplaceItemsEmptyTree(t *testing.T) {
	repo := &mockMenuRepo{menus: map[string]domain.Menu{"m1": {ID: "m1", Name: "main"}}}
	uc := NewMenuUsecase(repo)

	if _, err := uc.ReplaceItems(context.Background(), "m1", nil); err != nil {
		t.Fatalf("empty tree must be valid: %v", err)
	}
	if repo.replaced == nil || len(repo.replaced) != 0 {
		t.Fatalf("expected empty normalized slice, got %v", repo.replaced)
	}
}

func TestMenuCreateRequiresName(t *testing.T) {
	uc := NewMenuUsecase(&mockMenuRepo{})

	_, err := uc.Create(context.Background(), "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
