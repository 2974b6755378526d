package postgres

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/ghuser/todolists/migrations/todo"
	"github.com/ghuser/todolists/pkg/database"
	"github.com/ghuser/todolists/pkg/logger"
	"github.com/ghuser/todolists/pkg/migrator"
	tododomain "github.com/ghuser/todolists/services/todo/domain"
	"github.com/ghuser/todolists/services/todo/domain/models"
)

var migrateOnce sync.Once

// setupTestDB connects to TEST_DATABASE_URL, applies migrations once and
// empties both tables. Skipped when no database is available.
func setupTestDB(t *testing.T) (*ListRepository, *ItemRepository) {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	d, err := database.NewPool(ctx, url, logger.NewWithWriter(io.Discard, "error"))
	if err != nil {
		t.Skipf("Skipping test: database not available: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	var migrateErr error
	migrateOnce.Do(func() { migrateErr = migrator.Up(d.DB(), todo.FS) })
	if migrateErr != nil {
		t.Fatalf("migrate: %v", migrateErr)
	}

	if _, err := d.DB().ExecContext(ctx, `TRUNCATE todos, todolists RESTART IDENTITY`); err != nil {
		t.Fatalf("failed to clean up test data: %v", err)
	}

	return NewListRepository(d, nil), NewItemRepository(d, nil)
}

func mustCreateList(t *testing.T, lists *ListRepository, name string) *models.List {
	t.Helper()
	l := models.NewList(models.ListName(name))
	if err := lists.Create(context.Background(), l); err != nil {
		t.Fatalf("create list %q: %v", name, err)
	}
	return l
}

func mustCreateItem(t *testing.T, items *ItemRepository, listID int64, desc string) *models.Item {
	t.Helper()
	it := models.NewItem(listID, models.ItemDescription(desc))
	if err := items.Create(context.Background(), it); err != nil {
		t.Fatalf("create item %q: %v", desc, err)
	}
	return it
}

func TestItemRepository_Create(t *testing.T) {
	lists, items := setupTestDB(t)
	ctx := context.Background()
	l := mustCreateList(t, lists, "Groceries")

	t.Run("existing list", func(t *testing.T) {
		it := mustCreateItem(t, items, l.ID, "Buy milk")
		if it.ID <= 0 {
			t.Fatalf("expected positive id, got %d", it.ID)
		}
		if it.Completed {
			t.Fatal("expected completed=false")
		}

		got, err := items.FindByListID(ctx, l.ID)
		if err != nil {
			t.Fatalf("FindByListID() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != it.ID || got[0].Description != "Buy milk" {
			t.Fatalf("unexpected items: %+v", got)
		}
	})

	t.Run("unknown list", func(t *testing.T) {
		before, _ := items.FindByListID(ctx, l.ID)
		err := items.Create(ctx, models.NewItem(l.ID+1000, "Orphan"))
		if !errors.Is(err, tododomain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
		after, _ := items.FindByListID(ctx, l.ID)
		if len(after) != len(before) {
			t.Fatalf("items changed after failed insert: %d -> %d", len(before), len(after))
		}
	})
}

func TestItemRepository_SetCompleted(t *testing.T) {
	lists, items := setupTestDB(t)
	ctx := context.Background()
	l := mustCreateList(t, lists, "Chores")
	a := mustCreateItem(t, items, l.ID, "Dishes")
	b := mustCreateItem(t, items, l.ID, "Laundry")

	updated, err := items.SetCompleted(ctx, a.ID, true)
	if err != nil {
		t.Fatalf("SetCompleted() error = %v", err)
	}
	if !updated.Completed || updated.ListID != l.ID {
		t.Fatalf("unexpected updated item: %+v", updated)
	}

	other, err := items.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if other.Completed {
		t.Fatal("expected untouched item to stay not completed")
	}

	if _, err := items.SetCompleted(ctx, b.ID+1000, true); !errors.Is(err, tododomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemRepository_DeleteIsIdempotent(t *testing.T) {
	lists, items := setupTestDB(t)
	ctx := context.Background()
	l := mustCreateList(t, lists, "Errands")
	it := mustCreateItem(t, items, l.ID, "Post office")

	deleted, err := items.Delete(ctx, it.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted == nil || deleted.ID != it.ID {
		t.Fatalf("expected deleted item %d, got %+v", it.ID, deleted)
	}

	again, err := items.Delete(ctx, it.ID)
	if err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if again != nil {
		t.Fatalf("expected nil item for missing id, got %+v", again)
	}
}

func TestListRepository_DeleteCascades(t *testing.T) {
	lists, items := setupTestDB(t)
	ctx := context.Background()
	doomed := mustCreateList(t, lists, "Doomed")
	kept := mustCreateList(t, lists, "Kept")

	var ids []int64
	for _, d := range []string{"one", "two", "three"} {
		ids = append(ids, mustCreateItem(t, items, doomed.ID, d).ID)
	}
	survivor := mustCreateItem(t, items, kept.ID, "survivor")

	n, err := lists.Delete(ctx, doomed.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 items removed, got %d", n)
	}

	for _, id := range ids {
		if _, err := items.GetByID(ctx, id); !errors.Is(err, tododomain.ErrItemNotFound) {
			t.Errorf("item %d: expected ErrItemNotFound, got %v", id, err)
		}
	}
	if _, err := items.GetByID(ctx, survivor.ID); err != nil {
		t.Errorf("item in other list must survive: %v", err)
	}

	all, err := lists.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 1 || all[0].ID != kept.ID {
		t.Fatalf("expected only the kept list, got %+v", all)
	}

	if _, err := lists.Delete(ctx, doomed.ID); !errors.Is(err, tododomain.ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound on second delete, got %v", err)
	}
}

func TestListRepository_CompleteAll(t *testing.T) {
	lists, items := setupTestDB(t)
	ctx := context.Background()
	target := mustCreateList(t, lists, "Target")
	other := mustCreateList(t, lists, "Other")
	mustCreateItem(t, items, target.ID, "a")
	mustCreateItem(t, items, target.ID, "b")
	untouched := mustCreateItem(t, items, other.ID, "c")

	n, err := lists.CompleteAll(ctx, target.ID)
	if err != nil {
		t.Fatalf("CompleteAll() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 items updated, got %d", n)
	}

	got, _ := items.FindByListID(ctx, target.ID)
	for _, it := range got {
		if !it.Completed {
			t.Errorf("item %d should be completed", it.ID)
		}
	}
	if it, _ := items.GetByID(ctx, untouched.ID); it.Completed {
		t.Error("item in another list must stay not completed")
	}

	if _, err := lists.CompleteAll(ctx, other.ID+1000); !errors.Is(err, tododomain.ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestFindByListID_OrderedByID(t *testing.T) {
	lists, items := setupTestDB(t)
	ctx := context.Background()
	a := mustCreateList(t, lists, "A")
	b := mustCreateList(t, lists, "B")

	// Interleave inserts across lists.
	for i := 0; i < 4; i++ {
		mustCreateItem(t, items, a.ID, "a")
		mustCreateItem(t, items, b.ID, "b")
	}

	for _, l := range []*models.List{a, b} {
		got, err := items.FindByListID(ctx, l.ID)
		if err != nil {
			t.Fatalf("FindByListID() error = %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("expected 4 items, got %d", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i-1].ID >= got[i].ID {
				t.Fatalf("items not in ascending id order: %d before %d", got[i-1].ID, got[i].ID)
			}
		}
	}
}

func TestListRepository_GetView(t *testing.T) {
	lists, items := setupTestDB(t)
	ctx := context.Background()
	home := mustCreateList(t, lists, "Home")
	work := mustCreateList(t, lists, "Work")
	mustCreateItem(t, items, work.ID, "Report")

	view, err := lists.GetView(ctx, work.ID)
	if err != nil {
		t.Fatalf("GetView() error = %v", err)
	}
	if len(view.Lists) != 2 || view.Lists[0].ID != home.ID || view.Lists[1].ID != work.ID {
		t.Fatalf("unexpected lists: %+v", view.Lists)
	}
	if view.Active.ID != work.ID {
		t.Fatalf("unexpected active list: %+v", view.Active)
	}
	if len(view.Items) != 1 || view.Items[0].Description != "Report" {
		t.Fatalf("unexpected items: %+v", view.Items)
	}

	if _, err := lists.GetView(ctx, work.ID+1000); !errors.Is(err, tododomain.ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}
