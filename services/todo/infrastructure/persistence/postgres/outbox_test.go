package postgres

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/todolists/pkg/config"
	"github.com/ghuser/todolists/pkg/database"
	"github.com/ghuser/todolists/pkg/events"
	"github.com/ghuser/todolists/pkg/logger"
	domainevents "github.com/ghuser/todolists/services/todo/domain/events"
	"github.com/ghuser/todolists/services/todo/domain/models"
)

// setupOutbox wires repositories to a real EventBus on TEST_DATABASE_URL.
// Subscribing creates the topic tables; the messages themselves are ignored.
func setupOutbox(t *testing.T, topics ...string) (*ListRepository, *ItemRepository, *database.Database) {
	t.Helper()
	setupTestDB(t)

	url := os.Getenv("TEST_DATABASE_URL")
	log := logger.NewWithWriter(io.Discard, "error")
	ctx, cancel := context.WithCancel(context.Background())

	d, err := database.NewPool(ctx, url, log)
	if err != nil {
		cancel()
		t.Skipf("Skipping test: database not available: %v", err)
	}
	bus, err := events.NewEventBus(&config.Config{DatabaseURL: url, ServiceName: "outbox-test"}, log)
	if err != nil {
		cancel()
		_ = d.Close()
		t.Fatalf("new event bus: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		_ = bus.Close()
		_ = d.Close()
	})

	for _, topic := range topics {
		errCh, err := bus.Subscribe(ctx, topic, func(context.Context, *message.Message) error { return nil })
		if err != nil {
			t.Fatalf("subscribe %s: %v", topic, err)
		}
		go func() {
			for range errCh {
			}
		}()
	}

	return NewListRepository(d, bus), NewItemRepository(d, bus), d
}

func topicTable(topic string) string {
	return fmt.Sprintf(`"watermill_%s"`, topic)
}

// countOutbox returns how many messages on topic carry listID.
func countOutbox(t *testing.T, d *database.Database, topic string, listID int64) int {
	t.Helper()
	var n int
	q := `SELECT count(*) FROM ` + topicTable(topic) + ` WHERE payload->>'list_id' = $1`
	if err := d.DB().QueryRowContext(context.Background(), q, fmt.Sprint(listID)).Scan(&n); err != nil {
		t.Fatalf("count outbox %s: %v", topic, err)
	}
	return n
}

func TestOutbox_PublishesWithCommit(t *testing.T) {
	lists, items, d := setupOutbox(t, domainevents.TopicListCreated, domainevents.TopicItemCreated)
	ctx := context.Background()

	l := models.NewList("Groceries")
	if err := lists.Create(ctx, l); err != nil {
		t.Fatalf("create list: %v", err)
	}
	before := countOutbox(t, d, domainevents.TopicItemCreated, l.ID)

	it := models.NewItem(l.ID, "Buy milk")
	if err := items.Create(ctx, it); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if got := countOutbox(t, d, domainevents.TopicItemCreated, l.ID); got != before+1 {
		t.Fatalf("expected one new outbox row, got %d -> %d", before, got)
	}

	var eventID, version string
	q := `SELECT metadata->>'event_id', metadata->>'event_version' FROM ` + topicTable(domainevents.TopicItemCreated) +
		` WHERE payload->>'item_id' = $1 ORDER BY "offset" DESC LIMIT 1`
	if err := d.DB().QueryRowContext(ctx, q, fmt.Sprint(it.ID)).Scan(&eventID, &version); err != nil {
		t.Fatalf("read outbox metadata: %v", err)
	}
	if eventID == "" || version != fmt.Sprint(domainevents.CurrentVersion) {
		t.Fatalf("unexpected metadata event_id=%q event_version=%q", eventID, version)
	}
}

func TestOutbox_RolledBackWriteLeavesNoEvent(t *testing.T) {
	_, items, d := setupOutbox(t, domainevents.TopicItemCreated)
	ctx := context.Background()
	missing := int64(424242)

	before := countOutbox(t, d, domainevents.TopicItemCreated, missing)
	if err := items.Create(ctx, models.NewItem(missing, "Orphan")); err == nil {
		t.Fatal("expected insert into unknown list to fail")
	}
	if got := countOutbox(t, d, domainevents.TopicItemCreated, missing); got != before {
		t.Fatalf("outbox changed after rollback: %d -> %d", before, got)
	}
}

func TestOutbox_PublishFailureRollsBackWrite(t *testing.T) {
	lists, items := setupTestDB(t)
	busLists, _, d := setupOutbox(t)
	ctx := context.Background()

	l := mustCreateList(t, lists, "Target")
	mustCreateItem(t, items, l.ID, "a")
	mustCreateItem(t, items, l.ID, "b")

	// Without its topic table the tx publisher cannot write the event.
	if _, err := d.DB().ExecContext(ctx, `DROP TABLE IF EXISTS `+topicTable(domainevents.TopicListCompleted)); err != nil {
		t.Fatalf("drop topic table: %v", err)
	}

	if _, err := busLists.CompleteAll(ctx, l.ID); err == nil {
		t.Fatal("expected CompleteAll to fail when the event cannot be written")
	}

	got, err := items.FindByListID(ctx, l.ID)
	if err != nil {
		t.Fatalf("FindByListID() error = %v", err)
	}
	for _, it := range got {
		if it.Completed {
			t.Fatalf("item %d completed despite failed publish", it.ID)
		}
	}
}
