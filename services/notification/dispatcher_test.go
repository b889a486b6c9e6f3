package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"campushire/models"

	"go.uber.org/zap"
)

// fakeChannel records pushed notifications and can be flipped to fail.
type fakeChannel struct {
	mu       sync.Mutex
	received []*models.Notification
	failAt   int // fail the nth push (1-based); 0 = never fail
	pushes   int
}

func (c *fakeChannel) Push(n *models.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pushes++
	if c.failAt > 0 && c.pushes >= c.failAt {
		return errors.New("connection closed")
	}
	c.received = append(c.received, n)
	return nil
}

func (c *fakeChannel) titles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.received))
	for _, n := range c.received {
		out = append(out, n.Title)
	}
	return out
}

type recordingHook struct {
	mu      sync.Mutex
	records []*models.Notification
	err     error
}

func (h *recordingHook) Persist(ctx context.Context, n *models.Notification) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, n)
	return h.err
}

func newDispatcher(limit int) *DefaultDispatcher {
	return NewDefaultDispatcher(NewRegistry(), nil, zap.NewNop(), limit)
}

func input(title string) models.NotificationInput {
	return models.NotificationInput{
		Type:     "job_match",
		Title:    title,
		Body:     "92% match",
		Priority: "high",
	}
}

func TestDispatcher_DeliversToLiveChannel(t *testing.T) {
	d := newDispatcher(0)
	ch := &fakeChannel{}
	d.Register("u42", ch)

	d.Send(context.Background(), "u42", input("New match"))

	if got := len(ch.received); got != 1 {
		t.Fatalf("expected 1 delivered notification, got %d", got)
	}
	rec := ch.received[0]
	if rec.ID == "" {
		t.Fatal("expected a generated id")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}
	if rec.Type != models.NotificationTypeJobMatch {
		t.Fatalf("expected type job_match, got %s", rec.Type)
	}
	if d.PendingCount("u42") != 0 {
		t.Fatal("expected nothing queued after live delivery")
	}
}

func TestDispatcher_QueueThenFlushInOrder(t *testing.T) {
	d := newDispatcher(0)
	ctx := context.Background()

	// Subscriber "u42" has no channel; three sends must queue.
	d.Send(ctx, "u42", input("first"))
	d.Send(ctx, "u42", input("second"))
	d.Send(ctx, "u42", input("third"))

	if got := d.PendingCount("u42"); got != 3 {
		t.Fatalf("expected 3 queued, got %d", got)
	}

	ch := &fakeChannel{}
	d.Register("u42", ch)

	titles := ch.titles()
	if len(titles) != 3 {
		t.Fatalf("expected 3 flushed notifications, got %d", len(titles))
	}
	for i, want := range []string{"first", "second", "third"} {
		if titles[i] != want {
			t.Fatalf("flush out of order: position %d = %q, want %q", i, titles[i], want)
		}
	}
	if d.PendingCount("u42") != 0 {
		t.Fatal("expected queue cleared after flush")
	}
}

func TestDispatcher_FlushWithoutChannelIsNoop(t *testing.T) {
	d := newDispatcher(0)
	d.Send(context.Background(), "u42", input("queued"))

	d.FlushPending("u42")

	if got := d.PendingCount("u42"); got != 1 {
		t.Fatalf("expected record retained without a live channel, got %d queued", got)
	}
}

func TestDispatcher_RepeatedFlushIsNoop(t *testing.T) {
	d := newDispatcher(0)
	ch := &fakeChannel{}
	d.Send(context.Background(), "u42", input("only"))
	d.Register("u42", ch)

	d.FlushPending("u42")
	d.FlushPending("u42")

	if got := len(ch.received); got != 1 {
		t.Fatalf("expected exactly 1 delivery, got %d", got)
	}
}

func TestDispatcher_LastWriterWinsDelivery(t *testing.T) {
	d := newDispatcher(0)
	chA := &fakeChannel{}
	chB := &fakeChannel{}

	d.Register("u42", chA)
	d.Register("u42", chB)

	d.Send(context.Background(), "u42", input("after replace"))

	if len(chA.received) != 0 {
		t.Fatal("delivery must never reach the replaced channel")
	}
	if len(chB.received) != 1 {
		t.Fatal("expected delivery on the current channel")
	}
}

func TestDispatcher_SendBulkIndependent(t *testing.T) {
	d := newDispatcher(0)
	ch2 := &fakeChannel{}
	d.Register("s2", ch2)

	// s1 has no channel; that must not prevent delivery to s2.
	d.SendBulk(context.Background(), []string{"s1", "s2"}, input("bulk"))

	if d.PendingCount("s1") != 1 {
		t.Fatal("expected bulk send to queue for the offline subscriber")
	}
	if len(ch2.received) != 1 {
		t.Fatal("expected bulk send to deliver to the online subscriber")
	}
}

func TestDispatcher_PushErrorFallsBackToQueue(t *testing.T) {
	d := newDispatcher(0)
	ch := &fakeChannel{failAt: 1}
	d.Register("u42", ch)

	d.Send(context.Background(), "u42", input("doomed"))

	if got := d.PendingCount("u42"); got != 1 {
		t.Fatalf("expected failed push to be queued, got %d", got)
	}
	// The dead channel must have been dropped from the registry.
	if _, ok := d.registry.Lookup("u42"); ok {
		t.Fatal("expected dead channel to be unregistered")
	}
}

func TestDispatcher_MidFlushFailureRetainsTail(t *testing.T) {
	d := newDispatcher(0)
	ctx := context.Background()

	d.Send(ctx, "u42", input("one"))
	d.Send(ctx, "u42", input("two"))
	d.Send(ctx, "u42", input("three"))

	// Second push fails: "one" delivered, "two" and "three" retained.
	ch := &fakeChannel{failAt: 2}
	d.Register("u42", ch)

	if got := len(ch.received); got != 1 {
		t.Fatalf("expected 1 delivered before failure, got %d", got)
	}
	if got := d.PendingCount("u42"); got != 2 {
		t.Fatalf("expected 2 retained, got %d", got)
	}

	// Reconnect delivers the tail in order.
	ch2 := &fakeChannel{}
	d.Register("u42", ch2)
	titles := ch2.titles()
	if len(titles) != 2 || titles[0] != "two" || titles[1] != "three" {
		t.Fatalf("expected [two three] on reconnect, got %v", titles)
	}
}

func TestDispatcher_UnregisteredSubscriberQueues(t *testing.T) {
	d := newDispatcher(0)
	ch := &fakeChannel{}
	d.Register("u42", ch)
	d.Release("u42", ch)

	d.Send(context.Background(), "u42", input("after release"))

	if len(ch.received) != 0 {
		t.Fatal("expected no delivery after release")
	}
	if d.PendingCount("u42") != 1 {
		t.Fatal("expected send after release to queue, not drop")
	}
}

func TestDispatcher_PendingLimitEvictsOldest(t *testing.T) {
	d := newDispatcher(2)
	ctx := context.Background()

	d.Send(ctx, "u42", input("a"))
	d.Send(ctx, "u42", input("b"))
	d.Send(ctx, "u42", input("c"))

	if got := d.PendingCount("u42"); got != 2 {
		t.Fatalf("expected queue capped at 2, got %d", got)
	}

	ch := &fakeChannel{}
	d.Register("u42", ch)
	titles := ch.titles()
	if len(titles) != 2 || titles[0] != "b" || titles[1] != "c" {
		t.Fatalf("expected oldest-first eviction, got %v", titles)
	}
}

func TestDispatcher_PersistHookFailureDoesNotBlockDelivery(t *testing.T) {
	hook := &recordingHook{err: errors.New("datastore down")}
	d := NewDefaultDispatcher(NewRegistry(), hook, zap.NewNop(), 0)
	ch := &fakeChannel{}
	d.Register("u42", ch)

	d.Send(context.Background(), "u42", input("still delivered"))

	if len(ch.received) != 1 {
		t.Fatal("expected delivery despite persistence failure")
	}
	if len(hook.records) != 1 {
		t.Fatal("expected the hook to have been invoked")
	}
}

func TestDispatcher_EmptySubscriberIDDropped(t *testing.T) {
	d := newDispatcher(0)
	d.Send(context.Background(), "", input("nowhere"))

	if d.PendingCount("") != 0 {
		t.Fatal("expected notification without subscriber id to be dropped")
	}
}

func TestDispatcher_ExampleScenario(t *testing.T) {
	// Producer sends three notifications to an offline subscriber, which all
	// arrive in order once it connects.
	d := newDispatcher(0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d.Send(ctx, "u42", models.NotificationInput{
			Type:     "job_match",
			Title:    "New match",
			Body:     "92% match",
			Priority: "high",
		})
	}

	ch := &fakeChannel{}
	d.Register("u42", ch)

	if got := len(ch.received); got != 3 {
		t.Fatalf("expected exactly 3 messages, got %d", got)
	}
	if d.PendingCount("u42") != 0 {
		t.Fatal("expected empty queue after flush")
	}
}
