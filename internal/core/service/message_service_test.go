package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
	"github.com/expotrade/client-portal/internal/infrastructure/db/memory"
)

func newMessages(store *memory.Store) *MessageService {
	s := NewMessageService(store.Messages(), store.Orders(), zerolog.Nop())
	s.now = steppingClock()
	return s
}

func TestMessageService_SendListMarkRead(t *testing.T) {
	store := memory.NewStore()
	order := mustCreateOrder(t, newOrders(store), "alice")
	msgs := newMessages(store)

	general, err := msgs.Send(context.Background(), "alice", ports.SendMessageInput{Subject: "Hi", Content: "Question"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if general.MessageType != domain.MessageUser || general.IsRead || general.OrderID != nil {
		t.Fatalf("unexpected message: %+v", general)
	}

	about, err := msgs.Send(context.Background(), "alice", ports.SendMessageInput{OrderID: &order.ID, Subject: "ETA?", Content: "When?"})
	if err != nil {
		t.Fatalf("send with order: %v", err)
	}

	list, err := msgs.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != about.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	if err := msgs.MarkRead(context.Background(), "alice", general.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	unread, err := store.Messages().CountUnread(context.Background(), "alice")
	if err != nil || unread != 1 {
		t.Fatalf("expected 1 unread, got %d (%v)", unread, err)
	}
}

func TestMessageService_SendForeignOrder(t *testing.T) {
	store := memory.NewStore()
	order := mustCreateOrder(t, newOrders(store), "alice")

	_, err := newMessages(store).Send(context.Background(), "bob", ports.SendMessageInput{OrderID: &order.ID, Subject: "s", Content: "c"})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if n, _ := store.Messages().CountUnread(context.Background(), "bob"); n != 0 {
		t.Fatalf("message should not be stored")
	}
}

func TestMessageService_MarkReadForeign(t *testing.T) {
	store := memory.NewStore()
	msgs := newMessages(store)
	msg, err := msgs.Send(context.Background(), "alice", ports.SendMessageInput{Subject: "s", Content: "c"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := msgs.MarkRead(context.Background(), "bob", msg.ID); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
	if n, _ := store.Messages().CountUnread(context.Background(), "alice"); n != 1 {
		t.Fatalf("foreign mark-read must not change the message")
	}
}
