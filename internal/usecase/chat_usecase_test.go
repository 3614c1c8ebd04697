package usecase

import (
	"context"
	"testing"
	"time"

	"storefront-service/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestChat(t *testing.T) *ChatUseCase {
	t.Helper()

	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAvailable", mock.Anything).Return(catalogFixture(), nil)

	catalog := NewCatalogUseCase(mockRepo, logger.NewNop())
	catalog.Load(context.Background())

	return NewChatUseCase(catalog, 0)
}

func TestChatUseCase_Welcome(t *testing.T) {
	chat := newTestChat(t)

	reply := chat.Welcome()
	assert.Equal(t, ChatStateHome, reply.Next)
	assert.Len(t, reply.Options, 5)
}

func TestChatUseCase_TrackOrderFlow(t *testing.T) {
	chat := newTestChat(t)
	ctx := context.Background()

	reply, err := chat.Respond(ctx, ChatStateHome, "track_order", "")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateOrderTracking, reply.Next)
	assert.Contains(t, reply.Text, "order number")

	reply, err = chat.Respond(ctx, ChatStateOrderTracking, "", "it's #1024 I think")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateHome, reply.Next)
	assert.Contains(t, reply.Text, "in production")
}

func TestChatUseCase_OrderNumberWithoutHashAccepted(t *testing.T) {
	chat := newTestChat(t)

	reply, err := chat.Respond(context.Background(), ChatStateOrderTracking, "", "1024")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateHome, reply.Next)
}

func TestChatUseCase_OrderTrackingRejectsNonNumbers(t *testing.T) {
	chat := newTestChat(t)

	reply, err := chat.Respond(context.Background(), ChatStateOrderTracking, "", "I lost the email")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateOrderTracking, reply.Next)
	assert.Contains(t, reply.Text, "four digits")
}

func TestChatUseCase_OrderTrackingCancel(t *testing.T) {
	chat := newTestChat(t)

	reply, err := chat.Respond(context.Background(), ChatStateOrderTracking, "cancel_order", "")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateHome, reply.Next)
}

func TestChatUseCase_InventoryReadsCatalog(t *testing.T) {
	chat := newTestChat(t)
	ctx := context.Background()

	reply, err := chat.Respond(ctx, ChatStateHome, "check_stock", "")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateInventory, reply.Next)

	reply, err = chat.Respond(ctx, ChatStateInventory, "", "do you have round stones?")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateHome, reply.Next)
	assert.Contains(t, reply.Text, "Round: 2 in stock right now, from CHF 1200.")
}

func TestChatUseCase_InventoryQuickReplySelection(t *testing.T) {
	chat := newTestChat(t)
	ctx := context.Background()

	reply, err := chat.Respond(ctx, ChatStateHome, "check_stock", "")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateInventory, reply.Next)
	assert.Equal(t, "shape_Round", reply.Options[0].ID)

	// selecting an offered option by id, with no text, resolves to the lookup
	reply, err = chat.Respond(ctx, ChatStateInventory, "shape_Round", "")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateHome, reply.Next)
	assert.Contains(t, reply.Text, "Round: 2 in stock right now, from CHF 1200.")

	reply, err = chat.Respond(ctx, ChatStateInventory, "shape_Pear", "")
	assert.NoError(t, err)
	assert.Contains(t, reply.Text, "limited stock of Pear")
}

func TestChatUseCase_InventoryOutOfStockShape(t *testing.T) {
	chat := newTestChat(t)

	reply, err := chat.Respond(context.Background(), ChatStateInventory, "", "pear please")
	assert.NoError(t, err)
	assert.Contains(t, reply.Text, "limited stock of Pear")
}

func TestChatUseCase_InventoryUnknownShapeFallsBack(t *testing.T) {
	chat := newTestChat(t)

	reply, err := chat.Respond(context.Background(), ChatStateInventory, "", "something sparkly")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateInventory, reply.Next)
	assert.Contains(t, reply.Text, "did not recognise")
}

func TestChatUseCase_EducationTopics(t *testing.T) {
	chat := newTestChat(t)
	ctx := context.Background()

	reply, err := chat.Respond(ctx, ChatStateHome, "education", "")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateEducation, reply.Next)

	reply, err = chat.Respond(ctx, ChatStateEducation, "", "tell me about clarity")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateEducation, reply.Next)
	assert.Contains(t, reply.Text, "VS1")

	reply, err = chat.Respond(ctx, ChatStateEducation, "edu_cut", "")
	assert.NoError(t, err)
	assert.Contains(t, reply.Text, "brilliance")
}

func TestChatUseCase_MenuResetsFromAnyState(t *testing.T) {
	chat := newTestChat(t)
	ctx := context.Background()

	for _, state := range []ChatState{ChatStateHome, ChatStateOrderTracking, ChatStateInventory, ChatStateEducation} {
		reply, err := chat.Respond(ctx, state, "", "back to the menu please")
		assert.NoError(t, err)
		assert.Equal(t, ChatStateHome, reply.Next)
		assert.Contains(t, reply.Text, "Welcome")
	}
}

func TestChatUseCase_HomeKeywordIntents(t *testing.T) {
	chat := newTestChat(t)
	ctx := context.Background()

	reply, err := chat.Respond(ctx, ChatStateHome, "", "where is my order?")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateOrderTracking, reply.Next)

	reply, err = chat.Respond(ctx, ChatStateHome, "", "what about returns?")
	assert.NoError(t, err)
	assert.Contains(t, reply.Text, "30 days")

	reply, err = chat.Respond(ctx, ChatStateHome, "", "can I talk to a human")
	assert.NoError(t, err)
	assert.Contains(t, reply.Text, "specialist")
}

func TestChatUseCase_HomeFallback(t *testing.T) {
	chat := newTestChat(t)

	reply, err := chat.Respond(context.Background(), ChatStateHome, "", "asdfgh")
	assert.NoError(t, err)
	assert.Equal(t, ChatStateHome, reply.Next)
	assert.Len(t, reply.Options, 5)
}

func TestChatUseCase_CancelledContext(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAvailable", mock.Anything).Return(catalogFixture(), nil)
	catalog := NewCatalogUseCase(mockRepo, logger.NewNop())
	catalog.Load(context.Background())

	chat := NewChatUseCase(catalog, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := chat.Respond(ctx, ChatStateHome, "track_order", "")
	assert.ErrorIs(t, err, context.Canceled)
}
