package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-telegram/bot/models"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	pipelineService "github.com/reshetovitsme/channel-mirror/internal/modules/pipeline/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	mu      sync.Mutex
	events  []*message.Event
	ctxErrs []error
	err     error
}

func (f *fakePipeline) Handle(ctx context.Context, ev *message.Event) (*pipelineService.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.err != nil {
		return nil, f.err
	}
	return &pipelineService.Result{BatchID: "b"}, nil
}

func channelMessage(id int) *models.Message {
	return &models.Message{ID: id, Chat: models.Chat{ID: -100123, Type: models.ChatTypeChannel}, Text: "post"}
}

func TestWorkerHandlesChannelTraffic(t *testing.T) {
	p := &fakePipeline{}
	w := NewWorker(p)
	ctx := context.Background()

	w.HandleUpdate(ctx, nil, &models.Update{ChannelPost: channelMessage(1)})
	w.HandleUpdate(ctx, nil, &models.Update{EditedChannelPost: channelMessage(1)})
	w.HandleUpdate(ctx, nil, &models.Update{Message: &models.Message{ID: 2, Chat: models.Chat{ID: -100999, Type: models.ChatTypeSupergroup}}})
	w.HandleUpdate(ctx, nil, &models.Update{Message: &models.Message{ID: 3, Chat: models.Chat{ID: 55, Type: models.ChatTypePrivate}}})

	require.Len(t, p.events, 3)
	assert.Equal(t, message.EventKindNew, p.events[0].Kind)
	assert.Equal(t, message.EventKindEdited, p.events[1].Kind)
	assert.Equal(t, int64(-100999), p.events[2].Origin.ChatID)
}

func TestWorkerIgnoresPollingCancellation(t *testing.T) {
	p := &fakePipeline{}
	w := NewWorker(p)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w.HandleUpdate(ctx, nil, &models.Update{ChannelPost: channelMessage(1)})

	require.Len(t, p.ctxErrs, 1)
	assert.NoError(t, p.ctxErrs[0])
}

func TestWorkerSurvivesPipelineErrors(t *testing.T) {
	p := &fakePipeline{err: errors.New("settings unreadable")}
	w := NewWorker(p)

	assert.NotPanics(t, func() {
		w.HandleUpdate(context.Background(), nil, &models.Update{ChannelPost: channelMessage(1)})
	})
	assert.Len(t, p.events, 1)
}

func TestMuxSendsPrivateChatsAwayFromWorker(t *testing.T) {
	p := &fakePipeline{}
	handler := Mux(nil, NewWorker(p))
	ctx := context.Background()

	handler(ctx, nil, &models.Update{Message: &models.Message{ID: 1, Chat: models.Chat{ID: 5, Type: models.ChatTypePrivate}, Text: "/start"}})
	handler(ctx, nil, &models.Update{ChannelPost: channelMessage(2)})

	require.Len(t, p.events, 1)
	assert.Equal(t, 2, p.events[0].MessageID)
}
