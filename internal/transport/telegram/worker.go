package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	pipelineService "github.com/reshetovitsme/channel-mirror/internal/modules/pipeline/service"
)

// Pipeline handles one inbound event
type Pipeline interface {
	Handle(ctx context.Context, ev *message.Event) (*pipelineService.Result, error)
}

// Worker feeds channel and group posts into the pipeline
type Worker struct {
	pipeline Pipeline
}

// NewWorker creates a new worker handler
func NewWorker(pipeline Pipeline) *Worker {
	return &Worker{pipeline: pipeline}
}

// HandleUpdate processes incoming updates
func (w *Worker) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if ev := w.eventFromUpdate(update); ev != nil {
		w.process(ctx, ev)
	}
}

func (w *Worker) eventFromUpdate(update *models.Update) *message.Event {
	switch {
	case update.ChannelPost != nil:
		return EventFromMessage(message.EventKindNew, update.ChannelPost)
	case update.EditedChannelPost != nil:
		return EventFromMessage(message.EventKindEdited, update.EditedChannelPost)
	case update.Message != nil && isGroup(update.Message):
		return EventFromMessage(message.EventKindNew, update.Message)
	case update.EditedMessage != nil && isGroup(update.EditedMessage):
		return EventFromMessage(message.EventKindEdited, update.EditedMessage)
	}
	return nil
}

func (w *Worker) process(ctx context.Context, ev *message.Event) {
	// a fan-out already under way finishes even when polling stops
	res, err := w.pipeline.Handle(context.WithoutCancel(ctx), ev)
	if err != nil {
		slog.Error("Error processing event", "error", err, "kind", ev.Kind, "source", ev.Key())
		return
	}
	if res.Skipped == "" {
		slog.Debug("Event processed", "batch_id", res.BatchID, "kind", ev.Kind, "source", ev.Key(), "targets", len(res.Targets))
	}
}

func isGroup(msg *models.Message) bool {
	return msg.Chat.Type == models.ChatTypeGroup || msg.Chat.Type == models.ChatTypeSupergroup
}

// isChatTraffic reports whether an update belongs to the worker rather than the control surface
func isChatTraffic(update *models.Update) bool {
	switch {
	case update.ChannelPost != nil, update.EditedChannelPost != nil:
		return true
	case update.Message != nil:
		return isGroup(update.Message)
	case update.EditedMessage != nil:
		return isGroup(update.EditedMessage)
	}
	return false
}

// Mux serves a bot shared by the control surface and the worker. Either may be nil.
func Mux(control *Handler, worker *Worker) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if isChatTraffic(update) {
			if worker != nil {
				worker.HandleUpdate(ctx, b, update)
			}
			return
		}
		if control != nil {
			control.HandleUpdate(ctx, b, update)
		}
	}
}

// Register attaches the control surface and/or the worker to b
func Register(b *bot.Bot, control *Handler, worker *Worker) {
	b.RegisterHandlerMatchFunc(func(*models.Update) bool { return true }, Mux(control, worker))
}
