package telegram

import (
	"context"
	"errors"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type apiCall struct {
	method string
	chatID any
	text   string
	fileID string
	msgID  int
}

type fakeAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	nextID int
	chats  map[any]int64
	fail   error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 100, chats: map[any]int64{}}
}

func (f *fakeAPI) record(c apiCall) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	f.calls = append(f.calls, c)
	f.nextID++
	return &models.Message{ID: f.nextID}, nil
}

func fileData(file models.InputFile) string {
	if s, ok := file.(*models.InputFileString); ok {
		return s.Data
	}
	return ""
}

func (f *fakeAPI) SendMessage(_ context.Context, p *bot.SendMessageParams) (*models.Message, error) {
	return f.record(apiCall{method: "sendMessage", chatID: p.ChatID, text: p.Text})
}

func (f *fakeAPI) SendPhoto(_ context.Context, p *bot.SendPhotoParams) (*models.Message, error) {
	return f.record(apiCall{method: "sendPhoto", chatID: p.ChatID, text: p.Caption, fileID: fileData(p.Photo)})
}

func (f *fakeAPI) SendVideo(_ context.Context, p *bot.SendVideoParams) (*models.Message, error) {
	return f.record(apiCall{method: "sendVideo", chatID: p.ChatID, text: p.Caption, fileID: fileData(p.Video)})
}

func (f *fakeAPI) SendDocument(_ context.Context, p *bot.SendDocumentParams) (*models.Message, error) {
	return f.record(apiCall{method: "sendDocument", chatID: p.ChatID, text: p.Caption, fileID: fileData(p.Document)})
}

func (f *fakeAPI) SendSticker(_ context.Context, p *bot.SendStickerParams) (*models.Message, error) {
	return f.record(apiCall{method: "sendSticker", chatID: p.ChatID, fileID: fileData(p.Sticker)})
}

func (f *fakeAPI) EditMessageText(_ context.Context, p *bot.EditMessageTextParams) (*models.Message, error) {
	return f.record(apiCall{method: "editMessageText", chatID: p.ChatID, text: p.Text, msgID: p.MessageID})
}

func (f *fakeAPI) EditMessageCaption(_ context.Context, p *bot.EditMessageCaptionParams) (*models.Message, error) {
	return f.record(apiCall{method: "editMessageCaption", chatID: p.ChatID, text: p.Caption, msgID: p.MessageID})
}

func (f *fakeAPI) DeleteMessage(_ context.Context, p *bot.DeleteMessageParams) (bool, error) {
	_, err := f.record(apiCall{method: "deleteMessage", chatID: p.ChatID, msgID: p.MessageID})
	return err == nil, err
}

func (f *fakeAPI) GetChat(_ context.Context, p *bot.GetChatParams) (*models.ChatFullInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.chats[p.ChatID]
	if !ok {
		return nil, errors.New("Bad Request: chat not found")
	}
	return &models.ChatFullInfo{ID: id}, nil
}

func (f *fakeAPI) recorded() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}
