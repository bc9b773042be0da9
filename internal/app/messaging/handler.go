// Package messaging routes control-surface messages to a page's focus controller.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/logging"
)

// Message types exchanged with control surfaces.
const (
	TypeToggleFocusMode = "toggleFocusMode"
	TypeGetFocusState   = "getFocusState"
	TypeUpdateSettings  = "updateSettings"
	TypeFocusModeState  = "focusModeState"
)

// Message is a tagged record sent by a control surface.
type Message struct {
	Type     string                `json:"type"`
	Settings *entity.FocusSettings `json:"settings,omitempty"`
}

// Ack acknowledges a command.
type Ack struct {
	Success bool `json:"success"`
}

// FocusStateReply answers getFocusState.
type FocusStateReply struct {
	IsActive bool `json:"isActive"`
}

// FocusStateNotification is pushed to control surfaces on every mode change.
type FocusStateNotification struct {
	Type     string `json:"type"`
	IsActive bool   `json:"isActive"`
}

// NewFocusStateNotification builds the outbound mode-changed notification.
func NewFocusStateNotification(active bool) FocusStateNotification {
	return FocusStateNotification{Type: TypeFocusModeState, IsActive: active}
}

// FocusController is the part of the focus use case driven by control surfaces.
type FocusController interface {
	Toggle(ctx context.Context, trigger entity.FocusTrigger) bool
	IsActive() bool
	ApplySettings(ctx context.Context, settings entity.FocusSettings)
}

// MessageHandler handles a decoded message and returns the reply.
type MessageHandler interface {
	Handle(ctx context.Context, msg Message) (any, error)
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, msg Message) (any, error)

// Handle calls f(ctx, msg).
func (f MessageHandlerFunc) Handle(ctx context.Context, msg Message) (any, error) {
	return f(ctx, msg)
}

// ErrMissingSettings is returned for an updateSettings message without settings.
var ErrMissingSettings = errors.New("updateSettings message without settings")

// Router dispatches control-surface messages to registered handlers.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]MessageHandler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]MessageHandler)}
}

// NewFocusRouter creates a router answering the three focus commands.
func NewFocusRouter(ctrl FocusController) *Router {
	r := NewRouter()
	r.mustRegister(TypeToggleFocusMode, MessageHandlerFunc(func(ctx context.Context, _ Message) (any, error) {
		ctrl.Toggle(ctx, entity.TriggerCommand)
		return Ack{Success: true}, nil
	}))
	r.mustRegister(TypeGetFocusState, MessageHandlerFunc(func(_ context.Context, _ Message) (any, error) {
		return FocusStateReply{IsActive: ctrl.IsActive()}, nil
	}))
	r.mustRegister(TypeUpdateSettings, MessageHandlerFunc(func(ctx context.Context, msg Message) (any, error) {
		if msg.Settings == nil {
			return nil, ErrMissingSettings
		}
		ctrl.ApplySettings(ctx, *msg.Settings)
		return Ack{Success: true}, nil
	}))
	return r
}

// RegisterHandler registers a handler for a message type.
func (r *Router) RegisterHandler(msgType string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handler
	return nil
}

func (r *Router) mustRegister(msgType string, handler MessageHandler) {
	if err := r.RegisterHandler(msgType, handler); err != nil {
		panic(err)
	}
}

// Dispatch runs the handler for msg. ok is false when no reply must be sent:
// unknown message types are ignored silently and failed handlers are logged.
func (r *Router) Dispatch(ctx context.Context, msg Message) (reply any, ok bool) {
	log := logging.FromContext(ctx)

	r.mu.RLock()
	handler, found := r.handlers[msg.Type]
	r.mu.RUnlock()

	if !found {
		log.Debug().Str("type", msg.Type).Msg("ignoring unknown message type")
		return nil, false
	}

	resp, err := handler.Handle(ctx, msg)
	if err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Msg("message handler returned error")
		return nil, false
	}

	log.Debug().Str("type", msg.Type).Msg("message handled")
	return resp, true
}

// HandleJSON decodes a raw message, dispatches it and encodes the reply.
func (r *Router) HandleJSON(ctx context.Context, payload []byte) ([]byte, bool) {
	msg, err := ParseMessage(payload)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to decode control message")
		return nil, false
	}

	resp, ok := r.Dispatch(ctx, msg)
	if !ok {
		return nil, false
	}

	data, err := json.Marshal(resp)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("type", msg.Type).Msg("failed to encode reply")
		return nil, false
	}
	return data, true
}

// ParseMessage decodes a control-surface message.
func ParseMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, fmt.Errorf("unmarshal control message: %w", err)
	}
	if msg.Type == "" {
		return Message{}, errors.New("control message missing type")
	}
	return msg, nil
}
