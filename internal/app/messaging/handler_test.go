package messaging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/focusmode/internal/app/messaging"
	"github.com/bnema/focusmode/internal/app/messaging/mocks"
	"github.com/bnema/focusmode/internal/domain/entity"
)

func TestRouter_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	focus := mocks.NewMockFocusController(ctrl)
	focus.EXPECT().Toggle(gomock.Any(), entity.TriggerCommand).Return(true)

	reply, ok := messaging.NewFocusRouter(focus).HandleJSON(context.Background(), []byte(`{"type":"toggleFocusMode"}`))

	require.True(t, ok)
	assert.JSONEq(t, `{"success":true}`, string(reply))
}

func TestRouter_GetFocusStateHasNoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	focus := mocks.NewMockFocusController(ctrl)
	// Only IsActive may be called; gomock fails on Toggle or ApplySettings.
	focus.EXPECT().IsActive().Return(true)
	focus.EXPECT().IsActive().Return(false)

	router := messaging.NewFocusRouter(focus)

	reply, ok := router.HandleJSON(context.Background(), []byte(`{"type":"getFocusState"}`))
	require.True(t, ok)
	assert.JSONEq(t, `{"isActive":true}`, string(reply))

	reply, ok = router.HandleJSON(context.Background(), []byte(`{"type":"getFocusState"}`))
	require.True(t, ok)
	assert.JSONEq(t, `{"isActive":false}`, string(reply))
}

func TestRouter_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	focus := mocks.NewMockFocusController(ctrl)
	focus.EXPECT().ApplySettings(gomock.Any(), entity.FocusSettings{AutoActivate: true, BlockScroll: false})

	reply, ok := messaging.NewFocusRouter(focus).HandleJSON(context.Background(),
		[]byte(`{"type":"updateSettings","settings":{"autoActivate":true,"blockScroll":false}}`))

	require.True(t, ok)
	assert.JSONEq(t, `{"success":true}`, string(reply))
}

func TestRouter_UpdateSettingsWithoutSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	focus := mocks.NewMockFocusController(ctrl)

	reply, ok := messaging.NewFocusRouter(focus).HandleJSON(context.Background(), []byte(`{"type":"updateSettings"}`))

	assert.False(t, ok)
	assert.Nil(t, reply)
}

func TestRouter_UnknownAndMalformedAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := messaging.NewFocusRouter(mocks.NewMockFocusController(ctrl))

	for _, payload := range []string{
		`{"type":"reloadPage"}`,
		`{"settings":{}}`,
		`not json`,
	} {
		reply, ok := router.HandleJSON(context.Background(), []byte(payload))
		assert.False(t, ok, payload)
		assert.Nil(t, reply, payload)
	}
}

func TestRouter_RegisterHandlerValidation(t *testing.T) {
	r := messaging.NewRouter()

	assert.Error(t, r.RegisterHandler("", messaging.MessageHandlerFunc(func(context.Context, messaging.Message) (any, error) {
		return nil, nil
	})))
	assert.Error(t, r.RegisterHandler("x", nil))
}

func TestNewFocusStateNotification(t *testing.T) {
	n := messaging.NewFocusStateNotification(true)
	assert.Equal(t, messaging.FocusStateNotification{Type: "focusModeState", IsActive: true}, n)
}
