package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testMessage() *entity.Message {
	return &entity.Message{
		Title: "Good morning, Ana!",
		Body:  "2 of 5 workdays logged this week.",
		Actions: []entity.MessageAction{
			{Title: "Open daily entry", URL: "https://weeklyping.example.com/daily"},
		},
	}
}

func TestDingTalk_Send_Signed(t *testing.T) {
	const secret = "SEC000"
	const fixedTs = int64(1738050300000)

	var gotQuery url.Values
	var gotPayload dingTalkPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"errcode": 0, "errmsg": "ok"}`))
	}))
	defer server.Close()

	d := NewDingTalk(newTestLogger(), server.Client())
	d.nowMs = func() int64 { return fixedTs }

	cfg := &entity.ChannelConfig{Enabled: true, Webhook: server.URL, Secret: secret}
	result := d.Send(context.Background(), cfg, testMessage())

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.NoError(t, result.Err)

	assert.Equal(t, "1738050300000", gotQuery.Get("timestamp"))
	wantSign, err := url.QueryUnescape(signRequest(secret, fixedTs))
	require.NoError(t, err)
	assert.Equal(t, wantSign, gotQuery.Get("sign"))

	assert.Equal(t, "actionCard", gotPayload.MsgType)
	require.NotNil(t, gotPayload.ActionCard)
	require.Len(t, gotPayload.ActionCard.Buttons, 1)
	assert.Equal(t, "Open daily entry", gotPayload.ActionCard.Buttons[0].Title)
}

func TestDingTalk_Send_UnsignedWithoutSecret(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"errcode": 0}`))
	}))
	defer server.Close()

	d := NewDingTalk(newTestLogger(), server.Client())
	cfg := &entity.ChannelConfig{Enabled: true, Webhook: server.URL}

	result := d.Send(context.Background(), cfg, testMessage())

	assert.True(t, result.Success)
	assert.Empty(t, gotQuery.Get("timestamp"))
	assert.Empty(t, gotQuery.Get("sign"))
}

func TestDingTalk_Send_MarkdownWithoutActions(t *testing.T) {
	var gotPayload dingTalkPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"errcode": 0}`))
	}))
	defer server.Close()

	d := NewDingTalk(newTestLogger(), server.Client())
	cfg := &entity.ChannelConfig{Enabled: true, Webhook: server.URL}

	msg := testMessage()
	msg.Actions = nil
	result := d.Send(context.Background(), cfg, msg)

	assert.True(t, result.Success)
	assert.Equal(t, "markdown", gotPayload.MsgType)
	require.NotNil(t, gotPayload.Markdown)
	assert.Contains(t, gotPayload.Markdown.Text, msg.Body)
}

func TestDingTalk_Send_RemoteLogicalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errcode": 310000, "errmsg": "keywords not in content"}`))
	}))
	defer server.Close()

	d := NewDingTalk(newTestLogger(), server.Client())
	cfg := &entity.ChannelConfig{Enabled: true, Webhook: server.URL}

	result := d.Send(context.Background(), cfg, testMessage())

	assert.False(t, result.Success)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "310000")
	assert.Contains(t, result.Err.Error(), "keywords not in content")
}

func TestDingTalk_Send_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	d := NewDingTalk(newTestLogger(), server.Client())
	cfg := &entity.ChannelConfig{Enabled: true, Webhook: server.URL}

	result := d.Send(context.Background(), cfg, testMessage())

	assert.False(t, result.Success)
	require.Error(t, result.Err)
}

func TestDingTalk_Send_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"errcode": 0}`))
	}))
	defer server.Close()

	d := NewDingTalk(newTestLogger(), server.Client())
	cfg := &entity.ChannelConfig{Enabled: true, Webhook: server.URL}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result := d.Send(ctx, cfg, testMessage())

	assert.False(t, result.Success)
	require.Error(t, result.Err)
}

func TestDingTalk_Send_MissingWebhook(t *testing.T) {
	d := NewDingTalk(newTestLogger(), http.DefaultClient)

	result := d.Send(context.Background(), &entity.ChannelConfig{Enabled: true}, testMessage())

	assert.False(t, result.Success)
	require.Error(t, result.Err)
}
