package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/weeklyping/reminder-bot/internal/domain"
	"github.com/weeklyping/reminder-bot/internal/domain/entity"
)

// DingTalk posts to a group robot webhook. When a signing secret is
// configured the request is signed the way the robot API expects:
// sign = urlencode(base64(hmac-sha256(secret, "{timestampMillis}\n{secret}"))).
type DingTalk struct {
	log    *logrus.Logger
	client *http.Client
	nowMs  func() int64
}

func NewDingTalk(log *logrus.Logger, client *http.Client) *DingTalk {
	return &DingTalk{
		log:    log,
		client: client,
		nowMs:  func() int64 { return time.Now().UnixMilli() },
	}
}

func (d *DingTalk) Kind() string {
	return domain.ChannelDingTalk
}

type dingTalkButton struct {
	Title     string `json:"title"`
	ActionURL string `json:"actionURL"`
}

type dingTalkActionCard struct {
	Title          string           `json:"title"`
	Text           string           `json:"text"`
	BtnOrientation string           `json:"btnOrientation"`
	Buttons        []dingTalkButton `json:"btns"`
}

type dingTalkMarkdown struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type dingTalkPayload struct {
	MsgType    string              `json:"msgtype"`
	Markdown   *dingTalkMarkdown   `json:"markdown,omitempty"`
	ActionCard *dingTalkActionCard `json:"actionCard,omitempty"`
}

type dingTalkResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

func (d *DingTalk) Send(ctx context.Context, cfg *entity.ChannelConfig, msg *entity.Message) *entity.DispatchResult {
	if cfg.Webhook == "" {
		return entity.Failf("dingtalk webhook is not configured")
	}

	payload := d.payload(msg)
	body, err := json.Marshal(payload)
	if err != nil {
		return entity.Fail(fmt.Errorf("failed to marshal dingtalk payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.requestURL(cfg), bytes.NewReader(body))
	if err != nil {
		return entity.Fail(fmt.Errorf("failed to build dingtalk request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return entity.Fail(fmt.Errorf("dingtalk request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entity.Failf("dingtalk returned status %d", resp.StatusCode)
	}

	var out dingTalkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return entity.Fail(fmt.Errorf("failed to decode dingtalk response: %w", err))
	}
	if out.ErrCode != 0 {
		return entity.Failf("dingtalk error %d: %s", out.ErrCode, out.ErrMsg)
	}

	d.log.WithField("msgtype", payload.MsgType).Debug("dingtalk message delivered")
	return entity.Succeed()
}

// payload selects the message kind: an action card when the message has
// buttons, plain markdown otherwise.
func (d *DingTalk) payload(msg *entity.Message) dingTalkPayload {
	if len(msg.Actions) == 0 {
		return dingTalkPayload{
			MsgType: "markdown",
			Markdown: &dingTalkMarkdown{
				Title: msg.Title,
				Text:  fmt.Sprintf("### %s\n\n%s", msg.Title, msg.Body),
			},
		}
	}

	card := &dingTalkActionCard{
		Title:          msg.Title,
		Text:           fmt.Sprintf("### %s\n\n%s", msg.Title, msg.Body),
		BtnOrientation: "0",
	}
	for _, a := range msg.Actions {
		card.Buttons = append(card.Buttons, dingTalkButton{Title: a.Title, ActionURL: a.URL})
	}
	return dingTalkPayload{MsgType: "actionCard", ActionCard: card}
}

func (d *DingTalk) requestURL(cfg *entity.ChannelConfig) string {
	if cfg.Secret == "" {
		return cfg.Webhook
	}

	ts := d.nowMs()
	sep := "?"
	if strings.Contains(cfg.Webhook, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%stimestamp=%d&sign=%s", cfg.Webhook, sep, ts, signRequest(cfg.Secret, ts))
}

func signRequest(secret string, timestampMs int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d\n%s", timestampMs, secret)
	return url.QueryEscape(base64.StdEncoding.EncodeToString(mac.Sum(nil)))
}
