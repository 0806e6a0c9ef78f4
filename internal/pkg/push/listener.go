package push

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/consts"
	"Agrilink/internal/pkg/logger"
	"Agrilink/internal/pkg/metrics"
	"context"
	"errors"
	log "log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	EventNotification = "notification"

	maxFrameSize = 512 * 1024
	retryDelay   = 5 * time.Second
)

// NotificationSink receives notifications delivered over the push channel.
type NotificationSink interface {
	AddNotification(n model.Notification)
}

// Listener 推送通道客户端
type Listener struct {
	url    string
	sink   NotificationSink
	token  func() string
	dialer *websocket.Dialer
	retry  time.Duration
}

// NewListener token is read on every (re)connect; it may return "".
func NewListener(url string, sink NotificationSink, token func() string) *Listener {
	return &Listener{
		url:    url,
		sink:   sink,
		token:  token,
		dialer: websocket.DefaultDialer,
		retry:  retryDelay,
	}
}

// Run 阻塞直到 ctx 结束, reconnecting after a dropped connection.
func (s *Listener) Run(ctx context.Context) error {
	for {
		err := s.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		log.WarnContext(ctx, "推送通道断开，稍后重连", "url", s.url, "err", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.retry):
		}
	}
}

func (s *Listener) listen(ctx context.Context) error {
	header := http.Header{}
	if token := s.token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := s.dialer.DialContext(ctx, s.url, header)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	conn.SetReadLimit(maxFrameSize)
	log.InfoContext(ctx, "推送通道已连接", "url", s.url)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return errors.New("closed by server")
			}
			return err
		}
		s.handle(ctx, data)
	}
}

func (s *Listener) handle(ctx context.Context, data []byte) {
	ctx = logger.WithTraceID(ctx, consts.TracePrefixPush)

	var frame dto.PushFrameDTO
	if err := json.Unmarshal(data, &frame); err != nil {
		log.WarnContext(ctx, "推送帧解析失败", "err", err)
		return
	}
	metrics.RecordPushFrame(frame.Event)

	if frame.Event != EventNotification {
		log.DebugContext(ctx, "忽略推送事件", "event", frame.Event)
		return
	}
	s.sink.AddNotification(frame.Data.ToModel())
}
