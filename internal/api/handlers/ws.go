package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/middleware"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/config"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/logger"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/realtime"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 50 * time.Second
)

// StreamHandler serves the websocket endpoint that pushes refreshed group
// data to connected clients whenever a relay event lands.
type StreamHandler struct {
	subscriber     realtime.Subscriber
	groupService   service.GroupServiceInterface
	messageService service.MessageServiceInterface
	unreadService  service.UnreadServiceInterface
	teamService    service.TeamServiceInterface
	cfg            *config.Config
	upgrader       websocket.Upgrader
}

// NewStreamHandler creates a new websocket stream handler
func NewStreamHandler(
	subscriber realtime.Subscriber,
	groupService service.GroupServiceInterface,
	messageService service.MessageServiceInterface,
	unreadService service.UnreadServiceInterface,
	teamService service.TeamServiceInterface,
	cfg *config.Config,
) *StreamHandler {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	return &StreamHandler{
		subscriber:     subscriber,
		groupService:   groupService,
		messageService: messageService,
		unreadService:  unreadService,
		teamService:    teamService,
		cfg:            cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

// streamCommand is the control message a client sends over the socket.
// "open" marks a group as the one on screen, "close" clears it.
type streamCommand struct {
	Action  string `json:"action"`
	GroupID string `json:"group_id"`
}

// streamFrame is a single push to the client
type streamFrame struct {
	Type     string      `json:"type"`
	GroupID  string      `json:"group_id,omitempty"`
	TeamID   string      `json:"team_id,omitempty"`
	Messages interface{} `json:"messages,omitempty"`
	Unread   interface{} `json:"unread,omitempty"`
	Team     interface{} `json:"team,omitempty"`
}

// Stream upgrades the connection and relays group changes to the client
// @Summary Realtime group stream
// @Description Upgrade to a websocket. The server pushes refreshed messages, unread counts and team slots whenever another client changes them. Send {"action":"open","group_id":"..."} to mark a group open; its incoming messages are then marked read automatically.
// @Tags realtime
// @Param token query string true "Bearer token"
// @Success 101 "Switching protocols"
// @Failure 401 {object} ErrorResponse "Invalid token"
// @Router /ws [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	userID, err := middleware.ParseUserToken(c.Query("token"), h.cfg.JWTSecret)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response
		return
	}

	session := &streamSession{
		handler: h,
		conn:    conn,
		userID:  userID,
		log:     logger.New().WithField("user", userID.String()).WithField("endpoint", "ws"),
	}
	session.run()
}

// streamSession is one connected client. The feed hooks run on the relay's
// dispatch goroutine, the read loop on its own; writeJSON serializes all
// socket writes behind a mutex as gorilla allows only one writer.
type streamSession struct {
	handler *StreamHandler
	conn    *websocket.Conn
	userID  uuid.UUID
	log     *logger.Logger

	writeMu sync.Mutex
}

func (s *streamSession) run() {
	defer s.conn.Close()

	feed := realtime.NewGroupFeed(s.handler.subscriber, realtime.FeedHooks{
		RefreshMessages: s.pushMessages,
		RefreshUnread:   s.pushUnread,
		MarkRead:        s.markRead,
		RefreshSlots:    s.pushSlots,
	})
	if err := feed.Start(); err != nil {
		s.log.WithError(err).Error("Failed to subscribe stream session")
		return
	}
	defer feed.Stop()

	// Initial snapshot so the client does not wait for the first event
	s.pushUnread()

	stop := make(chan struct{})
	go s.pingLoop(stop)
	defer close(stop)

	s.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		var cmd streamCommand
		if err := s.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithError(err).Warn("Stream session closed unexpectedly")
			}
			return
		}

		switch cmd.Action {
		case "open":
			groupID, err := uuid.Parse(cmd.GroupID)
			if err != nil {
				continue
			}
			feed.SetOpenGroup(groupID)
			// Opening a group counts as reading it
			s.markRead(groupID)
			s.pushMessages(groupID)
			s.pushUnread()
		case "close":
			feed.ClearOpenGroup()
		}
	}
}

func (s *streamSession) pingLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait))
			s.writeMu.Unlock()
			if err != nil {
				return
			}
		case <-stop:
			return
		}
	}
}

func (s *streamSession) pushMessages(groupID uuid.UUID) {
	ctx, cancel := s.sessionContext()
	defer cancel()

	messages, err := s.handler.messageService.List(ctx, groupID, s.userID)
	if err != nil {
		// Changes in groups the user does not belong to are not theirs to see
		if !errors.Is(err, apperrors.ErrNotMember) && !apperrors.IsNotFound(err) {
			s.log.WithError(err).Warn("Failed to refresh messages for stream")
		}
		return
	}

	s.writeJSON(streamFrame{
		Type:     "messages",
		GroupID:  groupID.String(),
		Messages: messages,
	})
}

func (s *streamSession) pushUnread() {
	ctx, cancel := s.sessionContext()
	defer cancel()

	counts, err := s.handler.unreadService.Counts(ctx, s.userID)
	if err != nil {
		s.log.WithError(err).Warn("Failed to refresh unread counts for stream")
		return
	}

	out := make(map[string]int64, len(counts))
	for groupID, n := range counts {
		out[groupID.String()] = n
	}
	s.writeJSON(streamFrame{Type: "unread", Unread: out})
}

func (s *streamSession) markRead(groupID uuid.UUID) {
	ctx, cancel := s.sessionContext()
	defer cancel()

	if err := s.handler.unreadService.MarkRead(ctx, groupID, s.userID, time.Time{}); err != nil {
		if !errors.Is(err, apperrors.ErrNotMember) && !apperrors.IsNotFound(err) {
			s.log.WithError(err).Warn("Failed to mark group read for stream")
		}
	}
}

func (s *streamSession) pushSlots(groupID, teamID uuid.UUID) {
	ctx, cancel := s.sessionContext()
	defer cancel()

	team, err := s.handler.teamService.GetForGroup(ctx, groupID, s.userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotMember) && !apperrors.IsNotFound(err) {
			s.log.WithError(err).Warn("Failed to refresh team slots for stream")
		}
		return
	}

	s.writeJSON(streamFrame{
		Type:    "slots",
		GroupID: groupID.String(),
		TeamID:  teamID.String(),
		Team:    team,
	})
}

func (s *streamSession) writeJSON(frame streamFrame) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := s.conn.WriteJSON(frame); err != nil {
		s.log.WithError(err).Warn("Failed to write stream frame")
	}
}

func (s *streamSession) sessionContext() (context.Context, context.CancelFunc) {
	ctx := context.WithValue(context.Background(), logger.UserIDKey, s.userID.String())
	return context.WithTimeout(ctx, s.handler.cfg.RequestTimeout())
}
