package api

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/order"
)

// WebSocket event types
const (
	EventRender   = "render"
	EventResponse = "response"
	EventError    = "error"
)

// WSMessage is one WebSocket frame in either direction
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type wsRenderPayload struct {
	Design json.RawMessage `json:"design"`
	Order  *order.Order    `json:"order"`
}

// WSClient is one connected editor session. The editor pushes render events
// on every design change and paints the returned command sequence.
type WSClient struct {
	conn   *websocket.Conn
	send   chan WSMessage
	server *Server
}

// handleWebSocket upgrades the connection and starts the pumps
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &WSClient{
		conn:   conn,
		send:   make(chan WSMessage, 256),
		server: s,
	}

	s.log.Info("websocket client connected")

	go client.readPump()
	go client.writePump()
}

func (c *WSClient) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
		c.server.log.Info("websocket client disconnected")
	}()

	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.log.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		c.handleMessage(&msg)
	}
}

func (c *WSClient) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			c.server.log.Warn("websocket write error", zap.Error(err))
			return
		}
	}
}

func (c *WSClient) handleMessage(msg *WSMessage) {
	switch msg.Event {
	case EventRender:
		c.handleRenderEvent(msg.Data)
	default:
		c.sendError("unknown event: " + msg.Event)
	}
}

func (c *WSClient) handleRenderEvent(data json.RawMessage) {
	var payload wsRenderPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.sendError("invalid render payload: " + err.Error())
		return
	}
	if len(payload.Design) == 0 {
		c.sendError("design is required")
		return
	}

	doc, err := design.Parse(payload.Design)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	cmds := c.server.engine.Render(doc, payload.Order)

	body, err := json.Marshal(gin.H{"commands": cmds})
	if err != nil {
		c.sendError("failed to encode commands: " + err.Error())
		return
	}

	c.enqueue(WSMessage{Event: EventResponse, Data: body})
}

func (c *WSClient) sendError(message string) {
	body, _ := json.Marshal(gin.H{"error": message})
	c.enqueue(WSMessage{Event: EventError, Data: body})
}

// enqueue drops the frame when the client cannot keep up; the editor will
// push another render soon anyway.
func (c *WSClient) enqueue(msg WSMessage) {
	select {
	case c.send <- msg:
	default:
	}
}
