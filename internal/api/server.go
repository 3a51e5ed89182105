// Package api exposes the render engine over HTTP and WebSocket
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/FabioCZ/receipt-craft-fabs/internal/config"
	"github.com/FabioCZ/receipt-craft-fabs/internal/escpos"
	"github.com/FabioCZ/receipt-craft-fabs/internal/interp"
	"github.com/FabioCZ/receipt-craft-fabs/internal/library"
	"github.com/FabioCZ/receipt-craft-fabs/internal/preview"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/order"
)

// Server is the render API server
type Server struct {
	router   *gin.Engine
	engine   *interp.Engine
	render   config.RenderConfig
	designs  *library.Library
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a render API server. designs may be nil, which disables
// the design library routes.
func NewServer(render config.RenderConfig, designs *library.Library, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:  router,
		engine:  interp.New(log),
		render:  render,
		designs: designs,
		log:     log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // the editor runs on an arbitrary origin
			},
		},
	}

	router.Use(corsMiddleware())
	router.Use(server.requestLogger())

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	s.router.POST("/render", s.handleRender)
	s.router.POST("/render/escpos", s.handleRenderESCPOS)
	s.router.POST("/render/preview", s.handleRenderPreview)

	// Saved design library
	if s.designs != nil {
		s.router.GET("/designs", s.handleListDesigns)
		s.router.PUT("/designs/:name", s.handleSaveDesign)
		s.router.GET("/designs/id/:id", s.handleGetDesign)
		s.router.DELETE("/designs/id/:id", s.handleDeleteDesign)
		s.router.POST("/designs/id/:id/render", s.handleRenderSaved)
	}

	// WebSocket live-preview channel
	s.router.GET("/ws", s.handleWebSocket)

	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

type renderRequest struct {
	// Design accepts both the wrapper and bare-array document forms
	Design json.RawMessage `json:"design" binding:"required"`
	Order  *order.Order    `json:"order"`
}

// decodeRenderRequest binds and parses a render request body
func decodeRenderRequest(c *gin.Context) (*design.Document, *order.Order, error) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, nil, fmt.Errorf("design is required: %w", err)
	}

	doc, err := design.Parse(req.Design)
	if err != nil {
		return nil, nil, err
	}

	if err := design.Validate(doc); err != nil {
		return nil, nil, fmt.Errorf("invalid design: %w", err)
	}

	return doc, req.Order, nil
}

// handleRender returns the rendered command sequence as JSON
func (s *Server) handleRender(c *gin.Context) {
	doc, ord, err := decodeRenderRequest(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"commands": s.engine.Render(doc, ord)})
}

// handleRenderESCPOS returns the rendered receipt as raw ESC/POS bytes
func (s *Server) handleRenderESCPOS(c *gin.Context) {
	doc, ord, err := decodeRenderRequest(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	paper := c.DefaultQuery("paper", s.render.PaperWidth)

	data, err := escpos.NewEncoder(paper).Encode(s.engine.Render(doc, ord))
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("failed to encode receipt: %v", err)})
		return
	}

	c.Data(200, "application/octet-stream", data)
}

// handleRenderPreview returns the rendered receipt as plain text
func (s *Server) handleRenderPreview(c *gin.Context) {
	doc, ord, err := decodeRenderRequest(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	width := s.render.PreviewWidth
	if w, err := strconv.Atoi(c.Query("width")); err == nil && w > 0 {
		width = w
	}

	text := preview.Render(s.engine.Render(doc, ord), preview.Options{Width: width})
	c.String(200, text)
}

// handleListDesigns returns all saved designs
func (s *Server) handleListDesigns(c *gin.Context) {
	c.JSON(200, gin.H{"designs": s.designs.List()})
}

// handleSaveDesign validates and stores a design under a name
func (s *Server) handleSaveDesign(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read request body"})
		return
	}

	doc, err := design.Parse(raw)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := design.Validate(doc); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid design: %v", err)})
		return
	}

	entry, err := s.designs.Save(c.Param("name"), raw)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("failed to save design: %v", err)})
		return
	}

	c.JSON(200, entry)
}

// handleGetDesign returns one saved design by ID
func (s *Server) handleGetDesign(c *gin.Context) {
	entry := s.designs.Get(c.Param("id"))
	if entry == nil {
		c.JSON(404, gin.H{"error": "design not found"})
		return
	}
	c.JSON(200, entry)
}

// handleDeleteDesign removes a saved design by ID
func (s *Server) handleDeleteDesign(c *gin.Context) {
	if !s.designs.Remove(c.Param("id")) {
		c.JSON(404, gin.H{"error": "design not found"})
		return
	}
	c.Status(204)
}

// handleRenderSaved renders a saved design against order data from the body
func (s *Server) handleRenderSaved(c *gin.Context) {
	entry := s.designs.Get(c.Param("id"))
	if entry == nil {
		c.JSON(404, gin.H{"error": "design not found"})
		return
	}

	doc, err := design.Parse(entry.Design)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("stored design is unreadable: %v", err)})
		return
	}

	var ord *order.Order
	if c.Request.ContentLength > 0 {
		ord = &order.Order{}
		if err := c.ShouldBindJSON(ord); err != nil {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid order data: %v", err)})
			return
		}
	}

	c.JSON(200, gin.H{"commands": s.engine.Render(doc, ord)})
}

// Run starts the API server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Writer.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		s.log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
