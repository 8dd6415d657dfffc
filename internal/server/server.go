package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matthieukhl/swiftcart/internal/catalog"
	"github.com/matthieukhl/swiftcart/internal/logging"
	"github.com/matthieukhl/swiftcart/internal/session"
	"github.com/matthieukhl/swiftcart/internal/view"
)

// HealthChecker is implemented by backends that can report liveness, such
// as the MySQL cart store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Server struct {
	router  *gin.Engine
	session *session.Session
	health  HealthChecker
	catalog string
	logger  *zap.Logger
}

// NewServer creates a new server instance serving one browsing session.
// health may be nil.
func NewServer(sess *session.Session, catalogName string, health HealthChecker, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:  router,
		session: sess,
		health:  health,
		catalog: catalogName,
		logger:  logging.OrNop(logger),
	}

	router.Use(server.requestLogger())
	server.setupRoutes()
	return server
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/home", s.home)
		api.GET("/products", s.products)
		api.GET("/products/:id", s.productDetail)
		api.GET("/cart", s.cart)
		api.POST("/cart/items/:id", s.addToCart)
		api.POST("/intents", s.dispatch)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if s.health != nil {
		if err := s.health.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "cart storage unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "swiftcart",
		"catalog": s.catalog,
		"session": s.session.ID.String(),
	})
}

func (s *Server) home(c *gin.Context) {
	// failures are rendered into the trending grid
	_ = s.session.LoadHomePage(c.Request.Context())
	c.JSON(http.StatusOK, s.session.HomeScreen(c.Request.Context()))
}

func (s *Server) products(c *gin.Context) {
	loc := session.LocationFrom(c.Request.URL.Query())
	// failures are rendered into the screen's error banner
	_ = s.session.LoadProductsPage(c.Request.Context(), loc)
	c.JSON(http.StatusOK, s.session.ProductsScreen(c.Request.Context()))
}

func (s *Server) productDetail(c *gin.Context) {
	id := session.CoerceID(c.Param("id"))
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	_, err := s.session.OpenDetail(c.Request.Context(), id)
	screen := s.session.ProductsScreen(c.Request.Context())
	c.JSON(detailStatus(err), screen.Detail)
}

func detailStatus(err error) int {
	var fe *catalog.FetchError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, catalog.ErrProductNotFound):
		return http.StatusNotFound
	case errors.As(err, &fe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) cart(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.CartScreen(c.Request.Context()))
}

func (s *Server) addToCart(c *gin.Context) {
	id := session.CoerceID(c.Param("id"))
	added, err := s.session.AddToCart(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("add to cart failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	if !added {
		c.JSON(http.StatusNotFound, gin.H{"error": "product " + strconv.FormatInt(id, 10) + " is not loaded"})
		return
	}

	total := s.session.Cart().TotalQuantity(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"badge": view.CartBadge(total)})
}

type intentRequest struct {
	Kind      string `json:"kind" binding:"required"`
	Category  string `json:"category"`
	ProductID int64  `json:"product_id"`
}

type intentResponse struct {
	Handled bool                `json:"handled"`
	Message string              `json:"message,omitempty"`
	Screen  view.ProductsScreen `json:"screen"`
}

func (s *Server) dispatch(c *gin.Context) {
	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := session.ParseIntentKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// errors are already reflected in the screen
	res, err := s.session.Dispatch(c.Request.Context(), session.Intent{
		Kind:      kind,
		Category:  req.Category,
		ProductID: req.ProductID,
	})
	if err != nil {
		s.logger.Debug("intent failed", zap.Stringer("kind", kind), zap.Error(err))
	}

	c.JSON(http.StatusOK, intentResponse{
		Handled: res.Handled,
		Message: res.Message,
		Screen:  s.session.ProductsScreen(c.Request.Context()),
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
