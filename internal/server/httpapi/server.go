// Package httpapi exposes the service over HTTP: registration, the
// session-gated meal routes, and metrics.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/dailydiet/internal/logging"
	"github.com/dmitrijs2005/dailydiet/internal/server/models"
	"github.com/dmitrijs2005/dailydiet/internal/server/services"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the opaque session token issued
// at registration.
const SessionCookieName = "sessionId"

// UserProvider is the slice of the user service the HTTP layer needs.
type UserProvider interface {
	Register(ctx context.Context, name, email, password, presentedToken string) (token string, minted bool, err error)
	ResolveSession(ctx context.Context, token string) (*models.User, error)
}

// MealProvider is the slice of the meal service the HTTP layer needs. Every
// method takes the owner id resolved by the session gate; handlers never
// forward a client-supplied one.
type MealProvider interface {
	Create(ctx context.Context, userID, name, description string, dateTime time.Time, isDiet bool) (*models.Meal, error)
	List(ctx context.Context, userID string) ([]*models.Meal, error)
	Get(ctx context.Context, userID, mealID string) (*models.Meal, error)
	Update(ctx context.Context, userID, mealID string, upd services.MealUpdate) error
	Delete(ctx context.Context, userID, mealID string) error
	Metrics(ctx context.Context, userID string) (*models.MealMetrics, error)
}

type Server struct {
	address           string
	logger            logging.Logger
	users             UserProvider
	meals             MealProvider
	sessionValidity   time.Duration
	passwordMinLength int
}

func NewServer(address string, l logging.Logger, users UserProvider, meals MealProvider,
	sessionValidity time.Duration, passwordMinLength int) *Server {
	return &Server{
		address:           address,
		logger:            l.With("module", "http_server"),
		users:             users,
		meals:             meals,
		sessionValidity:   sessionValidity,
		passwordMinLength: passwordMinLength,
	}
}

// router builds the echo instance with all routes registered.
func (s *Server) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.POST("/register", s.handleRegister)

	g := e.Group("/meals", s.sessionGate)
	g.POST("", s.handleCreateMeal)
	g.GET("", s.handleListMeals)
	g.GET("/metrics", s.handleMetrics)
	g.GET("/:mealId", s.handleGetMeal)
	g.PATCH("/:mealId", s.handleUpdateMeal)
	g.DELETE("/:mealId", s.handleDeleteMeal)

	return e
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// the server down gracefully.
func (s *Server) Run(ctx context.Context) error {

	e := s.router()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
