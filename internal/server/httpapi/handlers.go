package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/dailydiet/internal/common"
	"github.com/dmitrijs2005/dailydiet/internal/server/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	StatusCode int      `json:"statusCode"`
	Error      string   `json:"error"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
}

type mealResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
	IsDiet      bool      `json:"isDiet"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type metricsResponse struct {
	TotalMeals     int `json:"totalMeals"`
	DietMeals      int `json:"dietMeals"`
	NonDietMeals   int `json:"nonDietMeals"`
	BestDietStreak int `json:"bestDietStreak"`
}

func toMealResponse(m *models.Meal) mealResponse {
	return mealResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		DateTime:    m.DateTime,
		IsDiet:      m.IsDiet,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// writeError translates service errors into HTTP responses. Validation and
// not-found conditions map directly to their status codes; anything else is
// logged and collapsed to a generic 500 so no internal detail reaches the
// client.
func (s *Server) writeError(c echo.Context, err error) error {
	var validationErr *common.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, errorResponse{
			StatusCode: http.StatusBadRequest,
			Error:      "Bad Request",
			Message:    "Validation error",
			Details:    validationErr.Details,
		})
	}

	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.JSON(http.StatusBadRequest, errorResponse{
			StatusCode: http.StatusBadRequest,
			Error:      "Bad Request",
			Message:    "User already exists",
		})
	case errors.Is(err, common.ErrorUnauthorized):
		return s.writeUnauthorized(c)
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{
			StatusCode: http.StatusNotFound,
			Error:      "Not Found",
			Message:    "Resource not found",
		})
	default:
		s.logger.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			StatusCode: http.StatusInternalServerError,
			Error:      "Internal Server Error",
			Message:    "An error occurred while processing your request.",
		})
	}
}

func (s *Server) writeUnauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{
		StatusCode: http.StatusUnauthorized,
		Error:      "Unauthorized",
		Message:    "Unauthorized",
	})
}

// handleRegister creates a new account and issues the session credential.
// If the request already carries a session cookie its token is reused and
// no new cookie is set; otherwise the freshly minted token is attached as a
// persistent cookie.
func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.NewValidationError("Invalid request body"))
	}

	if err := req.Validate(s.passwordMinLength); err != nil {
		return s.writeError(c, err)
	}

	var presentedToken string
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		presentedToken = cookie.Value
	}

	token, minted, err := s.users.Register(c.Request().Context(), req.Name, req.Email, req.Password, presentedToken)
	if err != nil {
		return s.writeError(c, err)
	}

	if minted {
		c.SetCookie(&http.Cookie{
			Name:   SessionCookieName,
			Value:  token,
			Path:   "/",
			MaxAge: int(s.sessionValidity.Seconds()),
		})
	}

	return c.NoContent(http.StatusCreated)
}

func (s *Server) handleCreateMeal(c echo.Context) error {
	var req createMealRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.NewValidationError("Invalid request body"))
	}

	dateTime, err := req.Validate()
	if err != nil {
		return s.writeError(c, err)
	}

	_, err = s.meals.Create(c.Request().Context(), currentUserID(c), req.Name, req.Description, dateTime, *req.IsDiet)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

func (s *Server) handleListMeals(c echo.Context) error {
	meals, err := s.meals.List(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	result := make([]mealResponse, 0, len(meals))
	for _, m := range meals {
		result = append(result, toMealResponse(m))
	}

	return c.JSON(http.StatusOK, map[string]any{"meals": result})
}

// mealIDParam extracts the :mealId path parameter. A value that is not a
// UUID cannot reference any row, so it reports common.ErrorNotFound —
// indistinguishable from a meal that does not exist.
func mealIDParam(c echo.Context) (string, error) {
	id := c.Param("mealId")
	if err := uuid.Validate(id); err != nil {
		return "", common.ErrorNotFound
	}
	return id, nil
}

func (s *Server) handleGetMeal(c echo.Context) error {
	mealID, err := mealIDParam(c)
	if err != nil {
		return s.writeError(c, err)
	}

	meal, err := s.meals.Get(c.Request().Context(), currentUserID(c), mealID)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"meal": toMealResponse(meal)})
}

func (s *Server) handleUpdateMeal(c echo.Context) error {
	var req updateMealRequest
	if err := c.Bind(&req); err != nil {
		return s.writeError(c, common.NewValidationError("Invalid request body"))
	}

	upd, err := req.Validate()
	if err != nil {
		return s.writeError(c, err)
	}

	mealID, err := mealIDParam(c)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.meals.Update(c.Request().Context(), currentUserID(c), mealID, upd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (s *Server) handleDeleteMeal(c echo.Context) error {
	mealID, err := mealIDParam(c)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.meals.Delete(c.Request().Context(), currentUserID(c), mealID); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleMetrics(c echo.Context) error {
	m, err := s.meals.Metrics(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, metricsResponse{
		TotalMeals:     m.TotalMeals,
		DietMeals:      m.DietMeals,
		NonDietMeals:   m.NonDietMeals,
		BestDietStreak: m.BestDietStreak,
	})
}
