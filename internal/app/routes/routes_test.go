package routes

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kerem/campusdesk/internal/app/controllers"
	"github.com/kerem/campusdesk/internal/middleware"
	"github.com/kerem/campusdesk/internal/pkg/auth"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authMiddleware := middleware.NewAuthMiddleware(auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusdesk.test",
	}))

	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewTimetableController(nil),
		controllers.NewStudentTimetableController(nil),
		controllers.NewTicketController(nil),
		controllers.NewVenueController(nil),
		controllers.NewBatchController(nil),
		authMiddleware,
	)

	routes := map[string]bool{}
	for _, route := range router.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	return routes
}

func TestTimetableListUsesQueryScopedRoute(t *testing.T) {
	routes := registeredRoutes(t)

	// Listing is scoped by the userId query parameter, not a path segment
	assert.True(t, routes["GET /api/timetable"])
	assert.False(t, routes["GET /api/timetable/:userId"])
}

func TestRouteSurface(t *testing.T) {
	routes := registeredRoutes(t)

	for _, route := range []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth",
		"GET /api/auth/:userId",
		"PUT /api/auth/:userId",
		"DELETE /api/auth/:userId",
		"POST /api/timetable",
		"DELETE /api/timetable/:id",
		"GET /api/student-timetable",
		"POST /api/student-timetable",
		"PUT /api/student-timetable/:id",
		"DELETE /api/student-timetable/:id",
		"POST /api/tickets",
		"GET /api/tickets",
		"GET /api/tickets/:id",
		"PUT /api/tickets/:id",
		"DELETE /api/tickets/:id",
		"GET /api/venues",
		"POST /api/venues",
		"POST /api/batches",
		"GET /api/batches",
	} {
		assert.True(t, routes[route], route)
	}
}
