package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campushub/internal/domain/user"
	"campushub/internal/handler/api"
	"campushub/internal/handler/middleware"
	"campushub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	labHandler *api.LabHandler,
	roomHandler *api.RoomHandler,
	libraryHandler *api.LibraryHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, labHandler, roomHandler, libraryHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	labHandler *api.LabHandler,
	roomHandler *api.RoomHandler,
	libraryHandler *api.LibraryHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		lab := apiGroup.Group("/lab")
		{
			addRoutes(lab, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: labHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/bookings", Handler: labHandler.ListMyBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: labHandler.GetBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: labHandler.CancelBooking},
				{Method: http.MethodGet, Path: "/active", Handler: labHandler.ListActiveBookings},
				{Method: http.MethodGet, Path: "/equipment", Handler: labHandler.ListEquipment},
				{Method: http.MethodGet, Path: "/equipment/:number/freeSlots", Handler: labHandler.FreeSlots},
			})

			labAdmin := lab.Group("")
			labAdmin.Use(authMiddleware.RequireAnyRole(user.RoleLabAdmin))
			addRoutes(labAdmin, []route{
				{Method: http.MethodPost, Path: "/equipment", Handler: labHandler.AddEquipment},
				{Method: http.MethodPatch, Path: "/equipment/:number/status", Handler: labHandler.UpdateEquipmentStatus},
			})
		}

		roomBooking := apiGroup.Group("/roomBooking")
		{
			addRoutes(roomBooking, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: roomHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/bookings", Handler: roomHandler.ListMyBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: roomHandler.GetBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: roomHandler.CancelBooking},
				{Method: http.MethodGet, Path: "/active", Handler: roomHandler.ListActiveBookings},
			})
		}

		room := apiGroup.Group("/room")
		{
			addRoutes(room, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:roomId/freeSlots", Handler: roomHandler.FreeSlots},
			})

			roomAdmin := room.Group("")
			roomAdmin.Use(authMiddleware.RequireAnyRole())
			addRoutes(roomAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.AddRoom},
				{Method: http.MethodDelete, Path: "/:roomId", Handler: roomHandler.DeactivateRoom},
				{Method: http.MethodPost, Path: "/:roomId/suspend", Handler: roomHandler.SuspendRoomBooking},
			})
		}

		timetable := apiGroup.Group("/timetable")
		{
			addRoutes(timetable, []route{
				{Method: http.MethodGet, Path: "/entries", Handler: roomHandler.ListTimetable},
			})

			timetableAdmin := timetable.Group("")
			timetableAdmin.Use(authMiddleware.RequireAnyRole(user.RoleFaculty))
			addRoutes(timetableAdmin, []route{
				{Method: http.MethodPost, Path: "/entries", Handler: roomHandler.AddTimetableEntry},
			})
		}

		library := apiGroup.Group("/library")
		{
			addRoutes(library, []route{
				{Method: http.MethodGet, Path: "/books", Handler: libraryHandler.ListBooks},
				{Method: http.MethodGet, Path: "/books/:accession", Handler: libraryHandler.GetBook},
				{Method: http.MethodGet, Path: "/issues", Handler: libraryHandler.ListMyIssues},
				{Method: http.MethodGet, Path: "/issues/:id", Handler: libraryHandler.GetIssue},
			})

			librarian := library.Group("")
			librarian.Use(authMiddleware.RequireAnyRole(user.RoleLibrarian))
			addRoutes(librarian, []route{
				{Method: http.MethodPost, Path: "/books", Handler: libraryHandler.AddBooks},
				{Method: http.MethodPatch, Path: "/books/:accession/status", Handler: libraryHandler.UpdateBookStatus},
				{Method: http.MethodPost, Path: "/issues", Handler: libraryHandler.IssueBook},
				{Method: http.MethodPost, Path: "/returns", Handler: libraryHandler.ReturnBook},
				{Method: http.MethodGet, Path: "/openIssues", Handler: libraryHandler.ListOpenIssues},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
