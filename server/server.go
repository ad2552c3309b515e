package server

import (
	"filmrating-server/confs"
	"filmrating-server/db"
	httpHandler "filmrating-server/handlers/http"
	"filmrating-server/repositories"
	"filmrating-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

// RequestID tags every response with an X-Request-ID, generating one when
// the client did not send its own.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))
	s.app.Use(RequestID())

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)

	// Setup API routes
	api := s.app.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.GetAllUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:key", userHandler.GetUserByKey) // id or email
			users.PUT("/:key", userHandler.UpdateUser)
			users.DELETE("/:key", userHandler.DeleteUser)
		}
	}

	if err := s.app.Run(s.cfg.ListenAddr); err != nil {
		panic(err)
	}
}
