package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/config"
	"github.com/lnbfans/courtside/internal/handler"
	"github.com/lnbfans/courtside/internal/middleware"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/service"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Cfg         *config.Config
	AuthService *service.AuthService
	RateLimiter *middleware.RateLimiter

	Site    *handler.SiteHandler
	Auth    *handler.AuthHandler
	Team    *handler.TeamHandler
	Player  *handler.PlayerHandler
	Coach   *handler.CoachHandler
	Article *handler.ArticleHandler
	Event   *handler.EventHandler
	Profile *handler.ProfileHandler
	User    *handler.UserHandler
}

// New builds the full route table: public pages, fan routes behind the
// session check, and the /admin namespace behind the role check.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.HSTS(d.Cfg.IsProduction()))

	if len(d.Cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = d.Cfg.CORSOrigins
		corsCfg.AllowCredentials = true
		r.Use(cors.New(corsCfg))
	}

	prom := ginprometheus.NewPrometheus("gin")
	prom.Use(r)

	// Public
	r.GET("/", d.Site.Landing)

	authRoutes := r.Group("/")
	if d.RateLimiter != nil {
		authRoutes.Use(d.RateLimiter.Middleware())
	}
	authRoutes.POST("/register", d.Auth.Register)
	authRoutes.POST("/login", d.Auth.Login)

	r.POST("/logout", d.Auth.Logout)

	r.GET("/teams", d.Team.List)
	r.GET("/teams/:id", d.Team.Get)
	r.GET("/players", d.Player.List)
	r.GET("/players/:id", d.Player.Get)
	r.GET("/community/players", d.Player.Community)
	r.GET("/news", d.Article.List)
	r.GET("/news/:id", d.Article.Get)
	r.GET("/events", d.Event.List)
	r.GET("/events/:id", d.Event.Get)

	// Fan routes, session required
	fan := r.Group("/")
	fan.Use(middleware.RequireAuth(d.AuthService))
	{
		fan.POST("/events/:id/signup", d.Event.SignUp)
		fan.GET("/my-player", d.Player.MyPlayer)
		fan.POST("/my-player", d.Player.CreateMyPlayer)
		fan.GET("/profile", d.Profile.Get)
		fan.PUT("/profile/favorite-team", d.Profile.SetFavoriteTeam)
		fan.PUT("/profile/favorite-player", d.Profile.SetFavoritePlayer)
		fan.GET("/profile/lineup", d.Profile.Lineup)
		fan.PUT("/profile/lineup/:position", d.Profile.AssignSlot)
	}

	// Admin namespace, role re-checked per request
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(d.AuthService), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", d.User.List)
		admin.POST("/users", d.User.Create)
		admin.GET("/users/:id", d.User.Get)
		admin.PUT("/users/:id", d.User.Update)
		admin.DELETE("/users/:id", d.User.Delete)

		admin.GET("/teams", d.Team.List)
		admin.POST("/teams", d.Team.Create)
		admin.GET("/teams/:id", d.Team.Get)
		admin.PUT("/teams/:id", d.Team.Update)
		admin.DELETE("/teams/:id", d.Team.Delete)

		admin.GET("/players", d.Player.List)
		admin.POST("/players", d.Player.Create)
		admin.GET("/players/:id", d.Player.Get)
		admin.PUT("/players/:id", d.Player.Update)
		admin.DELETE("/players/:id", d.Player.Delete)

		admin.GET("/coaches", d.Coach.List)
		admin.POST("/coaches", d.Coach.Create)
		admin.GET("/coaches/:id", d.Coach.Get)
		admin.PUT("/coaches/:id", d.Coach.Update)
		admin.DELETE("/coaches/:id", d.Coach.Delete)

		admin.GET("/articles", d.Article.List)
		admin.POST("/articles", d.Article.Create)
		admin.GET("/articles/:id", d.Article.Get)
		admin.PUT("/articles/:id", d.Article.Update)
		admin.DELETE("/articles/:id", d.Article.Delete)

		admin.GET("/events", d.Event.List)
		admin.POST("/events", d.Event.Create)
		admin.GET("/events/:id", d.Event.Get)
		admin.PUT("/events/:id", d.Event.Update)
		admin.DELETE("/events/:id", d.Event.Delete)
		admin.GET("/events/:id/signups", d.Event.Signups)
	}

	return r
}
