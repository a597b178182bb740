package api

import (
	stdhttp "net/http"
	"time"

	intconfig "adminboard/internal/config"
	h "adminboard/internal/http/handlers"
	"adminboard/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	api := h.New(env)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		gin.Recovery(),
		corsMiddleware(env),
		middleware.Auth([]byte(env.JWTSecret)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	g := r.Group("/api")
	{
		g.GET("/health", api.Health)
		g.GET("/db-check", api.DBCheck)

		auth := g.Group("/auth")
		auth.POST("/login", api.Login)

		users := g.Group("/users")
		users.GET("/me", api.Profile)
		users.GET("/permissions", api.Permissions)
		users.POST("/projects/list", h.ListHandler(api.Users.ListProjects))

		master := g.Group("/master-data")
		{
			master.POST("/countries/list", h.ListHandler(api.Master.ListCountries))
			master.POST("/countries", api.CreateCountry)
			master.PUT("/countries/:id", api.UpdateCountry)
			master.PUT("/countries", h.DeleteHandler(api.Master.DeleteCountry, "country deleted"))
			master.GET("/countries/export", api.ExportCountries)

			master.POST("/states/list", h.ListHandler(api.Master.ListStates))
			master.POST("/states", api.CreateState)
			master.PUT("/states", h.DeleteHandler(api.Master.DeleteState, "state deleted"))
			master.POST("/states/by-country", api.StatesByCountry)

			master.POST("/cities/list", h.ListHandler(api.Master.ListCities))
			master.POST("/cities", api.CreateCity)
			master.PUT("/cities", h.DeleteHandler(api.Master.DeleteCity, "city deleted"))
			master.POST("/cities/by-state", api.CitiesByState)

			master.POST("/districts/list", h.ListHandler(api.Master.ListDistricts))
			master.POST("/districts", api.CreateDistrict)
			master.PUT("/districts", h.DeleteHandler(api.Master.DeleteDistrict, "district deleted"))
			master.POST("/districts/by-city", api.DistrictsByCity)
		}

		website := g.Group("/website-settings")
		{
			website.POST("/achievements/list", h.ListHandler(api.Website.ListAchievements))
			website.POST("/achievements", api.SaveAchievement)
			website.PUT("/achievements", h.DeleteHandler(api.Website.DeleteAchievement, "achievement deleted"))

			website.POST("/team/list", h.ListHandler(api.Website.ListTeamMembers))
			website.POST("/team", api.SaveTeamMember)
			website.PUT("/team", h.DeleteHandler(api.Website.DeleteTeamMember, "team member deleted"))

			website.GET("/sections", api.ListSections)
			website.PUT("/sections/visibility", api.SetSectionVisibility)
		}

		sms := g.Group("/sms")
		sms.POST("/list", h.ListHandler(api.SMS.List))
		sms.POST("/send", api.SendSMS)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     []string{env.AppBaseURL, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	return cors.New(cfg)
}
