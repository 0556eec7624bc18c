package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	PublishEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	SubmitRequest(c *ginext.Context)
	ListEventRequests(c *ginext.Context)
	ResolveRequests(c *ginext.Context)
	ListUserRequests(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateCompilation(c *ginext.Context)
	UpdateCompilation(c *ginext.Context)
	DeleteCompilation(c *ginext.Context)
	GetCompilation(c *ginext.Context)
	ListCompilations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/publish", h.PublishEvent)

		// Participation requests
		api.POST("/events/:id/requests", h.SubmitRequest)
		api.GET("/events/:id/requests", h.ListEventRequests)
		api.PATCH("/events/:id/requests", h.ResolveRequests)
		api.GET("/users/:id/requests", h.ListUserRequests)
		api.PATCH("/requests/:id/cancel", h.CancelRequest)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		// Compilations
		api.POST("/compilations", h.CreateCompilation)
		api.GET("/compilations", h.ListCompilations)
		api.GET("/compilations/:id", h.GetCompilation)
		api.PATCH("/compilations/:id", h.UpdateCompilation)
		api.DELETE("/compilations/:id", h.DeleteCompilation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
