package handlers

import (
	"github.com/gin-gonic/gin"

	"attendly.com/attendly/core"
	"attendly.com/attendly/storage"
)

type Endpoint struct {
	svc   *core.Service
	store *storage.Store
}

// Register mounts the attendance API on the given route group.
func Register(r *gin.RouterGroup, svc *core.Service, store *storage.Store) {
	endpoint := &Endpoint{svc: svc, store: store}

	r.GET("/time", endpoint.ServerTime)
	r.GET("/employees", endpoint.ListEmployees)

	r.POST("/attendance/submit", endpoint.Submit)
	r.GET("/attendance", endpoint.List)
	r.GET("/attendance/today/:employeeId", endpoint.Today)
	r.GET("/attendance/export", endpoint.Export)
}

func filtersFromQuery(c *gin.Context) core.Filters {
	return core.Filters{
		EmployeeID: c.Query("employee_id"),
		Date:       c.Query("date"),
		Status:     c.Query("status"),
	}
}
