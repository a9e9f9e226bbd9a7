package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"attendly.com/attendly/web/common"
)

func (ep *Endpoint) ListEmployees(c *gin.Context) {
	employees, err := ep.store.ListEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(employees))
}

func (ep *Endpoint) ServerTime(c *gin.Context) {
	now := time.Now().In(ep.svc.Config().Location)
	c.JSON(http.StatusOK, gin.H{
		"serverTime": now.Format(time.RFC3339),
	})
}
