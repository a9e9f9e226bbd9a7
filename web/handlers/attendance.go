package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"attendly.com/attendly/core"
	"attendly.com/attendly/report"
	"attendly.com/attendly/utils"
	"attendly.com/attendly/web/common"
)

type AttendanceActionDTO struct {
	EmployeeID   string `json:"employeeId" binding:"required"`
	EmployeeName string `json:"employeeName" binding:"required"`
	Action       string `json:"action" binding:"required,oneof=checkin breakin breakout checkout"`
	Timestamp    string `json:"timestamp" binding:"required"`
}

// Submit applies one attendance action. Precondition failures come back
// as 400 with the state machine's message; storage write races as 409 so
// the client can retry.
func (ep *Endpoint) Submit(c *gin.Context) {
	var dto AttendanceActionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	action, err := core.ParseAction(dto.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	ts, err := utils.ParseTimestamp(dto.Timestamp, ep.svc.Config().Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(fmt.Sprintf("Invalid timestamp: %s", dto.Timestamp)))
		return
	}

	record, err := ep.svc.ApplyAction(c.Request.Context(), action, dto.EmployeeID, dto.EmployeeName, ts)
	if err != nil {
		if ae, ok := core.AsActionError(err); ok {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(ae.Message))
			return
		}
		if errors.Is(err, core.ErrConflict) {
			c.JSON(http.StatusConflict, common.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(record))
}

func (ep *Endpoint) List(c *gin.Context) {
	records, err := ep.svc.Query(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(records, int64(len(records))))
}

// Today reports the employee's record for the current day. When no
// action has happened yet it returns the all-absent sentinel body rather
// than a 404, so clients can render an untouched day.
func (ep *Endpoint) Today(c *gin.Context) {
	employeeID := c.Param("employeeId")

	record, err := ep.svc.TodayStatus(c.Request.Context(), employeeID)
	if errors.Is(err, core.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"checkInTime":  nil,
			"checkOutTime": nil,
			"breakInTime":  nil,
			"breakOutTime": nil,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(record))
}

func (ep *Endpoint) Export(c *gin.Context) {
	records, err := ep.svc.ExportRecords(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	f, err := report.Render(records, ep.svc.Config())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer f.Close()

	filename := "attendance_all.xlsx"
	if date, ok := filtersFromQuery(c).DateFilter(); ok {
		filename = fmt.Sprintf("attendance_%s.xlsx", date)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
	}
}
