package handler

import (
	"errors"

	"github.com/naludev/cohabitdb/dto"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendars *usecase.CalendarService
}

func NewCalendarHandler(calendars *usecase.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendars: calendars}
}

func (h *CalendarHandler) CreateCalendar(c *gin.Context) {
	var req dto.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Group id is required")
		return
	}

	calendar, err := h.calendars.CreateCalendar(c.Request.Context(), req.GroupID, req.Tasks)
	if err != nil {
		utils.InternalError(c, "Failed to create calendar")
		return
	}

	utils.Created(c, calendar)
}

func (h *CalendarHandler) GetCalendarByID(c *gin.Context) {
	calendar, err := h.calendars.CalendarByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrCalendarNotFound) {
			utils.NotFound(c, "Calendar not found")
			return
		}
		utils.InternalError(c, "Failed to fetch calendar")
		return
	}
	utils.Success(c, calendar)
}
