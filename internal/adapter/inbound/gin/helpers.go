package gin

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/washdesk/server/internal/shared/response"
)

// userIDHeader carries the authenticated staff user's id, set by the
// dashboard gateway in front of this service.
const userIDHeader = "X-User-ID"

// GetUserIDFromHeader extracts the staff user id from the request.
// Returns the id and true, or writes a 401 and returns false.
func GetUserIDFromHeader(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(userIDHeader)
	if raw == "" {
		response.Unauthorized(c, "missing user id")
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		response.Unauthorized(c, "invalid user id")
		return uuid.Nil, false
	}
	return userID, true
}

// parseUUIDParam parses a UUID path parameter, writing a 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page/page_size query parameters with defaults.
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
