package api

import (
	"net/http"

	"queue-engine/internal/domain/staff"
	"queue-engine/internal/handler/httperr"
	"queue-engine/internal/handler/middleware"
	"queue-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("staff member missing from context")

func requireMember(c *gin.Context) (staff.Member, bool) {
	member, ok := middleware.GetMember(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return staff.Member{}, false
	}
	return member, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
