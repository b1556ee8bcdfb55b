package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pastebin/internal/apperr"
	"pastebin/internal/domain"
)

const requestIDKey = "request_id"

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
}

type pasteResponse struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Data   string `json:"data"`
}

// requestID tags every request with an X-Request-ID, honoring one supplied
// by the caller.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func writeAppError(c *gin.Context, err *apperr.Error) {
	c.AbortWithStatusJSON(err.Code, err)
}

func parseIntParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(c.Param(name)))
	if err != nil {
		writeAppError(c, apperr.BadRequest(name+" must be an integer"))
		return 0, false
	}
	return value, true
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Admin:    user.Admin,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}
	return out
}

func toPasteResponse(paste domain.Paste) pasteResponse {
	return pasteResponse{ID: paste.ID, UserID: paste.UserID, Data: paste.Data}
}

func toPasteResponses(pastes []domain.Paste) []pasteResponse {
	out := make([]pasteResponse, 0, len(pastes))
	for _, paste := range pastes {
		out = append(out, toPasteResponse(paste))
	}
	return out
}
