package http

import (
	"github.com/gin-gonic/gin"

	"pastebin/internal/auth"
)

// Guard helpers resolve the request's bearer credential into the capability
// a route requires and short-circuit with the classified error when it
// cannot be produced. Handlers never parse credentials themselves.

func (s *Server) requireUser(c *gin.Context) (auth.User, bool) {
	user, err := s.resolver.ResolveUser(c.GetHeader("Authorization"))
	if err != nil {
		writeAppError(c, err)
		return auth.User{}, false
	}
	return user, true
}

func (s *Server) requireAdmin(c *gin.Context) (auth.Admin, bool) {
	admin, err := s.resolver.ResolveAdmin(c.GetHeader("Authorization"))
	if err != nil {
		writeAppError(c, err)
		return auth.Admin{}, false
	}
	return admin, true
}

// requireOwnerOrAdmin admits the owner of the resource or any
// administrator. Both capabilities are resolved from the same header;
// auth.CheckPerm decides which failure, if any, reaches the wire.
func (s *Server) requireOwnerOrAdmin(c *gin.Context, userID int) bool {
	header := c.GetHeader("Authorization")
	user, userErr := s.resolver.ResolveUser(header)
	admin, adminErr := s.resolver.ResolveAdmin(header)
	if err := auth.CheckPerm(userID, user, userErr, admin, adminErr); err != nil {
		writeAppError(c, err)
		return false
	}
	return true
}
