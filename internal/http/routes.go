package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is the contract NewRouter consumes: anything that can attach
// its endpoints to the /api group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}
