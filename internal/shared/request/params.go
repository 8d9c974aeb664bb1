package request

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// UintParam parses a numeric path parameter. ok is false for anything that is
// not a non-negative integer; 0 is left for the store to report as missing.
func UintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
