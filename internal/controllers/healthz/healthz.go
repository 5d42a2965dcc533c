package healthz

import (
	"net/http"

	"github.com/constructa/backend/internal/httputil"
	"github.com/constructa/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// Options returns the allowed HTTP methods
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the application health and, if not healthy, an error
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, gin.H{"error": s})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, gin.H{"error": s})
		return
	}

	c.Status(http.StatusNoContent)
}
