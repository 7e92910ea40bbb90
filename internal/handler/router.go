package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"CoastRisk-App/internal/domain/model"
)

const serviceName = "CoastRisk-App"

// NewRouter ルーティングを設定した gin.Engine を作成
func NewRouter(scenes *SceneHandler, stories *StoryHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/api/health", HealthCheck)

	r.GET("/layers", scenes.GetLayers)
	r.GET("/layers/:key", scenes.GetLayerDefinition)
	r.POST("/scenes", scenes.PostScene)
	r.GET("/scenes/:id", scenes.GetScene)
	r.GET("/scenes/:id/layers/:key", scenes.GetSceneLayer)
	r.GET("/scenes/:id/risk", scenes.GetRisk)

	r.GET("/stories/:id", stories.GetStory)
	r.GET("/stories/:id/waypoints/:index", stories.GetStep)

	return r
}

// HealthCheck GET /api/health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// respondError ドメインエラーをHTTPステータスに変換して返す
func respondError(c *gin.Context, err error) {
	var noGeom *model.NoValidGeometryError

	switch {
	case errors.As(err, &noGeom):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "no_valid_geometry",
			"message": err.Error(),
		})
	case errors.Is(err, model.ErrInvalidScale),
		errors.Is(err, model.ErrInvalidLocation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": err.Error(),
		})
	case errors.Is(err, model.ErrSceneNotFound),
		errors.Is(err, model.ErrStoryNotFound),
		errors.Is(err, model.ErrLayerNotFound),
		errors.Is(err, model.ErrWaypointOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
	}
}
