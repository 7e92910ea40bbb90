package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"CoastRisk-App/internal/usecase"
)

// StoryHandler ストーリーAPIのハンドラー
type StoryHandler struct {
	storyUseCase usecase.StoryUseCase
}

// NewStoryHandler StoryHandlerの新しいインスタンスを作成
func NewStoryHandler(storyUseCase usecase.StoryUseCase) *StoryHandler {
	return &StoryHandler{
		storyUseCase: storyUseCase,
	}
}

// GetStory GET /stories/:id
func (h *StoryHandler) GetStory(c *gin.Context) {
	story, err := h.storyUseCase.GetStory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

// GetStep GET /stories/:id/waypoints/:index
func (h *StoryHandler) GetStep(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "waypoint index must be an integer",
		})
		return
	}

	step, err := h.storyUseCase.GetStep(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}
