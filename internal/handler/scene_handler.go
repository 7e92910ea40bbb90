package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"CoastRisk-App/internal/domain/helper"
	"CoastRisk-App/internal/domain/model"
	"CoastRisk-App/internal/usecase"
)

// SceneHandler シーンAPIのハンドラー
type SceneHandler struct {
	sceneUseCase usecase.SceneUseCase
}

// NewSceneHandler SceneHandlerの新しいインスタンスを作成
func NewSceneHandler(sceneUseCase usecase.SceneUseCase) *SceneHandler {
	return &SceneHandler{
		sceneUseCase: sceneUseCase,
	}
}

// GetLayers GET /layers - レイヤーカタログ
func (h *SceneHandler) GetLayers(c *gin.Context) {
	layers, err := h.sceneUseCase.ListLayers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"layers": layers})
}

// GetLayerDefinition GET /layers/:key - レイヤー定義
func (h *SceneHandler) GetLayerDefinition(c *gin.Context) {
	def, err := h.sceneUseCase.GetLayerDefinition(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, def)
}

// PostScene POST /scenes - シーンの構築
func (h *SceneHandler) PostScene(c *gin.Context) {
	var req model.BuildSceneRequest

	// ボディなしの場合はデフォルト設定で全レイヤーを構築
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	scene, err := h.sceneUseCase.BuildScene(c.Request.Context(), &req)
	if err != nil {
		// リクエストで指定された未知のレイヤーは入力エラー
		if errors.Is(err, model.ErrLayerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": err.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, scene)
}

// GetScene GET /scenes/:id - シーンの取得（?summary=true でリングを省略）
func (h *SceneHandler) GetScene(c *gin.Context) {
	scene, err := h.sceneUseCase.GetScene(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("summary") == "true" {
		c.JSON(http.StatusOK, scene.Summary())
		return
	}
	c.JSON(http.StatusOK, scene)
}

// GetSceneLayer GET /scenes/:id/layers/:key - レイヤーの取得（?bbox=minx,miny,maxx,maxy で平面座標の表示範囲に絞り込み）
func (h *SceneHandler) GetSceneLayer(c *gin.Context) {
	var viewport *orb.Bound
	if bbox := c.Query("bbox"); bbox != "" {
		b, err := parseBBox(bbox)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": err.Error(),
			})
			return
		}
		viewport = &b
	}

	layer, err := h.sceneUseCase.GetLayer(c.Request.Context(), c.Param("id"), c.Param("key"), viewport)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, layer)
}

// GetRisk GET /scenes/:id/risk?lon=&lat= - 地点を含むリスクレイヤー
func (h *SceneHandler) GetRisk(c *gin.Context) {
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || !helper.IsFinite(lon) || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lon must be a number between -180 and 180",
		})
		return
	}
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	// 極はメルカトル投影できないため開区間
	if err != nil || !helper.IsFinite(lat) || lat <= -90 || lat >= 90 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat must be a number strictly between -90 and 90",
		})
		return
	}

	resp, err := h.sceneUseCase.RiskAt(c.Request.Context(), c.Param("id"), model.Location{Latitude: lat, Longitude: lon})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parseBBox "minx,miny,maxx,maxy" を orb.Bound に変換
func parseBBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("bbox must contain 4 values: minx,miny,maxx,maxy")
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || !helper.IsFinite(f) {
			return orb.Bound{}, fmt.Errorf("invalid bbox value: %q", p)
		}
		v[i] = f
	}
	if v[0] > v[2] || v[1] > v[3] {
		return orb.Bound{}, fmt.Errorf("bbox min must not exceed max")
	}

	return orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}, nil
}
