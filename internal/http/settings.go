package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/settingsstore"
)

type SettingsController struct {
	store       SettingsService
	offlineSync OfflineSyncTrigger
}

// NewSettingsController creates the controller. offlineSync may be nil when
// the scheduler is disabled.
func NewSettingsController(store SettingsService, offlineSync OfflineSyncTrigger) *SettingsController {
	return &SettingsController{store: store, offlineSync: offlineSync}
}

// GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	all, err := sc.store.GetAll()
	if err != nil {
		respondInternalError(c, err, "get settings")
		return
	}
	c.JSON(http.StatusOK, all)
}

// GET /api/settings/:key
func (sc *SettingsController) GetSetting(c *gin.Context) {
	key := c.Param("key")
	value, ok, err := sc.store.Get(key)
	if err != nil {
		respondInternalError(c, err, "get setting")
		return
	}
	if !ok {
		respondNotFound(c, "setting "+key)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// UpdateSettings applies a partial object of key to JSON value.
// PATCH /api/settings
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var values map[string]json.RawMessage
	if err := c.ShouldBindJSON(&values); err != nil {
		respondBadRequest(c, "body must be a JSON object")
		return
	}
	all, err := sc.store.Update(values)
	if err != nil {
		sc.respondSetError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// PUT /api/settings/:key with the raw JSON value as body.
func (sc *SettingsController) SetSetting(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		respondBadRequest(c, "value is required")
		return
	}
	if err := sc.store.Set(c.Param("key"), raw); err != nil {
		sc.respondSetError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/settings/:key
func (sc *SettingsController) ResetSetting(c *gin.Context) {
	if err := sc.store.Reset(c.Param("key")); err != nil {
		respondInternalError(c, err, "reset setting")
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/settings/last-read {"book": "JHN", "chapter": 3}
func (sc *SettingsController) SetLastRead(c *gin.Context) {
	var req settingsstore.LastRead
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	book, ok := parseBook(c, req.Book)
	if !ok {
		return
	}
	if req.Chapter < 1 {
		respondBadRequest(c, "invalid chapter")
		return
	}
	if err := sc.store.SetLastRead(book, req.Chapter); err != nil {
		sc.respondSetError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type offlineSyncResponse struct {
	settingsstore.OfflineSyncStatus
	Enabled bool       `json:"enabled"`
	Running bool       `json:"running"`
	NextRun *time.Time `json:"nextRun,omitempty"`
}

// GET /api/settings/offline-sync
func (sc *SettingsController) OfflineSyncStatus(c *gin.Context) {
	resp := offlineSyncResponse{OfflineSyncStatus: sc.store.GetOfflineSyncStatus()}
	if sc.offlineSync != nil {
		resp.Enabled = true
		resp.Running = sc.offlineSync.IsRunning()
		resp.NextRun = sc.offlineSync.NextRunTime()
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/settings/offline-sync/run
func (sc *SettingsController) RunOfflineSync(c *gin.Context) {
	if sc.offlineSync == nil {
		respondError(c, http.StatusServiceUnavailable, "offline_sync_disabled", "offline sync is not configured")
		return
	}
	ids, err := sc.offlineSync.RunNow()
	if err != nil {
		respondInternalError(c, err, "run offline sync")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"taskIds": ids})
}

func (sc *SettingsController) respondSetError(c *gin.Context, err error) {
	if errors.Is(err, settingsstore.ErrInvalidSetting) {
		respondError(c, http.StatusBadRequest, "invalid_setting", err.Error())
		return
	}
	respondInternalError(c, err, "save setting")
}
