package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/backup"
)

// maxImportSize caps uploaded backups.
const maxImportSize = 32 << 20

type BackupController struct {
	service BackupService
}

func NewBackupController(service BackupService) *BackupController {
	return &BackupController{service: service}
}

// Export returns all user data. ?download=1 sets an attachment filename.
// GET /api/export
func (bc *BackupController) Export(c *gin.Context) {
	data, err := bc.service.Export()
	if err != nil {
		respondInternalError(c, err, "export")
		return
	}
	body, err := backup.Marshal(data)
	if err != nil {
		respondInternalError(c, err, "encode export")
		return
	}
	if c.Query("download") != "" {
		stamp := time.Now().UTC()
		if t, err := time.Parse(time.RFC3339, data.ExportedAt); err == nil {
			stamp = t
		}
		name := fmt.Sprintf("mybible-backup-%s.json", stamp.Format("20060102"))
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Import restores a backup from the request body. Comments and trailing
// commas are tolerated.
// POST /api/import
func (bc *BackupController) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		respondBadRequest(c, "could not read body")
		return
	}
	data, err := backup.ParseExport(raw)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	result, err := bc.service.Import(data)
	if err != nil {
		if errors.Is(err, backup.ErrUnsupportedVersion) {
			respondError(c, http.StatusBadRequest, "unsupported_version", err.Error())
			return
		}
		respondInternalError(c, err, "import")
		return
	}
	c.JSON(http.StatusOK, result)
}
