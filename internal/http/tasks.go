package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/tasks"
)

// TasksController exposes the background task queue.
type TasksController struct {
	queue TaskQueue
}

func NewTasksController(queue TaskQueue) *TasksController {
	return &TasksController{queue: queue}
}

type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// GET /api/tasks/types
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"taskTypes": []TaskTypeInfo{{
			Type:        "prefetch_version",
			Description: "Download every chapter of a version for offline reading",
			Queue:       tasks.PrefetchVersionQueue,
		}},
	})
}

// GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.queue.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": tasks.StatusString(status),
	})
}

// EnqueuePrefetch queues durable downloads for the given versions.
// POST /api/tasks/prefetch {"versions": ["krv", "kjv"]}
func (tc *TasksController) EnqueuePrefetch(c *gin.Context) {
	var req struct {
		Versions []string `json:"versions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Versions) == 0 {
		respondBadRequest(c, "versions is required")
		return
	}
	for i, v := range req.Versions {
		v = strings.ToLower(strings.TrimSpace(v))
		req.Versions[i] = v
		if _, ok := bible.VersionByID(v); !ok {
			respondError(c, http.StatusBadRequest, "unknown_version", "unknown version: "+v)
			return
		}
	}

	ids, err := tc.queue.EnqueuePrefetch(req.Versions...)
	if err != nil {
		respondInternalError(c, err, "enqueue prefetch")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"taskIds": ids, "message": "task enqueued"})
}
