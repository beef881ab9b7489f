package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/httpresp"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

type TableHandler struct {
	db *gorm.DB
}

func NewTableHandler(db *gorm.DB) *TableHandler {
	return &TableHandler{db: db}
}

func (h *TableHandler) List(c *gin.Context) {
	var tables []models.Table
	if err := h.db.WithContext(c.Request.Context()).
		Order("table_number ASC").
		Find(&tables).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tables", "Server error while fetching tables.")
		return
	}

	httpresp.List(c, tables)
}

// SetStatus toggles a table between available and maintenance.
func (h *TableHandler) SetStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid table id.")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	if req.Status != models.TableAvailable && req.Status != models.TableMaintenance {
		httperr.BadRequest(c, "invalid_status", "Status must be available or maintenance.")
		return
	}

	ctx := c.Request.Context()

	var table models.Table
	if err := h.db.WithContext(ctx).First(&table, id).Error; err != nil {
		httperr.NotFound(c, "table_not_found", "Table not found.")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&table).
		Update("status", req.Status).Error; err != nil {
		httperr.Internal(c, "failed_to_update_table", "Server error while updating table.")
		return
	}

	c.JSON(200, gin.H{"success": true, "data": table})
}
