package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	staffingdomain "github.com/RanjitKuMallick/BitCrave/internal/domain/staffing"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/httpresp"
	"github.com/RanjitKuMallick/BitCrave/internal/middleware"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
	ucStaff "github.com/RanjitKuMallick/BitCrave/internal/usecase/staff"
)

// ======================================================
// HANDLER
// ======================================================

type StaffHandler struct {
	db       *gorm.DB
	staffing staffingdomain.Repository

	assignUC       *ucStaff.AssignTable
	unassignUC     *ucStaff.UnassignTable
	reservationsUC *ucStaff.StaffReservations
}

func NewStaffHandler(
	db *gorm.DB,
	staffing staffingdomain.Repository,
	assignUC *ucStaff.AssignTable,
	unassignUC *ucStaff.UnassignTable,
	reservationsUC *ucStaff.StaffReservations,
) *StaffHandler {
	return &StaffHandler{
		db:             db,
		staffing:       staffing,
		assignUC:       assignUC,
		unassignUC:     unassignUC,
		reservationsUC: reservationsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StaffLoginRequest struct {
	StaffID  int    `json:"staff_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TableAssignmentRequest struct {
	StaffID      int    `json:"staff_id" binding:"required"`
	TableNumber  string `json:"table_number" binding:"required"`
	AssignedDate string `json:"assigned_date" binding:"required"`
}

type StaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Status   string `json:"status"`
	Password string `json:"password" binding:"required,min=6"`
}

// ======================================================
// LOGIN
// ======================================================

func (h *StaffHandler) Login(c *gin.Context) {
	var req StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Staff ID and password are required.")
		return
	}

	staff, err := h.staffing.GetStaffByBadge(c.Request.Context(), req.StaffID)
	if err != nil || staff.Status != "active" {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid staff ID or inactive account.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(staff.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid password.")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"staff": gin.H{
			"id":       staff.ID,
			"staff_id": staff.StaffID,
			"name":     staff.Name,
			"email":    staff.Email,
		},
	})
}

// ======================================================
// STAFF VIEW
// ======================================================

func (h *StaffHandler) AssignedTables(c *gin.Context) {
	badge, err := strconv.Atoi(c.Param("staff_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}

	staff, err := h.staffing.GetStaffByBadge(c.Request.Context(), badge)
	if err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	tables, err := h.staffing.ListAssignedTablesForDate(
		c.Request.Context(),
		staff.ID,
		todayDate(),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_assignments", "Server error while fetching assigned tables.")
		return
	}

	c.JSON(200, gin.H{"success": true, "assignedTables": tables})
}

func (h *StaffHandler) Reservations(c *gin.Context) {
	badge, err := strconv.Atoi(c.Param("staff_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}

	result, err := h.reservationsUC.Execute(c.Request.Context(), badge)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_list_reservations", "Server error while fetching reservations.")
		return
	}

	c.JSON(200, gin.H{
		"success":        true,
		"count":          len(result.Reservations),
		"data":           result.Reservations,
		"assignedTables": result.AssignedTables,
	})
}

// ======================================================
// ASSIGN / UNASSIGN (admin)
// ======================================================

func (h *StaffHandler) AssignTable(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req TableAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Staff ID, table number, and date are required.")
		return
	}

	if err := h.assignUC.Execute(
		c.Request.Context(),
		adminID,
		req.StaffID,
		req.TableNumber,
		req.AssignedDate,
	); err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_assign_table", "Server error while assigning table.")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Table " + req.TableNumber + " assigned for " + req.AssignedDate,
	})
}

func (h *StaffHandler) UnassignTable(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req TableAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Staff ID, table number, and date are required.")
		return
	}

	if err := h.unassignUC.Execute(
		c.Request.Context(),
		adminID,
		req.StaffID,
		req.TableNumber,
		req.AssignedDate,
	); err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_unassign_table", "Server error while unassigning table.")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Table " + req.TableNumber + " unassigned",
	})
}

// ======================================================
// DIRECTORY (admin)
// ======================================================

func (h *StaffHandler) List(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Server error while fetching staff.")
		return
	}

	httpresp.OK(c, staff)
}

type staffRoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

func staffStatsPayload(total, active int64, byRole []staffRoleCount) gin.H {
	if byRole == nil {
		byRole = []staffRoleCount{}
	}
	return gin.H{
		"total":  total,
		"active": active,
		"byRole": byRole,
	}
}

func (h *StaffHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var total, active int64
	if err := h.db.WithContext(ctx).Model(&models.Staff{}).
		Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_stats", "Server error while fetching staff statistics.")
		return
	}

	h.db.WithContext(ctx).Model(&models.Staff{}).
		Where("status = ?", "active").Count(&active)

	var byRole []staffRoleCount
	h.db.WithContext(ctx).Model(&models.Staff{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&byRole)

	c.JSON(200, gin.H{
		"success": true,
		"stats":   staffStatsPayload(total, active, byRole),
	})
}

func (h *StaffHandler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("staff_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid staff id.")
		return
	}

	var staff models.Staff
	if err := h.db.WithContext(c.Request.Context()).First(&staff, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	httpresp.OK(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email, phone, role, and password are required.")
		return
	}

	ctx := c.Request.Context()

	var count int64
	h.db.WithContext(ctx).Model(&models.Staff{}).
		Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Server error while creating staff member.")
		return
	}

	// next badge number
	var maxBadge int
	h.db.WithContext(ctx).Model(&models.Staff{}).
		Select("COALESCE(MAX(staff_id), 0)").Scan(&maxBadge)

	status := req.Status
	if status == "" {
		status = "active"
	}

	staff := models.Staff{
		StaffID:      maxBadge + 1,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Status:       status,
		PasswordHash: string(hashed),
	}

	if err := h.db.WithContext(ctx).Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Server error while creating staff member.")
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Staff member created successfully",
		"data":    staff,
	})
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("staff_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid staff id.")
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Phone  *string `json:"phone"`
		Role   *string `json:"role"`
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ctx := c.Request.Context()

	var staff models.Staff
	if err := h.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	if req.Email != nil {
		var count int64
		h.db.WithContext(ctx).Model(&models.Staff{}).
			Where("email = ? AND id <> ?", *req.Email, id).Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "email_already_exists", "Email already exists.")
			return
		}
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) > 0 {
		if err := h.db.WithContext(ctx).
			Model(&staff).
			Updates(fields).Error; err != nil {
			httperr.Internal(c, "failed_to_update_staff", "Server error while updating staff member.")
			return
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Staff member updated successfully",
		"data":    staff,
	})
}

func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("staff_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid staff id.")
		return
	}

	ctx := c.Request.Context()

	var staff models.Staff
	if err := h.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	// assignments go first, then the member
	h.db.WithContext(ctx).
		Where("staff_id = ?", staff.ID).
		Delete(&models.StaffTableAssignment{})

	if err := h.db.WithContext(ctx).Delete(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Server error while deleting staff member.")
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Staff member deleted successfully",
	})
}
