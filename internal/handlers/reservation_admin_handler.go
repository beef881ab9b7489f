package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/httpresp"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

// Read-only reservation listings and reporting. Plain queries, no
// lifecycle rules involved.

type ReservationQueryHandler struct {
	db *gorm.DB
}

func NewReservationQueryHandler(db *gorm.DB) *ReservationQueryHandler {
	return &ReservationQueryHandler{db: db}
}

// ======================================================
// LIST (admin, filterable)
// ======================================================

func (h *ReservationQueryHandler) List(c *gin.Context) {
	date := c.Query("date")
	status := c.Query("status")
	search := c.Query("search")

	q := h.db.WithContext(c.Request.Context()).Model(&models.Reservation{})

	if date != "" {
		q = q.Where("date = ?", date)
	}

	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	if search != "" {
		term := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", term, term, term)
	}

	var rows []models.Reservation
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Server error while fetching reservations.")
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// BY EMAIL (customer "my reservations")
// ======================================================

func (h *ReservationQueryHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "missing_email", "Email is required to fetch user reservations.")
		return
	}

	var rows []models.Reservation
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		Order("date DESC, time DESC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Server error while fetching user reservations.")
		return
	}

	httpresp.OK(c, rows)
}

// ======================================================
// TODAY / RANGE
// ======================================================

func (h *ReservationQueryHandler) ListToday(c *gin.Context) {
	var rows []models.Reservation
	if err := h.db.WithContext(c.Request.Context()).
		Where("date = ?", todayDate()).
		Order("time ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Server error while fetching today's reservations.")
		return
	}

	httpresp.List(c, rows)
}

func (h *ReservationQueryHandler) ListByDateRange(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if startDate == "" || endDate == "" {
		httperr.BadRequest(c, "missing_date_range", "Start date and end date are required.")
		return
	}

	if !isValidDate(startDate) || !isValidDate(endDate) {
		httperr.BadRequest(c, "invalid_date", "Dates must use YYYY-MM-DD.")
		return
	}

	var rows []models.Reservation
	if err := h.db.WithContext(c.Request.Context()).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date ASC, time ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Server error while fetching reservations.")
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// STATS
// ======================================================

func (h *ReservationQueryHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var total, today, pending, confirmed int64

	if err := h.db.WithContext(ctx).Model(&models.Reservation{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_fetch_stats", "Server error while fetching statistics.")
		return
	}

	h.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("date = ?", todayDate()).Count(&today)
	h.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("status = ?", string(domain.StatusPending)).Count(&pending)
	h.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("status = ?", string(domain.StatusConfirmed)).Count(&confirmed)

	c.JSON(200, gin.H{
		"success": true,
		"stats": gin.H{
			"total":     total,
			"today":     today,
			"pending":   pending,
			"confirmed": confirmed,
		},
	})
}

// ======================================================
// CONFIRMED + UNPAID (global staff view)
// ======================================================

func (h *ReservationQueryHandler) ListConfirmedUnpaid(c *gin.Context) {
	var rows []models.Reservation
	if err := h.db.WithContext(c.Request.Context()).
		Where("status = ?", string(domain.StatusConfirmed)).
		Where("(payment_status IS NULL OR payment_status <> ?)", string(domain.PaymentPaid)).
		Order("date DESC, time ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Server error while fetching confirmed reservations.")
		return
	}

	httpresp.List(c, rows)
}
