package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/reservation"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
	"github.com/RanjitKuMallick/BitCrave/internal/middleware"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
	ucReservation "github.com/RanjitKuMallick/BitCrave/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db *gorm.DB

	createUC  *ucReservation.CreateReservation
	confirmUC *ucReservation.ConfirmReservation
	cancelUC  *ucReservation.CancelReservation
	updateUC  *ucReservation.UpdateReservation
	deleteUC  *ucReservation.DeleteReservation

	slotAvailabilityUC  *ucReservation.SlotAvailability
	tableAvailabilityUC *ucReservation.TableAvailability
}

func NewReservationHandler(
	db *gorm.DB,
	createUC *ucReservation.CreateReservation,
	confirmUC *ucReservation.ConfirmReservation,
	cancelUC *ucReservation.CancelReservation,
	updateUC *ucReservation.UpdateReservation,
	deleteUC *ucReservation.DeleteReservation,
	slotAvailabilityUC *ucReservation.SlotAvailability,
	tableAvailabilityUC *ucReservation.TableAvailability,
) *ReservationHandler {
	return &ReservationHandler{
		db:                  db,
		createUC:            createUC,
		confirmUC:           confirmUC,
		cancelUC:            cancelUC,
		updateUC:            updateUC,
		deleteUC:            deleteUC,
		slotAvailabilityUC:  slotAvailabilityUC,
		tableAvailabilityUC: tableAvailabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Name            string         `json:"name" binding:"required"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Date            string         `json:"date" binding:"required"`
	Time            string         `json:"time" binding:"required"`
	People          int            `json:"people" binding:"required"`
	SpecialRequests string         `json:"special_requests"`
	OrderItems      datatypes.JSON `json:"order_items"`
}

type UpdateReservationRequest struct {
	Name          *string         `json:"name"`
	Email         *string         `json:"email"`
	Phone         *string         `json:"phone"`
	Date          *string         `json:"date"`
	Time          *string         `json:"time"`
	People        *int            `json:"people"`
	Message       *string         `json:"message"`
	OrderItems    *datatypes.JSON `json:"order_items"`
	Feedback      *string         `json:"feedback"`
	Status        *string         `json:"status"`
	PaymentStatus *string         `json:"payment_status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Name, date, time, and number of people are required.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Date:       req.Date,
		Time:       req.Time,
		People:     req.People,
		Message:    req.SpecialRequests,
		OrderItems: req.OrderItems,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_reservation", "Server error while creating reservation.")
		return
	}

	c.JSON(201, gin.H{
		"message":       "Reservation created successfully",
		"reservationId": res.ID,
		"assignedTable": res.TableNumber,
		"reservation":   res,
	})
}

// ======================================================
// READ
// ======================================================

func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	var res models.Reservation
	if err := h.db.WithContext(c.Request.Context()).First(&res, id).Error; err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return
	}

	c.JSON(200, gin.H{"success": true, "data": res})
}

// ======================================================
// UPDATE (partial, public for staff payment/order edits)
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	patch := domain.Patch{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Date:          req.Date,
		Time:          req.Time,
		People:        req.People,
		Message:       req.Message,
		OrderItems:    req.OrderItems,
		Feedback:      req.Feedback,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	}

	res, err := h.updateUC.Execute(c.Request.Context(), id, patch)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_reservation", "Server error while updating reservation.")
		return
	}

	c.JSON(200, gin.H{
		"message":       "Reservation updated successfully",
		"reservationId": res.ID,
		"reservation":   res,
	})
}

// ======================================================
// DELETE (admin)
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID, id); err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_delete_reservation", "Server error while deleting reservation.")
		return
	}

	c.JSON(200, gin.H{
		"message":       "Reservation deleted successfully",
		"reservationId": id,
	})
}

// ======================================================
// CONFIRM / CANCEL (admin)
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	res, err := h.confirmUC.Execute(c.Request.Context(), adminID, id)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_confirm_reservation", "Server error while confirming reservation.")
		return
	}

	c.JSON(200, gin.H{
		"message":       "Reservation confirmed successfully",
		"reservationId": res.ID,
		"assignedTable": res.TableNumber,
	})
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	res, err := h.cancelUC.Execute(c.Request.Context(), adminID, id)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_reservation", "Server error while cancelling reservation.")
		return
	}

	c.JSON(200, gin.H{
		"message":       "Reservation cancelled successfully",
		"reservationId": res.ID,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ReservationHandler) SlotAvailability(c *gin.Context) {
	date := c.Query("date")
	slot := c.Query("time")

	if date == "" || slot == "" {
		httperr.BadRequest(c, "missing_date_or_time", "Date and time are required.")
		return
	}

	result, err := h.slotAvailabilityUC.Execute(c.Request.Context(), date, slot)
	if err != nil {
		httperr.Internal(c, "availability_check_failed", "Server error while checking availability.")
		return
	}

	c.JSON(200, gin.H{
		"success":         true,
		"date":            date,
		"time":            slot,
		"isAvailable":     result.IsAvailable,
		"currentBookings": result.CurrentBookings,
		"maxBookings":     result.MaxBookings,
	})
}

func (h *ReservationHandler) CheckTableAvailability(c *gin.Context) {
	date := c.Query("date")
	slot := c.Query("time")
	peopleStr := c.Query("people")

	if date == "" || slot == "" || peopleStr == "" {
		httperr.BadRequest(c, "missing_parameters", "Date, time, and number of people are required.")
		return
	}

	people, err := strconv.Atoi(peopleStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_party_size", "Number of people must be a number.")
		return
	}

	tables, err := h.tableAvailabilityUC.Execute(c.Request.Context(), date, slot, people)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "availability_check_failed", "Server error while checking table availability.")
		return
	}

	c.JSON(200, gin.H{
		"success":         true,
		"available":       len(tables) > 0,
		"availableTables": tables,
		"totalAvailable":  len(tables),
	})
}

// AvailableTables serves the registry-level listing. It runs the same
// capacity-tier selection as creation so the preview and the allocator
// can never disagree.
func (h *ReservationHandler) AvailableTables(c *gin.Context) {
	h.CheckTableAvailability(c)
}
