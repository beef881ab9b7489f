package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	"github.com/RanjitKuMallick/BitCrave/internal/config"
	"github.com/RanjitKuMallick/BitCrave/internal/handlers"
	infraRepo "github.com/RanjitKuMallick/BitCrave/internal/infra/repository"
	"github.com/RanjitKuMallick/BitCrave/internal/middleware"
	"github.com/RanjitKuMallick/BitCrave/internal/session"
	ucReservation "github.com/RanjitKuMallick/BitCrave/internal/usecase/reservation"
	ucStaff "github.com/RanjitKuMallick/BitCrave/internal/usecase/staff"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	sessions *session.Store,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	staffingRepo := infraRepo.NewStaffingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)
	confirmReservationUC := ucReservation.NewConfirmReservation(
		reservationRepo,
		auditDispatcher,
	)
	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
	)
	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		auditDispatcher,
	)
	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		auditDispatcher,
	)
	slotAvailabilityUC := ucReservation.NewSlotAvailability(reservationRepo)
	tableAvailabilityUC := ucReservation.NewTableAvailability(reservationRepo)

	// ======================================================
	// USE CASES — STAFF ASSIGNMENT
	// ======================================================
	assignTableUC := ucStaff.NewAssignTable(staffingRepo, auditDispatcher)
	unassignTableUC := ucStaff.NewUnassignTable(staffingRepo, auditDispatcher)
	staffReservationsUC := ucStaff.NewStaffReservations(staffingRepo, reservationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)

	reservationHandler := handlers.NewReservationHandler(
		db,
		createReservationUC,
		confirmReservationUC,
		cancelReservationUC,
		updateReservationUC,
		deleteReservationUC,
		slotAvailabilityUC,
		tableAvailabilityUC,
	)
	reservationQueryHandler := handlers.NewReservationQueryHandler(db)

	staffHandler := handlers.NewStaffHandler(
		db,
		staffingRepo,
		assignTableUC,
		unassignTableUC,
		staffReservationsUC,
	)

	tableHandler := handlers.NewTableHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	adminAuth := middleware.AdminAuthMiddleware(cfg, sessions)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", adminAuth, authHandler.Logout)

		// ------------------------------
		// RESERVATIONS
		// ------------------------------
		reservations := api.Group("/reservations")
		{
			// public
			reservations.POST("/", reservationHandler.Create)
			reservations.GET("/availability", reservationHandler.SlotAvailability)
			reservations.GET("/check-availability", reservationHandler.CheckTableAvailability)
			reservations.GET("/tables/available", reservationHandler.AvailableTables)
			reservations.GET("/user", reservationQueryHandler.ListByEmail)
			reservations.GET("/staff/confirmed", reservationQueryHandler.ListConfirmedUnpaid)

			// admin
			reservations.GET("/", adminAuth, reservationQueryHandler.List)
			reservations.GET("/stats/overview", adminAuth, reservationQueryHandler.Stats)
			reservations.GET("/today/list", adminAuth, reservationQueryHandler.ListToday)
			reservations.GET("/range/search", adminAuth, reservationQueryHandler.ListByDateRange)
			reservations.PATCH("/:id/confirm", adminAuth, reservationHandler.Confirm)
			reservations.PATCH("/:id/cancel", adminAuth, reservationHandler.Cancel)
			reservations.DELETE("/:id", adminAuth, reservationHandler.Delete)

			// public update (staff payment / order-item edits) and read;
			// parameterized routes stay last
			reservations.PUT("/:id", reservationHandler.Update)
			reservations.GET("/:id", reservationHandler.GetByID)
		}

		// ------------------------------
		// STAFF
		// ------------------------------
		staff := api.Group("/staff")
		{
			staff.POST("/login", staffHandler.Login)
			staff.GET("/:staff_id/tables", staffHandler.AssignedTables)
			staff.GET("/:staff_id/reservations", staffHandler.Reservations)

			staff.POST("/assign-table", adminAuth, staffHandler.AssignTable)
			staff.DELETE("/unassign-table", adminAuth, staffHandler.UnassignTable)
			staff.GET("/", adminAuth, staffHandler.List)
			staff.GET("/stats/overview", adminAuth, staffHandler.Stats)
			staff.POST("/", adminAuth, staffHandler.Create)
			staff.GET("/:staff_id/profile", adminAuth, staffHandler.GetByID)
			staff.PUT("/:staff_id", adminAuth, staffHandler.Update)
			staff.DELETE("/:staff_id", adminAuth, staffHandler.Delete)
		}

		// ------------------------------
		// TABLES
		// ------------------------------
		tables := api.Group("/tables")
		tables.Use(adminAuth)
		{
			tables.GET("/", tableHandler.List)
			tables.PATCH("/:id/status", tableHandler.SetStatus)
		}

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", adminAuth, auditLogsHandler.List)
	}
}
