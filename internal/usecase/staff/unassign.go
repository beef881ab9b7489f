package staff

import (
	"context"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/staffing"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
)

type UnassignTable struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUnassignTable(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UnassignTable {
	return &UnassignTable{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UnassignTable) Execute(
	ctx context.Context,
	adminID uint,
	badge int,
	tableNumber string,
	assignedDate string,
) error {

	staff, err := uc.repo.GetStaffByBadge(ctx, badge)
	if err != nil {
		return httperr.ErrBusiness("staff_not_found")
	}

	removed, err := uc.repo.DeleteAssignment(
		ctx,
		staff.ID,
		tableNumber,
		assignedDate,
	)
	if err != nil {
		return err
	}
	if !removed {
		return httperr.ErrBusiness("assignment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		AdminID: &adminID,
		Action:  "table_unassigned",
		Entity:  "staff_table_assignment",
		Metadata: map[string]any{
			"staff_id": badge,
			"table":    tableNumber,
			"date":     assignedDate,
		},
	})

	return nil
}
