package staff

import (
	"context"

	"github.com/RanjitKuMallick/BitCrave/internal/audit"
	domain "github.com/RanjitKuMallick/BitCrave/internal/domain/staffing"
	"github.com/RanjitKuMallick/BitCrave/internal/httperr"
)

type AssignTable struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAssignTable(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AssignTable {
	return &AssignTable{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AssignTable) Execute(
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

	exists, err := uc.repo.TableExists(ctx, tableNumber)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrBusiness("table_not_found")
	}

	if err := uc.repo.UpsertAssignment(
		ctx,
		staff.ID,
		tableNumber,
		assignedDate,
	); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID: &adminID,
		Action:  "table_assigned",
		Entity:  "staff_table_assignment",
		Metadata: map[string]any{
			"staff_id": badge,
			"table":    tableNumber,
			"date":     assignedDate,
		},
	})

	return nil
}
