package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RanjitKuMallick/BitCrave/internal/infra/repository"
)

// The insert path recognizes a lost slot race by the constraint name on
// the 23505 error, so the DDL and the check must agree on it.
func TestSlotIndexMatchesConflictConstraint(t *testing.T) {
	assert.Contains(t, slotIndexDDL, "CREATE UNIQUE INDEX")
	assert.Contains(t, slotIndexDDL, repository.SlotTableConstraint)
	assert.Contains(t, slotIndexDDL, "status <> 'Cancelled'")
	assert.Contains(t, slotIndexDDL, "table_number <> ''")
}
