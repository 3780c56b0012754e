package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

func TestReportServiceTicketSummary(t *testing.T) {
	ctx := context.Background()

	deleted := &entities.Ticket{
		ID: "tkt-3", AssigneeID: "usr-1", CreatedBy: "usr-1",
		Status: entities.StatusOpen, Priority: entities.PriorityHigh,
	}
	deleted.SoftDelete("usr-admin")

	repo := newMemTicketRepo(
		&entities.Ticket{ID: "tkt-1", Status: entities.StatusOpen, Priority: entities.PriorityHigh},
		&entities.Ticket{ID: "tkt-2", Status: entities.StatusOpen, Priority: entities.PriorityHigh},
		deleted,
	)
	svc := NewReportService(repo, nopLogger{})

	t.Run("agrega por status, prioridade e flag de deleção", func(t *testing.T) {
		rows, err := svc.TicketSummary(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		counts := make(map[bool]int64)
		for _, row := range rows {
			counts[row.Deleted] = row.Count
		}
		assert.Equal(t, int64(2), counts[false])
		assert.Equal(t, int64(1), counts[true])
	})

	t.Run("CSV carrega cabeçalho e uma linha por agregado", func(t *testing.T) {
		data, err := svc.TicketSummaryCSV(ctx)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "status,priority,isDeleted,count", lines[0])
		assert.Contains(t, string(data), "Open,High,false,2")
		assert.Contains(t, string(data), "Open,High,true,1")
	})
}
