package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
)

type attendanceFixture struct {
	svc            *AttendanceService
	attendanceRepo *memAttendanceRepo
	leaveRepo      *memLeaveRepo
	correctionRepo *memCorrectionRepo
}

func newAttendanceFixture() *attendanceFixture {
	f := &attendanceFixture{
		attendanceRepo: &memAttendanceRepo{},
		leaveRepo:      newMemLeaveRepo(),
		correctionRepo: newMemCorrectionRepo(),
	}
	f.svc = NewAttendanceService(f.attendanceRepo, f.leaveRepo, f.correctionRepo, nopLogger{})
	return f
}

func TestAttendanceServiceRecord(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "usr-1", Name: "Maria", Role: "User"}

	t.Run("grava evento de ponto para o requisitante", func(t *testing.T) {
		f := newAttendanceFixture()

		event, err := f.svc.Record(ctx, actor, entities.AttendanceLogin, "chegou cedo")
		require.NoError(t, err)
		assert.Equal(t, "usr-1", event.UserID)
		assert.False(t, event.Timestamp.IsZero())
		assert.Len(t, f.attendanceRepo.events, 1)
	})

	t.Run("ação fora do enum é erro de validação", func(t *testing.T) {
		f := newAttendanceFixture()

		_, err := f.svc.Record(ctx, actor, entities.AttendanceAction("lunch"), "")
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
		assert.Empty(t, f.attendanceRepo.events)
	})
}

func TestAttendanceServiceBuildReport(t *testing.T) {
	ctx := context.Background()

	seed := func(f *attendanceFixture, userID string, ts time.Time) {
		f.attendanceRepo.events = append(f.attendanceRepo.events, &entities.AttendanceEvent{
			UserID: userID, Action: entities.AttendanceLogin, Timestamp: ts,
		})
	}

	t.Run("month tem precedência sobre start e end", func(t *testing.T) {
		f := newAttendanceFixture()
		seed(f, "usr-1", time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local))
		seed(f, "usr-1", time.Date(2026, 4, 2, 9, 0, 0, 0, time.Local))

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
		end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local)
		report, err := f.svc.BuildReport(ctx, ReportInput{Month: "2026-03", Start: &start, End: &end})
		require.NoError(t, err)
		assert.Equal(t, 1, report.Count)
		assert.Equal(t, time.March, report.Start.Month())
		assert.Equal(t, time.March, report.End.Month())
	})

	t.Run("month malformado é rejeitado", func(t *testing.T) {
		f := newAttendanceFixture()

		_, err := f.svc.BuildReport(ctx, ReportInput{Month: "março"})
		assert.Error(t, err)
	})

	t.Run("sem filtros o intervalo abre desde a época até agora", func(t *testing.T) {
		f := newAttendanceFixture()
		seed(f, "usr-1", time.Now().Add(-time.Hour))

		report, err := f.svc.BuildReport(ctx, ReportInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, report.Count)
	})

	t.Run("filtro por usuário limita as entradas", func(t *testing.T) {
		f := newAttendanceFixture()
		seed(f, "usr-1", time.Now().Add(-time.Hour))
		seed(f, "usr-2", time.Now().Add(-time.Hour))

		userID := "usr-2"
		report, err := f.svc.BuildReport(ctx, ReportInput{UserID: &userID})
		require.NoError(t, err)
		require.Equal(t, 1, report.Count)
		assert.Equal(t, "usr-2", report.Entries[0].UserID)
	})
}

func TestAttendanceServiceLeaveWorkflow(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "usr-1", Name: "Maria", Role: "User"}
	approver := Actor{ID: "usr-9", Name: "Chefe", Role: "Admin"}

	submit := func(t *testing.T, f *attendanceFixture) *entities.LeaveRequest {
		t.Helper()
		req, err := f.svc.SubmitLeave(ctx, actor,
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			"family trip")
		require.NoError(t, err)
		return req
	}

	t.Run("solicitação nasce pendente", func(t *testing.T) {
		f := newAttendanceFixture()

		req := submit(t, f)
		assert.Equal(t, entities.RequestPending, req.Status)
		assert.Equal(t, "usr-1", req.UserID)
	})

	t.Run("sem motivo é erro de validação", func(t *testing.T) {
		f := newAttendanceFixture()

		_, err := f.svc.SubmitLeave(ctx, actor,
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), "")
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
	})

	t.Run("aprovação registra aprovador e nota", func(t *testing.T) {
		f := newAttendanceFixture()
		req := submit(t, f)

		decided, err := f.svc.DecideLeave(ctx, approver, req.ID, true, "enjoy")
		require.NoError(t, err)
		assert.Equal(t, entities.RequestApproved, decided.Status)
		assert.Equal(t, "usr-9", decided.ApproverID)
		assert.Equal(t, "enjoy", decided.DecisionNote)
	})

	t.Run("rejeição registra o status rejeitado", func(t *testing.T) {
		f := newAttendanceFixture()
		req := submit(t, f)

		decided, err := f.svc.DecideLeave(ctx, approver, req.ID, false, "short staffed")
		require.NoError(t, err)
		assert.Equal(t, entities.RequestRejected, decided.Status)
	})

	t.Run("solicitação decidida sai da fila de pendentes", func(t *testing.T) {
		f := newAttendanceFixture()
		req := submit(t, f)

		_, err := f.svc.DecideLeave(ctx, approver, req.ID, true, "")
		require.NoError(t, err)

		pending, err := f.svc.PendingLeaves(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)

		mine, err := f.svc.MyLeaves(ctx, actor)
		require.NoError(t, err)
		assert.Len(t, mine, 1)
	})

	t.Run("solicitação inexistente responde not found", func(t *testing.T) {
		f := newAttendanceFixture()

		_, err := f.svc.DecideLeave(ctx, approver, "leave-ghost", true, "")
		assert.ErrorIs(t, err, errors.ErrRequestNotFound)
	})
}

func TestAttendanceServiceCorrectionWorkflow(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "usr-1", Name: "Maria", Role: "User"}
	approver := Actor{ID: "usr-9", Name: "Chefe", Role: "Admin"}

	clockIn := time.Date(2026, 8, 20, 8, 55, 0, 0, time.UTC)

	t.Run("pedido nasce pendente", func(t *testing.T) {
		f := newAttendanceFixture()

		corr, err := f.svc.SubmitCorrection(ctx, actor, SubmitCorrectionInput{
			Date:       time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			NewClockIn: &clockIn,
			Reason:     "forgot badge",
		})
		require.NoError(t, err)
		assert.Equal(t, entities.RequestPending, corr.Status)
	})

	t.Run("pedido sem horário corrigido é erro de validação", func(t *testing.T) {
		f := newAttendanceFixture()

		_, err := f.svc.SubmitCorrection(ctx, actor, SubmitCorrectionInput{
			Date:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			Reason: "forgot badge",
		})
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
	})

	t.Run("decisão transita o pedido e limpa a fila", func(t *testing.T) {
		f := newAttendanceFixture()
		corr, err := f.svc.SubmitCorrection(ctx, actor, SubmitCorrectionInput{
			Date:       time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			NewClockIn: &clockIn,
			Reason:     "forgot badge",
		})
		require.NoError(t, err)

		decided, err := f.svc.DecideCorrection(ctx, approver, corr.ID, false, "no evidence")
		require.NoError(t, err)
		assert.Equal(t, entities.RequestRejected, decided.Status)

		pending, err := f.svc.PendingCorrections(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("pedido inexistente responde not found", func(t *testing.T) {
		f := newAttendanceFixture()

		_, err := f.svc.DecideCorrection(ctx, approver, "corr-ghost", true, "")
		assert.ErrorIs(t, err, errors.ErrRequestNotFound)
	})
}
