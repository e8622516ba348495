package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closedWithDifference возвращает кассу, закрытую с расхождением -5 ARS.
func closedWithDifference(t *testing.T) *Cashbox {
	t.Helper()
	cb := openCashbox(t, "100", "0")
	rec, err := Reconcile(cb, nil, Balances{ARS: dec("95")}, dayN(5))
	require.NoError(t, err)
	cb.ApplyClose(rec, dayN(5))
	return cb
}

func TestNewCashbox(t *testing.T) {
	cb, err := NewCashbox(3, Balances{ARS: dec("10")}, day0)
	require.NoError(t, err)
	assert.Equal(t, CashboxStatusOpen, cb.Status)
	assert.Nil(t, cb.ClosingDate)
	assert.Nil(t, cb.Closing)
	assert.Nil(t, cb.Difference)

	_, err = NewCashbox(3, Balances{ARS: dec("-1")}, day0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCashbox(0, Balances{}, day0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCashbox(3, Balances{}, time.Time{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCashbox_CheckAppend(t *testing.T) {
	t.Run("open accepts any kind in period", func(t *testing.T) {
		cb := openCashbox(t, "0", "0")
		for _, k := range []MovementKind{MovementKindIncome, MovementKindExpense, MovementKindRefill, MovementKindDifference} {
			require.NoError(t, cb.CheckAppend(ActionPostMovement, mv(0, k, DirectionCredit, "1", CurrencyARS, dayN(1))))
		}
	})

	t.Run("open rejects date before opening", func(t *testing.T) {
		cb := openCashbox(t, "0", "0")
		err := cb.CheckAppend(ActionRefill, mv(0, MovementKindRefill, DirectionCredit, "1", CurrencyARS, dayN(-1)))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("closed rejects refill", func(t *testing.T) {
		cb := closedWithDifference(t)
		cb.ApplyApprove(9, dayN(6))
		err := cb.CheckAppend(ActionRefill, mv(0, MovementKindRefill, DirectionCredit, "500", CurrencyARS, dayN(5)))
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, ActionRefill, cErr.Action)
	})

	t.Run("closed pending rejects adjustment", func(t *testing.T) {
		cb := closedWithDifference(t)
		adj, err := NewAdjustment(cb.ID, dec("5"), CurrencyARS, "found", dayN(5))
		require.NoError(t, err)
		err = cb.CheckAppend(ActionManualAdjustment, adj)
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, ApprovalStatePending, cErr.State)
	})

	t.Run("closed approved accepts adjustment", func(t *testing.T) {
		cb := closedWithDifference(t)
		cb.ApplyApprove(9, dayN(6))
		adj, err := NewAdjustment(cb.ID, dec("5"), CurrencyARS, "found", dayN(5))
		require.NoError(t, err)
		require.NoError(t, cb.CheckAppend(ActionManualAdjustment, adj))

		late, err := NewAdjustment(cb.ID, dec("5"), CurrencyARS, "found", dayN(6))
		require.NoError(t, err)
		assert.ErrorIs(t, cb.CheckAppend(ActionManualAdjustment, late), ErrValidation)
	})

	t.Run("closed without difference refuses adjustment", func(t *testing.T) {
		cb := openCashbox(t, "100", "0")
		rec, err := Reconcile(cb, nil, Balances{ARS: dec("100")}, dayN(5))
		require.NoError(t, err)
		cb.ApplyClose(rec, dayN(5))
		require.True(t, cb.DifferenceApproved)
		require.Equal(t, ApprovalStateNone, cb.ApprovalState())

		adj, err := NewAdjustment(cb.ID, dec("5"), CurrencyARS, "", dayN(5))
		require.NoError(t, err)
		var cErr *ConflictError
		require.ErrorAs(t, cb.CheckAppend(ActionManualAdjustment, adj), &cErr)
		assert.Equal(t, ApprovalStateNone, cErr.State)
	})

	t.Run("closed rejected refuses adjustment", func(t *testing.T) {
		cb := closedWithDifference(t)
		cb.ApplyReject("count again", dayN(6))
		adj, err := NewAdjustment(cb.ID, dec("5"), CurrencyARS, "", dayN(5))
		require.NoError(t, err)
		assert.ErrorIs(t, cb.CheckAppend(ActionManualAdjustment, adj), ErrConflict)
	})
}

func TestNewAdjustment(t *testing.T) {
	up, err := NewAdjustment(1, dec("12.5"), CurrencyUSD, "", day0)
	require.NoError(t, err)
	assert.Equal(t, DirectionCredit, up.Direction)
	assert.Equal(t, MovementKindDifference, up.Kind)
	assert.True(t, dec("12.5").Equal(up.Signed()))

	down, err := NewAdjustment(1, dec("-3"), CurrencyUSD, "", day0)
	require.NoError(t, err)
	assert.Equal(t, DirectionDebit, down.Direction)
	assert.True(t, dec("3").Equal(down.Amount))
	assert.True(t, dec("-3").Equal(down.Signed()))

	_, err = NewAdjustment(1, dec("0"), CurrencyUSD, "", day0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCashbox_CheckCorrect(t *testing.T) {
	cb := openCashbox(t, "0", "0")
	m := mv(10, MovementKindExpense, DirectionDebit, "5", CurrencyARS, dayN(1))
	require.NoError(t, cb.CheckCorrect(m))

	comp := Compensation(m, "wrong amount", dayN(0))
	assert.Equal(t, dayN(1), comp.EffectiveDate)
	assert.ErrorIs(t, cb.CheckCorrect(comp), ErrConflict)

	voided := m
	at := dayN(2)
	voided.VoidedAt = &at
	assert.ErrorIs(t, cb.CheckCorrect(voided), ErrConflict)

	foreign := m
	foreign.CashboxID = 99
	assert.ErrorIs(t, cb.CheckCorrect(foreign), ErrNotFound)

	closed := closedWithDifference(t)
	assert.ErrorIs(t, closed.CheckCorrect(m), ErrConflict)
}
