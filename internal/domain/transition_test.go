package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyAllowedEdges(t *testing.T) {
	cases := []struct {
		from   RoomStatus
		action Action
		want   RoomStatus
	}{
		{StatusClean, ActionAssignHouseUse, StatusHouseUse},
		{StatusHouseUse, ActionCheckout, StatusDirty},
		{StatusDirty, ActionStartCleaning, StatusMakeUpRoom},
		{StatusMakeUpRoom, ActionFinishCleaning, StatusInspected},
		{StatusInspected, ActionApprove, StatusClean},
		{StatusClean, ActionLightMaintenance, StatusOutOfService},
		{StatusDirty, ActionLightMaintenance, StatusOutOfService},
		{StatusClean, ActionHeavyMaintenance, StatusOutOfOrder},
		{StatusDirty, ActionHeavyMaintenance, StatusOutOfOrder},
		{StatusOutOfService, ActionCompleteMaintenance, StatusDirty},
		{StatusOutOfOrder, ActionCompleteMaintenance, StatusDirty},
	}

	for _, tc := range cases {
		got, err := Apply(tc.from, tc.action)
		assert.NoError(t, err, "from=%s action=%s", tc.from, tc.action)
		assert.Equal(t, tc.want, got)
	}
}

func TestApplyRejectsUndefinedEdges(t *testing.T) {
	cases := []struct {
		from   RoomStatus
		action Action
	}{
		{StatusOutOfOrder, ActionStartCleaning},
		{StatusInspected, ActionCheckout},
		{StatusHouseUse, ActionAssignHouseUse},
		{StatusMakeUpRoom, ActionHeavyMaintenance},
		{StatusClean, Action("open_window")},
	}

	for _, tc := range cases {
		got, err := Apply(tc.from, tc.action)
		assert.ErrorIs(t, err, ErrInvalidTransition, "from=%s action=%s", tc.from, tc.action)
		// The status echoed back is the unchanged input.
		assert.Equal(t, tc.from, got)
	}
}

func TestApplyRejectionIsStable(t *testing.T) {
	_, err1 := Apply(StatusOutOfOrder, ActionStartCleaning)
	_, err2 := Apply(StatusOutOfOrder, ActionStartCleaning)
	assert.True(t, errors.Is(err1, ErrInvalidTransition))
	assert.True(t, errors.Is(err2, ErrInvalidTransition))
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestActionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]Action{ActionAssignHouseUse, ActionLightMaintenance, ActionHeavyMaintenance},
		ActionsFrom(StatusClean),
	)
	assert.ElementsMatch(t,
		[]Action{ActionStartCleaning, ActionLightMaintenance, ActionHeavyMaintenance},
		ActionsFrom(StatusDirty),
	)
	assert.ElementsMatch(t, []Action{ActionCompleteMaintenance}, ActionsFrom(StatusOutOfOrder))
	assert.ElementsMatch(t, []Action{ActionApprove}, ActionsFrom(StatusInspected))
}

func TestEveryEdgeStaysInsideEnum(t *testing.T) {
	for _, tr := range transitions {
		assert.True(t, tr.From.Valid(), "from %q", tr.From)
		assert.True(t, tr.To.Valid(), "to %q", tr.To)
		assert.NotEqual(t, tr.From, tr.To, "edge %q is a self loop", tr.Action)
	}
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, ChannelFrontOffice, ChannelFor(ActionCheckout))
	assert.Equal(t, ChannelHousekeeping, ChannelFor(ActionApprove))
	assert.Equal(t, ChannelMaintenance, ChannelFor(ActionCompleteMaintenance))
	assert.Equal(t, ChannelSystem, ChannelFor(Action("bogus")))
}
