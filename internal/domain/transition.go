package domain

import (
	"errors"
	"fmt"
)

// Action is a named request to move a room from one status to another.
type Action string

const (
	ActionAssignHouseUse      Action = "assign_house_use"
	ActionCheckout            Action = "checkout"
	ActionStartCleaning       Action = "start_cleaning"
	ActionFinishCleaning      Action = "finish_cleaning"
	ActionApprove             Action = "approve"
	ActionLightMaintenance    Action = "light_maintenance"
	ActionHeavyMaintenance    Action = "heavy_maintenance"
	ActionCompleteMaintenance Action = "complete_maintenance"
)

var ErrInvalidTransition = errors.New("invalid transition")

// Transition is a single allowed edge in the room status state machine.
type Transition struct {
	From    RoomStatus
	Action  Action
	To      RoomStatus
	Channel Channel
}

// transitions is the fixed lookup table. It is never mutated at runtime;
// every status change a room can undergo is one of these edges.
var transitions = []Transition{
	{From: StatusClean, Action: ActionAssignHouseUse, To: StatusHouseUse, Channel: ChannelFrontOffice},
	{From: StatusHouseUse, Action: ActionCheckout, To: StatusDirty, Channel: ChannelFrontOffice},

	// Housekeeping cycle
	{From: StatusDirty, Action: ActionStartCleaning, To: StatusMakeUpRoom, Channel: ChannelHousekeeping},
	{From: StatusMakeUpRoom, Action: ActionFinishCleaning, To: StatusInspected, Channel: ChannelHousekeeping},
	{From: StatusInspected, Action: ActionApprove, To: StatusClean, Channel: ChannelHousekeeping},

	// Maintenance branches
	{From: StatusClean, Action: ActionLightMaintenance, To: StatusOutOfService, Channel: ChannelMaintenance},
	{From: StatusDirty, Action: ActionLightMaintenance, To: StatusOutOfService, Channel: ChannelMaintenance},
	{From: StatusClean, Action: ActionHeavyMaintenance, To: StatusOutOfOrder, Channel: ChannelMaintenance},
	{From: StatusDirty, Action: ActionHeavyMaintenance, To: StatusOutOfOrder, Channel: ChannelMaintenance},
	{From: StatusOutOfService, Action: ActionCompleteMaintenance, To: StatusDirty, Channel: ChannelMaintenance},
	{From: StatusOutOfOrder, Action: ActionCompleteMaintenance, To: StatusDirty, Channel: ChannelMaintenance},
}

// TransitionFor returns the allowed transition for a given status+action.
func TransitionFor(from RoomStatus, action Action) (Transition, bool) {
	for _, tr := range transitions {
		if tr.From == from && tr.Action == action {
			return tr, true
		}
	}
	return Transition{}, false
}

// Apply resolves the new status for applying action to the current status.
// The lookup is pure and deterministic; callers are responsible for
// persisting the result together with a history entry.
func Apply(from RoomStatus, action Action) (RoomStatus, error) {
	tr, ok := TransitionFor(from, action)
	if !ok {
		return from, fmt.Errorf("%w: action %q not allowed from status %q", ErrInvalidTransition, action, from)
	}
	return tr.To, nil
}

// ActionsFrom returns the set of legal actions for the current status,
// in table order. The UI uses this to decide which buttons to show.
func ActionsFrom(from RoomStatus) []Action {
	var out []Action
	for _, tr := range transitions {
		if tr.From == from {
			out = append(out, tr.Action)
		}
	}
	return out
}

// ChannelFor returns the workflow channel a given action belongs to.
// Unknown actions fall back to the system channel.
func ChannelFor(action Action) Channel {
	for _, tr := range transitions {
		if tr.Action == action {
			return tr.Channel
		}
	}
	return ChannelSystem
}
