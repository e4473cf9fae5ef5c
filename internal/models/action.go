package models

import "time"

// ActionType defines the kinds of scheduled follow-up actions.
type ActionType string

const (
	ActionCallNow         ActionType = "CALL_NOW"
	ActionPushMeeting     ActionType = "PUSH_MEETING"
	ActionChangeFace      ActionType = "CHANGE_FACE"
	ActionRemindMeeting   ActionType = "REMIND_MEETING"
	ActionAskForReferrals ActionType = "ASK_FOR_REFERRALS"
	ActionNurture         ActionType = "NURTURE"
	ActionCheckInventory  ActionType = "CHECK_INVENTORY"
)

// ActionStatus defines the possible statuses for a scheduled action.
type ActionStatus string

const (
	ActionPending   ActionStatus = "pending"
	ActionDone      ActionStatus = "done"
	ActionCancelled ActionStatus = "cancelled"
)

// Action represents a follow-up task scheduled against a lead.
type Action struct {
	ID         int64             `json:"id"`
	LeadID     int64             `json:"lead_id"`
	AssigneeID int64             `json:"assignee_id"`
	Type       ActionType        `json:"type"`
	Payload    map[string]string `json:"payload,omitempty"`
	Status     ActionStatus      `json:"status"`
	DueAt      *time.Time        `json:"due_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ActionFilter defines the available parameters for filtering actions.
type ActionFilter struct {
	AssigneeID *int64
	LeadID     *int64
	Status     *ActionStatus
	Type       *ActionType
}
