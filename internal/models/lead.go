package models

import "time"

// Stage is a named position in the sales pipeline. The set is closed:
// every stage has exactly one config entry in the pipeline catalog, and
// anything outside the set is rejected before it can touch a lead.
type Stage string

const (
	StageNewLead      Stage = "New Lead"
	StagePotential    Stage = "Potential"
	StageHotCase      Stage = "Hot Case"
	StageMeetingDone  Stage = "Meeting Done"
	StageEOI          Stage = "EOI"
	StageClosedDeal   Stage = "Closed Deal"
	StageNonPotential Stage = "Non Potential"
	StageLowBudget    Stage = "Low Budget"
	StageWrongNumber  Stage = "Wrong Number"
	StageNoAnswer     Stage = "No Answer"
	StageCallBack     Stage = "Call Back"
	StageWhatsapp     Stage = "Whatsapp"
	StageSwitchedOff  Stage = "Switched Off"
)

// AllStages lists the closed set in pipeline order.
var AllStages = []Stage{
	StageNewLead,
	StagePotential,
	StageHotCase,
	StageMeetingDone,
	StageEOI,
	StageClosedDeal,
	StageNonPotential,
	StageLowBudget,
	StageWrongNumber,
	StageNoAnswer,
	StageCallBack,
	StageWhatsapp,
	StageSwitchedOff,
}

// Lead represents a prospective buyer tracked through the pipeline.
type Lead struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Source    string    `json:"source"`
	Project   string    `json:"project"`
	Stage     Stage     `json:"stage"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StageData carries the inputs supplied alongside a stage change. Which
// fields are required depends on the target stage; everything present is
// written to the stage history regardless.
type StageData struct {
	Feedback           string     `json:"feedback,omitempty"`
	Budget             float64    `json:"budget,omitempty"`
	DownPayment        float64    `json:"down_payment,omitempty"`
	MonthlyInstallment float64    `json:"monthly_installment,omitempty"`
	MeetingDate        *time.Time `json:"meeting_date,omitempty"`
}

// StageHistory is the audit record written for every committed stage change.
type StageHistory struct {
	ID                 int64      `json:"id"`
	LeadID             int64      `json:"lead_id"`
	FromStage          Stage      `json:"from_stage"`
	ToStage            Stage      `json:"to_stage"`
	ActorID            int64      `json:"actor_id"`
	Feedback           string     `json:"feedback,omitempty"`
	Budget             float64    `json:"budget,omitempty"`
	DownPayment        float64    `json:"down_payment,omitempty"`
	MonthlyInstallment float64    `json:"monthly_installment,omitempty"`
	MeetingDate        *time.Time `json:"meeting_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
