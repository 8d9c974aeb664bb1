package leave

import "time"

const dateLayout = "2006-01-02"

type CreateLeaveRequest struct {
	TeacherID  uint    `json:"teacherId" binding:"required"`
	LeaveType  string  `json:"leaveType" binding:"required,oneof=casual sick duty other"`
	StartDate  string  `json:"startDate" binding:"required"`
	EndDate    string  `json:"endDate" binding:"required"`
	Days       int     `json:"days" binding:"min=1"`
	Reason     string  `json:"reason" binding:"min=5"`
	Status     string  `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	ApprovedBy *string `json:"approvedBy"`
	Notes      *string `json:"notes"`
}

type UpdateLeaveRequest struct {
	LeaveType  *string `json:"leaveType" binding:"omitempty,oneof=casual sick duty other"`
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
	Days       *int    `json:"days"`
	Reason     *string `json:"reason"`
	Status     *string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	ApprovedBy *string `json:"approvedBy"`
	Notes      *string `json:"notes"`
}

type LeaveResponse struct {
	ID          uint      `json:"id"`
	TeacherID   uint      `json:"teacherId"`
	LeaveType   string    `json:"leaveType"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Days        int       `json:"days"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	ApprovedBy  *string   `json:"approvedBy"`
	Notes       *string   `json:"notes"`
	SubmittedAt time.Time `json:"submittedAt"`
}
