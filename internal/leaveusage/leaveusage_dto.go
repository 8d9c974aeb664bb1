package leaveusage

type UsageResponse struct {
	ID         uint `json:"id"`
	TeacherID  uint `json:"teacherId"`
	CasualUsed int  `json:"casualUsed"`
	SickUsed   int  `json:"sickUsed"`
	DutyUsed   int  `json:"dutyUsed"`
	OtherUsed  int  `json:"otherUsed"`
}

type LimitsResponse struct {
	Casual int `json:"casual"`
	Sick   int `json:"sick"`
	Duty   int `json:"duty"`
	Other  int `json:"other"`
}

type CategoryBalance struct {
	LeaveType string `json:"leaveType"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Exceeded  bool   `json:"exceeded"`
}

type BalanceResponse struct {
	TeacherID  uint              `json:"teacherId"`
	Categories []CategoryBalance `json:"categories"`
}
