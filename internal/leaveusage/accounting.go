package leaveusage

// Apply folds days into the counter matching category. Unknown categories
// leave u untouched and report false; validation makes that path unreachable
// for requests coming through the service layer.
func Apply(u *LeaveUsage, category string, days int) bool {
	switch category {
	case TypeCasual:
		u.CasualUsed += days
	case TypeSick:
		u.SickUsed += days
	case TypeDuty:
		u.DutyUsed += days
	case TypeOther:
		u.OtherUsed += days
	default:
		return false
	}
	return true
}
