package teacher

// Teacher is a staff member eligible to request leave. ID is assigned by the
// store; TeacherCode is the externally issued staff code.
type Teacher struct {
	ID          uint   `gorm:"primaryKey"`
	TeacherCode string `gorm:"column:teacher_code;size:64;not null;uniqueIndex:uq_teachers_teacher_code"`
	Name        string `gorm:"size:255;not null"`
	Department  string `gorm:"size:255;not null"`
}

// SampleTeachers returns the demo staff loaded when sample data is enabled.
func SampleTeachers() []Teacher {
	return []Teacher{
		{TeacherCode: "TCH-2023-001", Name: "Sarah Johnson", Department: "Mathematics"},
		{TeacherCode: "TCH-2023-002", Name: "Michael Brown", Department: "Science"},
	}
}
