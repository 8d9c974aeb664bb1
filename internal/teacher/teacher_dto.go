package teacher

type CreateTeacherRequest struct {
	TeacherID  string `json:"teacherId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type TeacherResponse struct {
	ID         uint   `json:"id"`
	TeacherID  string `json:"teacherId"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
