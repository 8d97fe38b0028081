package dto

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=3"`

	Branch   string `json:"branch"`
	Year     int    `json:"year" validate:"omitempty,min=1,max=6"`
	Semester int    `json:"semester" validate:"omitempty,min=1,max=12"`

	Department  string `json:"department"`
	Designation string `json:"designation"`
}

type UploadImageResponse struct {
	AvatarURL string `json:"avatar_url"`
}

type TeacherListRequest struct {
	Department string `query:"department"`
	Search     string `query:"search"`
}
