package request_models

type SignUpRequest struct {
	Name     string `form:"name" json:"name" binding:"required,min=2,max=50"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	Plan     string `form:"plan" json:"plan"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type UpdatePlanRequest struct {
	Plan string `form:"plan" json:"plan" binding:"required,oneof=free pro"`
}
