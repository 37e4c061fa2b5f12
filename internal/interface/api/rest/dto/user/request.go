package user

type (
	CreateUserRequest struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		BirthDate string `json:"birth_date"`
		Phone     string `json:"phone"`
		Role      *int   `json:"role"`
	}
	UpdateUserRequest struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		BirthDate string `json:"birth_date"`
		Phone     string `json:"phone"`
	}
)
