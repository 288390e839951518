package models

// Request bodies. Unknown fields are rejected by lib.ParseBody and the
// validate tags are checked before a handler sees the value.
// Update inputs use pointers: a nil field is left untouched.

type CreateUserInput struct {
	Name      string      `json:"name" validate:"required"`
	Surname   string      `json:"surname" validate:"required"`
	Email     string      `json:"email" validate:"required,email"`
	Bio       string      `json:"bio" validate:"required"`
	Title     string      `json:"title" validate:"required"`
	Area      string      `json:"area" validate:"required"`
	Image     string      `json:"image" validate:"omitempty,url"`
	Address   *Address    `json:"address"`
	Website   string      `json:"website" validate:"omitempty,url"`
	Phone     string      `json:"phone"`
	Skills    []string    `json:"skills" validate:"omitempty,dive,required"`
	Education []Education `json:"education" validate:"omitempty,dive"`
}

type UpdateUserInput struct {
	Name      *string      `json:"name" structs:"name,omitempty" validate:"omitempty,min=1"`
	Surname   *string      `json:"surname" structs:"surname,omitempty" validate:"omitempty,min=1"`
	Email     *string      `json:"email" structs:"email,omitempty" validate:"omitempty,email"`
	Bio       *string      `json:"bio" structs:"bio,omitempty" validate:"omitempty,min=1"`
	Title     *string      `json:"title" structs:"title,omitempty" validate:"omitempty,min=1"`
	Area      *string      `json:"area" structs:"area,omitempty" validate:"omitempty,min=1"`
	Image     *string      `json:"image" structs:"image,omitempty" validate:"omitempty,url"`
	Address   *Address     `json:"address" structs:"address,omitempty,omitnested"`
	Website   *string      `json:"website" structs:"website,omitempty" validate:"omitempty,url"`
	Phone     *string      `json:"phone" structs:"phone,omitempty"`
	Skills    *[]string    `json:"skills" structs:"skills,omitempty,omitnested"`
	Education *[]Education `json:"education" structs:"education,omitempty,omitnested"`
}

type CreatePostInput struct {
	Text  string `json:"text" validate:"required"`
	Image string `json:"image" validate:"omitempty,url"`
	User  string `json:"user" validate:"required,mongodb"`
}

type UpdatePostInput struct {
	Text  *string `json:"text" structs:"text,omitempty" validate:"omitempty,min=1"`
	Image *string `json:"image" structs:"image,omitempty" validate:"omitempty,url"`
}

type LikeInput struct {
	UserID string `json:"userId" validate:"required,mongodb"`
}

type CreateCommentInput struct {
	Comment string `json:"comment" validate:"required"`
	User    string `json:"user" validate:"required,mongodb"`
}

type UpdateCommentInput struct {
	Comment *string `json:"comment" structs:"comment,omitempty" validate:"required,min=1"`
}

type CreateExperienceInput struct {
	Role        string  `json:"role" validate:"required"`
	Company     string  `json:"company" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     *string `json:"endDate"`
	Description string  `json:"description"`
	Area        string  `json:"area" validate:"required"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

// UpdateExperienceInput dates are parsed by the handler, not copied as strings
type UpdateExperienceInput struct {
	Role        *string `json:"role" structs:"role,omitempty" validate:"omitempty,min=1"`
	Company     *string `json:"company" structs:"company,omitempty" validate:"omitempty,min=1"`
	StartDate   *string `json:"startDate" structs:"-"`
	EndDate     *string `json:"endDate" structs:"-"`
	Description *string `json:"description" structs:"description,omitempty"`
	Area        *string `json:"area" structs:"area,omitempty" validate:"omitempty,min=1"`
	Image       *string `json:"image" structs:"image,omitempty" validate:"omitempty,url"`
}

type SendRequestInput struct {
	ReceiverID string `json:"receiverId" validate:"required,mongodb"`
}

type ManageRequestInput struct {
	SenderID string `json:"senderId" validate:"required,mongodb"`
	Action   *bool  `json:"action" validate:"required"`
}
