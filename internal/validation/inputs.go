package validation

// Board inputs

type BackgroundInput struct {
	Type  string `json:"type" binding:"required,oneof=color gradient image"`
	Value string `json:"value" binding:"required,max=2048"`
}

type CreateBoardInput struct {
	Title      string          `json:"title" binding:"required,notblank,min=2,max=54"`
	Background BackgroundInput `json:"background" binding:"required"`
	Public     bool            `json:"public"`
}

type UpdateBoardInput struct {
	Title string `json:"title" binding:"required,notblank,min=2,max=54"`
}

// ListBoardsInput is read from the query string. A nil Limit means the default page size.
type ListBoardsInput struct {
	Limit  *int   `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
	Cursor string `form:"cursor" json:"cursor" binding:"omitempty,uuid"`
}

// List inputs

type CreateListInput struct {
	BoardID string `json:"boardId" binding:"required,uuid"`
	Title   string `json:"title" binding:"required,notblank,max=256"`
}

type UpdateListInput struct {
	Title    *string `json:"title" binding:"omitempty,notblank,max=256"`
	Position *int    `json:"position" binding:"omitempty,min=0"`
}

// Card inputs

type CreateCardInput struct {
	ListID      string  `json:"listId" binding:"required,uuid"`
	Title       string  `json:"title" binding:"required,notblank,min=1,max=256"`
	Description *string `json:"description" binding:"omitempty,max=10000"`
}

type UpdateCardPositionInput struct {
	Position *int `json:"position" binding:"required,min=0"`
}

type UpdateCardInput struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=256"`
	Description *string `json:"description" binding:"omitempty,max=10000"`
	ListID      *string `json:"listId" binding:"omitempty,uuid"`
}

// Label inputs

type CreateLabelInput struct {
	BoardID string `json:"boardId" binding:"required,uuid"`
	Name    string `json:"name" binding:"required,notblank,max=64"`
	Color   string `json:"color" binding:"required,len=7,hexcolor"`
}

// Identity inputs

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,notblank,min=2,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
