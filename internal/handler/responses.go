package handler

import (
	"time"

	"taskboard/internal/model"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

type BackgroundResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type BoardResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Background BackgroundResponse `json:"background"`
	Public     bool               `json:"public"`
	OwnerID    string             `json:"ownerId"`
	Owner      *UserResponse      `json:"owner,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type BoardPageResponse struct {
	Items      []BoardResponse `json:"items"`
	NextCursor *string         `json:"nextCursor,omitempty"`
	TotalCount int64           `json:"totalCount"`
}

type RecentViewResponse struct {
	UserID    string    `json:"userId"`
	BoardID   string    `json:"boardId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	BoardID   string    `json:"boardId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LabelResponse struct {
	ID      string `json:"id"`
	BoardID string `json:"boardId"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

type CardResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	ListID      string          `json:"listId"`
	Position    int             `json:"position"`
	Labels      []LabelResponse `json:"labels,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Only the public profile of a board owner is exposed.
func ownerResponse(user model.User) *UserResponse {
	return &UserResponse{ID: user.ID.String(), Name: user.Name, Image: user.Image}
}

func userResponse(user *model.User) UserResponse {
	return UserResponse{ID: user.ID.String(), Name: user.Name, Email: user.Email, Image: user.Image}
}

func boardResponse(board *model.Board) BoardResponse {
	background := board.Background.Data().Resolved()
	resp := BoardResponse{
		ID:         board.ID.String(),
		Title:      board.Title,
		Background: BackgroundResponse{Type: string(background.Type), Value: background.Value},
		Public:     board.Public,
		OwnerID:    board.OwnerID.String(),
		CreatedAt:  board.CreatedAt,
		UpdatedAt:  board.UpdatedAt,
	}
	if board.Owner.ID == board.OwnerID {
		resp.Owner = ownerResponse(board.Owner)
	}
	return resp
}

func boardResponses(boards []model.Board) []BoardResponse {
	resp := make([]BoardResponse, len(boards))
	for i := range boards {
		resp[i] = boardResponse(&boards[i])
	}
	return resp
}

func listResponse(list *model.List) ListResponse {
	return ListResponse{
		ID:        list.ID.String(),
		Title:     list.Title,
		Position:  list.Position,
		BoardID:   list.BoardID.String(),
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}

func labelResponse(label *model.Label) LabelResponse {
	return LabelResponse{
		ID:      label.ID.String(),
		BoardID: label.BoardID.String(),
		Name:    label.Name,
		Color:   label.Color,
	}
}

func cardResponse(card *model.Card) CardResponse {
	resp := CardResponse{
		ID:          card.ID.String(),
		Title:       card.Title,
		Description: card.Description,
		ListID:      card.ListID.String(),
		Position:    card.Position,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
	for i := range card.CardLabels {
		if card.CardLabels[i].Status == model.LabelActive {
			resp.Labels = append(resp.Labels, labelResponse(&card.CardLabels[i].Label))
		}
	}
	return resp
}
