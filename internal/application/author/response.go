package author

import (
	"github.com/xiebiao/bookshop/internal/domain/author"
)

// AuthorResponse 作者视图
type AuthorResponse struct {
	ID          string `json:"id"`
	Forename    string `json:"forename"`
	Surname     string `json:"surname"`
	PenName     string `json:"pen_name"`
	DisplayName string `json:"display_name"`
	Biography   string `json:"biography"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID.String(),
		Forename:    a.Forename,
		Surname:     a.Surname,
		PenName:     a.PenName,
		DisplayName: a.DisplayName(),
		Biography:   a.Biography,
		CreatedAt:   a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
