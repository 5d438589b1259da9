package handler

import (
	"time"

	"github.com/jmcvie/minifeed/internal/domain"
	"github.com/jmcvie/minifeed/internal/service"
)

// UserDTO is the JSON representation of a user profile. The password hash
// never appears here.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// PostAuthorDTO is the author profile denormalized into a post.
type PostAuthorDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

// PostDTO is the JSON representation of a feed post.
type PostDTO struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	Author    PostAuthorDTO `json:"author"`
	CreatedAt string        `json:"createdAt"`
}

func toPostDTO(p *service.FeedPost) PostDTO {
	return PostDTO{
		ID:      p.ID,
		Content: p.Content,
		Author: PostAuthorDTO{
			ID:    p.Author.ID,
			Name:  p.Author.Name,
			Email: p.Author.Email,
			Bio:   p.Author.Bio,
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func toPostDTOs(posts []service.FeedPost) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}

// PaginationDTO is the JSON representation of pagination metadata.
type PaginationDTO struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalPosts  int  `json:"totalPosts"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func toPaginationDTO(p domain.Pagination) PaginationDTO {
	return PaginationDTO{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalPosts:  p.TotalPosts,
		HasNextPage: p.HasNextPage,
		HasPrevPage: p.HasPrevPage,
	}
}
