package rest

import (
	"time"

	"github.com/Akergez/2572371-six-cities-4/internal/core/domain"
)

type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OfferResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	City         string      `json:"city"`
	PreviewImage string      `json:"previewImage"`
	Images       []string    `json:"images"`
	IsPremium    bool        `json:"isPremium"`
	IsFavorite   bool        `json:"isFavorite"`
	Rating       float64     `json:"rating"`
	Type         string      `json:"type"`
	Rooms        int         `json:"rooms"`
	Guests       int         `json:"guests"`
	Price        int         `json:"price"`
	Goods        []string    `json:"goods"`
	HostID       string      `json:"hostId"`
	Location     LocationDTO `json:"location"`
	Geohash      string      `json:"geohash"`
	CommentCount int         `json:"commentCount"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func toOfferResponse(offer domain.Offer, isFavorite bool) OfferResponse {
	return OfferResponse{
		ID:           offer.ID.String(),
		Title:        offer.Title,
		Description:  offer.Description,
		City:         offer.City,
		PreviewImage: offer.PreviewImage,
		Images:       offer.Images,
		IsPremium:    offer.IsPremium,
		IsFavorite:   isFavorite,
		Rating:       offer.Rating,
		Type:         string(offer.Type),
		Rooms:        offer.Rooms,
		Guests:       offer.Guests,
		Price:        offer.Price,
		Goods:        offer.Goods,
		HostID:       offer.HostID.String(),
		Location:     LocationDTO{Latitude: offer.Location.Latitude, Longitude: offer.Location.Longitude},
		Geohash:      offer.Geohash,
		CommentCount: offer.CommentCount,
		CreatedAt:    offer.CreatedAt,
	}
}

func toOfferListResponse(offers []domain.FavoriteOffer) []OfferResponse {
	response := make([]OfferResponse, 0, len(offers))
	for _, offer := range offers {
		response = append(response, toOfferResponse(offer.Offer, offer.IsFavorite))
	}
	return response
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	AvatarURL string `json:"avatarUrl"`
}

func toUserResponse(user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Type:      string(user.Type),
		AvatarURL: user.AvatarURL,
	}
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type CommentResponse struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Rating    int           `json:"rating"`
	CreatedAt time.Time     `json:"createdAt"`
	User      *UserResponse `json:"user"`
}

func toCommentResponse(comment domain.CommentWithAuthor) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		Text:      comment.Text,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
		User:      toUserResponse(comment.Author),
	}
}

type CreateCommentRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type RegisterUserRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	Type      string `json:"type"`
	AvatarURL string `json:"avatarUrl"`
}

type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatarUrl"`
}

type CreateOfferRequest struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	City         string      `json:"city"`
	PreviewImage string      `json:"previewImage"`
	Images       []string    `json:"images"`
	IsPremium    bool        `json:"isPremium"`
	Type         string      `json:"type"`
	Rooms        int         `json:"rooms"`
	Guests       int         `json:"guests"`
	Price        int         `json:"price"`
	Goods        []string    `json:"goods"`
	Location     LocationDTO `json:"location"`
}

func (req CreateOfferRequest) toDraft() domain.OfferDraft {
	return domain.OfferDraft{
		Title:        req.Title,
		Description:  req.Description,
		City:         req.City,
		PreviewImage: req.PreviewImage,
		Images:       req.Images,
		IsPremium:    req.IsPremium,
		Type:         domain.OfferType(req.Type),
		Rooms:        req.Rooms,
		Guests:       req.Guests,
		Price:        req.Price,
		Goods:        req.Goods,
		Location:     domain.Location{Latitude: req.Location.Latitude, Longitude: req.Location.Longitude},
	}
}
