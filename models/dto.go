package models

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Photo string `json:"photo"`
}

type SubscriptionStatusResponse struct {
	HasSubscription bool   `json:"has_subscription"`
	SubscriptionEnd string `json:"subscription_end,omitempty"`
}

type CreateArticleRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Content     string   `json:"content" binding:"required"`
	Image       string   `json:"image"`
	PublisherID uint     `json:"publisher_id" binding:"required"`
	Tags        []string `json:"tags"`
}

type UpdateArticleRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Content     string   `json:"content" binding:"required"`
	Image       string   `json:"image"`
	PublisherID uint     `json:"publisher_id" binding:"required"`
	Tags        []string `json:"tags"`
}

type UpdateArticleStatusRequest struct {
	Status        ArticleStatus `json:"status" binding:"required,oneof=approved declined"`
	DeclineReason string        `json:"decline_reason"`
}

type SetPremiumRequest struct {
	IsPremium *bool `json:"is_premium" binding:"required"`
}

type CreateCommentRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Content string `json:"content" binding:"required"`
}

type CreatePublisherRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Logo string `json:"logo"`
}

type CreatePaymentIntentRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=255"`
	Message string `json:"message" binding:"required"`
}

type UpdateMessageStatusRequest struct {
	Status MessageStatus `json:"status" binding:"required,oneof=unread read archived"`
}

type ArticleListParams struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	Search    string `form:"search"`
	Publisher uint   `form:"publisher"`
	Tags      string `form:"tags"`
	Status    string `form:"status"`
}

type ListParams struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Status string `form:"status"`
}
