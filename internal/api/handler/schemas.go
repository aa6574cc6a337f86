package handler

import "github.com/resumatch/candidate-search/internal/core/domain"

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string          `json:"token"`
	User     *domain.Account `json:"user"`
	UserType domain.UserType `json:"userType"`
	Redirect string          `json:"redirect_to"`
}

type sessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          *domain.Account `json:"user,omitempty"`
	UserType      domain.UserType `json:"userType,omitempty"`
}

type searchRequest struct {
	Query string `json:"query" validate:"notblank,max=500"`
}

type accessResponse struct {
	Path             string          `json:"path"`
	Allow            bool            `json:"allow"`
	RedirectTo       string          `json:"redirect_to,omitempty"`
	Protected        bool            `json:"protected"`
	RequiredRole     string          `json:"required_role,omitempty"`
	RequiredUserType domain.UserType `json:"required_user_type,omitempty"`
}
