package http

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Role       string    `json:"role"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Categories []string  `json:"categories"`
}

type JudgeRequest struct {
	Username   string   `json:"username"`
	Name       string   `json:"name"`
	Password   string   `json:"password,omitempty"`
	Categories []string `json:"categories"`
}

type JudgeResponse struct {
	JudgeID     string     `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Categories  []string   `json:"categories"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type JudgeListResponse struct {
	Judges []JudgeResponse `json:"judges"`
}
