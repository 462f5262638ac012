package errors

import "errors"

var (
	ErrJudgeNotFound      = errors.New("judge not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
