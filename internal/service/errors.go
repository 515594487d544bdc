package service

import "errors"

var (
	// ErrValidation не заполнены обязательные поля.
	ErrValidation = errors.New("validation failed")
	// ErrUsernameTaken username уже занят.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials неверный логин или пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrComandaNotFound комманда не найдена.
	ErrComandaNotFound = errors.New("comanda not found")
)
