package storage

import "errors"

var (
	ErrNotLoaded      = errors.New("storage not loaded")
	ErrNotInitialized = errors.New("storage not initialized, run 'dailyhabit init' first")
	ErrHabitNotFound  = errors.New("habit not found")
	ErrTodoNotFound   = errors.New("todo not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNoteNotFound   = errors.New("no note for that date")
	ErrNotLoggedIn    = errors.New("not logged in, run 'dailyhabit login' first")
	ErrAlreadyExists  = errors.New("storage already initialized")
	ErrUsernameTaken  = errors.New("username already taken")
)
