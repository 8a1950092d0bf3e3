package storage

import "dailyhabit/internal/models"

// Provider is the persistence boundary. Implementations keep every
// collection per logical user; a missing user simply has empty
// collections and a default profile. Providers are not safe for
// concurrent use from multiple processes sharing one path.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Session
	CurrentUser() (string, error)
	SetCurrentUser(username string) error
	ClearCurrentUser() error

	// User registry (username -> bcrypt hash)
	GetCredential(username string) (string, error)
	SaveCredential(username, hash string) error
	ListUsernames() ([]string, error)

	// Profiles
	GetProfile(username string) (models.UserProfile, error)
	SaveProfile(profile models.UserProfile) error

	// Habits
	AddHabit(username string, habit models.Habit) error
	GetHabit(username, id string) (models.Habit, error)
	GetAllHabits(username string) ([]models.Habit, error)
	UpdateHabit(username string, habit models.Habit) error
	DeleteHabit(username, id string) error

	// Todos
	AddTodo(username string, todo models.Todo) error
	GetTodo(username, id string) (models.Todo, error)
	GetAllTodos(username string) ([]models.Todo, error)
	UpdateTodo(username string, todo models.Todo) error
	DeleteTodo(username, id string) error

	// Daily notes (one per date; empty text removes)
	GetNote(username, date string) (models.DailyNote, error)
	SaveNote(username string, note models.DailyNote) error

	// Friend requests (whole-collection, shared across users)
	GetRequests() ([]models.FriendRequest, error)
	SaveRequests(requests []models.FriendRequest) error

	// Utils
	GetConfigPath() string
}
