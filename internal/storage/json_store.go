package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dailyhabit/internal/logger"
	"dailyhabit/internal/models"
)

// UserData groups the collections owned by a single logical user.
type UserData struct {
	Habits []models.Habit     `json:"habits"`
	Todos  []models.Todo      `json:"todos"`
	Notes  []models.DailyNote `json:"notes"`
}

// Store is the whole-file JSON layout. Every mutation rewrites the
// complete store, mirroring the whole-collection write contract of the
// persistence layer.
type Store struct {
	Version     int                           `json:"version"`
	CurrentUser string                        `json:"current_user,omitempty"`
	Users       map[string]string             `json:"users"` // username -> bcrypt hash
	Profiles    map[string]models.UserProfile `json:"profiles"`
	Data        map[string]*UserData          `json:"data"`
	Requests    []models.FriendRequest        `json:"requests"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyStore() *Store {
	return &Store{
		Version:  1,
		Users:    make(map[string]string),
		Profiles: make(map[string]models.UserProfile),
		Data:     make(map[string]*UserData),
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%w at %s", ErrAlreadyExists, s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Corrupt data is recoverable: log it and start from an empty
		// store rather than refusing to run.
		logger.Warn("storage file is corrupt, falling back to empty store", "path", s.path, "err", err)
		s.store = emptyStore()
		return nil
	}

	// Ensure maps are initialized
	if s.store.Users == nil {
		s.store.Users = make(map[string]string)
	}
	if s.store.Profiles == nil {
		s.store.Profiles = make(map[string]models.UserProfile)
	}
	if s.store.Data == nil {
		s.store.Data = make(map[string]*UserData)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// userData returns the collections for a user, creating them on first
// touch. A user with no stored data has empty collections, not an error.
func (s *JSONStore) userData(username string) *UserData {
	d, ok := s.store.Data[username]
	if !ok {
		d = &UserData{}
		s.store.Data[username] = d
	}
	return d
}

func (s *JSONStore) CurrentUser() (string, error) {
	if s.store == nil {
		return "", ErrNotLoaded
	}
	if s.store.CurrentUser == "" {
		return "", ErrNotLoggedIn
	}
	return s.store.CurrentUser, nil
}

func (s *JSONStore) SetCurrentUser(username string) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.CurrentUser = username
	return s.save()
}

func (s *JSONStore) ClearCurrentUser() error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.CurrentUser = ""
	return s.save()
}

func (s *JSONStore) GetCredential(username string) (string, error) {
	if s.store == nil {
		return "", ErrNotLoaded
	}
	hash, ok := s.store.Users[username]
	if !ok {
		return "", ErrUserNotFound
	}
	return hash, nil
}

func (s *JSONStore) SaveCredential(username, hash string) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Users[username] = hash
	return s.save()
}

func (s *JSONStore) ListUsernames() ([]string, error) {
	if s.store == nil {
		return nil, ErrNotLoaded
	}
	names := make([]string, 0, len(s.store.Users))
	for u := range s.store.Users {
		names = append(names, u)
	}
	sort.Strings(names)
	return names, nil
}

func (s *JSONStore) GetProfile(username string) (models.UserProfile, error) {
	if s.store == nil {
		return models.UserProfile{}, ErrNotLoaded
	}
	p, ok := s.store.Profiles[username]
	if !ok {
		// Absent profile means default, not error.
		return models.DefaultProfile(username), nil
	}
	return p, nil
}

func (s *JSONStore) SaveProfile(profile models.UserProfile) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Profiles[profile.Username] = profile
	return s.save()
}

func (s *JSONStore) AddHabit(username string, habit models.Habit) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	d := s.userData(username)
	d.Habits = append(d.Habits, habit)
	return s.save()
}

func (s *JSONStore) GetHabit(username, id string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, ErrNotLoaded
	}
	for _, h := range s.userData(username).Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
}

func (s *JSONStore) GetAllHabits(username string) ([]models.Habit, error) {
	if s.store == nil {
		return nil, ErrNotLoaded
	}
	d := s.userData(username)
	habits := make([]models.Habit, len(d.Habits))
	copy(habits, d.Habits)
	return habits, nil
}

func (s *JSONStore) UpdateHabit(username string, habit models.Habit) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	d := s.userData(username)
	for i, h := range d.Habits {
		if h.ID == habit.ID {
			d.Habits[i] = habit
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrHabitNotFound, habit.ID)
}

func (s *JSONStore) DeleteHabit(username, id string) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	d := s.userData(username)
	for i, h := range d.Habits {
		if h.ID == id {
			d.Habits = append(d.Habits[:i], d.Habits[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
}

func (s *JSONStore) AddTodo(username string, todo models.Todo) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	d := s.userData(username)
	d.Todos = append(d.Todos, todo)
	return s.save()
}

func (s *JSONStore) GetTodo(username, id string) (models.Todo, error) {
	if s.store == nil {
		return models.Todo{}, ErrNotLoaded
	}
	for _, t := range s.userData(username).Todos {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Todo{}, fmt.Errorf("%w: %s", ErrTodoNotFound, id)
}

func (s *JSONStore) GetAllTodos(username string) ([]models.Todo, error) {
	if s.store == nil {
		return nil, ErrNotLoaded
	}
	d := s.userData(username)
	todos := make([]models.Todo, len(d.Todos))
	copy(todos, d.Todos)
	return todos, nil
}

func (s *JSONStore) UpdateTodo(username string, todo models.Todo) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	d := s.userData(username)
	for i, t := range d.Todos {
		if t.ID == todo.ID {
			d.Todos[i] = todo
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrTodoNotFound, todo.ID)
}

func (s *JSONStore) DeleteTodo(username, id string) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	d := s.userData(username)
	for i, t := range d.Todos {
		if t.ID == id {
			d.Todos = append(d.Todos[:i], d.Todos[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrTodoNotFound, id)
}

func (s *JSONStore) GetNote(username, date string) (models.DailyNote, error) {
	if s.store == nil {
		return models.DailyNote{}, ErrNotLoaded
	}
	for _, n := range s.userData(username).Notes {
		if n.Date == date {
			return n, nil
		}
	}
	return models.DailyNote{}, ErrNoteNotFound
}

func (s *JSONStore) SaveNote(username string, note models.DailyNote) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	d := s.userData(username)
	filtered := d.Notes[:0]
	for _, n := range d.Notes {
		if n.Date != note.Date {
			filtered = append(filtered, n)
		}
	}
	d.Notes = filtered
	if note.Text != "" {
		d.Notes = append(d.Notes, note)
	}
	return s.save()
}

func (s *JSONStore) GetRequests() ([]models.FriendRequest, error) {
	if s.store == nil {
		return nil, ErrNotLoaded
	}
	requests := make([]models.FriendRequest, len(s.store.Requests))
	copy(requests, s.store.Requests)
	return requests, nil
}

func (s *JSONStore) SaveRequests(requests []models.FriendRequest) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Requests = requests
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple dailyhabit processes sharing the same storage path
//     is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
