package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"dailyhabit/internal/migration"
	"dailyhabit/internal/models"
	"dailyhabit/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.newRunner().ValidateVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) newRunner() *migration.Runner {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		// The embedded tree always has a sqlite directory.
		panic(fmt.Sprintf("embedded migrations missing sqlite directory: %v", err))
	}
	return migration.NewRunner(s.db, subFS)
}

func (s *SQLiteStore) runMigrations() error {
	_, err := s.newRunner().ApplyMigrations(nil)
	return err
}

// Migrate applies pending migrations, reporting progress through logFn.
// Unlike Load it opens a behind-schema database without complaint.
func (s *SQLiteStore) Migrate(logFn func(string)) (int, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return 0, ErrNotInitialized
		}
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return 0, fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}
	return s.newRunner().ApplyMigrations(logFn)
}

// SchemaVersion reports the current and latest schema versions.
func (s *SQLiteStore) SchemaVersion() (current, latest int, err error) {
	runner := s.newRunner()
	current, err = runner.GetCurrentVersion()
	if err != nil {
		return 0, 0, err
	}
	latest, err = runner.GetLatestVersion()
	if err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

func (s *SQLiteStore) CurrentUser() (string, error) {
	if s.db == nil {
		return "", ErrNotLoaded
	}
	var username string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'current_user'").Scan(&username)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && username == "") {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

func (s *SQLiteStore) SetCurrentUser(username string) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	_, err := s.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('current_user', ?)", username)
	return err
}

func (s *SQLiteStore) ClearCurrentUser() error {
	if s.db == nil {
		return ErrNotLoaded
	}
	_, err := s.db.Exec("DELETE FROM meta WHERE key = 'current_user'")
	return err
}

func (s *SQLiteStore) GetCredential(username string) (string, error) {
	if s.db == nil {
		return "", ErrNotLoaded
	}
	var hash string
	err := s.db.QueryRow("SELECT password_hash FROM users WHERE username = ?", username).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (s *SQLiteStore) SaveCredential(username, hash string) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	_, err := s.db.Exec("INSERT OR REPLACE INTO users (username, password_hash) VALUES (?, ?)", username, hash)
	return err
}

func (s *SQLiteStore) ListUsernames() ([]string, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT username FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		names = append(names, u)
	}
	return names, rows.Err()
}

func (s *SQLiteStore) GetProfile(username string) (models.UserProfile, error) {
	if s.db == nil {
		return models.UserProfile{}, ErrNotLoaded
	}

	p := models.DefaultProfile(username)
	err := s.db.QueryRow("SELECT avatar, points FROM profiles WHERE username = ?", username).
		Scan(&p.Avatar, &p.Points)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, err
	}

	rows, err := s.db.Query("SELECT friend FROM friends WHERE username = ? ORDER BY friend", username)
	if err != nil {
		return models.UserProfile{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return models.UserProfile{}, err
		}
		p.Friends = append(p.Friends, f)
	}
	return p, rows.Err()
}

func (s *SQLiteStore) SaveProfile(profile models.UserProfile) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT OR REPLACE INTO profiles (username, avatar, points) VALUES (?, ?, ?)",
		profile.Username, profile.Avatar, profile.Points)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM friends WHERE username = ?", profile.Username); err != nil {
		return err
	}
	for _, f := range profile.Friends {
		if _, err := tx.Exec("INSERT INTO friends (username, friend) VALUES (?, ?)", profile.Username, f); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddHabit(username string, habit models.Habit) error {
	return s.upsertHabit(username, habit)
}

func (s *SQLiteStore) UpdateHabit(username string, habit models.Habit) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM habits WHERE id = ? AND username = ?", habit.ID, username).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, habit.ID)
	}
	return s.upsertHabit(username, habit)
}

func (s *SQLiteStore) upsertHabit(username string, habit models.Habit) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	categoriesJSON, err := json.Marshal(habit.Categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	daysJSON, err := json.Marshal(habit.FrequencyConfig.Days)
	if err != nil {
		return fmt.Errorf("failed to marshal frequency days: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO habits (
			id, username, title, description, categories, color, icon,
			frequency, freq_days, freq_count, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, username, habit.Title, habit.Description, string(categoriesJSON),
		habit.Color, habit.Icon, habit.Frequency, string(daysJSON),
		habit.FrequencyConfig.Count, habit.CreatedAt,
	)
	if err != nil {
		return err
	}

	// Completion days are rewritten wholesale, the habit_days primary key
	// guarantees a date appears at most once.
	if _, err := tx.Exec("DELETE FROM habit_days WHERE habit_id = ?", habit.ID); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT OR IGNORE INTO habit_days (habit_id, day) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, d := range habit.CompletedDays {
		if _, err := stmt.Exec(habit.ID, d); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetHabit(username, id string) (models.Habit, error) {
	if s.db == nil {
		return models.Habit{}, ErrNotLoaded
	}

	row := s.db.QueryRow(`
		SELECT id, title, description, categories, color, icon,
		       frequency, freq_days, freq_count, created_at
		FROM habits WHERE id = ? AND username = ?`, id, username)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	if err != nil {
		return models.Habit{}, err
	}

	if err := s.loadCompletedDays(&h); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *SQLiteStore) GetAllHabits(username string) ([]models.Habit, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	rows, err := s.db.Query(`
		SELECT id, title, description, categories, color, icon,
		       frequency, freq_days, freq_count, created_at
		FROM habits WHERE username = ? ORDER BY created_at`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		if err := s.loadCompletedDays(&habits[i]); err != nil {
			return nil, err
		}
	}
	return habits, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var categories, freqDays, frequency string

	err := row.Scan(&h.ID, &h.Title, &h.Description, &categories, &h.Color, &h.Icon,
		&frequency, &freqDays, &h.FrequencyConfig.Count, &h.CreatedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Frequency = models.FrequencyType(frequency)
	if err := json.Unmarshal([]byte(categories), &h.Categories); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse categories: %w", err)
	}
	if err := json.Unmarshal([]byte(freqDays), &h.FrequencyConfig.Days); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse frequency days: %w", err)
	}
	return h, nil
}

func (s *SQLiteStore) loadCompletedDays(h *models.Habit) error {
	rows, err := s.db.Query("SELECT day FROM habit_days WHERE habit_id = ? ORDER BY day", h.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return err
		}
		h.CompletedDays = append(h.CompletedDays, d)
	}
	return rows.Err()
}

func (s *SQLiteStore) DeleteHabit(username, id string) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM habits WHERE id = ? AND username = ?", id, username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	if _, err := tx.Exec("DELETE FROM habit_days WHERE habit_id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) AddTodo(username string, todo models.Todo) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO todos (id, username, title, due_date, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		todo.ID, username, todo.Title, todo.Date, todo.IsCompleted, todo.CreatedAt)
	return err
}

func (s *SQLiteStore) GetTodo(username, id string) (models.Todo, error) {
	if s.db == nil {
		return models.Todo{}, ErrNotLoaded
	}
	var t models.Todo
	err := s.db.QueryRow(`
		SELECT id, title, due_date, is_completed, created_at
		FROM todos WHERE id = ? AND username = ?`, id, username).
		Scan(&t.ID, &t.Title, &t.Date, &t.IsCompleted, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, fmt.Errorf("%w: %s", ErrTodoNotFound, id)
	}
	if err != nil {
		return models.Todo{}, err
	}
	return t, nil
}

func (s *SQLiteStore) GetAllTodos(username string) ([]models.Todo, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := s.db.Query(`
		SELECT id, title, due_date, is_completed, created_at
		FROM todos WHERE username = ? ORDER BY due_date, created_at`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Date, &t.IsCompleted, &t.CreatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *SQLiteStore) UpdateTodo(username string, todo models.Todo) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	res, err := s.db.Exec(`
		UPDATE todos SET title = ?, due_date = ?, is_completed = ?
		WHERE id = ? AND username = ?`,
		todo.Title, todo.Date, todo.IsCompleted, todo.ID, username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrTodoNotFound, todo.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteTodo(username, id string) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	res, err := s.db.Exec("DELETE FROM todos WHERE id = ? AND username = ?", id, username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrTodoNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) GetNote(username, date string) (models.DailyNote, error) {
	if s.db == nil {
		return models.DailyNote{}, ErrNotLoaded
	}
	n := models.DailyNote{Date: date}
	err := s.db.QueryRow("SELECT text FROM notes WHERE username = ? AND day = ?", username, date).Scan(&n.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyNote{}, ErrNoteNotFound
	}
	if err != nil {
		return models.DailyNote{}, err
	}
	return n, nil
}

func (s *SQLiteStore) SaveNote(username string, note models.DailyNote) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	if note.Text == "" {
		_, err := s.db.Exec("DELETE FROM notes WHERE username = ? AND day = ?", username, note.Date)
		return err
	}
	_, err := s.db.Exec("INSERT OR REPLACE INTO notes (username, day, text) VALUES (?, ?, ?)",
		username, note.Date, note.Text)
	return err
}

func (s *SQLiteStore) GetRequests() ([]models.FriendRequest, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT from_user, to_user, status, timestamp FROM friend_requests ORDER BY timestamp")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.FriendRequest
	for rows.Next() {
		var r models.FriendRequest
		var status string
		if err := rows.Scan(&r.From, &r.To, &status, &r.Timestamp); err != nil {
			return nil, err
		}
		r.Status = models.RequestStatus(status)
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *SQLiteStore) SaveRequests(requests []models.FriendRequest) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM friend_requests"); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO friend_requests (from_user, to_user, status, timestamp) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	// Keep the stored collection deterministic.
	sorted := make([]models.FriendRequest, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp < sorted[j].Timestamp })

	for _, r := range sorted {
		if _, err := stmt.Exec(r.From, r.To, string(r.Status), r.Timestamp); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
