package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"slotBooker/internal/config"
	"slotBooker/internal/models"
	"slotBooker/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			pass_hash TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			location TEXT NOT NULL,
			capacity INTEGER NOT NULL CHECK (capacity > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
			user_id INTEGER NOT NULL REFERENCES users (id),
			slots INTEGER NOT NULL CHECK (slots > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_event_id ON bookings (event_id);
		CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id);`

	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveUser(username, passHash string, isAdmin bool) (int, error) {
	query := `
		INSERT INTO users (username, pass_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, username, passHash, isAdmin).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}

	return id, nil
}

func (s *Storage) GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, pass_hash, is_admin, created_at
		FROM users
		WHERE username = $1`

	var user models.User
	err := s.DB.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PassHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) CreateEvent(name string, date time.Time, location string, capacity int) (*models.Event, error) {
	query := `
		INSERT INTO events (name, date, location, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	event := models.Event{
		Name:     name,
		Date:     date,
		Location: location,
		Capacity: capacity,
	}
	err := s.DB.QueryRow(query, name, date, location, capacity).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

// UpdateEvent applies only the non-nil fields and returns the updated
// event.
func (s *Storage) UpdateEvent(id int, name *string, date *time.Time, location *string, capacity *int) (*models.Event, error) {
	query := `
		UPDATE events
		SET name = COALESCE($2, name),
		    date = COALESCE($3, date),
		    location = COALESCE($4, location),
		    capacity = COALESCE($5, capacity)
		WHERE id = $1
		RETURNING id, name, date, location, capacity, created_at`

	var event models.Event
	err := s.DB.QueryRow(query, id, name, date, location, capacity).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.Capacity,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	bookedQuery := `
		SELECT COALESCE(SUM(slots), 0)
		FROM bookings
		WHERE event_id = $1`

	if err = s.DB.QueryRow(bookedQuery, id).Scan(&event.BookedSlots); err != nil {
		return nil, fmt.Errorf("failed to get booked slots count: %w", err)
	}

	return &event, nil
}

func (s *Storage) DeleteEvent(id int) error {
	result, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT e.id, e.name, e.date, e.location, e.capacity, e.created_at,
		       COALESCE(SUM(b.slots), 0)
		FROM events e
		LEFT JOIN bookings b ON e.id = b.event_id
		GROUP BY e.id
		ORDER BY e.date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Date,
			&event.Location,
			&event.Capacity,
			&event.CreatedAt,
			&event.BookedSlots,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// CreateBooking reserves slots for a user inside a single transaction.
// The event row is locked with FOR UPDATE so concurrent bookings of the
// same event serialize on the capacity check.
func (s *Storage) CreateBooking(eventID, userID, slots int) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var event models.Event
	lockQuery := `
		SELECT capacity
		FROM events
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRow(lockQuery, eventID).Scan(&event.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event row: %w", err)
	}

	bookedQuery := `
		SELECT COALESCE(SUM(slots), 0)
		FROM bookings
		WHERE event_id = $1`

	if err = tx.QueryRow(bookedQuery, eventID).Scan(&event.BookedSlots); err != nil {
		return nil, fmt.Errorf("failed to get booked slots count: %w", err)
	}

	if !event.HasRoomFor(slots) {
		return nil, storage.ErrNotEnoughSlots
	}

	booking := models.Booking{
		EventID: eventID,
		UserID:  userID,
		Slots:   slots,
	}
	insertQuery := `
		INSERT INTO bookings (event_id, user_id, slots)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	if err = tx.QueryRow(insertQuery, eventID, userID, slots).Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &booking, nil
}

// CancelBooking deletes a booking after verifying ownership, all inside
// one transaction.
func (s *Storage) CancelBooking(bookingID, userID int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ownerID int
	checkQuery := `
		SELECT user_id
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRow(checkQuery, bookingID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to check booking: %w", err)
	}

	if ownerID != userID {
		return storage.ErrNotOwner
	}

	if _, err = tx.Exec(`DELETE FROM bookings WHERE id = $1`, bookingID); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) GetUserBookings(userID int) ([]models.UserBooking, error) {
	query := `
		SELECT b.id, b.event_id, b.user_id, b.slots, b.created_at,
		       e.id, e.name, e.date, e.location, e.capacity, e.created_at,
		       (SELECT COALESCE(SUM(slots), 0) FROM bookings WHERE event_id = e.id)
		FROM bookings b
		JOIN events e ON b.event_id = e.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.UserBooking
	for rows.Next() {
		var ub models.UserBooking
		err = rows.Scan(
			&ub.ID,
			&ub.EventID,
			&ub.UserID,
			&ub.Slots,
			&ub.CreatedAt,
			&ub.Event.ID,
			&ub.Event.Name,
			&ub.Event.Date,
			&ub.Event.Location,
			&ub.Event.Capacity,
			&ub.Event.CreatedAt,
			&ub.Event.BookedSlots,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, ub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) GetEventBookings(eventID int) ([]models.EventBooking, error) {
	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return nil, storage.ErrEventNotFound
	}

	query := `
		SELECT b.id, b.user_id, u.username, b.slots
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		WHERE b.event_id = $1
		ORDER BY b.created_at ASC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.EventBooking
	for rows.Next() {
		var eb models.EventBooking
		if err = rows.Scan(&eb.BookingID, &eb.UserID, &eb.Username, &eb.Slots); err != nil {
			return nil, fmt.Errorf("failed to scan event booking: %w", err)
		}
		bookings = append(bookings, eb)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event bookings: %w", err)
	}

	return bookings, nil
}
