// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"leaddesk/internal/errors"
	"leaddesk/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		avatar TEXT,
		manager_id TEXT,
		instagram_username TEXT,
		tiktok_username TEXT,
		new_leads INTEGER DEFAULT 0,
		replies INTEGER DEFAULT 0,
		open_messages INTEGER DEFAULT 0,
		conversion_rate REAL DEFAULT 0,
		joined_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		username TEXT NOT NULL,
		platform TEXT NOT NULL,
		avatar TEXT,
		description TEXT,
		relevance TEXT NOT NULL,
		interests TEXT,
		engagement_level INTEGER DEFAULT 0,
		owner_id TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_leads_owner ON leads(owner_id);

	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		username TEXT NOT NULL,
		avatar TEXT,
		bio TEXT,
		followers INTEGER DEFAULT 0,
		engagement REAL DEFAULT 0,
		interests TEXT,
		platform TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS videos (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		duration TEXT,
		category TEXT NOT NULL,
		uploaded_by TEXT,
		uploaded_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		lead_name TEXT NOT NULL,
		platform TEXT NOT NULL,
		preview TEXT,
		status TEXT NOT NULL,
		sent_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_user ON messages(user_id);

	CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date DATETIME NOT NULL,
		mood TEXT NOT NULL,
		learnings TEXT,
		goals_for_tomorrow TEXT,
		total_pnl REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_journal_user_date ON journal_entries(user_id, date);

	CREATE TABLE IF NOT EXISTS journal_trades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entry_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		asset TEXT NOT NULL,
		direction TEXT NOT NULL,
		quantity REAL NOT NULL,
		entry_price REAL NOT NULL,
		exit_price REAL,
		notes TEXT,
		result TEXT NOT NULL,
		pnl REAL,
		FOREIGN KEY (entry_id) REFERENCES journal_entries(id)
	);
	CREATE INDEX IF NOT EXISTS idx_journal_trades_entry ON journal_trades(entry_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveUser inserts or replaces a user.
func (s *SQLiteStore) SaveUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO users
		(id, name, email, role, avatar, manager_id, instagram_username, tiktok_username,
		 new_leads, replies, open_messages, conversion_rate, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, string(user.Role), user.Avatar, user.ManagerID,
		user.InstagramUsername, user.TikTokUsername,
		user.Stats.NewLeads, user.Stats.Replies, user.Stats.OpenMessages,
		user.Stats.ConversionRate, user.JoinedAt)
	if err != nil {
		return errors.NewStoreError("user", "save", err)
	}
	return nil
}

// GetUsers returns users matching the filter, in insertion order.
func (s *SQLiteStore) GetUsers(ctx context.Context, filter UserFilter) ([]models.User, error) {
	query := `SELECT id, name, email, role, avatar, manager_id, instagram_username,
		tiktok_username, new_leads, replies, open_messages, conversion_rate, joined_at
		FROM users WHERE 1=1`
	var args []interface{}

	if filter.Role != "" {
		query += " AND role = ?"
		args = append(args, string(filter.Role))
	}
	if filter.ManagerID != "" {
		query += " AND manager_id = ?"
		args = append(args, filter.ManagerID)
	}
	query += " ORDER BY created_at, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("user", "query", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Avatar, &u.ManagerID,
			&u.InstagramUsername, &u.TikTokUsername,
			&u.Stats.NewLeads, &u.Stats.Replies, &u.Stats.OpenMessages,
			&u.Stats.ConversionRate, &u.JoinedAt); err != nil {
			return nil, errors.NewStoreError("user", "scan", err)
		}
		u.Role = models.Role(role)
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUserByID returns a single user, or nil if not found.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, email, role, avatar, manager_id,
		instagram_username, tiktok_username, new_leads, replies, open_messages,
		conversion_rate, joined_at FROM users WHERE id = ?`, id)

	var u models.User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Avatar, &u.ManagerID,
		&u.InstagramUsername, &u.TikTokUsername,
		&u.Stats.NewLeads, &u.Stats.Replies, &u.Stats.OpenMessages,
		&u.Stats.ConversionRate, &u.JoinedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStoreError("user", "get", err)
	}
	u.Role = models.Role(role)
	return &u, nil
}

// SaveLead inserts or replaces a lead.
func (s *SQLiteStore) SaveLead(ctx context.Context, lead *models.Lead) error {
	interests, err := json.Marshal(lead.Interests)
	if err != nil {
		return errors.NewStoreError("lead", "marshal interests", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO leads
		(id, name, username, platform, avatar, description, relevance, interests,
		 engagement_level, owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lead.ID, lead.Name, lead.Username, string(lead.Platform), lead.Avatar,
		lead.Description, string(lead.Relevance), string(interests),
		lead.EngagementLevel, lead.OwnerID)
	if err != nil {
		return errors.NewStoreError("lead", "save", err)
	}
	return nil
}

// GetLeads returns leads matching the filter, in insertion order.
func (s *SQLiteStore) GetLeads(ctx context.Context, filter LeadFilter) ([]models.Lead, error) {
	query := `SELECT id, name, username, platform, avatar, description, relevance,
		interests, engagement_level, owner_id FROM leads WHERE 1=1`
	var args []interface{}

	if filter.OwnerID != "" {
		query += " AND owner_id = ?"
		args = append(args, filter.OwnerID)
	}
	query += " ORDER BY created_at, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("lead", "query", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		var platform, relevance, interests string
		if err := rows.Scan(&l.ID, &l.Name, &l.Username, &platform, &l.Avatar,
			&l.Description, &relevance, &interests, &l.EngagementLevel, &l.OwnerID); err != nil {
			return nil, errors.NewStoreError("lead", "scan", err)
		}
		l.Platform = models.Platform(platform)
		l.Relevance = models.RelevanceTier(relevance)
		if interests != "" {
			if err := json.Unmarshal([]byte(interests), &l.Interests); err != nil {
				return nil, errors.NewStoreError("lead", "unmarshal interests", err)
			}
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// SaveProfile inserts or replaces an audience profile.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return errors.NewStoreError("profile", "marshal interests", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO profiles
		(id, name, username, avatar, bio, followers, engagement, interests, platform)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		profile.ID, profile.Name, profile.Username, profile.Avatar, profile.Bio,
		profile.Followers, profile.Engagement, string(interests), string(profile.Platform))
	if err != nil {
		return errors.NewStoreError("profile", "save", err)
	}
	return nil
}

// GetProfiles returns all audience profiles, in insertion order.
func (s *SQLiteStore) GetProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, username, avatar, bio,
		followers, engagement, interests, platform FROM profiles ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.NewStoreError("profile", "query", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		var platform, interests string
		if err := rows.Scan(&p.ID, &p.Name, &p.Username, &p.Avatar, &p.Bio,
			&p.Followers, &p.Engagement, &interests, &platform); err != nil {
			return nil, errors.NewStoreError("profile", "scan", err)
		}
		p.Platform = models.Platform(platform)
		if interests != "" {
			if err := json.Unmarshal([]byte(interests), &p.Interests); err != nil {
				return nil, errors.NewStoreError("profile", "unmarshal interests", err)
			}
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// SaveVideo inserts or replaces a training video.
func (s *SQLiteStore) SaveVideo(ctx context.Context, video *models.TrainingVideo) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO videos
		(id, title, description, duration, category, uploaded_by, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		video.ID, video.Title, video.Description, video.Duration, video.Category,
		video.UploadedBy, video.UploadedAt)
	if err != nil {
		return errors.NewStoreError("video", "save", err)
	}
	return nil
}

// DeleteVideo removes a training video from the catalog.
func (s *SQLiteStore) DeleteVideo(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return errors.NewStoreError("video", "delete", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.Wrapf(errors.ErrDataNotFound, "video %s", id)
	}
	return nil
}

// GetVideos returns training videos matching the filter, newest first.
func (s *SQLiteStore) GetVideos(ctx context.Context, filter VideoFilter) ([]models.TrainingVideo, error) {
	query := `SELECT id, title, description, duration, category, uploaded_by, uploaded_at
		FROM videos WHERE 1=1`
	var args []interface{}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	query += " ORDER BY uploaded_at DESC, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("video", "query", err)
	}
	defer rows.Close()

	var videos []models.TrainingVideo
	for rows.Next() {
		var v models.TrainingVideo
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Duration, &v.Category,
			&v.UploadedBy, &v.UploadedAt); err != nil {
			return nil, errors.NewStoreError("video", "scan", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// SaveMessage inserts or replaces an outreach message.
func (s *SQLiteStore) SaveMessage(ctx context.Context, msg *models.Message) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO messages
		(id, user_id, lead_name, platform, preview, status, sent_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.UserID, msg.LeadName, string(msg.Platform), msg.Preview,
		string(msg.Status), msg.SentAt)
	if err != nil {
		return errors.NewStoreError("message", "save", err)
	}
	return nil
}

// GetMessages returns outreach messages matching the filter, newest first.
func (s *SQLiteStore) GetMessages(ctx context.Context, filter MessageFilter) ([]models.Message, error) {
	query := `SELECT id, user_id, lead_name, platform, preview, status, sent_at
		FROM messages WHERE 1=1`
	var args []interface{}

	if filter.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	query += " ORDER BY sent_at DESC, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("message", "query", err)
	}
	defer rows.Close()

	var msgs []models.Message
	for rows.Next() {
		var m models.Message
		var platform, status string
		if err := rows.Scan(&m.ID, &m.UserID, &m.LeadName, &platform, &m.Preview,
			&status, &m.SentAt); err != nil {
			return nil, errors.NewStoreError("message", "scan", err)
		}
		m.Platform = models.Platform(platform)
		m.Status = models.MessageStatus(status)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// SaveJournalEntry persists a journal entry with its trades in a single
// transaction.
func (s *SQLiteStore) SaveJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreError("journal", "begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO journal_entries
		(id, user_id, date, mood, learnings, goals_for_tomorrow, total_pnl)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Date, string(entry.Mood), entry.Learnings,
		entry.GoalsForTomorrow, entry.TotalProfitLoss)
	if err != nil {
		return errors.NewStoreError("journal", "save entry", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_trades WHERE entry_id = ?`, entry.ID); err != nil {
		return errors.NewStoreError("journal", "clear trades", err)
	}

	for i, t := range entry.Trades {
		var exitPrice, pnl sql.NullFloat64
		if t.ExitPrice != nil {
			exitPrice = sql.NullFloat64{Float64: *t.ExitPrice, Valid: true}
		}
		if t.ProfitLoss != nil {
			pnl = sql.NullFloat64{Float64: *t.ProfitLoss, Valid: true}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO journal_trades
			(entry_id, seq, asset, direction, quantity, entry_price, exit_price, notes, result, pnl)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.ID, i, t.Asset, string(t.Direction), t.Quantity, t.EntryPrice,
			exitPrice, t.Notes, string(t.Result), pnl)
		if err != nil {
			return errors.NewStoreError("journal", "save trade", err)
		}
	}

	return tx.Commit()
}

// GetJournal returns journal entries matching the filter, newest first,
// each with its trades in recorded order.
func (s *SQLiteStore) GetJournal(ctx context.Context, filter JournalFilter) ([]models.JournalEntry, error) {
	query := `SELECT id, user_id, date, mood, learnings, goals_for_tomorrow, total_pnl
		FROM journal_entries WHERE 1=1`
	var args []interface{}

	if filter.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if !filter.StartDate.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND date < ?"
		args = append(args, filter.EndDate)
	}
	query += " ORDER BY date DESC, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("journal", "query", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		var mood string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &mood, &e.Learnings,
			&e.GoalsForTomorrow, &e.TotalProfitLoss); err != nil {
			return nil, errors.NewStoreError("journal", "scan entry", err)
		}
		e.Mood = models.Mood(mood)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		trades, err := s.getTrades(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Trades = trades
	}
	return entries, nil
}

func (s *SQLiteStore) getTrades(ctx context.Context, entryID string) ([]models.Trade, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT asset, direction, quantity, entry_price,
		exit_price, notes, result, pnl FROM journal_trades WHERE entry_id = ? ORDER BY seq`,
		entryID)
	if err != nil {
		return nil, errors.NewStoreError("journal", "query trades", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		var direction, result string
		var exitPrice, pnl sql.NullFloat64
		if err := rows.Scan(&t.Asset, &direction, &t.Quantity, &t.EntryPrice,
			&exitPrice, &t.Notes, &result, &pnl); err != nil {
			return nil, errors.NewStoreError("journal", "scan trade", err)
		}
		t.Direction = models.TradeDirection(direction)
		t.Result = models.TradeResult(result)
		if exitPrice.Valid {
			v := exitPrice.Float64
			t.ExitPrice = &v
		}
		if pnl.Valid {
			v := pnl.Float64
			t.ProfitLoss = &v
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}
