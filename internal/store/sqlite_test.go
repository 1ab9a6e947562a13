package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"leaddesk/internal/errors"
	"leaddesk/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUserRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.User{
		ID:                "user-2",
		Name:              "Büsra",
		Email:             "buesra@example.com",
		Role:              models.RoleParticipant,
		ManagerID:         "user-1",
		InstagramUsername: "@buesra.leads",
		Stats:             models.UserStats{NewLeads: 87, Replies: 34, OpenMessages: 12, ConversionRate: 39},
		JoinedAt:          time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := store.SaveUser(ctx, &user); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	got, err := store.GetUserByID(ctx, "user-2")
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got == nil {
		t.Fatal("user not found after save")
	}
	if got.Name != "Büsra" || got.Role != models.RoleParticipant {
		t.Errorf("unexpected user: %+v", got)
	}
	if got.Stats.NewLeads != 87 || got.Stats.ConversionRate != 39 {
		t.Errorf("stats not round-tripped: %+v", got.Stats)
	}

	missing, err := store.GetUserByID(ctx, "no-such-user")
	if err != nil {
		t.Fatalf("GetUserByID (missing): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}
}

func TestGetUsersFilterByRole(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	users := []models.User{
		{ID: "user-1", Name: "Yavuz", Email: "y@example.com", Role: models.RoleManager},
		{ID: "user-2", Name: "Büsra", Email: "b@example.com", Role: models.RoleParticipant, ManagerID: "user-1"},
		{ID: "user-3", Name: "Tuana", Email: "t@example.com", Role: models.RoleParticipant, ManagerID: "user-1"},
	}
	for i := range users {
		if err := store.SaveUser(ctx, &users[i]); err != nil {
			t.Fatalf("SaveUser: %v", err)
		}
	}

	participants, err := store.GetUsers(ctx, UserFilter{Role: models.RoleParticipant})
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(participants))
	}
	for _, u := range participants {
		if u.Role != models.RoleParticipant {
			t.Errorf("user %s has role %s", u.ID, u.Role)
		}
	}
}

func TestLeadRoundTripWithInterests(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	lead := models.Lead{
		ID:              "lead-1",
		Name:            "Sarah Weber",
		Username:        "@sarahweber",
		Platform:        models.PlatformInstagram,
		Description:     "Fitness-Enthusiastin",
		Relevance:       models.RelevanceHigh,
		Interests:       []string{"Sport", "Fitness", "Ernährung"},
		EngagementLevel: 94,
		OwnerID:         "user-2",
	}
	if err := store.SaveLead(ctx, &lead); err != nil {
		t.Fatalf("SaveLead: %v", err)
	}

	leads, err := store.GetLeads(ctx, LeadFilter{})
	if err != nil {
		t.Fatalf("GetLeads: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}
	got := leads[0]
	if !reflect.DeepEqual(got.Interests, lead.Interests) {
		t.Errorf("interests = %v, want %v", got.Interests, lead.Interests)
	}
	if got.Platform != models.PlatformInstagram || got.Relevance != models.RelevanceHigh {
		t.Errorf("enums not round-tripped: %+v", got)
	}
	if got.EngagementLevel != 94 || got.OwnerID != "user-2" {
		t.Errorf("unexpected lead: %+v", got)
	}
}

func TestGetLeadsFilterByOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, l := range []models.Lead{
		{ID: "lead-1", Name: "A", Username: "@a", Platform: models.PlatformInstagram,
			Relevance: models.RelevanceHigh, OwnerID: "user-2"},
		{ID: "lead-2", Name: "B", Username: "@b", Platform: models.PlatformTikTok,
			Relevance: models.RelevanceMedium, OwnerID: "user-3"},
	} {
		lead := l
		if err := store.SaveLead(ctx, &lead); err != nil {
			t.Fatalf("SaveLead: %v", err)
		}
	}

	leads, err := store.GetLeads(ctx, LeadFilter{OwnerID: "user-3"})
	if err != nil {
		t.Fatalf("GetLeads: %v", err)
	}
	if len(leads) != 1 || leads[0].ID != "lead-2" {
		t.Fatalf("expected only lead-2, got %+v", leads)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profile := models.Profile{
		ID:         "profile-1",
		Name:       "Anna Müller",
		Username:   "@anna.fitness",
		Bio:        "Personal Trainer",
		Followers:  12500,
		Engagement: 4.8,
		Interests:  []string{"Sport", "Fitness"},
		Platform:   models.PlatformInstagram,
	}
	if err := store.SaveProfile(ctx, &profile); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	profiles, err := store.GetProfiles(ctx)
	if err != nil {
		t.Fatalf("GetProfiles: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	got := profiles[0]
	if got.Followers != 12500 || got.Engagement != 4.8 {
		t.Errorf("numbers not round-tripped: %+v", got)
	}
	if !reflect.DeepEqual(got.Interests, profile.Interests) {
		t.Errorf("interests = %v, want %v", got.Interests, profile.Interests)
	}
}

func TestVideoSaveFilterDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	videos := []models.TrainingVideo{
		{ID: "vid-1", Title: "Die perfekte Bio", Category: "Instagram Basics",
			Duration: "12:34", UploadedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "vid-2", Title: "Hook-Formeln", Category: "TikTok Advanced",
			Duration: "08:15", UploadedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for i := range videos {
		if err := store.SaveVideo(ctx, &videos[i]); err != nil {
			t.Fatalf("SaveVideo: %v", err)
		}
	}

	all, err := store.GetVideos(ctx, VideoFilter{})
	if err != nil {
		t.Fatalf("GetVideos: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(all))
	}
	if all[0].ID != "vid-2" {
		t.Errorf("videos should come back newest first, got %s first", all[0].ID)
	}

	tiktok, err := store.GetVideos(ctx, VideoFilter{Category: "TikTok Advanced"})
	if err != nil {
		t.Fatalf("GetVideos (category): %v", err)
	}
	if len(tiktok) != 1 || tiktok[0].ID != "vid-2" {
		t.Fatalf("expected only vid-2, got %+v", tiktok)
	}

	if err := store.DeleteVideo(ctx, "vid-1"); err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}
	remaining, err := store.GetVideos(ctx, VideoFilter{})
	if err != nil {
		t.Fatalf("GetVideos (after delete): %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "vid-2" {
		t.Fatalf("expected only vid-2 to remain, got %+v", remaining)
	}
}

func TestDeleteVideoNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteVideo(context.Background(), "no-such-video")
	if !errors.Is(err, errors.ErrDataNotFound) {
		t.Errorf("expected ErrDataNotFound, got %v", err)
	}
}

func TestMessageFilterByStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	msgs := []models.Message{
		{ID: "msg-1", UserID: "user-2", LeadName: "Sarah Weber", Platform: models.PlatformInstagram,
			Status: models.MessageReplied, SentAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "msg-2", UserID: "user-2", LeadName: "Max Müller", Platform: models.PlatformTikTok,
			Status: models.MessagePending, SentAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
		{ID: "msg-3", UserID: "user-3", LeadName: "Lisa Schmidt", Platform: models.PlatformInstagram,
			Status: models.MessagePending, SentAt: time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)},
	}
	for i := range msgs {
		if err := store.SaveMessage(ctx, &msgs[i]); err != nil {
			t.Fatalf("SaveMessage: %v", err)
		}
	}

	pending, err := store.GetMessages(ctx, MessageFilter{Status: models.MessagePending})
	if err != nil {
		t.Fatalf("GetMessages: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending messages, got %d", len(pending))
	}
	if pending[0].ID != "msg-3" {
		t.Errorf("messages should come back newest first, got %s first", pending[0].ID)
	}

	mine, err := store.GetMessages(ctx, MessageFilter{UserID: "user-2", Status: models.MessagePending})
	if err != nil {
		t.Fatalf("GetMessages (user+status): %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "msg-2" {
		t.Fatalf("expected only msg-2, got %+v", mine)
	}
}

func TestJournalEntryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	exit := 155.50
	pnl := 55.00
	entry := models.JournalEntry{
		ID:     "entry-1",
		UserID: "user-2",
		Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Trades: []models.Trade{
			{Asset: "AAPL", Direction: models.TradeBuy, Quantity: 10, EntryPrice: 150.00,
				ExitPrice: &exit, Result: models.TradeSuccess, ProfitLoss: &pnl},
			{Asset: "BTC", Direction: models.TradeBuy, Quantity: 0.5, EntryPrice: 42000,
				Result: models.TradePending},
		},
		Mood:             models.MoodHappy,
		Learnings:        "Geduld zahlt sich aus",
		GoalsForTomorrow: "Stop-Loss konsequent setzen",
		TotalProfitLoss:  55.00,
	}
	if err := store.SaveJournalEntry(ctx, &entry); err != nil {
		t.Fatalf("SaveJournalEntry: %v", err)
	}

	entries, err := store.GetJournal(ctx, JournalFilter{UserID: "user-2"})
	if err != nil {
		t.Fatalf("GetJournal: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.Mood != models.MoodHappy || got.TotalProfitLoss != 55.00 {
		t.Errorf("unexpected entry: %+v", got)
	}
	if len(got.Trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(got.Trades))
	}
	if got.Trades[0].Asset != "AAPL" || got.Trades[1].Asset != "BTC" {
		t.Errorf("trades out of order: %+v", got.Trades)
	}
	if got.Trades[0].ProfitLoss == nil || *got.Trades[0].ProfitLoss != 55.00 {
		t.Errorf("closed trade P&L not round-tripped: %+v", got.Trades[0])
	}
	if got.Trades[1].ExitPrice != nil || got.Trades[1].ProfitLoss != nil {
		t.Errorf("open trade should keep nil exit and P&L: %+v", got.Trades[1])
	}
}

func TestSaveJournalEntryReplacesTrades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := models.JournalEntry{
		ID:     "entry-1",
		UserID: "user-2",
		Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Mood:   models.MoodNeutral,
		Trades: []models.Trade{
			{Asset: "AAPL", Direction: models.TradeBuy, Quantity: 10, EntryPrice: 150, Result: models.TradePending},
			{Asset: "TSLA", Direction: models.TradeSell, Quantity: 5, EntryPrice: 200, Result: models.TradePending},
		},
	}
	if err := store.SaveJournalEntry(ctx, &entry); err != nil {
		t.Fatalf("SaveJournalEntry: %v", err)
	}

	entry.Trades = entry.Trades[:1]
	if err := store.SaveJournalEntry(ctx, &entry); err != nil {
		t.Fatalf("SaveJournalEntry (resave): %v", err)
	}

	entries, err := store.GetJournal(ctx, JournalFilter{})
	if err != nil {
		t.Fatalf("GetJournal: %v", err)
	}
	if len(entries) != 1 || len(entries[0].Trades) != 1 {
		t.Fatalf("resave should replace trades, got %+v", entries)
	}
}

func TestGetJournalDateRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, day := range []int{10, 15, 20} {
		entry := models.JournalEntry{
			ID:     "entry-" + time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC).Format("02"),
			UserID: "user-2",
			Date:   time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			Mood:   models.MoodNeutral,
		}
		if err := store.SaveJournalEntry(ctx, &entry); err != nil {
			t.Fatalf("SaveJournalEntry: %v", err)
		}
	}

	entries, err := store.GetJournal(ctx, JournalFilter{
		StartDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("GetJournal: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "entry-15" {
		t.Fatalf("expected only the mid-March entry, got %+v", entries)
	}
}
