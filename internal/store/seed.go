package store

import (
	"context"
	"time"

	"leaddesk/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(v float64) *float64 { return &v }

// Seed loads the demo data set into the store: a manager with three team
// members, their leads and outreach messages, the audience profile pool,
// the training-video catalog, and one journal entry.
func Seed(ctx context.Context, s DataStore) error {
	users := []models.User{
		{
			ID: "manager-1", Name: "Yavuz", Email: "yavuz@thekingdom.com",
			Role: models.RoleManager, Avatar: "Y",
			InstagramUsername: "@yavuz",
			JoinedAt:          date(2024, 1, 15),
		},
		{
			ID: "user-1", Name: "Büsra", Email: "busra@thekingdom.com",
			Role: models.RoleParticipant, Avatar: "B", ManagerID: "manager-1",
			InstagramUsername: "@busra",
			Stats:             models.UserStats{NewLeads: 87, Replies: 34, OpenMessages: 12, ConversionRate: 39},
			JoinedAt:          date(2024, 2, 1),
		},
		{
			ID: "user-2", Name: "Tuana", Email: "tuana@thekingdom.com",
			Role: models.RoleParticipant, Avatar: "T", ManagerID: "manager-1",
			InstagramUsername: "@tuana", TikTokUsername: "@tuana",
			Stats:             models.UserStats{NewLeads: 124, Replies: 56, OpenMessages: 18, ConversionRate: 45},
			JoinedAt:          date(2024, 2, 5),
		},
		{
			ID: "user-3", Name: "Emine", Email: "emine@thekingdom.com",
			Role: models.RoleParticipant, Avatar: "E", ManagerID: "manager-1",
			InstagramUsername: "@emine", TikTokUsername: "@emine",
			Stats:             models.UserStats{NewLeads: 98, Replies: 41, OpenMessages: 15, ConversionRate: 42},
			JoinedAt:          date(2024, 2, 10),
		},
	}
	for i := range users {
		if err := s.SaveUser(ctx, &users[i]); err != nil {
			return err
		}
	}

	leads := []models.Lead{
		{
			ID: "lead-1", Name: "Sarah Weber", Username: "@sarahweber_lead",
			Platform: models.PlatformInstagram, Avatar: "SW",
			Description: "Content Creator & Entrepreneur | 25k Follower",
			Relevance:   models.RelevanceHigh,
			Interests:   []string{"Business", "Marketing", "Growth"},
			EngagementLevel: 94, OwnerID: "user-1",
		},
		{
			ID: "lead-2", Name: "Max Müller", Username: "@maxmueller_lead",
			Platform: models.PlatformTikTok, Avatar: "MM",
			Description: "Digital Marketer | 15k Follower",
			Relevance:   models.RelevanceHigh,
			Interests:   []string{"Marketing", "Tools", "Automation"},
			EngagementLevel: 87, OwnerID: "user-2",
		},
		{
			ID: "lead-3", Name: "Lisa Schmidt", Username: "@lisaschmidt_lead",
			Platform: models.PlatformInstagram, Avatar: "LS",
			Description: "Freelance Designer | 8k Follower",
			Relevance:   models.RelevanceMedium,
			Interests:   []string{"Design", "Produktivität", "Kreativität"},
			EngagementLevel: 76, OwnerID: "user-3",
		},
	}
	for i := range leads {
		if err := s.SaveLead(ctx, &leads[i]); err != nil {
			return err
		}
	}

	profiles := []models.Profile{
		{
			ID: "profile-1", Name: "Anna Müller", Username: "@anna.fitness", Avatar: "AM",
			Bio:       "Personal Trainer • Ernährungsberaterin • Sport ist meine Leidenschaft",
			Followers: 24500, Engagement: 8.5,
			Interests: []string{"Sport", "Fitness", "Ernährung", "Gesundheit"},
			Platform:  models.PlatformInstagram,
		},
		{
			ID: "profile-2", Name: "Anna Schmidt", Username: "@anna.lifestyle", Avatar: "AS",
			Bio:       "Lifestyle Blogger • Coffee Lover • Travel Addict",
			Followers: 18200, Engagement: 6.2,
			Interests: []string{"Lifestyle", "Reisen", "Mode"},
			Platform:  models.PlatformInstagram,
		},
		{
			ID: "profile-3", Name: "Max Sport", Username: "@maxfit_coach", Avatar: "MS",
			Bio:       "Fitness Coach • Bodybuilding • Transformation Expert",
			Followers: 45000, Engagement: 12.3,
			Interests: []string{"Sport", "Fitness", "Bodybuilding"},
			Platform:  models.PlatformInstagram,
		},
		{
			ID: "profile-4", Name: "Laura Sportlife", Username: "@laura.sports", Avatar: "LS",
			Bio:       "Yoga Teacher • Mindfulness • Sport & Balance",
			Followers: 32100, Engagement: 9.7,
			Interests: []string{"Sport", "Yoga", "Wellness", "Gesundheit"},
			Platform:  models.PlatformInstagram,
		},
		{
			ID: "profile-5", Name: "Tom Fitness", Username: "@tom.training", Avatar: "TF",
			Bio:       "Athletic Trainer • HIIT Specialist • Sports Nutrition",
			Followers: 28900, Engagement: 10.2,
			Interests: []string{"Sport", "Fitness", "Training", "Ernährung"},
			Platform:  models.PlatformTikTok,
		},
		{
			ID: "profile-6", Name: "Sarah Sport", Username: "@sarah_active", Avatar: "SS",
			Bio:       "Runner • Marathon Training • Sports Enthusiast",
			Followers: 19500, Engagement: 7.8,
			Interests: []string{"Sport", "Laufen", "Marathon", "Fitness"},
			Platform:  models.PlatformInstagram,
		},
		{
			ID: "profile-7", Name: "Anna Wagner", Username: "@anna.daily", Avatar: "AW",
			Bio:       "Mompreneur • Family Life • DIY Projects",
			Followers: 15600, Engagement: 5.4,
			Interests: []string{"Familie", "DIY", "Lifestyle"},
			Platform:  models.PlatformInstagram,
		},
		{
			ID: "profile-8", Name: "Sophie Anna", Username: "@sophie.anna", Avatar: "SA",
			Bio:       "Fashion & Beauty • Style Inspiration • Shopping Addict",
			Followers: 22400, Engagement: 6.9,
			Interests: []string{"Mode", "Beauty", "Shopping"},
			Platform:  models.PlatformTikTok,
		},
	}
	for i := range profiles {
		if err := s.SaveProfile(ctx, &profiles[i]); err != nil {
			return err
		}
	}

	videos := []models.TrainingVideo{
		{
			ID: "video-1", Title: "Instagram DM Strategie für Anfänger",
			Description: "Lerne die Grundlagen der Instagram DM-Akquise und wie du effektiv Leads generierst.",
			Duration:    "15:30", Category: "Instagram Basics",
			UploadedBy: "Yavuz", UploadedAt: date(2024, 1, 10),
		},
		{
			ID: "video-2", Title: "TikTok Lead Generation Masterclass",
			Description: "Fortgeschrittene Techniken für die Lead-Generierung auf TikTok.",
			Duration:    "22:15", Category: "TikTok Advanced",
			UploadedBy: "Yavuz", UploadedAt: date(2024, 1, 8),
		},
		{
			ID: "video-3", Title: "Perfekte Nachrichten schreiben",
			Description: "Wie du Nachrichten schreibst, die hohe Antwortquoten erzielen.",
			Duration:    "18:45", Category: "Kommunikation",
			UploadedBy: "Yavuz", UploadedAt: date(2024, 1, 5),
		},
		{
			ID: "video-4", Title: "Audio-Antworten effektiv nutzen",
			Description: "Wie du mit Audio-Nachrichten eine persönliche Verbindung aufbaust.",
			Duration:    "12:20", Category: "Kommunikation",
			UploadedBy: "Yavuz", UploadedAt: date(2024, 1, 3),
		},
		{
			ID: "video-5", Title: "Lead Management Best Practices",
			Description: "Organisiere deine Leads professionell und steigere deine Conversion.",
			Duration:    "20:10", Category: "Lead Management",
			UploadedBy: "Yavuz", UploadedAt: date(2024, 1, 1),
		},
	}
	for i := range videos {
		if err := s.SaveVideo(ctx, &videos[i]); err != nil {
			return err
		}
	}

	messages := []models.Message{
		{
			ID: "msg-1", UserID: "user-1", LeadName: "Sarah Weber",
			Platform: models.PlatformInstagram,
			Preview:  "Hey, das klingt super interessant! Wann können wir telefonieren?",
			Status:   models.MessageReplied, SentAt: date(2024, 1, 12),
		},
		{
			ID: "msg-2", UserID: "user-2", LeadName: "Max Müller",
			Platform: models.PlatformTikTok,
			Preview:  "Danke für die Nachricht! Erzähl mir mehr darüber.",
			Status:   models.MessageReplied, SentAt: date(2024, 1, 12),
		},
		{
			ID: "msg-3", UserID: "user-2", LeadName: "Tom Fischer",
			Platform: models.PlatformTikTok,
			Preview:  "Hey Tom! Mir ist aufgefallen...",
			Status:   models.MessagePending, SentAt: date(2024, 1, 11),
		},
		{
			ID: "msg-4", UserID: "user-3", LeadName: "Lisa Schmidt",
			Platform: models.PlatformInstagram,
			Preview:  "Ja gerne! Aber erst nächste Woche, okay?",
			Status:   models.MessageFollowUp, SentAt: date(2024, 1, 10),
		},
		{
			ID: "msg-5", UserID: "user-1", LeadName: "Anna Klein",
			Platform: models.PlatformInstagram,
			Preview:  "Hallo Anna! Als jemand...",
			Status:   models.MessagePending, SentAt: date(2024, 1, 9),
		},
		{
			ID: "msg-6", UserID: "user-3", LeadName: "Daniel Becker",
			Platform: models.PlatformTikTok,
			Preview:  "Cool, schick mir mal mehr Infos!",
			Status:   models.MessageFollowUp, SentAt: date(2024, 1, 7),
		},
	}
	for i := range messages {
		if err := s.SaveMessage(ctx, &messages[i]); err != nil {
			return err
		}
	}

	entry := models.JournalEntry{
		ID: "entry-1", UserID: "manager-1", Date: date(2024, 1, 10),
		Trades: []models.Trade{
			{
				Asset: "AAPL", Direction: models.TradeBuy, Quantity: 10,
				EntryPrice: 150.00, ExitPrice: ptr(155.50),
				Result: models.TradeSuccess, ProfitLoss: ptr(55.00),
				Notes: "Starke Quartalszahlen, guter Zeitpunkt für Entry",
			},
			{
				Asset: "TSLA", Direction: models.TradeSell, Quantity: 5,
				EntryPrice: 200.00, ExitPrice: ptr(195.00),
				Result: models.TradeSuccess, ProfitLoss: ptr(25.00),
				Notes: "Short hat funktioniert, Kurs ist gefallen",
			},
		},
		Mood:             models.MoodNeutral,
		Learnings:        "Geduld ist wichtig - nicht zu früh aussteigen bei kurzfristigen Schwankungen",
		GoalsForTomorrow: "Neue Tech-Aktien analysieren und Watchlist erstellen",
		TotalProfitLoss:  80.00,
	}
	return s.SaveJournalEntry(ctx, &entry)
}
