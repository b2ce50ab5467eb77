package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"clubhub/internal/config"
	"clubhub/internal/database"
	"clubhub/internal/observability"
	"clubhub/internal/rbac"
	"clubhub/internal/storage"
	"clubhub/pkg/auth"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedUser represents a user document for seeding.
type SeedUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	AvatarURL string             `bson:"avatarUrl"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// SeedOrganization represents an organization document for seeding.
type SeedOrganization struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
	LogoURL     string             `bson:"logoUrl"`
	OwnerID     primitive.ObjectID `bson:"ownerId"`
	Seats       int                `bson:"seats"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// SeedMembership represents a membership document for seeding.
type SeedMembership struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	OrgID    primitive.ObjectID `bson:"orgId"`
	UserID   primitive.ObjectID `bson:"userId"`
	Role     rbac.Role          `bson:"role"`
	Primary  bool               `bson:"primary"`
	JoinedAt time.Time          `bson:"joinedAt"`
}

// SeedInvitation represents a pending invitation document for seeding.
type SeedInvitation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OrgID     primitive.ObjectID `bson:"orgId"`
	Email     string             `bson:"email"`
	Role      rbac.Role          `bson:"role"`
	Token     string             `bson:"token"`
	InvitedBy primitive.ObjectID `bson:"invitedBy"`
	ExpiresAt time.Time          `bson:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// SeedContent represents a content document for seeding.
type SeedContent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OrgID         primitive.ObjectID `bson:"orgId"`
	AuthorID      primitive.ObjectID `bson:"authorId"`
	Title         string             `bson:"title"`
	Body          string             `bson:"body"`
	Tags          []string           `bson:"tags"`
	Status        string             `bson:"status"`
	AttachmentKey string             `bson:"attachmentKey"`
	PublishedAt   *time.Time         `bson:"publishedAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// SeedRosterEntry represents a roster entry inside a class document.
type SeedRosterEntry struct {
	UserID  primitive.ObjectID `bson:"userId"`
	Role    rbac.ClassRole     `bson:"role"`
	AddedAt time.Time          `bson:"addedAt"`
}

// SeedResultEntry represents a recorded result inside a class document.
type SeedResultEntry struct {
	UserID     primitive.ObjectID `bson:"userId"`
	Label      string             `bson:"label"`
	Value      string             `bson:"value"`
	RecordedBy primitive.ObjectID `bson:"recordedBy"`
	RecordedAt time.Time          `bson:"recordedAt"`
}

// SeedClass represents a class document for seeding.
type SeedClass struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OrgID     primitive.ObjectID `bson:"orgId"`
	Name      string             `bson:"name"`
	Roster    []SeedRosterEntry  `bson:"roster"`
	Results   []SeedResultEntry  `bson:"results"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, logger)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
		logger,
	)

	ctx := context.Background()

	userIDs := seedUsers(ctx, mongoDB.Database)
	orgIDs := seedOrganizations(ctx, mongoDB.Database, userIDs)
	seedMemberships(ctx, mongoDB.Database, orgIDs, userIDs)
	seedInvitations(ctx, mongoDB.Database, orgIDs, userIDs)
	seedContent(ctx, mongoDB.Database, s3Client, orgIDs, userIDs)
	seedClasses(ctx, mongoDB.Database, orgIDs, userIDs)

	log.Println("Seed completed successfully!")
}

// seedUsers inserts the demo users. Index 0 is the club owner, 1 the admin,
// 2 the coach, 3 a viewer (parent), 4 a student without any memberships.
func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password, _ := auth.HashPassword("password123")

	now := time.Now()

	users := []interface{}{
		SeedUser{
			Email:     "diana@example.com",
			Password:  password,
			Name:      "Diana Reyes",
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeedUser{
			Email:     "marcus@example.com",
			Password:  password,
			Name:      "Marcus Webb",
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeedUser{
			Email:     "priya@example.com",
			Password:  password,
			Name:      "Priya Sharma",
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeedUser{
			Email:     "tom@example.com",
			Password:  password,
			Name:      "Tom Okafor",
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeedUser{
			Email:     "lily@example.com",
			Password:  password,
			Name:      "Lily Okafor",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedOrganizations(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("organizations")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear organizations: %v", err)
	}

	now := time.Now()

	orgs := []interface{}{
		SeedOrganization{
			Name:        "Northside FC",
			Slug:        "northside-fc",
			Description: "Youth football club on the north side of town.",
			OwnerID:     userIDs[0],
			Seats:       50,
			CreatedAt:   now.Add(-90 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		SeedOrganization{
			Name:        "Riverdale Swim School",
			Slug:        "riverdale-swim",
			Description: "Swimming lessons for all ages.",
			OwnerID:     userIDs[1],
			Seats:       20,
			CreatedAt:   now.Add(-30 * 24 * time.Hour),
			UpdatedAt:   now,
		},
	}

	result, err := collection.InsertMany(ctx, orgs)
	if err != nil {
		log.Fatalf("Failed to seed organizations: %v", err)
	}

	log.Printf("Seeded %d organizations", len(result.InsertedIDs))

	var orgIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		orgIDs = append(orgIDs, id.(primitive.ObjectID))
	}

	return orgIDs
}

func seedMemberships(ctx context.Context, db *mongo.Database, orgIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("memberships")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear memberships: %v", err)
	}

	now := time.Now()

	memberships := []interface{}{
		// Northside FC
		SeedMembership{OrgID: orgIDs[0], UserID: userIDs[0], Role: rbac.RoleOwner, Primary: true, JoinedAt: now.Add(-90 * 24 * time.Hour)},
		SeedMembership{OrgID: orgIDs[0], UserID: userIDs[1], Role: rbac.RoleAdmin, Primary: false, JoinedAt: now.Add(-80 * 24 * time.Hour)},
		SeedMembership{OrgID: orgIDs[0], UserID: userIDs[2], Role: rbac.RoleCoach, Primary: true, JoinedAt: now.Add(-60 * 24 * time.Hour)},
		SeedMembership{OrgID: orgIDs[0], UserID: userIDs[3], Role: rbac.RoleViewer, Primary: true, JoinedAt: now.Add(-45 * 24 * time.Hour)},
		// Riverdale Swim School
		SeedMembership{OrgID: orgIDs[1], UserID: userIDs[1], Role: rbac.RoleOwner, Primary: true, JoinedAt: now.Add(-30 * 24 * time.Hour)},
		SeedMembership{OrgID: orgIDs[1], UserID: userIDs[2], Role: rbac.RoleCoach, Primary: false, JoinedAt: now.Add(-20 * 24 * time.Hour)},
	}

	result, err := collection.InsertMany(ctx, memberships)
	if err != nil {
		log.Fatalf("Failed to seed memberships: %v", err)
	}

	log.Printf("Seeded %d memberships", len(result.InsertedIDs))
}

func seedInvitations(ctx context.Context, db *mongo.Database, orgIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("invitations")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear invitations: %v", err)
	}

	now := time.Now()

	invitations := []interface{}{
		SeedInvitation{
			OrgID:     orgIDs[0],
			Email:     "lily@example.com",
			Role:      rbac.RoleViewer,
			Token:     uuid.NewString(),
			InvitedBy: userIDs[0],
			ExpiresAt: now.Add(7 * 24 * time.Hour),
			CreatedAt: now,
		},
		SeedInvitation{
			OrgID:     orgIDs[1],
			Email:     "newcoach@example.com",
			Role:      rbac.RoleCoach,
			Token:     uuid.NewString(),
			InvitedBy: userIDs[1],
			ExpiresAt: now.Add(7 * 24 * time.Hour),
			CreatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, invitations)
	if err != nil {
		log.Fatalf("Failed to seed invitations: %v", err)
	}

	log.Printf("Seeded %d invitations", len(result.InsertedIDs))
}

func seedContent(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client, orgIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("content")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear content: %v", err)
	}

	now := time.Now()
	publishedAt := now.Add(-48 * time.Hour)

	items := []SeedContent{
		{
			OrgID:         orgIDs[0],
			AuthorID:      userIDs[2],
			Title:         "U12 training plan, week 4",
			Body:          "Warm-up: 10 minutes of light jogging and dynamic stretches. Main block: passing triangles, 3v2 transitions, finishing drills. Cool down with static stretching.",
			Tags:          []string{"training", "u12"},
			Status:        "published",
			AttachmentKey: "northside-fc/u12-week4.pdf",
			PublishedAt:   &publishedAt,
			CreatedAt:     now.Add(-72 * time.Hour),
			UpdatedAt:     now.Add(-48 * time.Hour),
		},
		{
			OrgID:       orgIDs[0],
			AuthorID:    userIDs[0],
			Title:       "Spring tournament schedule",
			Body:        "The spring tournament runs from April 12 to April 14. Match schedule and pitch assignments will be posted a week in advance. All squads should confirm availability.",
			Tags:        []string{"tournament", "schedule"},
			Status:      "published",
			PublishedAt: &publishedAt,
			CreatedAt:   now.Add(-96 * time.Hour),
			UpdatedAt:   now.Add(-48 * time.Hour),
		},
		{
			OrgID:     orgIDs[0],
			AuthorID:  userIDs[2],
			Title:     "Goalkeeper session notes (draft)",
			Body:      "Draft notes for the dedicated goalkeeper session. Shot stopping, distribution under pressure, and communication with the back line.",
			Tags:      []string{"training", "goalkeeping"},
			Status:    "draft",
			CreatedAt: now.Add(-6 * time.Hour),
			UpdatedAt: now.Add(-6 * time.Hour),
		},
		{
			OrgID:       orgIDs[1],
			AuthorID:    userIDs[1],
			Title:       "Pool safety briefing",
			Body:        "All swimmers must shower before entering the pool. No running on the deck. Lifeguard whistle signals: one short for attention, three long for emergency.",
			Tags:        []string{"safety"},
			Status:      "published",
			PublishedAt: &publishedAt,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
	}

	// Upload placeholder attachments to S3/MinIO
	for _, item := range items {
		if item.AttachmentKey != "" {
			uploadPlaceholderAttachment(ctx, s3Client, item.AttachmentKey)
		}
	}

	var toInsert []interface{}
	for _, item := range items {
		toInsert = append(toInsert, item)
	}

	result, err := collection.InsertMany(ctx, toInsert)
	if err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	log.Printf("Seeded %d content items", len(result.InsertedIDs))
}

func seedClasses(ctx context.Context, db *mongo.Database, orgIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("classes")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear classes: %v", err)
	}

	now := time.Now()

	classes := []interface{}{
		SeedClass{
			OrgID: orgIDs[0],
			Name:  "U12 Tuesday group",
			Roster: []SeedRosterEntry{
				{UserID: userIDs[2], Role: rbac.ClassRoleTeacher, AddedAt: now.Add(-60 * 24 * time.Hour)},
				{UserID: userIDs[3], Role: rbac.ClassRoleParent, AddedAt: now.Add(-45 * 24 * time.Hour)},
				{UserID: userIDs[4], Role: rbac.ClassRoleStudent, AddedAt: now.Add(-45 * 24 * time.Hour)},
			},
			Results: []SeedResultEntry{
				{UserID: userIDs[4], Label: "100m sprint", Value: "14.8s", RecordedBy: userIDs[2], RecordedAt: now.Add(-7 * 24 * time.Hour)},
				{UserID: userIDs[4], Label: "100m sprint", Value: "14.5s", RecordedBy: userIDs[2], RecordedAt: now.Add(-24 * time.Hour)},
			},
			CreatedAt: now.Add(-60 * 24 * time.Hour),
			UpdatedAt: now,
		},
		SeedClass{
			OrgID: orgIDs[1],
			Name:  "Beginner swimmers, Saturday",
			Roster: []SeedRosterEntry{
				{UserID: userIDs[2], Role: rbac.ClassRoleTeacher, AddedAt: now.Add(-20 * 24 * time.Hour)},
			},
			Results:   []SeedResultEntry{},
			CreatedAt: now.Add(-20 * 24 * time.Hour),
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, classes)
	if err != nil {
		log.Fatalf("Failed to seed classes: %v", err)
	}

	log.Printf("Seeded %d classes", len(result.InsertedIDs))
}

// uploadPlaceholderAttachment uploads a placeholder PDF to S3.
func uploadPlaceholderAttachment(ctx context.Context, s3Client *storage.S3Client, key string) {
	placeholder := []byte("%PDF-1.4\n% placeholder seed document\n%%EOF\n")

	err := s3Client.PutObject(ctx, key, bytes.NewReader(placeholder), "application/pdf")
	if err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder attachment: %s", key)
}
