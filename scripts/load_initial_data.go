package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/config"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/database"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/formation"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the fixture files. Users are
// referenced by stable aliases so fixtures stay readable; each alias is
// mapped to a deterministic UUID derived from the alias string.
type GroupData struct {
	Name     string        `yaml:"name"`
	Owner    string        `yaml:"owner"`
	Members  []string      `yaml:"members,omitempty"`
	Messages []MessageData `yaml:"messages,omitempty"`
	Team     *TeamData     `yaml:"team,omitempty"`
}

type MessageData struct {
	Sender  string `yaml:"sender"`
	Content string `yaml:"content"`
}

type TeamData struct {
	Name          string            `yaml:"name"`
	StartersCount int               `yaml:"starters_count"`
	Formation     string            `yaml:"formation,omitempty"`
	Assignments   map[string]string `yaml:"assignments,omitempty"` // slot index -> member alias
}

type GroupsFile struct {
	Groups []GroupData `yaml:"groups"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	groups, err := loadGroups(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	groupCreated := 0
	messageCreated := 0
	teamCreated := 0
	for _, groupData := range groups {
		group, created, err := createGroup(db, groupData)
		if err != nil {
			return fmt.Errorf("failed to create group %s: %w", groupData.Name, err)
		}
		if created {
			groupCreated++
		}

		n, err := createMessages(db, group, groupData.Messages)
		if err != nil {
			return fmt.Errorf("failed to create messages for group %s: %w", groupData.Name, err)
		}
		messageCreated += n

		if groupData.Team != nil {
			created, err := createTeam(db, group, groupData.Team)
			if err != nil {
				return fmt.Errorf("failed to create team for group %s: %w", groupData.Name, err)
			}
			if created {
				teamCreated++
			}
		}
	}
	log.Printf("Groups: %d created, %d total", groupCreated, len(groups))
	log.Printf("Messages: %d created", messageCreated)
	log.Printf("Teams: %d created", teamCreated)

	return nil
}

func loadGroups(dataDir string) ([]GroupData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "groups.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file GroupsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Groups, nil
}

// userID maps a fixture alias to a deterministic UUID so reruns reuse
// the same users.
func userID(alias string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("seed-user:"+alias))
}

func createGroup(db *gorm.DB, data GroupData) (*models.Group, bool, error) {
	ownerID := userID(data.Owner)

	var group models.Group
	err := db.Where("name = ? AND owner_id = ?", data.Name, ownerID).First(&group).Error
	if err == nil {
		return &group, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	group = models.Group{
		Name:    data.Name,
		OwnerID: ownerID,
	}

	members := []models.GroupMember{{UserID: ownerID}}
	for _, alias := range data.Members {
		if alias == data.Owner {
			continue
		}
		members = append(members, models.GroupMember{UserID: userID(alias)})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].GroupID = group.ID
		}
		return tx.Create(&members).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &group, true, nil
}

func createMessages(db *gorm.DB, group *models.Group, messages []MessageData) (int, error) {
	var count int64
	if err := db.Model(&models.GroupMessage{}).Where("group_id = ?", group.ID).Count(&count).Error; err != nil {
		return 0, err
	}
	// Messages are immutable, so a non-empty history means this group
	// was already seeded.
	if count > 0 {
		return 0, nil
	}

	base := time.Now().Add(-time.Duration(len(messages)) * time.Minute)
	for i, data := range messages {
		message := models.GroupMessage{
			GroupID:  group.ID,
			SenderID: userID(data.Sender),
			Content:  data.Content,
		}
		message.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.Create(&message).Error; err != nil {
			return 0, err
		}
	}
	return len(messages), nil
}

func createTeam(db *gorm.DB, group *models.Group, data *TeamData) (bool, error) {
	var existing models.Team
	err := db.Where("group_id = ?", group.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	team := models.Team{
		GroupID:       group.ID,
		OwnerID:       group.OwnerID,
		Name:          data.Name,
		StartersCount: data.StartersCount,
	}

	var slots []models.TeamSlot
	if data.Formation != "" {
		layout, ok := formation.Lookup(data.StartersCount, data.Formation)
		if !ok {
			return false, fmt.Errorf("unknown formation %q for %d starters", data.Formation, data.StartersCount)
		}
		team.Formation = &data.Formation
		for i, s := range layout {
			slot := models.TeamSlot{
				Index: i,
				Role:  s.Role,
				X:     s.X,
				Y:     s.Y,
			}
			if alias, ok := data.Assignments[fmt.Sprintf("%d", i)]; ok {
				id := userID(alias)
				slot.UserID = &id
			}
			slots = append(slots, slot)
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		for i := range slots {
			slots[i].TeamID = team.ID
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
