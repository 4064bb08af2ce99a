// persistence/archive.go
package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GameModel is one started game: which room and which identities, in seat
// order after the start shuffle.
type GameModel struct {
	ID        uint   `gorm:"primaryKey"`
	RoomID    string `gorm:"index;not null"`
	Players   string `gorm:"not null"` // JSON array of identities, seat order
	CreatedAt time.Time
}

// ActionModel is one successfully applied game action.
type ActionModel struct {
	ID        uint   `gorm:"primaryKey"`
	RoomID    string `gorm:"index;not null"`
	Player    string `gorm:"index;not null"`
	Action    string `gorm:"not null"`
	CreatedAt time.Time
}

// GormArchive stores game records in PostgreSQL through GORM.
type GormArchive struct {
	db *gorm.DB
}

func NewGormArchive(host string, port int, user, password, dbname string) (*GormArchive, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Silent,
			Colorful:      false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&GameModel{}, &ActionModel{}); err != nil {
		return nil, err
	}

	return &GormArchive{db: db}, nil
}

func (a *GormArchive) RecordGameStart(roomID string, players []string) error {
	encoded, err := json.Marshal(players)
	if err != nil {
		return err
	}
	return a.db.Create(&GameModel{
		RoomID:  roomID,
		Players: string(encoded),
	}).Error
}

func (a *GormArchive) RecordAction(roomID, player, action string) error {
	return a.db.Create(&ActionModel{
		RoomID: roomID,
		Player: player,
		Action: action,
	}).Error
}

// PlayerGames counts how many recorded games an identity has been seated in.
func (a *GormArchive) PlayerGames(player string) (int64, error) {
	var count int64
	err := a.db.Model(&GameModel{}).
		Where("players LIKE ?", "%"+player+"%").
		Count(&count).Error
	return count, err
}

func (a *GormArchive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NoopArchive satisfies Archive for deployments without PostgreSQL and for
// tests that do not care about records.
type NoopArchive struct{}

func (NoopArchive) RecordGameStart(string, []string) error    { return nil }
func (NoopArchive) RecordAction(string, string, string) error { return nil }
func (NoopArchive) PlayerGames(string) (int64, error)         { return 0, nil }
func (NoopArchive) Close() error                              { return nil }
