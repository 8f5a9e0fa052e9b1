package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hotelcore/internal/database"
	"hotelcore/internal/domain"
	"hotelcore/internal/repository"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelcore.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM room_blockings")
	db.Exec("DELETE FROM room_status_history")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM floors")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		Email:        "manager@hotelcore.kz",
		PasswordHash: string(managerHash),
		Role:         domain.RoleManager,
		Name:         "Front Office Manager",
		Active:       true,
	}
	db.Create(&manager)
	log.Println("Manager created: manager@hotelcore.kz / manager123")

	staff := []domain.User{}
	staffEmails := []string{"reception@hotelcore.kz", "housekeeping@hotelcore.kz", "maintenance@hotelcore.kz"}
	for i, email := range staffEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			Name:         fmt.Sprintf("Staff %d", i+1),
			Active:       true,
		}
		db.Create(&user)
		staff = append(staff, user)
	}

	// ================== FLOORS ==================
	log.Println("Creating floors...")
	floors := make([]domain.Floor, 0, 4)
	for i := 1; i <= 4; i++ {
		floor := domain.Floor{
			Name:        fmt.Sprintf("Floor %d", i),
			FloorNumber: i,
			Sequence:    i * 10,
		}
		db.Create(&floor)
		floors = append(floors, floor)
	}

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")
	roomTypes := []domain.RoomType{
		{Code: "STD", Name: "Standard", MaxOccupancy: 2, SizeSqm: 22, BasePrice: 90, Sequence: 10, Active: true},
		{Code: "DLX", Name: "Deluxe", MaxOccupancy: 3, SizeSqm: 32, BasePrice: 140, Sequence: 20, Active: true},
		{Code: "STE", Name: "Suite", MaxOccupancy: 4, SizeSqm: 55, BasePrice: 260, Sequence: 30, Active: true},
	}
	for i := range roomTypes {
		db.Create(&roomTypes[i])
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	statuses := []domain.RoomStatus{
		domain.StatusClean, domain.StatusClean, domain.StatusClean,
		domain.StatusDirty, domain.StatusDirty,
		domain.StatusInspected,
		domain.StatusMakeUpRoom,
		domain.StatusOutOfService,
	}
	var rooms []domain.Room
	for _, floor := range floors {
		for j := 1; j <= 8; j++ {
			rt := roomTypes[rand.Intn(len(roomTypes))]
			room := domain.Room{
				RoomNumber:       fmt.Sprintf("%d%02d", floor.FloorNumber, j),
				Floor:            floor.FloorNumber,
				FloorID:          &floor.ID,
				RoomTypeID:       rt.ID,
				Status:           statuses[rand.Intn(len(statuses))],
				LastStatusChange: time.Now(),
			}
			db.Create(&room)
			rooms = append(rooms, room)
		}
	}

	// ================== HISTORY ==================
	// Every room gets an initial system entry so the audit trail never
	// starts empty.
	log.Println("Creating initial history entries...")
	historyRepo := repository.NewHistoryRepository(db)
	for _, room := range rooms {
		entry := domain.StatusHistoryEntry{
			RoomID:    room.ID,
			OldStatus: domain.StatusClean,
			NewStatus: room.Status,
			Channel:   domain.ChannelSystem,
			ChangedBy: manager.ID,
			Reason:    "initial seed",
		}
		if err := historyRepo.Record(context.Background(), &entry); err != nil {
			log.Fatal("history seed failed:", err)
		}
	}

	// ================== BLOCKINGS ==================
	log.Println("Creating blockings...")
	blockings := []domain.RoomBlocking{
		{
			Reference:     uuid.NewString(),
			RoomID:        rooms[0].ID,
			Name:          "Bathroom renovation",
			StartDate:     time.Now().AddDate(0, 0, 3).Truncate(24 * time.Hour),
			EndDate:       time.Now().AddDate(0, 0, 10).Truncate(24 * time.Hour),
			BlockingType:  domain.BlockingRenovation,
			Reason:        "full bathroom refit",
			Status:        domain.BlockingPlanned,
			ResponsibleID: staff[2].ID,
		},
		{
			Reference:     uuid.NewString(),
			RoomID:        rooms[1].ID,
			Name:          "Conference hold",
			StartDate:     time.Now().Truncate(24 * time.Hour),
			EndDate:       time.Now().AddDate(0, 0, 2).Truncate(24 * time.Hour),
			BlockingType:  domain.BlockingEvent,
			Reason:        "rooms held for conference block",
			Status:        domain.BlockingActive,
			ResponsibleID: manager.ID,
		},
	}
	for i := range blockings {
		db.Create(&blockings[i])
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Manager: manager@hotelcore.kz / manager123")
	log.Println("Staff:   reception@hotelcore.kz, housekeeping@hotelcore.kz, maintenance@hotelcore.kz / staff123")
}
