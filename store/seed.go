package store

import (
	"time"

	"github.com/servergreen991/designer-mom/models"
)

// Seed data used when the persistence port has never been written. It
// mirrors the dataset the application ships with: one account per staff
// role, one approved and one pending customer, and a welcome broadcast.

func seedUsers() []models.User {
	return []models.User{
		{ID: "user_admin", Email: "admin", Password: "admin", Role: models.RoleAdmin, Name: "Admin User", Approved: true, Avatar: "https://i.pravatar.cc/150?u=admin"},
		{ID: "user_manager", Email: "manager@dm.com", Password: "password", Role: models.RoleManager, Name: "Store Manager", Approved: true, Avatar: "https://i.pravatar.cc/150?u=manager"},
		{ID: "user_tailor", Email: "tailor@dm.com", Password: "password", Role: models.RoleTailor, Name: "Master Tailor", Approved: true, Avatar: "https://i.pravatar.cc/150?u=tailor"},
		{ID: "user_approved", Email: "user@dm.com", Password: "password", Role: models.RoleCustomer, Name: "Aaradhya Sharma", Approved: true, Avatar: "https://i.pravatar.cc/150?u=user"},
		{ID: "user_pending", Email: "pending@dm.com", Password: "password", Role: models.RoleCustomer, Name: "Priya Patel", Approved: false},
	}
}

func seedMessages() []models.Message {
	return []models.Message{
		{
			ID:          "msg_welcome",
			SenderID:    "user_admin",
			RecipientID: models.BroadcastRecipient,
			Text:        "Welcome to Designer Mom! Our new collection is now live.",
			Timestamp:   time.Now().UTC(),
		},
	}
}

func seedAppSettings() models.AppSettings {
	return models.AppSettings{
		AppName:   "Designer Mom",
		Logo:      "https://picsum.photos/seed/logo/100/100",
		Helpline:  "+91-9876543210",
		Copyright: "© 2024 Designer Mom Inc.",
		UpiID:     "designer.mom@bank",
		QRCodeURL: "https://picsum.photos/seed/qrcode/200/200",
	}
}

func seedTheme() models.Theme {
	return models.Theme{
		Primary:   "#E8B4B8",
		Secondary: "#F5F5DC",
		Accent:    "#8B4B8C",
	}
}
