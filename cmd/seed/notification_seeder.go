package main

import (
	"log"

	"acadmix-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_REGISTERED",
			DisplayName: "New User Registration",
			Template:    "New user registered: {email}",
			TargetType:  "ADMIN",
			Priority:    "MEDIUM",
			Channels:    datatypes.JSON([]byte(`["web"]`)),
			IsActive:    true,
		},
		{
			Code:        "CONTENT_UPLOADED",
			DisplayName: "Content Awaiting Review",
			Template:    "New {content_type} uploaded: \"{title}\"",
			TargetType:  "ADMIN",
			Priority:    "MEDIUM",
			Channels:    datatypes.JSON([]byte(`["web"]`)),
			IsActive:    true,
		},
		{
			Code:        "CONTENT_APPROVED",
			DisplayName: "Content Approved",
			Template:    "Your upload \"{title}\" has been approved and is now live",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			Channels:    datatypes.JSON([]byte(`["web"]`)),
			IsActive:    true,
		},
		{
			Code:        "CONTENT_REJECTED",
			DisplayName: "Content Rejected",
			Template:    "Your upload \"{title}\" was rejected. Reason: {reason}",
			TargetType:  "SELF",
			Priority:    "HIGH",
			Channels:    datatypes.JSON([]byte(`["web"]`)),
			IsActive:    true,
		},
		{
			Code:        "ANNOUNCEMENT_CREATED",
			DisplayName: "New Announcement",
			Template:    "New announcement: \"{title}\"",
			TargetType:  "AUDIENCE",
			Priority:    "HIGH",
			Channels:    datatypes.JSON([]byte(`["web"]`)),
			IsActive:    true,
		},
	}

	for _, t := range types {
		err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error
		if err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Printf("Seeded %d notification types", len(types))
}
