package service

import (
	"testing"

	"acadmix-be/internal/model"
	"acadmix-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildNotificationFillsTemplate(t *testing.T) {
	s := &NotificationService{}
	config := &model.NotificationType{
		Code:        "CONTENT_REJECTED",
		DisplayName: "Content Rejected",
		Template:    `Your upload "{title}" was rejected. Reason: {reason}`,
		TargetType:  "SELF",
	}
	contentId := uuid.New()
	event := events.New("CONTENT_REJECTED", map[string]interface{}{
		"title":       "Thermodynamics Notes",
		"reason":      "duplicate upload",
		"entity_type": "content",
		"entity_id":   contentId.String(),
	})

	userId := uuid.New()
	notif := s.buildNotification(userId, config, event)

	assert.Equal(t, `Your upload "Thermodynamics Notes" was rejected. Reason: duplicate upload`, notif.Message)
	assert.Equal(t, userId, notif.UserID)
	assert.Equal(t, "CONTENT_REJECTED", notif.TypeCode)
	assert.Equal(t, "Content Rejected", notif.Title)
	if assert.NotNil(t, notif.EntityID) {
		assert.Equal(t, contentId, *notif.EntityID)
	}
	assert.False(t, notif.IsRead)
}

func TestBuildNotificationLeavesUnknownPlaceholders(t *testing.T) {
	s := &NotificationService{}
	config := &model.NotificationType{
		Code:     "ANNOUNCEMENT_CREATED",
		Template: "New announcement: {title}",
	}
	event := events.New("ANNOUNCEMENT_CREATED", map[string]interface{}{
		"audience": "students",
	})

	notif := s.buildNotification(uuid.New(), config, event)
	assert.Equal(t, "New announcement: {title}", notif.Message,
		"placeholder should survive when payload lacks the key")
}

func TestPayloadSliceCoercion(t *testing.T) {
	// JSON round-trips turn []string into []interface{} and ints into float64.
	assert.Equal(t, []string{"cse", "ece"}, stringSlice([]interface{}{"cse", "ece", 7}))
	assert.Equal(t, []int{2, 3}, intSlice([]interface{}{float64(2), float64(3), "x"}))

	assert.Nil(t, stringSlice(nil))
	assert.Nil(t, intSlice("not a slice"))
}
