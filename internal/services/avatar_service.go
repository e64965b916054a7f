package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"vitrine/internal/apperr"
	"vitrine/internal/models"
	"vitrine/internal/repositories"
	"vitrine/pkg/media"
	"vitrine/pkg/rabbitmq"
)

// MaxAvatarSize is the largest accepted avatar upload, in bytes.
const MaxAvatarSize = 5 << 20 // 5 MiB

// allowedAvatarTypes lists the image content types accepted for upload.
var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// AvatarService orchestrates avatar upload, replacement and removal against
// the external media host and the user record. A user is either in the
// no-avatar state or holds exactly one hosted image.
type AvatarService struct {
	userRepo repositories.UserRepository
	host     media.Host
	mqClient rabbitmq.Publisher // nil when messaging is disabled
}

// NewAvatarService creates a new AvatarService.
func NewAvatarService(userRepo repositories.UserRepository, host media.Host, mqClient rabbitmq.Publisher) *AvatarService {
	return &AvatarService{
		userRepo: userRepo,
		host:     host,
		mqClient: mqClient,
	}
}

// UploadAvatar validates the file, sends it to the media host and persists
// the returned reference. When the user already has an avatar, the old hosted
// object is deleted best-effort in the background; its outcome never affects
// the result. The new reference is persisted before this method returns.
func (s *AvatarService) UploadAvatar(ctx context.Context, userID string, data []byte, contentType string) (*models.User, error) {
	if len(data) == 0 {
		return nil, apperr.MissingFile("no file was provided")
	}
	if len(data) > MaxAvatarSize {
		return nil, apperr.FileTooLarge(fmt.Sprintf("file exceeds the %d byte limit", MaxAvatarSize))
	}
	if !allowedAvatarTypes[contentType] {
		return nil, apperr.UnsupportedType(fmt.Sprintf("content type %s is not an allowed image type", contentType))
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, mapRepoError(err, "failed to load user")
	}
	oldPublicID := user.AvatarPublicID

	result, err := s.host.Upload(ctx, data, contentType)
	if err != nil {
		return nil, apperr.Upstream("failed to upload avatar to media host", err)
	}

	updated, err := s.userRepo.UpdateFields(userID, map[string]interface{}{
		"avatar":           result.URL,
		"avatar_public_id": result.PublicID,
		"avatar_blurhash":  result.Blurhash,
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to persist avatar reference")
	}

	if oldPublicID != "" {
		s.deleteRemoteObject(oldPublicID)
	}

	s.publishAvatarEvent("avatar.uploaded", userID, map[string]interface{}{
		"publicId": result.PublicID,
	})
	return updated, nil
}

// RemoveAvatar clears the avatar fields as a unit and asks the host to delete
// the hosted object, best-effort. Removing when no avatar exists is a no-op
// that returns the current record.
func (s *AvatarService) RemoveAvatar(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, mapRepoError(err, "failed to load user")
	}
	if !user.HasAvatar() {
		return user, nil
	}
	oldPublicID := user.AvatarPublicID

	updated, err := s.userRepo.UpdateFields(userID, map[string]interface{}{
		"avatar":           "",
		"avatar_public_id": "",
		"avatar_blurhash":  "",
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to clear avatar reference")
	}

	s.deleteRemoteObject(oldPublicID)

	s.publishAvatarEvent("avatar.removed", userID, nil)
	return updated, nil
}

// deleteRemoteObject requests deletion of a hosted image without blocking the
// caller. The new (or cleared) reference is already authoritative, so a
// failure here is only logged.
func (s *AvatarService) deleteRemoteObject(publicID string) {
	go func(publicID string) {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.host.Delete(bgCtx, publicID); err != nil {
			log.Printf("Warning: Failed to delete old avatar object %s: %v", publicID, err)
		}
	}(publicID)
}

// publishAvatarEvent publishes an avatar change event, logging failures
// without propagating them.
func (s *AvatarService) publishAvatarEvent(eventType, userID string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProfileEvent(eventType, userID, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %s: %v", eventType, userID, err)
	}
}
