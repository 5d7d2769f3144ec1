package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/task-tracker-api/internal/constants"
	"github.com/adiprasetyo/task-tracker-api/internal/response"
	"github.com/adiprasetyo/task-tracker-api/internal/storage"
)

func parseDate(value string) (time.Time, error) {
	return time.Parse(constants.DateFormat, value)
}

// storeAvatar saves the uploaded avatar when the request carries one.
// A request without an avatar file yields a nil path and no error.
func storeAvatar(c *gin.Context, avatars *storage.AvatarStore) (*string, error) {
	file, err := c.FormFile("avatar")
	if err != nil {
		return nil, nil
	}

	path, err := avatars.Save(file)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// respondAvatarError maps file intake failures onto the validation channel;
// anything unexpected falls through to the caller's 500 handler.
func respondAvatarError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, storage.ErrAvatarTooLarge):
		response.ValidationFailed(c, map[string]string{
			"avatar": "The avatar may not be greater than 2048 kilobytes.",
		})
		return true
	case errors.Is(err, storage.ErrAvatarBadType):
		response.ValidationFailed(c, map[string]string{
			"avatar": "The avatar must be a file of type: jpeg, png, jpg, gif.",
		})
		return true
	default:
		return false
	}
}

func emailTakenResponse(c *gin.Context) {
	response.ValidationFailed(c, map[string]string{
		"email": "The email has already been taken.",
	})
}
