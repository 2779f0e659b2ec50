package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/testepaprubenaecerco/Posts/pkg/internal/database"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/http/exts"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/services"
)

func likePost(c *fiber.Ctx) error {
	var data struct {
		UserID string `json:"user_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	positive, err := services.TogglePostLike(database.C, c.Params("postId"), data.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"liked": positive,
	})
}
