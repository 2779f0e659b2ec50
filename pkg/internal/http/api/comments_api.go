package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/testepaprubenaecerco/Posts/pkg/internal/database"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/http/exts"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/services"
)

func listPostComments(c *fiber.Ctx) error {
	items, err := services.ListComment(database.C, c.Params("postId"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func createPostComment(c *fiber.Ctx) error {
	var data struct {
		AuthorID string `json:"autor_id" validate:"required"`
		Text     string `json:"texto" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewComment(database.C, c.Params("postId"), data.AuthorID, data.Text); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

func deletePostComment(c *fiber.Ctx) error {
	if err := services.DeleteComment(database.C, c.Params("postId"), c.Params("commentId")); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
