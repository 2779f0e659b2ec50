package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/testepaprubenaecerco/Posts/pkg/internal/database"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/http/exts"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/services"
)

func listPost(c *fiber.Ctx) error {
	items, err := services.ListPost(database.C)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func createPost(c *fiber.Ctx) error {
	var data struct {
		AuthorID string  `json:"autor_id" validate:"required"`
		Text     string  `json:"texto" validate:"required"`
		Image    *string `json:"imagem"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(database.C, data.AuthorID, data.Text, data.Image)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"id":     item.ID,
	})
}

func deletePost(c *fiber.Ctx) error {
	if err := services.DeletePost(database.C, c.Params("postId")); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
