package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App) {
	posts := app.Group("/posts").Name("Posts API")
	{
		posts.Get("/", listPost)
		posts.Post("/", createPost)
		posts.Delete("/:postId", deletePost)

		posts.Get("/:postId/comments", listPostComments)
		posts.Post("/:postId/comments", createPostComment)
		posts.Delete("/:postId/comments/:commentId", deletePostComment)

		posts.Post("/:postId/like", likePost)
	}
}
