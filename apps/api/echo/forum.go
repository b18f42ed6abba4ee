package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/form"
	"github.com/geekplay/foro/core/forum"
)

type (
	forumAPI struct {
		validator *form.Validator
		svc       forum.Service
	}

	// ThreadResponse is a post along with its comments.
	ThreadResponse struct {
		Post     forum.Post      `json:"post"`
		Comments []forum.Comment `json:"comments"`
	}
)

func registerForumAPI(g *echo.Group, auth echo.MiddlewareFunc, validator *form.Validator, svc forum.Service) {
	api := forumAPI{validator: validator, svc: svc}

	cg := g.Group("/categories")
	cg.GET("", api.categories)
	cg.GET("/:id", api.category)
	cg.GET("/slug/:slug", api.categoryBySlug)
	cg.GET("/:id/posts", api.categoryPosts)
	cg.GET("/slug/:slug/posts", api.categoryPostsBySlug)

	pg := g.Group("/posts")
	pg.GET("", api.posts)
	pg.GET("/mine", api.myPosts, auth)
	pg.POST("", api.createPost, auth)
	pg.GET("/:id", api.post)
	pg.PUT("/:id", api.updatePost, auth)
	pg.DELETE("/:id", api.deletePost, auth)
	pg.GET("/:id/thread", api.thread)
	pg.GET("/:id/comments", api.comments)
	pg.GET("/:id/comments/count", api.countComments)
	pg.POST("/:id/comments", api.createComment, auth)

	mg := g.Group("/comments", auth)
	mg.PUT("/:id", api.updateComment)
	mg.DELETE("/:id", api.deleteComment)
}

func (api *forumAPI) categories(ctx echo.Context) error {
	cats, err := api.svc.Categories(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cats)
}

func (api *forumAPI) category(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	cat, err := api.svc.CategoryByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cat)
}

func (api *forumAPI) categoryBySlug(ctx echo.Context) error {
	cat, err := api.svc.CategoryBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cat)
}

func (api *forumAPI) categoryPosts(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	posts, err := api.svc.PostsByCategory(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *forumAPI) categoryPostsBySlug(ctx echo.Context) error {
	posts, err := api.svc.PostsByCategorySlug(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *forumAPI) posts(ctx echo.Context) error {
	posts, err := api.svc.Posts(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *forumAPI) myPosts(ctx echo.Context) error {
	posts, err := api.svc.MyPosts(ctx.Request().Context(), contextToken(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *forumAPI) post(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	post, err := api.svc.PostByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, post)
}

func (api *forumAPI) thread(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var thread ThreadResponse
	eg, egCtx := errgroup.WithContext(ctx.Request().Context())
	eg.Go(func() error {
		post, err := api.svc.PostByID(egCtx, id)
		thread.Post = post
		return err
	})
	eg.Go(func() error {
		comments, err := api.svc.Comments(egCtx, id)
		thread.Comments = comments
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	if thread.Comments == nil {
		thread.Comments = []forum.Comment{}
	}
	return ctx.JSON(http.StatusOK, thread)
}

func (api *forumAPI) createPost(ctx echo.Context) error {
	var data forum.NewPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	if err := data.Validate(api.validator); err != nil {
		return err
	}

	data.Titulo = core.CleanString(data.Titulo)
	data.Contenido = core.CleanString(data.Contenido)
	post, err := api.svc.CreatePost(ctx.Request().Context(), contextToken(ctx), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, post)
}

func (api *forumAPI) updatePost(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	var data forum.UpdatePost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePost")
	}
	if err := data.Validate(api.validator); err != nil {
		return err
	}

	data.Titulo = core.CleanString(data.Titulo)
	data.Contenido = core.CleanString(data.Contenido)
	post, err := api.svc.UpdatePost(ctx.Request().Context(), contextToken(ctx), id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, post)
}

// deletePost deletes a post. An admin removing someone else's post must say why:
// the reason is sent to the author.
func (api *forumAPI) deletePost(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	reason := core.CleanString(ctx.QueryParam("reason"))

	c := ctx.Request().Context()
	if claims, ok := contextClaims(ctx); ok && claims.IsAdmin() {
		post, err := api.svc.PostByID(c, id)
		if err != nil {
			return err
		}
		if post.AutorID != claims.UserID {
			if res := form.Required(reason); res.Failed() {
				return core.NewValidationError(nil, core.FieldError{Field: "reason", Error: res.Message()})
			}
		}
	}

	if err := api.svc.DeletePost(c, contextToken(ctx), id, reason); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *forumAPI) comments(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	comments, err := api.svc.Comments(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []forum.Comment{}
	}
	return ctx.JSON(http.StatusOK, comments)
}

func (api *forumAPI) countComments(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	count, err := api.svc.CountComments(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"count": count})
}

func (api *forumAPI) bindComment(ctx echo.Context) (forum.NewComment, error) {
	var data forum.NewComment
	if err := ctx.Bind(&data); err != nil {
		return data, errors.Wrap(err, "binding to NewComment")
	}
	if err := data.Validate(); err != nil {
		return data, err
	}
	data.Contenido = core.CleanString(data.Contenido)
	return data, nil
}

func (api *forumAPI) createComment(ctx echo.Context) error {
	postID, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	data, err := api.bindComment(ctx)
	if err != nil {
		return err
	}
	comment, err := api.svc.CreateComment(ctx.Request().Context(), contextToken(ctx), postID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, comment)
}

func (api *forumAPI) updateComment(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	data, err := api.bindComment(ctx)
	if err != nil {
		return err
	}
	comment, err := api.svc.UpdateComment(ctx.Request().Context(), contextToken(ctx), id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, comment)
}

func (api *forumAPI) deleteComment(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.svc.DeleteComment(ctx.Request().Context(), contextToken(ctx), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
