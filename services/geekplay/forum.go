package geekplaysvc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/geekplay/foro/core/forum"
)

type forumService struct {
	client
}

var _ forum.Service = (*forumService)(nil)

// NewForumService returns the forum.Service backed by the forum service at baseURL.
func NewForumService(baseURL string, hc *http.Client) forum.Service {
	return &forumService{client: newClient(baseURL, hc)}
}

func (svc *forumService) get(ctx context.Context, op, errText, path string, out interface{}) error {
	return svc.do(ctx, call{op: op, errText: errText, method: http.MethodGet, path: path, out: out})
}

func (svc *forumService) Categories(ctx context.Context) ([]forum.Category, error) {
	cats := make([]forum.Category, 0)
	err := svc.get(ctx, "list categories", "Error al obtener categorías", "/api/categories", &cats)
	return cats, err
}

func (svc *forumService) CategoryByID(ctx context.Context, id int64) (forum.Category, error) {
	var cat forum.Category
	err := svc.get(ctx, "get category", "Error al obtener categoría", fmt.Sprintf("/api/categories/%d", id), &cat)
	return cat, err
}

func (svc *forumService) CategoryBySlug(ctx context.Context, slug string) (forum.Category, error) {
	var cat forum.Category
	err := svc.get(ctx, "get category by slug", "Error al obtener categoría", "/api/categories/slug/"+url.PathEscape(slug), &cat)
	return cat, err
}

func (svc *forumService) Posts(ctx context.Context) ([]forum.Post, error) {
	posts := make([]forum.Post, 0)
	err := svc.get(ctx, "list posts", "Error al obtener posts", "/api/posts", &posts)
	return posts, err
}

func (svc *forumService) PostsByCategory(ctx context.Context, categoryID int64) ([]forum.Post, error) {
	posts := make([]forum.Post, 0)
	err := svc.get(ctx, "list category posts", "Error al obtener posts por categoría", fmt.Sprintf("/api/posts/category/%d", categoryID), &posts)
	return posts, err
}

func (svc *forumService) PostsByCategorySlug(ctx context.Context, slug string) ([]forum.Post, error) {
	posts := make([]forum.Post, 0)
	err := svc.get(ctx, "list category posts by slug", "Error al obtener posts", "/api/posts/category/slug/"+url.PathEscape(slug), &posts)
	return posts, err
}

func (svc *forumService) PostByID(ctx context.Context, id int64) (forum.Post, error) {
	var post forum.Post
	err := svc.get(ctx, "get post", "Error al obtener post", fmt.Sprintf("/api/posts/%d", id), &post)
	return post, err
}

func (svc *forumService) MyPosts(ctx context.Context, token string) ([]forum.Post, error) {
	posts := make([]forum.Post, 0)
	err := svc.do(ctx, call{
		op:      "list my posts",
		errText: "Error al obtener tus posts",
		method:  http.MethodGet,
		path:    "/api/posts/my-posts",
		token:   token,
		auth:    true,
		out:     &posts,
	})
	return posts, err
}

func (svc *forumService) CreatePost(ctx context.Context, token string, np forum.NewPost) (forum.Post, error) {
	var post forum.Post
	err := svc.do(ctx, call{
		op:      "create post",
		errText: "Error al crear post",
		method:  http.MethodPost,
		path:    "/api/posts",
		token:   token,
		auth:    true,
		in:      np,
		out:     &post,
	})
	return post, err
}

func (svc *forumService) UpdatePost(ctx context.Context, token string, id int64, up forum.UpdatePost) (forum.Post, error) {
	var post forum.Post
	err := svc.do(ctx, call{
		op:      "update post",
		errText: "Error al actualizar post",
		method:  http.MethodPut,
		path:    fmt.Sprintf("/api/posts/%d", id),
		token:   token,
		auth:    true,
		in:      up,
		out:     &post,
	})
	return post, err
}

func (svc *forumService) DeletePost(ctx context.Context, token string, id int64, reason string) error {
	var q url.Values
	if reason != "" {
		q = url.Values{"reason": {reason}}
	}
	return svc.do(ctx, call{
		op:      "delete post",
		errText: "Error al eliminar post",
		method:  http.MethodDelete,
		path:    fmt.Sprintf("/api/posts/%d", id),
		query:   q,
		token:   token,
		auth:    true,
	})
}

func (svc *forumService) Comments(ctx context.Context, postID int64) ([]forum.Comment, error) {
	comments := make([]forum.Comment, 0)
	err := svc.get(ctx, "list comments", "Error al obtener comentarios", fmt.Sprintf("/api/comments/post/%d", postID), &comments)
	return comments, err
}

func (svc *forumService) CountComments(ctx context.Context, postID int64) (int64, error) {
	var n int64
	err := svc.get(ctx, "count comments", "Error al contar comentarios", fmt.Sprintf("/api/comments/post/%d/count", postID), &n)
	return n, err
}

func (svc *forumService) CreateComment(ctx context.Context, token string, postID int64, nc forum.NewComment) (forum.Comment, error) {
	var comment forum.Comment
	err := svc.do(ctx, call{
		op:      "create comment",
		errText: "Error al crear comentario",
		method:  http.MethodPost,
		path:    fmt.Sprintf("/api/comments/post/%d", postID),
		token:   token,
		auth:    true,
		in:      nc,
		out:     &comment,
	})
	return comment, err
}

func (svc *forumService) UpdateComment(ctx context.Context, token string, id int64, nc forum.NewComment) (forum.Comment, error) {
	var comment forum.Comment
	err := svc.do(ctx, call{
		op:      "update comment",
		errText: "Error al actualizar comentario",
		method:  http.MethodPut,
		path:    fmt.Sprintf("/api/comments/%d", id),
		token:   token,
		auth:    true,
		in:      nc,
		out:     &comment,
	})
	return comment, err
}

func (svc *forumService) DeleteComment(ctx context.Context, token string, id int64) error {
	return svc.do(ctx, call{
		op:      "delete comment",
		errText: "Error al eliminar comentario",
		method:  http.MethodDelete,
		path:    fmt.Sprintf("/api/comments/%d", id),
		token:   token,
		auth:    true,
	})
}
