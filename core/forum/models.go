package forum

import (
	"context"

	"github.com/geekplay/foro/core/form"
)

type (
	Category struct {
		ID          int64  `json:"id"`
		Nombre      string `json:"nombre"`
		Descripcion string `json:"descripcion"`
		Slug        string `json:"slug"`
		CreadoEn    string `json:"creadoEn"`
	}

	Post struct {
		ID             int64   `json:"id"`
		Titulo         string  `json:"titulo"`
		Contenido      string  `json:"contenido"`
		CategoryID     int64   `json:"categoryId"`
		CategoryNombre string  `json:"categoryNombre"`
		AutorID        int64   `json:"autorId"`
		AutorNombre    string  `json:"autorNombre"`
		AutorAvatar    *string `json:"autorAvatar"`
		CreadoEn       string  `json:"creadoEn"`
		ActualizadoEn  string  `json:"actualizadoEn"`
	}

	NewPost struct {
		Titulo     string `json:"titulo"`
		Contenido  string `json:"contenido"`
		CategoryID int64  `json:"categoryId"`
	}

	UpdatePost struct {
		Titulo    string `json:"titulo"`
		Contenido string `json:"contenido"`
	}

	Comment struct {
		ID            int64   `json:"id"`
		Contenido     string  `json:"contenido"`
		PostID        int64   `json:"postId"`
		AutorID       int64   `json:"autorId"`
		AutorNombre   string  `json:"autorNombre"`
		AutorAvatar   *string `json:"autorAvatar"`
		CreadoEn      string  `json:"creadoEn"`
		ActualizadoEn string  `json:"actualizadoEn"`
	}

	NewComment struct {
		Contenido string `json:"contenido"`
	}
)

// Validate checks the post with v. A post must belong to a category.
func (np NewPost) Validate(v *form.Validator) error {
	if err := v.ValidateForumPost(form.ForumPostForm{Titulo: np.Titulo, Contenido: np.Contenido}).Err(); err != nil {
		return err
	}
	if np.CategoryID <= 0 {
		errs := form.Errors{"categoryId": form.Required("")}
		return errs.Err()
	}
	return nil
}

func (up UpdatePost) Validate(v *form.Validator) error {
	return v.ValidateForumPost(form.ForumPostForm(up)).Err()
}

func (nc NewComment) Validate() error {
	errs := form.Errors{"contenido": form.Content(nc.Contenido)}
	return errs.Err()
}

// Service is the forum backend: categories, posts and their comments.
// Reads are public; writes need the session token.
type Service interface {
	Categories(ctx context.Context) ([]Category, error)
	CategoryByID(ctx context.Context, id int64) (Category, error)
	CategoryBySlug(ctx context.Context, slug string) (Category, error)

	Posts(ctx context.Context) ([]Post, error)
	PostsByCategory(ctx context.Context, categoryID int64) ([]Post, error)
	PostsByCategorySlug(ctx context.Context, slug string) ([]Post, error)
	PostByID(ctx context.Context, id int64) (Post, error)
	MyPosts(ctx context.Context, token string) ([]Post, error)
	CreatePost(ctx context.Context, token string, np NewPost) (Post, error)
	UpdatePost(ctx context.Context, token string, id int64, up UpdatePost) (Post, error)
	// DeletePost deletes a post. reason is required upstream when an admin deletes someone else's post.
	DeletePost(ctx context.Context, token string, id int64, reason string) error

	Comments(ctx context.Context, postID int64) ([]Comment, error)
	CountComments(ctx context.Context, postID int64) (int64, error)
	CreateComment(ctx context.Context, token string, postID int64, nc NewComment) (Comment, error)
	UpdateComment(ctx context.Context, token string, id int64, nc NewComment) (Comment, error)
	DeleteComment(ctx context.Context, token string, id int64) error
}
