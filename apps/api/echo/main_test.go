package echoapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/geekplay/foro/apps/api/echo"
	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/account"
	"github.com/geekplay/foro/core/contact"
	"github.com/geekplay/foro/core/forum"
	"github.com/geekplay/foro/core/item"
	"github.com/geekplay/foro/core/notification"
	"github.com/geekplay/foro/services/geekplay"
	"github.com/geekplay/foro/services/logger"
	"github.com/geekplay/foro/storage/database/inmem"
)

const (
	requiredText = "Este campo es obligatorio."
	emailText    = "Correo electrónico inválido."
	passwordText = "La contraseña debe tener al menos 6 caracteres."
	nameText     = "Nombre inválido."
	messageText  = "El mensaje debe tener al menos 10 caracteres."
	titleText    = "El título debe tener al menos 3 caracteres."
	contentText  = "El contenido debe tener al menos 10 caracteres."
	mismatchText = "Las contraseñas no coinciden."
)

var (
	errMissingToken  = httpErr{Error: "missing or malformed token"}
	errInvalidToken  = httpErr{Error: "invalid or expired token"}
	errForbidden     = httpErr{Error: "permission denied"}
	errNotFound      = httpErr{Error: "not found"}
	errNoTokenUpstrm = httpErr{Error: geekplaysvc.ErrNoToken.Error()}
)

type stubs struct {
	itemRepo item.Repository
	auth     *authStub
	profile  *profileStub
	admin    *adminStub
	forum    *forumStub
	notif    *notificationStub
	contact  *contactStub
}

func setup(t *testing.T) (*Server, *stubs) {
	conf := &core.Config{AppName: "GeekPlay", TestMode: true, Env: "TEST"}
	conf.Server.DisableReqLogs = true

	db, err := inmemdb.Open(item.DefaultItems()...)
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}

	st := &stubs{
		itemRepo: inmemdb.NewItemRepository(db),
		auth:     &authStub{},
		profile: &profileStub{profile: account.Profile{
			ID:     1,
			Nombre: "Juan Pérez",
			Email:  "juan@example.com",
			Role:   account.RoleUser,
		}},
		admin:   &adminStub{users: []account.User{{ID: 2, Nombre: "Ana", Email: "ana@example.com", Role: account.RoleUser}}},
		forum:   newForumStub(),
		notif:   &notificationStub{},
		contact: &contactStub{},
	}

	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	logger.Enable(false)

	srv := NewServer(ServerDeps{
		Conf:            conf,
		Logger:          logger,
		ItemSvc:         item.NewService(st.itemRepo),
		AuthSvc:         st.auth,
		ProfileSvc:      st.profile,
		AdminSvc:        st.admin,
		ForumSvc:        st.forum,
		NotificationSvc: st.notif,
		ContactSvc:      st.contact,
	})
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv, st
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		assert.Empty(t, rec.Body.Bytes())
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, srv *Server, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

// stubs of the upstream services

type authStub struct {
	mu    sync.Mutex
	creds account.Credentials
	reg   account.Registration
	err   error
}

func (s *authStub) Login(_ context.Context, creds account.Credentials) (account.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	if s.err != nil {
		return account.Session{}, s.err
	}
	return account.Session{Token: "session-token", UserID: 1, Email: creds.Email, Nombre: "Juan Pérez", Role: account.RoleUser}, nil
}

func (s *authStub) Register(_ context.Context, reg account.Registration) (account.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg = reg
	if s.err != nil {
		return account.Session{}, s.err
	}
	return account.Session{Token: "session-token", UserID: 7, Email: reg.Email, Nombre: reg.Nombre, Role: account.RoleUser}, nil
}

type profileStub struct {
	mu      sync.Mutex
	profile account.Profile
	update  *account.ProfileUpdate
	token   string
}

func (s *profileStub) Me(_ context.Context, token string) (account.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.profile, nil
}

func (s *profileStub) UpdateMe(_ context.Context, token string, pu account.ProfileUpdate) (account.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.update = &pu
	s.profile.Nombre = pu.Nombre
	s.profile.Biografia = pu.Biografia
	s.profile.AvatarURL = pu.AvatarURL
	return s.profile, nil
}

func (s *profileStub) GetByID(_ context.Context, _ string, id int64) (account.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.profile.ID {
		return account.Profile{}, &geekplaysvc.StatusError{Op: "GetByID", Code: http.StatusNotFound, Message: "Usuario no encontrado"}
	}
	return s.profile, nil
}

type adminStub struct {
	mu     sync.Mutex
	users  []account.User
	banned map[int64]string
}

func (s *adminStub) Users(context.Context, string) ([]account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users, nil
}

func (s *adminStub) Ban(_ context.Context, _ string, id int64, razon string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.banned == nil {
		s.banned = make(map[int64]string)
	}
	s.banned[id] = razon
	return nil
}

func (s *adminStub) Unban(_ context.Context, _ string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.banned, id)
	return nil
}

type forumStub struct {
	mu       sync.Mutex
	cats     []forum.Category
	posts    map[int64]forum.Post
	comments []forum.Comment
	created  *forum.NewPost
	deleted  map[int64]string
	nextID   int64
}

func newForumStub() *forumStub {
	return &forumStub{
		cats: []forum.Category{{ID: 1, Nombre: "Videojuegos", Slug: "videojuegos"}},
		posts: map[int64]forum.Post{
			10: {ID: 10, Titulo: "Hola", Contenido: "Primer post del foro", CategoryID: 1, AutorID: 1},
			11: {ID: 11, Titulo: "Admin", Contenido: "Post de la administración", CategoryID: 1, AutorID: 99},
		},
		comments: []forum.Comment{{ID: 100, Contenido: "Buen post, gracias", PostID: 10, AutorID: 2}},
		deleted:  make(map[int64]string),
		nextID:   20,
	}
}

func notFound() error {
	return &geekplaysvc.StatusError{Code: http.StatusNotFound, Message: "No encontrado"}
}

func (s *forumStub) Categories(context.Context) ([]forum.Category, error) {
	return s.cats, nil
}

func (s *forumStub) CategoryByID(_ context.Context, id int64) (forum.Category, error) {
	for _, c := range s.cats {
		if c.ID == id {
			return c, nil
		}
	}
	return forum.Category{}, notFound()
}

func (s *forumStub) CategoryBySlug(_ context.Context, slug string) (forum.Category, error) {
	for _, c := range s.cats {
		if c.Slug == slug {
			return c, nil
		}
	}
	return forum.Category{}, notFound()
}

func (s *forumStub) Posts(context.Context) ([]forum.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]forum.Post, 0, len(s.posts))
	for _, id := range []int64{10, 11} {
		if p, ok := s.posts[id]; ok {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (s *forumStub) PostsByCategory(ctx context.Context, _ int64) ([]forum.Post, error) {
	return s.Posts(ctx)
}

func (s *forumStub) PostsByCategorySlug(ctx context.Context, _ string) ([]forum.Post, error) {
	return s.Posts(ctx)
}

func (s *forumStub) PostByID(_ context.Context, id int64) (forum.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return forum.Post{}, notFound()
	}
	return p, nil
}

func (s *forumStub) MyPosts(_ context.Context, token string) ([]forum.Post, error) {
	if token == "" {
		return nil, geekplaysvc.ErrNoToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return []forum.Post{s.posts[10]}, nil
}

func (s *forumStub) CreatePost(_ context.Context, _ string, np forum.NewPost) (forum.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = &np
	p := forum.Post{ID: s.nextID, Titulo: np.Titulo, Contenido: np.Contenido, CategoryID: np.CategoryID, AutorID: 1}
	s.posts[p.ID] = p
	s.nextID++
	return p, nil
}

func (s *forumStub) UpdatePost(_ context.Context, _ string, id int64, up forum.UpdatePost) (forum.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return forum.Post{}, notFound()
	}
	p.Titulo, p.Contenido = up.Titulo, up.Contenido
	s.posts[id] = p
	return p, nil
}

func (s *forumStub) DeletePost(_ context.Context, _ string, id int64, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return notFound()
	}
	delete(s.posts, id)
	s.deleted[id] = reason
	return nil
}

func (s *forumStub) Comments(_ context.Context, postID int64) ([]forum.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var comments []forum.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (s *forumStub) CountComments(ctx context.Context, postID int64) (int64, error) {
	comments, _ := s.Comments(ctx, postID)
	return int64(len(comments)), nil
}

func (s *forumStub) CreateComment(_ context.Context, _ string, postID int64, nc forum.NewComment) (forum.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := forum.Comment{ID: s.nextID, Contenido: nc.Contenido, PostID: postID, AutorID: 1}
	s.nextID++
	s.comments = append(s.comments, c)
	return c, nil
}

func (s *forumStub) UpdateComment(_ context.Context, _ string, id int64, nc forum.NewComment) (forum.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.comments {
		if c.ID == id {
			s.comments[i].Contenido = nc.Contenido
			return s.comments[i], nil
		}
	}
	return forum.Comment{}, notFound()
}

func (s *forumStub) DeleteComment(_ context.Context, _ string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.comments {
		if c.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return notFound()
}

type notificationStub struct {
	mu   sync.Mutex
	read []int64
}

func (s *notificationStub) Mine(context.Context, string) ([]notification.Notification, error) {
	return []notification.Notification{{ID: 5, UserID: 1, Tipo: "POST_ELIMINADO", Titulo: "Post eliminado", Mensaje: "spam"}}, nil
}

func (s *notificationStub) UnreadCount(context.Context, string) (int64, error) {
	return 3, nil
}

func (s *notificationStub) MarkRead(_ context.Context, _ string, id int64) (notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.read = append(s.read, id)
	return notification.Notification{ID: id, UserID: 1, Leida: true}, nil
}

func (s *notificationStub) Delete(_ context.Context, _ string, id int64) error {
	if id != 5 {
		return notFound()
	}
	return nil
}

func (s *notificationStub) Create(_ context.Context, nn notification.NewNotification) (notification.Notification, error) {
	return notification.Notification{ID: 6, UserID: nn.UserID, Tipo: nn.Tipo, Titulo: nn.Titulo, Mensaje: nn.Mensaje}, nil
}

type contactStub struct {
	mu   sync.Mutex
	sent []contact.Message
}

func (s *contactStub) Send(_ context.Context, msg contact.Message) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return map[string]interface{}{"id": float64(len(s.sent)), "nombre": msg.Nombre}, nil
}
