package controllers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/janmeier/inkwell/app/models"
	"github.com/janmeier/inkwell/internal/pkg/cache"
	"github.com/janmeier/inkwell/internal/pkg/database"
	"github.com/janmeier/inkwell/internal/pkg/router"
)

const testPassword = "secret123"

// testApp wires a full application instance against an in-memory database and
// an in-process redis server.
type testApp struct {
	app *fiber.App
	db  *gorm.DB
	mr  *miniredis.Miniredis
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	t.Setenv("CACHE_HOST", host)
	t.Setenv("CACHE_PORT", port)
	cache.SetupCache()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	))
	database.DB = db

	app := fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})
	router.InstallRouter(app)

	return &testApp{app: app, db: db, mr: mr}
}

func (ta *testApp) createUser(t *testing.T, name string, admin bool) *models.User {
	t.Helper()

	user, err := models.CreateUser(name, name+"@example.com", testPassword)
	require.NoError(t, err)
	if admin {
		user.Role = models.ROLE_ADMIN
	}
	require.NoError(t, ta.db.Create(user).Error)
	return user
}

func (ta *testApp) createPost(t *testing.T, userID uint, text string) *models.Post {
	t.Helper()

	post := &models.Post{Text: text, UserID: userID}
	require.NoError(t, ta.db.Create(post).Error)
	return post
}

// login authenticates through the real login route and returns the cookies a
// browser would carry afterwards.
func (ta *testApp) login(t *testing.T, name string) []*http.Cookie {
	t.Helper()

	resp := ta.postForm(t, "/login", url.Values{
		"email":    {name + "@example.com"},
		"password": {testPassword},
	}, nil)
	assertRedirect(t, resp, "/")

	cookies := resp.Cookies()
	for _, c := range cookies {
		if c.Name == "session_id" {
			return cookies
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func (ta *testApp) do(t *testing.T, req *http.Request, cookies []*http.Cookie) *http.Response {
	t.Helper()

	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ta *testApp) get(t *testing.T, path string, cookies []*http.Cookie) *http.Response {
	t.Helper()

	return ta.do(t, httptest.NewRequest(fiber.MethodGet, path, nil), cookies)
}

func (ta *testApp) postForm(t *testing.T, path string, form url.Values, cookies []*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return ta.do(t, req, cookies)
}

func (ta *testApp) postMultipart(t *testing.T, path string, fields map[string]string, fileName string, fileBody []byte, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	fw, err := w.CreateFormFile("image", fileName)
	require.NoError(t, err)
	_, err = fw.Write(fileBody)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return ta.do(t, req, cookies)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return string(body)
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()

	require.GreaterOrEqual(t, resp.StatusCode, 300)
	require.Less(t, resp.StatusCode, 400)
	require.Equal(t, location, resp.Header.Get(fiber.HeaderLocation))
}
