package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yorkei04/portfolio/internal/config"
	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/mail"
	"github.com/yorkei04/portfolio/internal/page"
	"github.com/yorkei04/portfolio/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Contact
	err  error
}

func (f *fakeMailer) Send(_ context.Context, c mail.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, c)
	return nil
}

type testServer struct {
	*Server
	store  *store.Store
	mailer *fakeMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	st, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	mailer := &fakeMailer{}
	s, err := New(Options{
		Config: config.Config{
			AssetsDir:        t.TempDir(),
			AdminUsername:    "kei",
			AdminPassword:    "correct horse",
			VisitorRetention: 365 * 24 * time.Hour,
		},
		Portfolio:  content.Default(),
		Store:      st,
		Mailer:     mailer,
		Logger:     log.New(io.Discard),
		BcryptCost: bcrypt.MinCost,
		Salt:       "test-salt",
		Now:        func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return &testServer{Server: s, store: st, mailer: mailer}
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w
}

func (ts *testServer) get(path string) *httptest.ResponseRecorder {
	return ts.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestIndex_RendersAllAnchors(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.Bytes()
	require.NoError(t, VerifyAnchors(bytes.NewReader(body), page.Definitions(content.Default())))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 5, doc.Find("[data-project-id]").Length())
	assert.Equal(t, 6, doc.Find("[data-experience-id]").Length())
	assert.Equal(t, 3, doc.Find("[data-education-id]").Length())
	assert.Equal(t, 5, doc.Find("figure[data-overlay]").Length())
	assert.Equal(t, "Kei - Software | Electronic | Control Engineer", doc.Find("title").Text())
}

func TestIndex_OverlaysAreChildrenOfTheirContainer(t *testing.T) {
	ts := newTestServer(t)
	doc, err := goquery.NewDocumentFromReader(ts.get("/").Body)
	require.NoError(t, err)

	var hover, section int
	for _, d := range page.Definitions(content.Default()) {
		assert.Equal(t, 1, doc.Find(d.Container+" > "+d.Element).Length(), d.Name)
		switch d.Container {
		case page.PageContainer:
			hover++
			assert.Zero(t, doc.Find(page.SidebarContainer+" "+d.Element).Length(), d.Name)
		case page.SidebarContainer:
			section++
		}
	}
	assert.Positive(t, hover)
	assert.Positive(t, section)
	assert.Equal(t, 1, doc.Find(`#page > [data-overlay="mcs"]`).Length())
}

func TestIndex_PlaceholderLinksHidden(t *testing.T) {
	ts := newTestServer(t)
	doc, err := goquery.NewDocumentFromReader(ts.get("/").Body)
	require.NoError(t, err)

	assert.Zero(t, doc.Find(`[data-project-id="1"] .links a`).Length())
	code := doc.Find(`[data-project-id="3"] .links a`)
	require.Equal(t, 1, code.Length())
	href, _ := code.Attr("href")
	assert.Equal(t, "https://github.com/zkwokleung/surgical-counting-frontend", href)
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		assert.NotEqual(t, "#", href)
	})
}

func TestIndex_HeroMentionAndOverlayData(t *testing.T) {
	ts := newTestServer(t)
	doc, err := goquery.NewDocumentFromReader(ts.get("/").Body)
	require.NoError(t, err)

	mention := doc.Find(`#hero a[href="https://github.com/zkwokleung"]`)
	require.Equal(t, 1, mention.Length())
	assert.Equal(t, "Andrew SZE-TO", mention.Text())
	assert.Equal(t, 2, doc.Find("#hero p.description").Length())
	assert.Equal(t, "300", doc.Find("#hero").AttrOr("data-stage-gap", ""))

	var defs []page.Definition
	require.NoError(t, json.Unmarshal([]byte(doc.Find("#overlay-data").Text()), &defs))
	assert.Equal(t, page.Definitions(content.Default()), defs)
}

func TestIndex_ImageFallback(t *testing.T) {
	ts := newTestServer(t)
	doc, err := goquery.NewDocumentFromReader(ts.get("/").Body)
	require.NoError(t, err)

	initials := doc.Find(`[data-project-id="5"] .initials`)
	assert.Equal(t, "PPW", initials.Text())
	_, hidden := initials.Attr("hidden")
	assert.True(t, hidden)
}

func TestIndex_TracksVisitsUnlessDoNotTrack(t *testing.T) {
	ts := newTestServer(t)

	ts.get("/")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	ts.do(req)
	ts.get("/privacy")
	ts.get("/healthz")
	ts.Close()

	visits, err := ts.store.RecentVisitors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "/", visits[0].Path)
	assert.Equal(t, store.HashIP("test-salt", "192.0.2.1"), visits[0].HashedIP)
}

func TestPrivacy(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get("/privacy")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "older than 365 days")
}

func TestStatic(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get("/static/js/page.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "overlay-data")

	assert.Equal(t, http.StatusNotFound, ts.get("/image/missing.png").Code)
}

func TestAPI(t *testing.T) {
	ts := newTestServer(t)

	w := ts.get("/api/portfolio")
	require.Equal(t, http.StatusOK, w.Code)
	var p content.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Kei", p.Name)
	assert.Len(t, p.Projects, 5)

	w = ts.get("/api/overlays")
	require.Equal(t, http.StatusOK, w.Code)
	var defs []page.Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &defs))
	assert.Len(t, defs, 5)
}

func TestEvents(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"hover", `{"kind":"hover","target":"2"}`, http.StatusNoContent},
		{"hover again", `{"kind":"hover","target":"2"}`, http.StatusNoContent},
		{"section", `{"kind":"section","target":"about"}`, http.StatusNoContent},
		{"unknown kind", `{"kind":"click","target":"2"}`, http.StatusBadRequest},
		{"missing target", `{"kind":"hover"}`, http.StatusBadRequest},
		{"bad json", `{`, http.StatusBadRequest},
		{"unknown project", `{"kind":"hover","target":"99"}`, http.StatusNotFound},
		{"unknown section", `{"kind":"section","target":"footer"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ts.do(postJSON("/api/events", tt.body)).Code)
		})
	}

	stats, err := ts.store.Stats(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, []store.TargetCount{{Target: "2", Count: 2}}, stats.TopProjects)
	assert.Equal(t, []store.TargetCount{{Target: "about", Count: 1}}, stats.SectionViews)
}

func TestContact(t *testing.T) {
	ts := newTestServer(t)
	form := url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}}

	w := ts.do(postForm("/contact", form))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "contact-success")
	require.Len(t, ts.mailer.sent, 1)
	assert.Equal(t, mail.Contact{Name: "Ada", Email: "ada@example.com", Message: "Hello"}, ts.mailer.sent[0])

	msgs, err := ts.store.Messages(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].Delivered)
}

func TestContact_MailFailureStillStored(t *testing.T) {
	ts := newTestServer(t)
	ts.mailer.err = errors.New("relay down")
	form := url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}}

	w := ts.do(postForm("/contact", form))
	assert.Contains(t, w.Body.String(), "contact-success")

	msgs, err := ts.store.Messages(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].Delivered)
}

func TestContact_NothingWorked(t *testing.T) {
	s, err := New(Options{
		Config:     config.Config{AdminUsername: "a", AdminPassword: "b"},
		Portfolio:  content.Default(),
		Mailer:     &fakeMailer{err: errors.New("relay down")},
		Logger:     log.New(io.Discard),
		BcryptCost: bcrypt.MinCost,
	})
	require.NoError(t, err)
	ts := &testServer{Server: s}

	form := url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}}
	w := ts.do(postForm("/contact", form))
	assert.Contains(t, w.Body.String(), "contact-error")
	assert.Contains(t, w.Body.String(), "Please try again later")
}

func TestContact_Invalid(t *testing.T) {
	ts := newTestServer(t)
	tests := []url.Values{
		{"fullName": {""}, "email": {"ada@example.com"}, "message": {"Hello"}},
		{"fullName": {"Ada"}, "email": {"not-an-email"}, "message": {"Hello"}},
		{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {""}},
		{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {strings.Repeat("x", 5001)}},
	}
	for _, form := range tests {
		w := ts.do(postForm("/contact", form))
		assert.Contains(t, w.Body.String(), "contact-error")
	}
	assert.Empty(t, ts.mailer.sent)
}

func login(t *testing.T, ts *testServer) *http.Cookie {
	t.Helper()
	w := ts.do(postForm("/admin/login", url.Values{"username": {"kei"}, "password": {"correct horse"}}))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func withCookie(req *http.Request, c *http.Cookie) *http.Request {
	req.AddCookie(c)
	return req
}

func TestAdmin_RequiresLogin(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/admin/dashboard", "/admin/api/stats", "/admin/export/stats"} {
		w := ts.get(path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"), path)
	}
	w := ts.do(httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil))
	assert.Equal(t, http.StatusFound, w.Code)

	assert.Equal(t, http.StatusOK, ts.get("/admin/login").Code)
}

func TestAdmin_BadCredentials(t *testing.T) {
	ts := newTestServer(t)
	for _, form := range []url.Values{
		{"username": {"kei"}, "password": {"wrong"}},
		{"username": {"admin"}, "password": {"correct horse"}},
	} {
		w := ts.do(postForm("/admin/login", form))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		assert.Empty(t, w.Result().Cookies())
	}
}

func TestAdmin_Dashboard(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, ts.store.RecordVisit(ctx, store.Visit{HashedIP: "abc", Path: "/", CreatedAt: testNow}))
	require.NoError(t, ts.store.RecordInteraction(ctx, store.Interaction{Kind: store.KindHover, Target: "2", CreatedAt: testNow}))
	_, err := ts.store.SaveMessage(ctx, store.Message{Name: "Ada", Email: "ada@example.com", Body: "Hi there"})
	require.NoError(t, err)

	cookie := login(t, ts)

	w := ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), cookie))
	require.Equal(t, http.StatusOK, w.Code)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "1", doc.Find("#total-visitors").Text())
	assert.Contains(t, doc.Find(".top-projects").Text(), "SCADA HMI & Real-time Database Configuration")
	assert.Contains(t, doc.Find(".messages").Text(), "Hi there")

	w = ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil), cookie))
	require.Equal(t, http.StatusOK, w.Code)
	var stats store.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisitors)

	w = ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/admin/export/stats", nil), cookie))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "admin-stats.json")
}

func TestAdmin_Cleanup(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, ts.store.RecordVisit(ctx, store.Visit{HashedIP: "old", CreatedAt: testNow.AddDate(-2, 0, 0)}))
	require.NoError(t, ts.store.RecordVisit(ctx, store.Visit{HashedIP: "new", CreatedAt: testNow}))

	cookie := login(t, ts)
	w := ts.do(withCookie(httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil), cookie))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Privacy cleanup finished","removed":1}`, w.Body.String())
}

func TestAdmin_Logout(t *testing.T) {
	ts := newTestServer(t)
	cookie := login(t, ts)

	w := ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/admin/logout", nil), cookie))
	assert.Equal(t, http.StatusFound, w.Code)

	w = ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), cookie))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestSessions_Expire(t *testing.T) {
	ss := newSessions()
	id := ss.create(testNow)
	assert.True(t, ss.valid(id, testNow.Add(time.Hour)))
	assert.False(t, ss.valid(id, testNow.Add(sessionTTL+time.Second)))
	assert.False(t, ss.valid(id, testNow))
	assert.False(t, ss.valid("nope", testNow))
}

func TestVerifyAnchors_ReportsMissing(t *testing.T) {
	html := `<html><body><div id="page"><section id="about"></section></div><aside></aside></body></html>`
	defs := page.Definitions(content.Default())

	err := VerifyAnchors(strings.NewReader(html), defs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAnchor)
	assert.Contains(t, err.Error(), "#projects")
	assert.Contains(t, err.Error(), `[data-project-id="2"]`)
	assert.NotContains(t, err.Error(), "missing anchor: #about")
}

func TestVerifyAnchors_RejectsOverlayOutsideItsContainer(t *testing.T) {
	defs := page.Definitions(content.Default())
	ts := newTestServer(t)
	doc, err := goquery.NewDocumentFromReader(ts.get("/").Body)
	require.NoError(t, err)

	// Move a hover overlay into the sidebar, where its offset would be
	// measured from the wrong box.
	fig := doc.Find(`#page > [data-overlay="mcs"]`)
	require.Equal(t, 1, fig.Length())
	doc.Find(page.SidebarContainer).AppendSelection(fig)
	html, err := doc.Html()
	require.NoError(t, err)

	err = VerifyAnchors(strings.NewReader(html), defs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAnchor)
	assert.Contains(t, err.Error(), `#page > [data-overlay="mcs"]`)
}
